package store

import (
	"testing"
	"time"

	"github.com/nameguard/sanctionscreen/internal/subject"
)

func TestNewAndLookup(t *testing.T) {
	records := map[string]subject.Record{
		"p1": {Aliases: []subject.NameAlias{subject.NewNameAlias(subject.NewNamePart("Ivan Petrov"))}},
	}
	s := New(subject.Person, records)

	rec, ok := s.Lookup("p1")
	if !ok {
		t.Fatal("expected p1 to be found")
	}
	if len(rec.Aliases) != 1 {
		t.Errorf("expected 1 alias, got %d", len(rec.Aliases))
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Error("expected missing id to not be found")
	}
}

func TestLenMatchesRecordCount(t *testing.T) {
	records := map[string]subject.Record{"a": {}, "b": {}, "c": {}}
	s := New(subject.Entity, records)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestIDsDeterministicOrder(t *testing.T) {
	records := map[string]subject.Record{"zeta": {}, "alpha": {}, "mike": {}}
	s := New(subject.Person, records)
	ids := s.IDs()
	want := []string{"alpha", "mike", "zeta"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestMutatingInputMapDoesNotAffectStore(t *testing.T) {
	records := map[string]subject.Record{"p1": {}}
	s := New(subject.Person, records)
	records["p2"] = subject.Record{}
	if _, ok := s.Lookup("p2"); ok {
		t.Error("store should not observe mutation of the input map after construction")
	}
}

func TestLoadFixture(t *testing.T) {
	data := []byte(`
persons:
  - id: p1
    kind: person
    aliases:
      - parts: ["Ivan", "Petrov"]
        first_name_index: 0
        gender: M
    birthdates: ["1975-03-14"]
entities:
  - id: e1
    kind: entity
    aliases:
      - parts: ["Acme Holdings"]
`)
	persons, entities, err := LoadFixture(data, "test.yaml")
	if err != nil {
		t.Fatalf("LoadFixture failed: %v", err)
	}

	rec, ok := persons.Lookup("p1")
	if !ok {
		t.Fatal("expected p1 in persons store")
	}
	if len(rec.Birthdates) != 1 {
		t.Fatalf("expected 1 birthdate, got %d", len(rec.Birthdates))
	}
	want := time.Date(1975, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !rec.Birthdates[0].Equal(want) {
		t.Errorf("birthdate = %v, want %v", rec.Birthdates[0], want)
	}
	if rec.Aliases[0].Gender != subject.GenderMale {
		t.Errorf("gender = %v, want Male", rec.Aliases[0].Gender)
	}

	if _, ok := entities.Lookup("e1"); !ok {
		t.Fatal("expected e1 in entities store")
	}
}

func TestLoadFixtureRejectsBadGender(t *testing.T) {
	data := []byte(`
persons:
  - id: p1
    kind: person
    aliases:
      - parts: ["Ivan"]
        gender: nonbinary-unsupported
`)
	if _, _, err := LoadFixture(data, "test.yaml"); err == nil {
		t.Error("expected an error for an unrecognized gender value")
	}
}
