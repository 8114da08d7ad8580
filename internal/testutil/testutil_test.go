package testutil

import (
	"testing"

	"github.com/nameguard/sanctionscreen/internal/subject"
)

func TestSubjectBuilderProducesExpectedRecord(t *testing.T) {
	sb := Person("P1").AliasWithFirst(0, "Ivan", "Petrov").Birthdate("1978-04-11")
	rec := sb.Record()

	if len(rec.Aliases) != 1 {
		t.Fatalf("got %d aliases, want 1", len(rec.Aliases))
	}
	if rec.Aliases[0].Parts[0].Part != "Ivan" || !rec.Aliases[0].Parts[0].IsFirstName {
		t.Errorf("expected first part to be the marked first name 'Ivan'")
	}
	if len(rec.Birthdates) != 1 {
		t.Fatalf("got %d birthdates, want 1", len(rec.Birthdates))
	}
}

func TestStoreBuilderRejectsKindMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic adding an entity to a person StoreBuilder")
		}
	}()
	NewStoreBuilder(subject.Person).Add(Entity("E1").Alias("Severstal"))
}

func TestStoreBuilderRejectsDuplicateID(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic adding a duplicate subject id")
		}
	}()
	NewStoreBuilder(subject.Person).
		Add(Person("P1").Alias("Ivan")).
		Add(Person("P1").Alias("Anton"))
}

func TestSamplePersonStoreIsUsable(t *testing.T) {
	s := SamplePersonStore()
	if s.Kind() != subject.Person {
		t.Errorf("Kind() = %v, want Person", s.Kind())
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSampleEntityStoreIsUsable(t *testing.T) {
	s := SampleEntityStore()
	if s.Kind() != subject.Entity {
		t.Errorf("Kind() = %v, want Entity", s.Kind())
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSubjectGeneratorIsReproducible(t *testing.T) {
	a := NewSubjectGenerator(42).GeneratePersonStore(50)
	b := NewSubjectGenerator(42).GeneratePersonStore(50)

	idsA, idsB := a.IDs(), b.IDs()
	if len(idsA) != len(idsB) {
		t.Fatalf("store sizes differ: %d vs %d", len(idsA), len(idsB))
	}
	for i := range idsA {
		recA, _ := a.Lookup(idsA[i])
		recB, _ := b.Lookup(idsB[i])
		if recA.Aliases[0].String() != recB.Aliases[0].String() {
			t.Errorf("same seed produced different subjects at index %d", i)
		}
	}
}
