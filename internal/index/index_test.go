package index

import (
	"testing"

	"github.com/nameguard/sanctionscreen/internal/phonetic"
	"github.com/nameguard/sanctionscreen/internal/stopwords"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

func mkSubject(id string, parts ...string) subject.Subject {
	nps := make([]subject.NamePart, len(parts))
	for i, p := range parts {
		nps[i] = subject.NewNamePart(p)
	}
	return subject.Subject{ID: id, Aliases: []subject.NameAlias{subject.NewNameAlias(nps...)}}
}

func TestBuildIndexesEncodableTokens(t *testing.T) {
	subjects := []subject.Subject{mkSubject("p1", "Ivan", "Petrov")}
	idx := Build(subjects, stopwords.Set{}, phonetic.NewEncoder())

	found := false
	for _, key := range phonetic.NewEncoder().Encode("petrov") {
		if postings := idx.Lookup(key); len(postings) > 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one posting for a key of 'petrov'")
	}
}

func TestBuildSkipsStopwords(t *testing.T) {
	subjects := []subject.Subject{mkSubject("p1", "Ivan", "Petrov")}
	stopSet := stopwords.Set{"ivan": {}}
	idx := Build(subjects, stopSet, phonetic.NewEncoder())

	for _, key := range phonetic.NewEncoder().Encode("ivan") {
		for _, posting := range idx.Lookup(key) {
			if posting.Token == "ivan" {
				t.Errorf("expected 'ivan' to be excluded as a stopword, found posting %+v", posting)
			}
		}
	}
}

func TestBuildSkipsShortTokens(t *testing.T) {
	subjects := []subject.Subject{mkSubject("p1", "A", "Petrov")}
	idx := Build(subjects, stopwords.Set{}, phonetic.NewEncoder())

	for _, key := range phonetic.NewEncoder().Encode("a") {
		for _, posting := range idx.Lookup(key) {
			if posting.Token == "a" {
				t.Errorf("expected single-character token to be excluded, found posting %+v", posting)
			}
		}
	}
}

func TestBuildPrunesOversizedBins(t *testing.T) {
	// 80 subjects sharing a single phonetic token -> cap = floor(80/8) = 10,
	// so the bin for that token's key must be pruned entirely.
	var subjects []subject.Subject
	for i := 0; i < 80; i++ {
		subjects = append(subjects, mkSubject(string(rune('a'+i%26))+"id", "Smith"))
	}
	idx := Build(subjects, stopwords.Set{}, phonetic.NewEncoder())

	stats := idx.Stats()
	if stats.PostingCap != 10 {
		t.Fatalf("PostingCap = %d, want 10", stats.PostingCap)
	}
	if stats.PrunedBins == 0 {
		t.Error("expected at least one pruned bin for an overwhelmingly common token")
	}

	for _, key := range phonetic.NewEncoder().Encode("smith") {
		if postings := idx.Lookup(key); len(postings) > stats.PostingCap {
			t.Errorf("bin %q has %d postings, exceeding cap %d", key, len(postings), stats.PostingCap)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	subjects := []subject.Subject{
		mkSubject("p1", "Ivan", "Petrov"),
		mkSubject("p2", "Anastasia", "Karpanova"),
	}
	first := Build(subjects, stopwords.Set{}, phonetic.NewEncoder())
	second := Build(subjects, stopwords.Set{}, phonetic.NewEncoder())

	if first.Stats() != second.Stats() {
		t.Errorf("non-deterministic build stats: %+v vs %+v", first.Stats(), second.Stats())
	}
}
