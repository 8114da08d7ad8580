package testutil

import (
	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// SamplePersonStore returns a small, deterministic person corpus covering
// the common phonetic-matching scenarios: a Cyrillic-transliteration
// cluster with shared surnames, a gendered pair distinguishable only by
// first name, and a birthdate-bearing subject for the exact-filter path.
func SamplePersonStore() *store.Store {
	return NewStoreBuilder(subject.Person).
		Add(Person("P1").AliasWithFirst(0, "Ivan", "Petrov").Birthdate("1978-04-11")).
		Add(Person("P2").AliasWithFirst(0, "Ivan", "Petroff").AliasWithFirst(0, "Ivan", "Petrov")).
		Add(Person("P3").AliasWithGender(subject.GenderFemale, "Anastasiya", "Karpanova")).
		Add(Person("P4").AliasWithGender(subject.GenderMale, "Anton", "Karpanov")).
		Build()
}

// SampleEntityStore returns a small deterministic entity corpus: two
// legal entities whose names share a root word ("Severstal") so stopword
// selection and posting-cap behavior have something to exercise.
func SampleEntityStore() *store.Store {
	return NewStoreBuilder(subject.Entity).
		Add(Entity("E1").Alias("Severstal", "OJSC")).
		Add(Entity("E2").Alias("Severstal", "Invest", "Holding")).
		Build()
}
