package testutil

import (
	"fmt"
	"math/rand"

	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// SubjectGenerator produces pseudo-random but reproducible person subjects
// for stress-testing the index builder and scorer at volume (posting-cap
// pruning, stopword cutoffs) without hand-writing hundreds of fixtures.
type SubjectGenerator struct {
	rand *rand.Rand
}

// NewSubjectGenerator creates a generator seeded for reproducible test runs.
func NewSubjectGenerator(seed int64) *SubjectGenerator {
	return &SubjectGenerator{rand: rand.New(rand.NewSource(seed))}
}

var genFirstNames = []string{
	"Ivan", "Anton", "Sergei", "Dmitri", "Mikhail", "Anastasiya", "Yelena",
	"Olga", "Natalia", "Viktor", "Pavel", "Irina",
}

var genSurnames = []string{
	"Petrov", "Karpanov", "Sidorov", "Volkov", "Smirnov", "Popov",
	"Kuznetsov", "Ivanov", "Sokolov", "Morozov",
}

// GeneratePersonStore builds a store.Store of count pseudo-random persons,
// each with one alias of a generated first name and surname.
func (g *SubjectGenerator) GeneratePersonStore(count int) *store.Store {
	b := NewStoreBuilder(subject.Person)
	for i := 0; i < count; i++ {
		first := genFirstNames[g.rand.Intn(len(genFirstNames))]
		last := genSurnames[g.rand.Intn(len(genSurnames))]
		id := fmt.Sprintf("GEN%d", i)
		b.Add(Person(id).AliasWithFirst(0, first, last))
	}
	return b.Build()
}
