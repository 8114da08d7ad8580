// Package testutil provides fluent builders and canned fixtures for
// constructing subject.Subject and store.Store values in tests, so
// individual test functions don't hand-assemble NamePart/NameAlias
// literals for every case.
package testutil

import (
	"time"

	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// SubjectBuilder provides a fluent interface for building a subject.Record
// one alias (and, for persons, one birthdate) at a time.
type SubjectBuilder struct {
	id         string
	kind       subject.Kind
	aliases    []subject.NameAlias
	birthdates []time.Time
}

// NewSubjectBuilder starts building a subject of the given kind and id.
func NewSubjectBuilder(id string, kind subject.Kind) *SubjectBuilder {
	return &SubjectBuilder{id: id, kind: kind}
}

// Person is shorthand for NewSubjectBuilder(id, subject.Person).
func Person(id string) *SubjectBuilder {
	return NewSubjectBuilder(id, subject.Person)
}

// Entity is shorthand for NewSubjectBuilder(id, subject.Entity).
func Entity(id string) *SubjectBuilder {
	return NewSubjectBuilder(id, subject.Entity)
}

// Alias appends a name alias built from parts, in order, with no
// designated first name and unknown gender/language. Use AliasWithGender
// or AliasWithFirst for finer control.
func (sb *SubjectBuilder) Alias(parts ...string) *SubjectBuilder {
	nps := make([]subject.NamePart, len(parts))
	for i, p := range parts {
		nps[i] = subject.NewNamePart(p)
	}
	sb.aliases = append(sb.aliases, subject.NewNameAlias(nps...))
	return sb
}

// AliasWithFirst appends an alias where the part at firstIdx is marked as
// the first name (a flag the scoring model does not use).
func (sb *SubjectBuilder) AliasWithFirst(firstIdx int, parts ...string) *SubjectBuilder {
	nps := make([]subject.NamePart, len(parts))
	for i, p := range parts {
		if i == firstIdx {
			nps[i] = subject.NewFirstNamePart(p)
		} else {
			nps[i] = subject.NewNamePart(p)
		}
	}
	sb.aliases = append(sb.aliases, subject.NewNameAlias(nps...))
	return sb
}

// AliasWithGender appends an alias tagged with an exact gender, for
// exercising the Query API's gender filter.
func (sb *SubjectBuilder) AliasWithGender(gender subject.Gender, parts ...string) *SubjectBuilder {
	nps := make([]subject.NamePart, len(parts))
	for i, p := range parts {
		nps[i] = subject.NewNamePart(p)
	}
	alias := subject.NewNameAlias(nps...)
	alias.Gender = gender
	sb.aliases = append(sb.aliases, alias)
	return sb
}

// Birthdate records an exact birthdate in "2006-01-02" form. Panics on a
// malformed date since this is test-setup code, not a validation path.
func (sb *SubjectBuilder) Birthdate(date string) *SubjectBuilder {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: invalid birthdate " + date + ": " + err.Error())
	}
	sb.birthdates = append(sb.birthdates, t)
	return sb
}

// Record returns the built subject.Record.
func (sb *SubjectBuilder) Record() subject.Record {
	return subject.Record{Aliases: sb.aliases, Birthdates: sb.birthdates}
}

// Subject returns the built subject.Subject (id, kind, and Record fields
// flattened together), the shape the index builder and stopword selector
// iterate over.
func (sb *SubjectBuilder) Subject() subject.Subject {
	return subject.Subject{
		ID:         sb.id,
		Kind:       sb.kind,
		Aliases:    sb.aliases,
		Birthdates: sb.birthdates,
	}
}

// StoreBuilder accumulates SubjectBuilder results into a single store.Store
// for one kind.
type StoreBuilder struct {
	kind    subject.Kind
	records map[string]subject.Record
}

// NewStoreBuilder starts an empty store of the given kind.
func NewStoreBuilder(kind subject.Kind) *StoreBuilder {
	return &StoreBuilder{kind: kind, records: make(map[string]subject.Record)}
}

// Add inserts sb's built record under its id. Panics if sb's kind doesn't
// match the builder's kind, or its id was already added.
func (b *StoreBuilder) Add(sb *SubjectBuilder) *StoreBuilder {
	if sb.kind != b.kind {
		panic("testutil: subject kind mismatch building store")
	}
	if _, exists := b.records[sb.id]; exists {
		panic("testutil: duplicate subject id " + sb.id)
	}
	b.records[sb.id] = sb.Record()
	return b
}

// Build returns the assembled store.Store.
func (b *StoreBuilder) Build() *store.Store {
	return store.New(b.kind, b.records)
}
