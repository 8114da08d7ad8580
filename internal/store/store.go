// Package store implements the Subject Store (spec §4.F): a read-only,
// O(1)-lookup mapping from subject-id to (aliases, birthdates), built once
// by an external loader and then shared, unmodified, across any number of
// concurrent query goroutines.
package store

import (
	"sort"

	"github.com/nameguard/sanctionscreen/internal/subject"
)

// Store is an immutable, per-kind SubjectStore. The zero value is not
// usable; construct with New, LoadFixture or LoadFixtureFile.
type Store struct {
	kind       subject.Kind
	records    map[string]subject.Record
	orderedIDs []string
}

// New builds a Store of the given kind from id->record pairs. The input
// map is copied; later mutation of records by the caller has no effect on
// the Store.
func New(kind subject.Kind, records map[string]subject.Record) *Store {
	copied := make(map[string]subject.Record, len(records))
	ids := make([]string, 0, len(records))
	for id, rec := range records {
		copied[id] = rec
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &Store{kind: kind, records: copied, orderedIDs: ids}
}

// Kind reports whether this store holds persons or entities.
func (s *Store) Kind() subject.Kind {
	return s.kind
}

// Len returns |SubjectStore|, the subject count from which the Index
// Builder's posting cap is computed (spec §4.D: cap = floor(|S| / 8)).
func (s *Store) Len() int {
	return len(s.records)
}

// Lookup returns the (aliases, birthdates) record for id in O(1) expected
// time, and whether id is present. The returned Record's slices must not
// be mutated by the caller; the Store shares backing arrays across reads.
func (s *Store) Lookup(id string) (subject.Record, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// IDs returns the store's subject-ids in a stable, deterministic
// (lexicographic) order, useful for build-phase iteration that must
// reproduce a bitwise-identical Index across runs (spec §3 invariant 5).
func (s *Store) IDs() []string {
	out := make([]string, len(s.orderedIDs))
	copy(out, s.orderedIDs)
	return out
}

// Subjects reconstructs full subject.Subject values in deterministic
// ID order, for components (the Stop-word Selector, index builder) that
// iterate the whole corpus rather than doing point lookups.
func (s *Store) Subjects() []subject.Subject {
	out := make([]subject.Subject, 0, len(s.records))
	for _, id := range s.orderedIDs {
		rec := s.records[id]
		out = append(out, subject.Subject{
			ID:         id,
			Kind:       s.kind,
			Aliases:    rec.Aliases,
			Birthdates: rec.Birthdates,
		})
	}
	return out
}
