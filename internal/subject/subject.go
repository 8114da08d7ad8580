// Package subject defines the in-memory subject model the screening engine
// consumes: sanctioned persons and entities with name aliases and, for
// persons, birthdates and gender (spec §3).
//
// This package owns only the data shapes. Parsing a specific watchlist
// schema (EU consolidated list, OFAC SDN) into these shapes is an external
// loader's job, not this module's -- see internal/store for the generic
// fixture loader used by tests and the CLI demo.
package subject

import "time"

// Kind discriminates a Subject as a natural person or a legal entity.
// Persons and entities are indexed and queried independently.
type Kind int

const (
	Person Kind = iota
	Entity
)

func (k Kind) String() string {
	if k == Person {
		return "person"
	}
	return "entity"
}

// Gender is the optional gender recorded on a NameAlias.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return ""
	}
}

// NamePart is one token of a name plus whether it is a first name. The
// first-name flag is informational only in the current scoring model; it is
// reserved for future weighting (spec §3).
type NamePart struct {
	Part        string
	IsFirstName bool
}

// NewNamePart builds a NamePart that is not a first name.
func NewNamePart(part string) NamePart {
	return NamePart{Part: part}
}

// NewFirstNamePart builds a NamePart flagged as a first name.
func NewFirstNamePart(part string) NamePart {
	return NamePart{Part: part, IsFirstName: true}
}

// NameAlias is one spelling variant of a subject's name: an ordered sequence
// of NameParts plus an optional language tag and gender.
type NameAlias struct {
	Parts    []NamePart
	Language string
	Gender   Gender
}

// NewNameAlias builds a NameAlias from whole-name parts with no language or
// gender recorded.
func NewNameAlias(parts ...NamePart) NameAlias {
	return NameAlias{Parts: parts}
}

// String joins the alias's parts with a single space, for display only --
// not used on the scoring path, which works from normalized token sets.
func (a NameAlias) String() string {
	out := ""
	for i, p := range a.Parts {
		if i > 0 {
			out += " "
		}
		out += p.Part
	}
	return out
}

// Subject is one sanctioned person or entity: a stable opaque identifier, a
// Kind, a non-empty sequence of aliases, and (for persons) a possibly-empty
// set of exact birthdates. Immutable once constructed.
type Subject struct {
	ID         string
	Kind       Kind
	Aliases    []NameAlias
	Birthdates []time.Time
}

// Genders returns the set of non-empty genders recorded across the
// subject's aliases, used by the scorer's gender filter (spec §4.E Stage 2).
func (s Subject) Genders() map[Gender]bool {
	out := make(map[Gender]bool)
	for _, a := range s.Aliases {
		if a.Gender != GenderUnknown {
			out[a.Gender] = true
		}
	}
	return out
}

// HasBirthdate reports whether d is among the subject's exact birthdates.
// Dates are compared by calendar day, ignoring time-of-day and location.
func (s Subject) HasBirthdate(d time.Time) bool {
	for _, bd := range s.Birthdates {
		if sameDate(bd, d) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Record is the (aliases, birthdates) pair a SubjectStore maps a subject-id
// to (spec §3's SubjectStore definition).
type Record struct {
	Aliases    []NameAlias
	Birthdates []time.Time
}
