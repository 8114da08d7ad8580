// Fixture loading: a generic YAML subject format used by the CLI demo
// and tests. This is intentionally not the OFAC SDN or EU consolidated
// list XML schemas -- parsing those is an external concern the spec
// leaves to the loader that populates a SubjectStore (spec §3's
// lifecycle note); this format exists so the module is runnable and
// testable without vendoring either real watchlist's schema.
package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nameguard/sanctionscreen/internal/errors"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// fixtureAlias is one alias entry in the YAML fixture format.
type fixtureAlias struct {
	Parts    []string `yaml:"parts"`
	First    int      `yaml:"first_name_index,omitempty"`
	Language string   `yaml:"language,omitempty"`
	Gender   string   `yaml:"gender,omitempty"`
}

// fixtureSubject is one subject entry in the YAML fixture format.
type fixtureSubject struct {
	ID         string         `yaml:"id"`
	Kind       string         `yaml:"kind"`
	Aliases    []fixtureAlias `yaml:"aliases"`
	Birthdates []string       `yaml:"birthdates,omitempty"`
}

// fixtureFile is the top-level YAML document: separate lists for persons
// and entities, matching the spec's requirement that the two kinds are
// indexed and queried independently.
type fixtureFile struct {
	Persons  []fixtureSubject `yaml:"persons"`
	Entities []fixtureSubject `yaml:"entities"`
}

// LoadFixtureFile reads a YAML subject fixture from path and returns two
// Stores: one of persons, one of entities.
func LoadFixtureFile(path string) (persons *Store, entities *Store, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.NewLoadError("read", path, err)
	}
	return LoadFixture(data, path)
}

// LoadFixture parses raw YAML fixture bytes into persons and entities
// Stores. path is used only for error messages.
func LoadFixture(data []byte, path string) (persons *Store, entities *Store, err error) {
	var doc fixtureFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.NewLoadError("parse", path, err)
	}

	personRecords := make(map[string]subject.Record, len(doc.Persons))
	for _, fs := range doc.Persons {
		rec, err := fs.toRecord()
		if err != nil {
			return nil, nil, errors.NewLoadError("convert", path, fmt.Errorf("subject %q: %w", fs.ID, err))
		}
		personRecords[fs.ID] = rec
	}

	entityRecords := make(map[string]subject.Record, len(doc.Entities))
	for _, fs := range doc.Entities {
		rec, err := fs.toRecord()
		if err != nil {
			return nil, nil, errors.NewLoadError("convert", path, fmt.Errorf("subject %q: %w", fs.ID, err))
		}
		entityRecords[fs.ID] = rec
	}

	return New(subject.Person, personRecords), New(subject.Entity, entityRecords), nil
}

func (fs fixtureSubject) toRecord() (subject.Record, error) {
	aliases := make([]subject.NameAlias, 0, len(fs.Aliases))
	for _, fa := range fs.Aliases {
		gender, err := parseFixtureGender(fa.Gender)
		if err != nil {
			return subject.Record{}, err
		}
		parts := make([]subject.NamePart, len(fa.Parts))
		for i, p := range fa.Parts {
			if i == fa.First {
				parts[i] = subject.NewFirstNamePart(p)
			} else {
				parts[i] = subject.NewNamePart(p)
			}
		}
		aliases = append(aliases, subject.NameAlias{
			Parts:    parts,
			Language: fa.Language,
			Gender:   gender,
		})
	}

	birthdates := make([]time.Time, 0, len(fs.Birthdates))
	for _, raw := range fs.Birthdates {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return subject.Record{}, fmt.Errorf("birthdate %q: %w", raw, err)
		}
		birthdates = append(birthdates, t)
	}

	return subject.Record{Aliases: aliases, Birthdates: birthdates}, nil
}

func parseFixtureGender(raw string) (subject.Gender, error) {
	switch raw {
	case "", "unknown":
		return subject.GenderUnknown, nil
	case "M", "male":
		return subject.GenderMale, nil
	case "F", "female":
		return subject.GenderFemale, nil
	default:
		return subject.GenderUnknown, fmt.Errorf("unknown gender %q", raw)
	}
}
