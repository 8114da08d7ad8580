// Package validation provides input validation and sanitization for the
// screening query API's caller-supplied parameters: query names, optional
// gender, and optional exact birthdate.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/nameguard/sanctionscreen/internal/constants"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// ValidateQueryName sanitizes a raw query-name string before it reaches
// the normalizer. An empty or whitespace/control-character-only name is
// not an error: it is passed through as "" and the scorer's Stage 1
// token split naturally yields zero candidates (spec §7: the query path
// never errors, including on an empty query).
func ValidateQueryName(name string) (string, error) {
	if len(name) > constants.MaxQueryLength {
		return "", fmt.Errorf("query name too long (max %d characters)", constants.MaxQueryLength)
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, name)

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	return cleaned, nil
}

// ParseGender parses a caller-supplied gender string into a subject.Gender.
// Accepts "M", "F", "Male", "Female" (case-insensitive); an empty string
// means "not specified" and is not an error.
func ParseGender(raw string) (subject.Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return subject.GenderUnknown, nil
	case "M", "MALE":
		return subject.GenderMale, nil
	case "F", "FEMALE":
		return subject.GenderFemale, nil
	default:
		return subject.GenderUnknown, fmt.Errorf("gender must be one of M, F (got %q)", raw)
	}
}

// ParseBirthdate parses a caller-supplied exact calendar date in the
// "2006-01-02" layout. An empty string means "not specified" and returns
// ok=false without an error.
func ParseBirthdate(raw string) (date time.Time, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("birthdate must be in YYYY-MM-DD format: %w", err)
	}
	return t, true, nil
}

// ValidateThreshold validates a similarity threshold: values outside
// [0, 100] are rejected and 0 is mapped to constants.DefaultThreshold.
func ValidateThreshold(threshold int) (int, error) {
	if threshold < 0 || threshold > 100 {
		return 0, fmt.Errorf("threshold must be between 0 and 100 (got %d)", threshold)
	}
	if threshold == 0 {
		return constants.DefaultThreshold, nil
	}
	return threshold, nil
}
