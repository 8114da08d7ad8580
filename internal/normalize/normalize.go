// Package normalize implements the Normalizer (spec §4.A): case-folding,
// diacritic stripping, and splitting name parts into normalized word tokens.
//
// Grounded on the original searcher's normalize_word/normalize_name_parts
// (unicodedata.NFKD + lower()), translated into the idiomatic Go way of
// doing Unicode normalization with golang.org/x/text: NFKD decomposition
// followed by dropping combining marks, then case-folding.
package normalize

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nameguard/sanctionscreen/internal/subject"
)

var foldCase = cases.Fold()

// stripMarks removes Unicode combining marks (the decomposed diacritics left
// behind by NFKD) so that accented and unaccented Latin letters normalize to
// the same base form before the phonetic stage ever sees the token.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Token normalizes a single word: Unicode case-fold plus diacritic
// stripping via NFKD decomposition. Idempotent: Token(Token(s)) == Token(s).
func Token(s string) string {
	folded, _, err := transform.String(foldCase, s)
	if err != nil {
		folded = strings.ToLower(s)
	}
	stripped, _, err := transform.String(stripMarks, folded)
	if err != nil {
		return folded
	}
	return stripped
}

// isSeparator reports whether r splits a NamePart into fragments. Per spec
// §4.A, any character that is not alphabetic is a separator.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r)
}

// Parts normalizes one NamePart into zero or more normalized tokens: split
// on runs of non-alphabetic characters, trim, and normalize each fragment.
// An empty or whitespace-only part contributes nothing.
func Parts(part subject.NamePart) []string {
	fields := strings.FieldsFunc(part.Part, isSeparator)
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, Token(f))
	}
	return out
}

// Alias normalizes a whole NameAlias into a deduplicated set of normalized
// tokens, unioned across all of its NameParts (spec §4.A).
func Alias(alias subject.NameAlias) map[string]struct{} {
	out := make(map[string]struct{})
	for _, part := range alias.Parts {
		for _, tok := range Parts(part) {
			if tok == "" {
				continue
			}
			out[tok] = struct{}{}
		}
	}
	return out
}

// AliasSorted returns Alias's token set as a sorted slice, useful wherever a
// deterministic iteration order is required (e.g. building a canonical
// normalized-name string for scoring).
func AliasSorted(alias subject.NameAlias) []string {
	set := Alias(alias)
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
