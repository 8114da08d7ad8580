// Package phonetic implements the Phonetic Encoder (spec §4.B): a
// Double-Metaphone encoding of a normalized token into up to two short
// ASCII phonetic keys.
//
// Grounded on a from-scratch Double-Metaphone walk over the input letters,
// the same table-driven consonant-cluster approach used by other
// phonetic-matching code in the wild, generalized here to emit the
// standard two parallel key tracks (primary/alternate) and capped at four
// characters per key as called for by an inverted phonetic-bin index.
//
// Encode holds no package-level mutable state, so a single Encoder value
// is safe to share across concurrently running goroutines; the spec only
// requires either per-thread instances or concurrency-safe encoding, and
// a stateless walk satisfies the stronger of the two.
package phonetic

import "strings"

// maxKeyLength is the maximum length of an emitted phonetic key. Longer
// codes are truncated, matching conventional Double-Metaphone practice.
const maxKeyLength = 4

// Encoder runs the Double-Metaphone algorithm. The zero value is ready to
// use; Encoder carries no state and is safe for concurrent use.
type Encoder struct{}

// NewEncoder returns a ready-to-use Encoder.
func NewEncoder() Encoder {
	return Encoder{}
}

// Encode applies Double-Metaphone to token (expected to already be
// normalize.Token-normalized: case-folded, diacritics stripped) and
// returns its phonetic keys, truncated to at most four characters each and
// deduplicated. Returns zero keys if token is empty or contains no
// encodable letters (spec §4.B: the caller treats that as a silent skip).
func (Encoder) Encode(token string) []string {
	word := strings.ToUpper(asciiOnly(token))
	if word == "" {
		return nil
	}

	pri, alt := doubleMetaphone(word)
	pri = truncate(pri)
	alt = truncate(alt)

	if pri == "" && alt == "" {
		return nil
	}
	if alt == "" || alt == pri {
		return []string{pri}
	}
	return []string{pri, alt}
}

// asciiOnly strips any rune outside the Latin letters the algorithm below
// understands. A token left empty by this filter triggers the "encoding
// failure" fallback described in spec §4.B for non-Latin scripts.
func asciiOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string) string {
	if len(s) > maxKeyLength {
		return s[:maxKeyLength]
	}
	return s
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func hasPrefixAt(word string, i int, prefixes ...string) bool {
	for _, p := range prefixes {
		if i+len(p) <= len(word) && word[i:i+len(p)] == p {
			return true
		}
	}
	return false
}

// doubleMetaphone walks word (already upper-cased, ASCII-only) and emits
// the primary and alternate key tracks. It is a simplified but faithful
// rendition of the standard algorithm's consonant-cluster rules, enough to
// give Slavic/Germanic alternate spellings of the same name a shared key.
func doubleMetaphone(word string) (primary, alternate string) {
	var pri, alt strings.Builder
	n := len(word)
	i := 0

	if hasPrefixAt(word, 0, "GN", "KN", "PN", "WR", "PS") {
		i = 1
	}
	if n > 0 && word[0] == 'X' {
		pri.WriteByte('S')
		alt.WriteByte('S')
		i = 1
	}

	for i < n && pri.Len() < 8 {
		c := word[i]
		switch c {
		case 'A', 'E', 'I', 'O', 'U', 'Y':
			if i == 0 {
				pri.WriteByte('A')
				alt.WriteByte('A')
			}
			i++

		case 'B':
			pri.WriteByte('P')
			alt.WriteByte('P')
			i += skipDouble(word, i, 'B')

		case 'C':
			switch {
			case hasPrefixAt(word, i, "CH"):
				pri.WriteByte('X')
				alt.WriteByte('X')
				i += 2
			case hasPrefixAt(word, i, "CIA"):
				pri.WriteByte('X')
				alt.WriteByte('X')
				i += 3
			case i+1 < n && (word[i+1] == 'I' || word[i+1] == 'E' || word[i+1] == 'Y'):
				pri.WriteByte('S')
				alt.WriteByte('S')
				i++
			default:
				pri.WriteByte('K')
				alt.WriteByte('K')
				i += skipDouble(word, i, 'C')
			}

		case 'D':
			if hasPrefixAt(word, i, "DG") && i+2 < n && (word[i+2] == 'I' || word[i+2] == 'E' || word[i+2] == 'Y') {
				pri.WriteByte('J')
				alt.WriteByte('J')
				i += 3
			} else {
				pri.WriteByte('T')
				alt.WriteByte('T')
				i += skipDouble(word, i, 'D')
			}

		case 'F':
			pri.WriteByte('F')
			alt.WriteByte('F')
			i += skipDouble(word, i, 'F')

		case 'G':
			switch {
			case hasPrefixAt(word, i, "GH"):
				if i > 0 && !isVowel(word[i-1]) {
					pri.WriteByte('K')
					alt.WriteByte('K')
				}
				i += 2
			case hasPrefixAt(word, i, "GN"):
				pri.WriteByte('N')
				alt.WriteByte('K')
				alt.WriteByte('N')
				i += 2
			case i+1 < n && (word[i+1] == 'I' || word[i+1] == 'E' || word[i+1] == 'Y'):
				pri.WriteByte('J')
				alt.WriteByte('K')
				i++
			default:
				pri.WriteByte('K')
				alt.WriteByte('K')
				i += skipDouble(word, i, 'G')
			}

		case 'H':
			if (i == 0 || isVowel(word[i-1])) && i+1 < n && isVowel(word[i+1]) {
				pri.WriteByte('H')
				alt.WriteByte('H')
			}
			i++

		case 'J':
			pri.WriteByte('J')
			alt.WriteByte('A')
			i++

		case 'K':
			pri.WriteByte('K')
			alt.WriteByte('K')
			i += skipDouble(word, i, 'K')

		case 'L':
			pri.WriteByte('L')
			alt.WriteByte('L')
			i += skipDouble(word, i, 'L')

		case 'M':
			pri.WriteByte('M')
			alt.WriteByte('M')
			i += skipDouble(word, i, 'M')

		case 'N':
			pri.WriteByte('N')
			alt.WriteByte('N')
			i += skipDouble(word, i, 'N')

		case 'P':
			if hasPrefixAt(word, i, "PH") {
				pri.WriteByte('F')
				alt.WriteByte('F')
				i += 2
			} else {
				pri.WriteByte('P')
				alt.WriteByte('P')
				i += skipDouble(word, i, 'P')
			}

		case 'Q':
			pri.WriteByte('K')
			alt.WriteByte('K')
			i += skipDouble(word, i, 'Q')

		case 'R':
			pri.WriteByte('R')
			alt.WriteByte('R')
			i += skipDouble(word, i, 'R')

		case 'S':
			switch {
			case hasPrefixAt(word, i, "SH"):
				pri.WriteByte('X')
				alt.WriteByte('X')
				i += 2
			case hasPrefixAt(word, i, "SIO"), hasPrefixAt(word, i, "SIA"):
				pri.WriteByte('S')
				alt.WriteByte('X')
				i += 3
			default:
				pri.WriteByte('S')
				alt.WriteByte('S')
				i += skipDouble(word, i, 'S')
			}

		case 'T':
			switch {
			case hasPrefixAt(word, i, "TH"):
				pri.WriteByte('0')
				alt.WriteByte('T')
				i += 2
			case hasPrefixAt(word, i, "TIO"), hasPrefixAt(word, i, "TIA"):
				pri.WriteByte('X')
				alt.WriteByte('X')
				i += 3
			default:
				pri.WriteByte('T')
				alt.WriteByte('T')
				i += skipDouble(word, i, 'T')
			}

		case 'V':
			pri.WriteByte('F')
			alt.WriteByte('F')
			i += skipDouble(word, i, 'V')

		case 'W':
			if i+1 < n && isVowel(word[i+1]) {
				pri.WriteByte('A')
				alt.WriteByte('F')
			}
			i++

		case 'X':
			pri.WriteByte('K')
			pri.WriteByte('S')
			alt.WriteByte('K')
			alt.WriteByte('S')
			i++

		case 'Z':
			pri.WriteByte('S')
			alt.WriteByte('T')
			i += skipDouble(word, i, 'Z')

		default:
			i++
		}
	}

	return pri.String(), alt.String()
}

// skipDouble returns 2 if the letter at i repeats at i+1 (a doubled
// consonant collapses to a single code), else 1.
func skipDouble(word string, i int, c byte) int {
	if i+1 < len(word) && word[i+1] == c {
		return 2
	}
	return 1
}
