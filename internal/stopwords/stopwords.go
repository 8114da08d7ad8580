// Package stopwords computes the corpus-adaptive StopwordSet (spec §4.C):
// the set of normalized name-part tokens common enough in a subject
// collection to carry no discriminating signal.
//
// Grounded on find_stop_words/find_noise_words from the reference
// implementations' searcher modules: partition tokens into a short band
// and a long band, take the most frequent tokens in each band up to a
// length-dependent cutoff, and union the two sets. Go's standard sort
// replaces the source's reliance on Counter.most_common insertion-order
// tie-breaking with an explicit, deterministic lexicographic tie-break.
package stopwords

import (
	"sort"

	"github.com/nameguard/sanctionscreen/internal/constants"
	"github.com/nameguard/sanctionscreen/internal/normalize"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// Set is a StopwordSet: normalized tokens deemed too common to
// discriminate within one subject collection (spec §3).
type Set map[string]struct{}

// Contains reports whether token is in the set.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Build computes the StopwordSet for subjects, following spec §4.C:
// partition each subject's distinct normalized tokens into short
// (length 2-4) and long (length >= 5) bands, drop tokens of length < 2
// entirely, then keep the most frequent tokens in each band up to a
// band-specific cutoff computed from the band's frequency/cardinality
// ratio. Deterministic: ties in frequency break on ascending token text.
func Build(subjects []subject.Subject) Set {
	var longTokens, shortTokens []string

	for _, subj := range subjects {
		seen := make(map[string]struct{})
		for _, alias := range subj.Aliases {
			for tok := range normalize.Alias(alias) {
				seen[tok] = struct{}{}
			}
		}
		for tok := range seen {
			switch {
			case len(tok) < constants.MinTokenLength:
				continue
			case len(tok) <= constants.ShortTokenMaxLength:
				shortTokens = append(shortTokens, tok)
			default:
				longTokens = append(longTokens, tok)
			}
		}
	}

	out := make(Set)
	for tok := range topFrequent(longTokens, constants.LongTokenCutoffMultiplier) {
		out[tok] = struct{}{}
	}
	for tok := range topFrequent(shortTokens, constants.ShortTokenCutoffMultiplier) {
		out[tok] = struct{}{}
	}
	return out
}

// topFrequent returns the set of the k most frequent tokens in observed,
// where k = floor(multiplier * len(observed) / distinctCount). Ties break
// on ascending lexicographic token order.
func topFrequent(observed []string, multiplier float64) Set {
	result := make(Set)
	if len(observed) == 0 {
		return result
	}

	counts := make(map[string]int, len(observed))
	for _, tok := range observed {
		counts[tok]++
	}

	distinct := make([]string, 0, len(counts))
	for tok := range counts {
		distinct = append(distinct, tok)
	}

	k := int(multiplier * float64(len(observed)) / float64(len(distinct)))
	if k <= 0 {
		return result
	}
	if k > len(distinct) {
		k = len(distinct)
	}

	sort.Slice(distinct, func(i, j int) bool {
		ci, cj := counts[distinct[i]], counts[distinct[j]]
		if ci != cj {
			return ci > cj
		}
		return distinct[i] < distinct[j]
	})

	for _, tok := range distinct[:k] {
		result[tok] = struct{}{}
	}
	return result
}
