// Package index implements the Index Builder (spec §4.D): it builds an
// immutable phonetic-bin -> postings Index from a SubjectStore and a
// StopwordSet, pruning any bin whose posting list would let a single
// phonetic key fan out to an unbounded share of the corpus.
//
// Grounded on compute_phonetic_bin_lookup_table from the reference
// searcher modules (build the bin->postings map, then call
// remove_outliers to prune oversized bins), translated into a Go type
// that is deeply immutable once Build returns so it needs no locking for
// concurrent readers (spec §5).
package index

import (
	"sort"

	"github.com/nameguard/sanctionscreen/internal/constants"
	"github.com/nameguard/sanctionscreen/internal/normalize"
	"github.com/nameguard/sanctionscreen/internal/phonetic"
	"github.com/nameguard/sanctionscreen/internal/stopwords"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// Posting is a (subject-id, normalized-token) pair under a phonetic key
// (spec §3).
type Posting struct {
	SubjectID string
	Token     string
}

// Index is a read-only mapping from phonetic key to an ordered sequence
// of Postings. The zero value is an empty, usable Index. Once returned
// by Build, an Index is never mutated and is safe for unbounded
// concurrent readers.
type Index struct {
	bins map[string][]Posting
	stat Stats
}

// Stats reports build-time diagnostics useful for monitoring index
// health across corpus updates (an addition beyond the base algorithm:
// which phonetic key overflowed the posting cap by the widest margin,
// and how many bins were pruned in total).
type Stats struct {
	TotalBins          int
	PrunedBins         int
	LongestOverflowKey string
	LongestOverflowLen int
	PostingCap         int
}

// Lookup returns the postings for phonetic key k, or nil if k is absent
// (because no token produced it, or its bin was pruned).
func (idx *Index) Lookup(k string) []Posting {
	return idx.bins[k]
}

// Stats returns the diagnostics recorded when this Index was built.
func (idx *Index) Stats() Stats {
	return idx.stat
}

// Build constructs an Index for one SubjectStore kind, following spec
// §4.D. encoder is injected so the build phase and the query phase share
// the same reentrant Phonetic Encoder instance.
func Build(subjects []subject.Subject, stopSet stopwords.Set, encoder phonetic.Encoder) *Index {
	bins := make(map[string][]Posting)

	for _, subj := range subjects {
		tokens := make(map[string]struct{})
		for _, alias := range subj.Aliases {
			for tok := range normalize.Alias(alias) {
				tokens[tok] = struct{}{}
			}
		}

		sortedTokens := make([]string, 0, len(tokens))
		for tok := range tokens {
			sortedTokens = append(sortedTokens, tok)
		}
		sort.Strings(sortedTokens)

		for _, tok := range sortedTokens {
			if len(tok) < constants.MinTokenLength || stopSet.Contains(tok) {
				continue
			}
			for _, key := range encoder.Encode(tok) {
				if key == "" {
					continue
				}
				bins[key] = append(bins[key], Posting{SubjectID: subj.ID, Token: tok})
			}
		}
	}

	postingCap := len(subjects) / constants.BinCapDivisor
	stat := Stats{PostingCap: postingCap}

	for key, postings := range bins {
		stat.TotalBins++
		if postingCap > 0 && len(postings) > postingCap {
			delete(bins, key)
			stat.PrunedBins++
			if len(postings) > stat.LongestOverflowLen {
				stat.LongestOverflowLen = len(postings)
				stat.LongestOverflowKey = key
			}
		}
	}

	return &Index{bins: bins, stat: stat}
}
