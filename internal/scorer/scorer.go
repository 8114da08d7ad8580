// Package scorer implements the Scorer (spec §4.E): candidate retrieval
// against a phonetic Index, structural pre-filtering (gender, birthdate,
// edit-similarity), a corpus-wide phonetic coverage gate, and per-alias
// multi-signal scoring with threshold-scaled boosts and penalties.
//
// Grounded on the reference searcher's search() function: the same five
// stages (query encoding, candidate retrieval with gender/birthdate/edit
// filters, phonetic coverage gate, per-alias token_sort_ratio scoring
// with boosts/penalties, dedup-and-sort) are reproduced verbatim in
// shape, using github.com/agnivade/levenshtein for the Stage 2
// edit-similarity pre-filter in place of Python's difflib ratio.
package scorer

import (
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/nameguard/sanctionscreen/internal/constants"
	"github.com/nameguard/sanctionscreen/internal/index"
	"github.com/nameguard/sanctionscreen/internal/normalize"
	"github.com/nameguard/sanctionscreen/internal/phonetic"
	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// Options carries the optional query constraints and the similarity
// threshold (spec §4.E inputs).
type Options struct {
	Gender       subject.Gender // GenderUnknown means "not specified"
	Birthdate    time.Time
	HasBirthdate bool
	Threshold    int // 0-100; defaults to constants.DefaultThreshold if 0
}

// Result is one scored match: a subject-id, its score in [0, 100], and
// the alias that produced the best score for that subject.
type Result struct {
	SubjectID string
	Score     float64
	Alias     subject.NameAlias
}

// Scorer evaluates a single query against one (Index, Store) pair. Holds
// no mutable state beyond its injected Encoder, and is safe for
// concurrent use by any number of goroutines once constructed (spec §5).
type Scorer struct {
	idx     *index.Index
	st      *store.Store
	encoder phonetic.Encoder
}

// New builds a Scorer over idx and st. encoder must be the same
// (stateless) encoder used to build idx, so query-time keys line up with
// index-time keys.
func New(idx *index.Index, st *store.Store, encoder phonetic.Encoder) *Scorer {
	return &Scorer{idx: idx, st: st, encoder: encoder}
}

// Search runs the full Stage 1-5 pipeline for query name q and returns
// ranked results, at most one per subject-id, sorted by score descending.
func (s *Scorer) Search(q string, opts Options) []Result {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = constants.DefaultThreshold
	}

	qAlias := subject.NewNameAlias(subject.NewNamePart(q))
	qTokens := normalize.AliasSorted(qAlias)
	if len(qTokens) == 0 {
		return nil
	}

	candidates, matchedTokens := s.retrieveCandidates(qTokens, opts)
	if len(candidates) == 0 {
		return nil
	}

	phoneticRatio, ok := phoneticCoverageRatio(qTokens, matchedTokens)
	if !ok {
		return nil
	}

	qn := strings.Join(qTokens, " ")
	results := s.scoreCandidates(candidates, qTokens, qn, threshold, phoneticRatio)

	return dedupBestPerSubject(results)
}

// retrieveCandidates implements Stage 2: walk QBins through the Index,
// applying the gender filter, the birthdate filter, and the Levenshtein-
// ratio structural pre-filter.
func (s *Scorer) retrieveCandidates(qTokens []string, opts Options) (candidates map[string]struct{}, matchedTokens map[string]struct{}) {
	candidates = make(map[string]struct{})
	matchedTokens = make(map[string]struct{})
	rejected := make(map[string]struct{})

	for _, t := range qTokens {
		for _, key := range s.encoder.Encode(t) {
			for _, posting := range s.idx.Lookup(key) {
				id := posting.SubjectID
				if _, isRejected := rejected[id]; isRejected {
					continue
				}

				rec, ok := s.st.Lookup(id)
				if !ok {
					continue
				}

				if opts.Gender != subject.GenderUnknown && !passesGenderFilter(rec, opts.Gender) {
					rejected[id] = struct{}{}
					continue
				}
				if opts.HasBirthdate && !passesBirthdateFilter(rec, opts.Birthdate) {
					rejected[id] = struct{}{}
					continue
				}

				if levenshteinRatio(t, posting.Token) >= constants.CandidateLevenshteinFloor {
					candidates[id] = struct{}{}
					matchedTokens[t] = struct{}{}
				}
			}
		}
	}

	return candidates, matchedTokens
}

func passesGenderFilter(rec subject.Record, want subject.Gender) bool {
	genders := make(map[subject.Gender]bool)
	for _, a := range rec.Aliases {
		if a.Gender != subject.GenderUnknown {
			genders[a.Gender] = true
		}
	}
	if len(genders) != 1 {
		return true
	}
	return genders[want]
}

func passesBirthdateFilter(rec subject.Record, want time.Time) bool {
	if len(rec.Birthdates) == 0 {
		return true
	}
	for _, bd := range rec.Birthdates {
		if sameCalendarDay(bd, want) {
			return true
		}
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// levenshteinRatio normalizes agnivade/levenshtein's edit distance into a
// similarity ratio in [0, 1]: 1 - distance/max(len(a), len(b)).
func levenshteinRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

// phoneticCoverageRatio implements Stage 3: compute the query-wide
// phonetic coverage ratio from matched vs. unmatched token character
// counts. ok is false if the ratio falls below the floor (or there is
// nothing to measure), in which case the whole query yields no results.
func phoneticCoverageRatio(qTokens []string, matchedTokens map[string]struct{}) (ratio float64, ok bool) {
	var matched, unmatched int
	for _, t := range qTokens {
		if _, ok := matchedTokens[t]; ok {
			matched += len(t)
		} else {
			unmatched += len(t)
		}
	}
	total := matched + unmatched
	if total == 0 {
		return 0, false
	}
	ratio = 100 * float64(matched) / float64(total)
	return ratio, ratio >= constants.PhoneticRatioFloor
}

// scoreCandidates implements Stage 4: score every alias of every
// candidate subject and keep those meeting the threshold.
func (s *Scorer) scoreCandidates(candidates map[string]struct{}, qTokens []string, qn string, threshold int, phoneticRatio float64) []Result {
	lq := len(qn)
	isShort := lq <= constants.ShortInputLengthLimit
	shortness := 0
	if isShort {
		shortness = constants.ShortInputLengthLimit - lq
		if shortness < 0 {
			shortness = 0
		}
	}
	wq := len(qTokens)
	theta := float64(threshold)

	var results []Result
	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rec, ok := s.st.Lookup(id)
		if !ok {
			continue
		}
		for _, alias := range rec.Aliases {
			aTokens := normalize.AliasSorted(alias)
			an := strings.Join(aTokens, " ")
			wa := len(aTokens)

			sim := tokenSortRatio(an, qn)

			var score float64
			if sim == 100 {
				score = 100
			} else {
				score = float64(sim) - constants.NonExactBasePenalty
				score += (theta / 100) * phoneticRatio / constants.PhoneticBoostDivisor
				if isShort {
					score -= constants.ShortInputPenaltyMultiplier * (theta / 100) * float64(shortness)
				}
				missing := abs(wa - wq)
				penalty := float64(missing) * constants.MissingWordPenaltyPerWord * theta / 100
				if penalty > constants.MissingWordPenaltyCap {
					penalty = constants.MissingWordPenaltyCap
				}
				score -= penalty

				if score < 0 {
					score = 0
				}
				if score > constants.NonExactScoreCeiling {
					score = constants.NonExactScoreCeiling
				}
			}

			if score >= theta {
				results = append(results, Result{SubjectID: id, Score: score, Alias: alias})
			}
		}
	}

	return results
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dedupBestPerSubject implements Stage 5: sort by score descending
// (stable so ties keep insertion order), then keep only the first
// (highest-scoring) tuple seen per subject-id.
func dedupBestPerSubject(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	seen := make(map[string]struct{})
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.SubjectID]; ok {
			continue
		}
		seen[r.SubjectID] = struct{}{}
		out = append(out, r)
	}
	return out
}
