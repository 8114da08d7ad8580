// Package constants defines application-wide constants and tuning knobs.
//
// This package centralizes every numeric heuristic used by the indexing and
// scoring pipeline so they are named once instead of scattered as magic
// numbers through the stopword selector, index builder, and scorer.
package constants

import "time"

// Token filtering (spec §3 invariant 1, §4.C).
const (
	// MinTokenLength is the shortest token kept by the stop-word selector
	// and the index builder (the normalizer itself keeps shorter tokens).
	MinTokenLength = 2

	// ShortTokenMaxLength is the upper bound (inclusive) of the "short" token
	// band used by the stop-word selector; tokens longer than this are "long".
	ShortTokenMaxLength = 4
)

// Stop-word selection cutoffs (spec §4.C step 4).
const (
	// LongTokenCutoffMultiplier scales the long-token stopword cutoff.
	LongTokenCutoffMultiplier = 1.5

	// ShortTokenCutoffMultiplier scales the short-token stopword cutoff.
	// Short tokens are pruned more aggressively: titles, particles, and
	// initials pollute phonetic bins disproportionately at low length.
	ShortTokenCutoffMultiplier = 2.0
)

// Index construction (spec §3 invariant 2, §4.D step 2).
const (
	// BinCapDivisor bounds a phonetic bin's posting count to
	// floor(subjectCount / BinCapDivisor), capping worst-case query fan-out.
	// When that cap is 0 (fewer than BinCapDivisor subjects), no bin is pruned.
	BinCapDivisor = 8
)

// Scoring (spec §4.E).
const (
	// CandidateLevenshteinFloor is the minimum normalized edit similarity
	// (Stage 2) for a posting to promote its subject to a candidate.
	CandidateLevenshteinFloor = 0.6

	// PhoneticRatioFloor is the minimum phonetic coverage ratio (Stage 3,
	// 0-100 scale) below which a query is abandoned with no results.
	PhoneticRatioFloor = 25.0

	// ExactMatchScore is the token-sort-ratio value treated as an exact
	// match, bypassing every boost/penalty (Stage 4 step 3).
	ExactMatchScore = 100.0

	// NonExactBasePenalty is subtracted from a non-exact token-sort-ratio
	// before boosts/penalties are applied (Stage 4 step 4).
	NonExactBasePenalty = 5.0

	// PhoneticBoostDivisor controls how much of the phonetic coverage ratio
	// is added back as a boost, scaled by threshold/100.
	PhoneticBoostDivisor = 16.0

	// ShortInputLengthLimit is the normalized-query-length boundary (in
	// characters) below which the short-input penalty applies.
	ShortInputLengthLimit = 12

	// ShortInputPenaltyMultiplier scales the short-input penalty by
	// threshold/100 and the shortfall below ShortInputLengthLimit.
	ShortInputPenaltyMultiplier = 2.0

	// MissingWordPenaltyPerWord scales the per-missing-word penalty by
	// threshold/100.
	MissingWordPenaltyPerWord = 5.0

	// MissingWordPenaltyCap bounds the total missing-word penalty.
	MissingWordPenaltyCap = 20.0

	// NonExactScoreCeiling is the maximum score a non-exact match may reach
	// (spec §8 invariant 6 / §9 Open Question: preserved as-is).
	NonExactScoreCeiling = 99.9

	// DefaultThreshold is the similarity threshold applied when a query
	// does not specify one.
	DefaultThreshold = 60
)

// Ambient defaults.
const (
	// MaxQueryLength bounds raw query input before validation.
	MaxQueryLength = 500

	// DefaultCacheCapacity is the number of distinct queries memoized by the
	// result cache wrapping the query API.
	DefaultCacheCapacity = 1000

	// DefaultCacheTTL bounds how long a cached query result is served
	// before being recomputed against the (immutable) index.
	DefaultCacheTTL = 10 * time.Minute

	// DefaultAuditLogSize bounds the in-memory screening audit trail.
	DefaultAuditLogSize = 10000
)
