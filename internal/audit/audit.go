// Package audit records a timestamped, in-memory, append-only trail of
// screening queries: who was searched, what was found, and how long it
// took. Not part of the core scoring pipeline -- a compliance workflow
// wraps the Query API with this so each decision can be reconstructed
// later.
//
// Grounded on the teacher's search-history tracker (SearchEntry /
// SearchHistory: a bounded, append-only log with recency-ordered
// lookups), generalized from "shell command searched" to "screening
// query run against the engine, with its best match and score."
package audit

import (
	"sort"
	"time"
)

// Entry is one recorded screening call.
type Entry struct {
	Query        string
	Timestamp    time.Time
	ResultsCount int
	BestMatchID  string
	BestScore    float64
	Duration     time.Duration
}

// Log is a bounded, append-only, in-memory audit trail. The zero value
// is not usable; construct with New. Log is not safe for concurrent
// writes from multiple goroutines without external synchronization, in
// keeping with the core pipeline's own single-writer assumption --
// queries fan out over read-only Index/Store values, but the audit trail
// itself is an external side effect of each call.
type Log struct {
	entries []Entry
	maxSize int
}

// New creates an empty Log retaining at most maxSize entries. A
// non-positive maxSize falls back to a default of 10000 (spec's ambient
// default for audit retention).
func New(maxSize int) *Log {
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &Log{maxSize: maxSize}
}

// Record appends one entry, trimming the oldest entry if the log is at
// capacity.
func (l *Log) Record(e Entry) {
	l.entries = append(l.entries, e)
	if len(l.entries) > l.maxSize {
		l.entries = l.entries[len(l.entries)-l.maxSize:]
	}
}

// Entries returns a copy of all recorded entries in chronological order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports how many entries are currently retained.
func (l *Log) Len() int {
	return len(l.entries)
}

// RecentQueries returns up to limit distinct query strings, most recent
// first. A non-positive limit falls back to 10.
func (l *Log) RecentQueries(limit int) []string {
	if limit <= 0 {
		limit = 10
	}
	seen := make(map[string]bool)
	var out []string
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		q := l.entries[i].Query
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}

// MatchRate returns the fraction of recorded entries that produced at
// least one result, in [0, 1]. Returns 0 if the log is empty.
func (l *Log) MatchRate() float64 {
	if len(l.entries) == 0 {
		return 0
	}
	matched := 0
	for _, e := range l.entries {
		if e.ResultsCount > 0 {
			matched++
		}
	}
	return float64(matched) / float64(len(l.entries))
}

// SlowestEntries returns the n entries with the longest Duration,
// descending, useful for spotting queries that widened past the index's
// posting cap.
func (l *Log) SlowestEntries(n int) []Entry {
	sorted := l.Entries()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
