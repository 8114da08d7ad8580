// Package screening implements the Query API (spec §4.G): it owns one
// Scorer per subject kind (person, entity), builds them once from a
// SubjectStore, validates caller input before it reaches the scoring
// pipeline, and optionally records every call to an audit trail.
package screening

import (
	"fmt"
	"sync"
	"time"

	"github.com/nameguard/sanctionscreen/internal/audit"
	"github.com/nameguard/sanctionscreen/internal/cache"
	"github.com/nameguard/sanctionscreen/internal/errors"
	"github.com/nameguard/sanctionscreen/internal/index"
	"github.com/nameguard/sanctionscreen/internal/metrics"
	"github.com/nameguard/sanctionscreen/internal/phonetic"
	"github.com/nameguard/sanctionscreen/internal/scorer"
	"github.com/nameguard/sanctionscreen/internal/stopwords"
	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
	"github.com/nameguard/sanctionscreen/internal/validation"
)

// Query is a single screening request: a name and optional exact
// filters. Gender and birthdate are "not specified" by their zero
// values (GenderUnknown, HasBirthdate=false).
type Query struct {
	Name         string
	Gender       subject.Gender
	Birthdate    time.Time
	HasBirthdate bool
	Threshold    int
}

// Result mirrors scorer.Result; re-exported so callers outside this
// module's internal tree don't need to import internal/scorer directly.
type Result = scorer.Result

// Engine orchestrates the Normalizer, Phonetic Encoder, Stop-word
// Selector, Index Builder, and Scorer (spec components A-F) for one
// subject collection split into persons and entities. No hidden state;
// safe for concurrent Search/BatchSearch calls once built (spec §4.G).
type Engine struct {
	persons  *scorer.Scorer
	entities *scorer.Scorer

	personIndexStats index.Stats
	entityIndexStats index.Stats

	log     *audit.Log
	logMu   sync.Mutex
	monitor *metrics.PerformanceMonitor
	qcache  *cache.QueryCache
}

// Build constructs an Engine from the two per-kind SubjectStores,
// deriving each kind's StopwordSet and Index exactly once (spec §3
// lifecycle: "StopwordSet and Index are derived once from SubjectStore
// and then immutable").
func Build(persons, entities *store.Store) (*Engine, error) {
	if persons.Kind() != subject.Person {
		return nil, errors.NewBuildError("person", fmt.Errorf("store kind is %s, not person", persons.Kind()))
	}
	if entities.Kind() != subject.Entity {
		return nil, errors.NewBuildError("entity", fmt.Errorf("store kind is %s, not entity", entities.Kind()))
	}

	enc := phonetic.NewEncoder()

	personSubjects := persons.Subjects()
	entitySubjects := entities.Subjects()

	personStop := stopwords.Build(personSubjects)
	entityStop := stopwords.Build(entitySubjects)

	personIdx := index.Build(personSubjects, personStop, enc)
	entityIdx := index.Build(entitySubjects, entityStop, enc)

	return &Engine{
		persons:          scorer.New(personIdx, persons, enc),
		entities:         scorer.New(entityIdx, entities, enc),
		personIndexStats: personIdx.Stats(),
		entityIndexStats: entityIdx.Stats(),
	}, nil
}

// WithAuditLog attaches an audit.Log that every subsequent Search and
// BatchSearch call records into. Returns the Engine for chaining.
func (e *Engine) WithAuditLog(log *audit.Log) *Engine {
	e.log = log
	return e
}

// WithMetrics attaches a PerformanceMonitor that every subsequent Search
// call reports its duration, result count, and query length to. Returns
// the Engine for chaining.
func (e *Engine) WithMetrics(monitor *metrics.PerformanceMonitor) *Engine {
	e.monitor = monitor
	return e
}

// WithCache attaches a QueryCache. Subsequent Search calls check it
// before running the scoring pipeline and populate it on a miss. Returns
// the Engine for chaining.
func (e *Engine) WithCache(c *cache.QueryCache) *Engine {
	e.qcache = c
	return e
}

// IndexStats returns the build-time diagnostics for the person and
// entity indexes respectively.
func (e *Engine) IndexStats() (persons, entities index.Stats) {
	return e.personIndexStats, e.entityIndexStats
}

// Search validates q and runs it against the given kind's Scorer,
// returning a ranked result list (spec §4.E output). Validation errors
// are returned rather than silently degrading the query.
func (e *Engine) Search(kind subject.Kind, q Query) ([]Result, error) {
	name, err := validation.ValidateQueryName(q.Name)
	if err != nil {
		return nil, errors.NewValidationError("name", q.Name, err)
	}
	threshold, err := validation.ValidateThreshold(q.Threshold)
	if err != nil {
		return nil, errors.NewValidationError("threshold", "", err)
	}

	start := time.Now()

	cacheKey := cache.CachedQuery{
		Kind:         kind.String(),
		Name:         name,
		Gender:       q.Gender.String(),
		HasBirthdate: q.HasBirthdate,
		Threshold:    threshold,
	}
	if q.HasBirthdate {
		cacheKey.Birthdate = q.Birthdate.Format("2006-01-02")
	}

	var results []Result
	cacheHit := false

	if e.qcache != nil {
		if cached, found := e.qcache.Get(cacheKey); found {
			results = cachedResultsToResults(cached)
			cacheHit = true
		}
	}

	if !cacheHit {
		opts := scorer.Options{
			Gender:       q.Gender,
			Birthdate:    q.Birthdate,
			HasBirthdate: q.HasBirthdate,
			Threshold:    threshold,
		}

		switch kind {
		case subject.Person:
			results = e.persons.Search(name, opts)
		case subject.Entity:
			results = e.entities.Search(name, opts)
		}

		if e.qcache != nil {
			e.qcache.Put(cacheKey, resultsToCachedResults(results))
		}
	}

	elapsed := time.Since(start)

	if e.log != nil {
		entry := audit.Entry{Query: name, Timestamp: start, ResultsCount: len(results), Duration: elapsed}
		if len(results) > 0 {
			entry.BestMatchID = results[0].SubjectID
			entry.BestScore = results[0].Score
		}
		e.logMu.Lock()
		e.log.Record(entry)
		e.logMu.Unlock()
	}

	if e.monitor != nil {
		e.monitor.RecordSearchOperation(elapsed, len(results), cacheHit, len(name))
	}

	return results, nil
}

// resultsToCachedResults converts Results to their cache representation.
func resultsToCachedResults(results []Result) []cache.CachedResult {
	out := make([]cache.CachedResult, len(results))
	for i, r := range results {
		out[i] = cache.CachedResult{SubjectID: r.SubjectID, Score: r.Score, Alias: r.Alias}
	}
	return out
}

// cachedResultsToResults reconstructs Results from a cache hit.
func cachedResultsToResults(cached []cache.CachedResult) []Result {
	out := make([]Result, len(cached))
	for i, c := range cached {
		out[i] = Result{SubjectID: c.SubjectID, Score: c.Score, Alias: c.Alias}
	}
	return out
}

// BatchResult pairs a Query with its outcome, for BatchSearch callers
// that need to correlate input rows to results (e.g. a customer-list
// screening run).
type BatchResult struct {
	Query   Query
	Results []Result
	Err     error
}

// BatchSearch runs Search for every query against kind, in order,
// continuing past individual validation errors rather than aborting the
// whole batch -- grounded in the batch customer-list screening workflow
// of screening many names against one engine instance and aggregating
// outcomes.
func (e *Engine) BatchSearch(kind subject.Kind, queries []Query) []BatchResult {
	out := make([]BatchResult, len(queries))
	for i, q := range queries {
		results, err := e.Search(kind, q)
		out[i] = BatchResult{Query: q, Results: results, Err: err}
	}
	return out
}

// MatchRate returns the fraction of batch results that produced at least
// one match, in [0, 1].
func MatchRate(results []BatchResult) float64 {
	if len(results) == 0 {
		return 0
	}
	matched := 0
	for _, r := range results {
		if len(r.Results) > 0 {
			matched++
		}
	}
	return float64(matched) / float64(len(results))
}
