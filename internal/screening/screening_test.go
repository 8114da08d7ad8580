package screening

import (
	"testing"

	"github.com/nameguard/sanctionscreen/internal/audit"
	"github.com/nameguard/sanctionscreen/internal/cache"
	"github.com/nameguard/sanctionscreen/internal/metrics"
	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

func testFixture(t *testing.T) []byte {
	t.Helper()
	return []byte(`
persons:
  - id: P1
    kind: person
    aliases:
      - parts: ["Anastasiya", "Nikolayevna", "Karpanova"]
entities:
  - id: E1
    kind: entity
    aliases:
      - parts: ["ACME", "Trading", "Company"]
`)
}

func buildEngine(t *testing.T) *Engine {
	t.Helper()
	persons, entities, err := store.LoadFixture(testFixture(t), "test.yaml")
	if err != nil {
		t.Fatalf("LoadFixture failed: %v", err)
	}
	engine, err := Build(persons, entities)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return engine
}

func TestSearchPerson(t *testing.T) {
	engine := buildEngine(t)
	results, err := engine.Search(subject.Person, Query{Name: "Anastasiya Nikolayevna Karpanova", Threshold: 80})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].SubjectID != "P1" {
		t.Errorf("results = %+v, want one result for P1", results)
	}
}

func TestSearchEntity(t *testing.T) {
	engine := buildEngine(t)
	results, err := engine.Search(subject.Entity, Query{Name: "ACME Trading Company", Threshold: 90})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].SubjectID != "E1" {
		t.Errorf("results = %+v, want one result for E1", results)
	}
}

func TestSearchEmptyNameReturnsEmptyResultsNotError(t *testing.T) {
	engine := buildEngine(t)
	results, err := engine.Search(subject.Person, Query{Name: ""})
	if err != nil {
		t.Errorf("Search with an empty query name returned an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for an empty query name, got %d", len(results))
	}
}

func TestSearchWhitespaceOnlyNameReturnsEmptyResultsNotError(t *testing.T) {
	engine := buildEngine(t)
	results, err := engine.Search(subject.Person, Query{Name: "   "})
	if err != nil {
		t.Errorf("Search with a whitespace-only query name returned an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for a whitespace-only query name, got %d", len(results))
	}
}

func TestSearchDefaultsThreshold(t *testing.T) {
	engine := buildEngine(t)
	// Threshold 0 should fall back to the default rather than error.
	if _, err := engine.Search(subject.Person, Query{Name: "Anastasiya Karpanova"}); err != nil {
		t.Errorf("Search with default threshold returned error: %v", err)
	}
}

func TestBuildRejectsMismatchedKind(t *testing.T) {
	persons, entities, err := store.LoadFixture(testFixture(t), "test.yaml")
	if err != nil {
		t.Fatalf("LoadFixture failed: %v", err)
	}
	if _, err := Build(entities, persons); err == nil {
		t.Error("expected Build to reject stores passed in swapped order")
	}
}

func TestWithAuditLogRecordsSearches(t *testing.T) {
	engine := buildEngine(t)
	log := audit.New(10)
	engine.WithAuditLog(log)

	if _, err := engine.Search(subject.Person, Query{Name: "Anastasiya Nikolayevna Karpanova", Threshold: 80}); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if log.Len() != 1 {
		t.Fatalf("audit log has %d entries, want 1", log.Len())
	}
	if log.Entries()[0].BestMatchID != "P1" {
		t.Errorf("recorded best match = %q, want P1", log.Entries()[0].BestMatchID)
	}
}

func TestWithMetricsRecordsSearchOperations(t *testing.T) {
	engine := buildEngine(t)
	monitor := metrics.NewPerformanceMonitor()
	engine.WithMetrics(monitor)

	if _, err := engine.Search(subject.Person, Query{Name: "Anastasiya Nikolayevna Karpanova", Threshold: 80}); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	report := monitor.GetPerformanceReport()
	found := false
	for _, m := range report.ApplicationMetrics {
		if m.Name == "searches_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected a searches_total metric after a search")
	}
}

func TestWithCacheServesRepeatQueryFromCache(t *testing.T) {
	engine := buildEngine(t)
	qcache := cache.NewQueryCache(10, 0)
	engine.WithCache(qcache)

	q := Query{Name: "Anastasiya Nikolayevna Karpanova", Threshold: 80}

	first, err := engine.Search(subject.Person, q)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if qcache.Size() != 1 {
		t.Fatalf("cache size = %d, want 1 after first search", qcache.Size())
	}

	second, err := engine.Search(subject.Person, q)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(second) != len(first) || second[0].SubjectID != first[0].SubjectID {
		t.Errorf("cached results = %+v, want match of %+v", second, first)
	}

	stats := qcache.Stats()
	if stats.Hits < 1 {
		t.Errorf("expected at least one cache hit, got stats %+v", stats)
	}
}

func TestBatchSearch(t *testing.T) {
	engine := buildEngine(t)
	queries := []Query{
		{Name: "Anastasiya Nikolayevna Karpanova", Threshold: 80},
		{Name: "Completely Unrelated Name", Threshold: 80},
	}
	results := engine.BatchSearch(subject.Person, queries)
	if len(results) != 2 {
		t.Fatalf("got %d batch results, want 2", len(results))
	}
	if len(results[0].Results) != 1 {
		t.Errorf("expected first query to match, got %+v", results[0])
	}
	if len(results[1].Results) != 0 {
		t.Errorf("expected second query to not match, got %+v", results[1])
	}

	rate := MatchRate(results)
	if rate != 0.5 {
		t.Errorf("MatchRate = %v, want 0.5", rate)
	}
}
