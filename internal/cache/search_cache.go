package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nameguard/sanctionscreen/internal/constants"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// CachedQuery is the subset of a screening query that determines the
// result set, used to build a deterministic cache key.
type CachedQuery struct {
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	Gender       string `json:"gender,omitempty"`
	Birthdate    string `json:"birthdate,omitempty"`
	HasBirthdate bool   `json:"has_birthdate,omitempty"`
	Threshold    int    `json:"threshold"`
}

// CachedResult mirrors scorer.Result so that the cache package does not
// depend on internal/scorer.
type CachedResult struct {
	SubjectID string            `json:"subject_id"`
	Score     float64           `json:"score"`
	Alias     subject.NameAlias `json:"alias"`
}

// QueryCache caches screening results keyed on (kind, name, gender,
// birthdate, threshold) so repeated lookups -- common in batch
// customer-list screening, where the same name recurs across runs --
// skip the scoring pipeline entirely.
type QueryCache struct {
	cache     *LRUCache
	enabled   bool
	keyPrefix string
}

// NewQueryCache creates a new query result cache.
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	return &QueryCache{
		cache:     NewLRUCache(capacity, ttl),
		enabled:   true,
		keyPrefix: "query:",
	}
}

// Get retrieves cached results for a query.
func (qc *QueryCache) Get(q CachedQuery) ([]CachedResult, bool) {
	if !qc.enabled {
		return nil, false
	}

	key := qc.generateCacheKey(q)
	if value, found := qc.cache.Get(key); found {
		if results, ok := value.([]CachedResult); ok {
			return results, true
		}
	}

	return nil, false
}

// Put stores results for a query in the cache.
func (qc *QueryCache) Put(q CachedQuery, results []CachedResult) {
	if !qc.enabled {
		return
	}

	key := qc.generateCacheKey(q)

	cachedResults := make([]CachedResult, len(results))
	copy(cachedResults, results)

	qc.cache.Put(key, cachedResults)
}

// Invalidate removes all cached results (called after the subject store
// is rebuilt from a new fixture).
func (qc *QueryCache) Invalidate() {
	qc.cache.Clear()
}

// Enable enables or disables the cache.
func (qc *QueryCache) Enable(enabled bool) {
	qc.enabled = enabled
}

// IsEnabled returns whether the cache is enabled.
func (qc *QueryCache) IsEnabled() bool {
	return qc.enabled
}

// Stats returns cache statistics.
func (qc *QueryCache) Stats() CacheStats {
	return qc.cache.Stats()
}

// Size returns the current cache size.
func (qc *QueryCache) Size() int {
	return qc.cache.Size()
}

// CleanupExpired removes expired entries.
func (qc *QueryCache) CleanupExpired() int {
	return qc.cache.CleanupExpired()
}

// generateCacheKey builds a deterministic key from the normalized query
// fields, hashed to keep the key compact regardless of name length.
func (qc *QueryCache) generateCacheKey(q CachedQuery) string {
	q.Name = strings.ToLower(strings.TrimSpace(q.Name))

	jsonData, err := json.Marshal(q)
	if err != nil {
		return fmt.Sprintf("%s%s:%s:%d", qc.keyPrefix, q.Kind, q.Name, q.Threshold)
	}

	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%s%x", qc.keyPrefix, hash)
}

// CacheManager owns a QueryCache sized and aged from internal/constants'
// defaults. The screening CLI does not use it; it builds its QueryCache
// with cache.NewQueryCache directly.
type CacheManager struct {
	queryCache *QueryCache
	enabled    bool
}

// NewCacheManager creates a new cache manager with the default
// capacity and TTL.
func NewCacheManager() *CacheManager {
	return &CacheManager{
		queryCache: NewQueryCache(
			constants.DefaultCacheCapacity,
			constants.DefaultCacheTTL,
		),
		enabled: true,
	}
}

// GetQueryCache returns the query cache instance.
func (cm *CacheManager) GetQueryCache() *QueryCache {
	return cm.queryCache
}

// Enable enables or disables all caches.
func (cm *CacheManager) Enable(enabled bool) {
	cm.enabled = enabled
	cm.queryCache.Enable(enabled)
}

// IsEnabled returns whether caching is enabled.
func (cm *CacheManager) IsEnabled() bool {
	return cm.enabled
}

// InvalidateAll clears all caches.
func (cm *CacheManager) InvalidateAll() {
	cm.queryCache.Invalidate()
}

// GetStats returns statistics for all caches.
func (cm *CacheManager) GetStats() map[string]CacheStats {
	return map[string]CacheStats{
		"query": cm.queryCache.Stats(),
	}
}

// CleanupExpired removes expired entries from all caches.
func (cm *CacheManager) CleanupExpired() map[string]int {
	return map[string]int{
		"query": cm.queryCache.CleanupExpired(),
	}
}
