// Package recovery provides loading fallback mechanisms for the
// sanctionscreen subject store. The query path itself never errors --
// an unmatched or unencodable query simply yields an empty result list
// (see internal/errors's package doc) -- so recovery only has a role at
// startup, when the primary subject fixture fails to load.
package recovery

import (
	stderrors "errors"
	"math"
	"os"
	"time"

	"github.com/nameguard/sanctionscreen/internal/errors"
	"github.com/nameguard/sanctionscreen/internal/store"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

// RetryConfig holds configuration for retry operations.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns a sensible default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		BaseDelay:     100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// StoreRecovery loads the subject fixture with retry and fallback.
type StoreRecovery struct {
	retryConfig RetryConfig
}

// NewStoreRecovery creates a new StoreRecovery with the given retry
// configuration.
func NewStoreRecovery(config RetryConfig) *StoreRecovery {
	return &StoreRecovery{retryConfig: config}
}

// LoadWithFallback attempts to load the subject fixture at primaryPath,
// retrying on transient errors. If the primary path cannot be loaded at
// all it falls back, in order, to backupPath (if non-empty) and finally
// to an empty subject store so the engine can still start and report
// zero matches rather than fail to build.
func (sr *StoreRecovery) LoadWithFallback(primaryPath, backupPath string) (persons, entities *store.Store, usedFallback string, err error) {
	persons, entities, err = sr.loadWithRetry(primaryPath)
	if err == nil {
		return persons, entities, "", nil
	}
	primaryErr := err

	if backupPath != "" {
		if persons, entities, err = store.LoadFixtureFile(backupPath); err == nil {
			return persons, entities, "backup fixture", nil
		}
	}

	persons, entities = emptyStores()
	return persons, entities, "empty subject store", errors.NewLoadError("load", primaryPath, primaryErr)
}

// loadWithRetry attempts to load primaryPath with exponential backoff.
func (sr *StoreRecovery) loadWithRetry(path string) (persons, entities *store.Store, err error) {
	var lastErr error

	for attempt := 1; attempt <= sr.retryConfig.MaxAttempts; attempt++ {
		persons, entities, err = store.LoadFixtureFile(path)
		if err == nil {
			return persons, entities, nil
		}

		lastErr = err
		if !sr.shouldRetry(err) {
			break
		}
		if attempt < sr.retryConfig.MaxAttempts {
			time.Sleep(sr.calculateDelay(attempt))
		}
	}

	return nil, nil, lastErr
}

// shouldRetry reports whether err is worth retrying. A missing file or a
// permissions failure will not change across attempts; a parse error
// likewise won't resolve itself, so only genuinely transient I/O errors
// (e.g. a file briefly locked by another process) are retried.
func (sr *StoreRecovery) shouldRetry(err error) bool {
	var loadErr *errors.LoadError
	if stderrors.As(err, &loadErr) {
		if loadErr.Op == "parse" || loadErr.Op == "convert" {
			return false
		}
		if os.IsNotExist(loadErr.Cause) || os.IsPermission(loadErr.Cause) {
			return false
		}
		return true
	}

	if os.IsNotExist(err) || os.IsPermission(err) {
		return false
	}

	return true
}

// calculateDelay computes the exponential-backoff delay for a given
// attempt number, capped at MaxDelay.
func (sr *StoreRecovery) calculateDelay(attempt int) time.Duration {
	delay := float64(sr.retryConfig.BaseDelay) * math.Pow(sr.retryConfig.BackoffFactor, float64(attempt-1))
	if delay > float64(sr.retryConfig.MaxDelay) {
		delay = float64(sr.retryConfig.MaxDelay)
	}
	return time.Duration(delay)
}

// emptyStores builds a person store and an entity store with no
// subjects -- the engine still builds successfully against them, and
// every query returns zero results until a real fixture is loaded.
func emptyStores() (persons, entities *store.Store) {
	return store.New(subject.Person, map[string]subject.Record{}),
		store.New(subject.Entity, map[string]subject.Record{})
}
