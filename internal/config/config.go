// Package config provides application configuration management.
//
// This package handles all configuration-related functionality including:
//   - Default configuration values
//   - Configuration validation
//   - Subject fixture path resolution with fallbacks
//   - User directory management
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nameguard/sanctionscreen/internal/constants"
)

// Config holds application configuration settings.
//
// Config manages all configurable aspects of the screening engine:
// subject fixture location, default scoring threshold, caching and audit
// toggles, and directory locations. It provides intelligent defaults and
// validation to ensure the CLI runs correctly across different
// environments.
type Config struct {
	// SubjectsPath is the path to the YAML subject fixture loaded at
	// startup (persons and entities).
	SubjectsPath string

	// DefaultThreshold is the default similarity threshold. Validate
	// checks it; the CLI takes its threshold from --threshold instead.
	DefaultThreshold int

	// CacheEnabled records whether query-result caching is wanted. The CLI
	// does not read it; caching there follows --no-cache.
	CacheEnabled bool

	// CacheCapacity bounds the number of distinct queries memoized.
	CacheCapacity int

	// AuditEnabled records whether screening calls are wanted in the
	// in-memory audit trail. The CLI does not read it; auditing there
	// follows --no-audit.
	AuditEnabled bool

	// AuditLogSize is the wanted audit trail bound. Validate checks it;
	// the CLI's audit log is created without reading it.
	AuditLogSize int

	// ConfigDir is the directory where configuration files are stored.
	ConfigDir string
}

// DefaultConfig returns a new Config instance with sensible default
// values: subjects loaded from the bundled fixture, default threshold
// from internal/constants, caching and audit trail both enabled.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".config", "sanctionscreen")

	return &Config{
		SubjectsPath:     "assets/subjects.yml",
		DefaultThreshold: constants.DefaultThreshold,
		CacheEnabled:     true,
		CacheCapacity:    constants.DefaultCacheCapacity,
		AuditEnabled:     true,
		AuditLogSize:     constants.DefaultAuditLogSize,
		ConfigDir:        configDir,
	}
}

// Validate checks if the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DefaultThreshold < 0 || c.DefaultThreshold > 100 {
		return fmt.Errorf("DefaultThreshold must be in [0, 100], got %d", c.DefaultThreshold)
	}
	if c.SubjectsPath == "" {
		return fmt.Errorf("SubjectsPath cannot be empty")
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("CacheCapacity must be non-negative, got %d", c.CacheCapacity)
	}
	if c.AuditLogSize < 0 {
		return fmt.Errorf("AuditLogSize must be non-negative, got %d", c.AuditLogSize)
	}
	return nil
}

// GetSubjectsPath returns the path to the subject fixture file.
//
// This method implements intelligent path resolution with multiple
// fallback locations. It first tries the configured SubjectsPath, then
// falls back to common installation locations in this order:
//  1. Configured path
//  2. System-wide installations (/usr/local/share, /usr/share)
//  3. Local development paths (assets/)
//
// If no file is found, it returns the originally configured path,
// allowing the calling code to handle the error appropriately.
func (c *Config) GetSubjectsPath() string {
	if _, err := os.Stat(c.SubjectsPath); err == nil {
		return c.SubjectsPath
	}

	fallbacks := []string{
		"/usr/local/share/sanctionscreen/subjects.yml",
		"/usr/share/sanctionscreen/subjects.yml",
		"assets/subjects.yml",
		filepath.Join("assets", "subjects.yml"),
		"subjects.yml",
	}

	for _, path := range fallbacks {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return c.SubjectsPath
}

// EnsureConfigDir creates the configuration directory if it doesn't
// exist. Safe to call multiple times.
func (c *Config) EnsureConfigDir() error {
	const secureDirectoryMode = 0755
	return os.MkdirAll(c.ConfigDir, secureDirectoryMode)
}
