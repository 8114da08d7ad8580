// Package cli provides the command-line interface for the sanctionscreen
// application.
//
// This package implements all CLI commands and their associated
// functionality using the Cobra CLI framework. It includes:
//   - Root command with global flags and configuration
//   - search: an ad-hoc single-name query against a loaded subject corpus
//   - build: constructs an index from a subject fixture and reports
//     build-time statistics
//   - review: launches the candidate-review TUI for a query's results
//   - audit: prints the in-memory screening audit trail
//
// The Execute function is the main entry point for the CLI application.
package cli

import (
	"github.com/nameguard/sanctionscreen/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "sanctionscreen [query]",
	Short:   "Phonetic fuzzy name matching for sanctions and watchlist screening",
	Version: version.Version,
	Long: `sanctionscreen screens a name against a sanctions/watchlist subject corpus
using phonetic fuzzy matching: it tolerates transliteration variance, word
order, and typos that exact or substring matching would miss.

When run with a bare query, it behaves like "search".`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		searchCmd.Run(cmd, args)
	},
}

// Execute runs the root command and handles all CLI interactions.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(auditCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("subjects", "s", "", "Path to a YAML subject fixture")
	rootCmd.PersistentFlags().StringP("kind", "k", "person", "Subject kind to query: person|entity")
	rootCmd.PersistentFlags().IntP("threshold", "t", 0, "Similarity threshold 0-100 (default: 60)")
	rootCmd.PersistentFlags().String("gender", "", "Exact gender filter: M|F")
	rootCmd.PersistentFlags().String("birthdate", "", "Exact birthdate filter, YYYY-MM-DD")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable query-result caching")
	rootCmd.PersistentFlags().Bool("no-audit", false, "Disable the in-memory audit trail")
	rootCmd.PersistentFlags().String("format", "list", "Output format: list|table|json")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output (or set NO_COLOR env)")
}
