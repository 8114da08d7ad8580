package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nameguard/sanctionscreen/internal/audit"
	"github.com/nameguard/sanctionscreen/internal/cache"
	"github.com/nameguard/sanctionscreen/internal/config"
	"github.com/nameguard/sanctionscreen/internal/constants"
	"github.com/nameguard/sanctionscreen/internal/metrics"
	"github.com/nameguard/sanctionscreen/internal/recovery"
	"github.com/nameguard/sanctionscreen/internal/screening"
)

// sharedState is process-lifetime state that outlives a single command
// invocation's Run closure: the audit log and performance monitor survive
// from one command run to the next within the same process (e.g. tests
// exercising the CLI package directly). They are held in memory only, so
// each separate sanctionscreen invocation starts with them empty.
var (
	sharedLog     = audit.New(0)
	sharedMonitor = metrics.NewPerformanceMonitor()
)

// buildEngine loads the subject corpus named by the root command's
// --subjects flag (falling back to config.DefaultConfig's search path),
// builds a screening.Engine from it, and wires in caching/audit per the
// --no-cache/--no-audit flags. A corpus load failure degrades to an empty
// subject store rather than aborting; an error (with a nil engine) is
// returned only when the engine itself cannot be built.
func buildEngine(cmd *cobra.Command) (*screening.Engine, error) {
	subjectsFlag, _ := cmd.Flags().GetString("subjects")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	noAudit, _ := cmd.Flags().GetBool("no-audit")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := config.DefaultConfig()
	if subjectsFlag != "" {
		cfg.SubjectsPath = subjectsFlag
	}

	sr := recovery.NewStoreRecovery(recovery.DefaultRetryConfig())
	persons, entities, used, err := sr.LoadWithFallback(cfg.GetSubjectsPath(), "")
	if used != "" && verbose {
		fmt.Fprintf(os.Stderr, "warning: primary subject fixture unavailable, using %s\n", used)
	}
	if err != nil && used == "" {
		return nil, fmt.Errorf("loading subject corpus: %w", err)
	}

	engine, err := screening.Build(persons, entities)
	if err != nil {
		return nil, fmt.Errorf("building screening engine: %w", err)
	}

	if !noCache {
		engine.WithCache(cache.NewQueryCache(cfg.CacheCapacity, constants.DefaultCacheTTL))
	}
	if !noAudit {
		engine.WithAuditLog(sharedLog)
	}
	engine.WithMetrics(sharedMonitor)

	return engine, nil
}
