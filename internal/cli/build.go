package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a screening index from a subject fixture and report statistics",
	Long: `Load a YAML subject fixture, build the person and entity indexes, and
print per-kind build-time diagnostics: total phonetic bins, bins pruned by
the posting cap, and the widest overflow.

Example:
  sanctionscreen build --subjects assets/subjects.yml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := buildEngine(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		personStats, entityStats := engine.IndexStats()

		fmt.Println("person index:")
		printIndexStats(personStats.TotalBins, personStats.PrunedBins, personStats.LongestOverflowKey, personStats.LongestOverflowLen, personStats.PostingCap)
		fmt.Println("entity index:")
		printIndexStats(entityStats.TotalBins, entityStats.PrunedBins, entityStats.LongestOverflowKey, entityStats.LongestOverflowLen, entityStats.PostingCap)
	},
}

func printIndexStats(totalBins, prunedBins int, longestKey string, longestLen, postingCap int) {
	fmt.Printf("  bins: %d (posting cap %d)\n", totalBins, postingCap)
	fmt.Printf("  pruned: %d\n", prunedBins)
	if prunedBins > 0 {
		fmt.Printf("  widest overflow: %q (%d postings)\n", longestKey, longestLen)
	}
}
