package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Print the in-memory screening audit trail",
	Long: `Print every screening query recorded so far in this process, most
recent last, along with its best match and duration.

The trail is kept in memory only: it lists the "search" and "review"
queries run earlier in the same process, so a separate sanctionscreen
invocation starts with an empty trail.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		entries := sharedLog.Entries()
		if len(entries) == 0 {
			fmt.Println("No queries recorded yet.")
			return
		}

		fmt.Printf("%d quer(y/ies) recorded (match rate %.0f%%):\n\n", len(entries), sharedLog.MatchRate()*100)
		for _, e := range entries {
			fmt.Printf("%s  %q  results=%d", e.Timestamp.Format("2006-01-02 15:04:05"), e.Query, e.ResultsCount)
			if e.ResultsCount > 0 {
				fmt.Printf("  best=%s(%.1f)", e.BestMatchID, e.BestScore)
			}
			fmt.Printf("  took=%v\n", e.Duration)
		}
	},
}
