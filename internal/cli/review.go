package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nameguard/sanctionscreen/internal/reviewtui"
	"github.com/nameguard/sanctionscreen/internal/screening"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

var reviewCmd = &cobra.Command{
	Use:   "review [name]",
	Short: "Interactively review screening candidates for a name",
	Long: `Run a query and launch an interactive TUI to page through the ranked
candidates, accepting or rejecting each one, with a quick-filter to narrow
the list by alias substring.

Example:
  sanctionscreen review "Ivan Petrov"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")

		kindFlag, _ := cmd.Flags().GetString("kind")
		threshold, _ := cmd.Flags().GetInt("threshold")

		kind := subject.Person
		if strings.EqualFold(kindFlag, "entity") {
			kind = subject.Entity
		}

		engine, err := buildEngine(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		results, err := engine.Search(kind, screening.Query{Name: query, Threshold: threshold})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		model := reviewtui.NewModel(query, results)
		p := tea.NewProgram(model, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error running review TUI: %v\n", err)
			return
		}

		reviewed := final.(reviewtui.Model)
		decisions := reviewed.Decisions()
		if len(decisions) == 0 {
			fmt.Println("No decisions recorded.")
			return
		}
		fmt.Printf("%d decision(s) recorded:\n", len(decisions))
		for id, d := range decisions {
			verdict := "rejected"
			if d == reviewtui.Accepted {
				verdict = "accepted"
			}
			fmt.Printf("  %s: %s\n", id, verdict)
		}
	},
}
