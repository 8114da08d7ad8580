package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nameguard/sanctionscreen/internal/screening"
	"github.com/nameguard/sanctionscreen/internal/subject"
	"github.com/nameguard/sanctionscreen/internal/validation"
)

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Screen a name against the loaded subject corpus",
	Long: `Screen a name against the loaded subject corpus using phonetic fuzzy
matching.

Examples:
  sanctionscreen search "Ivan Petrov"
  sanctionscreen search --kind entity "Severstal OJSC"
  sanctionscreen search --threshold 75 --gender M "Ivan Petrov"
  sanctionscreen search --format json "Ivan Petrov"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")

		kindFlag, _ := cmd.Flags().GetString("kind")
		threshold, _ := cmd.Flags().GetInt("threshold")
		genderFlag, _ := cmd.Flags().GetString("gender")
		birthdateFlag, _ := cmd.Flags().GetString("birthdate")
		verbose, _ := cmd.Flags().GetBool("verbose")

		kind := subject.Person
		if strings.EqualFold(kindFlag, "entity") {
			kind = subject.Entity
		}

		gender, err := validation.ParseGender(genderFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}
		birthdate, hasBirthdate, err := validation.ParseBirthdate(birthdateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		engine, err := buildEngine(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		q := screening.Query{
			Name:         query,
			Gender:       gender,
			Birthdate:    birthdate,
			HasBirthdate: hasBirthdate,
			Threshold:    threshold,
		}

		results, err := engine.Search(kind, q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}

		if verbose {
			fmt.Printf("Screening %q as %s (threshold %d)\n\n", query, kind, threshold)
		}

		format, _ := cmd.Flags().GetString("format")
		printResults(results, format)
	},
}

func printResults(results []screening.Result, format string) {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(results)

	case "table":
		fmt.Printf("%-4s %-40s %-8s\n", "#", "Alias", "Score")
		fmt.Println(strings.Repeat("-", 56))
		for i, r := range results {
			fmt.Printf("%-4d %-40s %-8.1f\n", i+1, r.Alias.String(), r.Score)
		}

	default: // list
		if len(results) == 0 {
			fmt.Println("No candidates matched.")
			return
		}
		fmt.Printf("Found %d candidate(s):\n\n", len(results))
		for i, r := range results {
			fmt.Printf("%d. %s  (id: %s, score: %.1f)\n", i+1, r.Alias.String(), r.SubjectID, r.Score)
		}
	}
}
