// Command sanctionscreen is a phonetic fuzzy name-matching engine for
// sanctions and watchlist screening: search, build, review, and audit
// subcommands over a YAML subject fixture.
package main

import (
	"fmt"
	"os"

	"github.com/nameguard/sanctionscreen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
