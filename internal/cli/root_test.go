package cli

import (
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "sanctionscreen [query]" {
		t.Errorf("Expected command use 'sanctionscreen [query]', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Command should have a short description")
	}

	if rootCmd.Long == "" {
		t.Error("Command should have a long description")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	expectedSubcommands := []string{"search", "build", "review", "audit"}

	for _, expectedCmd := range expectedSubcommands {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if strings.HasPrefix(cmd.Use, expectedCmd) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected subcommand '%s' not found", expectedCmd)
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	expectedFlags := []string{"verbose", "subjects", "kind", "threshold", "gender", "birthdate"}

	for _, expectedFlag := range expectedFlags {
		flag := rootCmd.PersistentFlags().Lookup(expectedFlag)
		if flag == nil {
			t.Errorf("Expected flag '%s' not found", expectedFlag)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	helpText := rootCmd.Long

	if !strings.Contains(helpText, "sanctions") {
		t.Error("Help text should mention sanctions/watchlist screening")
	}
}
