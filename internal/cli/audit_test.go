package cli

import "testing"

func TestAuditCommandRecordsPriorSearches(t *testing.T) {
	path := writeTestFixture(t)

	runCLI(t, "search", "--subjects", path, "Ivan Petrov")
	out := runCLI(t, "audit")

	if !bytesContains(out, "Ivan Petrov") {
		t.Errorf("expected audit trail to mention the prior query, got:\n%s", out)
	}
}
