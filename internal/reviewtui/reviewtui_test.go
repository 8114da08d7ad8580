package reviewtui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nameguard/sanctionscreen/internal/screening"
	"github.com/nameguard/sanctionscreen/internal/subject"
)

func alias(parts ...string) subject.NameAlias {
	nps := make([]subject.NamePart, len(parts))
	for i, p := range parts {
		nps[i] = subject.NewNamePart(p)
	}
	return subject.NewNameAlias(nps...)
}

func sampleResults() []screening.Result {
	return []screening.Result{
		{SubjectID: "P1", Score: 98.5, Alias: alias("Ivan", "Petrov")},
		{SubjectID: "P2", Score: 81.0, Alias: alias("Anastasiya", "Karpanova")},
		{SubjectID: "P3", Score: 76.2, Alias: alias("Ivana", "Petrova")},
	}
}

func TestNewModelShowsAllCandidatesUnfiltered(t *testing.T) {
	m := NewModel("ivan petrov", sampleResults())
	if len(m.visibleIdx) != 3 {
		t.Fatalf("visibleIdx has %d entries, want 3", len(m.visibleIdx))
	}
}

func TestApplyFilterNarrowsByAliasSubstring(t *testing.T) {
	m := NewModel("ivan petrov", sampleResults())
	m.filter = "Ivan"
	m.applyFilter()

	if len(m.visibleIdx) == 0 {
		t.Fatal("expected at least one match for 'Ivan'")
	}
	for _, idx := range m.visibleIdx {
		id := m.results[idx].SubjectID
		if id != "P1" && id != "P3" {
			t.Errorf("unexpected candidate %q survived the 'Ivan' filter", id)
		}
	}
}

func TestApplyFilterClampsCursor(t *testing.T) {
	m := NewModel("ivan petrov", sampleResults())
	m.cursor = 2
	m.filter = "Anastasiya"
	m.applyFilter()

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0 after filtering to one match", m.cursor)
	}
}

func TestAcceptAndRejectKeysRecordDecisions(t *testing.T) {
	m := NewModel("ivan petrov", sampleResults())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = next.(Model)
	if m.decisions["P1"] != Accepted {
		t.Errorf("decision for P1 = %v, want Accepted", m.decisions["P1"])
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if m.decisions["P2"] != Rejected {
		t.Errorf("decision for P2 = %v, want Rejected", m.decisions["P2"])
	}

	decisions := m.Decisions()
	if len(decisions) != 2 {
		t.Errorf("Decisions() returned %d entries, want 2 (pending candidates excluded)", len(decisions))
	}
}

func TestQuitKeyEndsProgram(t *testing.T) {
	m := NewModel("ivan petrov", sampleResults())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command from 'q'")
	}
}

func TestFilterModeTogglesOnSlash(t *testing.T) {
	m := NewModel("ivan petrov", sampleResults())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = next.(Model)
	if m.state != StateFiltering {
		t.Errorf("state = %v, want StateFiltering after '/'", m.state)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("P")})
	m = next.(Model)
	if m.filter != "P" {
		t.Errorf("filter = %q, want %q", m.filter, "P")
	}
}
