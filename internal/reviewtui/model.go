// Package reviewtui implements the candidate-review TUI: a compliance
// analyst pages through a ranked list of screening candidates for one
// query and accepts or rejects each one, with a quick-filter box to
// narrow the list by alias substring.
package reviewtui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nameguard/sanctionscreen/internal/screening"
)

// Decision is an analyst's disposition of one candidate.
type Decision int

const (
	Pending Decision = iota
	Accepted
	Rejected
)

// AppState represents the current mode of the TUI.
type AppState int

const (
	StateBrowsing AppState = iota
	StateFiltering
	StateDone
)

// Model holds the review session's state: the full candidate list for a
// query, the analyst's decisions so far, and the active quick-filter.
type Model struct {
	state AppState

	queryName string
	results   []screening.Result

	filter        string
	visibleIdx    []int // indexes into results that survive the current filter
	cursor        int   // position within visibleIdx
	decisions     map[string]Decision
	width, height int
}

// NewModel builds a review session for queryName's ranked results.
func NewModel(queryName string, results []screening.Result) Model {
	m := Model{
		queryName: queryName,
		results:   results,
		decisions: make(map[string]Decision, len(results)),
	}
	m.applyFilter()
	return m
}

// Init starts the Bubble Tea program in the alternate screen buffer.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Decisions returns a copy of the analyst's dispositions, keyed by
// subject ID. Candidates left untouched are not present.
func (m Model) Decisions() map[string]Decision {
	out := make(map[string]Decision, len(m.decisions))
	for id, d := range m.decisions {
		if d != Pending {
			out[id] = d
		}
	}
	return out
}
