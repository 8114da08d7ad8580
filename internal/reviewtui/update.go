package reviewtui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/nameguard/sanctionscreen/internal/screening"
)

// applyFilter recomputes visibleIdx from the current filter string,
// using a fuzzy substring match over each candidate's display alias, and
// clamps cursor into range.
func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visibleIdx = make([]int, len(m.results))
		for i := range m.results {
			m.visibleIdx[i] = i
		}
	} else {
		names := make([]string, len(m.results))
		for i, r := range m.results {
			names[i] = r.Alias.String()
		}
		matches := fuzzy.Find(m.filter, names)
		m.visibleIdx = make([]int, len(matches))
		for i, match := range matches {
			m.visibleIdx[i] = match.Index
		}
	}

	if m.cursor >= len(m.visibleIdx) {
		m.cursor = len(m.visibleIdx) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the currently highlighted candidate and true, or a zero
// Result and false if the filtered list is empty.
func (m Model) current() (screening.Result, bool) {
	if len(m.visibleIdx) == 0 {
		return screening.Result{}, false
	}
	return m.results[m.visibleIdx[m.cursor]], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.state = StateDone
			return m, tea.Quit
		}

		switch m.state {
		case StateBrowsing:
			switch msg.String() {
			case "q", "esc":
				m.state = StateDone
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.visibleIdx)-1 {
					m.cursor++
				}
			case "a":
				if r, ok := m.current(); ok {
					m.decisions[r.SubjectID] = Accepted
				}
			case "r":
				if r, ok := m.current(); ok {
					m.decisions[r.SubjectID] = Rejected
				}
			case "p":
				if r, ok := m.current(); ok {
					m.decisions[r.SubjectID] = Pending
				}
			case "/":
				m.state = StateFiltering
			}

		case StateFiltering:
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.state = StateBrowsing
			case tea.KeyBackspace:
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.applyFilter()
				}
			case tea.KeyRunes:
				m.filter += string(msg.Runes)
				m.applyFilter()
			case tea.KeySpace:
				m.filter += " "
				m.applyFilter()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}
