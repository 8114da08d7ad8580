package reviewtui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("24"))
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Reviewing %d candidates for %q", len(m.results), m.queryName)))
	b.WriteString("\n\n")

	if m.state == StateFiltering || m.filter != "" {
		b.WriteString(filterStyle.Render("filter: " + m.filter))
		b.WriteString("\n\n")
	}

	if len(m.visibleIdx) == 0 {
		b.WriteString("no candidates match the current filter\n")
	}

	for row, idx := range m.visibleIdx {
		r := m.results[idx]
		line := fmt.Sprintf("%-30s %s", r.Alias.String(), scoreStyle.Render(fmt.Sprintf("%6.1f", r.Score)))

		switch m.decisions[r.SubjectID] {
		case Accepted:
			line += acceptedStyle.Render("  [accepted]")
		case Rejected:
			line += rejectedStyle.Render("  [rejected]")
		}

		if row == m.cursor && m.state == StateBrowsing {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n(a)ccept  (r)eject  (p)ending  (/)filter  (q)uit\n")

	return b.String()
}
