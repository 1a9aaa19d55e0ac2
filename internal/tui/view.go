package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginTop(1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("231"))

	statusStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// View implements tea.Model. Sections render as titled grids of fixed
// width; the selected cell is highlighted and its name shown below.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	columns := m.engine.Columns()
	offset := 0
	for _, section := range m.sections {
		b.WriteString(titleStyle.Render(section.Title))
		b.WriteString("\n")

		for rowStart := 0; rowStart < len(section.Items); rowStart += columns {
			rowEnd := rowStart + columns
			if rowEnd > len(section.Items) {
				rowEnd = len(section.Items)
			}
			for i := rowStart; i < rowEnd; i++ {
				if offset+i == m.selected {
					b.WriteString(selectedStyle.Render(section.Items[i].ID))
				} else {
					b.WriteString(cellStyle.Render(section.Items[i].ID))
				}
			}
			b.WriteString("\n")
		}

		offset += len(section.Items)
	}

	if item, ok := m.engine.ItemAt(m.selected); ok {
		b.WriteString(nameStyle.Render(item.Name))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render("↑↓←→ navigate · enter select · esc quit"))
	b.WriteString("\n")
	return b.String()
}
