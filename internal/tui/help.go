package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/jmrivas/tablero/internal/tui/components"
	"github.com/jmrivas/tablero/internal/tui/theme"
)

// renderHelp renders the help screen listing the active key mappings.
func (m *Model) renderHelp() string {
	km := m.Config.KeyMappings

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Width(10)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	row := func(key, desc string) string {
		return keyStyle.Render(displayKey(key)) + descStyle.Render(desc)
	}

	sections := []string{
		components.TitleStyle.Render("Keyboard Shortcuts"),
		"",
		components.LaneTitleStyle.Render("Cards"),
		row(km.NewIssue, "new issue"),
		row(km.ViewIssue, "view issue"),
		row(km.DeleteIssue, "delete issue"),
		row(km.GrabCard, "grab card"),
		row(km.DropCard, "drop card on selected column"),
		row(km.CancelGrab, "cancel grab / clear filter"),
		"",
		components.LaneTitleStyle.Render("Navigation"),
		row(km.PrevColumn+"/"+km.NextColumn, "previous / next column"),
		row(km.PrevCard+"/"+km.NextCard, "previous / next card"),
		row(km.PrevLane+"/"+km.NextLane, "previous / next lane"),
		"",
		components.LaneTitleStyle.Render("Board"),
		row(km.CycleGrouping, "cycle swim lanes (none, type, assignee, label)"),
		row(km.Filter, "filter issues"),
		row(km.Refresh, "reload from database"),
		"",
		row(km.Quit, "quit"),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).
			Render("esc to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return components.HelpBoxStyle.Render(content)
}

// displayKey makes unprintable bindings readable in the help screen.
func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
