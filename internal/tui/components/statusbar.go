package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmrivas/tablero/internal/tui/theme"
)

type StatusBarProps struct {
	Width int

	// GroupBy is the active swim-lane dimension name
	GroupBy string

	// FilterQuery is the filter text, shown while typing or active
	FilterQuery string

	// FilterTyping marks that the user is still editing the query
	FilterTyping bool

	// GrabbedTitle is the title of the carried card, empty when idle
	GrabbedTitle string
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: board state (grouping, filter, carried card).
// Right side: "press ? for help".
func RenderStatusBar(props StatusBarProps) string {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))

	parts := []string{subtle.Render("lanes: " + props.GroupBy)}

	if props.FilterTyping {
		parts = append(parts, accent.Render("/"+props.FilterQuery+"█"))
	} else if props.FilterQuery != "" {
		parts = append(parts, accent.Render("filter: "+props.FilterQuery))
	}

	if props.GrabbedTitle != "" {
		parts = append(parts, accent.Render("moving: "+props.GrabbedTitle))
	}

	leftRendered := strings.Join(parts, subtle.Render("  │  "))
	rightRendered := subtle.Render("press ? for help")

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
