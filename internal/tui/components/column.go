package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/models"
	"github.com/jmrivas/tablero/internal/tui/theme"
)

// ColumnProps carries everything needed to render one column cell.
type ColumnProps struct {
	// Column is the board column definition
	Column *board.Column

	// Issues are the classified issues for this cell
	Issues []*models.Issue

	// Blocked is the dependency blocking index for the indicator
	Blocked board.BlockedIndex

	// Selected marks this cell as holding the cursor
	Selected bool

	// SelectedIdx is the selected card index in this cell (-1 if not here)
	SelectedIdx int

	// GrabbedID is the issue ID of the carried card, empty when idle
	GrabbedID string

	// Height is the fixed total height for the column box
	Height int

	// ScrollOffset is the index of the first visible card
	ScrollOffset int
}

// MaxVisibleCards returns how many cards fit in a column of the given
// total height.
func MaxVisibleCards(height int) int {
	// Column overhead breakdown:
	// - Border + padding: 3 lines
	// - Header: 1 line
	// - Top indicator: 1 line
	const columnOverhead = 5
	return max((height-columnOverhead)/CardHeight, 1)
}

// RenderColumn renders a complete column with its title and cards.
// This is a pure, reusable component that composes individual cards.
//
// Layout:
//
//	{Column Label} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// A column that rejects drops shows a padlock next to its label while a
// card is being carried, so the user can see where the card cannot land.
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Column.Label, len(props.Issues))
	if props.GrabbedID != "" && props.Column.DropDisabled {
		header += " 🔒"
	}
	content := TitleStyle.Render(header) + "\n"

	if len(props.Issues) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No issues")
	} else {
		maxVisible := MaxVisibleCards(props.Height)

		// Always reserve space for the top indicator line
		if props.ScrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(props.ScrollOffset+maxVisible, len(props.Issues))
		visible := props.Issues[props.ScrollOffset:endIdx]

		for i, issue := range visible {
			actualIdx := props.ScrollOffset + i
			isSelected := props.Selected && actualIdx == props.SelectedIdx
			isGrabbed := props.GrabbedID != "" && issue.ID == props.GrabbedID
			content += RenderCard(issue, props.Blocked[issue.ID], isSelected, isGrabbed)
		}

		// Fill remaining space so the bottom indicator sits flush with
		// the bottom padding. The box style consumes 3 lines (top border,
		// bottom padding, bottom border); header and top indicator take
		// one line each.
		usedLines := 1 + 1 + (len(visible) * CardHeight)

		hasBottomIndicator := endIdx < len(props.Issues)
		bottomIndicatorLines := 0
		if hasBottomIndicator {
			bottomIndicatorLines = 2 // newline + indicator text
		}

		contentHeight := props.Height - 3
		remainingLines := contentHeight - usedLines - bottomIndicatorLines
		if remainingLines > 0 {
			content += strings.Repeat("\n", remainingLines)
		}

		if hasBottomIndicator {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets
		// content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}
