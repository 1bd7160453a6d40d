package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmrivas/tablero/internal/models"
	"github.com/jmrivas/tablero/internal/tui/theme"
)

// RenderCard renders a single issue as a card
//
//	┌─────────────────────┐
//	│ {Issue Title}     ! │
//	│ type │ P2 │ @who    │
//	│ [label1] [label2]   │
//	└─────────────────────┘
//
// This has a fixed width and height. A grabbed card gets the grab border
// color so the carried card stays visible while navigating columns.
func RenderCard(issue *models.Issue, blocked *models.BlockedInfo, selected, grabbed bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	title := renderCardTitle(issue, blocked, bg)
	metadataLine := renderCardMetadata(issue, bg)
	labelLine := renderCardLabels(issue.Labels, bg)
	content := title + metadataLine + labelLine

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	switch {
	case grabbed:
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder))
	case selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

func renderCardTitle(issue *models.Issue, blocked *models.BlockedInfo, bg string) string {
	var blockedIndicator string
	if blocked.IsBlocked() {
		blockedIndicator = BlockedStyle.
			Background(lipgloss.Color(bg)).
			Render("! ")
	}

	title := issue.Title
	if len(title) >= cardTitleMaxLength {
		ellipsisStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		title = title[:cardTitleMaxLength] + ellipsisStyle.Render("...")
	}

	return lipgloss.NewStyle().
		Bold(true).
		Render(" " + title + " " + blockedIndicator)
}

// renderCardMetadata renders type, priority and assignee on one line,
// separated by │
func renderCardMetadata(issue *models.Issue, bg string) string {
	subtle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))

	parts := []string{
		subtle.Render(string(issue.IssueType)),
		subtle.Render(fmt.Sprintf("P%d", issue.Priority)),
	}
	if issue.Assignee != "" {
		parts = append(parts, subtle.Render("@"+issue.Assignee))
	}

	separator := subtle.Render(" │ ")
	return "\n " + strings.Join(parts, separator)
}

// renderCardLabels renders the labels as a single subtle line
func renderCardLabels(labels []string, bg string) string {
	if len(labels) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		return "\n " + emptyStyle.Render("no labels")
	}

	chipStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(bg))

	chips := make([]string, 0, len(labels))
	for _, label := range labels {
		chips = append(chips, chipStyle.Render("["+label+"]"))
	}

	spacer := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(" ")
	return "\n " + strings.Join(chips, spacer)
}
