package components

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/jmrivas/tablero/internal/models"
	"github.com/jmrivas/tablero/internal/tui/theme"
)

// DetailProps carries everything needed to render the issue detail view.
type DetailProps struct {
	Issue   *models.Issue
	Blocked *models.BlockedInfo
	Width   int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderDescription renders the issue description as markdown.
// Falls back to the raw text if the renderer fails.
func renderDescription(description string, width int) string {
	if description == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return description
}

// RenderDetail renders the full detail view for one issue: title, metadata,
// markdown description, labels, and the blocking summary.
func RenderDetail(props DetailProps) string {
	issue := props.Issue
	contentWidth := max(props.Width-6, 20)

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	title := TitleStyle.Render(issue.Title)
	id := subtle.Render(issue.ID)

	meta := fmt.Sprintf("%s │ %s │ P%d", issue.IssueType, issue.Status, issue.Priority)
	if issue.Assignee != "" {
		meta += " │ @" + issue.Assignee
	}

	sections := []string{
		title,
		id,
		subtle.Render(meta),
		"",
		renderDescription(issue.Description, contentWidth),
	}

	if len(issue.Labels) > 0 {
		chipStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))
		chips := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			chips = append(chips, chipStyle.Render("["+label+"]"))
		}
		sections = append(sections, "", strings.Join(chips, " "))
	}

	if props.Blocked.IsBlocked() {
		blockedLine := BlockedStyle.Render("! ") + subtle.Render(fmt.Sprintf(
			"blocked by %d open issue(s): %s",
			props.Blocked.BlockedByCount,
			strings.Join(props.Blocked.BlockedBy, ", "),
		))
		sections = append(sections, "", blockedLine)
	}

	sections = append(sections, "", subtle.Render("esc to close"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return DetailBoxStyle.Width(min(props.Width, contentWidth+6)).Render(content)
}
