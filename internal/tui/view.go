package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/tui/components"
	"github.com/jmrivas/tablero/internal/tui/notifications"
	"github.com/jmrivas/tablero/internal/tui/state"
	"github.com/jmrivas/tablero/internal/tui/theme"
)

const (
	headerHeight    = 2 // title line + gap line
	statusBarHeight = 1
	laneHeaderLines = 1
	minLaneHeight   = components.CardHeight + 6
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Layer-based rendering: always show the base board with modal
	// overlays on top
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBoard()),
	}

	var modal string
	switch m.UiState.Mode() {
	case state.HelpMode:
		modal = m.renderHelp()
	case state.DetailMode:
		if m.detailIssue != nil {
			modal = components.RenderDetail(components.DetailProps{
				Issue:   m.detailIssue,
				Blocked: m.AppState.BlockedInfo(m.detailIssue.ID),
				Width:   min(m.UiState.Width()-4, 80),
			})
		}
	case state.FormMode:
		if m.form != nil {
			modal = components.FormBoxStyle.Render(m.form.View())
		}
	case state.DeleteConfirmMode:
		modal = m.renderDeleteConfirm()
	}

	if layer := centeredLayer(modal, m.UiState.Width(), m.UiState.Height()); layer != nil {
		layers = append(layers, layer)
	}

	layers = append(layers, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// laneHeight returns the total box height available for each lane's columns.
func (m *Model) laneHeight(laneCount int) int {
	boardHeight := m.UiState.Height() - headerHeight - statusBarHeight
	if laneCount <= 1 {
		return max(boardHeight, minLaneHeight)
	}
	return max(boardHeight/laneCount-laneHeaderLines, minLaneHeight)
}

// renderBoard renders the full board: header, swim lanes of columns, and
// the status bar.
func (m *Model) renderBoard() string {
	lanes := m.Lanes()
	height := m.laneHeight(len(lanes))
	grouped := m.AppState.GroupBy() != board.GroupByNone

	header := components.TitleStyle.Render("Tablero") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).
			Render(fmt.Sprintf("  %d issues", m.AppState.TotalIssueCount()))

	sections := []string{header, ""}

	for laneIdx, lane := range lanes {
		if grouped {
			laneHeader := fmt.Sprintf("%s (%d)", lane.Key, laneIssueCount(lane))
			sections = append(sections, components.LaneTitleStyle.Render(laneHeader))
		}
		sections = append(sections, m.renderLane(laneIdx, lane, height))
	}

	sections = append(sections, components.RenderStatusBar(components.StatusBarProps{
		Width:        m.UiState.Width(),
		GroupBy:      state.GroupByName(m.AppState.GroupBy()),
		FilterQuery:  m.SearchState.Query,
		FilterTyping: m.UiState.Mode() == state.FilterMode,
		GrabbedTitle: grabbedTitle(m),
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLane renders one swim lane as a horizontal row of columns.
func (m *Model) renderLane(laneIdx int, lane *state.LaneView, height int) string {
	selectedLane := m.UiState.SelectedLane() == laneIdx

	rendered := make([]string, 0, len(m.AppState.Columns()))
	for colIdx, col := range m.AppState.Columns() {
		selected := selectedLane && m.UiState.SelectedColumn() == colIdx

		selectedIdx := -1
		if selected {
			selectedIdx = m.UiState.SelectedCard()
		}

		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Issues:       lane.Buckets[col.ID],
			Blocked:      m.AppState.Blocked(),
			Selected:     selected,
			SelectedIdx:  selectedIdx,
			GrabbedID:    m.DragState.GrabbedID(),
			Height:       height,
			ScrollOffset: m.UiState.CardScrollOffset(laneIdx, col.ID),
		}))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// laneIssueCount counts the classified issues in one lane.
func laneIssueCount(lane *state.LaneView) int {
	total := 0
	for _, bucket := range lane.Buckets {
		total += len(bucket)
	}
	return total
}

func grabbedTitle(m *Model) string {
	grabbed := m.DragState.Grabbed()
	if grabbed == nil {
		return ""
	}
	return grabbed.Title
}

// renderDeleteConfirm renders the deletion confirmation dialog.
func (m *Model) renderDeleteConfirm() string {
	if m.deleteTarget == nil {
		return ""
	}

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Delete issue?"),
		"",
		m.deleteTarget.Title,
		subtle.Render(m.deleteTarget.ID),
		"",
		subtle.Render("y to delete, n to cancel"),
	)
	return components.DeleteConfirmBoxStyle.Render(content)
}
