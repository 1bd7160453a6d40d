package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/tui/components"
	"github.com/jmrivas/tablero/internal/tui/state"
)

// handleNormalKey handles key events in the default navigation mode.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.Filter:
		return m.enterFilterMode()
	case km.Refresh:
		return m, m.loadIssues()
	case km.CycleGrouping:
		return m.cycleGrouping()
	case km.NewIssue:
		return m.openIssueForm()
	case km.ViewIssue, "space":
		return m.openDetail()
	case km.DeleteIssue:
		return m.confirmDelete()
	case km.GrabCard:
		return m.grabCard()
	case km.DropCard:
		return m.dropCard()
	case km.CancelGrab:
		if m.DragState.IsGrabbing() {
			m.DragState.CancelGrab()
		} else if m.SearchState.IsActive {
			m.SearchState.Deactivate()
			m.SearchState.Clear()
			m.clampSelection()
		}
		return m, nil
	case km.PrevColumn, "left":
		return m.navigateColumn(-1)
	case km.NextColumn, "right":
		return m.navigateColumn(1)
	case km.PrevCard, "up":
		return m.navigateCard(-1)
	case km.NextCard, "down":
		return m.navigateCard(1)
	case km.PrevLane:
		return m.navigateLane(-1)
	case km.NextLane:
		return m.navigateLane(1)
	}

	return m, nil
}

// navigateColumn moves the cursor horizontally. While a card is grabbed
// this is how the card is carried toward its drop target.
func (m Model) navigateColumn(delta int) (tea.Model, tea.Cmd) {
	columns := m.AppState.Columns()
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(columns) {
		return m, nil
	}

	m.UiState.SetSelectedColumn(next)
	m.UiState.SetSelectedCard(0)
	return m, nil
}

// navigateCard moves the cursor vertically within the selected column.
func (m Model) navigateCard(delta int) (tea.Model, tea.Cmd) {
	if m.DragState.IsGrabbing() {
		return m, nil
	}

	lanes := m.Lanes()
	bucketLen := m.selectedBucketLen(lanes)
	next := m.UiState.SelectedCard() + delta
	if next < 0 || next >= bucketLen {
		return m, nil
	}

	m.UiState.SetSelectedCard(next)
	m.UiState.EnsureCardVisible(
		m.UiState.SelectedLane(),
		m.SelectedColumnID(),
		next,
		components.MaxVisibleCards(m.laneHeight(len(lanes))),
	)
	return m, nil
}

// navigateLane moves the cursor between swim lanes.
func (m Model) navigateLane(delta int) (tea.Model, tea.Cmd) {
	if m.DragState.IsGrabbing() {
		return m, nil
	}

	lanes := m.Lanes()
	next := m.UiState.SelectedLane() + delta
	if next < 0 || next >= len(lanes) {
		return m, nil
	}

	m.UiState.SetSelectedLane(next)
	m.UiState.SetSelectedCard(0)
	return m, nil
}

// cycleGrouping advances the swim-lane dimension and persists the choice.
func (m Model) cycleGrouping() (tea.Model, tea.Cmd) {
	groupBy := m.AppState.CycleGroupBy()
	m.UiState.ResetSelection()
	m.UiState.ResetCardScroll()

	m.Config.Board.GroupBy = state.GroupByName(groupBy)
	if err := m.Config.Save(); err != nil {
		slog.Warn("failed to persist grouping preference", "error", err)
	}

	m.NotificationState.Add(state.LevelInfo, "Lanes: "+state.GroupByName(groupBy))
	return m, nil
}

// grabCard picks up the card under the cursor.
func (m Model) grabCard() (tea.Model, tea.Cmd) {
	issue := m.SelectedIssue()
	if issue == nil {
		return m, nil
	}

	if m.DragState.InFlight(issue.ID) {
		m.NotificationState.Add(state.LevelWarning, "Previous move is still saving")
		return m, nil
	}
	if !m.DragState.Grab(issue, m.SelectedColumnID()) {
		return m, nil
	}
	return m, nil
}

// dropCard releases the grabbed card onto the selected column. A legal drop
// moves the card immediately and persists in the background; a disallowed
// drop leaves the card grabbed so the user can pick another target.
func (m Model) dropCard() (tea.Model, tea.Cmd) {
	if !m.DragState.IsGrabbing() {
		return m, nil
	}

	targetID := m.SelectedColumnID()
	drag, ok := m.DragState.Drop(targetID, m.AppState.Columns())
	if !ok {
		target := board.FindColumn(m.AppState.Columns(), targetID)
		label := targetID
		if target != nil {
			label = target.Label
		}
		m.NotificationState.Add(state.LevelWarning,
			fmt.Sprintf("Can't drop here: %s doesn't accept this card", label))
		return m, nil
	}

	m.UiState.SetSelectedCard(0)
	m.clampSelection()
	return m, m.saveStatus(drag.Issue.ID, drag.NewStatus)
}
