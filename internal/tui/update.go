package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and
// updates the model. This implements the "Update" part of the
// Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	// The form needs ALL messages, not just key presses
	if m.UiState.Mode() == state.FormMode {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case issuesLoadedMsg:
		return m.handleIssuesLoaded(msg)

	case statusSavedMsg:
		return m.handleStatusSaved(msg)

	case issueCreatedMsg:
		return m.handleIssueCreated(msg)

	case issueDeletedMsg:
		return m.handleIssueDeleted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches key messages to the appropriate mode handler.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalKey(msg)
	case state.FilterMode:
		return m.handleFilterKey(msg)
	case state.HelpMode:
		return m.handleHelpKey(msg)
	case state.DetailMode:
		return m.handleDetailKey(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirmKey(msg)
	}
	return m, nil
}

// handleIssuesLoaded installs a fresh issue set from the database.
func (m Model) handleIssuesLoaded(msg issuesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to load issues", "error", msg.err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Failed to load issues: %v", msg.err))
		return m, nil
	}

	m.AppState.SetIssues(msg.issues, msg.blocked)
	m.UiState.ResetCardScroll()
	m.clampSelection()
	return m, nil
}

// handleStatusSaved settles the optimistic move behind a drop. Success
// commits it; failure rolls the card back to its previous column and tells
// the user.
func (m Model) handleStatusSaved(msg statusSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		m.DragState.Commit(msg.issueID)
		return m, nil
	}

	slog.Error("failed to persist move", "issue", msg.issueID, "error", msg.err)
	drag := m.DragState.Rollback(msg.issueID)
	if drag != nil {
		source := board.FindColumn(m.AppState.Columns(), drag.SourceID)
		label := drag.SourceID
		if source != nil {
			label = source.Label
		}
		m.NotificationState.Add(state.LevelError,
			fmt.Sprintf("Move failed, card returned to %s: %v", label, msg.err))
	} else {
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Move failed: %v", msg.err))
	}
	m.clampSelection()
	return m, nil
}

// handleIssueCreated reports the form outcome and reloads the board.
func (m Model) handleIssueCreated(msg issueCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to create issue", "error", msg.err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Failed to create issue: %v", msg.err))
		return m, nil
	}

	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Created %s", msg.issue.ID))
	return m, m.loadIssues()
}

// handleIssueDeleted reports the deletion outcome and reloads the board.
func (m Model) handleIssueDeleted(msg issueDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to delete issue", "issue", msg.id, "error", msg.err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Failed to delete issue: %v", msg.err))
		return m, nil
	}

	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted %s", msg.id))
	return m, m.loadIssues()
}
