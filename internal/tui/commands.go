package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jmrivas/tablero/internal/models"
	"github.com/jmrivas/tablero/internal/services/issue"
)

// loadIssues fetches all issues and the blocking index from the database.
func (m Model) loadIssues() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.DbContext()
		defer cancel()

		issues, err := m.Svc.ListIssues(ctx)
		if err != nil {
			return issuesLoadedMsg{err: err}
		}

		blocked, err := m.Svc.BlockedIndex(ctx)
		if err != nil {
			return issuesLoadedMsg{err: err}
		}

		return issuesLoadedMsg{issues: issues, blocked: blocked}
	}
}

// saveStatus persists the status mutation behind a drop. The board already
// shows the move; the resulting statusSavedMsg settles it as committed or
// rolled back.
func (m Model) saveStatus(issueID string, status models.Status) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.DbContext()
		defer cancel()

		_, err := m.Svc.UpdateStatus(ctx, issueID, status)
		return statusSavedMsg{issueID: issueID, err: err}
	}
}

// createIssue persists a new issue from the create form.
func (m Model) createIssue(req issue.CreateIssueRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.DbContext()
		defer cancel()

		created, err := m.Svc.CreateIssue(ctx, req)
		return issueCreatedMsg{issue: created, err: err}
	}
}

// deleteIssue removes an issue and its dependency edges.
func (m Model) deleteIssue(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.DbContext()
		defer cancel()

		return issueDeletedMsg{id: id, err: m.Svc.DeleteIssue(ctx, id)}
	}
}
