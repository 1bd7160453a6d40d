package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jmrivas/tablero/internal/tui/state"
)

// openDetail shows the full detail view for the card under the cursor.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	issue := m.SelectedIssue()
	if issue == nil {
		return m, nil
	}

	m.detailIssue = issue
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

// handleDetailKey handles key events while the detail view is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.Config.KeyMappings.ViewIssue:
		m.detailIssue = nil
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpKey closes the help screen on any of the usual dismiss keys.
func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.Config.KeyMappings.ShowHelp:
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDelete asks before deleting the card under the cursor.
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	issue := m.SelectedIssue()
	if issue == nil {
		return m, nil
	}

	m.deleteTarget = issue
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleDeleteConfirmKey handles the deletion confirmation dialog.
func (m Model) handleDeleteConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		target := m.deleteTarget
		m.deleteTarget = nil
		m.UiState.SetMode(state.NormalMode)
		if target == nil {
			return m, nil
		}
		return m, m.deleteIssue(target.ID)
	case "n", "N", "esc":
		m.deleteTarget = nil
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
