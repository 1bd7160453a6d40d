package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jmrivas/tablero/internal/tui/state"
)

// enterFilterMode starts a fresh filter query.
func (m Model) enterFilterMode() (tea.Model, tea.Cmd) {
	m.SearchState.Clear()
	m.SearchState.Deactivate()
	m.UiState.SetMode(state.FilterMode)
	return m, nil
}

// handleFilterKey handles keyboard input while typing a filter query.
// The board live-filters as the query changes.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Keep the filter applied and return to navigation
		m.SearchState.Activate()
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	case "esc":
		// Drop the filter, all issues are shown again
		m.SearchState.Clear()
		m.SearchState.Deactivate()
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	case "backspace", "ctrl+h":
		m.SearchState.Backspace()
		return m, nil
	default:
		key := msg.String()
		if len(key) == 1 {
			m.SearchState.AppendChar(rune(key[0]))
		}
		return m, nil
	}
}
