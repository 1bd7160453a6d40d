// Package tui implements the terminal board: five status columns, optional
// swim lanes, and a grab-and-drop gesture for moving cards between columns.
package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/jmrivas/tablero/internal/config"
	"github.com/jmrivas/tablero/internal/models"
	"github.com/jmrivas/tablero/internal/services/issue"
	"github.com/jmrivas/tablero/internal/tui/components"
	"github.com/jmrivas/tablero/internal/tui/forms"
	"github.com/jmrivas/tablero/internal/tui/state"
)

// Model is the complete TUI state. It is the tea.Model for the program.
type Model struct {
	// Ctx is the application context used for graceful shutdown
	Ctx context.Context

	// Svc is the issue service backing all reads and writes
	Svc issue.Service

	// Config holds key mappings and the color scheme
	Config *config.Config

	// AppState holds the loaded issues and the board definition
	AppState *state.AppState

	// UiState holds selection, dimensions and the interaction mode
	UiState *state.UIState

	// SearchState holds the filter query
	SearchState *state.SearchState

	// DragState holds the grab gesture and pending drops
	DragState *state.DragState

	// NotificationState holds user-facing notification banners
	NotificationState *state.NotificationState

	// form is the active issue creation form, nil outside FormMode
	form *huh.Form

	// formData holds the values bound to the active form
	formData *forms.IssueData

	// detailIssue is the issue shown in DetailMode
	detailIssue *models.Issue

	// deleteTarget is the issue pending confirmation in DeleteConfirmMode
	deleteTarget *models.Issue
}

// InitialModel creates the model with empty board state. Issues are loaded
// asynchronously by Init.
func InitialModel(ctx context.Context, svc issue.Service, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Ctx:               ctx,
		Svc:               svc,
		Config:            cfg,
		AppState:          state.NewAppState(state.GroupByFromString(cfg.Board.GroupBy)),
		UiState:           state.NewUIState(),
		SearchState:       state.NewSearchState(),
		DragState:         state.NewDragState(),
		NotificationState: state.NewNotificationState(),
	}
}

// Init kicks off the initial issue load.
// Implements tea.Model interface.
func (m Model) Init() tea.Cmd {
	return m.loadIssues()
}

// DbContext returns a context with the standard database timeout.
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, 30*time.Second)
}

// Lanes returns the current board grid: filtered issues grouped into swim
// lanes and classified into columns. While the user is typing a query the
// board live-filters on every keystroke.
func (m *Model) Lanes() []*state.LaneView {
	query := m.SearchState.EffectiveQuery()
	if m.UiState.Mode() == state.FilterMode {
		query = m.SearchState.Query
	}
	return m.AppState.Lanes(query)
}

// SelectedColumnID returns the column ID under the cursor.
func (m *Model) SelectedColumnID() string {
	columns := m.AppState.Columns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(columns) {
		return ""
	}
	return columns[idx].ID
}

// SelectedIssue returns the issue under the cursor, or nil if the selected
// cell is empty.
func (m *Model) SelectedIssue() *models.Issue {
	lanes := m.Lanes()
	laneIdx := m.UiState.SelectedLane()
	if laneIdx < 0 || laneIdx >= len(lanes) {
		return nil
	}

	bucket := lanes[laneIdx].Buckets[m.SelectedColumnID()]
	cardIdx := m.UiState.SelectedCard()
	if cardIdx < 0 || cardIdx >= len(bucket) {
		return nil
	}
	return bucket[cardIdx]
}

// clampSelection keeps the cursor inside the current board shape.
// Called after every reload or reclassification.
func (m *Model) clampSelection() {
	lanes := m.Lanes()
	m.UiState.ClampSelection(len(lanes), len(m.AppState.Columns()), m.selectedBucketLen(lanes))
}

func (m *Model) selectedBucketLen(lanes []*state.LaneView) int {
	laneIdx := m.UiState.SelectedLane()
	if laneIdx < 0 || laneIdx >= len(lanes) {
		return 0
	}
	return len(lanes[laneIdx].Buckets[m.SelectedColumnID()])
}
