package state

import "fmt"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	FilterMode                    // Typing a filter query (/)
	HelpMode                      // Displaying help screen
	DetailMode                    // Viewing one issue's full detail
	FormMode                      // Quick-create issue form with huh
	DeleteConfirmMode             // Confirming issue deletion
)

// UIState manages the user interface state.
// This includes navigation (lane/column/card selection), per-column card
// scrolling, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedLane is the index of the currently selected swim lane
	selectedLane int

	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// cardScrollOffsets tracks the vertical scroll offset for each column
	// cell. Key: lane index + column ID, value: index of first visible card.
	cardScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		cardScrollOffsets: make(map[string]int),
	}
}

// SelectedLane returns the index of the currently selected swim lane.
func (s *UIState) SelectedLane() int {
	return s.selectedLane
}

// SetSelectedLane updates the selected lane index.
func (s *UIState) SetSelectedLane(index int) {
	s.selectedLane = index
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ResetSelection resets lane, column and card selection to zero.
// This is typically called after a reload changes the board shape.
func (s *UIState) ResetSelection() {
	s.selectedLane = 0
	s.selectedColumn = 0
	s.selectedCard = 0
}

// ClampSelection keeps the selection within the given board shape.
// laneCount is the number of lanes, cardCount the number of cards in the
// currently selected column cell.
func (s *UIState) ClampSelection(laneCount, columnCount, cardCount int) {
	s.selectedLane = clamp(s.selectedLane, laneCount)
	s.selectedColumn = clamp(s.selectedColumn, columnCount)
	s.selectedCard = clamp(s.selectedCard, cardCount)
}

func clamp(index, length int) int {
	if length == 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

// cellKey identifies one column cell within one lane
func cellKey(laneIdx int, columnID string) string {
	return fmt.Sprintf("%d/%s", laneIdx, columnID)
}

// CardScrollOffset returns the vertical scroll offset for a column cell.
// Returns 0 if the cell has no scroll offset set.
func (s *UIState) CardScrollOffset(laneIdx int, columnID string) int {
	return s.cardScrollOffsets[cellKey(laneIdx, columnID)]
}

// ResetCardScroll clears all stored scroll offsets.
func (s *UIState) ResetCardScroll() {
	s.cardScrollOffsets = make(map[string]int)
}

// EnsureCardVisible adjusts the scroll offset so the selected card is
// visible. This should be called after card navigation within a column.
func (s *UIState) EnsureCardVisible(laneIdx int, columnID string, selectedIdx, visibleCount int) {
	if visibleCount < 1 {
		visibleCount = 1
	}
	key := cellKey(laneIdx, columnID)
	offset := s.cardScrollOffsets[key]

	// If selection is above visible area, scroll up
	if selectedIdx < offset {
		s.cardScrollOffsets[key] = selectedIdx
	}

	// If selection is below visible area, scroll down
	if selectedIdx >= offset+visibleCount {
		s.cardScrollOffsets[key] = selectedIdx - visibleCount + 1
	}
}
