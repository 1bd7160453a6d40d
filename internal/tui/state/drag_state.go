package state

import (
	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/models"
)

// DragState manages the grab-and-drop gesture. A card is first grabbed in
// its source column, carried with the column navigation keys, and dropped
// on a target column. The drop itself is delegated to the board engine,
// which applies the optimistic status mutation and tracks the pending
// persistence request until Commit or Rollback settles it.
type DragState struct {
	// dragger tracks in-flight persistence requests per issue
	dragger *board.Dragger

	// grabbed is the card currently being carried, nil when idle
	grabbed *models.Issue

	// sourceColumn is the column ID the grabbed card was picked up from
	sourceColumn string
}

// NewDragState creates a DragState with no grabbed card and no pending drops.
func NewDragState() *DragState {
	return &DragState{dragger: board.NewDragger()}
}

// Grab starts carrying a card. Returns false if another card is already
// grabbed or the issue still has an unsettled drop.
func (s *DragState) Grab(issue *models.Issue, sourceColumn string) bool {
	if s.grabbed != nil || issue == nil {
		return false
	}
	if s.dragger.InFlight(issue.ID) {
		return false
	}
	s.grabbed = issue
	s.sourceColumn = sourceColumn
	return true
}

// CancelGrab stops carrying the card without any mutation.
func (s *DragState) CancelGrab() {
	s.grabbed = nil
	s.sourceColumn = ""
}

// IsGrabbing reports whether a card is currently being carried.
func (s *DragState) IsGrabbing() bool {
	return s.grabbed != nil
}

// Grabbed returns the carried card, or nil when idle.
func (s *DragState) Grabbed() *models.Issue {
	return s.grabbed
}

// GrabbedID returns the carried card's issue ID, or empty when idle.
func (s *DragState) GrabbedID() string {
	if s.grabbed == nil {
		return ""
	}
	return s.grabbed.ID
}

// SourceColumn returns the column the carried card was picked up from.
func (s *DragState) SourceColumn() string {
	return s.sourceColumn
}

// Drop releases the grabbed card onto the target column. On a legal drop
// the issue's status is already mutated when this returns; the caller must
// persist it and settle with Commit or Rollback. Returns (nil, false) when
// the drop is disallowed, in which case the grab stays active so the user
// can pick another target or cancel.
func (s *DragState) Drop(targetColumn string, columns []*board.Column) (*board.Drag, bool) {
	if s.grabbed == nil {
		return nil, false
	}

	payload := board.CardPayload{Issue: s.grabbed}
	drag, ok := s.dragger.Drop(payload, s.sourceColumn, targetColumn, columns)
	if !ok {
		return nil, false
	}

	s.grabbed = nil
	s.sourceColumn = ""
	return drag, true
}

// Commit settles a pending drop as persisted.
func (s *DragState) Commit(issueID string) *board.Drag {
	return s.dragger.Commit(issueID)
}

// Rollback reverts the optimistic mutation after a failed persistence call.
func (s *DragState) Rollback(issueID string) *board.Drag {
	return s.dragger.Rollback(issueID)
}

// InFlight reports whether the issue has an unsettled persistence request.
func (s *DragState) InFlight(issueID string) bool {
	return s.dragger.InFlight(issueID)
}
