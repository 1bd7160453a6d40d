package state

import (
	"testing"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/models"
)

func TestDragState_GrabAndCancel(t *testing.T) {
	s := NewDragState()
	issue := testIssue("tb-1", "Move me", models.StatusOpen, models.TypeTask)

	if !s.Grab(issue, board.ColumnReady) {
		t.Fatal("first grab should succeed")
	}
	if !s.IsGrabbing() || s.GrabbedID() != "tb-1" {
		t.Errorf("grab not recorded: grabbing=%v id=%q", s.IsGrabbing(), s.GrabbedID())
	}
	if s.SourceColumn() != board.ColumnReady {
		t.Errorf("source column = %q, want ready", s.SourceColumn())
	}

	other := testIssue("tb-2", "Other", models.StatusOpen, models.TypeTask)
	if s.Grab(other, board.ColumnReady) {
		t.Error("grab while already carrying a card should be refused")
	}

	s.CancelGrab()
	if s.IsGrabbing() {
		t.Error("cancel should release the card")
	}
	if issue.Status != models.StatusOpen {
		t.Errorf("cancel must not mutate status, got %s", issue.Status)
	}
}

func TestDragState_DropMutatesAndSettles(t *testing.T) {
	columns := board.DefaultColumns()
	s := NewDragState()
	issue := testIssue("tb-1", "Move me", models.StatusOpen, models.TypeTask)

	s.Grab(issue, board.ColumnReady)
	drag, ok := s.Drop(board.ColumnInProgress, columns)
	if !ok {
		t.Fatal("drop from ready to in_progress should be allowed")
	}
	if issue.Status != models.StatusInProgress {
		t.Errorf("optimistic update missing: status = %s", issue.Status)
	}
	if s.IsGrabbing() {
		t.Error("a successful drop should release the grab")
	}
	if !s.InFlight("tb-1") {
		t.Error("drop should register a pending persistence request")
	}

	// A new grab of the same issue is refused until the save settles
	if s.Grab(issue, board.ColumnInProgress) {
		t.Error("grab should be refused while a save is in flight")
	}

	settled := s.Commit("tb-1")
	if settled == nil || settled.Phase != board.PhaseCommitted {
		t.Errorf("commit did not settle the drag: %+v", settled)
	}
	if s.InFlight("tb-1") {
		t.Error("commit should clear the in-flight record")
	}
	_ = drag
}

func TestDragState_DisallowedDropKeepsGrab(t *testing.T) {
	columns := board.DefaultColumns()
	s := NewDragState()
	issue := testIssue("tb-1", "Move me", models.StatusInProgress, models.TypeTask)

	s.Grab(issue, board.ColumnInProgress)
	if _, ok := s.Drop(board.ColumnBacklog, columns); ok {
		t.Fatal("drop onto the derived backlog column should be refused")
	}
	if !s.IsGrabbing() {
		t.Error("a refused drop should leave the card grabbed")
	}
	if issue.Status != models.StatusInProgress {
		t.Errorf("refused drop must not mutate status, got %s", issue.Status)
	}
}

func TestDragState_RollbackRestoresStatus(t *testing.T) {
	columns := board.DefaultColumns()
	s := NewDragState()
	issue := testIssue("tb-1", "Move me", models.StatusOpen, models.TypeTask)

	s.Grab(issue, board.ColumnReady)
	if _, ok := s.Drop(board.ColumnDone, columns); !ok {
		t.Fatal("drop to done should be allowed")
	}
	if issue.Status != models.StatusClosed {
		t.Fatalf("optimistic update missing: status = %s", issue.Status)
	}

	settled := s.Rollback("tb-1")
	if settled == nil || settled.Phase != board.PhaseRolledBack {
		t.Fatalf("rollback did not settle the drag: %+v", settled)
	}
	if issue.Status != models.StatusOpen {
		t.Errorf("rollback should restore the previous status, got %s", issue.Status)
	}
	if s.InFlight("tb-1") {
		t.Error("rollback should clear the in-flight record")
	}
}
