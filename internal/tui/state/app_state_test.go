package state

import (
	"testing"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/models"
)

func testIssue(id, title string, status models.Status, typ models.IssueType) *models.Issue {
	return &models.Issue{ID: id, Title: title, Status: status, IssueType: typ}
}

func TestAppState_LanesAreRectangular(t *testing.T) {
	s := NewAppState(board.GroupByType)
	s.SetIssues([]*models.Issue{
		testIssue("tb-1", "Fix crash", models.StatusOpen, models.TypeBug),
		testIssue("tb-2", "Ship feature", models.StatusInProgress, models.TypeFeature),
	}, nil)

	lanes := s.Lanes("")
	if len(lanes) != 2 {
		t.Fatalf("expected 2 lanes, got %d", len(lanes))
	}

	// Every lane must carry a bucket for every column, empty or not
	for _, lane := range lanes {
		if len(lane.Buckets) != len(s.Columns()) {
			t.Errorf("lane %q has %d buckets, want %d", lane.Key, len(lane.Buckets), len(s.Columns()))
		}
		for _, col := range s.Columns() {
			if _, ok := lane.Buckets[col.ID]; !ok {
				t.Errorf("lane %q missing bucket for column %s", lane.Key, col.ID)
			}
		}
	}
}

func TestAppState_FilteredIssues(t *testing.T) {
	a := testIssue("tb-1", "Fix login crash", models.StatusOpen, models.TypeBug)
	a.Assignee = "ana"
	b := testIssue("tb-2", "Write docs", models.StatusOpen, models.TypeTask)
	b.Labels = []string{"backend"}

	s := NewAppState(board.GroupByNone)
	s.SetIssues([]*models.Issue{a, b}, nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches all", "", []string{"tb-1", "tb-2"}},
		{"title substring", "crash", []string{"tb-1"}},
		{"case insensitive", "CRASH", []string{"tb-1"}},
		{"assignee", "ana", []string{"tb-1"}},
		{"label", "backend", []string{"tb-2"}},
		{"no match", "frontend", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FilteredIssues(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d issues, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("issue %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestAppState_CycleGroupBy(t *testing.T) {
	s := NewAppState(board.GroupByNone)

	want := []board.GroupBy{
		board.GroupByType,
		board.GroupByAssignee,
		board.GroupByLabel,
		board.GroupByNone,
	}
	for i, expected := range want {
		if got := s.CycleGroupBy(); got != expected {
			t.Fatalf("cycle step %d = %v, want %v", i, got, expected)
		}
	}
}

func TestGroupByNames_RoundTrip(t *testing.T) {
	for _, groupBy := range []board.GroupBy{
		board.GroupByNone, board.GroupByType, board.GroupByAssignee, board.GroupByLabel,
	} {
		if got := GroupByFromString(GroupByName(groupBy)); got != groupBy {
			t.Errorf("round trip of %v = %v", groupBy, got)
		}
	}

	if got := GroupByFromString("bogus"); got != board.GroupByNone {
		t.Errorf("unknown name should fall back to none, got %v", got)
	}
}

func TestAppState_BlockedIssueLandsInBacklog(t *testing.T) {
	blocked := testIssue("tb-1", "Blocked work", models.StatusOpen, models.TypeTask)

	s := NewAppState(board.GroupByNone)
	s.SetIssues([]*models.Issue{blocked}, board.BlockedIndex{
		"tb-1": {BlockedByCount: 1, BlockedBy: []string{"tb-9"}},
	})

	lanes := s.Lanes("")
	if len(lanes) != 1 {
		t.Fatalf("expected a single lane, got %d", len(lanes))
	}
	if got := lanes[0].Buckets[board.ColumnBacklog]; len(got) != 1 || got[0].ID != "tb-1" {
		t.Errorf("blocked open issue should classify to backlog, got %v", got)
	}
}
