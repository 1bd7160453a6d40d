package board

import (
	"testing"

	"github.com/jmrivas/tablero/internal/models"
)

func issue(id, title string, status models.Status, typ models.IssueType) *models.Issue {
	return &models.Issue{ID: id, Title: title, Status: status, IssueType: typ}
}

func classifyOne(t *testing.T, iss *models.Issue, blocked BlockedIndex) string {
	t.Helper()
	buckets := Classify([]*models.Issue{iss}, DefaultColumns(), blocked)
	found := ""
	for colID, issues := range buckets {
		if len(issues) > 0 {
			if found != "" {
				t.Fatalf("issue %s classified into both %s and %s", iss.ID, found, colID)
			}
			found = colID
		}
	}
	return found
}

func TestClassify_DefaultBoard(t *testing.T) {
	tests := []struct {
		name    string
		issue   *models.Issue
		blocked *models.BlockedInfo
		want    string
	}{
		{"open unblocked", issue("tb-1", "Fix bug", models.StatusOpen, models.TypeBug), nil, ColumnReady},
		{"absent status defaults to open", issue("tb-2", "Fix bug", "", models.TypeBug), nil, ColumnReady},
		{"open blocked", issue("tb-3", "Fix bug", models.StatusOpen, models.TypeBug), &models.BlockedInfo{BlockedByCount: 2, BlockedBy: []string{"tb-1", "tb-9"}}, ColumnBacklog},
		{"explicit blocked", issue("tb-4", "Fix bug", models.StatusBlocked, models.TypeBug), nil, ColumnBacklog},
		{"deferred", issue("tb-5", "Fix bug", models.StatusDeferred, models.TypeBug), nil, ColumnBacklog},
		{"in progress", issue("tb-6", "Fix bug", models.StatusInProgress, models.TypeBug), nil, ColumnInProgress},
		{"review status", issue("tb-7", "Fix bug", models.StatusReview, models.TypeBug), nil, ColumnReview},
		{"review title overrides open", issue("tb-8", "[Need Review] Fix bug", models.StatusOpen, models.TypeBug), nil, ColumnReview},
		{"review title overrides deferred", issue("tb-9", "[Need Review] X", models.StatusDeferred, models.TypeBug), nil, ColumnReview},
		{"closed", issue("tb-10", "Fix bug", models.StatusClosed, models.TypeBug), nil, ColumnDone},
		{"open epic excluded everywhere", issue("tb-11", "Big effort", models.StatusOpen, models.TypeEpic), nil, ""},
		{"in-progress epic excluded", issue("tb-12", "Big effort", models.StatusInProgress, models.TypeEpic), nil, ""},
		{"review-titled epic excluded", issue("tb-13", "[Need Review] Big effort", models.StatusOpen, models.TypeEpic), nil, ""},
		{"closed epic lands in done", issue("tb-14", "Big effort", models.StatusClosed, models.TypeEpic), nil, ColumnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked := BlockedIndex{}
			if tt.blocked != nil {
				blocked[tt.issue.ID] = tt.blocked
			}
			got := classifyOne(t, tt.issue, blocked)
			if got != tt.want {
				t.Errorf("classified into %q, want %q", got, tt.want)
			}
		})
	}
}

// An issue that is simultaneously blocked and review-titled must land in
// Review: the backlog predicate carries the negative review-title guard,
// so the outcome does not depend on backlog preceding review in the list.
func TestClassify_BlockedAndReviewTitled(t *testing.T) {
	iss := issue("tb-1", "[Need Review] Fix bug", models.StatusOpen, models.TypeBug)
	blocked := BlockedIndex{"tb-1": {BlockedByCount: 1, BlockedBy: []string{"tb-2"}}}

	if got := classifyOne(t, iss, blocked); got != ColumnReview {
		t.Errorf("blocked review-titled issue classified into %q, want %q", got, ColumnReview)
	}
}

func TestClassify_AllColumnsKeyedWhenEmpty(t *testing.T) {
	buckets := Classify(nil, DefaultColumns(), nil)

	if len(buckets) != len(DefaultColumns()) {
		t.Fatalf("expected %d buckets, got %d", len(DefaultColumns()), len(buckets))
	}
	for _, col := range DefaultColumns() {
		issues, ok := buckets[col.ID]
		if !ok {
			t.Errorf("column %q missing from result", col.ID)
		}
		if issues == nil || len(issues) != 0 {
			t.Errorf("column %q should have an empty non-nil bucket", col.ID)
		}
	}
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	issues := []*models.Issue{
		issue("tb-3", "c", models.StatusOpen, models.TypeBug),
		issue("tb-1", "a", models.StatusOpen, models.TypeBug),
		issue("tb-2", "b", models.StatusOpen, models.TypeBug),
	}

	buckets := Classify(issues, DefaultColumns(), nil)

	ready := buckets[ColumnReady]
	if len(ready) != 3 {
		t.Fatalf("expected 3 issues in ready, got %d", len(ready))
	}
	for i, want := range []string{"tb-3", "tb-1", "tb-2"} {
		if ready[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, ready[i].ID, want)
		}
	}
}

// First-match-wins dispatch is order-sensitive: a column list with Done
// before a catch-all column routes closed issues to Done, while reversing
// the order routes them to the catch-all.
func TestClassify_OrderDependence(t *testing.T) {
	done := &Column{ID: "done", Predicate: func(i *models.Issue, b *models.BlockedInfo) bool {
		return i.Status == models.StatusClosed
	}}
	catchAll := &Column{ID: "all", Predicate: func(i *models.Issue, b *models.BlockedInfo) bool {
		return true
	}}
	closed := issue("tb-1", "x", models.StatusClosed, models.TypeTask)

	first := Classify([]*models.Issue{closed}, []*Column{done, catchAll}, nil)
	if len(first["done"]) != 1 || len(first["all"]) != 0 {
		t.Error("expected closed issue in done when done is listed first")
	}

	second := Classify([]*models.Issue{closed}, []*Column{catchAll, done}, nil)
	if len(second["all"]) != 1 || len(second["done"]) != 0 {
		t.Error("expected closed issue in catch-all when it is listed first")
	}
}

func TestClassify_UnmatchedIssueDropped(t *testing.T) {
	// An open epic matches no default column
	buckets := Classify([]*models.Issue{issue("tb-1", "Big effort", models.StatusOpen, models.TypeEpic)}, DefaultColumns(), nil)

	total := 0
	for _, issues := range buckets {
		total += len(issues)
	}
	if total != 0 {
		t.Errorf("expected unmatched issue to appear in no bucket, found %d placements", total)
	}
}
