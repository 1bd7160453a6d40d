package state

import (
	"strings"

	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/models"
)

// LaneView is one rendered swim lane: the lane key plus the issues of the
// lane classified into their board columns.
type LaneView struct {
	// Key is the lane's value in the grouping dimension; empty when the
	// board is not grouped
	Key string

	// Buckets maps column IDs to the lane's issues in that column
	Buckets map[string][]*models.Issue
}

// AppState manages the application's domain data: the issue set loaded from
// the database, the dependency blocking index, the board column definitions
// and the active swim-lane dimension.
type AppState struct {
	// issues contains all issues in board display order
	issues []*models.Issue

	// blocked maps issue IDs to their dependency blocking summary
	blocked board.BlockedIndex

	// columns is the ordered board definition
	columns []*board.Column

	// groupBy is the active swim-lane dimension
	groupBy board.GroupBy
}

// NewAppState creates a new AppState with the default board definition and
// no issues loaded.
func NewAppState(groupBy board.GroupBy) *AppState {
	return &AppState{
		issues:  []*models.Issue{},
		blocked: board.BlockedIndex{},
		columns: board.DefaultColumns(),
		groupBy: groupBy,
	}
}

// Issues returns all loaded issues.
func (s *AppState) Issues() []*models.Issue {
	return s.issues
}

// SetIssues replaces the issue set and blocking index.
// This should be called after reloading from the database.
func (s *AppState) SetIssues(issues []*models.Issue, blocked board.BlockedIndex) {
	if issues == nil {
		issues = []*models.Issue{}
	}
	if blocked == nil {
		blocked = board.BlockedIndex{}
	}
	s.issues = issues
	s.blocked = blocked
}

// Blocked returns the dependency blocking index.
func (s *AppState) Blocked() board.BlockedIndex {
	return s.blocked
}

// BlockedInfo returns the blocking summary for one issue, or nil if the
// issue has no blockers.
func (s *AppState) BlockedInfo(issueID string) *models.BlockedInfo {
	return s.blocked[issueID]
}

// Columns returns the ordered board column definitions.
func (s *AppState) Columns() []*board.Column {
	return s.columns
}

// GroupBy returns the active swim-lane dimension.
func (s *AppState) GroupBy() board.GroupBy {
	return s.groupBy
}

// SetGroupBy changes the swim-lane dimension.
func (s *AppState) SetGroupBy(groupBy board.GroupBy) {
	s.groupBy = groupBy
}

// CycleGroupBy advances to the next swim-lane dimension:
// none, type, assignee, label, then back to none.
func (s *AppState) CycleGroupBy() board.GroupBy {
	switch s.groupBy {
	case board.GroupByNone:
		s.groupBy = board.GroupByType
	case board.GroupByType:
		s.groupBy = board.GroupByAssignee
	case board.GroupByAssignee:
		s.groupBy = board.GroupByLabel
	default:
		s.groupBy = board.GroupByNone
	}
	return s.groupBy
}

// FilteredIssues returns the issues matching the filter query. An empty
// query matches everything. Matching is a case-insensitive substring test
// against title, assignee and labels.
func (s *AppState) FilteredIssues(query string) []*models.Issue {
	if query == "" {
		return s.issues
	}

	matched := []*models.Issue{}
	for _, issue := range s.issues {
		if issueMatches(issue, query) {
			matched = append(matched, issue)
		}
	}
	return matched
}

func issueMatches(issue *models.Issue, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(issue.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(issue.Assignee), q) {
		return true
	}
	for _, label := range issue.Labels {
		if strings.Contains(strings.ToLower(label), q) {
			return true
		}
	}
	return false
}

// Lanes groups the filtered issues into swim lanes and classifies each
// lane's issues into board columns. Every lane carries a bucket for every
// column, empty or not, so the rendered grid stays rectangular.
func (s *AppState) Lanes(query string) []*LaneView {
	lanes := board.GroupIssues(s.FilteredIssues(query), s.groupBy)

	views := make([]*LaneView, 0, len(lanes))
	for _, lane := range lanes {
		views = append(views, &LaneView{
			Key:     lane.Key,
			Buckets: board.Classify(lane.Issues, s.columns, s.blocked),
		})
	}
	return views
}

// TotalIssueCount returns the number of loaded issues.
func (s *AppState) TotalIssueCount() int {
	return len(s.issues)
}

// GroupByFromString parses a configured grouping name.
// Unknown names fall back to no grouping.
func GroupByFromString(name string) board.GroupBy {
	switch name {
	case "type":
		return board.GroupByType
	case "assignee":
		return board.GroupByAssignee
	case "label":
		return board.GroupByLabel
	default:
		return board.GroupByNone
	}
}

// GroupByName returns the configured name for a grouping dimension.
func GroupByName(groupBy board.GroupBy) string {
	switch groupBy {
	case board.GroupByType:
		return "type"
	case board.GroupByAssignee:
		return "assignee"
	case board.GroupByLabel:
		return "label"
	default:
		return "none"
	}
}
