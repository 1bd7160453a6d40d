// Package board implements the kanban board engine: classification of
// issues into columns, drop resolution for card moves, swim-lane grouping,
// and the optimistic-update drag lifecycle. Everything here is pure with
// respect to storage and rendering.
package board

import (
	"strings"

	"github.com/jmrivas/tablero/internal/models"
)

// Predicate decides whether an issue belongs in a column. The blocked info
// may be nil, meaning the issue has no known blockers.
type Predicate func(issue *models.Issue, blocked *models.BlockedInfo) bool

// Column defines one board column. Columns form an ordered list and
// classification is first-match-wins, so list order is part of the board's
// semantics, not just its layout.
type Column struct {
	// ID uniquely identifies the column and doubles as its drop-target key
	ID string

	// Label is the display name; it carries no classification meaning
	Label string

	// Predicate is the membership test, evaluated in column-list order
	Predicate Predicate

	// TargetStatus is the status applied when a card is dropped here.
	// Empty means the column is derived and has no writable status.
	TargetStatus models.Status

	// DropDisabled marks a derived column that rejects all drops
	DropDisabled bool

	// AllowedDropTargets, when non-nil, restricts which columns a card
	// originating here may be dropped onto
	AllowedDropTargets []string
}

// Column IDs for the default board
const (
	ColumnReady      = "ready"
	ColumnBacklog    = "backlog"
	ColumnInProgress = "in_progress"
	ColumnReview     = "review"
	ColumnDone       = "done"
)

// ReviewMarker is the title substring that routes an issue to the review
// column regardless of its status.
const ReviewMarker = "[Need Review]"

// NeedsReview reports whether the issue's title carries the review marker
func NeedsReview(issue *models.Issue) bool {
	return strings.Contains(issue.Title, ReviewMarker)
}

// DefaultColumns returns the standard board definition. Ordering matters:
// an issue lands in the first column whose predicate accepts it.
//
// Workflow rules encoded here:
//   - Epics never appear in any column except Done.
//   - A "[Need Review]" title routes to Review no matter the status, so
//     every non-review predicate carries the negative review guard.
//   - Backlog is derived (open-but-blocked, blocked, or deferred); cards
//     cannot be dropped into it, and cards in it may only move to Done.
func DefaultColumns() []*Column {
	return []*Column{
		{
			ID:           ColumnReady,
			Label:        "Ready",
			TargetStatus: models.StatusOpen,
			Predicate: func(issue *models.Issue, blocked *models.BlockedInfo) bool {
				return effectiveStatus(issue) == models.StatusOpen &&
					!blocked.IsBlocked() &&
					!NeedsReview(issue) &&
					issue.IssueType != models.TypeEpic
			},
		},
		{
			ID:                 ColumnBacklog,
			Label:              "Backlog",
			DropDisabled:       true,
			AllowedDropTargets: []string{ColumnDone},
			Predicate: func(issue *models.Issue, blocked *models.BlockedInfo) bool {
				status := effectiveStatus(issue)
				held := (status == models.StatusOpen && blocked.IsBlocked()) ||
					status == models.StatusBlocked ||
					status == models.StatusDeferred
				return held && !NeedsReview(issue) && issue.IssueType != models.TypeEpic
			},
		},
		{
			ID:           ColumnInProgress,
			Label:        "In Progress",
			TargetStatus: models.StatusInProgress,
			Predicate: func(issue *models.Issue, blocked *models.BlockedInfo) bool {
				return effectiveStatus(issue) == models.StatusInProgress &&
					!NeedsReview(issue) &&
					issue.IssueType != models.TypeEpic
			},
		},
		{
			ID:           ColumnReview,
			Label:        "Review",
			TargetStatus: models.StatusReview,
			Predicate: func(issue *models.Issue, blocked *models.BlockedInfo) bool {
				return (effectiveStatus(issue) == models.StatusReview || NeedsReview(issue)) &&
					issue.IssueType != models.TypeEpic
			},
		},
		{
			ID:           ColumnDone,
			Label:        "Done",
			TargetStatus: models.StatusClosed,
			// The one column that accepts epics
			Predicate: func(issue *models.Issue, blocked *models.BlockedInfo) bool {
				return effectiveStatus(issue) == models.StatusClosed
			},
		},
	}
}

// FindColumn returns the column with the given ID, or nil if absent
func FindColumn(columns []*Column, id string) *Column {
	for _, col := range columns {
		if col.ID == id {
			return col
		}
	}
	return nil
}

// effectiveStatus maps an absent status to the default open status so
// predicates never special-case the empty string.
func effectiveStatus(issue *models.Issue) models.Status {
	if issue.Status == "" {
		return models.StatusOpen
	}
	return issue.Status
}
