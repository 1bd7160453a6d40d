package models

import "time"

// Issue represents a single issue on the board
type Issue struct {
	ID          string
	Title       string
	Description string
	Status      Status
	IssueType   IssueType
	Assignee    string
	Priority    int // 0 (highest) to 4 (lowest)
	Labels      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize fills in zero-value fields with their defaults:
//   - Status: defaults to StatusOpen if empty
//   - IssueType: defaults to TypeTask if empty
//
// Predicates never see an empty status; normalization happens once,
// not scattered through classification rules.
func (i *Issue) Normalize() {
	if i.Status == "" {
		i.Status = StatusOpen
	}
	if i.IssueType == "" {
		i.IssueType = TypeTask
	}
}

// Validate checks that the issue is well-formed
func (i *Issue) Validate() error {
	if i.ID == "" {
		return ErrInvalidIssueID
	}
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if len(i.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if i.Status != "" && !i.Status.IsValid() {
		return ErrInvalidStatus
	}
	if i.IssueType != "" && !i.IssueType.IsValid() {
		return ErrInvalidType
	}
	if i.Priority < 0 || i.Priority > 4 {
		return ErrInvalidPriority
	}
	return nil
}

// HasLabel reports whether the issue carries the given label
func (i *Issue) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}
