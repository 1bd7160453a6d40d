package models

import (
	"errors"
	"testing"
)

func TestNormalize_Defaults(t *testing.T) {
	issue := &Issue{ID: "tb-1", Title: "Fix bug"}
	issue.Normalize()

	if issue.Status != StatusOpen {
		t.Errorf("Expected status %q, got %q", StatusOpen, issue.Status)
	}
	if issue.IssueType != TypeTask {
		t.Errorf("Expected type %q, got %q", TypeTask, issue.IssueType)
	}
}

func TestNormalize_PreservesExplicitValues(t *testing.T) {
	issue := &Issue{ID: "tb-2", Title: "Ship feature", Status: StatusDeferred, IssueType: TypeEpic}
	issue.Normalize()

	if issue.Status != StatusDeferred {
		t.Errorf("Normalize overwrote explicit status: got %q", issue.Status)
	}
	if issue.IssueType != TypeEpic {
		t.Errorf("Normalize overwrote explicit type: got %q", issue.IssueType)
	}
}

func TestValidate(t *testing.T) {
	longTitle := make([]byte, MaxTitleLength+1)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name    string
		issue   Issue
		wantErr error
	}{
		{"valid", Issue{ID: "tb-1", Title: "ok"}, nil},
		{"missing id", Issue{Title: "ok"}, ErrInvalidIssueID},
		{"empty title", Issue{ID: "tb-1"}, ErrEmptyTitle},
		{"long title", Issue{ID: "tb-1", Title: string(longTitle)}, ErrTitleTooLong},
		{"bad status", Issue{ID: "tb-1", Title: "ok", Status: "resolved"}, ErrInvalidStatus},
		{"bad type", Issue{ID: "tb-1", Title: "ok", IssueType: "story"}, ErrInvalidType},
		{"bad priority", Issue{ID: "tb-1", Title: "ok", Priority: 7}, ErrInvalidPriority},
		{"empty status ok before normalize", Issue{ID: "tb-1", Title: "ok", Status: ""}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.issue.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusOpen, StatusInProgress, StatusBlocked, StatusDeferred, StatusReview, StatusClosed} {
		if !s.IsValid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	if Status("done").IsValid() {
		t.Error("Expected unknown status to be invalid")
	}
}

func TestBlockedInfo_IsBlocked(t *testing.T) {
	var nilInfo *BlockedInfo
	if nilInfo.IsBlocked() {
		t.Error("nil BlockedInfo should not be blocked")
	}
	if (&BlockedInfo{}).IsBlocked() {
		t.Error("zero count should not be blocked")
	}
	if !(&BlockedInfo{BlockedByCount: 2, BlockedBy: []string{"tb-1", "tb-2"}}).IsBlocked() {
		t.Error("positive count should be blocked")
	}
}

func TestHasLabel(t *testing.T) {
	issue := Issue{ID: "tb-1", Title: "ok", Labels: []string{"backend", "urgent"}}
	if !issue.HasLabel("urgent") {
		t.Error("Expected HasLabel to find existing label")
	}
	if issue.HasLabel("frontend") {
		t.Error("Expected HasLabel to miss absent label")
	}
}
