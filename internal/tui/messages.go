package tui

import (
	"github.com/jmrivas/tablero/internal/board"
	"github.com/jmrivas/tablero/internal/models"
)

// issuesLoadedMsg carries a fresh issue set and blocking index from the
// database.
type issuesLoadedMsg struct {
	issues  []*models.Issue
	blocked board.BlockedIndex
	err     error
}

// statusSavedMsg reports the outcome of the persistence call behind a drop.
// A non-nil err means the optimistic move must be rolled back.
type statusSavedMsg struct {
	issueID string
	err     error
}

// issueCreatedMsg reports the outcome of the create form submission.
type issueCreatedMsg struct {
	issue *models.Issue
	err   error
}

// issueDeletedMsg reports the outcome of an issue deletion.
type issueDeletedMsg struct {
	id  string
	err error
}
