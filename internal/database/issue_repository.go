package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmrivas/tablero/internal/models"
)

// IssueRepo provides CRUD operations for issues
type IssueRepo struct {
	db *sql.DB
}

// Create inserts a new issue along with its labels
func (r *IssueRepo) Create(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO issues (id, title, description, status, issue_type, assignee, priority)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		issue.ID, issue.Title, issue.Description, issue.Status, issue.IssueType, issue.Assignee, issue.Priority,
	)
	if err != nil {
		return nil, err
	}

	for _, label := range issue.Labels {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO issue_labels (issue_id, label) VALUES (?, ?)`,
			issue.ID, label,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, issue.ID)
}

// GetByID retrieves one issue with its labels
func (r *IssueRepo) GetByID(ctx context.Context, id string) (*models.Issue, error) {
	issue := &models.Issue{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, issue_type, assignee, priority, created_at, updated_at
		 FROM issues WHERE id = ?`,
		id,
	).Scan(
		&issue.ID, &issue.Title, &issue.Description, &issue.Status,
		&issue.IssueType, &issue.Assignee, &issue.Priority,
		&issue.CreatedAt, &issue.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrIssueNotFound
	}
	if err != nil {
		return nil, err
	}

	labels, err := r.labelsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	issue.Labels = labels

	return issue, nil
}

// List retrieves all issues ordered by priority then creation time.
// This is the input order the board classifier preserves per column.
func (r *IssueRepo) List(ctx context.Context) ([]*models.Issue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status, issue_type, assignee, priority, created_at, updated_at
		 FROM issues
		 ORDER BY priority, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := []*models.Issue{}
	byID := make(map[string]*models.Issue)
	for rows.Next() {
		issue := &models.Issue{}
		if err := rows.Scan(
			&issue.ID, &issue.Title, &issue.Description, &issue.Status,
			&issue.IssueType, &issue.Assignee, &issue.Priority,
			&issue.CreatedAt, &issue.UpdatedAt,
		); err != nil {
			return nil, err
		}
		issues = append(issues, issue)
		byID[issue.ID] = issue
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach labels in one pass instead of a query per issue
	labelRows, err := r.db.QueryContext(ctx,
		`SELECT issue_id, label FROM issue_labels ORDER BY issue_id, label`,
	)
	if err != nil {
		return nil, err
	}
	defer labelRows.Close()

	for labelRows.Next() {
		var issueID, label string
		if err := labelRows.Scan(&issueID, &label); err != nil {
			return nil, err
		}
		if issue, ok := byID[issueID]; ok {
			issue.Labels = append(issue.Labels, label)
		}
	}
	if err := labelRows.Err(); err != nil {
		return nil, err
	}

	return issues, nil
}

// UpdateStatus changes only the status of an issue. This is the
// persistence operation behind a board drop: the payload is restricted to
// the status field.
func (r *IssueRepo) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE issues SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Update replaces the editable fields of an issue
func (r *IssueRepo) Update(ctx context.Context, issue *models.Issue) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE issues
		 SET title = ?, description = ?, issue_type = ?, assignee = ?, priority = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		issue.Title, issue.Description, issue.IssueType, issue.Assignee, issue.Priority, issue.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes an issue; dependencies and labels cascade
func (r *IssueRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM issues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// AddLabel attaches a label to an issue
func (r *IssueRepo) AddLabel(ctx context.Context, id, label string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO issue_labels (issue_id, label) VALUES (?, ?)`,
		id, label,
	)
	return err
}

// RemoveLabel detaches a label from an issue
func (r *IssueRepo) RemoveLabel(ctx context.Context, id, label string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM issue_labels WHERE issue_id = ? AND label = ?`,
		id, label,
	)
	return err
}

func (r *IssueRepo) labelsFor(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label FROM issue_labels WHERE issue_id = ? ORDER BY label`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// requireRow converts a zero-row update or delete into ErrIssueNotFound
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrIssueNotFound
	}
	return nil
}
