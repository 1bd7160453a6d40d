package database

import (
	"context"
	"database/sql"

	"github.com/jmrivas/tablero/internal/models"
)

// DependencyRepo manages blocking edges between issues
type DependencyRepo struct {
	db *sql.DB
}

// Add records that issueID is blocked by dependsOnID
func (r *DependencyRepo) Add(ctx context.Context, issueID, dependsOnID string) error {
	if issueID == dependsOnID {
		return models.ErrSelfDependency
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO dependencies (issue_id, depends_on_id) VALUES (?, ?)`,
		issueID, dependsOnID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrDependencyExists
	}
	return nil
}

// Remove deletes a blocking edge
func (r *DependencyRepo) Remove(ctx context.Context, issueID, dependsOnID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM dependencies WHERE issue_id = ? AND depends_on_id = ?`,
		issueID, dependsOnID,
	)
	return err
}

// BlockedIndex computes the per-issue summary of unresolved blockers in a
// single join: a dependency blocks as long as the blocking issue is not
// closed. Issues with no open blockers are absent from the index.
func (r *DependencyRepo) BlockedIndex(ctx context.Context) (map[string]*models.BlockedInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.issue_id, d.depends_on_id
		 FROM dependencies d
		 JOIN issues b ON b.id = d.depends_on_id
		 WHERE b.status != 'closed'
		 ORDER BY d.issue_id, d.depends_on_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]*models.BlockedInfo)
	for rows.Next() {
		var issueID, blockerID string
		if err := rows.Scan(&issueID, &blockerID); err != nil {
			return nil, err
		}
		info, ok := index[issueID]
		if !ok {
			info = &models.BlockedInfo{}
			index[issueID] = info
		}
		info.BlockedByCount++
		info.BlockedBy = append(info.BlockedBy, blockerID)
	}
	return index, rows.Err()
}
