package database

import (
	"context"
	"database/sql"

	"github.com/jmrivas/tablero/internal/models"
)

// DataStore is the storage contract the service layer depends on
type DataStore interface {
	CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error)
	GetIssue(ctx context.Context, id string) (*models.Issue, error)
	ListIssues(ctx context.Context) ([]*models.Issue, error)
	UpdateIssueStatus(ctx context.Context, id string, status models.Status) error
	UpdateIssue(ctx context.Context, issue *models.Issue) error
	DeleteIssue(ctx context.Context, id string) error
	AddLabel(ctx context.Context, id, label string) error
	RemoveLabel(ctx context.Context, id, label string) error

	AddDependency(ctx context.Context, issueID, dependsOnID string) error
	RemoveDependency(ctx context.Context, issueID, dependsOnID string) error
	BlockedIndex(ctx context.Context) (map[string]*models.BlockedInfo, error)
}

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*IssueRepo
	*DependencyRepo
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		IssueRepo:      &IssueRepo{db: db},
		DependencyRepo: &DependencyRepo{db: db},
	}
}

// Wrapper methods for IssueRepo
func (r *Repository) CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	return r.IssueRepo.Create(ctx, issue)
}

func (r *Repository) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	return r.IssueRepo.GetByID(ctx, id)
}

func (r *Repository) ListIssues(ctx context.Context) ([]*models.Issue, error) {
	return r.IssueRepo.List(ctx)
}

func (r *Repository) UpdateIssueStatus(ctx context.Context, id string, status models.Status) error {
	return r.IssueRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) UpdateIssue(ctx context.Context, issue *models.Issue) error {
	return r.IssueRepo.Update(ctx, issue)
}

func (r *Repository) DeleteIssue(ctx context.Context, id string) error {
	return r.IssueRepo.Delete(ctx, id)
}

// Wrapper methods for DependencyRepo
func (r *Repository) AddDependency(ctx context.Context, issueID, dependsOnID string) error {
	return r.DependencyRepo.Add(ctx, issueID, dependsOnID)
}

func (r *Repository) RemoveDependency(ctx context.Context, issueID, dependsOnID string) error {
	return r.DependencyRepo.Remove(ctx, issueID, dependsOnID)
}

func (r *Repository) BlockedIndex(ctx context.Context) (map[string]*models.BlockedInfo, error) {
	return r.DependencyRepo.BlockedIndex(ctx)
}
