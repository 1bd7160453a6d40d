package issue

import (
	"context"
	"fmt"

	"github.com/jmrivas/tablero/internal/database"
	"github.com/jmrivas/tablero/internal/idgen"
	"github.com/jmrivas/tablero/internal/models"
)

// Service defines all issue-related business operations
type Service interface {
	// Read operations
	ListIssues(ctx context.Context) ([]*models.Issue, error)
	GetIssue(ctx context.Context, id string) (*models.Issue, error)
	BlockedIndex(ctx context.Context) (map[string]*models.BlockedInfo, error)

	// Write operations
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Issue, error)
	DeleteIssue(ctx context.Context, id string) error

	// Dependencies
	AddDependency(ctx context.Context, issueID, dependsOnID string) error
	RemoveDependency(ctx context.Context, issueID, dependsOnID string) error

	// Labels
	AttachLabel(ctx context.Context, id, label string) error
	DetachLabel(ctx context.Context, id, label string) error
}

// CreateIssueRequest encapsulates all data needed to create an issue
type CreateIssueRequest struct {
	Title       string
	Description string
	IssueType   models.IssueType
	Assignee    string
	Priority    int
	Labels      []string
	DependsOn   []string // IDs of issues blocking the new one
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new issue service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListIssues returns all issues in board display order
func (s *service) ListIssues(ctx context.Context) ([]*models.Issue, error) {
	issues, err := s.repo.ListIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	for _, issue := range issues {
		issue.Normalize()
	}
	return issues, nil
}

// GetIssue returns one issue by ID
func (s *service) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	if id == "" {
		return nil, models.ErrInvalidIssueID
	}
	issue, err := s.repo.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	issue.Normalize()
	return issue, nil
}

// BlockedIndex returns the dependency blocking summary for all issues
func (s *service) BlockedIndex(ctx context.Context) (map[string]*models.BlockedInfo, error) {
	index, err := s.repo.BlockedIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute blocked index: %w", err)
	}
	return index, nil
}

// CreateIssue handles issue creation with validation and ID generation
func (s *service) CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error) {
	id, err := idgen.NewIssueID()
	if err != nil {
		return nil, err
	}

	issue := &models.Issue{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IssueType:   req.IssueType,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		Labels:      req.Labels,
	}
	issue.Normalize()
	if err := issue.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateIssue(ctx, issue)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	for _, blockerID := range req.DependsOn {
		if err := s.repo.AddDependency(ctx, created.ID, blockerID); err != nil {
			return nil, fmt.Errorf("failed to add dependency on %s: %w", blockerID, err)
		}
	}

	return created, nil
}

// UpdateStatus persists a status-only mutation and returns the updated
// issue. This is the single persistence operation behind a board drop; no
// other issue fields are written.
func (s *service) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Issue, error) {
	if id == "" {
		return nil, models.ErrInvalidIssueID
	}
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}

	if err := s.repo.UpdateIssueStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return s.GetIssue(ctx, id)
}

// DeleteIssue removes an issue and its dependency edges
func (s *service) DeleteIssue(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrInvalidIssueID
	}
	if err := s.repo.DeleteIssue(ctx, id); err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}
	return nil
}

// AddDependency records that issueID is blocked by dependsOnID
func (s *service) AddDependency(ctx context.Context, issueID, dependsOnID string) error {
	if issueID == "" || dependsOnID == "" {
		return models.ErrInvalidIssueID
	}
	return s.repo.AddDependency(ctx, issueID, dependsOnID)
}

// RemoveDependency deletes a blocking edge
func (s *service) RemoveDependency(ctx context.Context, issueID, dependsOnID string) error {
	if issueID == "" || dependsOnID == "" {
		return models.ErrInvalidIssueID
	}
	return s.repo.RemoveDependency(ctx, issueID, dependsOnID)
}

// AttachLabel adds a label to an issue
func (s *service) AttachLabel(ctx context.Context, id, label string) error {
	if id == "" {
		return models.ErrInvalidIssueID
	}
	if label == "" {
		return ErrEmptyLabel
	}
	return s.repo.AddLabel(ctx, id, label)
}

// DetachLabel removes a label from an issue
func (s *service) DetachLabel(ctx context.Context, id, label string) error {
	if id == "" {
		return models.ErrInvalidIssueID
	}
	if label == "" {
		return ErrEmptyLabel
	}
	return s.repo.RemoveLabel(ctx, id, label)
}
