package issue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmrivas/tablero/internal/database"
	"github.com/jmrivas/tablero/internal/idgen"
	"github.com/jmrivas/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// setupService creates a service over an in-memory database
func setupService(t *testing.T) Service {
	t.Helper()
	db, err := database.OpenDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewService(database.NewRepository(db))
}

func createIssue(t *testing.T, svc Service, req CreateIssueRequest) *models.Issue {
	t.Helper()
	created, err := svc.CreateIssue(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateIssue failed: %v", err)
	}
	return created
}

func TestCreateIssue_GeneratesID(t *testing.T) {
	svc := setupService(t)

	created := createIssue(t, svc, CreateIssueRequest{Title: "Fix bug"})

	if !strings.HasPrefix(created.ID, idgen.Prefix) {
		t.Errorf("ID %q missing %q prefix", created.ID, idgen.Prefix)
	}
	if created.Status != models.StatusOpen {
		t.Errorf("Status = %q, want normalized default %q", created.Status, models.StatusOpen)
	}
	if created.IssueType != models.TypeTask {
		t.Errorf("IssueType = %q, want normalized default %q", created.IssueType, models.TypeTask)
	}
}

func TestCreateIssue_Validation(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateIssue(context.Background(), CreateIssueRequest{})
	if !errors.Is(err, models.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	_, err = svc.CreateIssue(context.Background(), CreateIssueRequest{Title: "x", IssueType: "story"})
	if !errors.Is(err, models.ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestCreateIssue_WithDependencies(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	blocker := createIssue(t, svc, CreateIssueRequest{Title: "Blocker"})
	blocked := createIssue(t, svc, CreateIssueRequest{Title: "Blocked", DependsOn: []string{blocker.ID}})

	index, err := svc.BlockedIndex(ctx)
	if err != nil {
		t.Fatal(err)
	}
	info := index[blocked.ID]
	if info == nil || info.BlockedByCount != 1 {
		t.Fatalf("expected one blocker for %s, got %+v", blocked.ID, info)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created := createIssue(t, svc, CreateIssueRequest{Title: "Fix bug"})

	updated, err := svc.UpdateStatus(ctx, created.ID, models.StatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("Status = %q, want %q", updated.Status, models.StatusInProgress)
	}

	if _, err := svc.UpdateStatus(ctx, created.ID, "resolved"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "", models.StatusClosed); !errors.Is(err, models.ErrInvalidIssueID) {
		t.Errorf("expected ErrInvalidIssueID, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "tb-404", models.StatusClosed); !errors.Is(err, models.ErrIssueNotFound) {
		t.Errorf("expected ErrIssueNotFound, got %v", err)
	}
}

func TestLabels(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created := createIssue(t, svc, CreateIssueRequest{Title: "x"})

	if err := svc.AttachLabel(ctx, created.ID, ""); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("expected ErrEmptyLabel, got %v", err)
	}
	if err := svc.AttachLabel(ctx, created.ID, "backend"); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetIssue(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasLabel("backend") {
		t.Error("label not attached")
	}

	if err := svc.DetachLabel(ctx, created.ID, "backend"); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteIssue(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created := createIssue(t, svc, CreateIssueRequest{Title: "x"})
	if err := svc.DeleteIssue(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetIssue(ctx, created.ID); !errors.Is(err, models.ErrIssueNotFound) {
		t.Errorf("expected ErrIssueNotFound after delete, got %v", err)
	}
}
