package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmrivas/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := runMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, repo *Repository, issue *models.Issue) *models.Issue {
	t.Helper()
	issue.Normalize()
	created, err := repo.CreateIssue(context.Background(), issue)
	if err != nil {
		t.Fatalf("Failed to create issue %s: %v", issue.ID, err)
	}
	return created
}

func TestCreateAndGetIssue(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	created := mustCreate(t, repo, &models.Issue{
		ID:        "tb-1",
		Title:     "Fix login bug",
		Status:    models.StatusOpen,
		IssueType: models.TypeBug,
		Labels:    []string{"auth", "backend"},
	})

	if created.Title != "Fix login bug" {
		t.Errorf("Title = %q", created.Title)
	}
	if len(created.Labels) != 2 || created.Labels[0] != "auth" {
		t.Errorf("Labels = %v, want [auth backend]", created.Labels)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestGetIssue_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetIssue(context.Background(), "tb-404")
	if !errors.Is(err, models.ErrIssueNotFound) {
		t.Errorf("expected ErrIssueNotFound, got %v", err)
	}
}

func TestUpdateIssueStatus(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	mustCreate(t, repo, &models.Issue{ID: "tb-1", Title: "x"})

	if err := repo.UpdateIssueStatus(context.Background(), "tb-1", models.StatusClosed); err != nil {
		t.Fatalf("UpdateIssueStatus failed: %v", err)
	}

	got, err := repo.GetIssue(context.Background(), "tb-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusClosed {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusClosed)
	}

	if err := repo.UpdateIssueStatus(context.Background(), "tb-404", models.StatusClosed); !errors.Is(err, models.ErrIssueNotFound) {
		t.Errorf("expected ErrIssueNotFound for missing issue, got %v", err)
	}
}

func TestListIssues_OrderAndLabels(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	mustCreate(t, repo, &models.Issue{ID: "tb-1", Title: "low", Priority: 3})
	mustCreate(t, repo, &models.Issue{ID: "tb-2", Title: "high", Priority: 0, Labels: []string{"urgent"}})

	issues, err := repo.ListIssues(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].ID != "tb-2" {
		t.Errorf("expected priority order, got %s first", issues[0].ID)
	}
	if len(issues[0].Labels) != 1 || issues[0].Labels[0] != "urgent" {
		t.Errorf("labels not attached in List: %v", issues[0].Labels)
	}
}

func TestBlockedIndex(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, &models.Issue{ID: "tb-1", Title: "blocked work"})
	mustCreate(t, repo, &models.Issue{ID: "tb-2", Title: "open blocker"})
	mustCreate(t, repo, &models.Issue{ID: "tb-3", Title: "closed blocker", Status: models.StatusClosed})

	if err := repo.AddDependency(ctx, "tb-1", "tb-2"); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddDependency(ctx, "tb-1", "tb-3"); err != nil {
		t.Fatal(err)
	}

	index, err := repo.BlockedIndex(ctx)
	if err != nil {
		t.Fatal(err)
	}

	info := index["tb-1"]
	if info == nil {
		t.Fatal("tb-1 should be in the blocked index")
	}
	// Only the open blocker counts
	if info.BlockedByCount != 1 || len(info.BlockedBy) != 1 || info.BlockedBy[0] != "tb-2" {
		t.Errorf("BlockedInfo = %+v, want one open blocker tb-2", info)
	}
	if _, ok := index["tb-2"]; ok {
		t.Error("unblocked issue should be absent from the index")
	}

	// Closing the blocker empties the index
	if err := repo.UpdateIssueStatus(ctx, "tb-2", models.StatusClosed); err != nil {
		t.Fatal(err)
	}
	index, err = repo.BlockedIndex(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(index) != 0 {
		t.Errorf("expected empty index after closing blocker, got %v", index)
	}
}

func TestAddDependency_Validation(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, &models.Issue{ID: "tb-1", Title: "a"})
	mustCreate(t, repo, &models.Issue{ID: "tb-2", Title: "b"})

	if err := repo.AddDependency(ctx, "tb-1", "tb-1"); !errors.Is(err, models.ErrSelfDependency) {
		t.Errorf("expected ErrSelfDependency, got %v", err)
	}

	if err := repo.AddDependency(ctx, "tb-1", "tb-2"); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddDependency(ctx, "tb-1", "tb-2"); !errors.Is(err, models.ErrDependencyExists) {
		t.Errorf("expected ErrDependencyExists, got %v", err)
	}
}

func TestDeleteIssue_Cascades(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, &models.Issue{ID: "tb-1", Title: "a", Labels: []string{"x"}})
	mustCreate(t, repo, &models.Issue{ID: "tb-2", Title: "b"})
	if err := repo.AddDependency(ctx, "tb-2", "tb-1"); err != nil {
		t.Fatal(err)
	}

	if err := repo.DeleteIssue(ctx, "tb-1"); err != nil {
		t.Fatal(err)
	}

	index, err := repo.BlockedIndex(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(index) != 0 {
		t.Error("dependency rows should cascade on issue delete")
	}
}

func TestLabels_AddRemove(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, &models.Issue{ID: "tb-1", Title: "a"})

	if err := repo.AddLabel(ctx, "tb-1", "backend"); err != nil {
		t.Fatal(err)
	}
	// Duplicate adds are ignored
	if err := repo.AddLabel(ctx, "tb-1", "backend"); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.GetIssue(ctx, "tb-1")
	if len(got.Labels) != 1 {
		t.Errorf("Labels = %v, want [backend]", got.Labels)
	}

	if err := repo.RemoveLabel(ctx, "tb-1", "backend"); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.GetIssue(ctx, "tb-1")
	if len(got.Labels) != 0 {
		t.Errorf("Labels = %v, want empty", got.Labels)
	}
}
