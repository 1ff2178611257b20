package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/insighthub/landing/internal/models"
	"github.com/insighthub/landing/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestFeedbackRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		entry := models.NewFeedback(0, "Asha", "asha@example.com", "The forecast page is great", models.SourceWeb)

		if err := repo.Create(entry); err != nil {
			t.Fatalf("failed to create feedback: %v", err)
		}

		if entry.ID() == "" {
			t.Error("feedback ID should be set after creation")
		}
		if entry.Sequence() != 1 {
			t.Errorf("expected first sequence number 1, got %d", entry.Sequence())
		}
	})

	t.Run("Create rejects invalid feedback", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		entry := models.NewFeedback(0, "", "", "", models.SourceWeb)

		if err := repo.Create(entry); err == nil {
			t.Error("expected validation error for empty feedback")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		entry := models.NewFeedback(0, "Asha", "asha@example.com", "Nice dashboards", models.SourceTUI)

		if err := repo.Create(entry); err != nil {
			t.Fatalf("failed to create feedback: %v", err)
		}

		retrieved, err := repo.Get(entry.ID())
		if err != nil {
			t.Fatalf("failed to get feedback: %v", err)
		}

		if retrieved.ID() != entry.ID() {
			t.Errorf("expected ID %s, got %s", entry.ID(), retrieved.ID())
		}
		if retrieved.Message() != entry.Message() {
			t.Errorf("expected message %q, got %q", entry.Message(), retrieved.Message())
		}
		if retrieved.Source() != models.SourceTUI {
			t.Errorf("expected source tui, got %s", retrieved.Source())
		}
	})

	t.Run("Get missing entry", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)

		_, err := repo.Get("does-not-exist")
		if !errors.Is(err, shared.ErrFeedbackNotFound) {
			t.Errorf("expected ErrFeedbackNotFound, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		entry := models.NewFeedback(0, "Asha", "asha@example.com", "first draft", models.SourceWeb)

		if err := repo.Create(entry); err != nil {
			t.Fatalf("failed to create feedback: %v", err)
		}

		entry.SetMessage("second draft")
		if err := repo.Update(entry); err != nil {
			t.Fatalf("failed to update feedback: %v", err)
		}

		retrieved, err := repo.Get(entry.ID())
		if err != nil {
			t.Fatalf("failed to get feedback: %v", err)
		}
		if retrieved.Message() != "second draft" {
			t.Errorf("expected updated message, got %q", retrieved.Message())
		}
	})

	t.Run("Delete is soft", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		entry := models.NewFeedback(0, "Asha", "asha@example.com", "delete me", models.SourceWeb)

		if err := repo.Create(entry); err != nil {
			t.Fatalf("failed to create feedback: %v", err)
		}

		if err := repo.Delete(entry.ID()); err != nil {
			t.Fatalf("failed to delete feedback: %v", err)
		}

		if _, err := repo.Get(entry.ID()); !errors.Is(err, shared.ErrFeedbackNotFound) {
			t.Errorf("deleted feedback should not be retrievable, got %v", err)
		}

		// Row remains, only flagged.
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM feedback WHERE id = ?", entry.ID()).Scan(&count); err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected soft-deleted row to remain, count = %d", count)
		}

		if err := repo.Delete(entry.ID()); err == nil {
			t.Error("deleting twice should fail")
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		for _, spec := range []struct{ name, source string }{
			{"First", models.SourceWeb},
			{"Second", models.SourceTUI},
			{"Third", models.SourceWeb},
		} {
			entry := models.NewFeedback(0, spec.name, "", "message from "+spec.name, spec.source)
			if err := repo.Create(entry); err != nil {
				t.Fatalf("failed to create feedback: %v", err)
			}
		}

		all, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list feedback: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(all))
		}

		web, err := repo.List(map[string]any{"source": models.SourceWeb})
		if err != nil {
			t.Fatalf("failed to list web feedback: %v", err)
		}
		if len(web) != 2 {
			t.Errorf("expected 2 web entries, got %d", len(web))
		}
		for _, entry := range web {
			if entry.Source() != models.SourceWeb {
				t.Errorf("expected only web entries, got %s", entry.Source())
			}
		}
	})

	t.Run("Sequence increments", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFeedbackRepository(db)
		for i := 1; i <= 3; i++ {
			entry := models.NewFeedback(0, "Asha", "", "message", models.SourceWeb)
			if err := repo.Create(entry); err != nil {
				t.Fatalf("failed to create feedback: %v", err)
			}
			if entry.Sequence() != i {
				t.Errorf("expected sequence %d, got %d", i, entry.Sequence())
			}
		}
	})
}
