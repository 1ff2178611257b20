package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/insighthub/landing/internal/models"
	"github.com/insighthub/landing/internal/shared"
)

// FeedbackRepository implements [models.Repository] for [models.Feedback] persistence.
type FeedbackRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.Feedback] = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new [FeedbackRepository] with the given database connection
func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a new feedback entry into the database with generated ID and sequence
func (r *FeedbackRepository) Create(feedback *models.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "feedback")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	feedback.SetSequence(sequence)

	id := shared.GenerateID()
	feedback.SetID(id)

	query := `
		INSERT INTO feedback (id, sequence, name, email, message, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		feedback.Name(),
		feedback.Email(),
		feedback.Message(),
		feedback.Source(),
		feedback.CreatedAt(),
		feedback.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}

	return nil
}

// Get retrieves a feedback entry by ID, excluding soft-deleted rows
func (r *FeedbackRepository) Get(id string) (*models.Feedback, error) {
	query := `
		SELECT id, sequence, name, email, message, source, created_at, updated_at, deleted_at
		FROM feedback
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing feedback entry's message
func (r *FeedbackRepository) Update(feedback *models.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	feedback.SetUpdatedAt(now)

	query := `
		UPDATE feedback
		SET name = ?, email = ?, message = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, feedback.Name(), feedback.Email(), feedback.Message(), now, feedback.ID())
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrFeedbackNotFound, feedback.ID())
	}

	return nil
}

// Delete soft-deletes a feedback entry by ID
func (r *FeedbackRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE feedback
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrFeedbackNotFound, id)
	}

	return nil
}

// List retrieves feedback matching the given criteria, newest first.
//
// Supported criteria keys: "source" (web or tui). A nil or empty map returns everything.
func (r *FeedbackRepository) List(criteria map[string]any) ([]*models.Feedback, error) {
	query := `
		SELECT id, sequence, name, email, message, source, created_at, updated_at, deleted_at
		FROM feedback
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if source, ok := criteria["source"]; ok {
		query += " AND source = ?"
		args = append(args, source)
	}

	query += " ORDER BY created_at DESC, sequence DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		entry, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback rows: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *FeedbackRepository) scanOne(row *sql.Row) (*models.Feedback, error) {
	entry, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, shared.ErrFeedbackNotFound
	}
	return entry, err
}

func (r *FeedbackRepository) scanRow(row rowScanner) (*models.Feedback, error) {
	var (
		id        string
		sequence  int
		name      string
		email     string
		message   string
		source    string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &name, &email, &message, &source, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedback: %w", err)
	}

	entry := models.NewFeedback(sequence, name, email, message, source)
	entry.SetID(id)
	entry.SetCreatedAt(createdAt)
	entry.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		entry.SetDeletedAt(&deletedAt.Time)
	}

	return entry, nil
}
