package main

import (
	"context"
	"fmt"
	"os"

	"github.com/insighthub/landing/internal/formatter"
	"github.com/insighthub/landing/internal/models"
	"github.com/insighthub/landing/internal/repositories"
	"github.com/insighthub/landing/internal/shared"
	"github.com/urfave/cli/v3"
)

// feedbackEntry is the JSON shape for a single feedback row.
type feedbackEntry struct {
	ID        string `json:"id"`
	Sequence  int    `json:"sequence"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
}

// listFeedback loads stored feedback entries, optionally filtered by source.
func (r *Runner) listFeedback(cmd *cli.Command) ([]*models.Feedback, func(), error) {
	config := r.loadConfig(cmd)

	store := r.store
	cleanup := func() {}
	if store == nil {
		db, err := r.openStore(config)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { db.Close() }
		store = repositories.NewFeedbackRepository(db)
	}

	criteria := map[string]any{}
	if source := cmd.String("source"); source != "" {
		criteria["source"] = source
	}

	entries, err := store.List(criteria)
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to list feedback: %w", err)
	}

	return entries, cleanup, nil
}

// FeedbackList prints stored feedback entries.
func (r *Runner) FeedbackList(ctx context.Context, cmd *cli.Command) error {
	entries, cleanup, err := r.listFeedback(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		payload := make([]feedbackEntry, 0, len(entries))
		for _, e := range entries {
			payload = append(payload, feedbackEntry{
				ID:        e.ID(),
				Sequence:  e.Sequence(),
				Name:      e.Name(),
				Email:     e.Email(),
				Message:   e.Message(),
				Source:    e.Source(),
				CreatedAt: e.CreatedAt().Format("2006-01-02 15:04"),
			})
		}
		return r.writeJSON(payload, cmd.Bool("pretty"))
	}

	if len(entries) == 0 {
		return r.writePlain("No feedback yet.\n")
	}

	return r.writePlain("%s", formatter.ExportToPlain(entries))
}

// FeedbackExport writes stored feedback to a file in CSV or Markdown format.
func (r *Runner) FeedbackExport(ctx context.Context, cmd *cli.Command) error {
	entries, cleanup, err := r.listFeedback(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	format := cmd.String("format")
	var data []byte
	switch format {
	case "csv":
		if data, err = formatter.ExportToCSV(entries); err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
	case "md", "markdown":
		data = formatter.ExportToMarkdown(entries)
	default:
		return fmt.Errorf("%w: %s", shared.ErrUnknownFormat, format)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		return r.writePlain("%s", data)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	r.logger.Info("feedback exported", "path", outputPath, "entries", len(entries))
	return r.writePlain("✓ Exported %d entries to %s\n", len(entries), outputPath)
}
