package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/insighthub/landing/internal/repositories"
	"github.com/insighthub/landing/internal/shared"
	"github.com/insighthub/landing/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal rendition of the landing page.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(config.Landing.LogPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	store := r.store
	if store == nil {
		if _, err := os.Stat(config.Database.Path); err == nil {
			db, err := r.openStore(config)
			if err != nil {
				r.logger.Warn("feedback store unavailable", "error", err)
			} else {
				defer db.Close()
				store = repositories.NewFeedbackRepository(db)
			}
		} else {
			r.logger.Info("no database found, feedback submission disabled", "path", config.Database.Path)
		}
	}

	model := ui.NewModel(ui.Options{
		Store:         store,
		Logger:        fileLogger,
		SlideInterval: time.Duration(config.Landing.SlideIntervalMS) * time.Millisecond,
		TypingDelay:   time.Duration(config.Landing.TypingDelayMS) * time.Millisecond,
	})
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
