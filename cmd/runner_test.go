package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/insighthub/landing/internal/models"
	"github.com/insighthub/landing/internal/shared"
	tu "github.com/insighthub/landing/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			store := &tu.MemoryFeedbackStore{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Store:  store,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Config: nil,
			})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: nil,
			})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: nil,
			})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlainln", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		err := runner.writePlainln("done")

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "\ndone\n" {
			t.Errorf("expected surrounding newlines, got %q", output.String())
		}
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "tui", "serve", "feedback"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})
}

func TestFeedbackCommands(t *testing.T) {
	seed := func(t *testing.T) *tu.MemoryFeedbackStore {
		t.Helper()
		store := &tu.MemoryFeedbackStore{}

		entry := models.NewFeedback(1, "Asha", "asha@example.com", "Forecasting saved our holiday season.", models.SourceWeb)
		entry.SetID("feedback_one")
		entry.SetCreatedAt(time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC))
		store.Entries = append(store.Entries, entry)

		entry = models.NewFeedback(2, "Marco", "", "Would love a Shopify connector.", models.SourceTUI)
		entry.SetID("feedback_two")
		entry.SetCreatedAt(time.Date(2025, 11, 4, 14, 0, 0, 0, time.UTC))
		store.Entries = append(store.Entries, entry)

		return store
	}

	run := func(t *testing.T, store *tu.MemoryFeedbackStore, args ...string) string {
		t.Helper()
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output: output,
			Store:  store,
		})

		cmd := feedbackCommand(runner)
		if err := cmd.Run(context.Background(), append([]string{"feedback"}, args...)); err != nil {
			t.Fatalf("command failed: %v", err)
		}

		return output.String()
	}

	t.Run("list prints plain text", func(t *testing.T) {
		store := seed(t)
		result := run(t, store, "list")

		if !strings.Contains(result, "Asha") {
			t.Errorf("expected entry name in output, got %q", result)
		}
		if !strings.Contains(result, "Marco") {
			t.Errorf("expected entry name in output, got %q", result)
		}
	})

	t.Run("list prints JSON", func(t *testing.T) {
		store := seed(t)
		result := run(t, store, "list", "--json")

		if !strings.Contains(result, `"name":"Asha"`) {
			t.Errorf("expected JSON output, got %q", result)
		}
		if !strings.Contains(result, `"source":"tui"`) {
			t.Errorf("expected source in JSON output, got %q", result)
		}
	})

	t.Run("list reports empty store", func(t *testing.T) {
		store := &tu.MemoryFeedbackStore{}
		result := run(t, store, "list")

		if !strings.Contains(result, "No feedback yet") {
			t.Errorf("expected empty message, got %q", result)
		}
	})

	t.Run("export writes CSV to file", func(t *testing.T) {
		store := seed(t)
		outputPath := filepath.Join(t.TempDir(), "feedback.csv")

		run(t, store, "export", "--format", "csv", "--output", outputPath)

		data := tu.MustReadFile(t, outputPath)
		if !strings.Contains(data, "Sequence,Name,Email,Message,Source,CreatedAt") {
			t.Errorf("expected CSV header, got %q", data)
		}
		if !strings.Contains(data, "Asha") {
			t.Errorf("expected entry in CSV, got %q", data)
		}
	})

	t.Run("export writes markdown to stdout", func(t *testing.T) {
		store := seed(t)
		result := run(t, store, "export", "--format", "md")

		if !strings.Contains(result, "# Landing Page Feedback") {
			t.Errorf("expected markdown heading, got %q", result)
		}
	})

	t.Run("export rejects unknown format", func(t *testing.T) {
		store := seed(t)
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output: output,
			Store:  store,
		})

		cmd := feedbackCommand(runner)
		err := cmd.Run(context.Background(), []string{"feedback", "export", "--format", "xml"})

		if err == nil {
			t.Fatal("expected error for unknown format")
		}
		if !strings.Contains(err.Error(), "unknown export format") {
			t.Errorf("expected format error, got %v", err)
		}
	})
}
