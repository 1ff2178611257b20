// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/insighthub/landing/internal/models"
)

// MemoryFeedbackStore is an in-memory test double for the feedback repository.
type MemoryFeedbackStore struct {
	Entries   []*models.Feedback
	CreateErr error
}

func (s *MemoryFeedbackStore) Create(entry *models.Feedback) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.Entries = append(s.Entries, entry)
	return nil
}

func (s *MemoryFeedbackStore) Get(id string) (*models.Feedback, error) {
	for _, e := range s.Entries {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, errors.New("feedback not found")
}

func (s *MemoryFeedbackStore) Update(entry *models.Feedback) error { return nil }

func (s *MemoryFeedbackStore) Delete(id string) error { return nil }

func (s *MemoryFeedbackStore) List(criteria map[string]any) ([]*models.Feedback, error) {
	return s.Entries, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
