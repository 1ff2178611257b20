package models

import (
	"fmt"
	"strings"
	"time"
)

// Feedback source values. The web form and the TUI form write the same table.
const (
	SourceWeb = "web"
	SourceTUI = "tui"
)

// Feedback is a visitor message submitted through the landing page's feedback form.
//
// Implements [Model] with uuid identity, sequence ordering, timestamps, and soft delete.
type Feedback struct {
	id        string
	sequence  int
	name      string
	email     string
	message   string
	source    string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

var _ Model = (*Feedback)(nil)

// NewFeedback creates a Feedback entry with the current time for both timestamps.
// The ID is assigned by the repository on Create.
func NewFeedback(sequence int, name, email, message, source string) *Feedback {
	now := time.Now()
	if source == "" {
		source = SourceWeb
	}
	return &Feedback{
		sequence:  sequence,
		name:      strings.TrimSpace(name),
		email:     strings.TrimSpace(email),
		message:   strings.TrimSpace(message),
		source:    source,
		createdAt: now,
		updatedAt: now,
	}
}

func (f *Feedback) ID() string            { return f.id }
func (f *Feedback) Sequence() int         { return f.sequence }
func (f *Feedback) Name() string          { return f.name }
func (f *Feedback) Email() string         { return f.email }
func (f *Feedback) Message() string       { return f.message }
func (f *Feedback) Source() string        { return f.source }
func (f *Feedback) CreatedAt() time.Time  { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time  { return f.updatedAt }
func (f *Feedback) DeletedAt() *time.Time { return f.deletedAt }

func (f *Feedback) SetID(id string)           { f.id = id }
func (f *Feedback) SetSequence(seq int)       { f.sequence = seq }
func (f *Feedback) SetMessage(msg string)     { f.message = strings.TrimSpace(msg) }
func (f *Feedback) SetCreatedAt(t time.Time)  { f.createdAt = t }
func (f *Feedback) SetUpdatedAt(t time.Time)  { f.updatedAt = t }
func (f *Feedback) SetDeletedAt(t *time.Time) { f.deletedAt = t }

// Validate checks required fields and rough email shape.
func (f *Feedback) Validate() error {
	if f.name == "" {
		return fmt.Errorf("feedback name is required")
	}
	if f.message == "" {
		return fmt.Errorf("feedback message is required")
	}
	if f.email != "" {
		at := strings.Index(f.email, "@")
		if at <= 0 || at == len(f.email)-1 {
			return fmt.Errorf("invalid email: %s", f.email)
		}
	}
	if f.source != SourceWeb && f.source != SourceTUI {
		return fmt.Errorf("unknown feedback source: %s", f.source)
	}
	return nil
}
