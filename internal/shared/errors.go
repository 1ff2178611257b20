package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrDatabaseUnavailable = fmt.Errorf("database unavailable")
	ErrFeedbackNotFound    = fmt.Errorf("feedback not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Presentation errors
	ErrUnknownPanel  = fmt.Errorf("unknown panel identifier")
	ErrUnknownFormat = fmt.Errorf("unknown export format")
)
