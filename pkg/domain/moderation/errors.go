package moderation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSubmissionInProgress = errors.New("a submission is already in progress for this user")
	ErrProviderUnavailable  = errors.New("moderation provider unavailable")
	ErrSubmissionIDConflict = errors.New("submission id belongs to another user")
)

// ValidationError is a local constraint violation. It never reaches storage
// or the text classifier.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ModerationRejection reports content refused by a moderation step.
type ModerationRejection struct {
	Reason     string
	Categories []Category
	Message    string
}

func (e *ModerationRejection) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("content rejected: %s", e.Reason)
}

type RateLimitExceeded struct {
	Limit      int
	Window     time.Duration
	RetryAfter time.Duration
}

func (e *RateLimitExceeded) Error() string {
	return fmt.Sprintf("rate limit exceeded: %d actions per %s", e.Limit, e.Window)
}

// EscalationPending is not a failure: the content is stored but held for a
// human reviewer.
type EscalationPending struct {
	Confidence float64
	Categories []Category
}

func (e *EscalationPending) Error() string {
	return fmt.Sprintf("content pending review (confidence %.2f)", e.Confidence)
}
