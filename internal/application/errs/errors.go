package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNoSession        = errors.New("no session identity")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrRateLimit        = errors.New("rate limit")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// ValidationError carries every failure message collected while
// validating a request. Messages keep the order in which checks ran.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns nil when there is nothing to report.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Messages extracts validation messages from err. Errors that are not
// validation errors contribute their own text as a single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return []string{err.Error()}
}

// APIError describes a non-success response of the remote API.
type APIError struct {
	Method     string
	Path       string
	Body       []byte
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Unwrap maps the status code to a sentinel error.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimit
	default:
		return ErrUnexpectedStatus
	}
}
