package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrRequestFailed wraps transport-level failures where no HTTP
	// response was obtained.
	ErrRequestFailed = errors.New("apiclient: request failed")

	// ErrInvalidBaseURL is returned by New for an empty or unparseable
	// base URL.
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")
)

// APIError is a non-2xx response outside the validation-failure shape.
// Message carries the server's human-readable message when one was sent.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("apiclient: unexpected status %d", e.Status)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsUnauthorized reports whether the error is a 401 response.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// ValidationError is an HTTP 400 response carrying per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "apiclient: validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "apiclient: validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message for a single field, or "" when the field
// passed validation.
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}
