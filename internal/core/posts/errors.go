package posts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when no post has the requested id
	ErrNotFound = errors.New("post not found")

	// ErrInvalidPayload is returned when the request body is not a JSON object
	ErrInvalidPayload = errors.New("request body must be a JSON object")
)

// ValidationError carries every field that failed the rule set
// Fields maps a field name to one or more human-readable messages
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return fmt.Sprintf("validation failed (%s)", strings.Join(parts, ", "))
}

// Add records a message for a field
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// AsValidationError extracts the validation error from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// NotFoundError represents a lookup for an id that has no row
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post not found: %d", e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match a NotFoundError
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(id int64) error {
	return &NotFoundError{ID: id}
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
