package validation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// GenericErrorMessage is the single message sent to the client when a
// validator fails with anything other than a *ValidationError.
const GenericErrorMessage = "Invalid request data"

// Violation is a single shape mismatch reported by a validator.
//
// Path holds the segments leading to the offending field. Segments are
// strings (object keys) or ints (slice indexes); an empty path means the
// value as a whole.
type Violation struct {
	Path    []any
	Message string
}

// JoinedPath returns the path segments joined with ".".
//
// Example:
//
//	[]any{"items", 0, "name"} -> "items.0.name"
func (v Violation) JoinedPath() string {
	if len(v.Path) == 0 {
		return ""
	}

	parts := make([]string, len(v.Path))
	for i, seg := range v.Path {
		parts[i] = fmt.Sprint(seg)
	}
	return strings.Join(parts, ".")
}

// ValidationError is the structured failure a Validator returns when the
// value does not satisfy its shape. Violations keep the validator's order.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a *ValidationError from the given violations.
func NewValidationError(violations ...Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}

	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		if p := v.JoinedPath(); p != "" {
			msgs[i] = p + ": " + v.Message
		} else {
			msgs[i] = v.Message
		}
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// SlotError records which part of the request failed validation.
// Err is either a *ValidationError or an unstructured error.
type SlotError struct {
	Slot Slot
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %v", e.Slot, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}

// ErrorEntry is one item of the error payload.
// Path is omitted from the JSON when empty.
type ErrorEntry struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every 400 written by a gate:
//
//	{ "errors": [ { "path": "email", "message": "Invalid email" } ] }
type ErrorResponse struct {
	Errors []ErrorEntry `json:"errors"`
}

// NewErrorResponse translates a validation failure into the wire payload.
//
// A *ValidationError anywhere in the chain yields one entry per violation,
// in order. Any other error yields a single entry with GenericErrorMessage
// and no path.
func NewErrorResponse(err error) ErrorResponse {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return ErrorResponse{Errors: []ErrorEntry{{Message: GenericErrorMessage}}}
	}

	entries := make([]ErrorEntry, 0, len(validationErr.Violations))
	for _, v := range validationErr.Violations {
		entries = append(entries, ErrorEntry{
			Path:    v.JoinedPath(),
			Message: v.Message,
		})
	}
	return ErrorResponse{Errors: entries}
}
