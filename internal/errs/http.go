// Package errs defines the error shape the API returns for failures
// that are not request validation failures (unknown routes, handler
// errors, panics).
//
// Validation failures never reach this package: the validation gate
// answers them itself with its own `{"errors": [...]}` payload.
package errs

import "strings"

// HTTPError is the main custom error type for API responses.
//
// It is designed to be serialized directly to JSON.
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the global error handler replace the message with a
//     generic one.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithMessage returns a copy of this HTTPError with Message replaced.
// The global error handler uses it so shared error values stay untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
