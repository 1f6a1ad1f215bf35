package apperr

import (
	"errors"
	"net/http"
)

// Error kind titles mirrored in the response envelope.
const (
	TitleValidation = "VALIDATION_ERROR"
	TitleNotFound   = "NOT_FOUND"
	TitleFailure    = "FAILURE"
	TitleInternal   = "Internal Server Error"
)

// Error is a tagged business error carrying the HTTP status code, a stable
// title and a caller-facing message. Handlers match it with errors.As and
// render it as the response envelope; anything else becomes a generic 500.
type Error struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports caller-fixable input problems (400).
func Validation(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Title: TitleValidation, Message: message}
}

// NotFound reports a well-formed id with no matching record (404).
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Title: TitleNotFound, Message: message}
}

// Failure reports a permitted write that did not take effect (500).
func Failure(message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Title: TitleFailure, Message: message}
}

// Internal wraps an unanticipated fault as a generic 500.
func Internal(err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Title: TitleInternal, Message: err.Error()}
}

// From extracts an *Error from err, downgrading unknown faults to Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
