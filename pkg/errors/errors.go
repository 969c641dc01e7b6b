// Package errors provides structured error types for metcollection's
// command-line input handling.
//
// API failures are not represented here: they surface as
// [integrations.StatusError] or as the transport and decoding errors of the
// standard library. This package covers what the CLI rejects before any
// request is sent.
//
// # Error Codes
//
//   - INVALID_*: Input validation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidObjectID, "invalid object id %q: must be an integer", arg)
//	if errors.Is(err, errors.ErrCodeInvalidObjectID) {
//	    // Handle validation error
//	}
//
// [integrations.StatusError]: github.com/matzehuels/metcollection/pkg/integrations.StatusError
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for input validation.
const (
	ErrCodeInvalidObjectID  Code = "INVALID_OBJECT_ID"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidURL       Code = "INVALID_URL"
	ErrCodeInvalidDateRange Code = "INVALID_DATE_RANGE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

var hints = map[Code]string{
	ErrCodeInvalidObjectID:  "find object IDs with 'metcollection search' or 'metcollection objects'",
	ErrCodeInvalidFormat:    "use --output text, json or toml",
	ErrCodeInvalidURL:       "omit --base-url to use the public collection API",
	ErrCodeInvalidDateRange: "--date-begin must not be after --date-end",
}

// Hint returns a remediation line for err's code, or "" if there is none.
func Hint(err error) string {
	return hints[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
