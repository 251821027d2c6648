// Package errors provides structured error types for the relviz library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the exporter and decorator system
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (annotations, selectors, config)
//   - MISSING_PARAM / UNKNOWN_PARAM / NO_SHAPE_MATCH: decorator parameter
//     validation failures
//   - UNSUPPORTED_KIND / DEPTH_EXCEEDED / TRAVERSAL_CONTRACT: export failures
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingParam, "missing parameter: %s", name)
//	if errors.Is(err, errors.ErrCodeMissingParam) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Annotation and decorator validation errors
	ErrCodeInvalidAnnotation Code = "INVALID_ANNOTATION"
	ErrCodeMissingParam      Code = "MISSING_PARAM"
	ErrCodeUnknownParam      Code = "UNKNOWN_PARAM"
	ErrCodeNoShapeMatch      Code = "NO_SHAPE_MATCH"
	ErrCodeInvalidSelector   Code = "INVALID_SELECTOR"

	// Export failures
	ErrCodeUnsupportedKind    Code = "UNSUPPORTED_KIND"
	ErrCodeDepthExceeded      Code = "DEPTH_EXCEEDED"
	ErrCodeTraversalContract  Code = "TRAVERSAL_CONTRACT"
	ErrCodeInvalidVariant     Code = "INVALID_VARIANT"
	ErrCodeUnaddressableValue Code = "UNADDRESSABLE_VALUE"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
