// Package errors provides structured error types for Architectus.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, HTTP API and library
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *NOT_FOUND: Resource not found
//   - LAYOUT_OVERFLOW / GENERATION_FAILED: expected generation failures
//   - CONFIGURATION / INTERNAL_*: programming errors
//
// Contract violations (a malformed layout tree, a room imprinted over
// another room) are not returned: they panic with an *Error carrying
// [ErrCodeConfiguration] or [ErrCodeInternal].
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPlot, "plot %dx%d is too small", w, h)
//	if errors.Is(err, errors.ErrCodeInvalidPlot) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeGenerationFailed, origErr, "no layout after %d attempts", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidPlot      Code = "INVALID_PLOT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidTemplate  Code = "INVALID_TEMPLATE"
	ErrCodeInvalidComponent Code = "INVALID_COMPONENT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Generation errors
	ErrCodeLayoutOverflow   Code = "LAYOUT_OVERFLOW"
	ErrCodeGenerationFailed Code = "GENERATION_FAILED"

	// Resource not found errors
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodePlanNotFound      Code = "PLAN_NOT_FOUND"
	ErrCodeComponentNotFound Code = "COMPONENT_NOT_FOUND"

	// Backend errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeStorage Code = "STORAGE_ERROR"

	// Programming errors
	ErrCodeConfiguration Code = "CONFIGURATION"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
	ErrCodeUnsupported   Code = "UNSUPPORTED"
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

// Coder is implemented by typed errors that carry a code without being an
// *Error, such as layout overflows.
type Coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a [Coder] with a
// matching code.
func Is(err error, code Code) bool {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			if e.Code == code {
				return true
			}
		case Coder:
			if e.Code() == code {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case Coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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

// Configuration panics with an [ErrCodeConfiguration] error. Layout nodes
// call it when a declared tree is malformed.
func Configuration(format string, args ...any) {
	panic(New(ErrCodeConfiguration, format, args...))
}
