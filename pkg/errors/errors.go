// Package errors provides structured error types for plakat.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - LAYOUT_OVERFLOW / CONTENT_TOO_LARGE: the poster content cannot be composed
//   - RENDER_FAILED, INTERNAL_*: output and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "title cannot be empty")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	var overflow *errors.LayoutOverflowError
//	if stderrors.As(err, &overflow) {
//	    fmt.Println(overflow.Element, overflow.Span)
//	}
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidCanvas  Code = "INVALID_CANVAS"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVariant Code = "INVALID_VARIANT"
	ErrCodeInvalidColor   Code = "INVALID_COLOR"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidPreset  Code = "INVALID_PRESET"

	// Composition errors
	ErrCodeLayoutOverflow  Code = "LAYOUT_OVERFLOW"
	ErrCodeContentTooLarge Code = "CONTENT_TOO_LARGE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output and internal errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
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

// coder is implemented by typed errors that carry a fixed code.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error with a
// matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
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

// LayoutOverflowError reports that a text block needs more contiguous free
// rows than the grid has left.
type LayoutOverflowError struct {
	Element string // Block that could not be placed
	Span    int    // Contiguous rows it required
	Free    int    // Rows that were still free
}

// Error implements the error interface.
func (e *LayoutOverflowError) Error() string {
	return fmt.Sprintf("layout overflow: %s needs %d contiguous rows, %d rows free", e.Element, e.Span, e.Free)
}

// Code returns the error code for this error type.
func (e *LayoutOverflowError) Code() Code {
	return ErrCodeLayoutOverflow
}

// ContentTooLargeError reports text that can never fit its allotted width.
type ContentTooLargeError struct {
	Element string  // Block whose text is too wide
	Text    string  // Offending text (a word or the whole block)
	Width   float64 // Measured width
	Limit   float64 // Maximum width available
}

// Error implements the error interface.
func (e *ContentTooLargeError) Error() string {
	return fmt.Sprintf("content too large: %s text %q is %.1f wide, limit %.1f", e.Element, e.Text, e.Width, e.Limit)
}

// Code returns the error code for this error type.
func (e *ContentTooLargeError) Code() Code {
	return ErrCodeContentTooLarge
}
