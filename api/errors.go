// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-buf.

package api

import "fmt"

// Category sentinels. Structured errors unwrap onto these so callers
// can classify with errors.Is without inspecting codes.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrOutOfRange      = fmt.Errorf("out of range")
	ErrStaleView       = fmt.Errorf("stale view")
	ErrInternal        = fmt.Errorf("internal error")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeStaleView
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code onto its category sentinel.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeStaleView:
		return ErrStaleView
	case ErrCodeInternal:
		return ErrInternal
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
