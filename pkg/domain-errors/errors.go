// Package domainerrors provides the error taxonomy shared by all modules.
//
// Errors are constructed at the point of failure with a stable machine code
// and a human-readable message. Transport layers map codes to HTTP statuses;
// services branch on codes with HasCode instead of string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

// Transport-level codes.
const (
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal_error"
)

// Document validation codes.
const (
	// CodeInvalidFormat marks a structurally wrong identifier or contact
	// string (length, characters, shape).
	CodeInvalidFormat Code = "invalid_format"

	// CodeInvalidChecksum marks an identifier with the right shape whose
	// check digits fail the mod-11 math.
	CodeInvalidChecksum Code = "invalid_checksum"

	// CodeBusinessRule marks a breached date/time/duration/age constraint.
	// The message carries the specific reason.
	CodeBusinessRule Code = "business_rule_violation"
)

// Registry lookup codes.
const (
	CodeRegistryNotFound  Code = "registry_not_found"
	CodeRegistryMalformed Code = "registry_malformed"
	CodeRegistryTransport Code = "registry_transport_error"
	CodeRegistryService   Code = "registry_service_error"
)

// Error is the concrete error type carried across module boundaries.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// New constructs a domain error with a code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error so the cause
// survives for logging while callers keep branching on the code.
func Wrap(code Code, message string, err error) error {
	return &Error{Code: code, Message: message, wrapped: err}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal
// for errors that did not originate in a domain module.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message, falling back to Error().
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
