// Package apperr defines the application's expected-failure taxonomy.
//
// Services return *Error values for failures a client can act on; controllers
// translate them to HTTP status codes with apperr.Status. Anything that is not
// an *Error is treated as an internal failure (500).
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an expected failure.
type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Duplicate
	Unauthenticated
	Forbidden
	Notification
)

// Error is an expected application failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an expected failure of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to an expected failure.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the Kind of err, or Internal when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Message returns the client-safe message for err. Internal errors get a
// generic message so internals never leak.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "Internal Server Error"
}

// Status maps an error to the HTTP status code the API contract uses.
// DuplicateEmail is surfaced as 400 to match the storefront clients.
func Status(err error) int {
	switch KindOf(err) {
	case Validation, Duplicate:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Notification, Internal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
