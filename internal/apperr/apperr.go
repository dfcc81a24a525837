// Package apperr defines the closed set of failures that HTTP handlers may
// return. Every value carries enough information for the problem translator
// to render a complete application/problem+json response.
//
// The taxonomy is deliberately small:
//   - KindInternal   wraps an opaque lower-level cause and maps to 500.
//   - KindBadRequest carries a caller-attributable message and maps to 400.
//
// Adding a Kind requires extending Status and Title below; both panic on an
// unknown Kind so a missing mapping is caught by the first test that touches it.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a taxonomy variant.
type Kind uint8

const (
	// KindInternal is an unexpected, server-side fault.
	KindInternal Kind = iota + 1
	// KindBadRequest is a failure attributable to the caller's input.
	KindBadRequest
)

// Kinds returns every variant of the taxonomy.
func Kinds() []Kind {
	return []Kind{KindInternal, KindBadRequest}
}

// Status returns the HTTP status code for k.
func (k Kind) Status() int {
	switch k {
	case KindInternal:
		return http.StatusInternalServerError
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		panic(fmt.Sprintf("apperr: unhandled kind %d", uint8(k)))
	}
}

// Title returns the fixed display string for k.
func (k Kind) Title() string {
	switch k {
	case KindInternal:
		return "Internal Server Error"
	case KindBadRequest:
		return "Bad Request"
	default:
		panic(fmt.Sprintf("apperr: unhandled kind %d", uint8(k)))
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindBadRequest:
		return "bad_request"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is a taxonomy value. Construct it with Wrap or Reject.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// Wrap builds an internal error around cause. A nil cause is allowed.
func Wrap(cause error) *Error {
	return &Error{kind: KindInternal, cause: cause}
}

// Reject builds a bad-request error carrying msg. An empty msg is allowed.
func Reject(msg string) *Error {
	return &Error{kind: KindBadRequest, message: msg}
}

// From converts any error into a taxonomy value. Errors that already are (or
// wrap) an *Error are returned as-is; anything else is wrapped as internal.
// From(nil) returns nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Wrap(err)
}

// Kind reports the variant of e.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the bad-request message; empty for internal errors.
func (e *Error) Message() string { return e.message }

// Error returns the variant's display string.
func (e *Error) Error() string { return e.kind.Title() }

// Unwrap returns the wrapped cause of an internal error.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns a loggable description of the underlying failure.
func (e *Error) Cause() string {
	switch {
	case e.cause != nil:
		return e.cause.Error()
	case e.message != "":
		return e.message
	default:
		return ""
	}
}
