// Package apperr carries typed errors from the session and lookup services
// to the HTTP layer, which turns the Kind into a status code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error for the HTTP layer.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound covers missing or expired sessions.
	KindNotFound
	// KindValidation covers input rejected by the domain, such as an unknown
	// country code.
	KindValidation
	KindUnauthorized
	KindBadRequest
	// KindConflict reports a write based on a session revision that was
	// replaced in the meantime.
	KindConflict
	KindInternal
)

// Error is a domain error. Message is safe to show to clients; Err keeps the
// cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
	Details any
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the Kind to a response status. Unknown kinds are treated
// as client errors.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps err as the cause of a new Error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp records the operation that failed; it prefixes Error().
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind returns the Kind of the first *Error in err's chain, or
// KindUnknown.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
