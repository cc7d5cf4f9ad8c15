// Package errors defines the error kinds shared by services and handlers.
//
// Every failure a service returns either is, or wraps, exactly one of the
// sentinels below so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized is returned when the acting user may not mutate the target.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned when a write collides with an existing row.
	ErrConflict = errors.New("conflict")
	// ErrNotImplemented marks an operation that exists in the contract but has no behavior.
	ErrNotImplemented = errors.New("not implemented")
)

// Error carries a human message and the kind it belongs to.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

func (e *Error) Is(target error) bool {
	return e != nil && e.Kind != nil && target == e.Kind
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func NotAuthorized(format string, args ...any) error {
	return &Error{Kind: ErrNotAuthorized, Msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind, keeping err reachable through errors.Is/As.
func Wrap(kind error, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the sentinel err belongs to, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrNotAuthorized, ErrValidation, ErrConflict, ErrNotImplemented} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
