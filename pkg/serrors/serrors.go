// Package serrors implements semantic errors: a small set of error kinds
// that survive wrapping so the request layer can decide how to present a
// failure (status code, user message) without knowing where it came from.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by every semantic error kind
// created with NewKind. It allows distinguishing semantic kinds from
// ordinary errors when walking a chain with errors.As.
type Kind interface {
	error
	isKind()
}

// kind is the unexported implementation of Kind used as a sentinel value for
// a semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// Error wrapper. The name doubles as the machine-readable error code returned
// by the JSON API, so it should be upper snake case.
func NewKind(name string) Kind { return kind{s: name} }

// Default Kinds cover every failure the visualizer can report. The request
// layer maps each of them to a status code and a user-facing message.
var (
	// ErrInvalidInput indicates coefficients that do not parse, are not
	// finite, or describe a degenerate equation (a = 0).
	ErrInvalidInput = NewKind("INVALID_INPUT")
	// ErrRenderFailure indicates the graph could not be plotted.
	ErrRenderFailure = NewKind("RENDER_FAILURE")
	// ErrExportFailure indicates an artifact (PNG, slides, PDF) could not be produced.
	ErrExportFailure = NewKind("EXPORT_FAILURE")
	// ErrNotFound indicates the requested resource (export format, route) does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrTimeout indicates the operation did not finish in time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional human-readable message. It fully supports
// errors.Is/errors.As and unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) matches if target matches either the kind
//     sentinel or the wrapped error.
//   - errors.As(err, target) succeeds for either the kind sentinel or the
//     wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither is set: the kind's Error() string.
//
// The message is safe to show to a user; the wrapped cause is not.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped error (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and a formatted
// human-readable message. Use Wrap if you also want to keep a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the
// provided cause (err) and attaches a formatted message. The cause stays
// reachable through errors.Is/As but is never used as the user message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel or the
// wrapped error in the chain, so errors.Is works for both.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain. A *Kind target receives the sentinel.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the human-readable message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf reports the kind of the first semantic error found in err's chain.
// Plain errors, including nil, report ErrInternal so callers can always map
// the result to a status code.
//
// Parameters:
//   - err: any error, possibly wrapped with fmt.Errorf("%w") or Wrap.
func KindOf(err error) Kind {
	var k Kind
	if err != nil && errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the outermost semantic error in err's
// chain, or fallback when none carries one. Only the message is returned,
// never the cause, so the result is safe to show to a user.
//
// Parameters:
//   - err: the error to inspect.
//   - fallback: the text returned when no semantic message is found.
func MessageOf(err error, fallback string) string {
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return fallback
}
