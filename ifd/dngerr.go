// Package ifd holds the recursive IFD value model: Value, Entry, IFD and
// Path, plus the error taxonomy shared by every other package in this
// module.
package ifd

import (
	stderrors "errors"

	goerrors "github.com/go-errors/errors"
	"github.com/pkg/errors"
)

// ErrKind classifies the category of error returned across package
// boundaries.
type ErrKind int

const (
	IO ErrKind = iota + 1
	Format
	Unsupported
	Lookup
	YAML
	Parse
	Internal
)

func (k ErrKind) String() string {
	switch k {
	case IO:
		return "IO"
	case Format:
		return "Format"
	case Unsupported:
		return "Unsupported"
	case Lookup:
		return "Lookup"
	case YAML:
		return "YAML"
	case Parse:
		return "Parse"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error pairs a Kind with the underlying cause, so callers can branch on
// category with errors.As instead of parsing message text.
type Error struct {
	Kind ErrKind
	Err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// NewError builds a Kind-tagged error carrying a stack trace.
func NewError(kind ErrKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap attaches kind to an existing error, preserving its message chain.
// Returns nil if err is nil.
func Wrap(kind ErrKind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, message)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(kind ErrKind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// Fatal raises the write planner's self-check failure (a closure that
// wrote a different number of bytes than it declared): a condition that
// must never occur on valid input. It uses a distinct error family from
// the Kind-tagged errors above precisely so it isn't caught by a generic
// errors.As(*Error) handler somewhere up the call chain.
func Fatal(format string, args ...interface{}) error {
	return goerrors.Errorf(format, args...)
}

// Is and As re-export the standard library's chain-aware comparisons so
// callers of this package don't need a second import for them.
var (
	Is = stderrors.Is
	As = stderrors.As
)
