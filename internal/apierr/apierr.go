// Package apierr holds the error Kind taxonomy and Error type shared by
// every internal component, kept separate from the root package so that
// internal packages can return these errors without importing back up to
// the package that re-exports them as the public API.
package apierr

import "fmt"

// Kind classifies an Error into one of a small, stable set of failure
// categories, mirroring the POSIX errno space for portability across the
// components that surface errors: tokenizer, CST builder, doc-comment
// parser, loader, writer, emitter, and patch engine.
type Kind int

const (
	// KindInvalidInput marks structurally malformed input: JSON, C source,
	// a doc comment, or caller-supplied arguments.
	KindInvalidInput Kind = iota

	// KindOutOfMemory marks an allocation failure during parsing or
	// emission. Reserved for symmetry with the originating C component;
	// this implementation reports it only where a size computation would
	// otherwise overflow or an explicit capacity guard trips.
	KindOutOfMemory

	// KindNotFound marks a missing file or a $ref target that could not
	// be resolved in any known document.
	KindNotFound

	// KindIOError marks a transport failure reading or writing files.
	KindIOError

	// KindOutOfRange marks numeric literal overflow during tokenization.
	KindOutOfRange

	// KindUnsupported marks a feature not available in this build, such
	// as an export target version the writer does not implement.
	KindUnsupported
)

// String returns the Kind's name, matching debug.WarningCode.String()'s
// plain-text rendering style.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindNotFound:
		return "NotFound"
	case KindIOError:
		return "IOError"
	case KindOutOfRange:
		return "OutOfRange"
	case KindUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across component boundaries: a Kind,
// the component that raised it, and a short human message, per "every
// reported error carries a component tag and a short human message". It
// wraps an optional underlying cause for errors.Is/As.
type Error struct {
	Kind      Kind
	Component string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Component, e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s: %s", e.Component, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is one of the six sentinel Kind errors, matching
// on Kind alone so callers can write errors.Is(err, apierr.ErrInvalidInput)
// regardless of component or message.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}

	return sentinel.Component == "" && sentinel.Message == "" && e.Kind == sentinel.Kind
}

// New constructs an Error with the given kind, component tag, and message,
// optionally wrapping cause.
func New(kind Kind, component, message string, cause error) *Error {
	return &Error{Kind: kind, Component: component, Message: message, Cause: cause}
}

// Sentinel errors for the six stable error kinds. Component-specific code
// wraps these with errors.Is-compatible Error values carrying its own
// component tag and message.
var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrOutOfMemory  = &Error{Kind: KindOutOfMemory}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrIOError      = &Error{Kind: KindIOError}
	ErrOutOfRange   = &Error{Kind: KindOutOfRange}
	ErrUnsupported  = &Error{Kind: KindUnsupported}
)
