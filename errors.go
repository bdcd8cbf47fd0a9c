package c2openapi

import (
	"github.com/talav/c2openapi/internal/aggregate"
	"github.com/talav/c2openapi/internal/apierr"
	"github.com/talav/c2openapi/internal/cst"
)

// Kind classifies an [Error] into one of a small, stable set of failure
// categories. See [apierr.Kind] for the full description of each value.
type Kind = apierr.Kind

const (
	KindInvalidInput = apierr.KindInvalidInput
	KindOutOfMemory  = apierr.KindOutOfMemory
	KindNotFound     = apierr.KindNotFound
	KindIOError      = apierr.KindIOError
	KindOutOfRange   = apierr.KindOutOfRange
	KindUnsupported  = apierr.KindUnsupported
)

// Error is the error type returned across component boundaries: it carries
// a Kind, the component that raised it, and a short human message. Every
// internal package constructs these directly; this alias lets callers type
// switch/assert against *c2openapi.Error without reaching into internal/apierr.
type Error = apierr.Error

// Sentinel errors for the six stable error kinds (§7 of the design notes).
// Component-specific packages wrap these with errors.Is-compatible [Error]
// values carrying their own component tag and message; callers match with
// errors.Is(err, c2openapi.ErrInvalidInput).
var (
	ErrInvalidInput = apierr.ErrInvalidInput
	ErrOutOfMemory  = apierr.ErrOutOfMemory
	ErrNotFound     = apierr.ErrNotFound
	ErrIOError      = apierr.ErrIOError
	ErrOutOfRange   = apierr.ErrOutOfRange
	ErrUnsupported  = apierr.ErrUnsupported
)

// ErrTruncated indicates the CST builder reached end-of-input with
// unbalanced braces or parentheses. The builder still returns the
// successfully parsed prefix alongside this error.
var ErrTruncated = cst.ErrTruncated

// ErrDuplicateOperationID indicates the aggregator found the same
// operationId assigned to two operations across the files it folded
// together.
var ErrDuplicateOperationID = aggregate.ErrDuplicateOperationID
