package bahr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bahr'.
func tracer() tracing.Trace {
	return tracing.Select("bahr")
}

// Unit is one of the three metrical-unit symbols a meter regex is built from.
type Unit byte

// The metrical-unit alphabet.
const (
	Long      Unit = '=' // a heavy/long syllable
	Short     Unit = '-' // a light/short syllable
	Uncounted Unit = '_' // an optional short preceding a word boundary
)

func (u Unit) String() string {
	return string(rune(u))
}

// IsMetrical reports whether r is one of the three metrical-unit symbols.
func IsMetrical(r rune) bool {
	switch Unit(r) {
	case Long, Short, Uncounted:
		return true
	}
	return false
}

// --- error kinds, per the core specification's error handling design -------

// SchemaError is raised when an input document violates its declared shape.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return "schema error: " + e.Msg }

// NewSchemaError creates a SchemaError with a formatted message.
func NewSchemaError(format string, args ...interface{}) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// ReferenceError is raised when a rule or constraint names a token, class, or
// production that does not exist.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string { return "reference error: " + e.Msg }

// NewReferenceError creates a ReferenceError with a formatted message.
func NewReferenceError(format string, args ...interface{}) *ReferenceError {
	return &ReferenceError{Msg: fmt.Sprintf(format, args...)}
}

// RegexError is raised for unbalanced parentheses, an empty regex, or an
// operator with no preceding atom.
type RegexError struct {
	Msg string
}

func (e *RegexError) Error() string { return "regex error: " + e.Msg }

// NewRegexError creates a RegexError with a formatted message.
func NewRegexError(format string, args ...interface{}) *RegexError {
	return &RegexError{Msg: fmt.Sprintf(format, args...)}
}

// TokenisationError is raised when an input character cannot be consumed by
// the token set at a known position.
type TokenisationError struct {
	Pos int
	Msg string
}

func (e *TokenisationError) Error() string {
	return fmt.Sprintf("tokenisation error at position %d: %s", e.Pos, e.Msg)
}

// NewTokenisationError creates a TokenisationError at a given input position.
func NewTokenisationError(pos int, format string, args ...interface{}) *TokenisationError {
	return &TokenisationError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ParseError is raised when no rule applies at a position after tokenisation.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: %s", e.Pos, e.Msg)
}

// NewParseError creates a ParseError at a given token position.
func NewParseError(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ScanError signals an internal invariant violation; it should not occur in
// released builds.
type ScanError struct {
	Msg string
}

func (e *ScanError) Error() string { return "scan error (invariant violated): " + e.Msg }

// NewScanError creates a ScanError with a formatted message.
func NewScanError(format string, args ...interface{}) *ScanError {
	return &ScanError{Msg: fmt.Sprintf(format, args...)}
}

// CompoundError aggregates multiple validation errors so construction-time
// checks can report every problem found in a document at once, rather than
// failing on the first.
type CompoundError struct {
	Errs []error
}

// Add appends non-nil errors to the compound error.
func (ce *CompoundError) Add(errs ...error) {
	for _, e := range errs {
		if e == nil {
			continue
		}
		if nested, ok := e.(*CompoundError); ok {
			ce.Errs = append(ce.Errs, nested.Errs...)
			continue
		}
		ce.Errs = append(ce.Errs, e)
	}
}

// HasErrors reports whether any error has been accumulated.
func (ce *CompoundError) HasErrors() bool {
	return ce != nil && len(ce.Errs) > 0
}

// ErrOrNil returns ce if it has accumulated errors, otherwise nil. This lets
// callers build a CompoundError unconditionally and return `ce.ErrOrNil()`.
func (ce *CompoundError) ErrOrNil() error {
	if ce.HasErrors() {
		return ce
	}
	return nil
}

func (ce *CompoundError) Error() string {
	var b strings.Builder
	for i, e := range ce.Errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
