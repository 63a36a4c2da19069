// Package error defines the failure hierarchy raised while recognizing text
// against a combinator graph.
package error

import (
	"fmt"
	"strings"
)

// excerptLen is the number of characters of remaining input quoted in a
// ParseError message.
const excerptLen = 10

// ParseError reports that a combinator could not match at the current
// position. It carries enough context for a caller to render a message
// identical in shape to the one produced by Error().
type ParseError struct {
	Line     int
	Col      int
	Text     string
	Expected []string
}

// NewParseError builds a ParseError from a cursor position, the remaining
// input and the expect set of the combinator that failed.
func NewParseError(line, col int, remaining string, expected []string) *ParseError {
	excerpt := remaining
	if r := []rune(excerpt); len(r) > excerptLen {
		excerpt = string(r[:excerptLen])
	}
	return &ParseError{
		Line:     line,
		Col:      col,
		Text:     excerpt,
		Expected: expected,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v:%v: Unexpected text: %v. Expected one of: %v",
		e.Line, e.Col, e.Text, strings.Join(e.Expected, ", "))
}

// EndOfInputError is a ParseError raised when the cursor was already at EOF
// at the point of failure.
type EndOfInputError struct {
	*ParseError
}

// NewEndOfInputError wraps the given ParseError as an EndOfInputError.
func NewEndOfInputError(e *ParseError) *EndOfInputError {
	return &EndOfInputError{ParseError: e}
}

// Unwrap exposes the underlying ParseError to errors.As/errors.Is.
func (e *EndOfInputError) Unwrap() error {
	return e.ParseError
}

// ShiftShiftConflict is a ParseError raised when re-entering a recurse-unsafe
// combinator at the same position would otherwise loop forever. It is the
// engine's left-recursion detector; a surrounding Choice treats it like any
// other ParseError and moves on to the next alternative.
type ShiftShiftConflict struct {
	*ParseError
}

// NewShiftShiftConflict wraps the given ParseError as a ShiftShiftConflict.
func NewShiftShiftConflict(e *ParseError) *ShiftShiftConflict {
	return &ShiftShiftConflict{ParseError: e}
}

// Unwrap exposes the underlying ParseError to errors.As/errors.Is.
func (e *ShiftShiftConflict) Unwrap() error {
	return e.ParseError
}

// IndirectionNotFilledError reports a grammar-construction bug: an
// Indirection node was reached during a parse before Fill was ever called on
// it. Unlike ParseError and its subtypes, this is not a parse-time failure —
// callers should treat it as a panic-worthy programming error, never as
// something a Choice can recover from.
type IndirectionNotFilledError struct {
	Name string
}

func (e *IndirectionNotFilledError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("indirection %q was never filled", e.Name)
	}
	return "indirection was never filled"
}
