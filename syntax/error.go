package syntax

import (
	"errors"
	"fmt"
)

// Grammar errors reported by Parse. They are wrapped in a *CompileError and
// can be tested with errors.Is.
var (
	// ErrUnterminatedCapture indicates a '(' with no matching ')'.
	ErrUnterminatedCapture = errors.New("unterminated capture")

	// ErrUnbalancedCapture indicates a ')' with no matching '('.
	ErrUnbalancedCapture = errors.New("unbalanced capture close")

	// ErrUnterminatedSet indicates a '[' with no matching ']'.
	ErrUnterminatedSet = errors.New("unterminated character set")

	// ErrTrailingEscape indicates a '%' at the very end of the pattern.
	ErrTrailingEscape = errors.New("escape at end of pattern")

	// ErrTruncatedSpan indicates a '%b' with fewer than two following characters.
	ErrTruncatedSpan = errors.New("bounded span needs two characters")

	// ErrInvalidRange indicates a set range whose start exceeds its end.
	ErrInvalidRange = errors.New("invalid range in character set")

	// ErrInvalidSetItem indicates a construct that cannot appear inside a set.
	ErrInvalidSetItem = errors.New("invalid item in character set")

	// ErrDanglingQuantifier indicates a quantifier with nothing to repeat,
	// including a second quantifier stacked on a quantified term.
	ErrDanglingQuantifier = errors.New("quantifier has nothing to repeat")
)

// CompileError wraps a grammar error with the pattern text and the offset at
// which parsing failed.
type CompileError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("lexpat: pattern %q: offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying grammar error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
