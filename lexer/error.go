package lexer

import "fmt"

// Error reports that no rule matched at an input position. It carries the
// full source so callers can render a diagnostic with surrounding context.
type Error struct {
	Source string
	Offset int
	Line   int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("lexer: no rule matches at offset %d (line %d)", e.Offset, e.Line)
}
