// Package lexer turns an ordered table of pattern/action rules into a
// tokenizing function over the lexpat engine.
//
// Rules are tried in declaration order at the current input position and the
// first match wins; there is no longest-match comparison, so put keywords
// before identifiers. A rule without an action is a skip rule: its matched
// text is discarded and scanning continues, which is how whitespace and
// comments are usually handled.
//
//	lx, err := lexer.New([]lexer.Rule[string]{
//	    lexer.Skip[string]("ws", "%s+"),
//	    lexer.Skip[string]("nl", "%n+"),
//	    lexer.Emit("ident", "%a%w*", func(m *lexpat.Match) string { return m.Text }),
//	}, lexpat.Options{})
//
// Every rule's pattern is compiled once, when the lexer is built, so pattern
// errors surface before any text is scanned.
package lexer

import (
	"fmt"
	"io"

	"github.com/coregx/lexpat"
)

// Rule is one pattern/action entry. A nil Action makes it a skip rule. The
// Name only appears in diagnostics.
type Rule[T any] struct {
	Name    string
	Pattern string
	Action  func(*lexpat.Match) T
}

// Skip returns a rule whose matches are discarded without producing a token.
func Skip[T any](name, pattern string) Rule[T] {
	return Rule[T]{Name: name, Pattern: pattern}
}

// Emit returns a rule whose action computes the token produced for a match.
func Emit[T any](name, pattern string, action func(*lexpat.Match) T) Rule[T] {
	return Rule[T]{Name: name, Pattern: pattern, Action: action}
}

type compiledRule[T any] struct {
	name    string
	pattern *lexpat.Pattern
	action  func(*lexpat.Match) T
}

// Lexer is a compiled rule table. It is immutable and can tokenize any
// number of sources, concurrently, through independent TokenStreams.
type Lexer[T any] struct {
	rules []compiledRule[T]
}

// New compiles every rule eagerly under the shared options. The first
// pattern that fails to compile is reported with its rule name.
func New[T any](rules []Rule[T], opts lexpat.Options) (*Lexer[T], error) {
	compiled := make([]compiledRule[T], 0, len(rules))
	for _, r := range rules {
		pat, err := lexpat.CompileWithOptions(r.Pattern, opts)
		if err != nil {
			return nil, fmt.Errorf("lexer: rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule[T]{name: r.Name, pattern: pat, action: r.Action})
	}
	return &Lexer[T]{rules: compiled}, nil
}

// Tokenize returns a fresh token stream over source. Each call produces an
// independent stream; one stream must not be driven from multiple
// goroutines.
func (l *Lexer[T]) Tokenize(source string) *TokenStream[T] {
	return &TokenStream[T]{lexer: l, source: source, line: 1}
}

// TokenStream yields the tokens of one source string. It is stateful: each
// Next call advances the cursor past the matched text.
type TokenStream[T any] struct {
	lexer  *Lexer[T]
	source string
	offset int
	line   int
}

// Offset returns the current cursor position in the source.
func (ts *TokenStream[T]) Offset() int { return ts.offset }

// Line returns the current 1-based line number, counted from the line
// terminators consumed so far.
func (ts *TokenStream[T]) Line() int { return ts.line }

// Next returns the next token. At end of input it returns io.EOF. When no
// rule matches at the current position it returns a *Error carrying the
// source, offset and line of the failure; the stream is then stuck at that
// position.
func (ts *TokenStream[T]) Next() (T, error) {
	var zero T
	for {
		if ts.offset >= len(ts.source) {
			return zero, io.EOF
		}

		var m *lexpat.Match
		var rule *compiledRule[T]
		for i := range ts.lexer.rules {
			r := &ts.lexer.rules[i]
			if found := r.pattern.MatchAt(ts.source, ts.offset, len(ts.source), false); found != nil {
				m, rule = found, r
				break
			}
		}
		if m == nil {
			return zero, &Error{Source: ts.source, Offset: ts.offset, Line: ts.line}
		}

		ts.line += countLineTerms(m.Text)
		if m.End > ts.offset {
			ts.offset = m.End
		} else {
			// Zero-width match: move one byte so the stream always makes
			// progress.
			ts.offset++
		}

		if rule.action == nil {
			continue
		}
		return rule.action(m), nil
	}
}

// countLineTerms counts line terminators, treating "\r\n" as one.
func countLineTerms(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
		case '\r':
			if i+1 >= len(s) || s[i+1] != '\n' {
				n++
			}
		}
	}
	return n
}
