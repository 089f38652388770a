package syntax

import "github.com/coregx/lexpat/charclass"

// tokenKind identifies one lexical symbol of the pattern language.
type tokenKind uint8

const (
	tokLiteral tokenKind = iota
	tokClass
	tokAny
	tokLineStart
	tokLineEnd
	tokOpen
	tokClose
	tokSetOpen
	tokSetClose
	tokOpt
	tokStar
	tokPlus
	tokDash
	tokAlt
	tokSpan
)

// token is one lexical symbol. ch holds the raw byte for every single-byte
// symbol so that the parser can demote specials to literals where the grammar
// treats them as ordinary characters (for example inside sets).
type token struct {
	kind        tokenKind
	pos         int
	ch          byte
	open, close byte // tokSpan only
}

// tokenize splits the pattern into lexical symbols. One symbol is emitted per
// byte except for '%' escapes, which consume two bytes ('%b' consumes four).
func tokenize(pattern string) ([]token, error) {
	toks := make([]token, 0, len(pattern))
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '%' {
			if i+1 >= len(pattern) {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrTrailingEscape}
			}
			e := pattern[i+1]
			switch {
			case e == 'b':
				if i+3 >= len(pattern) {
					return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrTruncatedSpan}
				}
				toks = append(toks, token{kind: tokSpan, pos: i, open: pattern[i+2], close: pattern[i+3]})
				i += 4
			case e == 'z':
				toks = append(toks, token{kind: tokLiteral, pos: i, ch: 0})
				i += 2
			case charclass.IsClassLetter(e):
				toks = append(toks, token{kind: tokClass, pos: i, ch: e})
				i += 2
			default:
				// Escape strips special meaning; the character stands for itself.
				toks = append(toks, token{kind: tokLiteral, pos: i, ch: e})
				i += 2
			}
			continue
		}

		kind := tokLiteral
		switch c {
		case '.':
			kind = tokAny
		case '^':
			kind = tokLineStart
		case '$':
			kind = tokLineEnd
		case '(':
			kind = tokOpen
		case ')':
			kind = tokClose
		case '[':
			kind = tokSetOpen
		case ']':
			kind = tokSetClose
		case '?':
			kind = tokOpt
		case '*':
			kind = tokStar
		case '+':
			kind = tokPlus
		case '-':
			kind = tokDash
		case '|':
			kind = tokAlt
		}
		toks = append(toks, token{kind: kind, pos: i, ch: c})
		i++
	}
	return toks, nil
}
