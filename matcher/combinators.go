package matcher

import (
	"github.com/coregx/lexpat/charclass"
	"github.com/coregx/lexpat/syntax"
)

// Matcher attempts to consume input at the cursor. On success it may advance
// the cursor and record captures; on failure it restores both.
type Matcher func(*State) bool

// foldEq compares two bytes, ASCII case-insensitively when fold is set.
func foldEq(a, b byte, fold bool) bool {
	if a == b {
		return true
	}
	return fold && charclass.IsLetter(a) && a^0x20 == b
}

// Lit matches the single byte c.
func Lit(c byte, opts Options) Matcher {
	fold := opts.CaseFold
	return func(s *State) bool {
		if s.pos >= s.limit || !foldEq(s.text[s.pos], c, fold) {
			return false
		}
		s.pos++
		return true
	}
}

// Any matches any single byte. Line terminators are excluded unless
// multi-line mode treats them as ordinary characters.
func Any(opts Options) Matcher {
	multi := opts.MultiLine
	return func(s *State) bool {
		if s.pos >= s.limit {
			return false
		}
		if !multi && charclass.IsLineTerm(s.text[s.pos]) {
			return false
		}
		s.pos++
		return true
	}
}

// Class matches one byte of the named character class (an uppercase letter
// names the complement).
func Class(letter byte) Matcher {
	return func(s *State) bool {
		if s.pos >= s.limit {
			return false
		}
		in, _ := charclass.Match(letter, s.text[s.pos])
		if !in {
			return false
		}
		s.pos++
		return true
	}
}

// Set matches one byte against a bracketed set. Membership is precomputed
// into a byte table at construction, with case folding applied to the table
// rather than per attempt.
func Set(items []syntax.SetItem, negate bool, opts Options) Matcher {
	var table charclass.Set
	for c := 0; c <= 0xff; c++ {
		b := byte(c)
		in := setContains(items, b)
		if opts.CaseFold && !in && charclass.IsLetter(b) {
			in = setContains(items, b^0x20)
		}
		if in {
			table.Add(b)
		}
	}
	return func(s *State) bool {
		if s.pos >= s.limit || table.Contains(s.text[s.pos]) == negate {
			return false
		}
		s.pos++
		return true
	}
}

func setContains(items []syntax.SetItem, b byte) bool {
	for _, it := range items {
		switch it.Kind {
		case syntax.SetChar:
			if b == it.Lo {
				return true
			}
		case syntax.SetRange:
			if it.Lo <= b && b <= it.Hi {
				return true
			}
		case syntax.SetClass:
			if in, _ := charclass.Match(it.Lo, b); in {
				return true
			}
		}
	}
	return false
}

// LineStart matches the empty string at the true start of input or, in
// multi-line mode, immediately after a line terminator.
func LineStart(opts Options) Matcher {
	multi := opts.MultiLine
	return func(s *State) bool {
		if s.pos == 0 {
			return true
		}
		return multi && charclass.IsLineTerm(s.text[s.pos-1])
	}
}

// LineEnd matches at the true end of input. In multi-line mode it also
// matches before a line terminator, which it then consumes.
func LineEnd(opts Options) Matcher {
	multi := opts.MultiLine
	return func(s *State) bool {
		if s.pos >= s.limit {
			return true
		}
		if multi && charclass.IsLineTerm(s.text[s.pos]) {
			s.pos++
			return true
		}
		return false
	}
}

// Span matches the byte open, then consumes through the first occurrence of
// the byte close. Nested open bytes are not counted; this is a bounded scan,
// not balanced-delimiter matching. Outside multi-line mode a line terminator
// before close fails the span.
func Span(open, close byte, opts Options) Matcher {
	fold := opts.CaseFold
	multi := opts.MultiLine
	return func(s *State) bool {
		m := s.save()
		if s.pos >= s.limit || !foldEq(s.text[s.pos], open, fold) {
			return false
		}
		s.pos++
		for s.pos < s.limit {
			c := s.text[s.pos]
			s.pos++
			if foldEq(c, close, fold) {
				return true
			}
			if !multi && charclass.IsLineTerm(c) {
				break
			}
		}
		s.restore(m)
		return false
	}
}

// Seq matches every sub-matcher in order at the advancing cursor, restoring
// the pre-sequence state if any fails.
func Seq(ms ...Matcher) Matcher {
	if len(ms) == 1 {
		return ms[0]
	}
	return func(s *State) bool {
		m := s.save()
		for _, p := range ms {
			if !p(s) {
				s.restore(m)
				return false
			}
		}
		return true
	}
}

// Alt tries a; on failure it tries b from the same position. Ordered: once a
// succeeds, b is never explored.
func Alt(a, b Matcher) Matcher {
	return func(s *State) bool {
		m := s.save()
		if a(s) {
			return true
		}
		s.restore(m)
		return b(s)
	}
}

// Opt tries m once and succeeds either way.
func Opt(m Matcher) Matcher {
	return func(s *State) bool {
		m(s)
		return true
	}
}

// Star applies m until it fails, keeping all advancement. It never gives
// repetitions back when a later combinator fails, and it stops after a
// zero-width success so that emptily-matching bodies terminate.
func Star(m Matcher) Matcher {
	return func(s *State) bool {
		for {
			before := s.pos
			if !m(s) || s.pos == before {
				return true
			}
		}
	}
}

// Plus is m followed by Star(m): it fails only if the first application
// fails.
func Plus(m Matcher) Matcher {
	star := Star(m)
	return func(s *State) bool {
		if !m(s) {
			return false
		}
		return star(s)
	}
}

// Capture records the span consumed by m under the given capture index. On
// failure nothing is recorded.
func Capture(index int, m Matcher) Matcher {
	return func(s *State) bool {
		start := s.pos
		if !m(s) {
			return false
		}
		s.caps = append(s.caps, CaptureSpan{Start: start, End: s.pos, Index: index})
		return true
	}
}
