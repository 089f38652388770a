package lexpat

import "strings"

// Replacer computes the replacement text for one match.
type Replacer func(*Match) string

// Split returns the two substrings surrounding the first match found in
// [start, end), or the whole text as a single fragment when nothing matches.
// The fragments extend to the boundaries of text, not of the search window.
func (p *Pattern) Split(text string, start, end int) []string {
	m := p.Find(text, start, end)
	if m == nil {
		return []string{text}
	}
	return []string{text[:m.Start], text[m.End:]}
}

// SplitAll returns the substrings between successive matches, including the
// text before the first match and after the last. With coalesceEmpty set,
// zero-length fragments (from adjacent matches or matches touching the text
// boundaries) are suppressed.
func (p *Pattern) SplitAll(text string, start, end int, coalesceEmpty bool) []string {
	ms := p.FindAll(text, start, end)
	if len(ms) == 0 {
		return []string{text}
	}
	out := make([]string, 0, len(ms)+1)
	last := 0
	for _, m := range ms {
		if frag := text[last:m.Start]; frag != "" || !coalesceEmpty {
			out = append(out, frag)
		}
		last = m.End
	}
	if frag := text[last:]; frag != "" || !coalesceEmpty {
		out = append(out, frag)
	}
	return out
}

// Replace reassembles text with the first match in [start, end) swapped for
// the replacer's output. No match returns text unchanged; absence of matches
// is not an error.
func (p *Pattern) Replace(text string, start, end int, repl Replacer) string {
	m := p.Find(text, start, end)
	if m == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:m.Start])
	b.WriteString(repl(m))
	b.WriteString(text[m.End:])
	return b.String()
}

// ReplaceAll reassembles text with every match swapped for the replacer's
// output.
func (p *Pattern) ReplaceAll(text string, start, end int, repl Replacer) string {
	ms := p.FindAll(text, start, end)
	if len(ms) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range ms {
		b.WriteString(text[last:m.Start])
		b.WriteString(repl(m))
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}
