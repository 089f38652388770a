// Package prescan accelerates unanchored searching by extracting the literal
// prefixes a match must begin with and scanning for them before the matcher
// runs.
//
// Extraction is conservative: it only reports prefixes that every possible
// match is guaranteed to start with. When the pattern is headed by a class,
// a set, an anchor, or an emptily-matching term, no prefix set exists and
// the caller falls back to trying every offset.
package prescan

import "github.com/coregx/lexpat/syntax"

const (
	// maxPrefixes bounds alternation fan-out; beyond it the automaton would
	// cost more than it saves on typical lexer-sized inputs.
	maxPrefixes = 64

	// maxPrefixLen caps how far a literal run is followed; a 16-byte prefix
	// already discriminates as well as a longer one.
	maxPrefixLen = 16
)

// Extract returns the set of literal strings with which every match of the
// pattern must begin. ok is false when no finite, non-empty such set exists.
func Extract(n *syntax.Node) (prefixes []string, ok bool) {
	ps, ok := prefixesOf(n)
	if !ok || len(ps) == 0 {
		return nil, false
	}
	// Dedupe while preserving order; duplicates arise from alternations with
	// shared heads.
	seen := make(map[string]bool, len(ps))
	out := ps[:0]
	for _, p := range ps {
		if p == "" {
			return nil, false
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, true
}

func prefixesOf(n *syntax.Node) ([]string, bool) {
	switch n.Op {
	case syntax.OpLiteral:
		return []string{string(n.Ch)}, true
	case syntax.OpSpan:
		// The opening byte is always consumed first.
		return []string{string(n.Open)}, true
	case syntax.OpCapture:
		return prefixesOf(n.Subs[0])
	case syntax.OpSeq:
		if len(n.Subs) == 0 {
			return nil, false
		}
		run := literalRun(n.Subs)
		if run != "" {
			return []string{run}, true
		}
		return prefixesOf(n.Subs[0])
	case syntax.OpAlt:
		left, ok := prefixesOf(n.Subs[0])
		if !ok {
			return nil, false
		}
		right, ok := prefixesOf(n.Subs[1])
		if !ok || len(left)+len(right) > maxPrefixes {
			return nil, false
		}
		return append(left, right...), true
	case syntax.OpRepeat:
		if n.Quant == '+' {
			// At least one repetition is mandatory.
			return prefixesOf(n.Subs[0])
		}
		return nil, false
	}
	// Classes, sets, '.', and anchors head too many byte values to enumerate.
	return nil, false
}

// literalRun collects the leading consecutive literal bytes of a sequence.
func literalRun(subs []*syntax.Node) string {
	buf := make([]byte, 0, maxPrefixLen)
	for _, sub := range subs {
		if sub.Op != syntax.OpLiteral || len(buf) == maxPrefixLen {
			break
		}
		buf = append(buf, sub.Ch)
	}
	return string(buf)
}
