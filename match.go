package lexpat

import (
	"sort"
	"strings"

	"github.com/coregx/lexpat/matcher"
)

// Match is the result of one successful match attempt. The matched and
// captured text is copied out of the source, so a Match keeps no reference
// to the text it was produced from.
type Match struct {
	// Text is the full matched substring.
	Text string

	// Captures holds the captured substrings in document order of their
	// opening parentheses (outer before inner). A capture inside a
	// repetition contributes one entry per successful repetition.
	Captures []string

	// Start and End are the absolute byte offsets of the match in the
	// source text.
	Start, End int
}

// newMatch assembles a Match from a completed attempt. Capture spans are
// recorded in close order during matching; reporting order is by opening
// parenthesis, so the spans are reordered here. Easy to get backwards:
// siblings close in document order but nested captures close inner-first.
func newMatch(text string, start int, st *matcher.State) *Match {
	spans := st.Spans()
	caps := make([]string, 0, len(spans))
	sorted := make([]matcher.CaptureSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Index != sorted[j].Index {
			return sorted[i].Index < sorted[j].Index
		}
		return sorted[i].Start < sorted[j].Start
	})
	for _, sp := range sorted {
		caps = append(caps, strings.Clone(text[sp.Start:sp.End]))
	}
	return &Match{
		Text:     strings.Clone(text[start:st.Pos()]),
		Captures: caps,
		Start:    start,
		End:      st.Pos(),
	}
}

// MatchAt attempts the pattern beginning exactly at start, never scanning
// forward. The attempt may not read past end. With exact set, a Match is
// produced only if the pattern consumes through exactly end; otherwise the
// match may stop anywhere at or before it. Returns nil when the pattern does
// not match; a nil result is not an error.
func (p *Pattern) MatchAt(text string, start, end int, exact bool) *Match {
	if start < 0 || end > len(text) || start > end {
		return nil
	}
	st := matcher.NewState(text, start, end)
	if !p.prog(st) {
		return nil
	}
	if exact && st.Pos() != end {
		return nil
	}
	return newMatch(text, start, st)
}

// Find scans forward from start and returns the first match beginning at or
// after it, or nil if none exists before end.
func (p *Pattern) Find(text string, start, end int) *Match {
	if start < 0 || end > len(text) || start > end {
		return nil
	}
	return p.findFrom(text, p.haystack(text, end), start, end)
}

// FindAll returns every match in order, each search resuming at the end of
// the previous match so results never overlap. A zero-width match advances
// the scan by one byte to guarantee progress.
func (p *Pattern) FindAll(text string, start, end int) []*Match {
	if start < 0 || end > len(text) || start > end {
		return nil
	}
	haystack := p.haystack(text, end)
	var out []*Match
	at := start
	for at <= end {
		m := p.findFrom(text, haystack, at, end)
		if m == nil {
			break
		}
		out = append(out, m)
		if m.End > at {
			at = m.End
		} else {
			at++
		}
	}
	return out
}

// haystack materializes the byte view the prescanner works on; nil when the
// pattern has no prescanner.
func (p *Pattern) haystack(text string, end int) []byte {
	if p.scan == nil {
		return nil
	}
	return []byte(text[:end])
}

func (p *Pattern) findFrom(text string, haystack []byte, start, end int) *Match {
	if p.scan != nil {
		for at := start; at <= end; {
			cand := p.scan.Next(haystack, at)
			if cand < 0 {
				return nil
			}
			if m := p.MatchAt(text, cand, end, false); m != nil {
				return m
			}
			at = cand + 1
		}
		return nil
	}
	for at := start; at <= end; at++ {
		if m := p.MatchAt(text, at, end, false); m != nil {
			return m
		}
	}
	return nil
}
