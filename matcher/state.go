// Package matcher implements the combinator engine that executes compiled
// patterns.
//
// A Matcher is a predicate over *State: it consumes input from the cursor on
// success and leaves the cursor exactly where it started on failure. Two
// behaviors differ from mainstream regex engines and are deliberate:
//
//   - Alternation is ordered. The first branch to match wins; the engine
//     never explores the second branch once the first has succeeded.
//   - Repetition is greedy and irrevocable. Star and Plus consume as many
//     repetitions as possible and never give any back when a later
//     combinator fails. The pattern "a*a" therefore cannot match "aaa".
//
// Compilation options are threaded explicitly through the combinator
// constructors; nothing in this package reads mutable shared state, so
// concurrent compilations and matches never interfere.
package matcher

// Options are the two switches that affect matcher construction.
//
// MultiLine makes '.' accept line terminators, lets '^' match after a line
// terminator, and lets '$' match (and consume) a line terminator instead of
// only true end of input. CaseFold makes literal and set matching
// case-insensitive for ASCII letters.
type Options struct {
	CaseFold  bool
	MultiLine bool
}

// CaptureSpan is one recorded capture: the half-open byte range [Start, End)
// of the input, tagged with the capture's opening-parenthesis index.
type CaptureSpan struct {
	Start, End int
	Index      int
}

// State is the transient state of one match attempt: the input text, an
// integer cursor with O(1) save/restore, the exclusive attempt limit, and
// the stack of capture spans recorded so far. A State is created fresh per
// attempt and must not be shared between goroutines.
type State struct {
	text  string
	pos   int
	limit int
	caps  []CaptureSpan
}

// NewState returns a match attempt starting at start and bounded by the
// exclusive offset limit.
func NewState(text string, start, limit int) *State {
	return &State{text: text, pos: start, limit: limit}
}

// Pos returns the current cursor offset.
func (s *State) Pos() int { return s.pos }

// Spans returns the capture spans recorded by the attempt, in the order they
// closed. The slice is owned by the State.
func (s *State) Spans() []CaptureSpan { return s.caps }

// mark is a saved cursor/capture position for backtracking.
type mark struct {
	pos   int
	ncaps int
}

func (s *State) save() mark {
	return mark{pos: s.pos, ncaps: len(s.caps)}
}

// restore rewinds the cursor and discards captures recorded after m. Every
// combinator restores on failure; partial advancement must never leak.
func (s *State) restore(m mark) {
	s.pos = m.pos
	s.caps = s.caps[:m.ncaps]
}
