package matcher

import (
	"testing"

	"github.com/coregx/lexpat/syntax"
)

func setFromRange(lo, hi byte, negate bool, opts Options) Matcher {
	return Set([]syntax.SetItem{{Kind: syntax.SetRange, Lo: lo, Hi: hi}}, negate, opts)
}

// run attempts m against text from offset 0 and reports success and the
// final cursor position.
func run(m Matcher, text string) (bool, *State) {
	st := NewState(text, 0, len(text))
	return m(st), st
}

func TestSeqRestoresCursorOnFailure(t *testing.T) {
	var opts Options
	m := Seq(Lit('a', opts), Lit('b', opts))

	ok, st := run(m, "ac")
	if ok {
		t.Fatal("Seq(a, b) matched \"ac\"")
	}
	if st.Pos() != 0 {
		t.Errorf("cursor = %d after failure, want 0 (no partial advancement)", st.Pos())
	}

	ok, st = run(m, "ab")
	if !ok || st.Pos() != 2 {
		t.Errorf("Seq(a, b) on \"ab\": ok=%v pos=%d, want true 2", ok, st.Pos())
	}
}

func TestAltOrdered(t *testing.T) {
	var opts Options
	// a | ab: the first branch wins even though the second is longer.
	m := Alt(Lit('a', opts), Seq(Lit('a', opts), Lit('b', opts)))
	ok, st := run(m, "ab")
	if !ok {
		t.Fatal("Alt did not match")
	}
	if st.Pos() != 1 {
		t.Errorf("cursor = %d, want 1 (first branch wins)", st.Pos())
	}
}

func TestAltRestoresBeforeSecondBranch(t *testing.T) {
	var opts Options
	m := Alt(Seq(Lit('a', opts), Lit('x', opts)), Seq(Lit('a', opts), Lit('b', opts)))
	ok, st := run(m, "ab")
	if !ok || st.Pos() != 2 {
		t.Errorf("ok=%v pos=%d, want true 2 (second branch from position 0)", ok, st.Pos())
	}
}

func TestStarGreedyIrrevocable(t *testing.T) {
	var opts Options
	// a*a: the star consumes every a and never gives one back.
	m := Seq(Star(Lit('a', opts)), Lit('a', opts))
	ok, st := run(m, "aaa")
	if ok {
		t.Fatal("a*a matched \"aaa\"; star must not backtrack")
	}
	if st.Pos() != 0 {
		t.Errorf("cursor = %d after failure, want 0", st.Pos())
	}
}

func TestStarStopsOnZeroWidth(t *testing.T) {
	var opts Options
	// (a?)* must terminate even though its body can match the empty string.
	m := Star(Opt(Lit('a', opts)))
	ok, st := run(m, "aab")
	if !ok || st.Pos() != 2 {
		t.Errorf("ok=%v pos=%d, want true 2", ok, st.Pos())
	}
}

func TestPlusRequiresOne(t *testing.T) {
	var opts Options
	m := Plus(Lit('a', opts))
	if ok, _ := run(m, "b"); ok {
		t.Error("a+ matched \"b\"")
	}
	ok, st := run(m, "aaab")
	if !ok || st.Pos() != 3 {
		t.Errorf("ok=%v pos=%d, want true 3", ok, st.Pos())
	}
}

func TestCaptureRecordsSpan(t *testing.T) {
	var opts Options
	m := Seq(Capture(0, Lit('a', opts)), Capture(1, Lit('b', opts)))
	ok, st := run(m, "ab")
	if !ok {
		t.Fatal("did not match")
	}
	spans := st.Spans()
	if len(spans) != 2 {
		t.Fatalf("spans = %v, want 2 entries", spans)
	}
	if spans[0] != (CaptureSpan{Start: 0, End: 1, Index: 0}) {
		t.Errorf("spans[0] = %+v", spans[0])
	}
	if spans[1] != (CaptureSpan{Start: 1, End: 2, Index: 1}) {
		t.Errorf("spans[1] = %+v", spans[1])
	}
}

func TestCaptureDiscardedOnFailure(t *testing.T) {
	var opts Options
	// The first branch records a capture and then fails; that capture must
	// not survive into the second branch's result.
	m := Alt(
		Seq(Capture(0, Lit('a', opts)), Lit('x', opts)),
		Capture(0, Lit('a', opts)),
	)
	ok, st := run(m, "ab")
	if !ok {
		t.Fatal("did not match")
	}
	if n := len(st.Spans()); n != 1 {
		t.Errorf("spans = %v, want exactly 1 (failed branch leaked captures)", st.Spans())
	}
}

func TestLitCaseFold(t *testing.T) {
	fold := Options{CaseFold: true}
	tests := []struct {
		c    byte
		text string
		want bool
	}{
		{'a', "A", true},
		{'A', "a", true},
		{'a', "a", true},
		{'a', "b", false},
		{'1', "1", true},
		{'[', "{", false}, // 0x20 apart but not letters
	}
	for _, tt := range tests {
		ok, _ := run(Lit(tt.c, fold), tt.text)
		if ok != tt.want {
			t.Errorf("Lit(%q, fold) on %q = %v, want %v", tt.c, tt.text, ok, tt.want)
		}
	}
}

func TestAnyExcludesLineTerminators(t *testing.T) {
	if ok, _ := run(Any(Options{}), "\n"); ok {
		t.Error(". matched a line terminator outside multi-line mode")
	}
	if ok, _ := run(Any(Options{MultiLine: true}), "\n"); !ok {
		t.Error(". did not match a line terminator in multi-line mode")
	}
	if ok, _ := run(Any(Options{}), ""); ok {
		t.Error(". matched at end of input")
	}
}

func TestLineStart(t *testing.T) {
	var opts Options
	st := NewState("ab\ncd", 3, 5)
	if LineStart(opts)(st) {
		t.Error("^ matched mid-input outside multi-line mode")
	}
	st = NewState("ab\ncd", 3, 5)
	if !LineStart(Options{MultiLine: true})(st) {
		t.Error("^ did not match after a line terminator in multi-line mode")
	}
	st = NewState("ab\ncd", 0, 5)
	if !LineStart(opts)(st) {
		t.Error("^ did not match at input start")
	}
}

func TestLineEndConsumesTerminator(t *testing.T) {
	multi := Options{MultiLine: true}
	st := NewState("a\nb", 1, 3)
	if !LineEnd(multi)(st) {
		t.Fatal("$ did not match before a line terminator in multi-line mode")
	}
	if st.Pos() != 2 {
		t.Errorf("cursor = %d, want 2 ($ consumes the terminator)", st.Pos())
	}

	st = NewState("a\nb", 1, 3)
	if LineEnd(Options{})(st) {
		t.Error("$ matched mid-input outside multi-line mode")
	}
	st = NewState("ab", 2, 2)
	if !LineEnd(Options{})(st) {
		t.Error("$ did not match at end of input")
	}
}

func TestSpan(t *testing.T) {
	var opts Options
	m := Span('(', ')', opts)

	ok, st := run(m, "(a(b)c")
	if !ok {
		t.Fatal("span did not match")
	}
	// Bounded scan, not balanced matching: stops at the first ')'.
	if st.Pos() != 5 {
		t.Errorf("cursor = %d, want 5 (first close byte)", st.Pos())
	}

	ok, st = run(m, "(abc")
	if ok {
		t.Error("span matched with no closing byte")
	}
	if st.Pos() != 0 {
		t.Errorf("cursor = %d after failure, want 0", st.Pos())
	}

	// Outside multi-line mode a line terminator fails the span.
	if ok, _ = run(m, "(a\nb)"); ok {
		t.Error("span crossed a line terminator outside multi-line mode")
	}
	if ok, _ = run(Span('(', ')', Options{MultiLine: true}), "(a\nb)"); !ok {
		t.Error("span did not cross a line terminator in multi-line mode")
	}
}

func TestSetMatcher(t *testing.T) {
	// Built through the syntax package in the integration tests; here the
	// items are constructed directly.
	run1 := func(m Matcher, text string) bool {
		ok, _ := run(m, text)
		return ok
	}

	items := []struct {
		name   string
		m      Matcher
		yes    string
		no     string
	}{
		{
			"range",
			setFromRange('0', '9', false, Options{}),
			"5", "a",
		},
		{
			"negated range",
			setFromRange('0', '9', true, Options{}),
			"a", "5",
		},
		{
			"folded range",
			setFromRange('a', 'z', false, Options{CaseFold: true}),
			"Q", "5",
		},
	}
	for _, tt := range items {
		if !run1(tt.m, tt.yes) {
			t.Errorf("%s: did not match %q", tt.name, tt.yes)
		}
		if run1(tt.m, tt.no) {
			t.Errorf("%s: matched %q", tt.name, tt.no)
		}
	}
}
