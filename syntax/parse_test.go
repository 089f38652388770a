package syntax

import (
	"errors"
	"testing"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"unterminated capture", "(ab", ErrUnterminatedCapture},
		{"unterminated nested capture", "a(b(c)", ErrUnterminatedCapture},
		{"unbalanced close", "ab)", ErrUnbalancedCapture},
		{"unterminated set", "[abc", ErrUnterminatedSet},
		{"unterminated negated set", "[^", ErrUnterminatedSet},
		{"trailing escape", "abc%", ErrTrailingEscape},
		{"truncated span", "%b", ErrTruncatedSpan},
		{"truncated span one char", "%b(", ErrTruncatedSpan},
		{"descending range", "[z-a]", ErrInvalidRange},
		{"class as range end", "[a-%d]", ErrInvalidRange},
		{"span inside set", "[%b()]", ErrInvalidSetItem},
		{"leading quantifier", "*a", ErrDanglingQuantifier},
		{"stacked quantifiers", "a**", ErrDanglingQuantifier},
		{"quantifier after alt", "a|+b", ErrDanglingQuantifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q): no error, want %v", tt.pattern, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Errorf("Parse(%q) error is %T, want *CompileError", tt.pattern, err)
			} else if ce.Pattern != tt.pattern {
				t.Errorf("CompileError.Pattern = %q, want %q", ce.Pattern, tt.pattern)
			}
		})
	}
}

func TestParseAccepts(t *testing.T) {
	// Constructs that look suspicious but are grammatical.
	patterns := []string{
		"",            // empty pattern matches the empty string
		"a|",          // empty right branch
		"-",           // hyphen outside a set is a literal
		"]",           // stray close bracket is a literal
		"[a-]",        // hyphen before ] is a literal
		"[-a]",        // leading hyphen is a literal
		"[]",          // empty set matches nothing
		"[^]",         // negated empty set matches any byte
		"%%",          // escaped escape
		"%?",          // escaped quantifier
		"a%*b",        // escaped star is a literal
		"%z",          // NUL byte
		"%b()",        // bounded span
		"((a)b(c))d",  // nested captures
		"[%w_-]",      // class inside set plus literals
		"^%a%w*$",     // anchors
		"a?b*c+",      // each primary with its own quantifier
		"(a|b)*",      // quantified capture
	}
	for _, pat := range patterns {
		if _, _, err := Parse(pat); err != nil {
			t.Errorf("Parse(%q) = %v, want nil", pat, err)
		}
	}
}

func TestParseCaptureIndexing(t *testing.T) {
	root, ncaps, err := Parse("((a)(b))(c)")
	if err != nil {
		t.Fatal(err)
	}
	if ncaps != 4 {
		t.Fatalf("ncaps = %d, want 4", ncaps)
	}
	// Indexes follow opening parentheses: outer=0, a=1, b=2, c=3.
	var indexes []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Op == OpCapture {
			indexes = append(indexes, n.Index)
		}
		for _, sub := range n.Subs {
			walk(sub)
		}
	}
	walk(root)
	want := []int{0, 1, 2, 3}
	if len(indexes) != len(want) {
		t.Fatalf("capture count = %d, want %d", len(indexes), len(want))
	}
	for i := range want {
		if indexes[i] != want[i] {
			t.Errorf("capture %d has index %d, want %d", i, indexes[i], want[i])
		}
	}
}

func TestParseAlternationShape(t *testing.T) {
	// ab|cd binds looser than sequencing: (ab)|(cd).
	root, _, err := Parse("ab|cd")
	if err != nil {
		t.Fatal(err)
	}
	if root.Op != OpAlt {
		t.Fatalf("root op = %v, want OpAlt", root.Op)
	}
	for i, branch := range root.Subs {
		if branch.Op != OpSeq || len(branch.Subs) != 2 {
			t.Errorf("branch %d is not a two-term sequence", i)
		}
	}
}

func TestParseQuantifierBindsTightest(t *testing.T) {
	// ab* is a(b*), not (ab)*.
	root, _, err := Parse("ab*")
	if err != nil {
		t.Fatal(err)
	}
	if root.Op != OpSeq || len(root.Subs) != 2 {
		t.Fatalf("root is not a two-term sequence")
	}
	if root.Subs[0].Op != OpLiteral || root.Subs[0].Ch != 'a' {
		t.Errorf("first term = %+v, want literal a", root.Subs[0])
	}
	rep := root.Subs[1]
	if rep.Op != OpRepeat || rep.Quant != '*' {
		t.Fatalf("second term = %+v, want star", rep)
	}
	if rep.Subs[0].Op != OpLiteral || rep.Subs[0].Ch != 'b' {
		t.Errorf("star body = %+v, want literal b", rep.Subs[0])
	}
}

func TestParseEscapes(t *testing.T) {
	tests := []struct {
		pattern string
		op      Op
		ch      byte
	}{
		{"%d", OpClass, 'd'},
		{"%D", OpClass, 'D'},
		{"%z", OpLiteral, 0},
		{"%%", OpLiteral, '%'},
		{"%(", OpLiteral, '('},
		{"%q", OpLiteral, 'q'},
	}
	for _, tt := range tests {
		root, _, err := Parse(tt.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) = %v", tt.pattern, err)
		}
		if root.Op != tt.op {
			t.Errorf("Parse(%q) op = %v, want %v", tt.pattern, root.Op, tt.op)
			continue
		}
		got := root.Ch
		if tt.op == OpClass {
			got = root.Letter
		}
		if got != tt.ch {
			t.Errorf("Parse(%q) byte = %q, want %q", tt.pattern, got, tt.ch)
		}
	}
}

func TestParseSpan(t *testing.T) {
	root, _, err := Parse("%b<>")
	if err != nil {
		t.Fatal(err)
	}
	if root.Op != OpSpan || root.Open != '<' || root.Close != '>' {
		t.Errorf("Parse(%%b<>) = %+v, want span <>", root)
	}
}

func TestParseSetItems(t *testing.T) {
	root, _, err := Parse("[^a-z%d_]")
	if err != nil {
		t.Fatal(err)
	}
	if root.Op != OpSet || !root.Negate {
		t.Fatalf("root = %+v, want negated set", root)
	}
	want := []SetItem{
		{Kind: SetRange, Lo: 'a', Hi: 'z'},
		{Kind: SetClass, Lo: 'd'},
		{Kind: SetChar, Lo: '_'},
	}
	if len(root.Items) != len(want) {
		t.Fatalf("items = %v, want %v", root.Items, want)
	}
	for i := range want {
		if root.Items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, root.Items[i], want[i])
		}
	}
}
