// Package syntax compiles the pattern language into an abstract syntax tree.
//
// The language is deliberately compact. '%' escapes the following character:
// a class letter (s, n, a, l, u, p, w, d, x, or their uppercase complements)
// selects a named character class, 'z' is the NUL byte, 'b' followed by two
// characters is a bounded span, and anything else is that literal character.
// The unescaped specials are:
//
//	.  any character        ^  start of line       $  end of line
//	(  capture open         )  capture close
//	[  set open             ]  set close
//	?  optional             *  zero or more        +  one or more
//	-  range inside a set   |  alternation
//
// Everything else matches itself. The grammar, tightest binding first: a
// primary (one symbol, a capture, or a set) may take exactly one quantifier;
// a sequence is one or more quantified terms; an alternation joins sequences
// with '|', the left branch tried first.
package syntax

// Op identifies the kind of an AST node.
type Op uint8

const (
	// OpLiteral matches the single byte Ch.
	OpLiteral Op = iota

	// OpClass matches one byte of the named class Letter (uppercase letter =
	// complement).
	OpClass

	// OpSet matches one byte against Items, inverted when Negate is set.
	OpSet

	// OpAny matches any single byte; line terminators only in multi-line mode.
	OpAny

	// OpLineStart matches the empty string at the start of input or, in
	// multi-line mode, after a line terminator.
	OpLineStart

	// OpLineEnd matches at end of input or, in multi-line mode, consumes the
	// line terminator that follows.
	OpLineEnd

	// OpSpan matches the byte Open, then consumes through the first
	// occurrence of the byte Close. This is not balanced-delimiter matching:
	// nested Open bytes are not counted.
	OpSpan

	// OpSeq matches every node in Subs, in order.
	OpSeq

	// OpAlt matches Subs[0] or, failing that, Subs[1]. Ordered: the first
	// branch to match wins.
	OpAlt

	// OpRepeat applies the quantifier Quant ('?', '*' or '+') to Subs[0].
	OpRepeat

	// OpCapture matches Subs[0] and records the matched span as capture
	// number Index (0-based, in opening-parenthesis order).
	OpCapture
)

// SetItemKind identifies the kind of one item inside a bracketed set.
type SetItemKind uint8

const (
	// SetChar is a single byte (Lo).
	SetChar SetItemKind = iota

	// SetRange is an inclusive byte range [Lo, Hi].
	SetRange

	// SetClass is an embedded class shorthand; Lo holds the class letter.
	SetClass
)

// SetItem is one item of a bracketed set.
type SetItem struct {
	Kind   SetItemKind
	Lo, Hi byte
}

// Node is one node of the parsed pattern. Only the fields relevant to Op are
// populated. Nodes are immutable after Parse returns.
type Node struct {
	Op Op

	Ch          byte      // OpLiteral
	Letter      byte      // OpClass
	Open, Close byte      // OpSpan
	Quant       byte      // OpRepeat: '?', '*' or '+'
	Negate      bool      // OpSet
	Index       int       // OpCapture
	Items       []SetItem // OpSet
	Subs        []*Node   // OpSeq, OpAlt, OpRepeat, OpCapture
}
