package matcher

import "github.com/coregx/lexpat/syntax"

// Compile lowers a parsed pattern into its executable matcher. The options
// are threaded into every constructor that needs them; the returned Matcher
// closes over no mutable state and can run concurrent attempts.
func Compile(n *syntax.Node, opts Options) Matcher {
	switch n.Op {
	case syntax.OpLiteral:
		return Lit(n.Ch, opts)
	case syntax.OpClass:
		return Class(n.Letter)
	case syntax.OpSet:
		return Set(n.Items, n.Negate, opts)
	case syntax.OpAny:
		return Any(opts)
	case syntax.OpLineStart:
		return LineStart(opts)
	case syntax.OpLineEnd:
		return LineEnd(opts)
	case syntax.OpSpan:
		return Span(n.Open, n.Close, opts)
	case syntax.OpSeq:
		if len(n.Subs) == 0 {
			return epsilon
		}
		ms := make([]Matcher, len(n.Subs))
		for i, sub := range n.Subs {
			ms[i] = Compile(sub, opts)
		}
		return Seq(ms...)
	case syntax.OpAlt:
		return Alt(Compile(n.Subs[0], opts), Compile(n.Subs[1], opts))
	case syntax.OpRepeat:
		sub := Compile(n.Subs[0], opts)
		switch n.Quant {
		case '?':
			return Opt(sub)
		case '*':
			return Star(sub)
		default: // '+'
			return Plus(sub)
		}
	case syntax.OpCapture:
		return Capture(n.Index, Compile(n.Subs[0], opts))
	}
	return epsilon
}

// epsilon matches the empty string.
func epsilon(*State) bool { return true }
