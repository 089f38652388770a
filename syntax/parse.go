package syntax

// Parse compiles a pattern string into its AST. It returns the root node,
// the number of captures (in opening-parenthesis order), and a *CompileError
// when the pattern does not conform to the grammar. Parse has no side
// effects and may be called concurrently.
func Parse(pattern string) (*Node, int, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, 0, err
	}
	p := &parser{pattern: pattern, toks: toks}
	root, err := p.alternation()
	if err != nil {
		return nil, 0, err
	}
	if p.i < len(p.toks) {
		// alternation only stops early on ')'; with no open capture on the
		// stack that close is unbalanced.
		return nil, 0, p.errorAt(p.toks[p.i].pos, ErrUnbalancedCapture)
	}
	return root, p.ncaps, nil
}

type parser struct {
	pattern string
	toks    []token
	i       int
	ncaps   int
}

func (p *parser) errorAt(pos int, err error) error {
	return &CompileError{Pattern: p.pattern, Pos: pos, Err: err}
}

// alternation = sequence ('|' sequence)*
// Branches are tried left to right; chaining keeps that order.
func (p *parser) alternation() (*Node, error) {
	left, err := p.sequence()
	if err != nil {
		return nil, err
	}
	for p.i < len(p.toks) && p.toks[p.i].kind == tokAlt {
		p.i++
		right, err := p.sequence()
		if err != nil {
			return nil, err
		}
		left = &Node{Op: OpAlt, Subs: []*Node{left, right}}
	}
	return left, nil
}

// sequence = quantified* — stops at '|', ')' or end of pattern. An empty
// sequence is legal and matches the empty string.
func (p *parser) sequence() (*Node, error) {
	var subs []*Node
	for p.i < len(p.toks) {
		if k := p.toks[p.i].kind; k == tokAlt || k == tokClose {
			break
		}
		term, err := p.quantified()
		if err != nil {
			return nil, err
		}
		subs = append(subs, term)
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return &Node{Op: OpSeq, Subs: subs}, nil
}

// quantified = primary ('?' | '*' | '+')?
// At most one quantifier: a stacked quantifier lands in primary position on
// the next iteration and is rejected there.
func (p *parser) quantified() (*Node, error) {
	prim, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.i < len(p.toks) {
		switch t := p.toks[p.i]; t.kind {
		case tokOpt, tokStar, tokPlus:
			p.i++
			return &Node{Op: OpRepeat, Quant: t.ch, Subs: []*Node{prim}}, nil
		}
	}
	return prim, nil
}

func (p *parser) primary() (*Node, error) {
	t := p.toks[p.i]
	switch t.kind {
	case tokLiteral, tokDash, tokSetClose:
		// '-' and ']' are only special inside a set.
		p.i++
		return &Node{Op: OpLiteral, Ch: t.ch}, nil
	case tokClass:
		p.i++
		return &Node{Op: OpClass, Letter: t.ch}, nil
	case tokAny:
		p.i++
		return &Node{Op: OpAny}, nil
	case tokLineStart:
		p.i++
		return &Node{Op: OpLineStart}, nil
	case tokLineEnd:
		p.i++
		return &Node{Op: OpLineEnd}, nil
	case tokSpan:
		p.i++
		return &Node{Op: OpSpan, Open: t.open, Close: t.close}, nil
	case tokOpen:
		p.i++
		idx := p.ncaps
		p.ncaps++
		sub, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if p.i >= len(p.toks) || p.toks[p.i].kind != tokClose {
			return nil, p.errorAt(t.pos, ErrUnterminatedCapture)
		}
		p.i++
		return &Node{Op: OpCapture, Index: idx, Subs: []*Node{sub}}, nil
	case tokSetOpen:
		p.i++
		return p.set(t.pos)
	case tokOpt, tokStar, tokPlus:
		return nil, p.errorAt(t.pos, ErrDanglingQuantifier)
	}
	// tokClose and tokAlt are filtered out by sequence.
	return nil, p.errorAt(t.pos, ErrUnbalancedCapture)
}

// set parses the interior of '[...]'. openPos is the offset of the '[' for
// error reporting.
func (p *parser) set(openPos int) (*Node, error) {
	negate := false
	if p.i < len(p.toks) && p.toks[p.i].kind == tokLineStart {
		negate = true
		p.i++
	}
	var items []SetItem
	for {
		if p.i >= len(p.toks) {
			return nil, p.errorAt(openPos, ErrUnterminatedSet)
		}
		t := p.toks[p.i]
		p.i++
		switch t.kind {
		case tokSetClose:
			return &Node{Op: OpSet, Negate: negate, Items: items}, nil
		case tokClass:
			items = append(items, SetItem{Kind: SetClass, Lo: t.ch})
		case tokSpan:
			return nil, p.errorAt(t.pos, ErrInvalidSetItem)
		default:
			// A single byte, possibly the low end of a range. A '-' directly
			// before ']' is a literal hyphen, so it never starts a range and
			// never terminates one.
			lo := t.ch
			if p.i+1 < len(p.toks) && p.toks[p.i].kind == tokDash && p.toks[p.i+1].kind != tokSetClose {
				dashPos := p.toks[p.i].pos
				hi := p.toks[p.i+1]
				p.i += 2
				if hi.kind == tokClass || hi.kind == tokSpan {
					return nil, p.errorAt(hi.pos, ErrInvalidRange)
				}
				if lo > hi.ch {
					return nil, p.errorAt(dashPos, ErrInvalidRange)
				}
				items = append(items, SetItem{Kind: SetRange, Lo: lo, Hi: hi.ch})
				continue
			}
			items = append(items, SetItem{Kind: SetChar, Lo: lo})
		}
	}
}
