// Package lexpat is a compact pattern engine and lexer generator for
// embedding inside parsers and interpreters.
//
// Patterns are written in a small '%'-escape language rather than
// Perl-compatible regex syntax:
//
//	re, err := lexpat.Compile("%a%w*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := re.Find("x = offset1;", 0, 12)
//	fmt.Println(m.Text) // "x"
//
// See package syntax for the full grammar. Three semantics differ from
// mainstream regex engines and are deliberate; do not rely on PCRE habits:
//
//   - Alternation is ordered, not longest-match: "a|ab" matched against "ab"
//     yields "a".
//   - Repetition is greedy and never backtracks: "a*a" cannot match "aaa",
//     because "a*" irrevocably consumes all three bytes.
//   - "%bxy" is a bounded span, not balanced-delimiter matching: it matches
//     'x' and then scans to the first 'y', counting nothing.
//
// A compiled Pattern is immutable and safe for concurrent matching from
// multiple goroutines; every attempt allocates only its own transient
// cursor and capture stack. Options are plain values threaded through
// compilation, so concurrent compilations with different options cannot
// interfere.
//
// The lexer generator built on this engine lives in package lexer.
package lexpat

import (
	"github.com/coregx/lexpat/matcher"
	"github.com/coregx/lexpat/prescan"
	"github.com/coregx/lexpat/syntax"
)

// Options are the two compilation switches.
//
// CaseFold makes literal, set and bounded-span matching ASCII
// case-insensitive. MultiLine makes '.' accept line terminators, '^' match
// after a line terminator, and '$' match (and consume) a line terminator
// rather than only true end of input.
type Options = matcher.Options

// Pattern is a compiled pattern. It holds the original pattern text, the
// options it was compiled under, and the composed matcher. A Pattern is
// immutable once built and may be shared and matched concurrently without
// synchronization.
type Pattern struct {
	src   string
	opts  Options
	prog  matcher.Matcher
	ncaps int
	scan  *prescan.Scanner
}

// Compile compiles a pattern with default options (exact case, single line).
//
// Example:
//
//	re, err := lexpat.Compile("%d+")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWithOptions(pattern, Options{})
}

// CompileWithOptions compiles a pattern under explicit options. It returns a
// *syntax.CompileError when the pattern does not conform to the grammar.
func CompileWithOptions(pattern string, opts Options) (*Pattern, error) {
	root, ncaps, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	p := &Pattern{
		src:   pattern,
		opts:  opts,
		prog:  matcher.Compile(root, opts),
		ncaps: ncaps,
	}
	// Unanchored searches skip ahead to required literal prefixes. Folded
	// compiles keep the plain scan: the prefix bytes would no longer be
	// required literally.
	if !opts.CaseFold {
		if prefixes, ok := prescan.Extract(root); ok {
			if scan, err := prescan.New(prefixes); err == nil {
				p.scan = scan
			}
		}
	}
	return p, nil
}

// MustCompile is Compile that panics on error, for patterns known to be
// valid at compile time.
//
// Example:
//
//	var identifier = lexpat.MustCompile("%a%w*")
func MustCompile(pattern string) *Pattern {
	re, err := Compile(pattern)
	if err != nil {
		panic("lexpat: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// MustCompileWithOptions is CompileWithOptions that panics on error.
func MustCompileWithOptions(pattern string, opts Options) *Pattern {
	re, err := CompileWithOptions(pattern, opts)
	if err != nil {
		panic("lexpat: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string { return p.src }

// Options returns the options the pattern was compiled under.
func (p *Pattern) Options() Options { return p.opts }

// NumCaptures returns the number of parenthesized sub-patterns.
func (p *Pattern) NumCaptures() int { return p.ncaps }
