package prescan

import (
	"bytes"
	"errors"

	"github.com/coregx/ahocorasick"
)

// Scanner finds candidate match offsets: positions where one of the required
// prefixes occurs. A candidate still needs verification by the full matcher.
//
// The tier escalates with the prefix set, cheapest first: a single one-byte
// prefix uses bytes.IndexByte, a single longer prefix uses bytes.Index, and
// multiple prefixes use an Aho-Corasick automaton.
type Scanner struct {
	single []byte
	auto   *ahocorasick.Automaton
}

// New builds a Scanner for the given non-empty prefix set.
func New(prefixes []string) (*Scanner, error) {
	switch len(prefixes) {
	case 0:
		return nil, errors.New("prescan: no prefixes")
	case 1:
		return &Scanner{single: []byte(prefixes[0])}, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, p := range prefixes {
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Scanner{auto: auto}, nil
}

// Next returns the first candidate offset at or after at, or -1 when none
// remains in the haystack.
func (s *Scanner) Next(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	if s.auto != nil {
		m := s.auto.Find(haystack, at)
		if m == nil {
			return -1
		}
		return m.Start
	}
	var i int
	if len(s.single) == 1 {
		i = bytes.IndexByte(haystack[at:], s.single[0])
	} else {
		i = bytes.Index(haystack[at:], s.single)
	}
	if i < 0 {
		return -1
	}
	return at + i
}
