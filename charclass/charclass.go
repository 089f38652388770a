// Package charclass provides the named ASCII character sets used by the
// pattern language.
//
// Each class is identified by a single lowercase letter (the letter that
// follows '%' in a pattern); the corresponding uppercase letter denotes the
// complement of the class. Membership is answered from fixed 256-bit tables
// built once at package initialization, so lookups are a shift and a mask.
//
// The classes are byte-oriented: multi-byte UTF-8 sequences fall outside
// every class except through their individual bytes.
package charclass

// Set is a fixed membership table over all 256 byte values.
type Set struct {
	bits [4]uint64
}

// Add marks a single byte as a member of the set.
func (s *Set) Add(b byte) {
	s.bits[b>>6] |= 1 << (b & 63)
}

// AddRange marks every byte in the inclusive range [lo, hi] as a member.
func (s *Set) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether b is a member of the set.
func (s *Set) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// The named classes of the pattern language. Built once in init and never
// mutated afterwards; safe for concurrent use.
var (
	space    Set // %s: space or tab (not all Unicode whitespace)
	lineTerm Set // %n: line terminators
	letter   Set // %a
	lower    Set // %l
	upper    Set // %u
	punct    Set // %p: ASCII punctuation
	alnum    Set // %w: letters and digits
	digit    Set // %d
	hexDigit Set // %x
)

func init() {
	space.Add(' ')
	space.Add('\t')

	lineTerm.Add('\n')
	lineTerm.Add('\r')

	lower.AddRange('a', 'z')
	upper.AddRange('A', 'Z')

	letter.AddRange('a', 'z')
	letter.AddRange('A', 'Z')

	digit.AddRange('0', '9')

	hexDigit.AddRange('0', '9')
	hexDigit.AddRange('a', 'f')
	hexDigit.AddRange('A', 'F')

	punct.AddRange('!', '/')
	punct.AddRange(':', '@')
	punct.AddRange('[', '`')
	punct.AddRange('{', '~')

	alnum.AddRange('a', 'z')
	alnum.AddRange('A', 'Z')
	alnum.AddRange('0', '9')
}

// byLetter maps a lowercase class letter to its set.
func byLetter(letterCh byte) *Set {
	switch letterCh {
	case 's':
		return &space
	case 'n':
		return &lineTerm
	case 'a':
		return &letter
	case 'l':
		return &lower
	case 'u':
		return &upper
	case 'p':
		return &punct
	case 'w':
		return &alnum
	case 'd':
		return &digit
	case 'x':
		return &hexDigit
	}
	return nil
}

// IsClassLetter reports whether letterCh selects a named class when it
// follows '%' in a pattern. Uppercase letters select the complement of the
// lowercase class.
func IsClassLetter(letterCh byte) bool {
	return byLetter(letterCh|0x20) != nil
}

// Match reports whether b belongs to the class named by letterCh. An
// uppercase letterCh tests the complement of its lowercase class. known is
// false when letterCh names no class at all.
func Match(letterCh, b byte) (matched, known bool) {
	lc := letterCh | 0x20
	set := byLetter(lc)
	if set == nil {
		return false, false
	}
	in := set.Contains(b)
	if letterCh != lc { // uppercase: complement
		in = !in
	}
	return in, true
}

// Convenience predicates for the classes the compiler and the lexer consult
// directly.

// IsSpace reports whether b is a space or a tab.
func IsSpace(b byte) bool { return space.Contains(b) }

// IsLineTerm reports whether b is a line terminator.
func IsLineTerm(b byte) bool { return lineTerm.Contains(b) }

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool { return letter.Contains(b) }

// IsDigit reports whether b is a decimal digit.
func IsDigit(b byte) bool { return digit.Contains(b) }

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool { return hexDigit.Contains(b) }

// IsPunct reports whether b is an ASCII punctuation character.
func IsPunct(b byte) bool { return punct.Contains(b) }

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool { return alnum.Contains(b) }
