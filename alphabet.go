package anybase

import (
	"unicode/utf8"

	"github.com/vdparikh/anybase/subtle"
)

// Alphabet is an ordered set of distinct characters defining a numeral system.
// The position of each character is its digit value and the number of
// characters is the radix.
//
// An Alphabet is immutable once built and safe for concurrent use. The zero
// value is not a valid Alphabet; build one with ParseAlphabet or
// MustParseAlphabet.
type Alphabet struct {
	source string
	runes  []rune
	index  map[rune]uint32
}

// ParseAlphabet validates s and builds the reverse lookup used for decoding.
// Characters are Unicode code points, so multi-byte characters are single digits.
func ParseAlphabet(s string) (*Alphabet, error) {
	if !utf8.ValidString(s) {
		return nil, &InvalidAlphabetError{Alphabet: s, Reason: "not valid UTF-8"}
	}

	// One pass builds the lookup and detects repeated characters.
	runes := make([]rune, 0, len(s))
	index := make(map[rune]uint32, len(s))
	for _, r := range s {
		if _, ok := index[r]; ok {
			return nil, &InvalidAlphabetError{Alphabet: s, Reason: reasonDuplicate, Char: r}
		}
		index[r] = uint32(len(runes))
		runes = append(runes, r)
	}

	if len(runes) < 2 {
		return nil, &InvalidAlphabetError{Alphabet: s, Reason: "radix must be at least 2"}
	}

	return &Alphabet{source: s, runes: runes, index: index}, nil
}

// MustParseAlphabet is like ParseAlphabet but panics on error.
// It is intended for package-level alphabets known to be valid.
func MustParseAlphabet(s string) *Alphabet {
	a, err := ParseAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Radix returns the number of characters in the alphabet.
func (a *Alphabet) Radix() int {
	return len(a.runes)
}

// String returns the alphabet as originally supplied.
func (a *Alphabet) String() string {
	return a.source
}

// Zero returns the character representing digit value zero.
func (a *Alphabet) Zero() rune {
	return a.runes[0]
}

// Digit returns the digit value of r, and false if r is not in the alphabet.
func (a *Alphabet) Digit(r rune) (uint32, bool) {
	v, ok := a.index[r]
	return v, ok
}

// Rune returns the character for digit value v. It panics if v >= Radix().
func (a *Alphabet) Rune(v uint32) rune {
	return a.runes[v]
}

// digits maps input onto digit values, most significant first.
func (a *Alphabet) digits(input string) ([]uint32, error) {
	result := make([]uint32, 0, len(input))
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		i += size

		// Malformed UTF-8 decodes to U+FFFD with size 1 and must not match an
		// alphabet that contains U+FFFD itself.
		v, ok := a.index[r]
		if !ok || (r == utf8.RuneError && size == 1) {
			return nil, &InvalidDigitError{Char: r, Index: len(result)}
		}
		result = append(result, v)
	}
	return result, nil
}

// Decode computes the magnitude that input represents in this alphabet.
// The empty string decodes to zero. Every character must belong to the
// alphabet, otherwise an *InvalidDigitError is returned.
func (a *Alphabet) Decode(input string) (*subtle.Magnitude, error) {
	values, err := a.digits(input)
	if err != nil {
		return nil, err
	}
	return subtle.FromDigits(values, uint32(len(a.runes)))
}

// Encode renders m in this alphabet without leading zeros.
// Zero renders as the single zero character, never as the empty string.
// Encode panics if a was not built by ParseAlphabet.
func (a *Alphabet) Encode(m *subtle.Magnitude) string {
	values, err := m.Digits(uint32(len(a.runes)))
	if err != nil {
		// Only a zero-value Alphabet has a radix below 2.
		panic("anybase: Encode on an Alphabet not built by ParseAlphabet")
	}
	return a.render(values)
}

func (a *Alphabet) render(values []uint32) string {
	out := make([]rune, len(values))
	for i, v := range values {
		out[i] = a.runes[v]
	}
	return string(out)
}
