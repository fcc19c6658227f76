package anybase

import "github.com/vdparikh/anybase/subtle"

// byteRadix is the radix of a byte string read as a big-endian number.
const byteRadix = 256

// EncodeBytes renders data, read as a big-endian number, in the given alphabet.
//
// Unlike Convert, leading zero bytes are significant: each one becomes a
// leading zero character, so DecodeBytes restores data exactly. This is the
// base58/base-x convention. Empty data encodes to the empty string.
func EncodeBytes(data []byte, alphabet string) (string, error) {
	a, err := ParseAlphabet(alphabet)
	if err != nil {
		return "", err
	}
	return a.EncodeBytes(data), nil
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(s string, alphabet string) ([]byte, error) {
	a, err := ParseAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return a.DecodeBytes(s)
}

// EncodeBytes renders data in a, preserving leading zero bytes. See EncodeBytes.
func (a *Alphabet) EncodeBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	values := make([]uint32, len(data))
	for i, b := range data {
		values[i] = uint32(b)
	}
	m, err := subtle.FromDigits(values, byteRadix)
	if err != nil {
		panic(err)
	}

	// The last byte is always carried by the number itself, so an all-zero
	// input of n bytes renders as n zero characters.
	zeros := leading(values[:len(values)-1], 0)
	digits, err := m.Digits(uint32(len(a.runes)))
	if err != nil {
		panic(err)
	}
	return a.render(append(make([]uint32, zeros), digits...))
}

// DecodeBytes is the inverse of (*Alphabet).EncodeBytes.
func (a *Alphabet) DecodeBytes(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	values, err := a.digits(s)
	if err != nil {
		return nil, err
	}
	m, err := subtle.FromDigits(values, uint32(len(a.runes)))
	if err != nil {
		return nil, err
	}

	zeros := leading(values[:len(values)-1], 0)
	digits, err := m.Digits(byteRadix)
	if err != nil {
		return nil, err
	}

	out := make([]byte, zeros, zeros+len(digits))
	for _, d := range digits {
		out = append(out, byte(d))
	}
	return out, nil
}

// leading counts the values at the start of values equal to v.
func leading(values []uint32, v uint32) int {
	n := 0
	for n < len(values) && values[n] == v {
		n++
	}
	return n
}
