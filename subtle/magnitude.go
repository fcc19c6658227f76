// Package subtle provides the low-level arbitrary-precision arithmetic used for base conversion.
// It should not be used directly by most users; instead use the high-level APIs in the parent package.
package subtle

import "fmt"

// limbBits is the width of a single limb. Limbs are stored in base 2^limbBits.
const limbBits = 32

// Magnitude is an arbitrary-precision non-negative integer.
//
// The value is held as a little-endian sequence of 32-bit limbs (limbs[0] is
// the least significant). The sequence never has most-significant zero limbs,
// except for zero itself which is a single zero limb.
//
// A Magnitude is not safe for concurrent mutation. The zero value is a
// Magnitude holding zero, ready to use.
type Magnitude struct {
	limbs []uint32
}

// Zero returns a new Magnitude with value zero.
func Zero() *Magnitude {
	return &Magnitude{limbs: []uint32{0}}
}

// FromUint64 returns a new Magnitude holding v.
func FromUint64(v uint64) *Magnitude {
	m := &Magnitude{limbs: []uint32{uint32(v), uint32(v >> limbBits)}}
	m.normalize()
	return m
}

// zeroLimbs is shared and must never be written.
var zeroLimbs = []uint32{0}

// words returns the limbs of m for reading. An empty slice (the zero value)
// reads as a single zero limb.
func (m *Magnitude) words() []uint32 {
	if len(m.limbs) == 0 {
		return zeroLimbs
	}
	return m.limbs
}

// IsZero reports whether m is zero.
func (m *Magnitude) IsZero() bool {
	w := m.words()
	return len(w) == 1 && w[0] == 0
}

// Limbs returns a copy of the little-endian limbs of m.
func (m *Magnitude) Limbs() []uint32 {
	w := m.words()
	out := make([]uint32, len(w))
	copy(out, w)
	return out
}

// BitLen returns the number of bits needed to represent m. BitLen of zero is 0.
func (m *Magnitude) BitLen() int {
	w := m.words()
	top := w[len(w)-1]
	bits := 0
	for ; top > 0; top >>= 1 {
		bits++
	}
	return (len(w)-1)*limbBits + bits
}

// normalize drops most-significant zero limbs. An empty slice becomes a
// single zero limb.
func (m *Magnitude) normalize() {
	if len(m.limbs) == 0 {
		m.limbs = []uint32{0}
		return
	}
	n := len(m.limbs)
	for n > 1 && m.limbs[n-1] == 0 {
		n--
	}
	m.limbs = m.limbs[:n]
}

// MulAdd sets m to m*mul + add.
//
// Intermediate products are computed in 64 bits: a 32x32 product plus a
// 32-bit carry cannot exceed 2^64-1, so no step can overflow.
func (m *Magnitude) MulAdd(mul, add uint32) {
	if mul == 0 {
		m.limbs = append(m.limbs[:0], add)
		return
	}

	carry := uint64(add)
	for i, limb := range m.limbs {
		prod := uint64(limb)*uint64(mul) + carry
		m.limbs[i] = uint32(prod)
		carry = prod >> limbBits
	}
	if carry > 0 {
		m.limbs = append(m.limbs, uint32(carry))
	}
	m.normalize()
}

// DivMod sets m to m / div (integer division) and returns m % div.
// It returns an error if div is zero; m is left unchanged in that case.
func (m *Magnitude) DivMod(div uint32) (uint32, error) {
	if div == 0 {
		return 0, fmt.Errorf("division by zero")
	}
	if len(m.limbs) == 0 {
		return 0, nil
	}

	// Walk from the most significant limb down, carrying the remainder.
	var rem uint64
	for i := len(m.limbs) - 1; i >= 0; i-- {
		v := rem<<limbBits | uint64(m.limbs[i])
		m.limbs[i] = uint32(v / uint64(div))
		rem = v % uint64(div)
	}
	m.normalize()

	return uint32(rem), nil
}

// Cmp compares m and n and returns -1, 0 or +1.
func (m *Magnitude) Cmp(n *Magnitude) int {
	a, b := m.words(), n.words()
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Clone returns a deep copy of m.
func (m *Magnitude) Clone() *Magnitude {
	return &Magnitude{limbs: m.Limbs()}
}
