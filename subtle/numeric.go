package subtle

import "fmt"

// chunk returns the largest k such that radix^k fits in a limb, together with radix^k.
// Digits are folded into (and extracted from) a Magnitude k at a time.
func chunk(radix uint32) (int, uint32) {
	k, pow := 1, uint64(radix)
	for pow*uint64(radix) <= 1<<limbBits-1 {
		pow *= uint64(radix)
		k++
	}
	return k, uint32(pow)
}

// FromDigits builds the Magnitude represented by digits in the given radix.
// digits are most significant first; leading zero digits do not affect the value
// and an empty slice yields zero.
// This is the positional accumulation acc = acc*radix + digit, applied a chunk of
// digits at a time.
func FromDigits(digits []uint32, radix uint32) (*Magnitude, error) {
	if radix < 2 {
		return nil, fmt.Errorf("radix must be at least 2, got %d", radix)
	}

	k, _ := chunk(radix)
	m := Zero()

	// Chunks are aligned to the end of the input, so only the first one may be short.
	mul := uint32(1)
	word := uint32(0)
	for i, d := range digits {
		if d >= radix {
			return nil, fmt.Errorf("digit %d at position %d out of range for radix %d", d, i, radix)
		}
		word = word*radix + d
		mul *= radix

		if (len(digits)-i-1)%k == 0 {
			m.MulAdd(mul, word)
			mul, word = 1, 0
		}
	}

	return m, nil
}

// Digits renders m in the given radix, most significant digit first.
// Zero renders as a single zero digit. m is not modified.
func (m *Magnitude) Digits(radix uint32) ([]uint32, error) {
	if radix < 2 {
		return nil, fmt.Errorf("radix must be at least 2, got %d", radix)
	}
	if m.IsZero() {
		return []uint32{0}, nil
	}

	k, pow := chunk(radix)
	work := m.Clone()

	// Digits are produced least significant first and reversed at the end.
	var out []uint32
	for !work.IsZero() {
		word, err := work.DivMod(pow)
		if err != nil {
			return nil, err
		}
		last := work.IsZero()
		for j := 0; j < k; j++ {
			if last && word == 0 {
				break
			}
			out = append(out, word%radix)
			word /= radix
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}
