package anybase

// Converter converts numbers from a fixed source alphabet to a fixed target alphabet.
// It is immutable and safe for concurrent use by multiple goroutines.
type Converter struct {
	source *Alphabet
	target *Alphabet
}

// New creates a Converter from source to target.
// Both alphabets are validated immediately; an invalid alphabet yields an
// *InvalidAlphabetError and no Converter.
func New(source, target string) (*Converter, error) {
	src, err := ParseAlphabet(source)
	if err != nil {
		return nil, err
	}
	dst, err := ParseAlphabet(target)
	if err != nil {
		return nil, err
	}
	return NewFromAlphabets(src, dst), nil
}

// NewFromAlphabets creates a Converter from already parsed alphabets.
func NewFromAlphabets(source, target *Alphabet) *Converter {
	return &Converter{source: source, target: target}
}

// Convert re-expresses input, written in the source alphabet, in the target alphabet.
// The result has no leading zeros; a zero value (including the empty input)
// yields the target's zero character.
func (c *Converter) Convert(input string) (string, error) {
	m, err := c.source.Decode(input)
	if err != nil {
		return "", err
	}
	return c.target.Encode(m), nil
}

// Inverse returns a Converter with source and target swapped.
func (c *Converter) Inverse() *Converter {
	return &Converter{source: c.target, target: c.source}
}

// Source returns the source alphabet.
func (c *Converter) Source() *Alphabet {
	return c.source
}

// Target returns the target alphabet.
func (c *Converter) Target() *Alphabet {
	return c.target
}

// SourceBase returns the radix of the source alphabet.
func (c *Converter) SourceBase() int {
	return c.source.Radix()
}

// TargetBase returns the radix of the target alphabet.
func (c *Converter) TargetBase() int {
	return c.target.Radix()
}
