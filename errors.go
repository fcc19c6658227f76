package anybase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlphabet is matched by every *InvalidAlphabetError.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidDigit is matched by every *InvalidDigitError.
	ErrInvalidDigit = errors.New("invalid digit")
)

// reasonDuplicate is the InvalidAlphabetError reason that carries Char.
const reasonDuplicate = "duplicate character"

// InvalidAlphabetError reports an alphabet that cannot define a numeral system:
// fewer than two characters, a repeated character, or malformed UTF-8.
type InvalidAlphabetError struct {
	// Alphabet is the rejected alphabet as supplied.
	Alphabet string
	// Reason describes the violated rule.
	Reason string
	// Char is the repeated character when Reason is a duplicate, otherwise zero.
	Char rune
}

func (e *InvalidAlphabetError) Error() string {
	if e.Reason == reasonDuplicate {
		return fmt.Sprintf("invalid alphabet %q: %s %q", e.Alphabet, e.Reason, e.Char)
	}
	return fmt.Sprintf("invalid alphabet %q: %s", e.Alphabet, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidAlphabet) match.
func (e *InvalidAlphabetError) Is(target error) bool {
	return target == ErrInvalidAlphabet
}

// InvalidDigitError reports an input character that is not part of the source alphabet.
type InvalidDigitError struct {
	// Char is the offending character.
	Char rune
	// Index is the character position (not byte offset) of Char in the input.
	Index int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at index %d", e.Char, e.Index)
}

// Is lets errors.Is(err, ErrInvalidDigit) match.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}
