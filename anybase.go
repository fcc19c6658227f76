// Package anybase converts integers between numeral systems defined by arbitrary alphabets.
//
// An alphabet is an ordered set of distinct characters: the position of a
// character is its digit value and the number of characters is the radix.
// Conversion decodes the input into an arbitrary-precision magnitude (see the
// subtle package) and renders that magnitude in the target alphabet, so values
// of any size convert exactly.
//
// Example usage:
//
//	// Functional
//	out, err := anybase.ConvertBase("ff", anybase.Hex, anybase.Octal)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// out == "377"
//
//	// Object-oriented
//	converter, err := anybase.New(anybase.Binary, anybase.Decimal)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err = converter.Convert("1010")
//	// out == "10"
//
// The empty input converts to the target's zero character, and leading zero
// digits never change the value.
package anybase

// Common alphabets.
const (
	// Binary is the base-2 alphabet.
	Binary = "01"
	// Octal is the base-8 alphabet.
	Octal = "01234567"
	// Decimal is the base-10 alphabet.
	Decimal = "0123456789"
	// Hex is the lowercase base-16 alphabet.
	Hex = "0123456789abcdef"
	// Base36 is digits followed by lowercase letters.
	Base36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	// Base58 is the Bitcoin alphabet, which omits 0, O, I and l.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	// Base62 is digits followed by lowercase and uppercase letters.
	Base62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ConvertBase converts input, written in the source alphabet, into the target alphabet.
//
// Both alphabets must contain at least two characters and no repeated
// characters; otherwise an *InvalidAlphabetError is returned. Every input
// character must belong to source; otherwise an *InvalidDigitError is returned.
func ConvertBase(input, source, target string) (string, error) {
	converter, err := New(source, target)
	if err != nil {
		return "", err
	}
	return converter.Convert(input)
}
