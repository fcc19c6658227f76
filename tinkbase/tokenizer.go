package tinkbase

import (
	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"
	"github.com/pkg/errors"

	"github.com/vdparikh/anybase"
)

// New creates a Tokenizer from a Tink keyset handle holding deterministic AEAD keys.
// Tokens are the ciphertext rendered in alphabet with anybase's byte codec,
// so they contain only alphabet characters. associatedData is authenticated
// but not encrypted; a token only detokenizes under the same value.
//
// Example:
//
//	handle, err := tinkbase.NewKeysetHandle()
//	if err != nil {
//		return err
//	}
//	tokenizer, err := tinkbase.New(handle, anybase.Base62, []byte("tenant-1234|customer.email"))
//	if err != nil {
//		return err
//	}
//	token, err := tokenizer.Tokenize("alice@example.com")
func New(handle *keyset.Handle, alphabet string, associatedData []byte) (anybase.Tokenizer, error) {
	if handle == nil {
		return nil, errors.New("keyset handle cannot be nil")
	}

	a, err := anybase.ParseAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get deterministic AEAD primitive")
	}

	return &tokenizer{
		primitive:      primitive,
		alphabet:       a,
		associatedData: associatedData,
	}, nil
}

// tokenizer implements anybase.Tokenizer on top of tink.DeterministicAEAD.
type tokenizer struct {
	primitive      tink.DeterministicAEAD
	alphabet       *anybase.Alphabet
	associatedData []byte
}

// Tokenize encrypts plaintext and renders the ciphertext in the alphabet.
func (t *tokenizer) Tokenize(plaintext string) (string, error) {
	ciphertext, err := t.primitive.EncryptDeterministically([]byte(plaintext), t.associatedData)
	if err != nil {
		return "", errors.Wrap(err, "unable to tokenize")
	}
	return t.alphabet.EncodeBytes(ciphertext), nil
}

// Detokenize parses token in the alphabet and decrypts it.
func (t *tokenizer) Detokenize(token string) (string, error) {
	ciphertext, err := t.alphabet.DecodeBytes(token)
	if err != nil {
		return "", errors.Wrap(err, "unable to parse token")
	}
	plaintext, err := t.primitive.DecryptDeterministically(ciphertext, t.associatedData)
	if err != nil {
		return "", errors.Wrap(err, "unable to detokenize")
	}
	return string(plaintext), nil
}

// Verify that tokenizer implements anybase.Tokenizer
var _ anybase.Tokenizer = (*tokenizer)(nil)
