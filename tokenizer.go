package anybase

// Tokenizer turns plaintext into opaque tokens written in a chosen alphabet, and back.
// Implementations are deterministic: the same key, associated data and
// plaintext always produce the same token, so tokens can be compared and
// indexed. See the tinkbase package for a Tink-backed implementation.
type Tokenizer interface {
	// Tokenize encrypts plaintext and renders the ciphertext in the tokenizer's alphabet.
	Tokenize(plaintext string) (string, error)

	// Detokenize reverses Tokenize. It fails if token contains characters outside
	// the alphabet or does not authenticate under the tokenizer's key.
	Detokenize(token string) (string, error)
}
