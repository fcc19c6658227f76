// Package tinkbase provides Tink integration for alphabet-rendered tokens.
// This file contains the key templates and keyset I/O helpers.
package tinkbase

import (
	"io"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// KeyTemplate returns the template for token keys: AES-SIV deterministic AEAD.
// Determinism is what makes the same plaintext always map to the same token.
//
// Usage:
//
//	handle, err := keyset.NewHandle(tinkbase.KeyTemplate())
func KeyTemplate() *tink_go_proto.KeyTemplate {
	return proto.Clone(daead.AESSIVKeyTemplate()).(*tink_go_proto.KeyTemplate)
}

// NewKeysetHandle generates a fresh keyset containing a single token key.
func NewKeysetHandle() (*keyset.Handle, error) {
	handle, err := keyset.NewHandle(KeyTemplate())
	if err != nil {
		return nil, errors.Wrap(err, "unable to create keyset handle")
	}
	return handle, nil
}

// ReadKeyset reads a cleartext JSON keyset, as written by WriteKeyset.
//
// WARNING: the keyset is unencrypted. In production, encrypt keysets with a
// KMS-backed AEAD (keyset.Handle.Write) instead.
func ReadKeyset(r io.Reader) (*keyset.Handle, error) {
	handle, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "unable to read keyset")
	}
	return handle, nil
}

// WriteKeyset writes handle as a cleartext JSON keyset.
func WriteKeyset(handle *keyset.Handle, w io.Writer) error {
	if handle == nil {
		return errors.New("keyset handle cannot be nil")
	}
	if err := insecurecleartextkeyset.Write(handle, keyset.NewJSONWriter(w)); err != nil {
		return errors.Wrap(err, "unable to write keyset")
	}
	return nil
}
