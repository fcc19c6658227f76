package anybase

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/eknkc/basex"
)

// Bitcoin base58 encode/decode vectors.
var base58Vectors = []struct {
	hex     string
	encoded string
}{
	{"", ""},
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"572e4794", "3EFU7m"},
	{"10c8511e", "Rt5zm"},
	{"516b6fcd0f", "ABnLTmg"},
	{"000000287fb4cd", "111233QC4"},
	{"00000000000000000000", "1111111111"},
}

func TestEncodeBytes_Base58Vectors(t *testing.T) {
	for _, vector := range base58Vectors {
		data, err := hex.DecodeString(vector.hex)
		if err != nil {
			t.Fatalf("Failed to decode hex %q: %v", vector.hex, err)
		}

		encoded, err := EncodeBytes(data, Base58)
		if err != nil {
			t.Fatalf("Failed to encode %s: %v", vector.hex, err)
		}
		if encoded != vector.encoded {
			t.Errorf("EncodeBytes(%s): expected %q, got %q", vector.hex, vector.encoded, encoded)
		}

		decoded, err := DecodeBytes(vector.encoded, Base58)
		if err != nil {
			t.Fatalf("Failed to decode %q: %v", vector.encoded, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("DecodeBytes(%q): expected %x, got %x", vector.encoded, data, decoded)
		}
	}
}

// TestEncodeBytes_MatchesBasex checks wire compatibility with github.com/eknkc/basex,
// including the treatment of leading zero bytes.
func TestEncodeBytes_MatchesBasex(t *testing.T) {
	rng := rand.New(rand.NewSource(62))

	for _, alphabet := range []string{Binary, Hex, Base36, Base58, Base62} {
		reference, err := basex.NewEncoding(alphabet)
		if err != nil {
			t.Fatalf("Failed to create basex encoding: %v", err)
		}

		inputs := [][]byte{
			{0x00},
			{0x00, 0x00, 0x00},
			{0x00, 0x01},
			{0x00, 0x00, 0xff, 0x00},
			{0xff, 0xff, 0xff, 0xff},
		}
		for i := 0; i < 50; i++ {
			data := make([]byte, 1+rng.Intn(64))
			rng.Read(data)
			if rng.Intn(4) == 0 {
				data[0] = 0
			}
			inputs = append(inputs, data)
		}

		for _, data := range inputs {
			want := reference.Encode(data)
			got, err := EncodeBytes(data, alphabet)
			if err != nil {
				t.Fatalf("Failed to encode %x: %v", data, err)
			}
			if got != want {
				t.Errorf("EncodeBytes(%x, %q): expected %q, got %q", data, alphabet, want, got)
			}

			decoded, err := DecodeBytes(got, alphabet)
			if err != nil {
				t.Fatalf("Failed to decode %q: %v", got, err)
			}
			if !bytes.Equal(decoded, data) {
				t.Errorf("DecodeBytes(%q, %q): expected %x, got %x", got, alphabet, data, decoded)
			}
		}
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	if _, err := DecodeBytes("0OIl", Base58); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("Expected ErrInvalidDigit, got %v", err)
	}
	if _, err := DecodeBytes("11", "1"); !errors.Is(err, ErrInvalidAlphabet) {
		t.Errorf("Expected ErrInvalidAlphabet, got %v", err)
	}
	if _, err := EncodeBytes([]byte{1}, "xx"); !errors.Is(err, ErrInvalidAlphabet) {
		t.Errorf("Expected ErrInvalidAlphabet, got %v", err)
	}
}

func TestDecodeBytes_Empty(t *testing.T) {
	decoded, err := DecodeBytes("", Base62)
	if err != nil {
		t.Fatalf("Failed to decode empty string: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("Expected no bytes, got %x", decoded)
	}
}

func TestEncodeBytes_UnicodeAlphabet(t *testing.T) {
	data := []byte{0x00, 0x00, 0x2a}

	encoded, err := EncodeBytes(data, "你好世界")
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	// Two zero bytes, then 42 = 222 in base 4.
	if encoded != "你你世世世" {
		t.Errorf("Expected 你你世世世, got %q", encoded)
	}

	decoded, err := DecodeBytes(encoded, "你好世界")
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("Expected %x, got %x", data, decoded)
	}
}
