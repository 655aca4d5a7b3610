package romulus

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"testing"

	"github.com/dchest/siphash"
)

func fill(dst []byte, seed uint64) {
	for i := range dst {
		dst[i] = byte(siphash.Hash(seed, seed^0x9e3779b97f4a7c15, []byte{byte(i)}))
	}
}

func TestNewRejectsBadKeySize(t *testing.T) {
	if _, err := NewN(make([]byte, 15)); err == nil {
		t.Fatalf("NewN accepted a short key")
	}
	if _, err := NewM(make([]byte, 17)); err == nil {
		t.Fatalf("NewM accepted a long key")
	}
	if _, err := NewT(nil); err == nil {
		t.Fatalf("NewT accepted a nil key")
	}
}

var modes = map[string]func([]byte) (cipher.AEAD, error){
	"N": NewN,
	"M": NewM,
	"T": NewT,
}

func TestAEADRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	fill(key, 1)
	fill(nonce, 2)
	ad := []byte("associated data")
	pt := []byte("a message long enough to span more than one block")

	for name, new := range modes {
		aead, err := new(key)
		if err != nil {
			t.Fatalf("%s: constructor failed: %v", name, err)
		}

		ct := aead.Seal(nil, nonce, pt, ad)
		if len(ct) != len(pt)+aead.Overhead() {
			t.Fatalf("%s: ciphertext length = %d, want %d", name, len(ct), len(pt)+aead.Overhead())
		}

		got, err := aead.Open(nil, nonce, ct, ad)
		if err != nil {
			t.Fatalf("%s: Open rejected a genuine ciphertext: %v", name, err)
		}
		if !bytes.Equal(got, pt) {
			t.Fatalf("%s: recovered plaintext mismatch", name)
		}

		tampered := append([]byte(nil), ct...)
		tampered[0] ^= 1
		if _, err := aead.Open(nil, nonce, tampered, ad); !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("%s: tampered ciphertext did not yield ErrAuthFailed: %v", name, err)
		}
	}
}

func TestAEADEmptyPlaintext(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	fill(key, 3)
	fill(nonce, 4)

	for name, new := range modes {
		aead, _ := new(key)
		ct := aead.Seal(nil, nonce, nil, nil)
		if len(ct) != aead.Overhead() {
			t.Fatalf("%s: empty-plaintext ciphertext length = %d, want %d", name, len(ct), aead.Overhead())
		}
		pt, err := aead.Open(nil, nonce, ct, nil)
		if err != nil || len(pt) != 0 {
			t.Fatalf("%s: empty round trip failed: err=%v len=%d", name, err, len(pt))
		}
	}
}

func TestHashIsDeterministicAndInputSensitive(t *testing.T) {
	a := Hash([]byte("hello"))
	b := Hash([]byte("hello"))
	if a != b {
		t.Fatalf("Hash is not deterministic")
	}
	c := Hash([]byte("hellp"))
	if a == c {
		t.Fatalf("Hash did not distinguish differing inputs")
	}
}
