// Package romulus is the public facade over the Romulus family of
// lightweight authenticated-encryption and hashing algorithms: Romulus-N
// (nonce-based AEAD), Romulus-M (nonce-misuse-resistant AEAD), Romulus-T
// (leakage-resistant AEAD), and Romulus-H (256-bit hash). The three AEAD
// constructors return a standard crypto/cipher.AEAD, the same shape
// golang.org/x/crypto/chacha20poly1305.New returns, so callers can swap
// Romulus in wherever that interface is already expected.
package romulus

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/itzmeanjan/romulus/romulush"
	"github.com/itzmeanjan/romulus/romulusm"
	"github.com/itzmeanjan/romulus/romulusn"
	"github.com/itzmeanjan/romulus/romulust"
)

// KeySize and NonceSize are the fixed sizes every Romulus AEAD mode uses.
const (
	KeySize   = 16
	NonceSize = 16
	// TagSize is the authentication tag length added by Seal and checked
	// by Open, i.e. cipher.AEAD's Overhead.
	TagSize = 16
	// HashSize is the length in bytes of a Romulus-H digest.
	HashSize = romulush.Size
)

// ErrAuthFailed is returned, wrapped, whenever Open's tag check fails. It
// never reveals how much of the ciphertext or tag was wrong.
var ErrAuthFailed = errors.New("romulus: message authentication failed")

type badKeySize int

func (n badKeySize) Error() string {
	return fmt.Sprintf("romulus: bad key length %d, expected %d", int(n), KeySize)
}

// Hash computes the 256-bit Romulus-H digest of msg.
func Hash(msg []byte) [HashSize]byte {
	return romulush.Sum(msg)
}

type aeadN struct{ key [16]byte }
type aeadM struct{ key [16]byte }
type aeadT struct{ key [16]byte }

// NewN returns a cipher.AEAD implementing Romulus-N. key must be 16 bytes.
// Romulus-N, like any nonce-based AEAD, requires a unique nonce per
// (key, message) encryption; reusing a nonce breaks its security
// guarantees entirely.
func NewN(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, badKeySize(len(key))
	}
	var a aeadN
	copy(a.key[:], key)
	return &a, nil
}

// NewM returns a cipher.AEAD implementing Romulus-M. key must be 16 bytes.
// Unlike Romulus-N, Romulus-M tolerates nonce reuse: encrypting the same
// (associated data, plaintext) pair twice under a repeated nonce leaks only
// that the two calls were equal, never the plaintext itself.
func NewM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, badKeySize(len(key))
	}
	var a aeadM
	copy(a.key[:], key)
	return &a, nil
}

// NewT returns a cipher.AEAD implementing Romulus-T. key must be 16 bytes.
// Romulus-T re-keys the block cipher on every invocation, bounding what a
// bounded per-call leakage channel can recover; it still requires a unique
// nonce per (key, message) encryption, the same as Romulus-N.
func NewT(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, badKeySize(len(key))
	}
	var a aeadT
	copy(a.key[:], key)
	return &a, nil
}

func (a *aeadN) NonceSize() int { return NonceSize }
func (a *aeadM) NonceSize() int { return NonceSize }
func (a *aeadT) NonceSize() int { return NonceSize }

func (a *aeadN) Overhead() int { return TagSize }
func (a *aeadM) Overhead() int { return TagSize }
func (a *aeadT) Overhead() int { return TagSize }

func (a *aeadN) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	checkNonce(nonce)
	var n [16]byte
	copy(n[:], nonce)
	ct, tag := romulusn.Seal(&a.key, &n, additionalData, plaintext)
	return append(dst, append(ct, tag[:]...)...)
}

func (a *aeadN) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	checkNonce(nonce)
	ct, tag, err := splitTag(ciphertext)
	if err != nil {
		return nil, err
	}
	var n [16]byte
	copy(n[:], nonce)
	pt, ok := romulusn.Open(&a.key, &n, tag, additionalData, ct)
	if !ok {
		return nil, fmt.Errorf("%w", ErrAuthFailed)
	}
	return append(dst, pt...), nil
}

func (a *aeadM) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	checkNonce(nonce)
	var n [16]byte
	copy(n[:], nonce)
	ct, tag := romulusm.Seal(&a.key, &n, additionalData, plaintext)
	return append(dst, append(ct, tag[:]...)...)
}

func (a *aeadM) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	checkNonce(nonce)
	ct, tag, err := splitTag(ciphertext)
	if err != nil {
		return nil, err
	}
	var n [16]byte
	copy(n[:], nonce)
	pt, ok := romulusm.Open(&a.key, &n, tag, additionalData, ct)
	if !ok {
		return nil, fmt.Errorf("%w", ErrAuthFailed)
	}
	return append(dst, pt...), nil
}

func (a *aeadT) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	checkNonce(nonce)
	var n [16]byte
	copy(n[:], nonce)
	ct, tag := romulust.Seal(&a.key, &n, additionalData, plaintext)
	return append(dst, append(ct, tag[:]...)...)
}

func (a *aeadT) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	checkNonce(nonce)
	ct, tag, err := splitTag(ciphertext)
	if err != nil {
		return nil, err
	}
	var n [16]byte
	copy(n[:], nonce)
	pt, ok := romulust.Open(&a.key, &n, tag, additionalData, ct)
	if !ok {
		return nil, fmt.Errorf("%w", ErrAuthFailed)
	}
	return append(dst, pt...), nil
}

func checkNonce(nonce []byte) {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("romulus: bad nonce length %d, expected %d", len(nonce), NonceSize))
	}
}

func splitTag(ciphertext []byte) (ct []byte, tag *[16]byte, err error) {
	if len(ciphertext) < TagSize {
		return nil, nil, fmt.Errorf("%w", ErrAuthFailed)
	}
	n := len(ciphertext) - TagSize
	var t [16]byte
	copy(t[:], ciphertext[n:])
	return ciphertext[:n], &t, nil
}
