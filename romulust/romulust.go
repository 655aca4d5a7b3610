// Package romulust implements Romulus-T, the leakage-resistant
// authenticated encryption mode of the Romulus family. Where Romulus-N and
// Romulus-M thread a single evolving state through rho, Romulus-T keeps the
// nonce fixed as the tweakable block cipher's input block and instead
// evolves a seed through the tweakey, so that every block invocation is
// re-keyed: an adversary who can leak bounded information per invocation
// learns only about that single, never-repeated tweakey.
package romulust

import (
	"crypto/subtle"

	"github.com/itzmeanjan/romulus/internal/mode"
	"github.com/itzmeanjan/romulus/romulush"
	"github.com/itzmeanjan/romulus/skinny"
)

// TagSize is the length in bytes of a Romulus-T authentication tag.
const TagSize = 16

const (
	domainSeedInit  = 0x42
	domainKeystream = 0x40
	domainSeedNext  = 0x41
	domainTag       = 0x44
)

func tbc(block *[16]byte, tweakey *[48]byte) (out [16]byte) {
	var st skinny.State
	st.Init(block, tweakey)
	st.Permute()
	return st.IS
}

// keystream derives n bytes of Romulus-T keystream under key and nonce.
// The nonce is the fixed plaintext block fed to every TBC call; a seed
// carried in the tweakey's key slot evolves once per block, re-keying the
// cipher on every invocation.
func keystream(key, nonce *[16]byte, n int) []byte {
	var zeroTweak [16]byte
	var zeroCounter mode.LFSR // the literal 0^7 counter used only to seed S

	seedTweakey := mode.Encode(key, &zeroTweak, &zeroCounter, domainSeedInit)
	seed := tbc(nonce, &seedTweakey)

	var lfsr mode.LFSR
	lfsr.Reset()

	blocks := n / 16
	if n%16 != 0 {
		blocks++
	}

	out := make([]byte, n)
	off := 0
	for i := 0; i < blocks; i++ {
		kTweakey := mode.Encode(&seed, &zeroTweak, &lfsr, domainKeystream)
		k := tbc(nonce, &kTweakey)

		take := min(16, n-off)
		copy(out[off:off+take], k[:take])

		if i != blocks-1 {
			sTweakey := mode.Encode(&seed, &zeroTweak, &lfsr, domainSeedNext)
			seed = tbc(nonce, &sTweakey)
		}
		lfsr.Step()
		off += take
	}
	return out
}

// padStream end-pads data to a 16-byte boundary and stamps the final byte
// of the padded region with len(data)%16, following Romulus-T's own
// associated-data/ciphertext framing: a wholly empty input contributes no
// bytes at all, a non-empty input is padded up to the next 16-byte
// boundary, and an input that is already block-aligned gets one whole
// extra block of padding appended. This keeps
// the AD and ciphertext segments of the authenticated string unambiguously
// delimited regardless of their lengths.
func padStream(data []byte) []byte {
	n := len(data)
	if n == 0 {
		return nil
	}
	out := make([]byte, (n/16+1)*16)
	copy(out, data)
	out[len(out)-1] = byte(n % 16)
	return out
}

// authTag builds the authenticated string pad16(ad) || pad16(ciphertext) ||
// nonce || counter, hashes it with Romulus-H, and derives the 16-byte tag
// from the resulting (L, R) chaining halves. ctBlocks is the number of
// keystream blocks consumed while producing/consuming ciphertext; it seeds
// the trailing counter field so the tag is bound to exactly how much
// keystream was drawn.
func authTag(key, nonce *[16]byte, ad, ciphertext []byte, ctBlocks int) [16]byte {
	var counter mode.LFSR
	counter.Reset()
	for i := 0; i < ctBlocks; i++ {
		counter.Step()
	}

	stream := make([]byte, 0, len(ad)+len(ciphertext)+16+16+16)
	stream = append(stream, padStream(ad)...)
	stream = append(stream, padStream(ciphertext)...)
	stream = append(stream, nonce[:]...)
	stream = append(stream, counter[:]...)

	digest := romulush.Sum(stream)
	var l, r [16]byte
	copy(l[:], digest[0:16])
	copy(r[:], digest[16:32])

	var zeroCounter mode.LFSR
	tweakey := mode.Encode(key, &r, &zeroCounter, domainTag)
	return tbc(&l, &tweakey)
}

func ctBlockCount(n int) int {
	if n == 0 {
		return 0
	}
	blocks := n / 16
	if n%16 != 0 {
		blocks++
	}
	return blocks
}

// Seal encrypts plaintext under key and nonce with a counter-mode
// keystream, authenticating ad alongside it, and returns the ciphertext
// (same length as plaintext) and a 16-byte authentication tag.
func Seal(key, nonce *[16]byte, ad, plaintext []byte) (ciphertext []byte, tag [16]byte) {
	ctlen := len(plaintext)
	ciphertext = make([]byte, ctlen)
	if ctlen > 0 {
		ks := keystream(key, nonce, ctlen)
		for i := range ciphertext {
			ciphertext[i] = plaintext[i] ^ ks[i]
		}
	}

	tag = authTag(key, nonce, ad, ciphertext, ctBlockCount(ctlen))
	return ciphertext, tag
}

// Open recomputes the authentication tag from ad and ciphertext first and
// rejects before decrypting anything on mismatch, so a forged ciphertext
// never reaches the keystream XOR step.
func Open(key, nonce, tag *[16]byte, ad, ciphertext []byte) (plaintext []byte, ok bool) {
	ctlen := len(ciphertext)

	gotTag := authTag(key, nonce, ad, ciphertext, ctBlockCount(ctlen))
	if subtle.ConstantTimeCompare(gotTag[:], tag[:]) != 1 {
		return make([]byte, ctlen), false
	}

	plaintext = make([]byte, ctlen)
	if ctlen > 0 {
		ks := keystream(key, nonce, ctlen)
		for i := range plaintext {
			plaintext[i] = ciphertext[i] ^ ks[i]
		}
	}
	return plaintext, true
}
