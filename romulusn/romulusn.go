// Package romulusn implements Romulus-N, the nonce-based authenticated
// encryption mode of the Romulus family.
package romulusn

import (
	"crypto/subtle"

	"github.com/itzmeanjan/romulus/internal/mode"
	"github.com/itzmeanjan/romulus/skinny"
)

// TagSize is the length in bytes of a Romulus-N authentication tag.
const TagSize = 16

const (
	domainADPair    = 8
	domainADFull    = 24
	domainADPartial = 26
	domainMsg       = 4
	domainMsgFull   = 20
	domainMsgPartial = 21
)

func tbc(state *[16]byte, tweakey *[48]byte) {
	var st skinny.State
	st.Init(state, tweakey)
	st.Permute()
	*state = st.IS
}

// absorbAD runs the two-block-per-call associated-data phase shared by
// Seal and Open, returning the resulting accumulator state.
func absorbAD(key, nonce *[16]byte, ad []byte) (state [16]byte) {
	var lfsr mode.LFSR
	lfsr.Reset()

	dlen := len(ad)
	fullBlocks := dlen / 16
	rem := dlen % 16
	partial := dlen == 0 || rem > 0
	totBlocks := fullBlocks
	if partial {
		totBlocks++
	}
	halfBlocks := totBlocks / 2

	off := 0
	for i := 0; i < halfBlocks; i++ {
		off0 := off
		off1 := off + 16

		var left [16]byte
		copy(left[:], ad[off0:off0+16])
		mode.Rho(&state, &left)
		lfsr.Step()

		toRead := 0
		if off1 < dlen {
			toRead = min(16, dlen-off1)
		}
		right, _ := mode.Pad16(ad[off1 : off1+toRead])
		off = off1 + toRead

		tweakey := mode.Encode(key, &right, &lfsr, domainADPair)
		tbc(&state, &tweakey)

		lfsr.Step()
	}

	last, _ := mode.Pad16(ad[off:dlen])
	mode.Rho(&state, &last)
	if totBlocks > halfBlocks*2 {
		lfsr.Step()
	}

	domain := byte(domainADFull)
	if partial {
		domain = domainADPartial
	}
	tweakey := mode.Encode(key, nonce, &lfsr, domain)
	tbc(&state, &tweakey)

	return state
}

// Seal encrypts plaintext under key and nonce, authenticating ad
// alongside it, and returns the ciphertext (same length as plaintext)
// and a 16-byte authentication tag.
func Seal(key, nonce *[16]byte, ad, plaintext []byte) (ciphertext []byte, tag [16]byte) {
	state := absorbAD(key, nonce, ad)

	var lfsr mode.LFSR
	lfsr.Reset()

	ctlen := len(plaintext)
	fullBlocks := ctlen / 16
	rem := ctlen % 16
	partial := ctlen == 0 || rem > 0
	totBlocks := fullBlocks
	if partial {
		totBlocks++
	}

	ciphertext = make([]byte, ctlen)

	off := 0
	for i := 0; i < totBlocks-1; i++ {
		var m [16]byte
		copy(m[:], plaintext[off:off+16])
		c := mode.Rho(&state, &m)
		copy(ciphertext[off:off+16], c[:])

		lfsr.Step()
		tweakey := mode.Encode(key, nonce, &lfsr, domainMsg)
		tbc(&state, &tweakey)
		off += 16
	}

	last, n := mode.Pad16(plaintext[off:ctlen])
	c := mode.Rho(&state, &last)
	copy(ciphertext[off:off+n], c[:n])

	lfsr.Step()
	domain := byte(domainMsgPartial)
	if !partial {
		domain = domainMsgFull
	}
	tweakey := mode.Encode(key, nonce, &lfsr, domain)
	tbc(&state, &tweakey)

	var zero [16]byte
	tag = mode.Rho(&state, &zero)
	return ciphertext, tag
}

// Open verifies tag against key, nonce, ad, and ciphertext, and on
// success returns the recovered plaintext. On failure it returns a
// zeroed buffer of the correct length and ok=false.
func Open(key, nonce, tag *[16]byte, ad, ciphertext []byte) (plaintext []byte, ok bool) {
	state := absorbAD(key, nonce, ad)

	var lfsr mode.LFSR
	lfsr.Reset()

	ctlen := len(ciphertext)
	fullBlocks := ctlen / 16
	rem := ctlen % 16
	partial := ctlen == 0 || rem > 0
	totBlocks := fullBlocks
	if partial {
		totBlocks++
	}

	plaintext = make([]byte, ctlen)

	off := 0
	for i := 0; i < totBlocks-1; i++ {
		var c [16]byte
		copy(c[:], ciphertext[off:off+16])
		m := mode.RhoInv(&state, &c)
		copy(plaintext[off:off+16], m[:])

		lfsr.Step()
		tweakey := mode.Encode(key, nonce, &lfsr, domainMsg)
		tbc(&state, &tweakey)
		off += 16
	}

	// The trailing block may be a genuine partial block: only `toRead`
	// ciphertext bytes exist. To keep the running state identical to what
	// Seal produced (Seal's tag depends on this same continuous state
	// thread), snapshot G(state) over the bytes beyond toRead and fold it
	// into the padded block before advancing the state via RhoInv.
	toRead := ctlen - off
	gs := mode.G(&state)
	var statePrime [16]byte
	copy(statePrime[toRead:], gs[toRead:])

	last, _ := mode.Pad16(ciphertext[off:ctlen])
	for i := range last {
		last[i] ^= statePrime[i]
	}
	m := mode.RhoInv(&state, &last)
	copy(plaintext[off:off+toRead], m[:toRead])

	lfsr.Step()
	domain := byte(domainMsgPartial)
	if !partial {
		domain = domainMsgFull
	}
	tweakey := mode.Encode(key, nonce, &lfsr, domain)
	tbc(&state, &tweakey)

	var zero [16]byte
	gotTag := mode.Rho(&state, &zero)

	if subtle.ConstantTimeCompare(gotTag[:], tag[:]) != 1 {
		for i := range plaintext {
			plaintext[i] = 0
		}
		return plaintext, false
	}
	return plaintext, true
}
