// Package romulusm implements Romulus-M, the nonce-misuse-resistant
// authenticated encryption mode of the Romulus family. Unlike Romulus-N,
// Romulus-M absorbs associated data and plaintext together into a single
// SIV-style tag before any ciphertext is produced, so repeating a nonce
// leaks no more than whether two (AD, plaintext) pairs were identical.
package romulusm

import (
	"crypto/subtle"

	"github.com/itzmeanjan/romulus/internal/mode"
	"github.com/itzmeanjan/romulus/skinny"
)

// TagSize is the length in bytes of a Romulus-M authentication tag.
const TagSize = 16

func tbc(state *[16]byte, tweakey *[48]byte) {
	var st skinny.State
	st.Init(state, tweakey)
	st.Permute()
	*state = st.IS
}

// getAuthBlock extracts the blk_idx-th 16-byte block of the logical
// stream pad16(ad) || pad16(text), where each of ad and text is
// end-padded to a 16-byte boundary (and a wholly empty input still
// contributes one all-zero, length-marked block).
func getAuthBlock(ad, text []byte, blkIdx int) (blk [16]byte) {
	dlen, ctlen := len(ad), len(text)
	tmp0, tmp1 := dlen&15, ctlen&15

	flg0 := dlen == 0 || tmp0 > 0
	flg1 := ctlen == 0 || tmp1 > 0

	paddedDlen := dlen
	if flg0 {
		paddedDlen += 16 - tmp0
	}
	paddedCtlen := ctlen
	if flg1 {
		paddedCtlen += 16 - tmp1
	}
	paddedAuthLen := paddedDlen + paddedCtlen

	off := blkIdx * 16

	if off < paddedDlen {
		read := min(16, dlen-off)
		copy(blk[:], ad[off:off+read])
		if read < 16 {
			blk[15] = byte(read)
		}
	}
	if off >= paddedDlen && off < paddedAuthLen {
		ctoff := off - paddedDlen
		read := min(16, ctlen-ctoff)
		copy(blk[:], text[ctoff:ctoff+read])
		if read < 16 {
			blk[15] = byte(read)
		}
	}
	return blk
}

// absorb runs the interleaved AD/plaintext authentication pass shared by
// Seal and the tag-rederivation half of Open, returning the 16-byte tag.
func absorb(key, nonce *[16]byte, ad, text []byte) (tag [16]byte) {
	var state [16]byte
	var lfsr mode.LFSR
	lfsr.Reset()

	dlen, ctlen := len(ad), len(text)
	adBlocks, ctBlocks := dlen/16, ctlen/16
	adRem, ctRem := dlen%16, ctlen%16

	flg0 := dlen == 0 || adRem > 0
	flg1 := ctlen == 0 || ctRem > 0

	totAD := adBlocks
	if flg0 {
		totAD++
	}
	totCT := ctBlocks
	if flg1 {
		totCT++
	}

	w := byte(48)
	if flg0 {
		w ^= 2
	}
	if flg1 {
		w ^= 1
	}
	if totAD%2 == 0 {
		w ^= 8
	}
	if totCT%2 == 0 {
		w ^= 4
	}

	totBlocks := totAD + totCT
	halfBlocks := totBlocks / 2
	halfAD := totAD / 2

	x := byte(40)
	for i := 0; i < halfBlocks; i++ {
		blk := getAuthBlock(ad, text, i*2)
		mode.Rho(&state, &blk)
		lfsr.Step()

		if i == halfAD {
			x ^= 4
		}

		blk2 := getAuthBlock(ad, text, i*2+1)
		tweakey := mode.Encode(key, &blk2, &lfsr, x)
		tbc(&state, &tweakey)
		lfsr.Step()
	}

	oddAD := totAD%2 == 1
	oddCT := totCT%2 == 1
	var final [16]byte
	if oddAD != oddCT {
		final = getAuthBlock(ad, text, totBlocks-1)
	}
	mode.Rho(&state, &final)
	if totBlocks > halfBlocks*2 {
		lfsr.Step()
	}

	tweakey := mode.Encode(key, nonce, &lfsr, w)
	tbc(&state, &tweakey)

	var zero [16]byte
	return mode.Rho(&state, &zero)
}

// Seal computes the Romulus-M tag over (ad, plaintext), then uses that
// tag to seed a keystream that encrypts plaintext. It returns the
// ciphertext (same length as plaintext) and the 16-byte tag.
func Seal(key, nonce *[16]byte, ad, plaintext []byte) (ciphertext []byte, tag [16]byte) {
	tag = absorb(key, nonce, ad, plaintext)

	ctlen := len(plaintext)
	ciphertext = make([]byte, ctlen)
	if ctlen == 0 {
		return ciphertext, tag
	}

	state := tag
	var lfsr mode.LFSR
	lfsr.Reset()

	blocks := ctlen / 16
	rem := ctlen % 16
	partial := ctlen == 0 || rem > 0
	totBlocks := blocks
	if partial {
		totBlocks++
	}

	off := 0
	for i := 0; i < totBlocks-1; i++ {
		tweakey := mode.Encode(key, nonce, &lfsr, 36)
		tbc(&state, &tweakey)

		var m [16]byte
		copy(m[:], plaintext[off:off+16])
		c := mode.Rho(&state, &m)
		copy(ciphertext[off:off+16], c[:])

		lfsr.Step()
		off += 16
	}

	last, n := mode.Pad16(plaintext[off:ctlen])
	tweakey := mode.Encode(key, nonce, &lfsr, 36)
	tbc(&state, &tweakey)
	enc := mode.Rho(&state, &last)
	copy(ciphertext[off:off+n], enc[:n])

	return ciphertext, tag
}

// Open decrypts ciphertext under key and nonce using the supplied tag as
// the keystream seed, then independently re-derives the tag from the
// recovered plaintext and ad; it only returns plaintext if that
// re-derived tag matches the one supplied.
func Open(key, nonce, tag *[16]byte, ad, ciphertext []byte) (plaintext []byte, ok bool) {
	ctlen := len(ciphertext)
	plaintext = make([]byte, ctlen)

	if ctlen > 0 {
		state := *tag
		var lfsr mode.LFSR
		lfsr.Reset()

		blocks := ctlen / 16
		rem := ctlen % 16
		partial := ctlen == 0 || rem > 0
		totBlocks := blocks
		if partial {
			totBlocks++
		}

		off := 0
		for i := 0; i < totBlocks-1; i++ {
			tweakey := mode.Encode(key, nonce, &lfsr, 36)
			tbc(&state, &tweakey)

			var c [16]byte
			copy(c[:], ciphertext[off:off+16])
			m := mode.RhoInv(&state, &c)
			copy(plaintext[off:off+16], m[:])

			lfsr.Step()
			off += 16
		}

		read := ctlen - off
		last, _ := mode.Pad16(ciphertext[off:ctlen])
		tweakey := mode.Encode(key, nonce, &lfsr, 36)
		tbc(&state, &tweakey)
		enc := mode.RhoInv(&state, &last)
		copy(plaintext[off:off+read], enc[:read])
	}

	gotTag := absorb(key, nonce, ad, plaintext)

	if subtle.ConstantTimeCompare(gotTag[:], tag[:]) != 1 {
		for i := range plaintext {
			plaintext[i] = 0
		}
		return plaintext, false
	}
	return plaintext, true
}
