package mode

// Encode packs a 16-byte key, 16-byte tweak, the 7-byte LFSR counter, and a
// one-byte domain separator into the 48-byte tweakey Skinny-128-384+
// expects: counter(7) || domain(1) || zero(8) || tweak(16) || key(16).
func Encode(key, tweak *[16]byte, lfsr *LFSR, domain byte) (tweakey [48]byte) {
	copy(tweakey[0:7], lfsr[:])
	tweakey[7] = domain
	copy(tweakey[16:32], tweak[:])
	copy(tweakey[32:48], key[:])
	return tweakey
}

// Pad16 copies src (which must hold at most 16 bytes) into a zero-padded
// 16-byte block and, when src is a genuine partial block (len(src) < 16),
// stamps the trailing byte with the byte count actually copied. It
// reports that count. Romulus-N's AD and message blocks and Romulus-M's
// final message block go through this routine; Romulus-M's authentication
// blocks and Romulus-T's framing use their own padding helpers.
func Pad16(src []byte) (blk [16]byte, n int) {
	n = len(src)
	copy(blk[:], src)
	if n < 16 {
		blk[15] = byte(n)
	}
	return blk, n
}
