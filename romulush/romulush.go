// Package romulush implements Romulus-H, the 256-bit double-block-length
// hash function of the Romulus family.
package romulush

import "github.com/itzmeanjan/romulus/skinny"

// Size is the length in bytes of a Romulus-H digest.
const Size = 32

// compress is Romulus-H's double-block-length compression function: it
// folds a 32-byte message block into the 32-byte chaining value (left,
// right) using two Skinny-128-384+ calls.
func compress(left, right *[16]byte, msg *[32]byte) {
	var key [48]byte
	copy(key[0:16], right[:])
	copy(key[16:48], msg[:])

	var st skinny.State
	st.Init(left, &key)
	st.Permute()

	var leftPrime [16]byte
	for i := range leftPrime {
		leftPrime[i] = st.IS[i] ^ left[i]
	}

	left[0] ^= 0x01

	st.Init(left, &key)
	st.Permute()

	for i := range right {
		right[i] = st.IS[i] ^ left[i]
	}

	*left = leftPrime
}

// Sum computes the 32-byte Romulus-H digest of msg. The driver always
// processes one more 32-byte block than the message's full-block count,
// even when len(msg) is an exact multiple of 32 — that trailing block
// carries only the padding-length marker in that case, but it still runs
// through compress with the left half's second toggle bit set.
func Sum(msg []byte) [32]byte {
	var left, right [16]byte

	blocks := len(msg) / 32
	rem := len(msg) % 32

	for i := 0; i < blocks; i++ {
		var blk [32]byte
		copy(blk[:], msg[i*32:i*32+32])
		compress(&left, &right, &blk)
	}

	var last [32]byte
	copy(last[:], msg[blocks*32:blocks*32+rem])
	last[31] = byte(rem)

	left[0] ^= 0x02
	compress(&left, &right, &last)

	var dig [32]byte
	copy(dig[0:16], left[:])
	copy(dig[16:32], right[:])
	return dig
}
