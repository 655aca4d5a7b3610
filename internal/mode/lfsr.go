// Package mode collects the shared state-update primitives (the LFSR
// counter, rho/rho-inverse, and tweakey encoding) that every Romulus AEAD
// mode builds its absorption/encryption loop from. None of this is public
// API; it exists so romulusn, romulusm, and romulust do not each restate
// the same bit-twiddling.
package mode

// LFSR is the 56-bit counter used to derive a fresh per-block tweak in
// every Romulus AEAD mode. It is held across 7 bytes, and Step treats
// byte 0 as the most significant.
type LFSR [7]byte

// Reset sets the counter back to its initial value, {1, 0, 0, 0, 0, 0, 0}.
func (l *LFSR) Reset() {
	*l = LFSR{1, 0, 0, 0, 0, 0, 0}
}

// Step advances the counter by multiplying by x modulo the primitive
// polynomial x^56 + x^7 + x^4 + x^2 + 1.
func (l *LFSR) Step() {
	msb := l[0] >> 7
	for i := 0; i < 6; i++ {
		l[i] = l[i]<<1 | l[i+1]>>7
	}
	l[6] <<= 1
	l[6] ^= msb<<7 | msb<<4 | msb<<2 | msb
}
