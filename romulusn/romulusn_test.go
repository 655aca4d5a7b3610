package romulusn

import (
	"bytes"
	"testing"

	"github.com/dchest/siphash"
)

func fill(dst []byte, seed uint64) {
	for i := range dst {
		dst[i] = byte(siphash.Hash(seed, seed^0x9e3779b97f4a7c15, []byte{byte(i)}))
	}
}

func TestRoundTrip(t *testing.T) {
	var key, nonce [16]byte
	fill(key[:], 1)
	fill(nonce[:], 2)

	lens := []int{0, 1, 15, 16, 17, 31, 32, 33, 47, 48, 63, 100}
	for _, adLen := range lens {
		for _, ptLen := range lens {
			ad := make([]byte, adLen)
			pt := make([]byte, ptLen)
			fill(ad, uint64(adLen)+3)
			fill(pt, uint64(ptLen)+5)

			ct, tag := Seal(&key, &nonce, ad, pt)
			if len(ct) != ptLen {
				t.Fatalf("ad=%d pt=%d: ciphertext length = %d, want %d", adLen, ptLen, len(ct), ptLen)
			}

			got, ok := Open(&key, &nonce, &tag, ad, ct)
			if !ok {
				t.Fatalf("ad=%d pt=%d: Open rejected a genuine ciphertext", adLen, ptLen)
			}
			if !bytes.Equal(got, pt) {
				t.Fatalf("ad=%d pt=%d: recovered plaintext mismatch", adLen, ptLen)
			}
		}
	}
}

func TestTamperedTagRejected(t *testing.T) {
	var key, nonce [16]byte
	fill(key[:], 10)
	fill(nonce[:], 20)

	ad := []byte("associated data")
	pt := []byte("secret message, not block aligned")

	ct, tag := Seal(&key, &nonce, ad, pt)
	tag[0] ^= 1

	got, ok := Open(&key, &nonce, &tag, ad, ct)
	if ok {
		t.Fatalf("Open accepted a tampered tag")
	}
	for _, b := range got {
		if b != 0 {
			t.Fatalf("plaintext buffer not zeroed on failure: %v", got)
		}
	}
}

func TestTamperedCiphertextRejected(t *testing.T) {
	var key, nonce [16]byte
	fill(key[:], 11)
	fill(nonce[:], 21)

	ad := []byte("AD")
	pt := []byte("0123456789abcdef0123456789abcdef")

	ct, tag := Seal(&key, &nonce, ad, pt)
	ct[len(ct)-1] ^= 1

	if _, ok := Open(&key, &nonce, &tag, ad, ct); ok {
		t.Fatalf("Open accepted tampered ciphertext")
	}
}

func TestTamperedADRejected(t *testing.T) {
	var key, nonce [16]byte
	fill(key[:], 12)
	fill(nonce[:], 22)

	ad := []byte("associated data block")
	pt := []byte("message")

	ct, tag := Seal(&key, &nonce, ad, pt)
	tamperedAD := append([]byte(nil), ad...)
	tamperedAD[0] ^= 1

	if _, ok := Open(&key, &nonce, &tag, tamperedAD, ct); ok {
		t.Fatalf("Open accepted tampered associated data")
	}
}

func TestEmptyInputsWellDefined(t *testing.T) {
	var key, nonce [16]byte
	fill(key[:], 30)
	fill(nonce[:], 31)

	ct, tag := Seal(&key, &nonce, nil, nil)
	if len(ct) != 0 {
		t.Fatalf("empty-input ciphertext length = %d, want 0", len(ct))
	}

	pt, ok := Open(&key, &nonce, &tag, nil, ct)
	if !ok || len(pt) != 0 {
		t.Fatalf("empty-input round trip failed: ok=%v len=%d", ok, len(pt))
	}
}

func TestDifferentNoncesProduceDifferentTags(t *testing.T) {
	var key, n1, n2 [16]byte
	fill(key[:], 40)
	fill(n1[:], 41)
	fill(n2[:], 42)

	ad := []byte("ad")
	pt := []byte("identical plaintext under two nonces")

	_, tag1 := Seal(&key, &n1, ad, pt)
	_, tag2 := Seal(&key, &n2, ad, pt)
	if tag1 == tag2 {
		t.Fatalf("distinct nonces produced identical tags")
	}
}
