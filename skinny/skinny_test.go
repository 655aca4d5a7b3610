package skinny

import "testing"

// TestPermuteKAT reproduces the known-answer test given at the end of
// section 2.3 of the Romulus specification.
func TestPermuteKAT(t *testing.T) {
	block := [16]byte{
		163, 153, 75, 102, 173, 133, 163, 69,
		159, 68, 233, 43, 8, 245, 80, 203,
	}
	tweakey := [48]byte{
		223, 136, 149, 72, 207, 199, 234, 82, 210, 150, 51, 147,
		1, 121, 116, 73, 171, 88, 138, 52, 164, 127, 26, 178,
		223, 233, 200, 41, 63, 190, 169, 165, 171, 26, 250, 194,
		97, 16, 18, 205, 140, 239, 149, 38, 24, 195, 235, 232,
	}
	want := [16]byte{
		255, 56, 209, 210, 76, 134, 76, 67,
		82, 168, 83, 105, 15, 227, 110, 94,
	}

	var s State
	s.Init(&block, &tweakey)
	s.Permute()

	if s.IS != want {
		t.Fatalf("Permute() = %v, want %v", s.IS, want)
	}
}

func TestShiftRows(t *testing.T) {
	var s State
	for i := range s.IS {
		s.IS[i] = byte(i)
	}
	s.shiftRows()
	want := [16]byte{
		0, 1, 2, 3,
		7, 4, 5, 6,
		10, 11, 8, 9,
		13, 14, 15, 12,
	}
	if s.IS != want {
		t.Fatalf("shiftRows() = %v, want %v", s.IS, want)
	}
}
