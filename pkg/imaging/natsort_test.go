package imaging

import (
	"testing"
)

// TestSortNatural verifies that numeric runs in file names compare
// numerically rather than lexically.
func TestSortNatural(t *testing.T) {
	names := []string{"img10.png", "img2.png", "img1.png"}
	SortNatural(names)

	want := []string{"img1.png", "img2.png", "img10.png"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q (full order %v)", i, names[i], want[i], names)
		}
	}
}

// TestNaturalLess exercises run-by-run comparison cases.
func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"img2.png", "img10.png", true},
		{"img10.png", "img2.png", false},
		{"a2b", "a2c", true},
		{"slice9", "slice10", true},
		{"z23a", "z23b", true},
		{"frame007", "frame7x", true}, // numerically equal runs, decided by the tail
		{"abc", "abcd", true},         // shared prefix, shorter first
		{"10", "a", true},             // digit run sorts before non-digit run
		{"img2.png", "img2.png", false},
	}

	for _, c := range cases {
		if got := NaturalLess(c.a, c.b); got != c.want {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
