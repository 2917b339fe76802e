package window_test

import (
	"math"
	"testing"

	"github.com/cwbudde/spectrice/dsp/window"
)

func TestMinHops(t *testing.T) {
	cases := []struct {
		t    window.Type
		want int
	}{
		{window.TypeSine, 2},
		{window.TypeHann, 3},
		{window.TypeHamming, 3},
		{window.TypeBlackman, 5},
		{window.TypeNuttall, 7},
	}
	for _, c := range cases {
		if got := window.MinHops(c.t); got != c.want {
			t.Errorf("MinHops(%s) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestHalfRejectsInsufficientHops(t *testing.T) {
	cases := []struct {
		t    window.Type
		hops int
	}{
		{window.TypeSine, 1},
		{window.TypeHann, 2},
		{window.TypeHamming, 2},
		{window.TypeBlackman, 4},
		{window.TypeNuttall, 6},
	}
	for _, c := range cases {
		if _, err := window.Half(c.t, 32, c.hops); err == nil {
			t.Errorf("Half(%s, 32, %d): expected error", c.t, c.hops)
		}
	}
}

func TestHalfRejectsOddBlockSize(t *testing.T) {
	if _, err := window.Half(window.TypeSine, 33, 2); err == nil {
		t.Error("expected error for odd block size")
	}
}

// TestNormalization checks spec.md's invariant 2: for every window type
// and every valid nHops, Sum(W[n]^2) * nHops == 1 within 1e-6.
func TestNormalization(t *testing.T) {
	types := []window.Type{window.TypeSine, window.TypeHann, window.TypeHamming, window.TypeBlackman, window.TypeNuttall}
	sizes := []int{16, 32, 64, 128, 256}

	for _, typ := range types {
		for _, n := range sizes {
			for hops := window.MinHops(typ); hops <= 16; hops++ {
				w, err := window.Half(typ, n, hops)
				if err != nil {
					t.Fatalf("Half(%s, %d, %d): %v", typ, n, hops, err)
				}

				sum := 0.0
				for _, v := range w {
					sum += v * v
				}
				sum *= float64(hops)

				if math.Abs(sum-1) > 1e-6 {
					t.Errorf("Half(%s, %d, %d): Sum(W^2)*hops = %v, want 1", typ, n, hops, sum)
				}
			}
		}
	}
}

func TestMirrorSymmetry(t *testing.T) {
	half, err := window.Half(window.TypeBlackman, 16, 8)
	if err != nil {
		t.Fatalf("Half: %v", err)
	}

	full := window.Mirror(half)
	if len(full) != 16 {
		t.Fatalf("Mirror length = %d, want 16", len(full))
	}
	for n := 0; n < 8; n++ {
		if full[n] != half[n] {
			t.Errorf("full[%d] = %v, want %v", n, full[n], half[n])
		}
		if full[15-n] != half[n] {
			t.Errorf("full[%d] = %v, want %v", 15-n, full[15-n], half[n])
		}
	}
}

func TestParseType(t *testing.T) {
	names := map[string]window.Type{
		"sine":     window.TypeSine,
		"hann":     window.TypeHann,
		"hamming":  window.TypeHamming,
		"blackman": window.TypeBlackman,
		"nuttall":  window.TypeNuttall,
	}
	for name, want := range names {
		got, err := window.ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseType(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := window.ParseType("bogus"); err == nil {
		t.Error("ParseType(\"bogus\"): expected error")
	}
}
