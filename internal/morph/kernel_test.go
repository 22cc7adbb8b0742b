package morph

import (
	"math"
	"testing"
)

func TestDiscOffsetsCircular(t *testing.T) {
	offsets := DiscOffsets(2)

	has := func(dx, dy int) bool {
		for _, o := range offsets {
			if o.DX == dx && o.DY == dy {
				return true
			}
		}
		return false
	}

	if !has(0, 0) || !has(2, 0) || !has(0, -2) || !has(1, 1) {
		t.Error("expected taps within Euclidean distance 2")
	}
	// Square corners are outside the circle
	if has(2, 2) || has(-2, 2) {
		t.Error("corner taps at distance sqrt(8) must be excluded")
	}
}

func TestDiscOffsetsIdentityOnNonPositiveRadius(t *testing.T) {
	offsets := DiscOffsets(0)
	if len(offsets) != 1 || offsets[0] != (Offset{0, 0}) {
		t.Errorf("expected only the center tap, got %v", offsets)
	}
}

func TestGaussianDiscWeights(t *testing.T) {
	k := NewGaussianDisc(3)
	if len(k.Offsets) != len(k.Weights) {
		t.Fatal("offsets and weights must be parallel")
	}

	for i, o := range k.Offsets {
		d2 := float64(o.DX*o.DX + o.DY*o.DY)
		want := math.Exp(-d2 / (2 * 3 * 3))
		if math.Abs(k.Weights[i]-want) > 1e-12 {
			t.Fatalf("tap (%d,%d): got weight %g, want %g", o.DX, o.DY, k.Weights[i], want)
		}
		if o.DX == 0 && o.DY == 0 && k.Weights[i] != 1 {
			t.Errorf("center tap weight should be 1, got %g", k.Weights[i])
		}
	}
}

func TestKernelCache(t *testing.T) {
	a := CachedDiscOffsets(2.5)
	b := CachedDiscOffsets(2.5)
	if len(a) != len(b) {
		t.Error("cached kernels should be identical")
	}

	ga := CachedGaussianDisc(1.5)
	gb := CachedGaussianDisc(1.5)
	if ga != gb {
		t.Error("cached Gaussian kernel should be reused")
	}
}
