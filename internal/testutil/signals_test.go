package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1, 4, 2, 5)
	RequireSliceNearlyEqual(t, s, []float64{0, 2, 0, -2, 0}, 1e-12)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireWithin(t, a, -0.5, 0.5)

	c := DeterministicNoise(43, 0.5, 64)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoisyLevel(t *testing.T) {
	x := NoisyLevel(100, 0.1, 7, 256)
	RequireWithin(t, x, 99.9, 100.1)

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	if math.Abs(mean-100) > 0.02 {
		t.Fatalf("mean = %v, want near 100", mean)
	}
}

func TestRampOffsetDC(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(-1, 0.5, 4), []float64{-1, -0.5, 0, 0.5}, 0)
	RequireSliceNearlyEqual(t, Offset([]float64{1, 2}, 3), []float64{4, 5}, 0)
	RequireSliceNearlyEqual(t, DC(2.5, 3), []float64{2.5, 2.5, 2.5}, 0)
	RequireSliceNearlyEqual(t, Ones(2), []float64{1, 1}, 0)
}
