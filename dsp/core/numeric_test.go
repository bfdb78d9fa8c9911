package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		idx, n, want int
	}{
		{idx: 3, n: 8, want: 3},
		{idx: -2, n: 8, want: 0},
		{idx: 8, n: 8, want: 7},
		{idx: 200, n: 16, want: 15},
		{idx: 1, n: 0, want: 0},
	}

	for _, tt := range tests {
		if got := ClampIndex(tt.idx, tt.n); got != tt.want {
			t.Fatalf("ClampIndex(%d, %d) = %d, want %d", tt.idx, tt.n, got, tt.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestMapRange(t *testing.T) {
	if got := MapRange(5, 0, 10, 0.1, 1); math.Abs(got-0.55) > 1e-12 {
		t.Fatalf("MapRange mid = %v, want 0.55", got)
	}
	if got := MapRange(20, 0, 10, 0.1, 1); got != 1 {
		t.Fatalf("MapRange above = %v, want 1", got)
	}
	if got := MapRange(-3, 0, 10, 0.1, 1); got != 0.1 {
		t.Fatalf("MapRange below = %v, want 0.1", got)
	}
	if got := MapRange(3, 0, 0, 0.1, 1); got != 1 {
		t.Fatalf("MapRange zero width = %v, want 1", got)
	}
}

func TestSmallestPositive(t *testing.T) {
	if SmallestPositive <= 0 {
		t.Fatalf("SmallestPositive = %v, want > 0", SmallestPositive)
	}
	if SmallestPositive/2 != 0 {
		t.Fatal("expected no float64 between zero and SmallestPositive")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite misclassified input")
	}
}
