package signal

import (
	"testing"

	"github.com/CastilloDelSol/GenericSensor/internal/testutil"
)

func TestSum(t *testing.T) {
	out, err := Sum([]float64{1, 2, 3}, []float64{10, 20, 30}, []float64{0.5, 0.5, 0.5})
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{11.5, 22.5, 33.5}, 1e-12)

	if _, err := Sum([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := Sum(nil); err == nil {
		t.Fatal("expected empty input error")
	}
}

func TestSumDoesNotModifyInput(t *testing.T) {
	a := []float64{1, 2}
	if _, err := Sum(a, []float64{1, 1}); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, a, []float64{1, 2}, 0)
}

func TestSpikes(t *testing.T) {
	out, err := Spikes([]float64{0, 0, 0, 0, 0, 0, 0}, 3, 1, 50)
	if err != nil {
		t.Fatalf("Spikes() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 50, 0, 0, 50, 0, 0}, 0)

	if _, err := Spikes(out, 0, 0, 1); err == nil {
		t.Fatal("expected period error")
	}
	if _, err := Spikes(out, 1, -1, 1); err == nil {
		t.Fatal("expected offset error")
	}
}

func TestQuantize(t *testing.T) {
	out, err := Quantize([]float64{0.12, 0.26, -0.37}, 0.25)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0.25, -0.25}, 1e-15)

	if _, err := Quantize(out, 0); err == nil {
		t.Fatal("expected step error")
	}
}

func TestClip(t *testing.T) {
	out, err := Clip([]float64{-2, -0.5, 0.25, 2}, -1, 1)
	if err != nil {
		t.Fatalf("Clip() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{-1, -0.5, 0.25, 1}, 0)

	if _, err := Clip(out, 1, -1); err == nil {
		t.Fatal("expected bounds error")
	}
}

func TestScale(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Scale([]float64{1, -2}, 3, 0.5), []float64{3.5, -5.5}, 1e-15)
}
