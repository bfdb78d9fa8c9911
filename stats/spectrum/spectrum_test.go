package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/CastilloDelSol/GenericSensor/internal/testutil"
)

func offsetSine(amplitude, offset, freq, rate float64, n int) []float64 {
	return testutil.Offset(testutil.DeterministicSine(freq, rate, amplitude, n), offset)
}

func TestAnalyzeSine(t *testing.T) {
	r, err := Analyze(offsetSine(3, 10, 2, 32, 64), 32)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if r.FFTSize != 64 || len(r.Magnitude) != 33 {
		t.Fatalf("FFTSize=%d bins=%d, want 64 and 33", r.FFTSize, len(r.Magnitude))
	}
	if r.Resolution() != 0.5 {
		t.Fatalf("Resolution = %v, want 0.5", r.Resolution())
	}
	if r.Dominant != 2 {
		t.Fatalf("Dominant = %v, want 2", r.Dominant)
	}
	if math.Abs(r.DominantMag-3) > 0.01 {
		t.Fatalf("DominantMag = %v, want 3", r.DominantMag)
	}
	if math.Abs(r.Centroid-2) > 0.05 {
		t.Fatalf("Centroid = %v, want near 2", r.Centroid)
	}
	if r.Rolloff < 2 || r.Rolloff > 2.5 {
		t.Fatalf("Rolloff = %v, want in [2, 2.5]", r.Rolloff)
	}
	if r.Flatness > 0.1 {
		t.Fatalf("Flatness = %v, want tonal", r.Flatness)
	}
	if r.Magnitude[0] > 1e-9 {
		t.Fatalf("DC bin = %v, want removed", r.Magnitude[0])
	}
}

func TestAnalyzeRemovesWeightedMean(t *testing.T) {
	// A partial cycle leaves a tapered residue after a plain mean.
	x := offsetSine(2, 5, 1.3, 10, 40)

	r, err := Analyze(x, 10)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if r.Magnitude[0] > 1e-9 {
		t.Fatalf("DC bin = %v, want removed", r.Magnitude[0])
	}

	w := hann(len(x))
	removeMean(x, w)
	sum := 0.0
	for i := range x {
		sum += x[i] * w[i]
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("weighted sum after removeMean = %v, want 0", sum)
	}
}

func TestAnalyzePadsToPowerOfTwo(t *testing.T) {
	r, err := Analyze(offsetSine(1, 0, 2, 32, 50), 32)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if r.FFTSize != 64 {
		t.Fatalf("FFTSize = %d, want 64", r.FFTSize)
	}
	if r.Dominant != 2 {
		t.Fatalf("Dominant = %v, want 2", r.Dominant)
	}
}

func TestAnalyzeNoiseIsFlat(t *testing.T) {
	noise, err := Analyze(testutil.DeterministicNoise(1, 1, 256), 10)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	tone, err := Analyze(offsetSine(1, 0, 1, 10, 256), 10)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if noise.Flatness < 0.5 {
		t.Fatalf("noise Flatness = %v, want > 0.5", noise.Flatness)
	}
	if noise.Flatness <= tone.Flatness {
		t.Fatalf("noise flatness %v not above tone flatness %v", noise.Flatness, tone.Flatness)
	}
}

func TestAnalyzeConstant(t *testing.T) {
	r, err := Analyze(testutil.DC(21.5, 16), 4)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for i, v := range r.Magnitude {
		if v > 1e-12 {
			t.Fatalf("bin %d = %v, want 0", i, v)
		}
	}
	if r.Centroid != 0 || r.Flatness != 0 {
		t.Fatalf("descriptors of silence = %+v", r)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze([]float64{1, 2, 3}, 10); !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Analyze(testutil.Ones(8), rate); !errors.Is(err, ErrSampleRate) {
			t.Fatalf("rate %v: err = %v, want ErrSampleRate", rate, err)
		}
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ n, want int }{{1, 1}, {4, 4}, {5, 8}, {64, 64}, {65, 128}}
	for _, tt := range tests {
		if got := nextPow2(tt.n); got != tt.want {
			t.Fatalf("nextPow2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
