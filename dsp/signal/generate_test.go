package signal

import (
	"math"
	"testing"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
	"github.com/CastilloDelSol/GenericSensor/internal/testutil"
)

func TestGeneratorOptions(t *testing.T) {
	g := NewGeneratorWithOptions([]core.StreamOption{core.WithSampleRate(50)}, WithSeed(9), nil)
	if g.Config().SampleRate != 50 {
		t.Fatalf("sample rate = %v, want 50", g.Config().SampleRate)
	}
	if g.seed != 9 {
		t.Fatalf("seed = %d, want 9", g.seed)
	}

	if def := NewGenerator(); def.Config() != core.DefaultStreamConfig() {
		t.Fatalf("default config = %#v", def.Config())
	}
}

func TestConstant(t *testing.T) {
	g := NewGenerator()
	out, err := g.Constant(109.73, 4)
	if err != nil {
		t.Fatalf("Constant() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{109.73, 109.73, 109.73, 109.73}, 0)
}

func TestRamp(t *testing.T) {
	g := NewGenerator()
	out, err := g.Ramp(-200, 850, 5)
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{-200, 62.5, 325, 587.5, 850}, 1e-12)

	one, err := g.Ramp(3, 9, 1)
	if err != nil || len(one) != 1 || one[0] != 3 {
		t.Fatalf("Ramp(3, 9, 1) = %v, %v", one, err)
	}
}

func TestSineQuarterRate(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8))
	out, err := g.Sine(2, 1.5, 4)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 1.5, 0, -1.5}, 1e-12)
}

func TestWhiteNoiseBoundsAndDeterminism(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(42))
	a, err := g.WhiteNoise(0.25, 1000)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	for i, v := range a {
		if math.Abs(v) > 0.25 {
			t.Fatalf("a[%d]=%v exceeds amplitude", i, v)
		}
	}

	b, _ := g.WhiteNoise(0.25, 1000)
	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}

func TestGaussianNoiseMoments(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(3))
	out, err := g.GaussianNoise(2, 20000)
	if err != nil {
		t.Fatalf("GaussianNoise() error = %v", err)
	}

	var sum, sumSq float64
	for _, v := range out {
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(out))
	std := math.Sqrt(sumSq/float64(len(out)) - mean*mean)

	if math.Abs(mean) > 0.1 {
		t.Fatalf("mean = %v, want near 0", mean)
	}
	if math.Abs(std-2) > 0.1 {
		t.Fatalf("std = %v, want near 2", std)
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(10))
	tests := []struct {
		name string
		fn   func() error
	}{
		{"constant samples", func() error { _, err := g.Constant(1, 0); return err }},
		{"ramp samples", func() error { _, err := g.Ramp(0, 1, 0); return err }},
		{"sine samples", func() error { _, err := g.Sine(1, 1, -1); return err }},
		{"sine above nyquist", func() error { _, err := g.Sine(6, 1, 8); return err }},
		{"noise amplitude", func() error { _, err := g.WhiteNoise(-1, 8); return err }},
		{"gaussian stddev", func() error { _, err := g.GaussianNoise(-1, 8); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.fn() == nil {
				t.Fatal("expected error")
			}
		})
	}
}
