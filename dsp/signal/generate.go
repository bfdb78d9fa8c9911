// Package signal generates deterministic raw-sample sequences that stand in
// for a physical sensor in tests, examples and the sensorcond simulator.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
)

// Generator creates deterministic raw-sample sequences from a shared
// stream configuration.
type Generator struct {
	cfg  core.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.StreamOption) *Generator {
	return &Generator{
		cfg:  core.ApplyStreamOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.StreamOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator stream configuration.
func (g *Generator) Config() core.StreamConfig {
	return g.cfg
}

// Constant returns samples copies of level.
func (g *Generator) Constant(level float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("constant samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	core.Fill(out, level)
	return out, nil
}

// Ramp generates a linear ramp from start to stop inclusive.
func (g *Generator) Ramp(start, stop float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	if samples == 1 {
		out[0] = start
		return out, nil
	}
	step := (stop - start) / float64(samples-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[samples-1] = stop
	return out, nil
}

// Sine generates a sine wave around zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %f]: %f", g.cfg.SampleRate/2, freqHz)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// GaussianNoise generates deterministic zero-mean normal noise.
func (g *Generator) GaussianNoise(stddev float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("noise stddev must be >= 0: %f", stddev)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.NormFloat64() * stddev
	}
	return out, nil
}
