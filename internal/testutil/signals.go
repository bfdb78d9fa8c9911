// Package testutil holds tolerance assertions and deterministic sample
// sequences shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of amplitude*sin(2π f n / rate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] from
// a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoisyLevel returns a constant reading with deterministic noise on top,
// the typical raw output of a sensor at rest.
func NoisyLevel(level, amplitude float64, seed int64, length int) []float64 {
	return Offset(DeterministicNoise(seed, amplitude, length), level)
}

// Ramp returns start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Offset adds v to every element of data in place and returns it.
func Offset(data []float64, v float64) []float64 {
	for i := range data {
		data[i] += v
	}
	return data
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns n ones.
func Ones(n int) []float64 { return DC(1, n) }
