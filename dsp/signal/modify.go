package signal

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Sum adds equal-length sequences sample by sample into a new slice.
func Sum(first []float64, rest ...[]float64) ([]float64, error) {
	if len(first) == 0 {
		return nil, fmt.Errorf("sum input must not be empty")
	}
	out := make([]float64, len(first))
	copy(out, first)
	for i, s := range rest {
		if len(s) != len(out) {
			return nil, fmt.Errorf("sum input %d has length %d, want %d", i+1, len(s), len(out))
		}
		vecmath.AddBlockInPlace(out, s)
	}
	return out, nil
}

// Spikes returns a copy of data with height added to every period-th
// sample, starting at offset. It models isolated outliers such as
// contact bounce or EMI hits.
func Spikes(data []float64, period, offset int, height float64) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("spike period must be > 0: %d", period)
	}
	if offset < 0 {
		return nil, fmt.Errorf("spike offset must be >= 0: %d", offset)
	}
	out := make([]float64, len(data))
	copy(out, data)
	for i := offset; i < len(out); i += period {
		out[i] += height
	}
	return out, nil
}

// Quantize rounds every sample to a multiple of lsb, the way an ADC
// with that step size would report it.
func Quantize(data []float64, lsb float64) ([]float64, error) {
	if !(lsb > 0) {
		return nil, fmt.Errorf("quantize step must be > 0: %f", lsb)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = math.Round(v/lsb) * lsb
	}
	return out, nil
}

// Clip limits samples to [lo, hi] and returns a new slice.
func Clip(data []float64, lo, hi float64) ([]float64, error) {
	if lo > hi {
		return nil, fmt.Errorf("clip bounds invalid: lo=%f > hi=%f", lo, hi)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = min(max(v, lo), hi)
	}
	return out, nil
}

// Scale returns a*data + b as a new slice.
func Scale(data []float64, a, b float64) []float64 {
	out := make([]float64, len(data))
	vecmath.ScaleBlock(out, data, a)
	if b != 0 {
		for i := range out {
			out[i] += b
		}
	}
	return out
}
