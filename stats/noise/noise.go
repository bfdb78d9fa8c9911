// Package noise measures the time-domain noise of a recorded stage
// history and how much of it each pipeline stage removes.
package noise

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of one stage series.
type Stats struct {
	Length     int
	Mean       float64
	StdDev     float64 // population standard deviation
	Variance   float64
	RMS        float64
	Min        float64
	MinPos     int
	Max        float64
	MaxPos     int
	PeakToPeak float64 // max - min
	Drift      float64 // least-squares slope, units per sample
}

// Calculate computes the statistics of series in a single pass using
// Welford's online algorithm, plus a least-squares drift estimate.
func Calculate(series []float64) Stats {
	var acc Accumulator
	acc.Update(series)

	s := acc.Result()
	s.Drift = Drift(series)

	return s
}

// Drift returns the least-squares slope of series against its sample
// index. Fewer than two samples have no drift.
func Drift(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}

	idx := make([]float64, len(series))
	floats.Span(idx, 0, float64(len(series)-1))

	_, beta := stat.LinearRegression(idx, series, nil, false)

	return beta
}

// StdDev returns the population standard deviation of series, 0 when
// empty.
func StdDev(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	_, std := stat.PopMeanStdDev(series, nil)

	return std
}

// Attenuation returns the noise reduction from raw to filtered in dB:
// 20*log10(std(raw) / std(filtered)). A noiseless filtered series gives
// +Inf, and a noiseless raw series gives -Inf unless both are noiseless,
// which gives 0.
func Attenuation(raw, filtered []float64) float64 {
	return ratioTodB(StdDev(raw), StdDev(filtered))
}

// ratioTodB converts an amplitude ratio to decibels.
func ratioTodB(num, den float64) float64 {
	switch {
	case num == 0 && den == 0:
		return 0
	case den == 0:
		return math.Inf(1)
	case num == 0:
		return math.Inf(-1)
	}

	return 20 * math.Log10(num/den)
}
