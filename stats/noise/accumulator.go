package noise

import "math"

// Accumulator computes Stats incrementally, for streams too long to
// record. It does not estimate drift. The zero value is ready to use.
type Accumulator struct {
	n      int
	mean   float64
	m2     float64
	sumSq  float64
	min    float64
	minPos int
	max    float64
	maxPos int
}

// Add accumulates one sample.
func (a *Accumulator) Add(x float64) {
	if a.n == 0 || x < a.min {
		a.min = x
		a.minPos = a.n
	}

	if a.n == 0 || x > a.max {
		a.max = x
		a.maxPos = a.n
	}

	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
	a.sumSq += x * x
}

// Update accumulates a block of samples.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		a.Add(x)
	}
}

// Len returns the number of accumulated samples.
func (a *Accumulator) Len() int { return a.n }

// Result returns the statistics of everything accumulated so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}

	nf := float64(a.n)
	variance := a.m2 / nf

	return Stats{
		Length:     a.n,
		Mean:       a.mean,
		StdDev:     math.Sqrt(variance),
		Variance:   variance,
		RMS:        math.Sqrt(a.sumSq / nf),
		Min:        a.min,
		MinPos:     a.minPos,
		Max:        a.max,
		MaxPos:     a.maxPos,
		PeakToPeak: a.max - a.min,
	}
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
