// Package spectrum estimates the noise spectrum of a recorded stage
// history, to tell broadband sensor noise from periodic interference.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

const minSamples = 4

var (
	// ErrTooShort is returned for series with fewer than four samples.
	ErrTooShort = errors.New("spectrum: series too short")
	// ErrSampleRate is returned for a non-positive or non-finite sample rate.
	ErrSampleRate = errors.New("spectrum: sample rate must be positive")
)

// Result describes the one-sided amplitude spectrum of a mean-removed,
// Hann-tapered series.
type Result struct {
	SampleRate float64
	FFTSize    int
	// Magnitude holds amplitude-corrected bins 0..FFTSize/2.
	Magnitude []float64

	Dominant    float64 // frequency of the strongest non-DC bin (Hz)
	DominantMag float64
	Centroid    float64 // Hz
	Spread      float64 // Hz
	Flatness    float64 // 0..1, 1 for white noise
	Rolloff     float64 // frequency below which 85% of the energy lies (Hz)
}

// Resolution returns the bin spacing in Hz.
func (r Result) Resolution() float64 {
	if r.FFTSize == 0 {
		return 0
	}
	return r.SampleRate / float64(r.FFTSize)
}

// BinFrequency returns the frequency of bin i in Hz.
func (r Result) BinFrequency(i int) float64 {
	return float64(i) * r.Resolution()
}

// Analyze computes the spectrum of series sampled at sampleRate. The
// series is zero-padded to the next power of two.
func Analyze(series []float64, sampleRate float64) (Result, error) {
	if len(series) < minSamples {
		return Result{}, fmt.Errorf("%w: %d samples, need %d", ErrTooShort, len(series), minSamples)
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Result{}, fmt.Errorf("%w: %f", ErrSampleRate, sampleRate)
	}

	n := len(series)
	fftSize := nextPow2(n)

	win := hann(n)

	tapered := make([]float64, n)
	copy(tapered, series)
	removeMean(tapered, win)
	vecmath.MulBlockInPlace(tapered, win)

	in := make([]complex128, fftSize)
	for i, v := range tapered {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Single-sided amplitude: double every bin except DC and Nyquist and
	// undo the window's coherent gain.
	gain := 0.0
	for _, w := range win {
		gain += w
	}
	for i := range mag {
		scale := 2 / gain
		if i == 0 || i == bins-1 {
			scale = 1 / gain
		}
		mag[i] *= scale
	}

	r := Result{SampleRate: sampleRate, FFTSize: fftSize, Magnitude: mag}
	r.describe()

	return r, nil
}

func (r *Result) describe() {
	mag := r.Magnitude

	peak := 1
	var sum, energy float64
	for i := 1; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
		sum += mag[i]
		energy += mag[i] * mag[i]
	}

	r.Dominant = r.BinFrequency(peak)
	r.DominantMag = mag[peak]

	if sum == 0 {
		return
	}

	var weighted float64
	for i := 1; i < len(mag); i++ {
		weighted += r.BinFrequency(i) * mag[i]
	}
	r.Centroid = weighted / sum

	var sq float64
	for i := 1; i < len(mag); i++ {
		d := r.BinFrequency(i) - r.Centroid
		sq += d * d * mag[i]
	}
	r.Spread = math.Sqrt(sq / sum)

	r.Flatness = flatness(mag[1:])

	threshold := 0.85 * energy
	cum := 0.0
	for i := 1; i < len(mag); i++ {
		cum += mag[i] * mag[i]
		if cum >= threshold {
			r.Rolloff = r.BinFrequency(i)
			break
		}
	}
}

// flatness is the ratio of geometric to arithmetic mean. Any zero bin
// makes it zero.
func flatness(mag []float64) float64 {
	var sumLin, sumLog float64
	for _, v := range mag {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	nf := float64(len(mag))
	return math.Exp(sumLog/nf) / (sumLin / nf)
}

// removeMean subtracts the window-weighted mean so the tapered series sums
// to zero. The plain mean goes first to keep constant input exact.
func removeMean(x, w []float64) {
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	var num, den float64
	for i, v := range x {
		v -= mean
		x[i] = v
		num += v * w[i]
		den += w[i]
	}

	if den == 0 {
		return
	}

	wmean := num / den
	for i := range x {
		x[i] -= wmean
	}
}

// hann returns a symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	den := float64(n - 1)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}
	return w
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
