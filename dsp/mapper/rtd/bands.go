package rtd

import "github.com/CastilloDelSol/GenericSensor/dsp/mapper/poly"

// Pt100 band polynomials T(R), ascending in R.
var (
	band5To45    = [3]float64{-2.4595622734e+02, 2.3606534620e+00, 9.8912416502e-04}
	bandN50To120 = [5]float64{-2.4407078132e+02, 2.2886580349e+00, 2.0127370843e-03, -6.4360670490e-06, 1.5127721577e-08}
)

// Band limits in °C and worst-case errors inside them.
const (
	Band5To45Min      = 5.0
	Band5To45Max      = 45.0
	MaxErrorBand5To45 = 8.87e-5

	BandN50To120Min      = -50.0
	BandN50To120Max      = 120.0
	MaxErrorBandN50To120 = 9.08e-4
)

// NewBand5To45 returns a second degree Pt100 polynomial for +5..+45 °C
// (101.953..117.470 Ω).
func NewBand5To45() *poly.Polynomial {
	p, _ := poly.NewCoefficients(band5To45[:]...)
	return p
}

// NewBandN50To120 returns a fourth degree Pt100 polynomial for -50..+120 °C
// (80.306..146.068 Ω).
func NewBandN50To120() *poly.Polynomial {
	p, _ := poly.NewCoefficients(bandN50To120[:]...)
	return p
}
