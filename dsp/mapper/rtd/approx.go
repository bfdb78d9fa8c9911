package rtd

import (
	"sync/atomic"

	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/poly"
	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

// Minimax fit of T(R/R0) over -200..0 °C, ascending.
var negativeRegion = [8]float64{
	-2.4202168e+02, 2.2230167e+02, 2.5777109e+01, -4.7150176e+00,
	-2.7283411e+00, 1.1117969e+00, 4.1203939e-01, -1.3757725e-01,
}

// MaxErrorApproximation is the worst-case error of Approximation in °C.
const MaxErrorApproximation = 4e-6

// Record slots after the polynomial coefficients.
const (
	slotApproxR0    = 8
	slotApproxInvR0 = 9
	slotApproxA4R0  = 10 // 4*B*R0
	slotApproxAR0   = 11 // A*R0
	slotApproxInv2B = 12 // 1/(2*B*R0)
	slotApproxAR02  = 13 // (A*R0)²
)

// Approximation converts resistance to temperature with a polynomial in
// R/R0 below 0 °C and the exact quadratic above. The negative-region
// polynomial is an ordinary polynomial evaluator and can be recalibrated
// through its coefficient setters.
type Approximation struct {
	*poly.Polynomial
	k atomic.Pointer[constants]
}

// NewApproximation returns an approximate inverter for nominal resistance
// r0.
func NewApproximation(r0 float64) *Approximation {
	p := poly.NewTagged(proc.FunctionKind(proc.FunctionRTD385Approx))
	p.SetCoefficients(negativeRegion[:]...)

	a := &Approximation{Polynomial: p}
	a.SetR0(r0)

	return a
}

// ApproximationFromConfig restores an approximate inverter from its record.
func ApproximationFromConfig(cfg proc.Config) (*Approximation, error) {
	if err := cfg.Expect(proc.FunctionKind(proc.FunctionRTD385Approx)); err != nil {
		return nil, err
	}

	a := &Approximation{Polynomial: poly.FromRecord(cfg)}
	a.derive()

	return a, nil
}

// Apply converts a resistance in ohms to °C.
func (a *Approximation) Apply(ohms float64) float64 {
	k := a.k.Load()

	ohms = k.clamp(ohms)
	if r := ohms * k.invR0; r < 1 {
		return a.Polynomial.Apply(r)
	}

	return k.quadratic(ohms)
}

// ApplyBlock converts every element of src into dst.
func (a *Approximation) ApplyBlock(dst, src []float64) {
	for i, x := range src {
		dst[i] = a.Apply(x)
	}
}

// SetR0 changes the nominal resistance and every constant derived from it.
func (a *Approximation) SetR0(r0 float64) {
	a.Record().F[slotApproxR0] = r0
	a.derive()
}

// R0 returns the nominal resistance.
func (a *Approximation) R0() float64 { return a.k.Load().r0 }

// SetFloat writes a raw record slot and rebuilds the derived constants.
// Slots 9..13 are always recomputed from R0 in slot 8.
func (a *Approximation) SetFloat(idx int, v float64) {
	a.Polynomial.SetFloat(idx, v)
	a.derive()
}

// SetCoefficient writes a polynomial coefficient; index 8 is R0.
func (a *Approximation) SetCoefficient(idx int, v float64) bool {
	if !a.Polynomial.SetCoefficient(idx, v) {
		return false
	}
	a.derive()
	return true
}

func (a *Approximation) derive() {
	cfg := a.Record()
	k := derive(cfg.F[slotApproxR0], A, B, C)

	cfg.F[slotApproxInvR0] = k.invR0
	cfg.F[slotApproxA4R0] = k.qa4
	cfg.F[slotApproxAR0] = k.qb
	cfg.F[slotApproxInv2B] = k.inv2qa
	cfg.F[slotApproxAR02] = k.qb2

	a.k.Store(k)
}
