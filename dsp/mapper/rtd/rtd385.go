package rtd

import (
	"sync/atomic"

	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

// Record slots of RTD385.
const (
	slotR0 = 0
	slotA  = 1
	slotB  = 2
	slotC  = 3
)

// RTD385 inverts the Callendar–Van Dusen relation.
//
// Derived constants are rebuilt on every parameter change and published
// atomically, so SetR0 may run concurrently with Apply and Apply never
// mixes constants from two different R0 values.
type RTD385 struct {
	proc.Base
	k atomic.Pointer[constants]
}

// New returns an inverter for a sensor with nominal resistance r0 (100
// for Pt100, 1000 for Pt1000). r0 must be positive.
func New(r0 float64) *RTD385 {
	r := &RTD385{Base: proc.NewBase(proc.FunctionKind(proc.FunctionRTD385))}

	cfg := r.Record()
	cfg.F[slotR0] = r0
	cfg.F[slotA] = A
	cfg.F[slotB] = B
	cfg.F[slotC] = C
	r.derive()

	return r
}

// FromConfig restores an inverter from its record.
func FromConfig(cfg proc.Config) (*RTD385, error) {
	if err := cfg.Expect(proc.FunctionKind(proc.FunctionRTD385)); err != nil {
		return nil, err
	}

	r := &RTD385{Base: proc.BaseFrom(cfg)}
	r.derive()

	return r, nil
}

// Apply converts a resistance in ohms to °C.
func (r *RTD385) Apply(ohms float64) float64 {
	k := r.k.Load()

	ohms = k.clamp(ohms)
	t := k.quadratic(ohms)

	if ohms >= k.r0 {
		return t
	}

	t = (seedCorrection[2]*t+seedCorrection[1])*t + seedCorrection[0]

	return k.newton(t, ohms)
}

// SetR0 changes the nominal resistance.
func (r *RTD385) SetR0(r0 float64) {
	r.Record().F[slotR0] = r0
	r.derive()
}

// R0 returns the nominal resistance.
func (r *RTD385) R0() float64 { return r.k.Load().r0 }

// SetCoefficients replaces the CVD coefficients A, B and C.
func (r *RTD385) SetCoefficients(a, b, c float64) {
	cfg := r.Record()
	cfg.F[slotA] = a
	cfg.F[slotB] = b
	cfg.F[slotC] = c
	r.derive()
}

// Coefficients returns the CVD coefficients A, B and C.
func (r *RTD385) Coefficients() (a, b, c float64) {
	k := r.k.Load()
	return k.a, k.b, k.c
}

// Range returns the resistance span accepted without clamping.
func (r *RTD385) Range() (lo, hi float64) {
	k := r.k.Load()
	return k.rMin, k.rMax
}

// SetFloat writes a raw record slot and rebuilds the derived constants.
func (r *RTD385) SetFloat(idx int, v float64) {
	r.Base.SetFloat(idx, v)
	r.derive()
}

// Reset is a no-op.
func (r *RTD385) Reset() {}

// MapperType returns proc.MapperFunction.
func (r *RTD385) MapperType() proc.MapperType { return proc.MapperFunction }

func (r *RTD385) derive() {
	cfg := r.Record()
	r.k.Store(derive(cfg.F[slotR0], cfg.F[slotA], cfg.F[slotB], cfg.F[slotC]))
}
