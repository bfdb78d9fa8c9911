package poly

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

const (
	// MaxDegree is the highest supported polynomial degree.
	MaxDegree = 7
	// MaxCoefficientIndex is the highest index SetCoefficient accepts.
	MaxCoefficientIndex = MaxDegree + 1
)

// Polynomial maps a value through a polynomial of degree 0..7.
type Polynomial struct {
	proc.Base

	xs []float64
	cv []float64
}

// New returns the identity polynomial (degree 1, coefficients {0, 1}).
func New() *Polynomial {
	return newTagged(proc.FunctionKind(proc.FunctionPolynomial))
}

// NewLinear returns the polynomial m*x + b.
func NewLinear(m, b float64) *Polynomial {
	p := New()
	p.SetLinear(m, b)
	return p
}

// NewCoefficients returns a polynomial with the given ascending
// coefficients. ok is false when more than MaxDegree+1 are given.
func NewCoefficients(coeffs ...float64) (p *Polynomial, ok bool) {
	p = New()
	return p, p.SetCoefficients(coeffs...)
}

// NewTagged returns an identity polynomial whose record carries k. Mappers
// that refine the polynomial evaluator use it to keep their own tag.
func NewTagged(k proc.Kind) *Polynomial {
	return newTagged(k)
}

func newTagged(k proc.Kind) *Polynomial {
	p := &Polynomial{Base: proc.NewBase(k)}
	p.Record().U[proc.SlotDegree] = 1
	p.Record().F[1] = 1
	return p
}

// FromConfig restores a polynomial from its record.
func FromConfig(cfg proc.Config) (*Polynomial, error) {
	if err := cfg.Expect(proc.FunctionKind(proc.FunctionPolynomial)); err != nil {
		return nil, err
	}
	return FromRecord(cfg), nil
}

// FromRecord evaluates the coefficients and degree held in cfg without
// checking its tag. Refinements that check their own tag use it.
func FromRecord(cfg proc.Config) *Polynomial {
	return &Polynomial{Base: proc.BaseFrom(cfg)}
}

// Apply evaluates the polynomial at x.
func (p *Polynomial) Apply(x float64) float64 {
	cfg := p.Record()
	n := min(int(cfg.U[proc.SlotDegree]), MaxDegree)

	y := cfg.F[n]
	for i := n - 1; i >= 0; i-- {
		y = y*x + cfg.F[i]
	}

	return y
}

// ApplyBlock evaluates the polynomial for every element of src and writes
// the results to dst, which must be at least as long as src. dst and src
// may alias.
func (p *Polynomial) ApplyBlock(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	dst = dst[:n]
	p.xs = core.EnsureLen(p.xs, n)
	p.cv = core.EnsureLen(p.cv, n)
	copy(p.xs, src)

	cfg := p.Record()
	deg := min(int(cfg.U[proc.SlotDegree]), MaxDegree)

	core.Fill(dst, cfg.F[deg])
	for i := deg - 1; i >= 0; i-- {
		core.Fill(p.cv, cfg.F[i])
		vecmath.MulBlockInPlace(dst, p.xs)
		vecmath.AddBlockInPlace(dst, p.cv)
	}
}

// SetDegree sets the degree. It returns false and leaves the record
// untouched when d is outside [0, MaxDegree].
func (p *Polynomial) SetDegree(d int) bool {
	if d < 0 || d > MaxDegree {
		return false
	}
	p.Record().U[proc.SlotDegree] = uint8(d)
	return true
}

// Degree returns the current degree.
func (p *Polynomial) Degree() int { return p.Record().Degree() }

// SetCoefficient writes the coefficient of x^idx. It returns false and
// leaves the record untouched when idx is outside [0, MaxCoefficientIndex].
func (p *Polynomial) SetCoefficient(idx int, v float64) bool {
	if idx < 0 || idx > MaxCoefficientIndex {
		return false
	}
	p.Record().F[idx] = v
	return true
}

// Coefficient returns the coefficient of x^idx, or 0 when idx is out of
// range.
func (p *Polynomial) Coefficient(idx int) float64 {
	if idx < 0 || idx > MaxCoefficientIndex {
		return 0
	}
	return p.Record().F[idx]
}

// Coefficients returns the active coefficients, ascending by power.
func (p *Polynomial) Coefficients() []float64 {
	cfg := p.Record()
	n := min(int(cfg.U[proc.SlotDegree]), MaxDegree)
	out := make([]float64, n+1)
	copy(out, cfg.F[:n+1])
	return out
}

// SetCoefficients replaces the coefficients and sets the degree to
// len(coeffs)-1. It returns false without changes when coeffs is empty or
// longer than MaxDegree+1.
func (p *Polynomial) SetCoefficients(coeffs ...float64) bool {
	if len(coeffs) == 0 || len(coeffs) > MaxDegree+1 {
		return false
	}

	cfg := p.Record()
	for i := 0; i <= MaxDegree; i++ {
		cfg.F[i] = 0
	}
	copy(cfg.F[:], coeffs)
	cfg.U[proc.SlotDegree] = uint8(len(coeffs) - 1)

	return true
}

// SetLinear configures y = m*x + b.
func (p *Polynomial) SetLinear(m, b float64) {
	p.SetCoefficients(b, m)
}

// Reset is a no-op; a polynomial has no runtime state.
func (p *Polynomial) Reset() {}

// MapperType returns proc.MapperFunction.
func (p *Polynomial) MapperType() proc.MapperType { return proc.MapperFunction }
