package table

import (
	"gonum.org/v1/gonum/mat"

	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

// CubicSpline is a natural cubic spline through the table points: twice
// continuously differentiable with zero curvature at both ends. Inputs
// outside the table clamp to the endpoint values. Tables containing
// duplicate x values fall back to straight segments.
type CubicSpline struct {
	table
	curv [MaxPoints]float64
}

// NewCubicSpline returns an empty natural cubic spline table.
func NewCubicSpline() *CubicSpline {
	s := &CubicSpline{table: newTable(proc.TableCubicSpline)}
	s.refresh = s.updateCurvature
	return s
}

// CubicSplineFromConfig restores a table from its record.
func CubicSplineFromConfig(cfg proc.Config) (*CubicSpline, error) {
	t, err := restore(cfg, proc.TableCubicSpline)
	if err != nil {
		return nil, err
	}

	s := &CubicSpline{table: t}
	s.refresh = s.updateCurvature
	s.update()

	return s, nil
}

// Curvature returns the second derivative at point i, or 0 when i is out
// of range.
func (s *CubicSpline) Curvature(i int) float64 {
	if i < 0 || i >= s.Len() {
		return 0
	}
	return s.curv[i]
}

// Apply maps x through the spline.
func (s *CubicSpline) Apply(x float64) float64 {
	n := s.Len()
	if n < 2 {
		return s.valueBelow()
	}

	cfg := s.Record()

	if x <= cfg.F[0] {
		return cfg.F[offsetFX]
	}

	if x >= cfg.F[n-1] {
		return cfg.F[offsetFX+n-1]
	}

	pos := s.segment(x)

	x0, x1 := cfg.F[pos-1], cfg.F[pos]
	y0, y1 := cfg.F[offsetFX+pos-1], cfg.F[offsetFX+pos]
	m0, m1 := s.curv[pos-1], s.curv[pos]

	h := x1 - x0
	a := x1 - x
	b := x - x0

	return (m0*a*a*a+m1*b*b*b)/(6*h) + (y0/h-m0*h/6)*a + (y1/h-m1*h/6)*b
}

// updateCurvature solves the tridiagonal system for the interior second
// derivatives.
func (s *CubicSpline) updateCurvature() {
	s.curv = [MaxPoints]float64{}

	n := s.Len()
	if n < 3 {
		return
	}

	cfg := s.Record()

	var h [MaxPoints - 1]float64
	for i := 0; i < n-1; i++ {
		h[i] = cfg.F[i+1] - cfg.F[i]
		if h[i] == 0 {
			return
		}
	}

	m := n - 2
	diag := make([]float64, m)
	rhs := make([]float64, m)

	var lower, upper []float64
	if m > 1 {
		lower = make([]float64, m-1)
		upper = make([]float64, m-1)
	}

	for i := 1; i <= m; i++ {
		diag[i-1] = 2 * (h[i-1] + h[i])

		d0 := (cfg.F[offsetFX+i] - cfg.F[offsetFX+i-1]) / h[i-1]
		d1 := (cfg.F[offsetFX+i+1] - cfg.F[offsetFX+i]) / h[i]
		rhs[i-1] = 6 * (d1 - d0)

		if i < m {
			upper[i-1] = h[i]
			lower[i-1] = h[i]
		}
	}

	a := mat.NewTridiag(m, lower, diag, upper)

	var sol mat.VecDense
	if err := a.SolveVecTo(&sol, false, mat.NewVecDense(m, rhs)); err != nil {
		return
	}

	for i := 0; i < m; i++ {
		s.curv[i+1] = sol.AtVec(i)
	}
}
