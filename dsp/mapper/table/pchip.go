package table

import "github.com/CastilloDelSol/GenericSensor/dsp/proc"

// MonotonicSpline is a piecewise cubic Hermite interpolator (PCHIP). Its
// tangents keep every segment monotone, so the curve never leaves the
// range spanned by the neighbouring points. Inputs outside the table clamp
// to the endpoint values.
type MonotonicSpline struct {
	table
	slopes [MaxPoints]float64
}

// NewMonotonicSpline returns an empty PCHIP table.
func NewMonotonicSpline() *MonotonicSpline {
	s := &MonotonicSpline{table: newTable(proc.TableMonotonicSpline)}
	s.refresh = s.updateSlopes
	return s
}

// MonotonicSplineFromConfig restores a table from its record.
func MonotonicSplineFromConfig(cfg proc.Config) (*MonotonicSpline, error) {
	t, err := restore(cfg, proc.TableMonotonicSpline)
	if err != nil {
		return nil, err
	}

	s := &MonotonicSpline{table: t}
	s.refresh = s.updateSlopes
	s.update()

	return s, nil
}

// Slope returns the tangent at point i, or 0 when i is out of range.
func (s *MonotonicSpline) Slope(i int) float64 {
	if i < 0 || i >= s.Len() {
		return 0
	}
	return s.slopes[i]
}

// Apply maps x through the spline.
func (s *MonotonicSpline) Apply(x float64) float64 {
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

	h := x1 - x0
	t := (x - x0) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*y0 + h10*s.slopes[pos-1]*h + h01*y1 + h11*s.slopes[pos]*h
}

// updateSlopes computes the PCHIP tangents: the adjacent secant at either
// end and the harmonic mean of the neighbouring secants inside, or zero
// where the secants change sign.
func (s *MonotonicSpline) updateSlopes() {
	s.slopes = [MaxPoints]float64{}

	n := s.Len()
	if n < 2 {
		return
	}

	cfg := s.Record()

	var delta [MaxPoints - 1]float64
	for i := 0; i < n-1; i++ {
		delta[i] = secant(cfg.F[i], cfg.F[i+1], cfg.F[offsetFX+i], cfg.F[offsetFX+i+1])
	}

	s.slopes[0] = delta[0]
	s.slopes[n-1] = delta[n-2]

	for i := 1; i < n-1; i++ {
		d0, d1 := delta[i-1], delta[i]
		if d0*d1 > 0 {
			s.slopes[i] = 2 * d0 * d1 / (d0 + d1)
		}
	}
}

// secant returns the slope between two points, or 0 for a zero-width
// segment.
func secant(x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return 0
	}
	return (y1 - y0) / (x1 - x0)
}
