package table

import "github.com/CastilloDelSol/GenericSensor/dsp/proc"

// PiecewiseLinear interpolates linearly between neighbouring points.
// Inputs outside the table extrapolate along the first or last segment.
type PiecewiseLinear struct {
	table
}

// NewPiecewiseLinear returns an empty piecewise-linear table.
func NewPiecewiseLinear() *PiecewiseLinear {
	return &PiecewiseLinear{table: newTable(proc.TablePiecewiseLinear)}
}

// PiecewiseLinearFromConfig restores a table from its record.
func PiecewiseLinearFromConfig(cfg proc.Config) (*PiecewiseLinear, error) {
	t, err := restore(cfg, proc.TablePiecewiseLinear)
	if err != nil {
		return nil, err
	}

	p := &PiecewiseLinear{table: t}
	p.update()

	return p, nil
}

// Apply maps x through the table. With fewer than two points it returns
// the single stored f(x), or 0 for an empty table.
func (p *PiecewiseLinear) Apply(x float64) float64 {
	if p.Len() < 2 {
		return p.valueBelow()
	}

	cfg := p.Record()
	pos := p.segment(x)

	x0, x1 := cfg.F[pos-1], cfg.F[pos]
	y0, y1 := cfg.F[offsetFX+pos-1], cfg.F[offsetFX+pos]

	if x == x1 || x1 == x0 {
		return y1
	}

	return (x-x0)*(y1-y0)/(x1-x0) + y0
}
