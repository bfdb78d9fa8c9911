package registry

import (
	"errors"
	"fmt"
	"math"

	"github.com/CastilloDelSol/GenericSensor/dsp/filter/smooth"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/poly"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/rtd"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/table"
	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

var (
	// ErrTooManyPoints is returned when a table is given more points than
	// it can hold.
	ErrTooManyPoints = errors.New("registry: too many table points")
	// ErrCoefficients is returned for an invalid coefficient list.
	ErrCoefficients = errors.New("registry: invalid polynomial coefficients")
	// ErrNominalResistance is returned for a non-positive RTD R0.
	ErrNominalResistance = errors.New("registry: r0 must be positive")
)

// Default returns a Registry pre-populated with every built-in processor.
//
//nolint:funlen
func Default() *Registry {
	r := New()

	r.MustRegister("ema", func(p Params) (proc.Processor, error) {
		return smooth.NewEMA(p.GetNum("alpha", 1)), nil
	})
	r.MustRegister("alpha-beta", func(p Params) (proc.Processor, error) {
		return smooth.NewAlphaBeta(p.GetNum("alpha", 0.5), p.GetNum("beta", 0.1)), nil
	})
	r.MustRegister("adaptive-ema", func(p Params) (proc.Processor, error) {
		return smooth.NewAdaptiveEMA(p.GetNum("alpha_min", 0.05), p.GetNum("delta_max", 1)), nil
	})
	r.MustRegister("kalman", func(p Params) (proc.Processor, error) {
		return smooth.NewKalman(p.GetNum("measurement_noise", 1), p.GetNum("process_noise", 0.01)), nil
	})
	r.MustRegister("median3", func(_ Params) (proc.Processor, error) {
		return smooth.NewMedian3(), nil
	})

	r.MustRegister("polynomial", func(p Params) (proc.Processor, error) {
		if len(p.Points) > 0 {
			if len(p.Coeffs) > 0 {
				return nil, fmt.Errorf("%w: coefficients and calibration points both given", ErrCoefficients)
			}
			return fitPolynomial(p)
		}

		if len(p.Coeffs) == 0 {
			return poly.New(), nil
		}

		m, ok := poly.NewCoefficients(p.Coeffs...)
		if !ok {
			return nil, fmt.Errorf("%w: %d coefficients, at most %d", ErrCoefficients, len(p.Coeffs), poly.MaxDegree+1)
		}

		return m, nil
	})
	r.MustRegister("linear", func(p Params) (proc.Processor, error) {
		return poly.NewLinear(p.GetNum("slope", 1), p.GetNum("offset", 0)), nil
	})

	r.MustRegister("piecewise-linear", func(p Params) (proc.Processor, error) {
		t := table.NewPiecewiseLinear()
		if err := fillTable(t, p.Points); err != nil {
			return nil, err
		}
		return t, nil
	})
	r.MustRegister("monotonic-spline", func(p Params) (proc.Processor, error) {
		t := table.NewMonotonicSpline()
		if err := fillTable(t, p.Points); err != nil {
			return nil, err
		}
		return t, nil
	})
	r.MustRegister("cubic-spline", func(p Params) (proc.Processor, error) {
		t := table.NewCubicSpline()
		if err := fillTable(t, p.Points); err != nil {
			return nil, err
		}
		return t, nil
	})

	r.MustRegister("rtd385", func(p Params) (proc.Processor, error) {
		r0, err := nominalResistance(p)
		if err != nil {
			return nil, err
		}
		return rtd.New(r0), nil
	})
	r.MustRegister("rtd385-approx", func(p Params) (proc.Processor, error) {
		r0, err := nominalResistance(p)
		if err != nil {
			return nil, err
		}
		return rtd.NewApproximation(r0), nil
	})
	r.MustRegister("rtd385-5c45c", func(_ Params) (proc.Processor, error) {
		return rtd.NewBand5To45(), nil
	})
	r.MustRegister("rtd385-n50c120c", func(_ Params) (proc.Processor, error) {
		return rtd.NewBandN50To120(), nil
	})

	registerRestorers(r)

	return r
}

func registerRestorers(r *Registry) {
	r.RegisterRestore(proc.FilterKind(proc.FilterEMA), restoreAs(smooth.EMAFromConfig))
	r.RegisterRestore(proc.FilterKind(proc.FilterAlphaBeta), restoreAs(smooth.AlphaBetaFromConfig))
	r.RegisterRestore(proc.FilterKind(proc.FilterAdaptiveEMA), restoreAs(smooth.AdaptiveEMAFromConfig))
	r.RegisterRestore(proc.FilterKind(proc.FilterKalman), restoreAs(smooth.KalmanFromConfig))
	r.RegisterRestore(proc.FilterKind(proc.FilterMedian3), restoreAs(smooth.Median3FromConfig))

	r.RegisterRestore(proc.FunctionKind(proc.FunctionPolynomial), restoreAs(poly.FromConfig))
	r.RegisterRestore(proc.FunctionKind(proc.FunctionRTD385), restoreAs(rtd.FromConfig))
	r.RegisterRestore(proc.FunctionKind(proc.FunctionRTD385Approx), restoreAs(rtd.ApproximationFromConfig))

	r.RegisterRestore(proc.TableKind(proc.TablePiecewiseLinear), restoreAs(table.PiecewiseLinearFromConfig))
	r.RegisterRestore(proc.TableKind(proc.TableMonotonicSpline), restoreAs(table.MonotonicSplineFromConfig))
	r.RegisterRestore(proc.TableKind(proc.TableCubicSpline), restoreAs(table.CubicSplineFromConfig))
}

func restoreAs[T proc.Processor](fn func(proc.Config) (T, error)) RestoreFunc {
	return func(cfg proc.Config) (proc.Processor, error) {
		p, err := fn(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

type pointPusher interface {
	PushPoint(x, fx float64) bool
}

// fitPolynomial fits a least-squares polynomial through calibration
// points. The degree defaults to the highest the points support.
func fitPolynomial(p Params) (proc.Processor, error) {
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = pt.X, pt.FX
	}

	degree := p.GetNum("degree", float64(min(len(xs)-1, poly.MaxDegree)))
	if degree != math.Trunc(degree) {
		return nil, fmt.Errorf("%w: degree %g", poly.ErrFitDegree, degree)
	}

	m, err := poly.Fit(xs, ys, int(degree))
	if err != nil {
		return nil, err
	}

	return m, nil
}

func fillTable(t pointPusher, pts []table.Point) error {
	if len(pts) > table.MaxPoints {
		return fmt.Errorf("%w: %d, at most %d", ErrTooManyPoints, len(pts), table.MaxPoints)
	}

	for _, pt := range pts {
		t.PushPoint(pt.X, pt.FX)
	}

	return nil
}

func nominalResistance(p Params) (float64, error) {
	r0 := p.GetNum("r0", rtd.Pt100)
	if r0 <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrNominalResistance, r0)
	}
	return r0, nil
}
