package poly

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrFitDegree is returned when the requested degree is out of range.
	ErrFitDegree = errors.New("poly: fit degree out of range")
	// ErrFitPoints is returned when there are too few or mismatched points.
	ErrFitPoints = errors.New("poly: not enough calibration points")
)

// Fit returns the least-squares polynomial of the given degree through the
// points (xs[i], ys[i]).
func Fit(xs, ys []float64, degree int) (*Polynomial, error) {
	if degree < 0 || degree > MaxDegree {
		return nil, fmt.Errorf("%w: %d", ErrFitDegree, degree)
	}

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrFitPoints, len(xs), len(ys))
	}

	if len(xs) < degree+1 {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrFitPoints, degree+1, len(xs))
	}

	cols := degree + 1
	vander := mat.NewDense(len(xs), cols, nil)

	for i, x := range xs {
		v := 1.0
		for j := 0; j < cols; j++ {
			vander.Set(i, j, v)
			v *= x
		}
	}

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(vander, mat.NewVecDense(len(ys), append([]float64(nil), ys...))); err != nil {
		return nil, fmt.Errorf("poly: least squares: %w", err)
	}

	c := make([]float64, cols)
	for i := range c {
		c[i] = coeffs.AtVec(i)
	}

	p := New()
	p.SetCoefficients(c...)

	return p, nil
}
