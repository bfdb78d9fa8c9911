// Package polyroot finds the roots of real polynomials. Calibration tooling
// uses it to cross-check closed-form and iterative sensor inversions.
//
// Coefficients are in ascending power order throughout:
// c[0] + c[1]*x + ... + c[n]*x^n.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
)

var (
	// ErrDegenerate is returned for polynomials of degree zero or less
	// once trailing zero coefficients are dropped.
	ErrDegenerate = errors.New("polyroot: degenerate polynomial")
	// ErrNoConvergence is returned when the simultaneous iteration fails
	// to settle on a set of roots.
	ErrNoConvergence = errors.New("polyroot: iteration did not converge")
)

// RealTol is the imaginary-part tolerance, relative to the real part, under
// which a root counts as real.
const RealTol = 1e-9

const (
	maxIter     = 500
	stepTol     = 1e-12
	residualTol = 1e-6
	polishSteps = 4
)

// Roots returns every complex root of c, found with the Durand-Kerner
// (Weierstrass) iteration. Trailing zero coefficients are ignored.
func Roots(c []float64) ([]complex128, error) {
	c = trim(c)
	n := len(c) - 1

	if n < 1 {
		return nil, ErrDegenerate
	}

	if n == 1 {
		return []complex128{complex(-c[0]/c[1], 0)}, nil
	}

	monic := make([]complex128, n+1)
	for i, v := range c {
		monic[i] = complex(v/c[n], 0)
	}

	z := initialGuesses(monic)
	for range maxIter {
		if weierstrassStep(monic, z) {
			return z, nil
		}
	}

	// Multiple roots only converge linearly; accept them on residual.
	for _, r := range z {
		if cmplx.Abs(Eval(monic, r)) > residualTol {
			return nil, ErrNoConvergence
		}
	}

	return z, nil
}

// RealRoots returns the real roots of c sorted ascending. Each root is
// polished with Newton steps on the real polynomial.
func RealRoots(c []float64) ([]float64, error) {
	roots, err := Roots(c)
	if err != nil {
		return nil, err
	}

	c = trim(c)
	out := make([]float64, 0, len(roots))
	for _, r := range roots {
		if IsReal(r, RealTol) {
			out = append(out, Polish(c, real(r)))
		}
	}

	slices.Sort(out)

	return out, nil
}

// RootsIn returns the real roots of c that fall inside [lo, hi].
func RootsIn(c []float64, lo, hi float64) ([]float64, error) {
	roots, err := RealRoots(c)
	if err != nil {
		return nil, err
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	return slices.DeleteFunc(roots, func(x float64) bool {
		return x < lo || x > hi
	}), nil
}

// Polish refines a real root estimate x of c with a few Newton steps. It
// stops early on a vanishing derivative.
func Polish(c []float64, x float64) float64 {
	for range polishSteps {
		f, df := evalReal(c, x)
		if df == 0 {
			break
		}

		step := f / df
		x -= step

		if math.Abs(step) <= 1e-15*math.Max(1, math.Abs(x)) {
			break
		}
	}

	return x
}

// IsReal reports whether z lies on the real axis within tol, scaled by the
// magnitude of its real part.
func IsReal(z complex128, tol float64) bool {
	return math.Abs(imag(z)) <= tol*math.Max(1, math.Abs(real(z)))
}

// Eval evaluates the polynomial c at x with Horner's scheme.
func Eval(c []complex128, x complex128) complex128 {
	if len(c) == 0 {
		return 0
	}

	v := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		v = v*x + c[i]
	}

	return v
}

func evalReal(c []float64, x float64) (f, df float64) {
	for i := len(c) - 1; i >= 0; i-- {
		df = df*x + f
		f = f*x + c[i]
	}

	return f, df
}

func trim(c []float64) []float64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}

	return c[:n]
}

// initialGuesses spreads the starting points on a circle of the Fujiwara
// root bound. The angular offset keeps the set asymmetric under complex
// conjugation so no estimate gets stuck on the real axis.
func initialGuesses(monic []complex128) []complex128 {
	n := len(monic) - 1

	radius := 0.0
	for i := 1; i <= n; i++ {
		a := cmplx.Abs(monic[n-i])
		if i == n {
			a /= 2
		}

		radius = math.Max(radius, math.Pow(a, 1/float64(i)))
	}

	radius *= 2
	if radius == 0 {
		radius = 1
	}

	z := make([]complex128, n)
	for k := range z {
		angle := (2*math.Pi*float64(k) + math.Pi/2) / float64(n)
		z[k] = cmplx.Rect(radius, angle)
	}

	return z
}

// weierstrassStep updates every estimate in place and reports whether all
// corrections were below stepTol.
func weierstrassStep(monic, z []complex128) bool {
	converged := true

	for i := range z {
		den := complex(1, 0)
		for j := range z {
			if i != j {
				den *= z[i] - z[j]
			}
		}

		if den == 0 {
			z[i] += complex(1e-10, 1e-10)
			converged = false

			continue
		}

		delta := Eval(monic, z[i]) / den
		z[i] -= delta

		if cmplx.Abs(delta) > stepTol*math.Max(1, cmplx.Abs(z[i])) {
			converged = false
		}
	}

	return converged
}
