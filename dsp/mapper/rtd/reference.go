package rtd

import (
	"errors"
	"fmt"

	"github.com/CastilloDelSol/GenericSensor/internal/polyroot"
)

var (
	// ErrNominalResistance is returned for a non-positive R0.
	ErrNominalResistance = errors.New("rtd: nominal resistance must be positive")
	// ErrNoRoot is returned when the relation has no root in the valid span.
	ErrNoRoot = errors.New("rtd: no temperature in range")
)

// Temperatures below 0 °C are solved in units of 100 °C to keep the
// quartic well scaled.
const refScale = 100.0

// InverseReference solves R(T) = ohms for T with a general polynomial root
// finder instead of the seeded iteration of RTD385. It is slower and is
// meant for verification and calibration tooling.
func InverseReference(ohms, r0 float64) (float64, error) {
	if r0 <= 0 {
		return 0, ErrNominalResistance
	}

	k := derive(r0, A, B, C)
	if ohms >= r0 {
		if ohms > k.rMax {
			return 0, fmt.Errorf("%w: %g Ω above %g Ω", ErrNoRoot, ohms, k.rMax)
		}
		return k.quadratic(ohms), nil
	}

	s := refScale
	roots, err := polyroot.RootsIn([]float64{
		r0 - ohms,
		A * r0 * s,
		B * r0 * s * s,
		-100 * C * r0 * s * s * s,
		C * r0 * s * s * s * s,
	}, (MinTemperature-50)/s, 0)
	if err != nil {
		return 0, fmt.Errorf("rtd: inverse reference: %w", err)
	}

	if len(roots) == 0 {
		return 0, fmt.Errorf("%w: %g Ω", ErrNoRoot, ohms)
	}

	return k.newton(roots[len(roots)-1]*s, ohms), nil
}
