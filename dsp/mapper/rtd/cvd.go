package rtd

// IEC 60751 coefficients for alpha = 0.00385.
const (
	A = 3.9083e-3
	B = -5.775e-7
	C = -4.183e-12
)

// Validity span of the inversion. Resistances outside the matching range
// are clamped before conversion.
const (
	MinTemperature = -200.0
	MaxTemperature = 850.0
)

// Nominal resistances at 0 °C.
const (
	Pt100  = 100.0
	Pt1000 = 1000.0
)

// Seed correction applied to the quadratic estimate below 0 °C, ascending.
var seedCorrection = [3]float64{2.5965757e-03, 1.0078029e+00, 9.4974362e-05}

const newtonSteps = 2

// ratio returns R(T)/R0 for the given coefficients.
func ratio(t, a, b, c float64) float64 {
	r := 1 + a*t + b*t*t
	if t < 0 {
		r += c * (t - 100) * t * t * t
	}
	return r
}

// Resistance returns the IEC 60751 resistance of a sensor with nominal
// resistance r0 at temperature t.
func Resistance(t, r0 float64) float64 {
	return r0 * ratio(t, A, B, C)
}

// constants holds every value derived from R0 and the CVD coefficients.
// It is immutable once published.
type constants struct {
	r0, a, b, c float64

	invR0 float64
	rMin  float64
	rMax  float64

	// Quadratic a*T² + b*T + (R0-R) = 0 with a = B*R0 and b = A*R0.
	qb     float64 // A*R0
	qb2    float64 // (A*R0)²
	qa4    float64 // 4*B*R0
	inv2qa float64 // 1/(2*B*R0)
}

func derive(r0, a, b, c float64) *constants {
	return &constants{
		r0:     r0,
		a:      a,
		b:      b,
		c:      c,
		invR0:  1 / r0,
		rMin:   r0 * ratio(MinTemperature, a, b, c),
		rMax:   r0 * ratio(MaxTemperature, a, b, c),
		qb:     a * r0,
		qb2:    a * r0 * a * r0,
		qa4:    4 * b * r0,
		inv2qa: 1 / (2 * b * r0),
	}
}

// quadratic solves the C = 0 relation for T.
func (k *constants) quadratic(r float64) float64 {
	d := k.qb2 - k.qa4*(k.r0-r)
	if d < 0 {
		d = 0
	}
	num := sqrt(d) - k.qb
	if num == 0 {
		return 0
	}
	return num * k.inv2qa
}

// newton refines t against the full cubic relation.
func (k *constants) newton(t, r float64) float64 {
	for range newtonSteps {
		t2 := t * t
		t3 := t2 * t
		f := k.r0*(1+k.a*t+k.b*t2+k.c*(t-100)*t3) - r
		fp := k.r0 * (k.a + 2*k.b*t + k.c*t2*(4*t-300))
		if fp == 0 {
			break
		}
		t -= f / fp
	}
	return t
}

func (k *constants) clamp(r float64) float64 {
	if r < k.rMin {
		return k.rMin
	}
	if r > k.rMax {
		return k.rMax
	}
	return r
}
