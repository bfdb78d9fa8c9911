package core

import "math"

const defaultEpsilon = 1e-12

// SmallestPositive is the smallest float64 greater than zero.
var SmallestPositive = math.Nextafter(0, 1)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampIndex limits idx to [0, n-1]. It returns 0 when n <= 0.
func ClampIndex(idx, n int) int {
	if n <= 0 || idx < 0 {
		return 0
	}

	if idx >= n {
		return n - 1
	}

	return idx
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// MapRange linearly maps x from [inMin, inMax] onto [outMin, outMax] after
// clamping x into the input range. A zero-width input range yields outMax.
func MapRange(x, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMax
	}

	x = Clamp(x, inMin, inMax)

	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
