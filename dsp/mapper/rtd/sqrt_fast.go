//go:build fastmath

package rtd

import "github.com/meko-christian/algo-approx"

// sqrt trades precision in the closed-form branch for speed. Results above
// 0 °C lose the sub-microkelvin accuracy of the exact build.
func sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
