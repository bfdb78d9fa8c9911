// Package rtd converts platinum RTD resistance (ohms) to temperature (°C)
// for sensors with alpha = 0.00385 (IEC 60751).
//
// The Callendar–Van Dusen relation
//
//	R(T) = R0 * (1 + A*T + B*T² + C*(T-100)*T³)   (C = 0 for T >= 0)
//
// is inverted by several mappers with different cost/accuracy trade-offs:
//
//   - [RTD385]: exact quadratic above 0 °C; below 0 °C a corrected
//     quadratic seed refined by two Newton steps on the full cubic model.
//     Error stays below 1e-7 °C from -200 to +850 °C.
//   - [Approximation]: exact quadratic above 0 °C and a 7th degree minimax
//     polynomial in R/R0 below (max error about 4e-6 °C).
//   - [NewBand5To45] and [NewBandN50To120]: fixed Pt100 polynomials in R for
//     narrow ranges.
//
// [Resistance] evaluates the forward relation and [InverseReference] solves
// it with a general root finder; both serve calibration and verification.
//
// Building with the fastmath tag replaces math.Sqrt in the closed-form
// branch with a faster approximation from algo-approx.
package rtd
