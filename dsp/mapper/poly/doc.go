// Package poly implements the polynomial mapper: y = c0 + c1*x + ... + cn*x^n
// with n <= 7, evaluated with Horner's method.
//
// Coefficients are stored ascending by power in the float slots of the
// processor's [proc.Config] record and the degree in its degree byte. A new
// Polynomial is the identity map.
//
// [Fit] derives coefficients from calibration pairs by least squares.
package poly
