// Package table implements lookup-table mappers over up to eight
// calibration points.
//
// The x values live in float slots 0..7 of the processor's [proc.Config]
// record and the matching f(x) values in slots 8..15; the point count is
// kept in the table-size byte. Points are always sorted ascending by x.
// Duplicate x values are allowed and lookups resolve them to the first
// matching segment.
//
// Three interpolators share that storage:
//   - [PiecewiseLinear]: straight segments, extrapolating past either end.
//   - [MonotonicSpline]: PCHIP, overshoot free, clamped outside the table.
//   - [CubicSpline]: natural cubic spline, clamped outside the table.
package table
