// Package smooth provides the per-reading noise filters of a sensor
// pipeline.
//
// Available filters:
//   - [EMA]: exponential moving average with a fixed alpha.
//   - [AlphaBeta]: level and trend tracker returning a one-step-ahead
//     prediction.
//   - [AdaptiveEMA]: EMA whose alpha follows the size of each jump.
//   - [Kalman]: scalar random-walk Kalman filter.
//   - [Median3]: median of the last three inputs.
//
// Every filter stores its parameters in its [proc.Config] record and keeps
// estimation state privately. The first sample after construction or
// Reset primes the state and is returned unchanged; Median3 passes inputs
// through until its window has been filled once.
//
// Filters are not safe for concurrent use.
package smooth
