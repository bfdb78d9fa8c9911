// Package proc defines the processing-stage abstraction shared by every
// mapper and filter: a fixed-size configuration record ([Config]), the
// role and sub-type tags stored in it ([Kind]), and the [Processor]
// interface with its [Mapper] and [Filter] refinements.
//
// A Config is the entire persistent state of a stage. It holds eight small
// integer tags, two packed unit codes and sixteen float parameters. Index
// based access is range-clamped: writes with an out-of-range index land in
// the nearest valid slot instead of failing.
//
// Concrete processors embed [Base] and keep any transient estimation state
// (running averages, covariances, ring buffers) outside the record.
// Processors are not safe for concurrent use; the sensor pipeline is the
// serialization point.
package proc
