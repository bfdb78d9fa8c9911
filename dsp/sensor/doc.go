// Package sensor chains processors into a measurement pipeline.
//
// A [Pipeline] has five slots: three mappers followed by two filters. Each
// push records the raw sample as stage 0 and the output of slot i as stage
// i+1. An empty slot copies the previous stage. The last stage is the
// reading.
//
// Pushes and slot changes are serialized. Every push publishes a complete,
// immutable [Stages] snapshot, so [Pipeline.Reading] and [Pipeline.Stages]
// never block and never observe a partially evaluated chain.
//
// Processors are owned by the caller. A processor must not be attached to
// more than one pipeline, and table points must only be changed inside
// [Pipeline.Quiesce].
package sensor
