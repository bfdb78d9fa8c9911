package sensor

import (
	"context"
	"sync/atomic"

	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
	"github.com/CastilloDelSol/GenericSensor/internal/monitoring"
)

// Pipeline evaluates a fixed chain of mapper and filter slots.
//
// Use New or NewBank; the zero value is not usable.
type Pipeline struct {
	// sem is a one-slot semaphore held by the single active writer.
	sem   chan struct{}
	slots [NumSlots]proc.Processor

	current atomic.Pointer[Stages]

	info     Info
	recorder *Recorder
}

// New creates a pipeline with every slot empty and every stage zero.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	p.init(opts)
	return p
}

func (p *Pipeline) init(opts []Option) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p.sem = make(chan struct{}, 1)
	p.info = cfg.info
	p.recorder = cfg.recorder
	p.current.Store(&Stages{})
}

// SetMapper places m in mapper slot i (0..2). Out-of-range indices are
// ignored. A nil m empties the slot.
func (p *Pipeline) SetMapper(i int, m proc.Processor) {
	if i < 0 || i >= NumMappers {
		monitoring.Logf("sensor: mapper slot %d out of range, ignored", i)
		return
	}
	p.setSlot(i, m)
}

// SetFilter places f in filter slot i (0..1), which follows the mappers.
// Out-of-range indices are ignored. A nil f empties the slot.
func (p *Pipeline) SetFilter(i int, f proc.Processor) {
	if i < 0 || i >= NumFilters {
		monitoring.Logf("sensor: filter slot %d out of range, ignored", i)
		return
	}
	p.setSlot(NumMappers+i, f)
}

func (p *Pipeline) setSlot(slot int, pr proc.Processor) {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	p.slots[slot] = pr
}

// Processor returns the processor in slot (0..4), or nil when the slot is
// empty or out of range.
func (p *Pipeline) Processor(slot int) proc.Processor {
	if slot < 0 || slot >= NumSlots {
		return nil
	}

	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	return p.slots[slot]
}

// Push runs x through the chain and publishes the resulting trace. It
// waits for any other writer to finish.
func (p *Pipeline) Push(x float64) {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	p.evaluate(x)
}

// PushContext is Push with a bounded wait for the writer slot. It returns
// ctx.Err() without evaluating when ctx ends first.
func (p *Pipeline) PushContext(ctx context.Context, x float64) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.sem }()

	p.evaluate(x)

	return nil
}

// PushUint16 pushes an unsigned 16-bit sample.
func (p *Pipeline) PushUint16(x uint16) { p.Push(float64(x)) }

// PushUint32 pushes an unsigned 32-bit sample.
func (p *Pipeline) PushUint32(x uint32) { p.Push(float64(x)) }

// PushInt16 pushes a signed 16-bit sample.
func (p *Pipeline) PushInt16(x int16) { p.Push(float64(x)) }

// PushInt32 pushes a signed 32-bit sample.
func (p *Pipeline) PushInt32(x int32) { p.Push(float64(x)) }

// PushFloat32 pushes a single-precision sample.
func (p *Pipeline) PushFloat32(x float32) { p.Push(float64(x)) }

// evaluate must be called while holding sem.
func (p *Pipeline) evaluate(x float64) {
	next := new(Stages)
	next[0] = x

	for i, pr := range p.slots {
		if pr == nil {
			next[i+1] = next[i]
			continue
		}
		next[i+1] = pr.Apply(next[i])
	}

	p.current.Store(next)

	if p.recorder != nil {
		p.recorder.Record(*next)
	}
}

// Reading returns the final stage of the last push. It never blocks.
func (p *Pipeline) Reading() float64 {
	return p.current.Load().Final()
}

// Stages returns the full trace of the last push. It never blocks.
func (p *Pipeline) Stages() Stages {
	return *p.current.Load()
}

// Quiesce runs fn while no push can run, so processors may be
// reconfigured safely. fn must not call methods of p other than Reading
// and Stages.
func (p *Pipeline) Quiesce(fn func()) {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	fn()
}

// Reset returns every attached processor to its cold-start state and
// clears the stage values. The recorder, if any, is cleared as well.
func (p *Pipeline) Reset() {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	for _, pr := range p.slots {
		if pr != nil {
			pr.Reset()
		}
	}

	p.current.Store(&Stages{})

	if p.recorder != nil {
		p.recorder.Reset()
	}
}

// Info returns the descriptor given at construction.
func (p *Pipeline) Info() Info { return p.info }

// Recorder returns the attached recorder, or nil.
func (p *Pipeline) Recorder() *Recorder { return p.recorder }
