package smooth

import (
	"math"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

const (
	slotAdaptiveAlphaMin = 0
	slotAdaptiveDeltaMax = 1
)

// AdaptiveEMA is an EMA whose alpha is recomputed from every jump: the
// absolute difference to the previous output, clamped to [0, deltaMax], is
// mapped linearly onto [alphaMin, 1]. Large jumps are tracked quickly and
// small ones are smoothed heavily.
//
// A deltaMax <= 0 makes every jump saturate, so alpha is always 1.
type AdaptiveEMA struct {
	proc.Base
	alpha  float64
	prev   float64
	primed bool
}

// NewAdaptiveEMA creates an adaptive EMA.
func NewAdaptiveEMA(alphaMin, deltaMax float64) *AdaptiveEMA {
	f := &AdaptiveEMA{Base: proc.NewBase(proc.FilterKind(proc.FilterAdaptiveEMA))}
	f.Record().F[slotAdaptiveAlphaMin] = alphaMin
	f.Record().F[slotAdaptiveDeltaMax] = deltaMax
	f.alpha = alphaMin
	return f
}

// AdaptiveEMAFromConfig restores an adaptive EMA from its record.
func AdaptiveEMAFromConfig(cfg proc.Config) (*AdaptiveEMA, error) {
	if err := cfg.Expect(proc.FilterKind(proc.FilterAdaptiveEMA)); err != nil {
		return nil, err
	}
	f := &AdaptiveEMA{Base: proc.BaseFrom(cfg)}
	f.alpha = cfg.F[slotAdaptiveAlphaMin]
	return f, nil
}

// Apply filters one reading.
func (f *AdaptiveEMA) Apply(x float64) float64 {
	if !f.primed {
		f.prev = x
		f.primed = true
		return x
	}

	cfg := f.Record()
	alphaMin, deltaMax := cfg.F[slotAdaptiveAlphaMin], cfg.F[slotAdaptiveDeltaMax]

	if deltaMax > 0 {
		f.alpha = core.MapRange(math.Abs(x-f.prev), 0, deltaMax, alphaMin, 1)
	} else {
		f.alpha = 1
	}

	f.prev = f.alpha*x + (1-f.alpha)*f.prev

	return f.prev
}

// Alpha returns the alpha used for the most recent reading.
func (f *AdaptiveEMA) Alpha() float64 { return f.alpha }

// Reset returns the filter to its cold-start state.
func (f *AdaptiveEMA) Reset() {
	f.prev = 0
	f.alpha = f.Record().F[slotAdaptiveAlphaMin]
	f.primed = false
}

// FilterType returns proc.FilterAdaptiveEMA.
func (f *AdaptiveEMA) FilterType() proc.FilterType { return proc.FilterAdaptiveEMA }
