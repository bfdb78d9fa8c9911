package smooth

import (
	"math"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

const slotEMAAlpha = 0

// EMA is an exponential moving average: y = y*(1-alpha) + x*alpha.
type EMA struct {
	proc.Base
	ema    float64
	primed bool
}

// NewEMA creates an EMA. alpha is clamped to (0, 1].
func NewEMA(alpha float64) *EMA {
	f := &EMA{Base: proc.NewBase(proc.FilterKind(proc.FilterEMA))}
	f.SetAlpha(alpha)
	return f
}

// EMAFromConfig restores an EMA from its record.
func EMAFromConfig(cfg proc.Config) (*EMA, error) {
	if err := cfg.Expect(proc.FilterKind(proc.FilterEMA)); err != nil {
		return nil, err
	}
	return &EMA{Base: proc.BaseFrom(cfg)}, nil
}

// Apply filters one reading.
func (f *EMA) Apply(x float64) float64 {
	if !f.primed {
		f.ema = x
		f.primed = true
		return x
	}

	a := f.Record().F[slotEMAAlpha]
	f.ema = f.ema*(1-a) + x*a

	return f.ema
}

// SetAlpha sets the smoothing factor, clamped to the smallest positive
// float64 up to 1 inclusive. NaN selects 1.
func (f *EMA) SetAlpha(alpha float64) {
	if math.IsNaN(alpha) {
		alpha = 1
	}
	f.Record().F[slotEMAAlpha] = core.Clamp(alpha, core.SmallestPositive, 1)
}

// Alpha returns the smoothing factor.
func (f *EMA) Alpha() float64 { return f.Record().F[slotEMAAlpha] }

// Value returns the current average.
func (f *EMA) Value() float64 { return f.ema }

// Reset returns the filter to its cold-start state.
func (f *EMA) Reset() {
	f.ema = 0
	f.primed = false
}

// FilterType returns proc.FilterEMA.
func (f *EMA) FilterType() proc.FilterType { return proc.FilterEMA }
