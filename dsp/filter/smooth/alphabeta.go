package smooth

import "github.com/CastilloDelSol/GenericSensor/dsp/proc"

const (
	slotABAlpha = 0
	slotABBeta  = 1
)

// AlphaBeta tracks a level and a trend:
//
//	level' = alpha*x + (1-alpha)*(level+trend)
//	trend' = beta*(level'-level) + (1-beta)*trend
//
// and returns level'+trend', the prediction for the next reading.
type AlphaBeta struct {
	proc.Base
	level  float64
	trend  float64
	primed bool
}

// NewAlphaBeta creates an alpha-beta filter.
func NewAlphaBeta(alpha, beta float64) *AlphaBeta {
	f := &AlphaBeta{Base: proc.NewBase(proc.FilterKind(proc.FilterAlphaBeta))}
	f.Record().F[slotABAlpha] = alpha
	f.Record().F[slotABBeta] = beta
	return f
}

// AlphaBetaFromConfig restores an alpha-beta filter from its record.
func AlphaBetaFromConfig(cfg proc.Config) (*AlphaBeta, error) {
	if err := cfg.Expect(proc.FilterKind(proc.FilterAlphaBeta)); err != nil {
		return nil, err
	}
	return &AlphaBeta{Base: proc.BaseFrom(cfg)}, nil
}

// Apply filters one reading.
func (f *AlphaBeta) Apply(x float64) float64 {
	if !f.primed {
		f.level = x
		f.trend = 0
		f.primed = true
		return x
	}

	cfg := f.Record()
	alpha, beta := cfg.F[slotABAlpha], cfg.F[slotABBeta]

	prev := f.level
	f.level = alpha*x + (1-alpha)*(f.level+f.trend)
	f.trend = beta*(f.level-prev) + (1-beta)*f.trend

	return f.level + f.trend
}

// Level returns the smoothed level.
func (f *AlphaBeta) Level() float64 { return f.level }

// Trend returns the per-reading trend estimate.
func (f *AlphaBeta) Trend() float64 { return f.trend }

// Reset returns the filter to its cold-start state.
func (f *AlphaBeta) Reset() {
	f.level, f.trend = 0, 0
	f.primed = false
}

// FilterType returns proc.FilterAlphaBeta.
func (f *AlphaBeta) FilterType() proc.FilterType { return proc.FilterAlphaBeta }
