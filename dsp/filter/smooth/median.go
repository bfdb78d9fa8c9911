package smooth

import "github.com/CastilloDelSol/GenericSensor/dsp/proc"

// Median3 returns the median of the last three readings. Until three
// readings have been seen the input passes through unchanged.
type Median3 struct {
	proc.Base
	window [3]float64
	pos    int
	primed bool
}

// NewMedian3 creates a median-of-three filter.
func NewMedian3() *Median3 {
	return &Median3{Base: proc.NewBase(proc.FilterKind(proc.FilterMedian3))}
}

// Median3FromConfig restores a median-of-three filter from its record.
func Median3FromConfig(cfg proc.Config) (*Median3, error) {
	if err := cfg.Expect(proc.FilterKind(proc.FilterMedian3)); err != nil {
		return nil, err
	}
	return &Median3{Base: proc.BaseFrom(cfg)}, nil
}

// Apply filters one reading. The oldest entry of the window is replaced.
func (f *Median3) Apply(x float64) float64 {
	f.window[f.pos] = x
	f.pos = (f.pos + 1) % len(f.window)

	if !f.primed && f.pos == 0 {
		f.primed = true
	}

	if !f.primed {
		return x
	}

	return median3(f.window[0], f.window[1], f.window[2])
}

// Reset returns the filter to its cold-start state.
func (f *Median3) Reset() {
	f.window = [3]float64{}
	f.pos = 0
	f.primed = false
}

// FilterType returns proc.FilterMedian3.
func (f *Median3) FilterType() proc.FilterType { return proc.FilterMedian3 }

func median3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}
