package registry

import (
	"math"

	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/table"
)

// Params holds the parameters used to build one processor.
type Params struct {
	Type   string
	Num    map[string]float64
	Points []table.Point
	Coeffs []float64
}

// GetNum safely extracts a numeric parameter, returning def if missing or
// not finite.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}
