package spectrum_test

import (
	"fmt"
	"math"

	"github.com/CastilloDelSol/GenericSensor/stats/spectrum"
)

func ExampleAnalyze() {
	// 50 Hz mains pickup on a sensor sampled at 400 Hz.
	x := make([]float64, 128)
	for i := range x {
		x[i] = 20 + 0.5*math.Sin(2*math.Pi*50*float64(i)/400)
	}

	r, err := spectrum.Analyze(x, 400)
	if err != nil {
		panic(err)
	}

	fmt.Printf("dominant=%.1f Hz amplitude=%.2f\n", r.Dominant, r.DominantMag)

	// Output:
	// dominant=50.0 Hz amplitude=0.50
}
