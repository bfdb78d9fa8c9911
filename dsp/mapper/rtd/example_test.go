package rtd_test

import (
	"fmt"

	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/rtd"
)

func ExampleNew() {
	m := rtd.New(rtd.Pt100)

	for _, ohms := range []float64{18.52, 100, 138.5055} {
		fmt.Printf("%.3f\n", m.Apply(ohms))
	}
	// Output:
	// -200.000
	// 0.000
	// 100.000
}
