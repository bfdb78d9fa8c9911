package noise

import "github.com/CastilloDelSol/GenericSensor/dsp/sensor"

// Report holds the statistics of every stage of a recorded history and
// the attenuation of each stage relative to the raw input.
type Report struct {
	Stages      [sensor.NumStages]Stats
	Attenuation [sensor.NumStages]float64 // dB relative to stage 0
}

// Analyze computes a Report from the traces held by rec.
func Analyze(rec *sensor.Recorder) Report {
	var (
		r      Report
		raw    []float64
		series []float64
	)

	raw = rec.History(0, nil)

	for i := range sensor.NumStages {
		series = rec.History(i, series[:0])
		r.Stages[i] = Calculate(series)
		r.Attenuation[i] = Attenuation(raw, series)
	}

	return r
}
