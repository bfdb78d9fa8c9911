package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/CastilloDelSol/GenericSensor/dsp/sensor"
	"github.com/CastilloDelSol/GenericSensor/stats/noise"
	"github.com/CastilloDelSol/GenericSensor/stats/spectrum"
)

var stageNames = [sensor.NumStages]string{"raw", "mapper0", "mapper1", "mapper2", "filter0", "filter1"}

// traceWriter writes one CSV row per push: the sample index followed by
// every stage value.
type traceWriter struct {
	w   *csv.Writer
	n   int
	row []string
}

func newTraceWriter(w io.Writer) (*traceWriter, error) {
	t := &traceWriter{w: csv.NewWriter(w), row: make([]string, sensor.NumStages+1)}

	t.row[0] = "n"
	copy(t.row[1:], stageNames[:])
	if err := t.w.Write(t.row); err != nil {
		return nil, fmt.Errorf("failed to write trace header: %w", err)
	}

	return t, nil
}

func (t *traceWriter) write(s sensor.Stages) error {
	t.row[0] = strconv.Itoa(t.n)
	for i, v := range s {
		t.row[i+1] = strconv.FormatFloat(v, 'g', 10, 64)
	}
	t.n++

	return t.w.Write(t.row)
}

func (t *traceWriter) flush() error {
	t.w.Flush()
	return t.w.Error()
}

// printReport writes the per-stage noise table and, when sp is not
// nil, the spectral summary of the final stage.
func printReport(w io.Writer, info sensor.Info, r noise.Report, sp *spectrum.Result, sampleRate float64) error {
	if info.Model != "" || info.Unit != "" {
		if _, err := fmt.Fprintf(w, "Sensor: %s %s (serial %s), unit %s, range [%g, %g]\n\n",
			info.Manufacturer, info.Model, info.Serial, info.Unit, info.Lower, info.Upper); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tSamples\tMean\tStdDev\tPeak-Peak\tMin\tMax\tDrift [/s]\tAtten [dB]\n"); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t----\t------\t---------\t---\t---\t----------\t----------\n"); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for i, s := range r.Stages {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.4g\t%.4g\t%.6g\t%.6g\t%.4g\t%s\n",
			stageNames[i],
			s.Length,
			s.Mean,
			s.StdDev,
			s.PeakToPeak,
			s.Min,
			s.Max,
			s.Drift*sampleRate,
			formatDB(r.Attenuation[i]),
		); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	if sp == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "\nSpectrum of %s: dominant %.4g Hz (amplitude %.4g), centroid %.4g Hz, flatness %.3f, rolloff %.4g Hz\n",
		stageNames[sensor.NumSlots], sp.Dominant, sp.DominantMag, sp.Centroid, sp.Flatness, sp.Rolloff)

	return err
}

func formatDB(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
