package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.bug.st/serial"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/rtd"
	"github.com/CastilloDelSol/GenericSensor/dsp/signal"
)

// errStop ends a sample stream early without reporting an error.
var errStop = errors.New("stop")

// readSamples calls fn with the first numeric field of every line of r.
// Blank lines and lines starting with '#' are skipped. Fields may be
// separated by commas, semicolons or white space.
func readSamples(r io.Reader, fn func(float64) error) error {
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		field := fields[0]

		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid sample %q: %w", line, field, err)
		}

		if err := fn(x); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read samples: %w", err)
	}

	return nil
}

// portOptions describes the serial connection of a line-oriented sensor.
type portOptions struct {
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
}

// serialMode converts the options into a serial.Mode, applying defaults
// for unset values.
func (o portOptions) serialMode() (*serial.Mode, error) {
	mode := &serial.Mode{BaudRate: o.BaudRate, DataBits: o.DataBits}

	if mode.BaudRate <= 0 {
		mode.BaudRate = 115200
	}

	if mode.DataBits == 0 {
		mode.DataBits = 8
	}
	if mode.DataBits < 5 || mode.DataBits > 8 {
		return nil, fmt.Errorf("invalid data bits %d: must be between 5 and 8", mode.DataBits)
	}

	switch o.StopBits {
	case 0, 1:
		mode.StopBits = serial.OneStopBit
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", o.StopBits)
	}

	switch strings.TrimSpace(strings.ToUpper(o.Parity)) {
	case "", "N", "NONE":
		mode.Parity = serial.NoParity
	case "E", "EVEN":
		mode.Parity = serial.EvenParity
	case "O", "ODD":
		mode.Parity = serial.OddParity
	default:
		return nil, fmt.Errorf("unsupported parity %q: expected N, E, or O", o.Parity)
	}

	return mode, nil
}

// openSerial opens the port at path for line-oriented sample input.
func openSerial(path string, opts portOptions) (serial.Port, error) {
	mode, err := opts.serialMode()
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}

	return port, nil
}

// simulation describes a synthetic Pt100 probe: a temperature profile
// converted to ohms, plus measurement noise and optional outliers.
type simulation struct {
	Profile    string // constant, ramp or sine
	Samples    int
	SampleRate float64
	Seed       int64
	Base       float64 // °C
	Span       float64 // °C, ramp rise or sine amplitude
	Period     float64 // s, sine period
	Noise      float64 // Ω standard deviation
	SpikeEvery int     // 0 disables outliers
	SpikeOhms  float64
	R0         float64
}

// simulate returns the raw resistance samples of s.
func simulate(s simulation) ([]float64, error) {
	g := signal.NewGeneratorWithOptions(
		[]core.StreamOption{core.WithSampleRate(s.SampleRate)},
		signal.WithSeed(s.Seed),
	)

	var (
		temps []float64
		err   error
	)

	switch s.Profile {
	case "constant":
		temps, err = g.Constant(s.Base, s.Samples)
	case "ramp":
		temps, err = g.Ramp(s.Base, s.Base+s.Span, s.Samples)
	case "sine":
		if !(s.Period > 0) {
			return nil, fmt.Errorf("sine period must be > 0: %f", s.Period)
		}
		temps, err = g.Sine(1/s.Period, s.Span, s.Samples)
		if err == nil {
			temps = signal.Scale(temps, 1, s.Base)
		}
	default:
		return nil, fmt.Errorf("unknown simulation profile %q: expected constant, ramp or sine", s.Profile)
	}
	if err != nil {
		return nil, err
	}

	ohms := make([]float64, len(temps))
	for i, t := range temps {
		ohms[i] = rtd.Resistance(t, s.R0)
	}

	noise, err := g.GaussianNoise(s.Noise, s.Samples)
	if err != nil {
		return nil, err
	}

	ohms, err = signal.Sum(ohms, noise)
	if err != nil {
		return nil, err
	}

	if s.SpikeEvery > 0 {
		ohms, err = signal.Spikes(ohms, s.SpikeEvery, s.SpikeEvery/2, s.SpikeOhms)
		if err != nil {
			return nil, err
		}
	}

	return ohms, nil
}
