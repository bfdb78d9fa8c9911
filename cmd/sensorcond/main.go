// Command sensorcond runs raw sensor samples through a conditioning
// pipeline described by a JSON file.
//
// Usage:
//
//	sensorcond -config pipeline.json [flags] [samples-file]
//
// Samples are read one per line from the named file, from stdin when no
// file is given, from a serial port with -serial, or generated by a
// simulated Pt100 probe with -sim.
//
// Examples:
//
//	sensorcond -config config/pt100.example.json -trace readings.txt
//	sensorcond -config config/pt100.example.json -sim ramp -n 600 -stats
//	sensorcond -config config/pt100.example.json -serial /dev/ttyUSB0 -baud 115200
//	sensorcond -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/rtd"
	"github.com/CastilloDelSol/GenericSensor/dsp/registry"
	"github.com/CastilloDelSol/GenericSensor/dsp/sensor"
	"github.com/CastilloDelSol/GenericSensor/internal/config"
	"github.com/CastilloDelSol/GenericSensor/internal/monitoring"
	"github.com/CastilloDelSol/GenericSensor/stats/noise"
	"github.com/CastilloDelSol/GenericSensor/stats/spectrum"
)

const defaultHistory = 4096

type options struct {
	configPath string
	list       bool
	trace      bool
	stats      bool
	quiet      bool
	timeout    time.Duration
	input      string
	serialPath string
	port       portOptions
	sim        simulation
	simOn      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.quiet {
		monitoring.SetLogger(nil)
	}

	reg := registry.Default()

	if opts.list {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if opts.configPath == "" {
		fmt.Fprintln(stderr, "error: -config is required")
		return 2
	}

	if err := process(ctx, opts, reg, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("sensorcond", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "JSON pipeline description")
	fs.BoolVar(&o.list, "list", false, "list available processor types")
	fs.BoolVar(&o.trace, "trace", false, "write every stage of every push as CSV to stdout")
	fs.BoolVar(&o.stats, "stats", false, "print per-stage noise statistics and the final-stage spectrum")
	fs.BoolVar(&o.quiet, "quiet", false, "suppress diagnostic logging")
	fs.DurationVar(&o.timeout, "timeout", 0, "give up on a push that waits longer than this (0 waits forever)")

	fs.StringVar(&o.serialPath, "serial", "", "read samples from this serial port")
	fs.IntVar(&o.port.BaudRate, "baud", 115200, "serial baud rate")
	fs.IntVar(&o.port.DataBits, "databits", 8, "serial data bits (5-8)")
	fs.IntVar(&o.port.StopBits, "stopbits", 1, "serial stop bits (1 or 2)")
	fs.StringVar(&o.port.Parity, "parity", "N", "serial parity (N, E or O)")

	fs.StringVar(&o.sim.Profile, "sim", "", "simulate a Pt100 probe: constant, ramp or sine")
	fs.IntVar(&o.sim.Samples, "n", 1000, "number of simulated samples")
	fs.Int64Var(&o.sim.Seed, "seed", 1, "simulation noise seed")
	fs.Float64Var(&o.sim.Base, "temp", 25, "simulated base temperature in °C")
	fs.Float64Var(&o.sim.Span, "span", 10, "simulated ramp rise or sine amplitude in °C")
	fs.Float64Var(&o.sim.Period, "period", 60, "simulated sine period in seconds")
	fs.Float64Var(&o.sim.Noise, "noise", 0.02, "simulated noise standard deviation in Ω")
	fs.IntVar(&o.sim.SpikeEvery, "spike-every", 0, "inject an outlier every N simulated samples (0 disables)")
	fs.Float64Var(&o.sim.SpikeOhms, "spike", 5, "simulated outlier height in Ω")
	fs.Float64Var(&o.sim.R0, "r0", rtd.Pt100, "simulated probe nominal resistance in Ω")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sensorcond -config pipeline.json [flags] [samples-file]\n\n")
		fmt.Fprintf(stderr, "Runs raw sensor samples through a conditioning pipeline.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sensorcond -config config/pt100.example.json -trace readings.txt\n")
		fmt.Fprintf(stderr, "  sensorcond -config config/pt100.example.json -sim ramp -n 600 -stats\n")
		fmt.Fprintf(stderr, "  sensorcond -list\n")
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.simOn = o.sim.Profile != ""
	if fs.NArg() > 0 {
		o.input = fs.Arg(0)
	}

	sources := 0
	for _, on := range []bool{o.simOn, o.serialPath != "", o.input != ""} {
		if on {
			sources++
		}
	}
	if sources > 1 {
		fmt.Fprintln(stderr, "error: choose one of -sim, -serial or a samples file")
		return o, errors.New("conflicting sample sources")
	}

	return o, nil
}

func process(ctx context.Context, o options, reg *registry.Registry, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.stats && cfg.GetHistory() == 0 {
		n := defaultHistory
		if o.simOn && o.sim.Samples > 0 {
			n = o.sim.Samples
		}
		cfg.History = &n
	}

	p, err := cfg.Build(reg)
	if err != nil {
		return err
	}

	var tw *traceWriter
	if o.trace {
		if tw, err = newTraceWriter(stdout); err != nil {
			return err
		}
	}

	outOfRange := 0
	info := p.Info()
	checkRange := info.Lower != info.Upper

	push := func(x float64) error {
		if err := ctx.Err(); err != nil {
			return errStop
		}

		if o.timeout > 0 {
			pctx, cancel := context.WithTimeout(ctx, o.timeout)
			err := p.PushContext(pctx, x)
			cancel()
			if err != nil {
				return fmt.Errorf("push: %w", err)
			}
		} else {
			p.Push(x)
		}

		if checkRange && !info.Contains(p.Reading()) {
			outOfRange++
		}

		if tw != nil {
			return tw.write(p.Stages())
		}

		return nil
	}

	if err := feed(ctx, o, cfg.GetSampleRate(), stdin, push); err != nil && !errors.Is(err, errStop) {
		return err
	}

	if tw != nil {
		if err := tw.flush(); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}

	if outOfRange > 0 {
		monitoring.Logf("sensorcond: %d readings outside [%g, %g] %s", outOfRange, info.Lower, info.Upper, info.Unit)
	}

	if !o.stats {
		if !o.trace {
			fmt.Fprintf(stdout, "%g\n", p.Reading())
		}
		return nil
	}

	return report(p, cfg.GetSampleRate(), stdout)
}

func feed(ctx context.Context, o options, sampleRate float64, stdin io.Reader, push func(float64) error) error {
	switch {
	case o.simOn:
		sim := o.sim
		sim.SampleRate = sampleRate
		samples, err := simulate(sim)
		if err != nil {
			return err
		}
		for _, x := range samples {
			if err := push(x); err != nil {
				return err
			}
		}
		return nil

	case o.serialPath != "":
		port, err := openSerial(o.serialPath, o.port)
		if err != nil {
			return err
		}
		defer port.Close()

		// Closing the port unblocks the pending read on interrupt.
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				_ = port.Close()
			case <-done:
			}
		}()

		monitoring.Logf("sensorcond: reading samples from %s", o.serialPath)
		if err := readSamples(port, push); err != nil && ctx.Err() == nil {
			return err
		}
		return nil

	case o.input != "":
		f, err := os.Open(o.input)
		if err != nil {
			return fmt.Errorf("failed to open samples file: %w", err)
		}
		defer f.Close()

		return readSamples(f, push)
	}

	return readSamples(stdin, push)
}

func report(p *sensor.Pipeline, sampleRate float64, w io.Writer) error {
	rec := p.Recorder()
	if rec == nil || rec.Len() == 0 {
		return errors.New("no samples recorded")
	}

	r := noise.Analyze(rec)

	var sp *spectrum.Result
	if res, err := spectrum.Analyze(rec.History(sensor.NumSlots, nil), sampleRate); err == nil {
		sp = &res
	} else {
		monitoring.Logf("sensorcond: spectrum skipped: %v", err)
	}

	return printReport(w, p.Info(), r, sp, sampleRate)
}
