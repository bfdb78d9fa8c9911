package sensor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/CastilloDelSol/GenericSensor/dsp/filter/smooth"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/poly"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/rtd"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/table"
	"github.com/CastilloDelSol/GenericSensor/internal/monitoring"
	"github.com/CastilloDelSol/GenericSensor/internal/testutil"
)

type PipelineSuite struct {
	suite.Suite
	logged []string
	orig   func(string, ...interface{})
}

func (s *PipelineSuite) SetupTest() {
	s.logged = nil
	s.orig = monitoring.Logf
	monitoring.SetLogger(func(format string, _ ...interface{}) {
		s.logged = append(s.logged, format)
	})
}

func (s *PipelineSuite) TearDownTest() {
	monitoring.SetLogger(s.orig)
}

// TestEmptyPassesThrough verifies an unconfigured pipeline copies the raw
// value through every stage.
func (s *PipelineSuite) TestEmptyPassesThrough() {
	p := New()
	s.Equal(Stages{}, p.Stages())

	p.Push(3.5)
	s.Equal(Stages{3.5, 3.5, 3.5, 3.5, 3.5, 3.5}, p.Stages())
	s.Equal(3.5, p.Reading())
}

// TestSlotOrder verifies mappers run before filters and empty slots copy.
func (s *PipelineSuite) TestSlotOrder() {
	p := New()
	p.SetMapper(0, poly.NewLinear(2, 0))
	p.SetMapper(2, poly.NewLinear(1, 1))
	p.SetFilter(1, poly.NewLinear(10, 0))

	p.Push(1)

	want := Stages{1, 2, 2, 3, 3, 30}
	if diff := cmp.Diff(want, p.Stages()); diff != "" {
		s.Failf("stage trace mismatch", "(-want +got):\n%s", diff)
	}

	s.Equal(3.0, p.Stages().Mapped())
	s.Equal(1.0, p.Stages().Raw())
}

// TestOutOfRangeSlotsIgnored verifies rejected assignments change nothing
// and are logged.
func (s *PipelineSuite) TestOutOfRangeSlotsIgnored() {
	p := New()
	p.SetMapper(3, poly.NewLinear(0, 7))
	p.SetMapper(-1, poly.NewLinear(0, 7))
	p.SetFilter(2, poly.NewLinear(0, 7))

	for i := range NumSlots {
		s.Nil(p.Processor(i))
	}

	s.Nil(p.Processor(NumSlots))

	p.Push(4)
	s.Equal(4.0, p.Reading())
	s.Len(s.logged, 3)
}

// TestProcessorAccess verifies slot lookup and clearing.
func (s *PipelineSuite) TestProcessorAccess() {
	p := New()
	k := smooth.NewKalman(1, 0.1)

	p.SetFilter(0, k)
	s.Same(k, p.Processor(3))

	p.SetFilter(0, nil)
	s.Nil(p.Processor(3))
}

// TestPushVariants verifies integer and float32 samples are widened.
func (s *PipelineSuite) TestPushVariants() {
	p := New()

	p.PushUint16(65535)
	s.Equal(65535.0, p.Reading())

	p.PushUint32(4000000000)
	s.Equal(4e9, p.Reading())

	p.PushInt16(-32768)
	s.Equal(-32768.0, p.Reading())

	p.PushInt32(-2000000000)
	s.Equal(-2e9, p.Reading())

	p.PushFloat32(0.5)
	s.Equal(0.5, p.Reading())
}

// TestDeterminism verifies identical configurations give identical traces.
func (s *PipelineSuite) TestDeterminism() {
	in := testutil.NoisyLevel(110, 2, 5, 200)

	run := func() []Stages {
		p := newTemperaturePipeline()

		out := make([]Stages, 0, len(in))
		for _, x := range in {
			p.Push(x)
			out = append(out, p.Stages())
		}

		return out
	}

	first, second := run(), run()
	if diff := cmp.Diff(first, second); diff != "" {
		s.Failf("traces differ between runs", "(-first +second):\n%s", diff)
	}
}

// TestResetReplaysIdentically verifies Reset restores the cold-start state.
func (s *PipelineSuite) TestResetReplaysIdentically() {
	rec := NewRecorder(16)
	p := New(WithRecorder(rec))
	p.SetMapper(0, rtd.New(rtd.Pt100))
	p.SetFilter(0, smooth.NewEMA(0.2))
	p.SetFilter(1, smooth.NewMedian3())

	in := []float64{108, 109, 150, 108.5, 108.7}

	for _, x := range in {
		p.Push(x)
	}
	first := rec.Snapshots()

	p.Reset()
	s.Equal(Stages{}, p.Stages())
	s.Zero(rec.Len())

	for _, x := range in {
		p.Push(x)
	}

	if diff := cmp.Diff(first, rec.Snapshots()); diff != "" {
		s.Failf("replay differs after Reset", "(-first +replay):\n%s", diff)
	}
}

// TestPushContextTimeout verifies a bounded push gives up while the writer
// slot is held.
func (s *PipelineSuite) TestPushContextTimeout() {
	p := New()
	p.Push(1)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		p.Quiesce(func() {
			close(entered)
			<-release
		})
	}()

	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.PushContext(ctx, 99)
	s.True(errors.Is(err, context.DeadlineExceeded), "err = %v", err)
	s.Equal(1.0, p.Reading(), "reading must be readable while the slot is held")

	close(release)
	<-done

	s.Require().NoError(p.PushContext(context.Background(), 99))
	s.Equal(99.0, p.Reading())
}

// TestQuiesceTableEdit verifies table points can be edited between pushes.
func (s *PipelineSuite) TestQuiesceTableEdit() {
	tbl := table.NewPiecewiseLinear()
	tbl.PushPoint(0, 0)
	tbl.PushPoint(10, 100)

	p := New()
	p.SetMapper(0, tbl)

	p.Push(5)
	s.Equal(50.0, p.Reading())

	p.Quiesce(func() {
		tbl.DeletePoint(1)
		tbl.PushPoint(10, 20)
	})

	p.Push(5)
	s.Equal(10.0, p.Reading())
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

// newTemperaturePipeline converts Pt100 ohms to °C and smooths the result.
func newTemperaturePipeline() *Pipeline {
	p := New(WithInfo(NewInfo("Acme", "PT100-A", "0001", "°C", -200, 850)))
	p.SetMapper(0, rtd.New(rtd.Pt100))
	p.SetMapper(1, poly.NewLinear(1.001, -0.05))
	p.SetFilter(0, smooth.NewMedian3())
	p.SetFilter(1, smooth.NewKalman(0.5, 0.01))
	return p
}

func TestConcurrentReadersSeeConsistentTraces(t *testing.T) {
	p := New()
	for i := range NumMappers {
		p.SetMapper(i, poly.NewLinear(1, 1))
	}
	for i := range NumFilters {
		p.SetFilter(i, poly.NewLinear(1, 1))
	}

	p.Push(0)

	const writers, pushes, readers = 4, 500, 4

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, readers)

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				st := p.Stages()
				for i := 1; i < NumStages; i++ {
					if st[i] != st[i-1]+1 {
						errs <- "torn trace"
						return
					}
				}
			}
		}()
	}

	var wwg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wwg.Add(1)
		go func(w int) {
			defer wwg.Done()
			for i := 0; i < pushes; i++ {
				p.Push(float64(w*pushes + i))
			}
		}(w)
	}

	wwg.Wait()
	close(stop)
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Fatal(e)
	}

	st := p.Stages()
	assert.Equal(t, st.Raw()+NumSlots, st.Final())
}

func TestConcurrentStatefulFilter(t *testing.T) {
	// Every push of the same value through a Kalman filter must be counted
	// exactly once, whatever the interleaving.
	p := New()
	k := smooth.NewKalman(1, 0)
	p.SetFilter(0, k)

	const goroutines, pushes = 8, 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < pushes; i++ {
				p.Push(10)
			}
		}()
	}
	wg.Wait()

	// Primed on the first push, then n-1 updates with P0 = 1 and Q = 0.
	n := float64(goroutines*pushes - 1)
	require.InDelta(t, 1/(n+1), k.ErrorCovariance(), 1e-12)
	assert.Equal(t, 10.0, p.Reading())
}
