package smooth

import "github.com/CastilloDelSol/GenericSensor/dsp/proc"

const (
	slotKalmanR = 0 // measurement noise
	slotKalmanQ = 1 // process noise

	initialErrorCovariance = 1.0
)

// Kalman is a one-dimensional random-walk Kalman filter. Each reading runs
//
//	p += Q
//	k  = p / (p + R)
//	x += k * (z - x)
//	p *= 1 - k
type Kalman struct {
	proc.Base
	estimate float64
	errCov   float64
	gain     float64
	primed   bool
}

// NewKalman creates a Kalman filter from the measurement noise R and the
// process noise Q.
func NewKalman(measurementNoise, processNoise float64) *Kalman {
	f := &Kalman{
		Base:   proc.NewBase(proc.FilterKind(proc.FilterKalman)),
		errCov: initialErrorCovariance,
	}
	f.Record().F[slotKalmanR] = measurementNoise
	f.Record().F[slotKalmanQ] = processNoise
	return f
}

// KalmanFromConfig restores a Kalman filter from its record.
func KalmanFromConfig(cfg proc.Config) (*Kalman, error) {
	if err := cfg.Expect(proc.FilterKind(proc.FilterKalman)); err != nil {
		return nil, err
	}
	return &Kalman{Base: proc.BaseFrom(cfg), errCov: initialErrorCovariance}, nil
}

// Apply filters one reading.
func (f *Kalman) Apply(z float64) float64 {
	if !f.primed {
		f.estimate = z
		f.primed = true
		return z
	}

	cfg := f.Record()

	f.errCov += cfg.F[slotKalmanQ]
	f.gain = f.errCov / (f.errCov + cfg.F[slotKalmanR])
	f.estimate += f.gain * (z - f.estimate)
	f.errCov *= 1 - f.gain

	return f.estimate
}

// MeasurementNoise returns R.
func (f *Kalman) MeasurementNoise() float64 { return f.Record().F[slotKalmanR] }

// ProcessNoise returns Q.
func (f *Kalman) ProcessNoise() float64 { return f.Record().F[slotKalmanQ] }

// Estimate returns the current state estimate.
func (f *Kalman) Estimate() float64 { return f.estimate }

// Gain returns the gain used for the most recent reading.
func (f *Kalman) Gain() float64 { return f.gain }

// ErrorCovariance returns the current estimate error covariance.
func (f *Kalman) ErrorCovariance() float64 { return f.errCov }

// Reset returns the filter to its cold-start state.
func (f *Kalman) Reset() {
	f.estimate = 0
	f.errCov = initialErrorCovariance
	f.gain = 0
	f.primed = false
}

// FilterType returns proc.FilterKalman.
func (f *Kalman) FilterType() proc.FilterType { return proc.FilterKalman }
