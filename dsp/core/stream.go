package core

// StreamConfig describes a stream of sensor readings.
type StreamConfig struct {
	// SampleRate is the reading rate in Hz.
	SampleRate float64
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns the defaults for a slow sensor stream.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: 10,
	}
}

// WithSampleRate sets the reading rate. Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
