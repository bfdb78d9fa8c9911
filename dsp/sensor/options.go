package sensor

type config struct {
	info     Info
	recorder *Recorder
}

// Option configures a Pipeline.
type Option func(*config)

// WithInfo attaches a descriptor to the pipeline.
func WithInfo(info Info) Option {
	return func(c *config) { c.info = info }
}

// WithRecorder records every published trace into r.
func WithRecorder(r *Recorder) Option {
	return func(c *config) { c.recorder = r }
}
