package sensor

import "sync"

// Recorder keeps the most recent traces of a pipeline in a ring buffer.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	buf   []Stages
	next  int
	count int
}

// NewRecorder returns a recorder holding up to capacity traces. A capacity
// below one is raised to one.
func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	return &Recorder{buf: make([]Stages, capacity)}
}

// Record appends s, overwriting the oldest trace when full.
func (r *Recorder) Record(s Stages) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = s
	r.next = (r.next + 1) % len(r.buf)

	if r.count < len(r.buf) {
		r.count++
	}
}

// Cap returns the capacity.
func (r *Recorder) Cap() int { return len(r.buf) }

// Len returns the number of traces held.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// Snapshots returns the held traces, oldest first.
func (r *Recorder) Snapshots() []Stages {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Stages, 0, r.count)
	start := (r.next - r.count + len(r.buf)) % len(r.buf)

	for i := range r.count {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}

	return out
}

// History appends the values of one stage (0..5), oldest first, to dst
// and returns the extended slice. An out-of-range stage appends nothing.
func (r *Recorder) History(stage int, dst []float64) []float64 {
	if stage < 0 || stage >= NumStages {
		return dst
	}

	for _, s := range r.Snapshots() {
		dst = append(dst, s[stage])
	}

	return dst
}

// Reset discards every trace.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next = 0
	r.count = 0
}
