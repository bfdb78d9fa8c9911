package sensor

// NewBank allocates n pipelines in one contiguous block, each configured
// with opts. Options apply to every pipeline, so a recorder passed in opts
// is shared by all of them.
func NewBank(n int, opts ...Option) []Pipeline {
	if n < 0 {
		n = 0
	}

	bank := make([]Pipeline, n)
	for i := range bank {
		bank[i].init(opts)
	}

	return bank
}

// Span is a non-owning view over a block of pipelines.
type Span struct {
	data []Pipeline
}

// NewSpan returns a view over data.
func NewSpan(data []Pipeline) Span {
	return Span{data: data}
}

// Len returns the number of pipelines.
func (s Span) Len() int { return len(s.data) }

// Empty reports whether the view is empty.
func (s Span) Empty() bool { return len(s.data) == 0 }

// At returns the pipeline at i. It panics when i is out of range.
func (s Span) At(i int) *Pipeline { return &s.data[i] }

// Data returns the underlying block.
func (s Span) Data() []Pipeline { return s.data }

// Readings writes the reading of every pipeline into dst, growing it when
// needed, and returns it.
func (s Span) Readings(dst []float64) []float64 {
	if cap(dst) < len(s.data) {
		dst = make([]float64, len(s.data))
	}
	dst = dst[:len(s.data)]

	for i := range s.data {
		dst[i] = s.data[i].Reading()
	}

	return dst
}
