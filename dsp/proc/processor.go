package proc

// Processor is one stage of a measurement pipeline.
//
// Apply consumes the previous stage's value and returns the next one. It
// never modifies the configuration record but may update private runtime
// state, so calls are order dependent.
type Processor interface {
	Apply(x float64) float64
	Kind() Kind
	Config() Config
	Reset()
}

// Mapper is a domain or unit transform.
type Mapper interface {
	Processor
	MapperType() MapperType
}

// Filter is a noise or dynamics transform.
type Filter interface {
	Processor
	FilterType() FilterType
}

// Base carries the configuration record of a processor. Concrete types
// embed it to inherit the record setters.
type Base struct {
	cfg Config
}

// NewBase returns a Base whose record is tagged with k.
func NewBase(k Kind) Base {
	return Base{cfg: NewConfig(k)}
}

// BaseFrom returns a Base holding a copy of cfg.
func BaseFrom(cfg Config) Base {
	return Base{cfg: cfg}
}

// Config returns a copy of the record.
func (b *Base) Config() Config { return b.cfg }

// Record returns the record for in-place access by the embedding type.
func (b *Base) Record() *Config { return &b.cfg }

// Kind returns the tagged identity of the record.
func (b *Base) Kind() Kind { return b.cfg.Kind() }

// SetFloat writes a float parameter with a clamped index.
func (b *Base) SetFloat(idx int, v float64) { b.cfg.SetFloat(idx, v) }

// SetByte writes a tag byte with a clamped index.
func (b *Base) SetByte(idx int, v uint8) { b.cfg.SetByte(idx, v) }

// SetUnits writes a packed unit code with a clamped index.
func (b *Base) SetUnits(idx int, v uint32) { b.cfg.SetUnits(idx, v) }
