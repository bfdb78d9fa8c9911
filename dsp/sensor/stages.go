package sensor

const (
	// NumMappers is the number of mapper slots.
	NumMappers = 3
	// NumFilters is the number of filter slots.
	NumFilters = 2
	// NumSlots is the total number of processor slots.
	NumSlots = NumMappers + NumFilters
	// NumStages is the number of recorded stage values: the raw input plus
	// one per slot.
	NumStages = NumSlots + 1
)

// Stages is the value trace of one push: index 0 is the raw sample and
// index i+1 the output of slot i.
type Stages [NumStages]float64

// Raw returns the raw input stage.
func (s Stages) Raw() float64 { return s[0] }

// Final returns the last stage, the pipeline reading.
func (s Stages) Final() float64 { return s[NumSlots] }

// Mapped returns the value after the last mapper slot, before filtering.
func (s Stages) Mapped() float64 { return s[NumMappers] }
