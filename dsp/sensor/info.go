package sensor

import "unicode/utf8"

// Text capacities of Info fields, in bytes.
const (
	ManufacturerLen = 31
	ModelLen        = 31
	SerialLen       = 15
	UnitLen         = 7
)

// Info describes the physical sensor behind a pipeline. The pipeline does
// not interpret it.
type Info struct {
	Manufacturer string
	Model        string
	Serial       string
	Unit         string
	Lower        float64
	Upper        float64
}

// NewInfo returns a descriptor with every text field truncated to its
// capacity on a rune boundary.
func NewInfo(manufacturer, model, serial, unit string, lower, upper float64) Info {
	return Info{
		Manufacturer: truncate(manufacturer, ManufacturerLen),
		Model:        truncate(model, ModelLen),
		Serial:       truncate(serial, SerialLen),
		Unit:         truncate(unit, UnitLen),
		Lower:        lower,
		Upper:        upper,
	}
}

// Contains reports whether v lies within the measuring range.
func (i Info) Contains(v float64) bool {
	lo, hi := i.Lower, i.Upper
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	// Cut before a continuation byte so a multi-byte rune is never split.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
