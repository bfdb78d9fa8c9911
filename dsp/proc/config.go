package proc

import "github.com/CastilloDelSol/GenericSensor/dsp/core"

const (
	// NumBytes is the number of small integer tag slots.
	NumBytes = 8
	// NumUnits is the number of packed unit-code words.
	NumUnits = 2
	// NumFloats is the number of float parameter slots.
	NumFloats = 16
)

// Byte slot assignments shared by every processor.
const (
	SlotRole       = 0
	SlotMapperType = 1
	SlotSubType    = 2
	SlotTableSize  = 3
	SlotDegree     = 4
)

// Config is the fixed-size configuration record of one processing stage.
type Config struct {
	U     [NumBytes]uint8
	Units [NumUnits]uint32
	F     [NumFloats]float64
}

// NewConfig returns a zeroed record tagged with k.
func NewConfig(k Kind) Config {
	var c Config
	c.SetKind(k)
	return c
}

// SetFloat writes a float parameter. idx is clamped to [0, NumFloats-1].
func (c *Config) SetFloat(idx int, v float64) {
	c.F[core.ClampIndex(idx, NumFloats)] = v
}

// SetByte writes a tag byte. idx is clamped to [0, NumBytes-1].
func (c *Config) SetByte(idx int, v uint8) {
	c.U[core.ClampIndex(idx, NumBytes)] = v
}

// SetUnits writes a packed unit code. idx is clamped to [0, NumUnits-1].
func (c *Config) SetUnits(idx int, v uint32) {
	c.Units[core.ClampIndex(idx, NumUnits)] = v
}

// Float reads a float parameter with a clamped index.
func (c Config) Float(idx int) float64 {
	return c.F[core.ClampIndex(idx, NumFloats)]
}

// Byte reads a tag byte with a clamped index.
func (c Config) Byte(idx int) uint8 {
	return c.U[core.ClampIndex(idx, NumBytes)]
}

// UnitCode reads a packed unit code with a clamped index.
func (c Config) UnitCode(idx int) uint32 {
	return c.Units[core.ClampIndex(idx, NumUnits)]
}

// Role returns the role tag.
func (c Config) Role() Role { return Role(c.U[SlotRole]) }

// MapperType returns the mapper family tag.
func (c Config) MapperType() MapperType { return MapperType(c.U[SlotMapperType]) }

// SubType returns the raw algorithm tag.
func (c Config) SubType() uint8 { return c.U[SlotSubType] }

// TableSize returns the table point count.
func (c Config) TableSize() int { return int(c.U[SlotTableSize]) }

// Degree returns the polynomial degree.
func (c Config) Degree() int { return int(c.U[SlotDegree]) }

// Kind returns the tagged identity stored in the record.
func (c Config) Kind() Kind {
	return Kind{Role: c.Role(), Mapper: c.MapperType(), Sub: c.SubType()}
}

// SetKind stores k in the role, mapper and sub-type slots.
func (c *Config) SetKind(k Kind) {
	c.U[SlotRole] = uint8(k.Role)
	c.U[SlotMapperType] = uint8(k.Mapper)
	c.U[SlotSubType] = k.Sub
}
