package proc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// RecordSize is the length of a binary-encoded Config.
const RecordSize = NumBytes + 4*NumUnits + 8*NumFloats

// ErrRecordSize is returned when decoding a record of the wrong length.
var ErrRecordSize = errors.New("proc: invalid record size")

// MarshalBinary encodes the record in a fixed little-endian layout: tag
// bytes, unit words, then float parameters.
func (c Config) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, RecordSize))
}

// AppendBinary appends the encoded record to b.
func (c Config) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, c.U[:]...)
	for _, u := range c.Units {
		b = binary.LittleEndian.AppendUint32(b, u)
	}
	for _, f := range c.F {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
	}
	return b, nil
}

// UnmarshalBinary decodes a record produced by MarshalBinary.
func (c *Config) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrRecordSize, len(data), RecordSize)
	}

	copy(c.U[:], data[:NumBytes])
	off := NumBytes
	for i := range c.Units {
		c.Units[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}
	for i := range c.F {
		c.F[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
		off += 8
	}

	return nil
}
