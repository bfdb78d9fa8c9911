package proc

import (
	"errors"
	"fmt"
)

// ErrKindMismatch is returned when a record is restored into a processor of
// a different algorithm.
var ErrKindMismatch = errors.New("proc: record kind mismatch")

// Expect returns an error wrapping ErrKindMismatch unless the record is
// tagged with want.
func (c Config) Expect(want Kind) error {
	if got := c.Kind(); got != want {
		return fmt.Errorf("%w: record is %s, want %s", ErrKindMismatch, got, want)
	}
	return nil
}
