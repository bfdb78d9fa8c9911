package proc

import (
	"errors"
	"testing"
)

func TestSetFloatClampsIndex(t *testing.T) {
	var c Config

	c.SetFloat(-3, 1.5)
	c.SetFloat(99, 2.5)
	c.SetFloat(7, 3.5)

	if c.F[0] != 1.5 {
		t.Fatalf("F[0] = %v, want 1.5", c.F[0])
	}
	if c.F[NumFloats-1] != 2.5 {
		t.Fatalf("F[15] = %v, want 2.5", c.F[NumFloats-1])
	}
	if c.Float(7) != 3.5 || c.Float(1000) != 2.5 {
		t.Fatalf("Float readback mismatch: %v %v", c.Float(7), c.Float(1000))
	}
}

func TestSetByteAndUnitsClampIndex(t *testing.T) {
	var c Config

	c.SetByte(11, 9)
	if c.U[NumBytes-1] != 9 {
		t.Fatalf("U[7] = %d, want 9", c.U[NumBytes-1])
	}

	c.SetUnits(5, 0xCAFE)
	if c.Units[1] != 0xCAFE || c.UnitCode(9) != 0xCAFE {
		t.Fatalf("Units = %#v, want last slot 0xCAFE", c.Units)
	}

	c.SetUnits(-1, 7)
	if c.Units[0] != 7 {
		t.Fatalf("Units[0] = %d, want 7", c.Units[0])
	}
}

func TestKindRoundTrip(t *testing.T) {
	tests := []Kind{
		FilterKind(FilterKalman),
		TableKind(TableMonotonicSpline),
		FunctionKind(FunctionRTD385),
		{},
	}

	for _, k := range tests {
		c := NewConfig(k)
		if got := c.Kind(); got != k {
			t.Fatalf("Kind() = %v, want %v", got, k)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{FilterKind(FilterEMA), "filter/ema"},
		{TableKind(TablePiecewiseLinear), "table/piecewise-linear"},
		{FunctionKind(FunctionRTD385Approx), "function/rtd385-approx"},
		{Kind{}, "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	c := NewConfig(TableKind(TablePiecewiseLinear))
	c.SetByte(SlotTableSize, 2)
	c.SetUnits(0, 0x00430000)
	c.SetFloat(0, 0)
	c.SetFloat(1, 10)
	c.SetFloat(8, 0)
	c.SetFloat(9, -123.25)

	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != RecordSize {
		t.Fatalf("len = %d, want %d", len(data), RecordSize)
	}

	var got Config
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if got != c {
		t.Fatalf("decoded record differs:\n got %#v\nwant %#v", got, c)
	}
}

func TestUnmarshalBinaryRejectsShortInput(t *testing.T) {
	var c Config

	err := c.UnmarshalBinary(make([]byte, RecordSize-1))
	if !errors.Is(err, ErrRecordSize) {
		t.Fatalf("err = %v, want ErrRecordSize", err)
	}
}

func TestBaseAccessors(t *testing.T) {
	b := NewBase(FilterKind(FilterMedian3))
	b.SetFloat(2, 4)
	b.SetByte(SlotDegree, 3)
	b.SetUnits(1, 42)

	cfg := b.Config()
	if cfg.F[2] != 4 || cfg.Degree() != 3 || cfg.Units[1] != 42 {
		t.Fatalf("unexpected record: %#v", cfg)
	}
	if b.Kind() != FilterKind(FilterMedian3) {
		t.Fatalf("Kind() = %v", b.Kind())
	}

	// Config returns a copy.
	cfg.F[2] = 99
	if b.Record().F[2] != 4 {
		t.Fatal("Config() must not alias the record")
	}
}

func TestExpect(t *testing.T) {
	c := NewConfig(FilterKind(FilterEMA))

	if err := c.Expect(FilterKind(FilterEMA)); err != nil {
		t.Fatalf("Expect() error = %v", err)
	}
	if err := c.Expect(FilterKind(FilterKalman)); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("Expect() error = %v, want ErrKindMismatch", err)
	}
}
