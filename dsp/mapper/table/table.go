package table

import (
	"cmp"
	"slices"

	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

const (
	// MaxPoints is the table capacity.
	MaxPoints = 8

	offsetFX = 8
)

// Point is one calibration pair.
type Point struct {
	X  float64
	FX float64
}

// table is the point storage shared by every interpolator. refresh, when
// set, recomputes derived data after each change to the points.
type table struct {
	proc.Base
	refresh func()
}

func newTable(t proc.TableType) table {
	return table{Base: proc.NewBase(proc.TableKind(t))}
}

// Len returns the number of stored points.
func (t *table) Len() int {
	return min(int(t.Record().U[proc.SlotTableSize]), MaxPoints)
}

// X returns the x value of point i, or 0 when i is out of range.
func (t *table) X(i int) float64 {
	if i < 0 || i >= t.Len() {
		return 0
	}
	return t.Record().F[i]
}

// FX returns the f(x) value of point i, or 0 when i is out of range.
func (t *table) FX(i int) float64 {
	if i < 0 || i >= t.Len() {
		return 0
	}
	return t.Record().F[offsetFX+i]
}

// Points returns a copy of the stored points in ascending x order.
func (t *table) Points() []Point {
	n := t.Len()
	cfg := t.Record()

	out := make([]Point, n)
	for i := range out {
		out[i] = Point{X: cfg.F[i], FX: cfg.F[offsetFX+i]}
	}

	return out
}

// PushPoint inserts (x, fx) keeping the points sorted. It returns false
// when the table is full.
func (t *table) PushPoint(x, fx float64) bool {
	n := t.Len()
	if n >= MaxPoints {
		return false
	}

	cfg := t.Record()
	cfg.F[n] = x
	cfg.F[offsetFX+n] = fx
	cfg.U[proc.SlotTableSize] = uint8(n + 1)

	t.update()

	return true
}

// DeletePoint removes point i and closes the gap. It returns false when i
// is out of range.
func (t *table) DeletePoint(i int) bool {
	n := t.Len()
	if i < 0 || i >= n {
		return false
	}

	cfg := t.Record()
	copy(cfg.F[i:n-1], cfg.F[i+1:n])
	copy(cfg.F[offsetFX+i:offsetFX+n-1], cfg.F[offsetFX+i+1:offsetFX+n])
	cfg.F[n-1] = 0
	cfg.F[offsetFX+n-1] = 0
	cfg.U[proc.SlotTableSize] = uint8(n - 1)

	t.update()

	return true
}

// Clear removes every point.
func (t *table) Clear() {
	cfg := t.Record()
	for i := range MaxPoints {
		cfg.F[i] = 0
		cfg.F[offsetFX+i] = 0
	}
	cfg.U[proc.SlotTableSize] = 0

	t.update()
}

// SetFloat writes a raw float slot and re-sorts the points.
func (t *table) SetFloat(idx int, v float64) {
	t.Base.SetFloat(idx, v)
	t.update()
}

// SetByte writes a raw tag byte and re-sorts the points.
func (t *table) SetByte(idx int, v uint8) {
	t.Base.SetByte(idx, v)
	t.update()
}

// Reset is a no-op; tables have no runtime state.
func (t *table) Reset() {}

// MapperType returns proc.MapperTable.
func (t *table) MapperType() proc.MapperType { return proc.MapperTable }

func (t *table) update() {
	t.sort()
	if t.refresh != nil {
		t.refresh()
	}
}

// sort orders the points by x. Equal x values keep their insertion order.
func (t *table) sort() {
	pts := t.Points()
	if slices.IsSortedFunc(pts, comparePoints) {
		return
	}

	slices.SortStableFunc(pts, comparePoints)

	cfg := t.Record()
	for i, p := range pts {
		cfg.F[i] = p.X
		cfg.F[offsetFX+i] = p.FX
	}
}

func comparePoints(a, b Point) int {
	return cmp.Compare(a.X, b.X)
}

// valueBelow returns the lookup result for tables with fewer than two
// points: the single stored f(x), or 0 when empty.
func (t *table) valueBelow() float64 {
	if t.Len() == 0 {
		return 0
	}
	return t.Record().F[offsetFX]
}

// segment returns the index of the right end of the first segment whose
// right x is >= x, scanning from 1 and stopping at the last point.
func (t *table) segment(x float64) int {
	n := t.Len()
	cfg := t.Record()

	pos := 1
	for pos < n-1 && x > cfg.F[pos] {
		pos++
	}

	return pos
}

func restore(cfg proc.Config, want proc.TableType) (table, error) {
	if err := cfg.Expect(proc.TableKind(want)); err != nil {
		return table{}, err
	}
	return table{Base: proc.BaseFrom(cfg)}, nil
}
