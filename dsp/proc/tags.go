package proc

import "fmt"

// Role is the capability family of a processor.
type Role uint8

const (
	RoleNone Role = iota
	RoleMapper
	RoleFilter
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleMapper:
		return "mapper"
	case RoleFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// MapperType distinguishes table-driven mappers from closed-form functions.
type MapperType uint8

const (
	MapperNone MapperType = iota
	MapperTable
	MapperFunction
)

func (m MapperType) String() string {
	switch m {
	case MapperNone:
		return "none"
	case MapperTable:
		return "table"
	case MapperFunction:
		return "function"
	default:
		return "unknown"
	}
}

// FilterType is the sub-type tag of a filter.
type FilterType uint8

const (
	FilterNone FilterType = iota
	FilterEMA
	FilterAlphaBeta
	FilterAdaptiveEMA
	FilterKalman
	FilterMedian3
)

func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterEMA:
		return "ema"
	case FilterAlphaBeta:
		return "alpha-beta"
	case FilterAdaptiveEMA:
		return "adaptive-ema"
	case FilterKalman:
		return "kalman"
	case FilterMedian3:
		return "median3"
	default:
		return "unknown"
	}
}

// TableType is the sub-type tag of a table mapper.
type TableType uint8

const (
	TableNone TableType = iota
	TablePiecewiseLinear
	TableCubicSpline
	TableMonotonicSpline
)

func (t TableType) String() string {
	switch t {
	case TableNone:
		return "none"
	case TablePiecewiseLinear:
		return "piecewise-linear"
	case TableCubicSpline:
		return "cubic-spline"
	case TableMonotonicSpline:
		return "monotonic-spline"
	default:
		return "unknown"
	}
}

// FunctionType is the sub-type tag of a function mapper.
type FunctionType uint8

const (
	FunctionNone FunctionType = iota
	FunctionPolynomial
	FunctionRTD385
	FunctionRTD385Approx
)

func (f FunctionType) String() string {
	switch f {
	case FunctionNone:
		return "none"
	case FunctionPolynomial:
		return "polynomial"
	case FunctionRTD385:
		return "rtd385"
	case FunctionRTD385Approx:
		return "rtd385-approx"
	default:
		return "unknown"
	}
}

// Kind is the complete identity of a stage algorithm: role, mapper family
// and sub-type. It is comparable and is what restores switch on.
type Kind struct {
	Role   Role
	Mapper MapperType
	Sub    uint8
}

// FilterKind returns the Kind of a filter sub-type.
func FilterKind(f FilterType) Kind {
	return Kind{Role: RoleFilter, Sub: uint8(f)}
}

// TableKind returns the Kind of a table mapper sub-type.
func TableKind(t TableType) Kind {
	return Kind{Role: RoleMapper, Mapper: MapperTable, Sub: uint8(t)}
}

// FunctionKind returns the Kind of a function mapper sub-type.
func FunctionKind(f FunctionType) Kind {
	return Kind{Role: RoleMapper, Mapper: MapperFunction, Sub: uint8(f)}
}

func (k Kind) String() string {
	switch k.Role {
	case RoleFilter:
		return "filter/" + FilterType(k.Sub).String()
	case RoleMapper:
		switch k.Mapper {
		case MapperTable:
			return "table/" + TableType(k.Sub).String()
		case MapperFunction:
			return "function/" + FunctionType(k.Sub).String()
		}

		return fmt.Sprintf("mapper/%s/%d", k.Mapper, k.Sub)
	default:
		return k.Role.String()
	}
}
