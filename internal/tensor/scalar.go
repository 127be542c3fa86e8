package tensor

import (
	"strconv"
)

// Scalar is a single dtype-tagged tensor element.
//
// Integer dtypes keep their value in an int64 and floating dtypes in a float64,
// so no precision is lost when reading an element and writing it back.
type Scalar struct {
	dtype DataType
	i     int64
	f     float64
}

// Int returns an Int64 scalar.
func Int(v int64) Scalar {
	return Scalar{dtype: Int64, i: v}
}

// Float returns a Float64 scalar.
func Float(v float64) Scalar {
	return Scalar{dtype: Float64, f: v}
}

// DType returns the scalar's element type.
func (s Scalar) DType() DataType {
	return s.dtype
}

// Int64 returns the value as int64. Floating values are truncated toward zero.
func (s Scalar) Int64() int64 {
	if s.dtype.IsFloat() {
		return int64(s.f)
	}
	return s.i
}

// Float64 returns the value as float64.
func (s Scalar) Float64() float64 {
	if s.dtype.IsFloat() {
		return s.f
	}
	return float64(s.i)
}

// Value returns the element as the Go type matching its dtype
// (int32, int64, float32 or float64).
func (s Scalar) Value() any {
	switch s.dtype {
	case Int32:
		return int32(s.i) //nolint:gosec // G115: value originated from an int32 element
	case Int64:
		return s.i
	case Float32:
		return float32(s.f)
	default:
		return s.f
	}
}

// String formats the value the way it appears in a tensor listing.
func (s Scalar) String() string {
	switch s.dtype {
	case Float32:
		return strconv.FormatFloat(s.f, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	default:
		return strconv.FormatInt(s.i, 10)
	}
}
