// Package tensor provides the dense, dtype-tagged N-dimensional array used by mega.
package tensor

import (
	"strings"

	"github.com/born-ml/mega/internal/numerr"
)

// Numeric is the constraint for Go values accepted as tensor input data.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DataType is the element type tag of a tensor. It is fixed at construction.
type DataType int

// Supported data types for tensors.
const (
	Int32 DataType = iota
	Int64
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns the stable token for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Alias returns the short C-style name of the data type (int, long, float, double).
func (dt DataType) Alias() string {
	switch dt {
	case Int32:
		return "int"
	case Int64:
		return "long"
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// Valid reports whether dt is one of the four recognized tags.
func (dt DataType) Valid() bool {
	return dt >= Int32 && dt <= Float64
}

// ParseDataType resolves a dtype token. Both the canonical tokens
// (int32, int64, float32, float64) and the aliases (int, long, float, double)
// are accepted, case-insensitively.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32", "int":
		return Int32, nil
	case "int64", "long":
		return Int64, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	default:
		return 0, numerr.Invalid("unrecognized dtype %q", s)
	}
}
