package numtheory

import (
	"fmt"
	"strconv"
)

// Kind tags which field of a Number holds the value.
type Kind int

// Result kinds.
const (
	KindInt Kind = iota
	KindReal
	KindComplex
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Number is a tagged numeric result: an exact integer, a real or a complex value.
type Number struct {
	kind Kind
	i    int64
	r    float64
	c    complex128
}

// IntNumber returns an exact integer result.
func IntNumber(v int64) Number { return Number{kind: KindInt, i: v} }

// RealNumber returns a real result.
func RealNumber(v float64) Number { return Number{kind: KindReal, r: v} }

// ComplexNumber returns a complex result.
func ComplexNumber(v complex128) Number { return Number{kind: KindComplex, c: v} }

// Kind returns the result kind.
func (n Number) Kind() Kind { return n.kind }

// Int returns the exact integer value and whether the result is KindInt.
func (n Number) Int() (int64, bool) {
	return n.i, n.kind == KindInt
}

// Float64 returns the value as a real. For complex results this is the real part.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInt:
		return float64(n.i)
	case KindReal:
		return n.r
	default:
		return real(n.c)
	}
}

// Complex128 returns the value widened to complex128.
func (n Number) Complex128() complex128 {
	switch n.kind {
	case KindInt:
		return complex(float64(n.i), 0)
	case KindReal:
		return complex(n.r, 0)
	default:
		return n.c
	}
}

// String formats the value according to its kind.
func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindReal:
		return strconv.FormatFloat(n.r, 'g', -1, 64)
	default:
		return fmt.Sprint(n.c)
	}
}
