package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/born-ml/mega/internal/numerr"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1 and that every dimension is > 0.
// All offending dimensions are reported, not just the first.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return numerr.Invalid("shape must have at least one dimension")
	}
	var err error
	for i, dim := range s {
		if dim <= 0 {
			err = multierr.Append(err, numerr.Invalid("dimension %d is %d (must be > 0)", i, dim))
		}
	}
	return err
}

// byteSize returns NumElements() * elemSize, reporting false if the product
// does not fit in an int.
func (s Shape) byteSize(elemSize int) (int, bool) {
	n := elemSize
	for _, dim := range s {
		if dim <= 0 || n > math.MaxInt/dim {
			return 0, false
		}
		n *= dim
	}
	return n, true
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as a parenthesized list, e.g. (2, 3) or (5).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
