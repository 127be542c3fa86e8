// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for mega's typed N-dimensional arrays.
//
// The package defines:
//   - Tensor: dense row-major array with a fixed element type
//   - Buffer: the flat storage behind a Tensor
//   - Scalar: a single dtype-tagged element
//   - Shape, DataType: core type definitions
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{2, 3}, tensor.Float64)
//	_ = x.Set(tensor.Float(1.5), 0, 2)
package tensor

import (
	"github.com/born-ml/mega/internal/numerr"
	"github.com/born-ml/mega/internal/tensor"
)

// Type aliases for public API

// Numeric is the constraint for Go values accepted as tensor input data.
type Numeric = tensor.Numeric

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Scalar is a single dtype-tagged element.
type Scalar = tensor.Scalar

// Tensor is a dense row-major N-dimensional array with a fixed element type.
//
// Example:
//
//	x, _ := tensor.FromSlice(tensor.Shape{3}, tensor.Int64, []int{1, 2, 3})
//	y, _ := tensor.FromSlice(tensor.Shape{3}, tensor.Int64, []int{4, 5, 6})
//	z, _ := x.Multiply(y) // [4 10 18]
type Tensor = tensor.Tensor

// MaxPrintElements is the largest element count for which String lists values.
const MaxPrintElements = tensor.MaxPrintElements

// Errors

var (
	// ErrInvalidArgument is wrapped by every construction or operand error.
	ErrInvalidArgument = numerr.ErrInvalidArgument
	// ErrIndexOutOfRange is wrapped when a coordinate exceeds its dimension.
	ErrIndexOutOfRange = numerr.ErrIndexOutOfRange
)

// ParseDataType resolves a dtype token (int32, int64, float32, float64) or
// alias (int, long, float, double).
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// Int returns an Int64 scalar.
func Int(v int64) Scalar {
	return tensor.Int(v)
}

// Float returns a Float64 scalar.
func Float(v float64) Scalar {
	return tensor.Float(v)
}

// Creation functions

// New creates a zero-initialized tensor.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 3}, tensor.Int64)
func New(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.New(shape, dtype)
}

// FromSlice creates a tensor from flat row-major data.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(tensor.Shape{2, 3}, tensor.Float32, data)
func FromSlice[T Numeric](shape Shape, dtype DataType, data []T) (*Tensor, error) {
	return tensor.FromSlice(shape, dtype, data)
}

// FromList creates a tensor from a nested slice, inferring its shape.
//
// Example:
//
//	x, err := tensor.FromList([][]int{{1, 2}, {3, 4}}, tensor.Int32)
func FromList(nested any, dtype DataType) (*Tensor, error) {
	return tensor.FromList(nested, dtype)
}

// Full creates a tensor with every element set to value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, tensor.Float64, tensor.Float(3.14))
func Full(shape Shape, dtype DataType, value Scalar) (*Tensor, error) {
	return tensor.Full(shape, dtype, value)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x, err := tensor.Arange(0, 10, tensor.Int64) // [0, 1, 2, ..., 9]
func Arange(start, end int64, dtype DataType) (*Tensor, error) {
	return tensor.Arange(start, end, dtype)
}
