// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense N-dimensional array with a fixed element type.
//
// # Overview
//
// A Tensor stores its elements in one contiguous, dtype-tagged Buffer laid
// out in row-major order. The element type is chosen at construction and never
// changes. This package provides:
//   - Four data types: int32, int64, float32, float64
//   - Multi-index Get/Set with bounds checking
//   - Elementwise Add, Sub and Multiply on identically shaped operands
//   - Conversion to and from nested Go slices
//
// # Basic Usage
//
//	import "github.com/born-ml/mega/tensor"
//
//	func main() {
//	    a, _ := tensor.FromList([][]int{{1, 2}, {3, 4}}, tensor.Int32)
//	    b, _ := tensor.FromList([][]int{{10, 20}, {30, 40}}, tensor.Int32)
//
//	    c, _ := a.Add(b)
//	    fmt.Println(c.ToList()) // [[11 22] [33 44]]
//	    fmt.Println(c)          // Tensor(shape=(2, 2), dtype=int32, data=[11, 22, 33, 44])
//	}
//
// # Data Types
//
// Data types are named by stable tokens (int32, int64, float32, float64).
// ParseDataType also accepts the aliases int, long, float and double.
//
// # Arithmetic
//
// Binary operations require identical shape and dtype; there is no
// broadcasting and no type promotion. Integer types wrap on overflow and
// floating types follow IEEE 754.
//
// # Persistence
//
// Save and Load store named tensors in the checksummed .mega archive format.
//
// # Errors
//
// Invalid construction parameters and operand mismatches wrap
// ErrInvalidArgument; coordinates outside a dimension wrap ErrIndexOutOfRange.
//
// # Concurrency
//
// Reads are safe to share. Set mutates in place and requires external
// synchronization when a tensor is shared between goroutines.
package tensor
