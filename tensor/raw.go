// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/mega/internal/tensor"
)

// Buffer is the contiguous, dtype-tagged storage behind a Tensor.
//
// Buffer provides:
//   - Type information via DType() and Len()
//   - Zero-copy typed views via Int32s(), Int64s(), Float32s(), Float64s()
//   - Element access by linear offset via Load() and Store()
//
// Most users should access elements through Tensor.Get and Tensor.Set instead.
//
// Example:
//
//	buf, _ := tensor.NewBuffer(tensor.Float64, 4)
//	data := buf.Float64s() // Typed, zero-copy view
type Buffer = tensor.Buffer

// NewBuffer allocates a zero-initialized buffer of length elements.
func NewBuffer(dtype DataType, length int) (*Buffer, error) {
	return tensor.NewBuffer(dtype, length)
}
