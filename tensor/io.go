// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/mega/internal/serialization"
	"github.com/born-ml/mega/internal/tensor"
)

// Archive is a decoded .mega file of named tensors.
type Archive = serialization.Archive

// Save writes named tensors and optional string metadata to path in .mega format.
//
// Example:
//
//	err := tensor.Save("state.mega", map[string]*tensor.Tensor{"x": x}, nil)
func Save(path string, tensors map[string]*Tensor, metadata map[string]string) error {
	return serialization.Save(path, tensors, metadata)
}

// Load reads a .mega file, verifying its checksum and header.
func Load(path string) (*Archive, error) {
	return serialization.Load(path)
}

// FromBytes creates a tensor from raw element bytes in host byte order.
func FromBytes(shape Shape, dtype DataType, raw []byte) (*Tensor, error) {
	return tensor.FromBytes(shape, dtype, raw)
}
