package tensor

import (
	"github.com/born-ml/mega/internal/numerr"
)

// New creates a zero-initialized tensor with the given shape and type.
//
// Example:
//
//	t, err := tensor.New(Shape{3, 4}, Float32)
func New(shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !dtype.Valid() {
		return nil, numerr.Invalid("unrecognized dtype %d", int(dtype))
	}
	if _, ok := shape.byteSize(dtype.Size()); !ok {
		return nil, numerr.Invalid("shape %s is too large for %s", shape, dtype)
	}

	buf, err := NewBuffer(dtype, shape.NumElements())
	if err != nil {
		return nil, err
	}
	return &Tensor{
		buf:    buf,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from flat row-major data.
// Each value is converted to dtype; len(data) must equal shape.NumElements().
//
// Example:
//
//	t, err := tensor.FromSlice(Shape{3}, Int64, []int{10, 20, 30})
func FromSlice[T Numeric](shape Shape, dtype DataType, data []T) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		return nil, numerr.Invalid("shape %s requires %d elements, but got %d", shape, t.NumElements(), len(data))
	}
	fill(t.buf, data)
	return t, nil
}

// Full creates a tensor with every element set to value.
//
// Example:
//
//	t, err := tensor.Full(Shape{3, 3}, Float64, Float(3.14))
func Full(shape Shape, dtype DataType, value Scalar) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.buf.length; i++ {
		t.buf.Store(i, value)
	}
	return t, nil
}

// Arange creates a 1D tensor holding start, start+1, ..., end-1.
func Arange(start, end int64, dtype DataType) (*Tensor, error) {
	if end <= start {
		return nil, numerr.Invalid("end %d must be greater than start %d", end, start)
	}
	t, err := New(Shape{int(end - start)}, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.buf.length; i++ {
		t.buf.Store(i, Int(start+int64(i)))
	}
	return t, nil
}

// FromBytes creates a tensor whose storage is a copy of raw, interpreted in
// host byte order. len(raw) must equal shape.NumElements() * dtype.Size().
func FromBytes(shape Shape, dtype DataType, raw []byte) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(raw) != t.buf.ByteSize() {
		return nil, numerr.Invalid("shape %s of %s requires %d bytes, but got %d", shape, dtype, t.buf.ByteSize(), len(raw))
	}
	copy(t.buf.data, raw)
	return t, nil
}
