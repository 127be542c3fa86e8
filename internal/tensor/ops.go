package tensor

import (
	"github.com/born-ml/mega/internal/numerr"
)

// element is the closed set of storage types behind the four dtypes.
type element interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// binaryOp names an elementwise operation for dispatch and error messages.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

func (op binaryOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "multiply"
	default:
		return "unknown"
	}
}

func addVectorized[T element](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorized[T element](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorized[T element](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func kernel[T element](op binaryOp) func(dst, a, b []T) {
	switch op {
	case opAdd:
		return addVectorized[T]
	case opSub:
		return subVectorized[T]
	default:
		return mulVectorized[T]
	}
}

// applyBinary runs op over two equally sized buffers of the same dtype into dst.
func applyBinary(op binaryOp, dst, a, b *Buffer) {
	switch a.dtype {
	case Int32:
		kernel[int32](op)(dst.Int32s(), a.Int32s(), b.Int32s())
	case Int64:
		kernel[int64](op)(dst.Int64s(), a.Int64s(), b.Int64s())
	case Float32:
		kernel[float32](op)(dst.Float32s(), a.Float32s(), b.Float32s())
	case Float64:
		kernel[float64](op)(dst.Float64s(), a.Float64s(), b.Float64s())
	default:
		panic("applyBinary: unsupported dtype")
	}
}

// binary validates operands and produces a new, independently owned result.
func (t *Tensor) binary(op binaryOp, other *Tensor) (*Tensor, error) {
	if other == nil {
		return nil, numerr.Invalid("%s: nil operand", op)
	}
	if t.DType() != other.DType() {
		return nil, numerr.Invalid("%s: dtype mismatch %s vs %s", op, t.DType(), other.DType())
	}
	if !t.shape.Equal(other.shape) {
		return nil, numerr.Invalid("%s: shape mismatch %s vs %s", op, t.shape, other.shape)
	}

	result, err := New(t.shape, t.DType())
	if err != nil {
		return nil, err
	}
	applyBinary(op, result.buf, t.buf, other.buf)
	return result, nil
}

// Add returns the elementwise sum of t and other.
// Both operands must have identical shape and dtype; there is no broadcasting
// or promotion. Integer dtypes wrap on overflow.
//
// Example:
//
//	a, _ := tensor.FromList([]any{[]any{1, 2}, []any{3, 4}}, tensor.Int32)
//	b, _ := tensor.FromList([]any{[]any{10, 20}, []any{30, 40}}, tensor.Int32)
//	c, _ := a.Add(b) // [[11 22] [33 44]]
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.binary(opAdd, other)
}

// Sub returns the elementwise difference t - other.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.binary(opSub, other)
}

// Multiply returns the elementwise product of t and other.
func (t *Tensor) Multiply(other *Tensor) (*Tensor, error) {
	return t.binary(opMul, other)
}
