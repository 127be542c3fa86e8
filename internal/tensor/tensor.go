package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/mega/internal/numerr"
)

// MaxPrintElements is the largest element count for which String lists values.
const MaxPrintElements = 16

// Tensor is a dense row-major N-dimensional array with a fixed element type.
//
// A Tensor owns its Buffer exclusively: arithmetic returns new tensors and
// Clone copies storage. Set mutates in place and is not safe for concurrent
// use without external locking.
//
// Example:
//
//	t, _ := tensor.New(Shape{2, 3}, Int64)
//	_ = t.Set(Int(7), 1, 2)
//	v, _ := t.Get(1, 2) // 7
type Tensor struct {
	buf    *Buffer
	shape  Shape
	stride []int
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.buf.dtype
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.buf.length
}

// Buffer returns the underlying storage.
// WARNING: Modifications through the buffer modify the tensor.
func (t *Tensor) Buffer() *Buffer {
	return t.buf
}

// offset validates indices and maps them to a linear buffer offset.
func (t *Tensor) offset(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, numerr.Invalid("expected %d indices, got %d", len(t.shape), len(indices))
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, numerr.OutOfRange(idx, i, t.shape[i])
		}
		off += idx * t.stride[i]
	}
	return off, nil
}

// Get returns the element at the given indices.
func (t *Tensor) Get(indices ...int) (Scalar, error) {
	off, err := t.offset(indices)
	if err != nil {
		return Scalar{}, err
	}
	return t.buf.Load(off), nil
}

// Set stores value at the given indices, converting it to the tensor's dtype.
func (t *Tensor) Set(value Scalar, indices ...int) error {
	off, err := t.offset(indices)
	if err != nil {
		return err
	}
	t.buf.Store(off, value)
	return nil
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		buf:    t.buf.Clone(),
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
	}
}

// Equal reports whether other has the same dtype, shape and element values.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil || t.DType() != other.DType() || !t.shape.Equal(other.shape) {
		return false
	}
	for i := 0; i < t.buf.length; i++ {
		if t.buf.Load(i) != other.buf.Load(i) {
			return false
		}
	}
	return true
}

// AllClose reports whether other has the same shape and every pair of
// elements, widened to float64, agrees within tol (absolute or relative).
// Dtypes may differ.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	return floats.EqualApprox(t.float64s(), other.float64s(), tol)
}

// float64s copies the elements into a new float64 slice.
func (t *Tensor) float64s() []float64 {
	out := make([]float64, t.buf.length)
	for i := range out {
		out[i] = t.buf.Load(i).Float64()
	}
	return out
}

// String returns a textual representation such as
// Tensor(shape=(2), dtype=int32, data=[1, 2]).
// Tensors with more than MaxPrintElements elements elide the value listing.
func (t *Tensor) String() string {
	return t.Format(MaxPrintElements)
}

// Format is String with an explicit listing limit.
func (t *Tensor) Format(limit int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor(shape=%s, dtype=%s, ", t.shape, t.DType())

	n := t.buf.length
	if n > limit {
		fmt.Fprintf(&sb, "data=[... %d elements])", n)
		return sb.String()
	}

	sb.WriteString("data=[")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.buf.Load(i).String())
	}
	sb.WriteString("])")
	return sb.String()
}
