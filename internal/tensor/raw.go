package tensor

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/mega/internal/numerr"
)

// Buffer is a contiguous block of elements sharing one immutable dtype tag.
// Elements are addressed by linear offset; shape metadata lives in Tensor.
type Buffer struct {
	data   []byte
	dtype  DataType
	length int
}

// NewBuffer allocates a zero-initialized buffer of length elements.
func NewBuffer(dtype DataType, length int) (*Buffer, error) {
	if !dtype.Valid() {
		return nil, numerr.Invalid("unrecognized dtype %d", int(dtype))
	}
	if length < 0 {
		return nil, numerr.Invalid("negative buffer length %d", length)
	}
	if length > math.MaxInt/dtype.Size() {
		return nil, numerr.Invalid("buffer of %d %s elements is too large", length, dtype)
	}
	return &Buffer{
		data:   make([]byte, length*dtype.Size()),
		dtype:  dtype,
		length: length,
	}, nil
}

// DType returns the buffer's element type.
func (b *Buffer) DType() DataType {
	return b.dtype
}

// Len returns the number of elements.
func (b *Buffer) Len() int {
	return b.length
}

// ByteSize returns the total memory size in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// Bytes returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Int32s interprets the data as []int32.
// Panics if the buffer's dtype is not Int32.
func (b *Buffer) Int32s() []int32 {
	if b.dtype != Int32 {
		panic(fmt.Sprintf("buffer dtype is %s, not int32", b.dtype))
	}
	if b.length == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds fixed by length
	return unsafe.Slice((*int32)(unsafe.Pointer(&b.data[0])), b.length)
}

// Int64s interprets the data as []int64.
// Panics if the buffer's dtype is not Int64.
func (b *Buffer) Int64s() []int64 {
	if b.dtype != Int64 {
		panic(fmt.Sprintf("buffer dtype is %s, not int64", b.dtype))
	}
	if b.length == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds fixed by length
	return unsafe.Slice((*int64)(unsafe.Pointer(&b.data[0])), b.length)
}

// Float32s interprets the data as []float32.
// Panics if the buffer's dtype is not Float32.
func (b *Buffer) Float32s() []float32 {
	if b.dtype != Float32 {
		panic(fmt.Sprintf("buffer dtype is %s, not float32", b.dtype))
	}
	if b.length == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds fixed by length
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), b.length)
}

// Float64s interprets the data as []float64.
// Panics if the buffer's dtype is not Float64.
func (b *Buffer) Float64s() []float64 {
	if b.dtype != Float64 {
		panic(fmt.Sprintf("buffer dtype is %s, not float64", b.dtype))
	}
	if b.length == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds fixed by length
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), b.length)
}

// Load returns the element at linear offset i. The caller guarantees 0 <= i < Len().
func (b *Buffer) Load(i int) Scalar {
	switch b.dtype {
	case Int32:
		return Scalar{dtype: Int32, i: int64(b.Int32s()[i])}
	case Int64:
		return Scalar{dtype: Int64, i: b.Int64s()[i]}
	case Float32:
		return Scalar{dtype: Float32, f: float64(b.Float32s()[i])}
	default:
		return Scalar{dtype: Float64, f: b.Float64s()[i]}
	}
}

// Store writes v at linear offset i, converting it to the buffer's dtype.
// The caller guarantees 0 <= i < Len().
func (b *Buffer) Store(i int, v Scalar) {
	switch b.dtype {
	case Int32:
		b.Int32s()[i] = int32(v.Int64()) //nolint:gosec // G115: fixed-width wrap is the documented semantics
	case Int64:
		b.Int64s()[i] = v.Int64()
	case Float32:
		b.Float32s()[i] = float32(v.Float64())
	default:
		b.Float64s()[i] = v.Float64()
	}
}

// Clone returns an independent deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buffer{data: data, dtype: b.dtype, length: b.length}
}

// fill copies Go values into the buffer, converting each to the buffer's dtype.
func fill[T Numeric](b *Buffer, values []T) {
	switch b.dtype {
	case Int32:
		dst := b.Int32s()
		for i, v := range values {
			dst[i] = int32(v) //nolint:gosec // G115: fixed-width wrap is the documented semantics
		}
	case Int64:
		dst := b.Int64s()
		for i, v := range values {
			dst[i] = int64(v) //nolint:gosec // G115: fixed-width wrap is the documented semantics
		}
	case Float32:
		dst := b.Float32s()
		for i, v := range values {
			dst[i] = float32(v)
		}
	case Float64:
		dst := b.Float64s()
		for i, v := range values {
			dst[i] = float64(v)
		}
	}
}
