package tensor

import (
	"errors"
	"testing"

	"github.com/born-ml/mega/internal/numerr"
)

// Buffer Tests

func TestBufferTypedViews(t *testing.T) {
	buf, err := NewBuffer(Int64, 6)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Int64s()
	if len(data) != 6 {
		t.Errorf("Int64s length = %d, want 6", len(data))
	}
	if buf.ByteSize() != 48 {
		t.Errorf("ByteSize = %d, want 48", buf.ByteSize())
	}

	// Modify and verify zero-copy
	data[0] = 42
	if buf.Int64s()[0] != 42 {
		t.Error("Int64s should return zero-copy slice")
	}
	if buf.Load(0).Int64() != 42 {
		t.Error("Load should observe the write")
	}
}

func TestBufferViewPanicsOnDTypeMismatch(t *testing.T) {
	buf, _ := NewBuffer(Float32, 2)
	defer func() {
		if recover() == nil {
			t.Error("Int32s on a float32 buffer should panic")
		}
	}()
	_ = buf.Int32s()
}

func TestBufferStoreLoad(t *testing.T) {
	tests := []struct {
		dtype DataType
		in    Scalar
		want  any
	}{
		{Int32, Int(-7), int32(-7)},
		{Int64, Int(1 << 40), int64(1 << 40)},
		{Float32, Float(0.25), float32(0.25)},
		{Float64, Int(3), float64(3)},
	}

	for _, tt := range tests {
		buf, _ := NewBuffer(tt.dtype, 1)
		buf.Store(0, tt.in)
		got := buf.Load(0)
		if got.DType() != tt.dtype {
			t.Errorf("%s: loaded dtype %s", tt.dtype, got.DType())
		}
		if got.Value() != tt.want {
			t.Errorf("%s: Load = %v (%T), want %v (%T)", tt.dtype, got.Value(), got.Value(), tt.want, tt.want)
		}
	}
}

func TestBufferClone(t *testing.T) {
	buf, _ := NewBuffer(Float64, 3)
	buf.Float64s()[1] = 2.5
	clone := buf.Clone()
	clone.Float64s()[1] = 9

	if buf.Float64s()[1] != 2.5 {
		t.Error("Clone should copy storage")
	}
	if clone.DType() != Float64 || clone.Len() != 3 {
		t.Errorf("clone = %s/%d, want float64/3", clone.DType(), clone.Len())
	}
}

func TestNewBufferInvalid(t *testing.T) {
	if _, err := NewBuffer(DataType(-1), 1); !errors.Is(err, numerr.ErrInvalidArgument) {
		t.Errorf("bad dtype error = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewBuffer(Int32, -1); !errors.Is(err, numerr.ErrInvalidArgument) {
		t.Errorf("negative length error = %v, want ErrInvalidArgument", err)
	}
}

func TestScalarConversions(t *testing.T) {
	if got := Float(-3.7).Int64(); got != -3 {
		t.Errorf("Float(-3.7).Int64() = %d, want -3", got)
	}
	if got := Int(5).Float64(); got != 5 {
		t.Errorf("Int(5).Float64() = %v, want 5", got)
	}
	if got := Int(12).String(); got != "12" {
		t.Errorf("Int(12).String() = %q", got)
	}
}

func TestNewBufferTooLarge(t *testing.T) {
	if _, err := NewBuffer(Int64, 1<<61); !errors.Is(err, numerr.ErrInvalidArgument) {
		t.Errorf("NewBuffer(Int64, 1<<61) error = %v, want ErrInvalidArgument", err)
	}
}

func TestFromBytes(t *testing.T) {
	src, err := FromSlice(Shape{2, 2}, Int32, []int{1, -2, 3, -4})
	if err != nil {
		t.Fatal(err)
	}

	dst, err := FromBytes(Shape{2, 2}, Int32, src.Buffer().Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !dst.Equal(src) {
		t.Errorf("FromBytes = %v, want %v", dst, src)
	}

	dst.Buffer().Int32s()[0] = 99
	if v, _ := src.Get(0, 0); v.Int64() != 1 {
		t.Error("FromBytes must copy its input")
	}

	_, err = FromBytes(Shape{3}, Int32, make([]byte, 8))
	if !errors.Is(err, numerr.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for short input, got %v", err)
	}
}
