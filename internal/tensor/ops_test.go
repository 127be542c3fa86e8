package tensor

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/born-ml/mega/internal/numerr"
)

func TestAdd1D(t *testing.T) {
	a, _ := FromSlice(Shape{3}, Int64, []int{1, 2, 3})
	b, _ := FromSlice(Shape{3}, Int64, []int{4, 5, 6})

	c, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if c.DType() != Int64 {
		t.Errorf("dtype = %s, want int64", c.DType())
	}
	want := []any{int64(5), int64(7), int64(9)}
	if got := c.ToList(); !reflect.DeepEqual(got, want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestMultiply1D(t *testing.T) {
	a, _ := FromSlice(Shape{3}, Int64, []int{1, 2, 3})
	b, _ := FromSlice(Shape{3}, Int64, []int{4, 5, 6})

	c, err := a.Multiply(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{int64(4), int64(10), int64(18)}
	if got := c.ToList(); !reflect.DeepEqual(got, want) {
		t.Errorf("Multiply = %v, want %v", got, want)
	}
}

func TestAdd2D(t *testing.T) {
	a, _ := FromList([][]int{{1, 2}, {3, 4}}, Int32)
	b, _ := FromList([][]int{{10, 20}, {30, 40}}, Int32)

	c, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if c.DType() != Int32 {
		t.Errorf("dtype = %s, want int32", c.DType())
	}
	want := []any{
		[]any{int32(11), int32(22)},
		[]any{int32(33), int32(44)},
	}
	if got := c.ToList(); !reflect.DeepEqual(got, want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestMultiply2D(t *testing.T) {
	a, _ := FromList([][]int{{1, 2}, {3, 4}}, Int32)
	b, _ := FromList([][]int{{5, 6}, {7, 8}}, Int32)

	c, err := a.Multiply(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		[]any{int32(5), int32(12)},
		[]any{int32(21), int32(32)},
	}
	if got := c.ToList(); !reflect.DeepEqual(got, want) {
		t.Errorf("Multiply = %v, want %v", got, want)
	}
}

func TestSub(t *testing.T) {
	a, _ := FromSlice(Shape{2}, Float64, []float64{1.5, 2})
	b, _ := FromSlice(Shape{2}, Float64, []float64{0.5, 4})

	c, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{1.0, -2.0}
	if got := c.ToList(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
}

func TestBinaryOpsLeaveOperandsUntouched(t *testing.T) {
	a, _ := FromSlice(Shape{2}, Float32, []float32{1, 2})
	b, _ := FromSlice(Shape{2}, Float32, []float32{3, 4})
	aBefore, bBefore := a.Clone(), b.Clone()

	c, _ := a.Add(b)
	_ = c.Set(Float(100), 0)

	if !a.Equal(aBefore) || !b.Equal(bBefore) {
		t.Error("operands must not change")
	}
}

func TestIntegerOverflowWraps(t *testing.T) {
	a, _ := FromSlice(Shape{1}, Int32, []int32{math.MaxInt32})
	b, _ := FromSlice(Shape{1}, Int32, []int32{1})
	c, _ := a.Add(b)
	v, _ := c.Get(0)
	if v.Int64() != math.MinInt32 {
		t.Errorf("MaxInt32 + 1 = %d, want %d", v.Int64(), math.MinInt32)
	}

	x, _ := FromSlice(Shape{1}, Int64, []int64{math.MaxInt64})
	y, _ := FromSlice(Shape{1}, Int64, []int64{2})
	z, _ := x.Multiply(y)
	w, _ := z.Get(0)
	if w.Int64() != -2 {
		t.Errorf("MaxInt64 * 2 = %d, want -2", w.Int64())
	}
}

func TestFloatOverflowFollowsIEEE(t *testing.T) {
	a, _ := FromSlice(Shape{1}, Float32, []float32{math.MaxFloat32})
	c, _ := a.Multiply(a)
	v, _ := c.Get(0)
	if !math.IsInf(v.Float64(), 1) {
		t.Errorf("MaxFloat32^2 = %v, want +Inf", v)
	}
}

func TestBinaryOpsRejectMismatch(t *testing.T) {
	a, _ := New(Shape{2, 2}, Int32)
	wrongDType, _ := New(Shape{2, 2}, Int64)
	wrongShape, _ := New(Shape{4}, Int32)
	transposed, _ := New(Shape{2, 2, 1}, Int32)

	for name, other := range map[string]*Tensor{
		"dtype":       wrongDType,
		"shape":       wrongShape,
		"rank":        transposed,
		"nil operand": nil,
	} {
		if _, err := a.Add(other); !errors.Is(err, numerr.ErrInvalidArgument) {
			t.Errorf("Add with %s mismatch error = %v, want ErrInvalidArgument", name, err)
		}
		if _, err := a.Multiply(other); !errors.Is(err, numerr.ErrInvalidArgument) {
			t.Errorf("Multiply with %s mismatch error = %v, want ErrInvalidArgument", name, err)
		}
	}
}
