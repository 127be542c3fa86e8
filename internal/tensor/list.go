package tensor

import (
	"reflect"

	"github.com/born-ml/mega/internal/numerr"
)

// FromList creates a tensor from a nested sequence.
//
// nested may be a tree of []any or any typed nested slice or array such as
// [][]int or [3][2]float64. The shape is measured from the length at each
// depth; every sibling must have the same length and depth. Values are
// flattened in row-major order and converted to dtype.
//
// Example:
//
//	t, err := tensor.FromList([][]int{{1, 2}, {3, 4}}, Int32) // shape (2, 2)
func FromList(nested any, dtype DataType) (*Tensor, error) {
	root := unwrap(reflect.ValueOf(nested))
	shape, err := measure(root)
	if err != nil {
		return nil, err
	}

	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}

	pos := 0
	if err := flatten(root, shape, 0, t.buf, &pos); err != nil {
		return nil, err
	}
	return t, nil
}

// ToList rebuilds the nested sequence matching the tensor's shape.
// Leaves have the Go type of the dtype (int32, int64, float32 or float64).
func (t *Tensor) ToList() []any {
	pos := 0
	return t.build(0, &pos)
}

func (t *Tensor) build(depth int, pos *int) []any {
	out := make([]any, t.shape[depth])
	for i := range out {
		if depth == len(t.shape)-1 {
			out[i] = t.buf.Load(*pos).Value()
			*pos++
			continue
		}
		out[i] = t.build(depth+1, pos)
	}
	return out
}

// unwrap strips interface and pointer indirections.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isSequence(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// measure follows the first element at each depth to infer the shape.
func measure(root reflect.Value) (Shape, error) {
	if !isSequence(root) {
		return nil, numerr.Invalid("nested list must be a slice or array, got %s", kindOf(root))
	}

	var shape Shape
	for v := root; isSequence(v); {
		if v.Len() == 0 {
			return nil, numerr.Invalid("empty sequence at depth %d", len(shape))
		}
		shape = append(shape, v.Len())
		v = unwrap(v.Index(0))
	}
	return shape, nil
}

// flatten copies leaves into buf, checking every level against shape.
func flatten(v reflect.Value, shape Shape, depth int, buf *Buffer, pos *int) error {
	if depth == len(shape) {
		s, err := scalarOf(v)
		if err != nil {
			return err
		}
		buf.Store(*pos, s)
		*pos++
		return nil
	}

	if !isSequence(v) {
		return numerr.Invalid("irregular nesting: expected sequence at depth %d, got %s", depth, kindOf(v))
	}
	if v.Len() != shape[depth] {
		return numerr.Invalid("irregular nesting: length %d at depth %d, expected %d", v.Len(), depth, shape[depth])
	}
	for i := 0; i < v.Len(); i++ {
		if err := flatten(unwrap(v.Index(i)), shape, depth+1, buf, pos); err != nil {
			return err
		}
	}
	return nil
}

// scalarOf converts a numeric leaf into a Scalar.
func scalarOf(v reflect.Value) (Scalar, error) {
	if !v.IsValid() {
		return Scalar{}, numerr.Invalid("nil leaf in nested list")
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int64(v.Uint())), nil //nolint:gosec // G115: fixed-width wrap is the documented semantics
	case reflect.Float32, reflect.Float64:
		return Float(v.Float()), nil
	case reflect.Slice, reflect.Array:
		return Scalar{}, numerr.Invalid("irregular nesting: unexpected sequence at leaf depth")
	default:
		return Scalar{}, numerr.Invalid("non-numeric leaf of kind %s", v.Kind())
	}
}

func kindOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Kind().String()
}
