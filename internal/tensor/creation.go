package tensor

import (
	"fmt"
	"reflect"
)

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a, _ := tensor.Zeros(tensor.Shape{3, 4}, tensor.Float64)
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	// Data is already zero-initialized by make()
	return Empty(shape, dtype)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DataType) (*Array, error) {
	return Full(shape, 1, dtype)
}

// Full creates an array filled with value cast to dtype.
//
// Example:
//
//	a, _ := tensor.Full(tensor.Shape{5}, math.NaN(), tensor.Float64)
func Full(shape Shape, value any, dtype DataType) (*Array, error) {
	out, err := Empty(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := out.Fill(value); err != nil {
		return nil, err
	}
	return out, nil
}

// Eye creates a 2D identity matrix.
func Eye(n int, dtype DataType) (*Array, error) {
	out, err := Zeros(Shape{n, n}, dtype)
	if err != nil {
		return nil, err
	}
	one := IntScalar(1)
	for i := 0; i < n; i++ {
		out.store(i*out.strides[0]+i*out.strides[1], one)
	}
	return out, nil
}

// ZerosLike creates a zero array with a's shape and the given dtype.
func ZerosLike(a *Array, dtype DataType) *Array {
	return mustEmpty(a.shape, dtype)
}

// OnesLike creates an array of ones with a's shape and the given dtype.
func OnesLike(a *Array, dtype DataType) *Array {
	out := mustEmpty(a.shape, dtype)
	_ = out.Fill(1)
	return out
}

// FromSlice creates an array from a Go slice. The data is copied.
// The dtype is inferred from T; with no shape the result is 1-D.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int16{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Element](data []T, shape ...int) (*Array, error) {
	if shape == nil {
		shape = []int{len(data)}
	}
	if Shape(shape).NumElements() != len(data) {
		return nil, newError("from_slice", ErrSizeMismatch,
			"shape %v requires %d elements, but got %d", Shape(shape), Shape(shape).NumElements(), len(data))
	}
	out, err := Empty(Shape(shape), dataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		s, _, _ := scalarOf(v)
		out.store(i*out.dtype.size, s)
	}
	return out, nil
}

// FromScalar creates a 0-d array holding v.
// Panics if v is not a Go bool, integer, float or complex value.
func FromScalar(v any) *Array {
	s, dt, err := scalarOf(v)
	if err != nil {
		panic(err)
	}
	out := mustEmpty(Shape{}, dt)
	out.store(0, s)
	return out
}

// FromNested creates an array from nested Go slices or arrays, e.g.
// [][]int{{1, 2}, {3, 4}}. Ragged input fails with ErrShapeMismatch.
// The dtype is the promotion of every leaf type (Go int maps to int64).
func FromNested(v any) (*Array, error) {
	var (
		shape  Shape
		leaves []Scalar
		dtype  DataType
		seen   bool
	)
	var walk func(rv reflect.Value, depth int) error
	walk = func(rv reflect.Value, depth int) error {
		for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return newError("from_nested", ErrInvalidArgument, "nil element")
			}
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			n := rv.Len()
			if depth == len(shape) {
				if seen {
					return newError("from_nested", ErrShapeMismatch, "inhomogeneous nesting at depth %d", depth)
				}
				shape = append(shape, n)
			} else if depth > len(shape) || shape[depth] != n {
				return newError("from_nested", ErrShapeMismatch, "inhomogeneous shape at depth %d", depth)
			}
			for i := 0; i < n; i++ {
				if err := walk(rv.Index(i), depth+1); err != nil {
					return err
				}
			}
			return nil
		}
		if depth != len(shape) {
			return newError("from_nested", ErrShapeMismatch, "inhomogeneous shape at depth %d", depth)
		}
		s, dt, err := scalarOf(rv.Interface())
		if err != nil {
			return err
		}
		if !seen {
			dtype, seen = dt, true
		} else if dtype, err = PromoteTypes(dtype, dt); err != nil {
			return err
		}
		leaves = append(leaves, s)
		return nil
	}
	if err := walk(reflect.ValueOf(v), 0); err != nil {
		return nil, err
	}
	if !seen {
		dtype = Float64
	}
	out, err := Empty(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, s := range leaves {
		out.store(i*dtype.size, s)
	}
	return out, nil
}

// Fill sets every element to value in place.
func (a *Array) Fill(value any) error {
	if err := requireNumeric("fill", a); err != nil {
		return err
	}
	s, _, err := scalarOf(value)
	if err != nil {
		return err
	}
	it := newIter(a.shape, a)
	for it.next() {
		a.store(it.offs[0], s)
	}
	return nil
}

// Copy returns a C-contiguous copy with a freshly allocated buffer.
func (a *Array) Copy() *Array {
	out := mustEmpty(a.shape, a.dtype)
	if a.IsCContiguous() {
		lo, _ := a.byteRange()
		if a.Size() > 0 {
			copy(out.buf.data, a.buf.data[lo:lo+a.NBytes()])
		}
		return out
	}
	if err := copyRaw(out, a); err != nil {
		panic(fmt.Sprintf("copy: %v", err))
	}
	return out
}

// AsType returns a copy converted to dtype. Floats convert to integers by
// truncation toward zero; integers wrap on overflow.
func (a *Array) AsType(dtype DataType) (*Array, error) {
	if err := requireNumeric("astype", a); err != nil {
		return nil, err
	}
	if !dtype.IsNumeric() {
		return nil, newError("astype", ErrDTypeMismatch, "cannot cast %s to %s", a.dtype, dtype)
	}
	out := mustEmpty(a.shape, dtype)
	if err := copyInto("astype", out, a); err != nil {
		return nil, err
	}
	return out, nil
}
