// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Array is an N-dimensional strided view of a Buffer.
type Array = tensor.Array

// Buffer is the reference-counted storage shared by an array and its views.
type Buffer = tensor.Buffer

// DataType describes how the bytes of one element map to a value.
type DataType = tensor.DataType

// Field is a named member of a record DataType.
type Field = tensor.Field

// Kind is the category of a DataType.
type Kind = tensor.Kind

// ByteOrder is the order in which an element's bytes are stored.
type ByteOrder = tensor.ByteOrder

// Shape represents the extents of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Scalar is a single element value tagged with its kind.
type Scalar = tensor.Scalar

// Index is one term of an index expression.
type Index = tensor.Index

// Element is the set of Go types that map onto a DataType.
type Element = tensor.Element

// Number is the set of real numeric Go types accepted by Arange.
type Number = tensor.Number

// Error describes a failed array operation.
type Error = tensor.Error

// Config controls engine-wide behaviour.
type Config = tensor.Config

// Kinds.
const (
	KindBool    = tensor.KindBool
	KindUint    = tensor.KindUint
	KindInt     = tensor.KindInt
	KindFloat   = tensor.KindFloat
	KindComplex = tensor.KindComplex
	KindRecord  = tensor.KindRecord
)

// Byte orders.
const (
	LittleEndian = tensor.LittleEndian
	BigEndian    = tensor.BigEndian
)

// NativeOrder is the byte order of the host CPU.
var NativeOrder = tensor.NativeOrder

// Data types in native byte order.
var (
	Bool       = tensor.Bool
	Int8       = tensor.Int8
	Int16      = tensor.Int16
	Int32      = tensor.Int32
	Int64      = tensor.Int64
	Uint8      = tensor.Uint8
	Uint16     = tensor.Uint16
	Uint32     = tensor.Uint32
	Uint64     = tensor.Uint64
	Float16    = tensor.Float16
	Float32    = tensor.Float32
	Float64    = tensor.Float64
	Complex64  = tensor.Complex64
	Complex128 = tensor.Complex128
)

// Error kinds. Use errors.Is to test for them.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrAxisOutOfRange  = tensor.ErrAxisOutOfRange
	ErrSizeMismatch    = tensor.ErrSizeMismatch
	ErrDTypeMismatch   = tensor.ErrDTypeMismatch
	ErrSignMismatch    = tensor.ErrSignMismatch
	ErrInvalidArgument = tensor.ErrInvalidArgument
)

// NoAxis selects the flattened array in routines that take an axis.
const NoAxis = tensor.NoAxis

// Record builds a packed record type from field names and types.
//
// Example:
//
//	dt, _ := tensor.Record([]string{"id", "weight"}, []tensor.DataType{tensor.Int32, tensor.Float64})
func Record(names []string, types []DataType) (DataType, error) {
	return tensor.Record(names, types)
}

// PromoteTypes returns the smallest type both a and b can be safely cast to.
func PromoteTypes(a, b DataType) (DataType, error) {
	return tensor.PromoteTypes(a, b)
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return tensor.DefaultConfig()
}

// SetConfig replaces the engine configuration.
func SetConfig(cfg Config) {
	tensor.SetConfig(cfg)
}

// CurrentConfig returns the active engine configuration.
func CurrentConfig() Config {
	return tensor.CurrentConfig()
}

// Creation functions

// Empty creates a zero-initialized array in row-major order.
func Empty(shape Shape, dtype DataType) (*Array, error) {
	return tensor.Empty(shape, dtype)
}

// Zeros creates an array filled with zeros.
//
// Example:
//
//	x, _ := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return tensor.Zeros(shape, dtype)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DataType) (*Array, error) {
	return tensor.Ones(shape, dtype)
}

// Full creates an array filled with value cast to dtype.
func Full(shape Shape, value any, dtype DataType) (*Array, error) {
	return tensor.Full(shape, value, dtype)
}

// Eye creates an n×n identity matrix.
func Eye(n int, dtype DataType) (*Array, error) {
	return tensor.Eye(n, dtype)
}

// ZerosLike creates a zero array with a's shape.
func ZerosLike(a *Array, dtype DataType) *Array {
	return tensor.ZerosLike(a, dtype)
}

// OnesLike creates an array of ones with a's shape.
func OnesLike(a *Array, dtype DataType) *Array {
	return tensor.OnesLike(a, dtype)
}

// FromSlice creates an array from a Go slice; the dtype follows T.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Element](data []T, shape ...int) (*Array, error) {
	return tensor.FromSlice(data, shape...)
}

// FromNested creates an array from nested Go slices, e.g. [][]int{{1, 2}, {3, 4}}.
func FromNested(v any) (*Array, error) {
	return tensor.FromNested(v)
}

// FromScalar creates a 0-d array holding v.
func FromScalar(v any) *Array {
	return tensor.FromScalar(v)
}

// Index terms

// Int selects a single position along an axis.
func Int(i int) Index { return tensor.Int(i) }

// All selects a whole axis (":").
func All() Index { return tensor.All() }

// Range selects "start:stop".
func Range(start, stop int) Index { return tensor.Range(start, stop) }

// RangeStep selects "start:stop:step".
func RangeStep(start, stop, step int) Index { return tensor.RangeStep(start, stop, step) }

// From selects "start:".
func From(start int) Index { return tensor.From(start) }

// To selects ":stop".
func To(stop int) Index { return tensor.To(stop) }

// Step selects "::step".
func Step(step int) Index { return tensor.Step(step) }

// SliceOf builds a slice term where nil bounds take their defaults.
func SliceOf(start, stop, step *int) Index { return tensor.SliceOf(start, stop, step) }

// Ellipsis expands to as many full slices as needed ("...").
func Ellipsis() Index { return tensor.Ellipsis() }

// NewAxis inserts a length-1 dimension.
func NewAxis() Index { return tensor.NewAxis() }

// Idx uses a boolean (mask) or integer array as an index.
func Idx(a *Array) Index { return tensor.Idx(a) }

// Ints is an integer-array index.
func Ints(values ...int) Index { return tensor.Ints(values...) }

// Bools is a boolean-mask index.
func Bools(values ...bool) Index { return tensor.Bools(values...) }

// ParseIndex parses an index expression in NumPy syntax, e.g. "1:-1, ::2".
func ParseIndex(expr string) ([]Index, error) {
	return tensor.ParseIndex(expr)
}

// Scalar constructors

// BoolScalar returns a boolean scalar.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// IntScalar returns a signed integer scalar.
func IntScalar(v int64) Scalar { return tensor.IntScalar(v) }

// UintScalar returns an unsigned integer scalar.
func UintScalar(v uint64) Scalar { return tensor.UintScalar(v) }

// FloatScalar returns a floating point scalar.
func FloatScalar(v float64) Scalar { return tensor.FloatScalar(v) }

// ComplexScalar returns a complex scalar.
func ComplexScalar(v complex128) Scalar { return tensor.ComplexScalar(v) }

// SharesMemory reports whether a and b address overlapping bytes of one buffer.
func SharesMemory(a, b *Array) bool {
	return tensor.SharesMemory(a, b)
}
