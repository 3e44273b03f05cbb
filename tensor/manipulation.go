// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Order selects the element order used by Flatten.
type Order = tensor.Order

// Flatten orders.
const (
	OrderC = tensor.OrderC
	OrderF = tensor.OrderF
	OrderK = tensor.OrderK
)

// UniqueOptions selects what Unique returns besides the sorted values.
type UniqueOptions = tensor.UniqueOptions

// UniqueResult holds the outputs of Unique.
type UniqueResult = tensor.UniqueResult

// Concatenate joins arrays along an existing axis (NoAxis flattens them).
//
// Example:
//
//	a, _ := tensor.FromNested([][]int{{1, 2}, {3, 4}})
//	b, _ := tensor.FromNested([][]int{{5, 6}})
//	c, _ := tensor.Concatenate([]*tensor.Array{a, b}, 0) // Shape: (3, 2)
func Concatenate(arrays []*Array, axis int) (*Array, error) {
	return tensor.Concatenate(arrays, axis)
}

// Append returns a with values joined at the end of axis.
func Append(a, values *Array, axis int) (*Array, error) {
	return tensor.Append(a, values, axis)
}

// Insert returns a copy of a with values inserted before the given positions.
func Insert(a *Array, where Index, values *Array, axis int) (*Array, error) {
	return tensor.Insert(a, where, values, axis)
}

// Delete returns a copy of a without the sub-arrays at the given positions.
func Delete(a *Array, where Index, axis int) (*Array, error) {
	return tensor.Delete(a, where, axis)
}

// Take selects elements along axis using an integer index array.
func Take(a, indices *Array, axis int) (*Array, error) {
	return tensor.Take(a, indices, axis)
}

// ColumnStack stacks 1-D arrays as columns of a 2-D array.
func ColumnStack(arrays []*Array) (*Array, error) {
	return tensor.ColumnStack(arrays)
}

// Split divides a into equal views along axis.
func Split(a *Array, sections, axis int) ([]*Array, error) {
	return tensor.Split(a, sections, axis)
}

// SplitAt divides a into views along axis at the given boundaries.
func SplitAt(a *Array, bounds []int, axis int) ([]*Array, error) {
	return tensor.SplitAt(a, bounds, axis)
}

// HSplit splits a horizontally into equal views.
func HSplit(a *Array, sections int) ([]*Array, error) {
	return tensor.HSplit(a, sections)
}

// Diff returns the n-th discrete difference along axis.
func Diff(a *Array, n, axis int) (*Array, error) {
	return tensor.Diff(a, n, axis)
}

// PackBits packs truth values into the bits of a uint8 array.
func PackBits(a *Array, axis int) (*Array, error) {
	return tensor.PackBits(a, axis)
}

// UnpackBits expands a uint8 array into its bits.
func UnpackBits(a *Array, axis int) (*Array, error) {
	return tensor.UnpackBits(a, axis)
}

// Unique returns the sorted unique elements of a and, on request, first
// indices, inverse positions and counts.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{1, 2, 3, 1, 3, 4, 5, 4, 4})
//	r, _ := tensor.Unique(x, tensor.UniqueOptions{ReturnCounts: true})
func Unique(a *Array, opts UniqueOptions) (*UniqueResult, error) {
	return tensor.Unique(a, opts)
}

// Nonzero returns the coordinates of the non-zero elements, one array per dimension.
func Nonzero(a *Array) []*Array {
	return tensor.Nonzero(a)
}

// Where returns the coordinates of the true elements of cond.
func Where(cond *Array) []*Array {
	return tensor.Where(cond)
}

// WhereSelect picks from x where cond is true and from y elsewhere.
func WhereSelect(cond, x, y *Array) (*Array, error) {
	return tensor.WhereSelect(cond, x, y)
}

// ArgWhere returns the coordinates of the non-zero elements as an (N, ndim) array.
func ArgWhere(a *Array) *Array {
	return tensor.ArgWhere(a)
}

// CountNonzero returns the number of non-zero elements.
func CountNonzero(a *Array) int {
	return tensor.CountNonzero(a)
}

// Intersect1D returns the sorted unique values present in both a and b.
func Intersect1D(a, b *Array) (*Array, error) { return tensor.Intersect1D(a, b) }

// Union1D returns the sorted unique values present in a or b.
func Union1D(a, b *Array) (*Array, error) { return tensor.Union1D(a, b) }

// SetXor1D returns the sorted unique values present in exactly one of a and b.
func SetXor1D(a, b *Array) (*Array, error) { return tensor.SetXor1D(a, b) }

// SetDiff1D returns the sorted unique values of a that are not in b.
func SetDiff1D(a, b *Array) (*Array, error) { return tensor.SetDiff1D(a, b) }

// In1D tests every element of the flattened a for membership in b.
func In1D(a, b *Array, invert bool) (*Array, error) { return tensor.In1D(a, b, invert) }

// IsIn tests every element of a for membership in b; the mask has a's shape.
func IsIn(a, b *Array, invert bool) (*Array, error) { return tensor.IsIn(a, b, invert) }

// Reductions

// Sum adds the elements along axis.
func Sum(a *Array, axis int) (*Array, error) { return tensor.Sum(a, axis) }

// Mean returns the arithmetic mean along axis.
func Mean(a *Array, axis int) (*Array, error) { return tensor.Mean(a, axis) }

// ArgSort returns the indices that sort a along axis.
func ArgSort(a *Array, axis int) (*Array, error) { return tensor.ArgSort(a, axis) }

// Sort returns a sorted copy of a along axis.
func Sort(a *Array, axis int) (*Array, error) { return tensor.Sort(a, axis) }
