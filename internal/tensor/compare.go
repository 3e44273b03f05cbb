package tensor

import (
	"math"
	"math/cmplx"
)

// ArrayEqual reports whether a and b have the same shape and equal
// elements. The dtypes may differ; values are compared after promotion.
// NaN is not equal to itself.
func ArrayEqual(a, b *Array) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	if !a.dtype.IsNumeric() || !b.dtype.IsNumeric() {
		if !a.dtype.Equal(b.dtype) {
			return false
		}
		n := a.dtype.size
		it := newIter(a.shape, a, b)
		for it.next() {
			if string(a.buf.data[it.offs[0]:it.offs[0]+n]) != string(b.buf.data[it.offs[1]:it.offs[1]+n]) {
				return false
			}
		}
		return true
	}
	eq, err := Equal(a, b)
	if err != nil {
		return false
	}
	defer eq.Release()
	for _, v := range eq.Bools() {
		if !v {
			return false
		}
	}
	return true
}

// IsClose reports whether two scalars are equal within tolerance:
// |x - y| <= atol + rtol*|y|. NaNs are never close.
func IsClose(x, y Scalar, rtol, atol float64) bool {
	if x.Kind == KindComplex || y.Kind == KindComplex {
		a, b := x.Complex128(), y.Complex128()
		return cmplx.Abs(a-b) <= atol+rtol*cmplx.Abs(b)
	}
	a, b := x.Float64(), y.Float64()
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllClose reports whether every pair of elements of a and b, broadcast
// together, is within tolerance (see IsClose).
func AllClose(a, b *Array, rtol, atol float64) (bool, error) {
	if err := requireNumeric("allclose", a, b); err != nil {
		return false, err
	}
	ops, err := BroadcastArrays(a, b)
	if err != nil {
		return false, err
	}
	defer releaseAll(ops)
	it := newIter(ops[0].shape, ops[0], ops[1])
	for it.next() {
		if !IsClose(ops[0].load(it.offs[0]), ops[1].load(it.offs[1]), rtol, atol) {
			return false, nil
		}
	}
	return true, nil
}
