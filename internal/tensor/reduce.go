package tensor

import (
	"math"
	"sort"

	"github.com/born-ml/ndarray/internal/parallel"
)

// NoAxis selects the flattened array in routines that take an axis.
const NoAxis = math.MinInt

// lanes splits a into 1-D lanes along axis. rest addresses the first
// element of every lane; each lane has n elements stride bytes apart.
// With NoAxis the lanes run over the row-major flattened array.
func (a *Array) lanes(op string, axis int) (rest *Array, n, stride int, err error) {
	src := a
	if axis == NoAxis {
		src = a.Ravel()
		defer src.Release()
		axis = 0
	}
	if axis, err = normalizeAxis(op, axis, src.NDim()); err != nil {
		return nil, 0, 0, err
	}
	shape := append(src.shape[:axis:axis], src.shape[axis+1:]...)
	strides := append(src.strides[:axis:axis], src.strides[axis+1:]...)
	rest, err = newView(src, src.dtype, shape, strides, src.offset)
	return rest, src.shape[axis], src.strides[axis], err
}

// reduce folds every lane along axis into one element of a new array.
func reduce(op string, a *Array, axis int, outType DataType, fold func(lane []Scalar) Scalar) (*Array, error) {
	if err := requireNumeric(op, a); err != nil {
		return nil, err
	}
	rest, n, stride, err := a.lanes(op, axis)
	if err != nil {
		return nil, err
	}
	defer rest.Release()
	out := mustEmpty(rest.shape, outType)
	parallel.ForRange(out.Size(), func(lo, hi int) {
		lane := make([]Scalar, n)
		for i := lo; i < hi; i++ {
			base := rest.flatOffset(i)
			for k := range lane {
				lane[k] = rest.load(base + k*stride)
			}
			out.store(out.flatOffset(i), fold(lane))
		}
	}, CurrentConfig().Parallel)
	return out, nil
}

func sumType(dt DataType) DataType {
	switch dt.kind {
	case KindBool, KindInt:
		return Int64
	case KindUint:
		return Uint64
	}
	return dt.WithNativeOrder()
}

// Sum adds the elements along axis (NoAxis sums everything into a 0-d
// array). Boolean and signed inputs accumulate in int64, unsigned in uint64.
func Sum(a *Array, axis int) (*Array, error) {
	dt := sumType(a.dtype)
	return reduce("sum", a, axis, dt, func(lane []Scalar) Scalar {
		acc := zeroOf(dt.kind)
		for _, v := range lane {
			acc = OpAdd.apply(dt.kind, acc, v.As(dt.kind))
		}
		return acc
	})
}

// Mean returns the arithmetic mean along axis. Integer inputs give float64.
func Mean(a *Array, axis int) (*Array, error) {
	dt := a.dtype.WithNativeOrder()
	if dt.kind <= KindInt {
		dt = Float64
	}
	return reduce("mean", a, axis, dt, func(lane []Scalar) Scalar {
		if dt.kind == KindComplex {
			var acc complex128
			for _, v := range lane {
				acc += v.Complex128()
			}
			return ComplexScalar(acc / complex(float64(len(lane)), 0))
		}
		var acc float64
		for _, v := range lane {
			acc += v.Float64()
		}
		return FloatScalar(acc / float64(len(lane)))
	})
}

func zeroOf(k Kind) Scalar {
	return IntScalar(0).As(k)
}

// lessScalar orders two values of the same kind. NaN sorts after every
// other value; complex values order by real then imaginary part.
func lessScalar(x, y Scalar) bool {
	switch x.Kind {
	case KindBool:
		return !x.B && y.B
	case KindInt:
		return x.I < y.I
	case KindUint:
		return x.U < y.U
	case KindFloat:
		return lessFloat(x.F, y.F)
	case KindComplex:
		xr, yr := real(x.C), real(y.C)
		if xr != yr && !(math.IsNaN(xr) && math.IsNaN(yr)) {
			return lessFloat(xr, yr)
		}
		return lessFloat(imag(x.C), imag(y.C))
	}
	return false
}

func lessFloat(x, y float64) bool {
	if math.IsNaN(x) {
		return false
	}
	return x < y || math.IsNaN(y)
}

// sameScalar reports whether two values of the same kind are equal, with
// NaN equal to NaN.
func sameScalar(x, y Scalar) bool {
	return !lessScalar(x, y) && !lessScalar(y, x)
}

// argsortScalars returns the stable ascending permutation of vals.
func argsortScalars(vals []Scalar) []int {
	perm := make([]int, len(vals))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return lessScalar(vals[perm[i]], vals[perm[j]]) })
	return perm
}

// ArgSort returns the int64 indices that sort a along axis, stably.
// With NoAxis the flattened array is sorted and the result is 1-D.
func ArgSort(a *Array, axis int) (*Array, error) {
	return sortLanes("argsort", a, axis, true)
}

// Sort returns a sorted copy of a along axis. With NoAxis the flattened
// array is sorted.
func Sort(a *Array, axis int) (*Array, error) {
	return sortLanes("sort", a, axis, false)
}

func sortLanes(op string, a *Array, axis int, indices bool) (*Array, error) {
	if err := requireNumeric(op, a); err != nil {
		return nil, err
	}
	src := a
	if axis == NoAxis {
		src = a.Ravel()
		defer src.Release()
		axis = 0
	}
	axis, err := normalizeAxis(op, axis, src.NDim())
	if err != nil {
		return nil, err
	}
	rest, n, stride, err := src.lanes(op, axis)
	if err != nil {
		return nil, err
	}
	defer rest.Release()
	outType := src.dtype
	if indices {
		outType = Int64
	}
	out := mustEmpty(src.shape, outType)
	outStride := out.strides[axis]
	outRest, _, _, _ := out.lanes(op, axis)
	defer outRest.Release()
	parallel.ForRange(rest.Size(), func(lo, hi int) {
		lane := make([]Scalar, n)
		for i := lo; i < hi; i++ {
			base := rest.flatOffset(i)
			for k := range lane {
				lane[k] = rest.load(base + k*stride)
			}
			perm := argsortScalars(lane)
			obase := outRest.flatOffset(i)
			for k, p := range perm {
				if indices {
					out.store(obase+k*outStride, IntScalar(int64(p)))
				} else {
					out.store(obase+k*outStride, lane[p])
				}
			}
		}
	}, CurrentConfig().Parallel)
	return out, nil
}
