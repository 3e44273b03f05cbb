package tensor

import "sort"

// Order selects the element order used by Flatten.
type Order uint8

// Flatten orders.
const (
	OrderC Order = iota // row-major
	OrderF              // column-major
	OrderK              // memory order of the source
)

// allBefore returns axis full slices, the prefix that addresses axis.
func allBefore(axis int) []Index {
	terms := make([]Index, axis)
	for i := range terms {
		terms[i] = All()
	}
	return terms
}

// flatSource returns the 1-D array and axis used when axis is NoAxis.
func flatSource(a *Array, axis int) (*Array, int, func()) {
	if axis == NoAxis {
		r := a.Ravel()
		return r, 0, r.Release
	}
	return a, axis, func() {}
}

// Concatenate joins arrays along an existing axis. All operands must have
// the same number of dimensions and equal extents off the axis. With
// NoAxis every operand is flattened first. The result dtype is the
// promotion of the operand dtypes; the result is always a new array.
//
// Example:
//
//	a, _ := tensor.FromNested([][]int{{1, 2}, {3, 4}})
//	b, _ := tensor.FromNested([][]int{{5, 6}})
//	c, _ := tensor.Concatenate([]*tensor.Array{a, b}, 0) // Shape: (3, 2)
func Concatenate(arrays []*Array, axis int) (*Array, error) {
	if len(arrays) == 0 {
		return nil, newError("concatenate", ErrInvalidArgument, "need at least one array to concatenate")
	}
	if axis == NoAxis {
		flat := make([]*Array, len(arrays))
		for i, a := range arrays {
			flat[i] = a.Ravel()
		}
		defer releaseAll(flat)
		arrays, axis = flat, 0
	}
	first := arrays[0]
	if first.NDim() == 0 {
		return nil, newError("concatenate", ErrInvalidArgument, "zero-dimensional arrays cannot be concatenated")
	}
	axis, err := normalizeAxis("concatenate", axis, first.NDim())
	if err != nil {
		return nil, err
	}
	shape := first.shape.Clone()
	dtype := first.dtype
	for i, a := range arrays[1:] {
		if a.NDim() != first.NDim() {
			return nil, newError("concatenate", ErrShapeMismatch,
				"all the input array dimensions must match exactly, but array at index 0 has %d dimension(s) "+
					"and the array at index %d has %d dimension(s)", first.NDim(), i+1, a.NDim())
		}
		for d := range shape {
			if d != axis && a.shape[d] != first.shape[d] {
				return nil, newError("concatenate", ErrShapeMismatch,
					"along dimension %d, the array at index 0 has size %d and the array at index %d has size %d",
					d, first.shape[d], i+1, a.shape[d])
			}
		}
		shape[axis] += a.shape[axis]
		if dtype, err = PromoteTypes(dtype, a.dtype); err != nil {
			return nil, err
		}
	}
	out := mustEmpty(shape, dtype)
	pos := 0
	for _, a := range arrays {
		dst, err := newView(out, dtype, a.shape, out.strides, out.offset+pos*out.strides[axis])
		if err != nil {
			return nil, err
		}
		err = copyInto("concatenate", dst, a)
		dst.Release()
		if err != nil {
			return nil, err
		}
		pos += a.shape[axis]
	}
	return out, nil
}

// Append returns a with values joined at the end of axis. With NoAxis both
// are flattened first.
func Append(a, values *Array, axis int) (*Array, error) {
	return Concatenate([]*Array{a, values}, axis)
}

// ColumnStack stacks 1-D arrays as columns of a 2-D array; 2-D operands
// are joined along their second axis.
func ColumnStack(arrays []*Array) (*Array, error) {
	cols := make([]*Array, len(arrays))
	for i, a := range arrays {
		if a.NDim() >= 2 {
			cols[i] = a.View()
			continue
		}
		c, err := a.Reshape(-1, 1)
		if err != nil {
			releaseAll(cols[:i])
			return nil, err
		}
		cols[i] = c
	}
	defer releaseAll(cols)
	return Concatenate(cols, 1)
}

// axisPositions resolves where against an axis of extent n: an integer,
// a slice or an integer array. Negative entries count from the end;
// allowEnd admits n itself as a position.
func axisPositions(op string, where Index, n int, allowEnd bool) ([]int, bool, error) {
	limit := n
	if allowEnd {
		limit = n + 1
	}
	check := func(i int) (int, error) {
		j := i
		if j < 0 {
			j += n
		}
		if j < 0 || j >= limit {
			return 0, newError(op, ErrIndexOutOfRange, "index %d is out of bounds for axis with size %d", i, n)
		}
		return j, nil
	}
	switch where.kind {
	case indexInt:
		j, err := check(where.n)
		return []int{j}, true, err
	case indexSlice:
		start, length, step, err := where.slice.resolve(n)
		if err != nil {
			return nil, false, err
		}
		out := make([]int, length)
		for i := range out {
			out[i] = start + i*step
		}
		return out, false, nil
	case indexArray:
		vals := where.arr.Int64s()
		out := make([]int, len(vals))
		for i, v := range vals {
			j, err := check(int(v))
			if err != nil {
				return nil, false, err
			}
			out[i] = j
		}
		return out, false, nil
	case indexMask:
		if where.arr.NDim() != 1 || where.arr.shape[0] != n {
			return nil, false, newError(op, ErrShapeMismatch,
				"boolean index of shape %v does not match axis of size %d", where.arr.shape, n)
		}
		var out []int
		for i, b := range where.arr.Bools() {
			if b {
				out = append(out, i)
			}
		}
		return out, false, nil
	}
	return nil, false, newError(op, ErrInvalidArgument, "unsupported index %s", where)
}

// Insert returns a copy of a with values inserted before the given
// positions along axis. where is a single position, an integer array of
// positions or a slice; NoAxis flattens a first. values are cast to a's
// dtype and broadcast to the inserted region.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int64{1, 1, 2, 2, 3, 3})
//	b, _ := tensor.FromSlice([]int64{90, 91, 92, 92, 93, 93})
//	c, _ := tensor.Insert(a, tensor.All(), b, tensor.NoAxis)
//	// [90 1 91 1 92 2 92 2 93 3 93 3]
func Insert(a *Array, where Index, values *Array, axis int) (*Array, error) {
	src, axis, done := flatSource(a, axis)
	defer done()
	if src.NDim() == 0 {
		return nil, newError("insert", ErrInvalidArgument, "cannot insert into a 0-d array")
	}
	axis, err := normalizeAxis("insert", axis, src.NDim())
	if err != nil {
		return nil, err
	}
	n := src.shape[axis]
	positions, scalar, err := axisPositions("insert", where, n, true)
	if err != nil {
		return nil, err
	}

	vals := atLeastND(values, src.NDim())
	defer func() {
		if vals != values {
			vals.Release()
		}
	}()
	if scalar {
		moved, err := vals.MoveAxis(0, axis)
		if err != nil {
			return nil, err
		}
		if vals != values {
			vals.Release()
		}
		vals = moved
		positions = repeatInt(positions[0], vals.shape[axis])
	} else if len(positions) == 1 {
		// A single position takes every entry of values along axis.
		positions = repeatInt(positions[0], vals.shape[axis])
	}

	numnew := len(positions)
	order := make([]int, numnew)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return positions[order[i]] < positions[order[j]] })
	newPos := make([]int, numnew)
	for k, o := range order {
		newPos[o] = positions[o] + k
	}

	shape := src.shape.Clone()
	shape[axis] += numnew
	out := mustEmpty(shape, src.dtype)
	taken := make([]bool, shape[axis])
	for _, p := range newPos {
		taken[p] = true
	}
	oldPos := make([]int, 0, n)
	for i, t := range taken {
		if !t {
			oldPos = append(oldPos, i)
		}
	}

	if err := out.Set(src, append(allBefore(axis), Ints(oldPos...))...); err != nil {
		out.Release()
		return nil, err
	}
	if numnew > 0 {
		if err := out.Set(vals, append(allBefore(axis), Ints(newPos...))...); err != nil {
			out.Release()
			return nil, err
		}
	}
	return out, nil
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Delete returns a copy of a without the sub-arrays at the given positions
// along axis. where may be an integer, a slice, an integer array or a
// boolean mask over the axis. NoAxis flattens a first.
func Delete(a *Array, where Index, axis int) (*Array, error) {
	src, axis, done := flatSource(a, axis)
	defer done()
	if src.NDim() == 0 {
		return nil, newError("delete", ErrInvalidArgument, "cannot delete from a 0-d array")
	}
	axis, err := normalizeAxis("delete", axis, src.NDim())
	if err != nil {
		return nil, err
	}
	n := src.shape[axis]
	positions, _, err := axisPositions("delete", where, n, false)
	if err != nil {
		return nil, err
	}
	drop := make([]bool, n)
	for _, p := range positions {
		drop[p] = true
	}
	keep := make([]int, 0, n)
	for i, d := range drop {
		if !d {
			keep = append(keep, i)
		}
	}
	return src.Get(append(allBefore(axis), Ints(keep...))...)
}

// Take selects elements along axis using an integer index array. The
// result shape is a.shape[:axis] + indices.shape + a.shape[axis+1:].
// With NoAxis elements are taken from the flattened array.
func Take(a, indices *Array, axis int) (*Array, error) {
	if !indices.dtype.IsInteger() {
		return nil, newError("take", ErrDTypeMismatch, "indices must be integers, got %s", indices.dtype)
	}
	src, axis, done := flatSource(a, axis)
	defer done()
	axis, err := normalizeAxis("take", axis, src.NDim())
	if err != nil {
		return nil, err
	}
	return src.Get(append(allBefore(axis), Idx(indices))...)
}

// Flatten returns a 1-D copy of a in the given order. OrderK follows the
// memory layout of a without reversing axes that have negative strides.
func (a *Array) Flatten(order Order) *Array {
	var src *Array
	switch order {
	case OrderF:
		src = a.T()
	case OrderK:
		src = a.memoryOrder()
	default:
		src = a.View()
	}
	c := src.Copy()
	src.Release()
	flat, err := c.Reshape(-1)
	if err != nil {
		panic(err)
	}
	c.Release()
	return flat
}

// memoryOrder returns a view whose axes are permuted by decreasing stride
// magnitude, so row-major traversal follows memory.
func (a *Array) memoryOrder() *Array {
	nd := a.NDim()
	perm := make([]int, nd)
	for i := range perm {
		perm[i] = i
	}
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	sort.SliceStable(perm, func(i, j int) bool { return abs(a.strides[perm[i]]) > abs(a.strides[perm[j]]) })
	v, err := a.Transpose(perm...)
	if err != nil {
		panic(err) // perm is a permutation of the axes
	}
	return v
}

// Split divides a into sections equal views along axis.
func Split(a *Array, sections, axis int) ([]*Array, error) {
	axis, err := normalizeAxis("split", axis, a.NDim())
	if err != nil {
		return nil, err
	}
	if sections <= 0 {
		return nil, newError("split", ErrInvalidArgument, "number sections must be larger than 0")
	}
	n := a.shape[axis]
	if n%sections != 0 {
		return nil, newError("split", ErrSizeMismatch, "array split does not result in an equal division")
	}
	bounds := make([]int, 0, sections-1)
	for i := 1; i < sections; i++ {
		bounds = append(bounds, i*n/sections)
	}
	return SplitAt(a, bounds, axis)
}

// SplitAt divides a into views along axis at the given boundaries.
// Boundaries past the end yield empty pieces.
func SplitAt(a *Array, bounds []int, axis int) ([]*Array, error) {
	axis, err := normalizeAxis("split", axis, a.NDim())
	if err != nil {
		return nil, err
	}
	out := make([]*Array, 0, len(bounds)+1)
	prev := 0
	for _, b := range append(append([]int(nil), bounds...), a.shape[axis]) {
		piece, err := a.Get(append(allBefore(axis), Range(prev, b))...)
		if err != nil {
			releaseAll(out)
			return nil, err
		}
		out = append(out, piece)
		prev = b
	}
	return out, nil
}

// HSplit splits a horizontally: along the second axis for arrays with two
// or more dimensions, along the first for 1-D arrays.
func HSplit(a *Array, sections int) ([]*Array, error) {
	if a.NDim() == 0 {
		return nil, newError("hsplit", ErrInvalidArgument, "hsplit only works on arrays of 1 or more dimensions")
	}
	if a.NDim() == 1 {
		return Split(a, sections, 0)
	}
	return Split(a, sections, 1)
}

// Diff returns the n-th discrete difference along axis. Boolean arrays use
// inequality instead of subtraction.
func Diff(a *Array, n, axis int) (*Array, error) {
	if n < 0 {
		return nil, newError("diff", ErrInvalidArgument, "order must be non-negative but got %d", n)
	}
	axis, err := normalizeAxis("diff", axis, a.NDim())
	if err != nil {
		return nil, err
	}
	cur := a.Copy()
	for i := 0; i < n && cur.shape[axis] > 0; i++ {
		hi, err := cur.Get(append(allBefore(axis), From(1))...)
		if err != nil {
			return nil, err
		}
		lo, err := cur.Get(append(allBefore(axis), To(-1))...)
		if err != nil {
			return nil, err
		}
		op := OpSubtract
		if cur.dtype.kind == KindBool {
			op = OpNotEqual
		}
		next, err := Binary(op, hi, lo)
		hi.Release()
		lo.Release()
		cur.Release()
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// PackBits packs the truth values of a boolean or integer array into the
// bits of a uint8 array along axis, most significant bit first. The axis
// is padded with zero bits to a multiple of 8.
func PackBits(a *Array, axis int) (*Array, error) {
	if a.dtype.kind > KindInt {
		return nil, newError("packbits", ErrDTypeMismatch, "expected an input array of integer or boolean data type")
	}
	src, axis, done := flatSource(a, axis)
	defer done()
	rest, n, stride, err := src.lanes("packbits", axis)
	if err != nil {
		return nil, err
	}
	defer rest.Release()
	axis, _ = normalizeAxis("packbits", axis, src.NDim())
	shape := src.shape.Clone()
	shape[axis] = (n + 7) / 8
	out := mustEmpty(shape, Uint8)
	outRest, _, outStride, _ := out.lanes("packbits", axis)
	defer outRest.Release()
	for i := 0; i < rest.Size(); i++ {
		base, obase := rest.flatOffset(i), outRest.flatOffset(i)
		for k := 0; k < n; k++ {
			if src.load(base + k*stride).Bool() {
				out.buf.data[obase+(k/8)*outStride] |= 0x80 >> (k % 8)
			}
		}
	}
	return out, nil
}

// UnpackBits expands every element of a uint8 array into 8 elements
// holding its bits, most significant bit first, along axis.
func UnpackBits(a *Array, axis int) (*Array, error) {
	if a.dtype.kind != KindUint || a.dtype.size != 1 {
		return nil, newError("unpackbits", ErrDTypeMismatch, "expected an input array of unsigned byte data type")
	}
	src, axis, done := flatSource(a, axis)
	defer done()
	rest, n, stride, err := src.lanes("unpackbits", axis)
	if err != nil {
		return nil, err
	}
	defer rest.Release()
	axis, _ = normalizeAxis("unpackbits", axis, src.NDim())
	shape := src.shape.Clone()
	shape[axis] = n * 8
	out := mustEmpty(shape, Uint8)
	outRest, _, outStride, _ := out.lanes("unpackbits", axis)
	defer outRest.Release()
	for i := 0; i < rest.Size(); i++ {
		base, obase := rest.flatOffset(i), outRest.flatOffset(i)
		for k := 0; k < n; k++ {
			b := src.buf.data[base+k*stride]
			for bit := 0; bit < 8; bit++ {
				out.buf.data[obase+(8*k+bit)*outStride] = (b >> (7 - bit)) & 1
			}
		}
	}
	return out, nil
}
