package tensor

// truthy reports whether the element at byte offset off is non-zero.
// Record elements are truthy when any of their bytes is set.
func (a *Array) truthy(off int) bool {
	if a.dtype.kind == KindRecord {
		for _, b := range a.buf.data[off : off+a.dtype.size] {
			if b != 0 {
				return true
			}
		}
		return false
	}
	return a.load(off).Bool()
}

// Nonzero returns, for every dimension of a, an int64 array holding the
// coordinates of the non-zero elements in row-major order. A 0-d array is
// treated as 1-D.
func Nonzero(a *Array) []*Array {
	src := atLeastND(a, 1)
	nd := src.NDim()
	coords := make([][]int64, nd)
	it := newIter(src.shape, src)
	for it.next() {
		if !src.truthy(it.offs[0]) {
			continue
		}
		for d := 0; d < nd; d++ {
			coords[d] = append(coords[d], int64(it.index[d]))
		}
	}
	if src != a {
		src.Release()
	}
	out := make([]*Array, nd)
	for d := range out {
		out[d], _ = FromSlice(coords[d], len(coords[d]))
	}
	return out
}

// Where is the single-argument form of where: the coordinates of the
// elements of cond that are true.
//
// Example:
//
//	cond, _ := tensor.FromNested([][]bool{{false, false, true}, {false, true, false}})
//	pos := tensor.Where(cond) // [0 1], [2 1]
func Where(cond *Array) []*Array {
	return Nonzero(cond)
}

// WhereSelect picks elements from x where cond is true and from y
// elsewhere. All three operands are broadcast together and the result
// dtype is the promotion of x and y.
func WhereSelect(cond, x, y *Array) (*Array, error) {
	if err := requireNumeric("where", cond, x, y); err != nil {
		return nil, err
	}
	dtype, err := resultType(x, y)
	if err != nil {
		return nil, err
	}
	ops, err := BroadcastArrays(cond, x, y)
	if err != nil {
		return nil, err
	}
	defer releaseAll(ops)
	out := mustEmpty(ops[0].shape, dtype)
	it := newIter(out.shape, out, ops[0], ops[1], ops[2])
	for it.next() {
		if ops[0].load(it.offs[1]).Bool() {
			out.store(it.offs[0], ops[1].load(it.offs[2]))
		} else {
			out.store(it.offs[0], ops[2].load(it.offs[3]))
		}
	}
	return out, nil
}

// ArgWhere returns the coordinates of the non-zero elements of a grouped
// per element: an int64 array of shape (N, ndim).
func ArgWhere(a *Array) *Array {
	nz := Nonzero(a)
	n := nz[0].Size()
	nd := a.NDim()
	out := mustEmpty(Shape{n, nd}, Int64)
	for d := 0; d < nd; d++ {
		col := nz[d].Int64s()
		for i, v := range col {
			out.store((i*nd+d)*8, IntScalar(v))
		}
	}
	releaseAll(nz)
	return out
}

// CountNonzero returns the number of non-zero elements.
func CountNonzero(a *Array) int {
	n := 0
	it := newIter(a.shape, a)
	for it.next() {
		if a.truthy(it.offs[0]) {
			n++
		}
	}
	return n
}

func releaseAll(arrays []*Array) {
	for _, a := range arrays {
		a.Release()
	}
}
