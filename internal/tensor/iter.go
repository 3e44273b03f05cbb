package tensor

// nditer walks a shape in row-major order and tracks the byte offset of the
// current element in every operand. Operands must already have the walked
// shape (broadcast them first).
type nditer struct {
	shape   Shape
	strides [][]int
	index   []int
	offs    []int
	started bool
	done    bool
}

func newIter(shape Shape, operands ...*Array) *nditer {
	it := &nditer{
		shape:   shape,
		strides: make([][]int, len(operands)),
		index:   make([]int, len(shape)),
		offs:    make([]int, len(operands)),
	}
	for k, op := range operands {
		it.strides[k] = op.strides
		it.offs[k] = op.offset
	}
	return it
}

// next advances to the following element. The first call positions the
// iterator on the first element; it returns false once all are visited.
func (it *nditer) next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if it.shape.NumElements() == 0 {
			it.done = true
			return false
		}
		return true
	}
	for d := len(it.shape) - 1; d >= 0; d-- {
		it.index[d]++
		for k := range it.offs {
			it.offs[k] += it.strides[k][d]
		}
		if it.index[d] < it.shape[d] {
			return true
		}
		for k := range it.offs {
			it.offs[k] -= it.strides[k][d] * it.shape[d]
		}
		it.index[d] = 0
	}
	it.done = true
	return false
}

// copyInto writes src (broadcast to dst's shape and cast to dst's dtype)
// into dst in place. Overlapping operands are handled by copying src first.
func copyInto(op string, dst, src *Array) error {
	if err := requireNumeric(op, dst, src); err != nil {
		if dst.dtype.Equal(src.dtype) && dst.shape.Equal(src.shape) {
			return copyRaw(dst, src)
		}
		return err
	}
	view, err := BroadcastTo(src, dst.shape)
	if err != nil {
		return &Error{Op: op, Err: ErrShapeMismatch,
			Details: "could not broadcast input array from shape " + src.shape.String() + " into shape " + dst.shape.String()}
	}
	defer view.Release()
	if SharesMemory(dst, src) {
		c := view.Copy()
		defer c.Release()
		view = c
	}
	if dst.dtype.Equal(src.dtype) {
		it := newIter(dst.shape, dst, view)
		n := dst.dtype.size
		for it.next() {
			copy(dst.buf.data[it.offs[0]:it.offs[0]+n], view.buf.data[it.offs[1]:it.offs[1]+n])
		}
		return nil
	}
	it := newIter(dst.shape, dst, view)
	for it.next() {
		dst.store(it.offs[0], view.load(it.offs[1]))
	}
	return nil
}

// copyRaw copies element bytes between two arrays of equal dtype and shape.
// It is the only copy path for record dtypes.
func copyRaw(dst, src *Array) error {
	if SharesMemory(dst, src) {
		src = src.Copy()
	}
	n := dst.dtype.size
	it := newIter(dst.shape, dst, src)
	for it.next() {
		copy(dst.buf.data[it.offs[0]:it.offs[0]+n], src.buf.data[it.offs[1]:it.offs[1]+n])
	}
	return nil
}
