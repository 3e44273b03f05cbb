package tensor

// flatPositions resolves idx against the row-major flattened view of a and
// returns the selected flat positions.
func (a *Array) flatPositions(op string, idx Index) ([]int64, error) {
	n := a.Size()
	if idx.kind == indexInt {
		i := idx.n
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil, newError(op, ErrIndexOutOfRange, "index %d is out of bounds for size %d", idx.n, n)
		}
		return []int64{int64(i)}, nil
	}
	if idx.kind == indexEllipsis {
		idx = All()
	}
	if idx.kind != indexSlice && idx.kind != indexArray && idx.kind != indexMask {
		return nil, newError(op, ErrInvalidArgument, "unsupported flat index %s", idx)
	}
	pos := arangeInt(n)
	defer pos.Release()
	sel, err := pos.Get(idx)
	if err != nil {
		return nil, err
	}
	defer sel.Release()
	return sel.Int64s(), nil
}

func arangeInt(n int) *Array {
	out := mustEmpty(Shape{n}, Int64)
	for i := 0; i < n; i++ {
		out.store(i*8, IntScalar(int64(i)))
	}
	return out
}

// FlatAt returns the element at position i of the row-major flattened
// array. Negative positions count from the end.
func (a *Array) FlatAt(i int) (Scalar, error) {
	if err := requireNumeric("flat", a); err != nil {
		return Scalar{}, err
	}
	pos, err := a.flatPositions("flat", Int(i))
	if err != nil {
		return Scalar{}, err
	}
	return a.load(a.flatOffset(int(pos[0]))), nil
}

// FlatGet returns a copy of the elements selected by idx in the row-major
// flattened array. The result is 1-D (0-d for an integer index).
func (a *Array) FlatGet(idx Index) (*Array, error) {
	pos, err := a.flatPositions("flat", idx)
	if err != nil {
		return nil, err
	}
	shape := Shape{len(pos)}
	if idx.kind == indexInt {
		shape = Shape{}
	} else if idx.kind == indexArray {
		shape = idx.arr.shape
	}
	out := mustEmpty(shape, a.dtype)
	n := a.dtype.size
	for k, p := range pos {
		off := a.flatOffset(int(p))
		copy(out.buf.data[k*n:(k+1)*n], a.buf.data[off:off+n])
	}
	return out, nil
}

// FlatSet writes value into the positions selected by idx in the row-major
// flattened array, in place. value is a scalar or an array; its elements
// are repeated cyclically when there are fewer of them than positions.
//
// Example:
//
//	_ = a.FlatSet(1, tensor.Ints(1, 4)) // a.flat[[1, 4]] = 1
func (a *Array) FlatSet(value any, idx Index) error {
	if err := requireNumeric("flat", a); err != nil {
		return err
	}
	var vals []Scalar
	if arr, ok := value.(*Array); ok {
		if err := requireNumeric("flat", arr); err != nil {
			return err
		}
		vals = arr.Values()
	} else {
		s, _, err := scalarOf(value)
		if err != nil {
			return err
		}
		vals = []Scalar{s}
	}
	pos, err := a.flatPositions("flat", idx)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		if len(pos) == 0 {
			return nil
		}
		return newError("flat", ErrSizeMismatch, "cannot assign an empty array to %d positions", len(pos))
	}
	for k, p := range pos {
		a.store(a.flatOffset(int(p)), vals[k%len(vals)])
	}
	return nil
}
