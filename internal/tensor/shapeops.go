package tensor

// Reshape returns an array with the same elements and a new shape. One
// extent may be -1 and is inferred. The result is a view whenever the
// strides allow it, otherwise a copy.
//
// Example:
//
//	a, _ := tensor.Arange(0, 12, 1)
//	b, _ := a.Reshape(3, -1) // Shape: (3, 4), shares a's buffer
func (a *Array) Reshape(dims ...int) (*Array, error) {
	shape, err := inferShape(dims, a.Size())
	if err != nil {
		return nil, err
	}
	if a.Size() == 0 {
		return newView(a, a.dtype, shape, shape.byteStrides(a.dtype.size), a.offset)
	}
	if strides, ok := noCopyStrides(a.shape, a.strides, shape, a.dtype.size); ok {
		return newView(a, a.dtype, shape, strides, a.offset)
	}
	c := a.Copy()
	v, err := newView(c, c.dtype, shape, shape.byteStrides(c.dtype.size), 0)
	c.Release()
	return v, err
}

func inferShape(dims []int, size int) (Shape, error) {
	shape := Shape(dims).Clone()
	unknown, known := -1, 1
	for i, d := range shape {
		switch {
		case d == -1 && unknown >= 0:
			return nil, newError("reshape", ErrInvalidArgument, "can only specify one unknown dimension")
		case d == -1:
			unknown = i
		case d < 0:
			return nil, newError("reshape", ErrInvalidArgument, "negative dimension %d", d)
		default:
			known *= d
		}
	}
	if unknown >= 0 {
		if known == 0 || size%known != 0 {
			return nil, newError("reshape", ErrSizeMismatch, "cannot reshape array of size %d into shape %v", size, Shape(dims))
		}
		shape[unknown] = size / known
	}
	if shape.NumElements() != size {
		return nil, newError("reshape", ErrSizeMismatch, "cannot reshape array of size %d into shape %v", size, shape)
	}
	return shape, nil
}

// noCopyStrides finds C-order strides for newShape that address the same
// elements as (shape, strides), if such strides exist.
func noCopyStrides(shape Shape, strides []int, newShape Shape, itemsize int) ([]int, bool) {
	var oldDims, oldStrides []int
	for i, n := range shape {
		if n != 1 {
			oldDims = append(oldDims, n)
			oldStrides = append(oldStrides, strides[i])
		}
	}
	newStrides := make([]int, len(newShape))
	oldnd, newnd := len(oldDims), len(newShape)
	oi, oj := 0, 1
	ni, nj := 0, 1
	for ni < newnd && oi < oldnd {
		np, op := newShape[ni], oldDims[oi]
		for np != op {
			if np < op {
				np *= newShape[nj]
				nj++
			} else {
				op *= oldDims[oj]
				oj++
			}
		}
		for ok := oi; ok < oj-1; ok++ {
			if oldStrides[ok] != oldDims[ok+1]*oldStrides[ok+1] {
				return nil, false
			}
		}
		newStrides[nj-1] = oldStrides[oj-1]
		for nk := nj - 1; nk > ni; nk-- {
			newStrides[nk-1] = newStrides[nk] * newShape[nk]
		}
		ni, nj = nj, nj+1
		oi, oj = oj, oj+1
	}
	last := itemsize
	if ni >= 1 {
		last = newStrides[ni-1]
	}
	for nk := ni; nk < newnd; nk++ {
		newStrides[nk] = last
	}
	return newStrides, true
}

// Transpose permutes the dimensions. With no axes the order is reversed.
// Always a view.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	nd := a.NDim()
	if len(axes) == 0 {
		axes = make([]int, nd)
		for i := range axes {
			axes[i] = nd - 1 - i
		}
	}
	if len(axes) != nd {
		return nil, newError("transpose", ErrInvalidArgument, "axes don't match array")
	}
	seen := make([]bool, nd)
	shape := make(Shape, nd)
	strides := make([]int, nd)
	for i, ax := range axes {
		ax, err := normalizeAxis("transpose", ax, nd)
		if err != nil {
			return nil, err
		}
		if seen[ax] {
			return nil, newError("transpose", ErrInvalidArgument, "repeated axis in transpose")
		}
		seen[ax] = true
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}
	return newView(a, a.dtype, shape, strides, a.offset)
}

// T returns the transposed view (dimensions reversed).
func (a *Array) T() *Array {
	t, err := a.Transpose()
	if err != nil {
		panic(err) // reversing axes is always valid
	}
	return t
}

// SwapAxes returns a view with axes i and j exchanged.
func (a *Array) SwapAxes(i, j int) (*Array, error) {
	axes := make([]int, a.NDim())
	for k := range axes {
		axes[k] = k
	}
	i, err := normalizeAxis("swapaxes", i, a.NDim())
	if err != nil {
		return nil, err
	}
	if j, err = normalizeAxis("swapaxes", j, a.NDim()); err != nil {
		return nil, err
	}
	axes[i], axes[j] = axes[j], axes[i]
	return a.Transpose(axes...)
}

// MoveAxis returns a view with axis src moved to position dst.
func (a *Array) MoveAxis(src, dst int) (*Array, error) {
	nd := a.NDim()
	src, err := normalizeAxis("moveaxis", src, nd)
	if err != nil {
		return nil, err
	}
	if dst, err = normalizeAxis("moveaxis", dst, nd); err != nil {
		return nil, err
	}
	order := make([]int, 0, nd)
	for k := 0; k < nd; k++ {
		if k != src {
			order = append(order, k)
		}
	}
	order = append(order[:dst], append([]int{src}, order[dst:]...)...)
	return a.Transpose(order...)
}

// Ravel returns the elements as a 1-D array in row-major order: a view
// when the layout allows it, otherwise a copy.
func (a *Array) Ravel() *Array {
	r, err := a.Reshape(-1)
	if err != nil {
		panic(err) // -1 always matches the size
	}
	return r
}

// Squeeze removes dimensions of extent 1. With no axes every such
// dimension is removed. Always a view.
func (a *Array) Squeeze(axes ...int) (*Array, error) {
	drop := make([]bool, a.NDim())
	if len(axes) == 0 {
		for i, n := range a.shape {
			drop[i] = n == 1
		}
	}
	for _, ax := range axes {
		ax, err := normalizeAxis("squeeze", ax, a.NDim())
		if err != nil {
			return nil, err
		}
		if a.shape[ax] != 1 {
			return nil, newError("squeeze", ErrInvalidArgument,
				"cannot select an axis to squeeze out which has size not equal to one")
		}
		drop[ax] = true
	}
	var shape Shape
	var strides []int
	for i, n := range a.shape {
		if !drop[i] {
			shape = append(shape, n)
			strides = append(strides, a.strides[i])
		}
	}
	return newView(a, a.dtype, shape, strides, a.offset)
}

// ExpandDims inserts a dimension of extent 1 at axis. Always a view.
func (a *Array) ExpandDims(axis int) (*Array, error) {
	axis, err := normalizeAxis("expand_dims", axis, a.NDim()+1)
	if err != nil {
		return nil, err
	}
	shape := append(append(a.shape[:axis:axis], 1), a.shape[axis:]...)
	strides := append(append(a.strides[:axis:axis], 0), a.strides[axis:]...)
	return newView(a, a.dtype, shape, strides, a.offset)
}

// atLeastND prepends unit dimensions until a has nd dimensions.
func atLeastND(a *Array, nd int) *Array {
	if a.NDim() >= nd {
		return a
	}
	pad := nd - a.NDim()
	shape := make(Shape, pad, nd)
	strides := make([]int, pad, nd)
	for i := range shape {
		shape[i] = 1
	}
	shape = append(shape, a.shape...)
	strides = append(strides, a.strides...)
	v, err := newView(a, a.dtype, shape, strides, a.offset)
	if err != nil {
		panic(err)
	}
	return v
}
