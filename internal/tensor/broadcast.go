package tensor

// BroadcastShapes implements NumPy-style broadcasting over any number of shapes.
//
// Rules:
// 1. Shapes are right-aligned and compared from the trailing dimension
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// The result extent per dimension is the maximum of the aligned extents.
//
// Examples:
//
//	(3, 1) + (3, 5)    → (3, 5)
//	(5,)   + (4, 1, 1) → (4, 1, 5)
//	(3, 4) + (3, 5)    → ErrShapeMismatch
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}
	result := make(Shape, ndim)
	for i := range result {
		result[i] = 1
	}

	for _, s := range shapes {
		offset := ndim - len(s)
		for i, dim := range s {
			cur := result[offset+i]
			switch {
			case dim == cur:
			case cur == 1:
				result[offset+i] = dim
			case dim == 1:
			default:
				return nil, newError("broadcast", ErrShapeMismatch,
					"shapes %v could not be broadcast together (dimension %d: %d vs %d)",
					shapes, offset+i, cur, dim)
			}
		}
	}
	return result, nil
}

// BroadcastTo returns a read-mostly view of a with the given shape.
// Stretched and prepended dimensions get stride 0; no data is copied.
func BroadcastTo(a *Array, shape Shape) (*Array, error) {
	if len(shape) < len(a.shape) {
		return nil, newError("broadcast_to", ErrShapeMismatch,
			"cannot broadcast shape %v to fewer dimensions %v", a.shape, shape)
	}
	offset := len(shape) - len(a.shape)
	strides := make([]int, len(shape))
	for i := range shape {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			// Padded dimension, stride is 0
			strides[i] = 0
		case a.shape[inIdx] == shape[i]:
			strides[i] = a.strides[inIdx]
		case a.shape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			return nil, newError("broadcast_to", ErrShapeMismatch,
				"cannot broadcast shape %v to %v", a.shape, shape)
		}
	}
	return newView(a, a.dtype, shape, strides, a.offset)
}

// BroadcastArrays broadcasts every operand to their common shape.
func BroadcastArrays(arrays ...*Array) ([]*Array, error) {
	shapes := make([]Shape, len(arrays))
	for i, a := range arrays {
		shapes[i] = a.shape
	}
	shape, err := BroadcastShapes(shapes...)
	if err != nil {
		return nil, err
	}
	out := make([]*Array, len(arrays))
	for i, a := range arrays {
		if out[i], err = BroadcastTo(a, shape); err != nil {
			return nil, err
		}
	}
	return out, nil
}
