package tensor

// View reinterprets a's bytes as dtype without copying.
//
// With an equal item size only the dtype changes. Otherwise the innermost
// dimension must be contiguous and its byte length divisible by the new
// item size; its extent is rescaled and its stride set to the new item size.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int16{1, 2, 3, 4})
//	b, _ := tensor.View(a, tensor.Int8) // [1 0 2 0 3 0 4 0] on a little-endian host
func View(a *Array, dtype DataType) (*Array, error) {
	old := a.dtype.size
	if dtype.size == old {
		return newView(a, dtype, a.shape, a.strides, a.offset)
	}
	nd := a.NDim()
	if nd == 0 {
		return nil, newError("view", ErrSizeMismatch,
			"changing the dtype of a 0d array is only supported if the itemsize is unchanged")
	}
	last := a.shape[nd-1]
	if last != 1 && a.strides[nd-1] != old {
		return nil, newError("view", ErrSizeMismatch,
			"to change to a dtype of a different size, the last axis must be contiguous")
	}
	nbytes := last * old
	if nbytes%dtype.size != 0 {
		return nil, newError("view", ErrSizeMismatch,
			"when changing to a smaller dtype, its size must be a divisor of the size of original dtype; "+
				"last axis of %d bytes is not divisible by %d", nbytes, dtype.size)
	}
	shape := a.shape.Clone()
	strides := append([]int(nil), a.strides...)
	shape[nd-1] = nbytes / dtype.size
	strides[nd-1] = dtype.size
	return newView(a, dtype, shape, strides, a.offset)
}

// ByteSwap reverses the bytes of every element. Complex elements swap their
// real and imaginary halves separately and record elements swap field by
// field. With inPlace the shared buffer is modified (visible through every
// alias) and a itself is returned; otherwise a swapped copy is returned.
// The dtype is unchanged, so the values change.
func ByteSwap(a *Array, inPlace bool) *Array {
	target := a
	if !inPlace {
		target = a.Copy()
	}
	seen := map[int]bool(nil)
	if target.selfOverlapping() {
		seen = make(map[int]bool)
	}
	it := newIter(target.shape, target)
	for it.next() {
		off := it.offs[0]
		if seen != nil {
			if seen[off] {
				continue
			}
			seen[off] = true
		}
		swapElement(target.buf.data[off:off+target.dtype.size], target.dtype)
	}
	return target
}

func swapElement(b []byte, dt DataType) {
	switch dt.kind {
	case KindRecord:
		for _, f := range dt.fields {
			swapElement(b[f.Offset:f.Offset+f.Type.size], f.Type)
		}
	case KindComplex:
		half := dt.size / 2
		reverseBytes(b[:half])
		reverseBytes(b[half:])
	default:
		reverseBytes(b)
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// NewByteOrder returns a view of a whose dtype has the opposite byte
// order. Combined with ByteSwap it changes the representation while
// keeping the values.
func NewByteOrder(a *Array) *Array {
	v, err := newView(a, a.dtype.NewByteOrder(), a.shape, a.strides, a.offset)
	if err != nil {
		panic(err) // same layout as a
	}
	return v
}

// Real returns a view of the real parts of a complex array. For other
// numeric arrays it returns a plain view.
func Real(a *Array) (*Array, error) {
	if err := requireNumeric("real", a); err != nil {
		return nil, err
	}
	if a.dtype.kind != KindComplex {
		return a.View(), nil
	}
	return newView(a, complexPart(a.dtype), a.shape, a.strides, a.offset)
}

// Imag returns a view of the imaginary parts of a complex array. For other
// numeric arrays it returns a new zero array of the same shape and dtype.
func Imag(a *Array) (*Array, error) {
	if err := requireNumeric("imag", a); err != nil {
		return nil, err
	}
	if a.dtype.kind != KindComplex {
		return mustEmpty(a.shape, a.dtype), nil
	}
	return newView(a, complexPart(a.dtype), a.shape, a.strides, a.offset+a.dtype.size/2)
}

func complexPart(dt DataType) DataType {
	part := floatOfSize(dt.size / 2)
	if part.order != dt.order {
		part = part.NewByteOrder()
	}
	return part
}

// GetField returns a view of the named field of a record array.
func GetField(a *Array, name string) (*Array, error) {
	if a.dtype.kind != KindRecord {
		return nil, newError("field", ErrDTypeMismatch, "%s has no fields", a.dtype)
	}
	f, ok := a.dtype.Field(name)
	if !ok {
		return nil, newError("field", ErrInvalidArgument, "no field of name %q", name)
	}
	return newView(a, f.Type, a.shape, a.strides, a.offset+f.Offset)
}
