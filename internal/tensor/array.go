package tensor

import "fmt"

// Array is an N-dimensional view of a Buffer.
//
// Every Array references exactly one Buffer. Arrays created by constructors
// and copy-producing operations own a fresh Buffer; views share the Buffer
// of their source, so a write through one is visible through all others
// whose byte ranges intersect.
type Array struct {
	buf      *Buffer
	dtype    DataType
	shape    Shape
	strides  []int // byte strides, may be zero or negative
	offset   int   // byte offset of element [0, 0, ...]
	owner    bool
	released bool
}

// Empty creates an array with a freshly allocated, zeroed buffer in C order.
func Empty(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, newError("empty", ErrInvalidArgument, "%v", err)
	}
	return &Array{
		buf:     newBuffer(shape.NumElements() * dtype.size),
		dtype:   dtype,
		shape:   shape.Clone(),
		strides: shape.byteStrides(dtype.size),
		owner:   true,
	}, nil
}

// mustEmpty allocates an output array for a shape that is already known to be valid.
func mustEmpty(shape Shape, dtype DataType) *Array {
	out, err := Empty(shape, dtype)
	if err != nil {
		panic(err)
	}
	return out
}

// newView builds a view over src's buffer, checking that every addressable
// element stays inside the buffer.
func newView(src *Array, dtype DataType, shape Shape, strides []int, offset int) (*Array, error) {
	if len(shape) != len(strides) {
		return nil, newError("view", ErrInvalidArgument, "%d extents for %d strides", len(shape), len(strides))
	}
	lo, hi := offset, offset
	empty := false
	for i, n := range shape {
		if n < 0 {
			return nil, newError("view", ErrInvalidArgument, "negative extent %d", n)
		}
		if n == 0 {
			empty = true
			continue
		}
		span := (n - 1) * strides[i]
		if span > 0 {
			hi += span
		} else {
			lo += span
		}
	}
	if !empty && (lo < 0 || hi+dtype.size > src.buf.Len()) {
		return nil, newError("view", ErrInvalidArgument,
			"byte range [%d, %d) exceeds buffer of %d bytes", lo, hi+dtype.size, src.buf.Len())
	}
	return &Array{
		buf:     src.buf.retain(),
		dtype:   dtype,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  offset,
	}, nil
}

// Shape returns the array's extents.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// Strides returns the byte strides.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// DType returns the element data type.
func (a *Array) DType() DataType { return a.dtype }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array) Size() int { return a.shape.NumElements() }

// ItemSize returns the byte size of one element.
func (a *Array) ItemSize() int { return a.dtype.size }

// NBytes returns the number of bytes addressed by the elements.
func (a *Array) NBytes() int { return a.Size() * a.dtype.size }

// Offset returns the byte offset of the first element in the buffer.
func (a *Array) Offset() int { return a.offset }

// Buffer returns the shared buffer.
func (a *Array) Buffer() *Buffer { return a.buf }

// IsView reports whether the array shares a buffer it did not allocate.
func (a *Array) IsView() bool { return !a.owner }

// Len returns the extent of the first dimension (0 for scalars).
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Release drops this array's reference to its buffer. The array must not be
// used afterwards. Releasing twice is a no-op.
func (a *Array) Release() {
	if a.released {
		return
	}
	a.released = true
	a.buf.release()
}

// byteRange returns the half-open range of bytes addressed by the array.
func (a *Array) byteRange() (lo, hi int) {
	lo, hi = a.offset, a.offset
	for i, n := range a.shape {
		if n == 0 {
			return 0, 0
		}
		span := (n - 1) * a.strides[i]
		if span > 0 {
			hi += span
		} else {
			lo += span
		}
	}
	return lo, hi + a.dtype.size
}

// SharesMemory reports whether a and b alias: they reference the same
// buffer and their addressed byte ranges intersect.
func SharesMemory(a, b *Array) bool {
	if a.buf != b.buf {
		return false
	}
	alo, ahi := a.byteRange()
	blo, bhi := b.byteRange()
	if alo == ahi || blo == bhi {
		return false
	}
	return alo < bhi && blo < ahi
}

// IsCContiguous reports whether elements are laid out in row-major order
// without gaps.
func (a *Array) IsCContiguous() bool {
	expected := a.dtype.size
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.shape[i] == 0 {
			return true
		}
		if a.strides[i] != expected {
			return false
		}
		expected *= a.shape[i]
	}
	return true
}

// IsFContiguous reports whether elements are laid out in column-major order
// without gaps.
func (a *Array) IsFContiguous() bool {
	expected := a.dtype.size
	for i, n := range a.shape {
		if n == 1 {
			continue
		}
		if n == 0 {
			return true
		}
		if a.strides[i] != expected {
			return false
		}
		expected *= n
	}
	return true
}

// View returns a new view of the whole array sharing its buffer.
func (a *Array) View() *Array {
	v, err := newView(a, a.dtype, a.shape, a.strides, a.offset)
	if err != nil {
		panic(err) // a is itself valid
	}
	return v
}

// flatOffset maps a row-major flat position onto a byte offset.
func (a *Array) flatOffset(i int) int {
	off := a.offset
	for d := len(a.shape) - 1; d >= 0; d-- {
		n := a.shape[d]
		off += (i % n) * a.strides[d]
		i /= n
	}
	return off
}

// offsetOf maps a multi-index (negative entries count from the end) onto a byte offset.
func (a *Array) offsetOf(op string, idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, newError(op, ErrIndexOutOfRange, "expected %d indices, got %d", len(a.shape), len(idx))
	}
	off := a.offset
	for d, i := range idx {
		n := a.shape[d]
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return 0, newError(op, ErrIndexOutOfRange, "index %d is out of bounds for axis %d with size %d", idx[d], d, n)
		}
		off += i * a.strides[d]
	}
	return off, nil
}

func requireNumeric(op string, arrays ...*Array) error {
	for _, a := range arrays {
		if !a.dtype.IsNumeric() {
			return newError(op, ErrDTypeMismatch, "operation not supported for %s", a.dtype)
		}
	}
	return nil
}

// GoString returns a short description used in %#v output.
func (a *Array) GoString() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
