package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/x448/float16"
)

// Scalar is a single element value tagged with its kind.
// Only the field matching Kind is meaningful.
type Scalar struct {
	Kind Kind
	B    bool
	I    int64
	U    uint64
	F    float64
	C    complex128
}

// BoolScalar returns a boolean scalar.
func BoolScalar(v bool) Scalar { return Scalar{Kind: KindBool, B: v} }

// IntScalar returns a signed integer scalar.
func IntScalar(v int64) Scalar { return Scalar{Kind: KindInt, I: v} }

// UintScalar returns an unsigned integer scalar.
func UintScalar(v uint64) Scalar { return Scalar{Kind: KindUint, U: v} }

// FloatScalar returns a floating point scalar.
func FloatScalar(v float64) Scalar { return Scalar{Kind: KindFloat, F: v} }

// ComplexScalar returns a complex scalar.
func ComplexScalar(v complex128) Scalar { return Scalar{Kind: KindComplex, C: v} }

// Bool converts the value to a boolean (non-zero is true).
func (s Scalar) Bool() bool {
	switch s.Kind {
	case KindBool:
		return s.B
	case KindInt:
		return s.I != 0
	case KindUint:
		return s.U != 0
	case KindFloat:
		return s.F != 0
	case KindComplex:
		return s.C != 0
	}
	return false
}

// Int64 converts the value to int64, truncating floats toward zero.
func (s Scalar) Int64() int64 {
	switch s.Kind {
	case KindBool:
		if s.B {
			return 1
		}
		return 0
	case KindInt:
		return s.I
	case KindUint:
		return int64(s.U) //nolint:gosec // G115: wrapping matches C casting semantics
	case KindFloat:
		return floatToInt(s.F)
	case KindComplex:
		return floatToInt(real(s.C))
	}
	return 0
}

// Uint64 converts the value to uint64 with wrapping for negative values.
func (s Scalar) Uint64() uint64 {
	switch s.Kind {
	case KindUint:
		return s.U
	case KindFloat:
		if s.F >= 0 && s.F < 1<<64 {
			return uint64(s.F)
		}
	case KindComplex:
		if r := real(s.C); r >= 0 && r < 1<<64 {
			return uint64(r)
		}
	}
	return uint64(s.Int64()) //nolint:gosec // G115: wrapping matches C casting semantics
}

// Float64 converts the value to float64.
func (s Scalar) Float64() float64 {
	switch s.Kind {
	case KindBool:
		if s.B {
			return 1
		}
		return 0
	case KindInt:
		return float64(s.I)
	case KindUint:
		return float64(s.U)
	case KindFloat:
		return s.F
	case KindComplex:
		return real(s.C)
	}
	return 0
}

// Complex128 converts the value to complex128.
func (s Scalar) Complex128() complex128 {
	if s.Kind == KindComplex {
		return s.C
	}
	return complex(s.Float64(), 0)
}

// As converts the value to the given kind.
func (s Scalar) As(k Kind) Scalar {
	switch k {
	case KindBool:
		return BoolScalar(s.Bool())
	case KindInt:
		return IntScalar(s.Int64())
	case KindUint:
		return UintScalar(s.Uint64())
	case KindFloat:
		return FloatScalar(s.Float64())
	case KindComplex:
		return ComplexScalar(s.Complex128())
	}
	return s
}

// Interface returns the value as a Go bool, int64, uint64, float64 or complex128.
func (s Scalar) Interface() any {
	switch s.Kind {
	case KindBool:
		return s.B
	case KindInt:
		return s.I
	case KindUint:
		return s.U
	case KindFloat:
		return s.F
	case KindComplex:
		return s.C
	}
	return nil
}

// IsNaN reports whether a float or complex value is NaN.
func (s Scalar) IsNaN() bool {
	switch s.Kind {
	case KindFloat:
		return math.IsNaN(s.F)
	case KindComplex:
		return cmplx.IsNaN(s.C)
	}
	return false
}

func (s Scalar) String() string {
	return formatScalar(s, CurrentConfig().PrintPrecision)
}

func floatToInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return math.MinInt64
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// scalarOf converts a Go value into a Scalar and the DataType it naturally maps to.
func scalarOf(v any) (Scalar, DataType, error) {
	switch x := v.(type) {
	case Scalar:
		return x, kindDefaultType(x.Kind), nil
	case bool:
		return BoolScalar(x), Bool, nil
	case float32:
		return FloatScalar(float64(x)), Float32, nil
	case float16.Float16:
		return FloatScalar(float64(x.Float32())), Float16, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Scalar{}, DataType{}, newError("scalar", ErrInvalidArgument, "nil value")
	}
	dt, ok := dataTypeForKind(rv.Kind())
	if !ok {
		return Scalar{}, DataType{}, newError("scalar", ErrInvalidArgument, "unsupported element type %T", v)
	}
	switch dt.kind {
	case KindBool:
		return BoolScalar(rv.Bool()), dt, nil
	case KindInt:
		return IntScalar(rv.Int()), dt, nil
	case KindUint:
		return UintScalar(rv.Uint()), dt, nil
	case KindFloat:
		return FloatScalar(rv.Float()), dt, nil
	default:
		return ComplexScalar(rv.Complex()), dt, nil
	}
}

func kindDefaultType(k Kind) DataType {
	switch k {
	case KindBool:
		return Bool
	case KindUint:
		return Uint64
	case KindInt:
		return Int64
	case KindComplex:
		return Complex128
	default:
		return Float64
	}
}

// load decodes the element stored at byte offset off.
func (a *Array) load(off int) Scalar {
	dt := a.dtype
	b := a.buf.data[off : off+dt.size]
	bo := dt.order.codec()
	switch dt.kind {
	case KindBool:
		return BoolScalar(b[0] != 0)
	case KindInt:
		switch dt.size {
		case 1:
			return IntScalar(int64(int8(b[0])))
		case 2:
			return IntScalar(int64(int16(bo.Uint16(b))))
		case 4:
			return IntScalar(int64(int32(bo.Uint32(b))))
		default:
			return IntScalar(int64(bo.Uint64(b)))
		}
	case KindUint:
		switch dt.size {
		case 1:
			return UintScalar(uint64(b[0]))
		case 2:
			return UintScalar(uint64(bo.Uint16(b)))
		case 4:
			return UintScalar(uint64(bo.Uint32(b)))
		default:
			return UintScalar(bo.Uint64(b))
		}
	case KindFloat:
		switch dt.size {
		case 2:
			return FloatScalar(float64(float16.Frombits(bo.Uint16(b)).Float32()))
		case 4:
			return FloatScalar(float64(math.Float32frombits(bo.Uint32(b))))
		default:
			return FloatScalar(math.Float64frombits(bo.Uint64(b)))
		}
	case KindComplex:
		if dt.size == 8 {
			re := math.Float32frombits(bo.Uint32(b[:4]))
			im := math.Float32frombits(bo.Uint32(b[4:]))
			return ComplexScalar(complex(float64(re), float64(im)))
		}
		re := math.Float64frombits(bo.Uint64(b[:8]))
		im := math.Float64frombits(bo.Uint64(b[8:]))
		return ComplexScalar(complex(re, im))
	}
	panic(fmt.Sprintf("load: unsupported dtype %s", dt))
}

// store encodes v, cast to the array's dtype, at byte offset off.
func (a *Array) store(off int, v Scalar) {
	dt := a.dtype
	b := a.buf.data[off : off+dt.size]
	bo := dt.order.codec()
	switch dt.kind {
	case KindBool:
		b[0] = 0
		if v.Bool() {
			b[0] = 1
		}
	case KindInt, KindUint:
		var u uint64
		if dt.kind == KindInt {
			u = uint64(v.Int64()) //nolint:gosec // G115: two's complement encoding
		} else {
			u = v.Uint64()
		}
		switch dt.size {
		case 1:
			b[0] = byte(u)
		case 2:
			bo.PutUint16(b, uint16(u))
		case 4:
			bo.PutUint32(b, uint32(u))
		default:
			bo.PutUint64(b, u)
		}
	case KindFloat:
		f := v.Float64()
		switch dt.size {
		case 2:
			bo.PutUint16(b, float16.Fromfloat32(float32(f)).Bits())
		case 4:
			bo.PutUint32(b, math.Float32bits(float32(f)))
		default:
			bo.PutUint64(b, math.Float64bits(f))
		}
	case KindComplex:
		c := v.Complex128()
		if dt.size == 8 {
			bo.PutUint32(b[:4], math.Float32bits(float32(real(c))))
			bo.PutUint32(b[4:], math.Float32bits(float32(imag(c))))
			return
		}
		bo.PutUint64(b[:8], math.Float64bits(real(c)))
		bo.PutUint64(b[8:], math.Float64bits(imag(c)))
	default:
		panic(fmt.Sprintf("store: unsupported dtype %s", dt))
	}
}

// At returns the element at the given multi-index.
// Negative indices count from the end of their axis.
func (a *Array) At(idx ...int) (Scalar, error) {
	if err := requireNumeric("at", a); err != nil {
		return Scalar{}, err
	}
	off, err := a.offsetOf("at", idx)
	if err != nil {
		return Scalar{}, err
	}
	return a.load(off), nil
}

// SetAt writes v, cast to the array's dtype, at the given multi-index.
func (a *Array) SetAt(v any, idx ...int) error {
	if err := requireNumeric("set", a); err != nil {
		return err
	}
	s, _, err := scalarOf(v)
	if err != nil {
		return err
	}
	off, err := a.offsetOf("set", idx)
	if err != nil {
		return err
	}
	a.store(off, s)
	return nil
}

// Item returns the only element of a single-element array.
func (a *Array) Item() (Scalar, error) {
	if a.Size() != 1 {
		return Scalar{}, newError("item", ErrSizeMismatch, "array of size %d has no single item", a.Size())
	}
	if err := requireNumeric("item", a); err != nil {
		return Scalar{}, err
	}
	return a.load(a.flatOffset(0)), nil
}

// Values returns every element in row-major order.
func (a *Array) Values() []Scalar {
	out := make([]Scalar, 0, a.Size())
	it := newIter(a.shape, a)
	for it.next() {
		out = append(out, a.load(it.offs[0]))
	}
	return out
}

// Float64s returns a row-major copy of the elements converted to float64.
func (a *Array) Float64s() []float64 {
	vals := a.Values()
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.Float64()
	}
	return out
}

// Int64s returns a row-major copy of the elements converted to int64.
func (a *Array) Int64s() []int64 {
	vals := a.Values()
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = v.Int64()
	}
	return out
}

// Bools returns a row-major copy of the elements converted to bool.
func (a *Array) Bools() []bool {
	vals := a.Values()
	out := make([]bool, len(vals))
	for i, v := range vals {
		out[i] = v.Bool()
	}
	return out
}

// Complex128s returns a row-major copy of the elements converted to complex128.
func (a *Array) Complex128s() []complex128 {
	vals := a.Values()
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = v.Complex128()
	}
	return out
}
