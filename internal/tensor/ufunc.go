package tensor

import (
	"math"
	"math/cmplx"

	"github.com/born-ml/ndarray/internal/parallel"
)

// BinaryOp identifies an elementwise binary operation.
type BinaryOp uint8

// Binary operations.
const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpFloorDivide
	OpMod
	OpPower
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpLogicalAnd
	OpLogicalOr
)

var binaryOpNames = [...]string{
	"add", "subtract", "multiply", "divide", "floor_divide", "mod", "power",
	"bitwise_and", "bitwise_or", "bitwise_xor",
	"equal", "not_equal", "less", "less_equal", "greater", "greater_equal",
	"logical_and", "logical_or",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "unknown"
}

func (op BinaryOp) isComparison() bool { return op >= OpEqual && op <= OpGreaterEqual }
func (op BinaryOp) isBitwise() bool    { return op >= OpBitwiseAnd && op <= OpBitwiseXor }
func (op BinaryOp) isLogical() bool    { return op == OpLogicalAnd || op == OpLogicalOr }

// types returns the dtype the operands are computed in and the dtype of
// the result, given the promoted input dtype.
func (op BinaryOp) types(in DataType) (compute, out DataType, err error) {
	switch {
	case op.isComparison():
		return in, Bool, nil
	case op.isLogical():
		return Bool, Bool, nil
	case op.isBitwise():
		if in.kind > KindInt {
			return DataType{}, DataType{}, newError(op.String(), ErrDTypeMismatch,
				"not supported for %s operands", in)
		}
		return in, in, nil
	}
	switch op {
	case OpSubtract:
		if in.kind == KindBool {
			return DataType{}, DataType{}, newError(op.String(), ErrDTypeMismatch,
				"boolean subtract is not supported, use bitwise_xor or logical_xor")
		}
	case OpDivide:
		if in.kind <= KindInt {
			return Float64, Float64, nil
		}
	case OpFloorDivide, OpMod:
		if in.kind == KindComplex {
			return DataType{}, DataType{}, newError(op.String(), ErrDTypeMismatch,
				"not supported for %s operands", in)
		}
		if in.kind == KindBool {
			return Int8, Int8, nil
		}
	case OpPower:
		if in.kind == KindBool {
			return Int8, Int8, nil
		}
	}
	return in, in, nil
}

// apply evaluates the operation on two values already cast to kind k.
func (op BinaryOp) apply(k Kind, x, y Scalar) Scalar {
	switch k {
	case KindBool:
		return op.applyBool(x.B, y.B)
	case KindInt:
		return op.applyInt(x.I, y.I)
	case KindUint:
		return op.applyUint(x.U, y.U)
	case KindFloat:
		return op.applyFloat(x.F, y.F)
	default:
		return op.applyComplex(x.C, y.C)
	}
}

func (op BinaryOp) applyBool(x, y bool) Scalar {
	var r bool
	switch op {
	case OpAdd, OpBitwiseOr, OpLogicalOr:
		r = x || y
	case OpMultiply, OpBitwiseAnd, OpLogicalAnd:
		r = x && y
	case OpBitwiseXor, OpNotEqual:
		r = x != y
	case OpEqual:
		r = x == y
	case OpLess:
		r = !x && y
	case OpLessEqual:
		r = !x || y
	case OpGreater:
		r = x && !y
	case OpGreaterEqual:
		r = x || !y
	}
	return BoolScalar(r)
}

func (op BinaryOp) applyInt(x, y int64) Scalar {
	switch op {
	case OpAdd:
		return IntScalar(x + y)
	case OpSubtract:
		return IntScalar(x - y)
	case OpMultiply:
		return IntScalar(x * y)
	case OpFloorDivide:
		if y == 0 {
			return IntScalar(0)
		}
		q := x / y
		if (x%y != 0) && ((x < 0) != (y < 0)) {
			q--
		}
		return IntScalar(q)
	case OpMod:
		if y == 0 {
			return IntScalar(0)
		}
		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return IntScalar(r)
	case OpPower:
		return IntScalar(ipow(x, y))
	case OpBitwiseAnd:
		return IntScalar(x & y)
	case OpBitwiseOr:
		return IntScalar(x | y)
	case OpBitwiseXor:
		return IntScalar(x ^ y)
	}
	return compareOrdered(op, x, y)
}

func (op BinaryOp) applyUint(x, y uint64) Scalar {
	switch op {
	case OpAdd:
		return UintScalar(x + y)
	case OpSubtract:
		return UintScalar(x - y)
	case OpMultiply:
		return UintScalar(x * y)
	case OpFloorDivide:
		if y == 0 {
			return UintScalar(0)
		}
		return UintScalar(x / y)
	case OpMod:
		if y == 0 {
			return UintScalar(0)
		}
		return UintScalar(x % y)
	case OpPower:
		r := uint64(1)
		for ; y > 0; y >>= 1 {
			if y&1 == 1 {
				r *= x
			}
			x *= x
		}
		return UintScalar(r)
	case OpBitwiseAnd:
		return UintScalar(x & y)
	case OpBitwiseOr:
		return UintScalar(x | y)
	case OpBitwiseXor:
		return UintScalar(x ^ y)
	}
	return compareOrdered(op, x, y)
}

func (op BinaryOp) applyFloat(x, y float64) Scalar {
	switch op {
	case OpAdd:
		return FloatScalar(x + y)
	case OpSubtract:
		return FloatScalar(x - y)
	case OpMultiply:
		return FloatScalar(x * y)
	case OpDivide:
		return FloatScalar(x / y)
	case OpFloorDivide:
		return FloatScalar(math.Floor(x / y))
	case OpMod:
		r := math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return FloatScalar(r)
	case OpPower:
		return FloatScalar(math.Pow(x, y))
	}
	return compareOrdered(op, x, y)
}

func (op BinaryOp) applyComplex(x, y complex128) Scalar {
	switch op {
	case OpAdd:
		return ComplexScalar(x + y)
	case OpSubtract:
		return ComplexScalar(x - y)
	case OpMultiply:
		return ComplexScalar(x * y)
	case OpDivide:
		return ComplexScalar(x / y)
	case OpPower:
		return ComplexScalar(cmplx.Pow(x, y))
	case OpEqual:
		return BoolScalar(x == y)
	case OpNotEqual:
		return BoolScalar(x != y)
	}
	// Complex values order lexicographically: real part first.
	if real(x) != real(y) {
		return compareOrdered(op, real(x), real(y))
	}
	return compareOrdered(op, imag(x), imag(y))
}

func compareOrdered[T int64 | uint64 | float64](op BinaryOp, x, y T) Scalar {
	var r bool
	switch op {
	case OpEqual:
		r = x == y
	case OpNotEqual:
		r = x != y
	case OpLess:
		r = x < y
	case OpLessEqual:
		r = x <= y
	case OpGreater:
		r = x > y
	case OpGreaterEqual:
		r = x >= y
	}
	return BoolScalar(r)
}

// ipow raises x to a non-negative integer power, wrapping on overflow.
func ipow(x, y int64) int64 {
	r := int64(1)
	for e := uint64(y); e > 0; e >>= 1 { //nolint:gosec // G115: y is checked non-negative
		if e&1 == 1 {
			r *= x
		}
		x *= x
	}
	return r
}

// category groups kinds for the 0-d promotion rule.
func category(k Kind) int {
	switch k {
	case KindBool:
		return 0
	case KindInt, KindUint:
		return 1
	case KindFloat:
		return 2
	default:
		return 3
	}
}

// resultType promotes the dtypes of the operands. 0-d operands only take
// part when their category (bool, integer, float, complex) is higher than
// that of every n-d operand, so a scalar never widens an array of the same
// kind.
func resultType(arrays ...*Array) (DataType, error) {
	var (
		arr, scal         DataType
		hasArr, hasScalar bool
		err               error
	)
	for _, a := range arrays {
		switch {
		case a.NDim() > 0 && !hasArr:
			arr, hasArr = a.dtype, true
		case a.NDim() > 0:
			if arr, err = PromoteTypes(arr, a.dtype); err != nil {
				return DataType{}, err
			}
		case !hasScalar:
			scal, hasScalar = a.dtype, true
		default:
			if scal, err = PromoteTypes(scal, a.dtype); err != nil {
				return DataType{}, err
			}
		}
	}
	switch {
	case !hasScalar:
		return arr.WithNativeOrder(), nil
	case !hasArr:
		return scal.WithNativeOrder(), nil
	case category(scal.kind) <= category(arr.kind):
		return arr.WithNativeOrder(), nil
	}
	return PromoteTypes(arr, scal)
}

// Binary applies op elementwise to a and b after broadcasting them together.
// The result is a new array.
func Binary(op BinaryOp, a, b *Array) (*Array, error) {
	name := op.String()
	if err := requireNumeric(name, a, b); err != nil {
		return nil, err
	}
	in, err := resultType(a, b)
	if err != nil {
		return nil, err
	}
	compute, outType, err := op.types(in)
	if err != nil {
		return nil, err
	}
	if err := checkPower(op, compute, b); err != nil {
		return nil, err
	}
	ops, err := BroadcastArrays(a, b)
	if err != nil {
		return nil, err
	}
	defer releaseAll(ops)
	out := mustEmpty(ops[0].shape, outType)
	runBinary(op, compute.kind, out, ops[0], ops[1], CurrentConfig().Parallel)
	return out, nil
}

// BinaryInPlace computes dst = dst op src, writing through dst's buffer so
// every alias of dst observes the result. src is broadcast to dst's shape.
// The result must be castable to dst's dtype within the same kind: an
// integer array cannot receive a float result.
//
// Example:
//
//	y, _ := x.Get(tensor.Range(0, 4))
//	_ = tensor.BinaryInPlace(tensor.OpMultiply, y, tensor.FromScalar(99)) // x[0:4] *= 99
func BinaryInPlace(op BinaryOp, dst, src *Array) error {
	name := op.String()
	if err := requireNumeric(name, dst, src); err != nil {
		return err
	}
	in, err := resultType(dst, src)
	if err != nil {
		return err
	}
	compute, outType, err := op.types(in)
	if err != nil {
		return err
	}
	if category(outType.kind) > category(dst.dtype.kind) {
		return newError(name, ErrDTypeMismatch,
			"cannot cast result from %s to %s with same_kind casting", outType, dst.dtype)
	}
	if err := checkPower(op, compute, src); err != nil {
		return err
	}
	view, err := BroadcastTo(src, dst.shape)
	if err != nil {
		return newError(name, ErrShapeMismatch,
			"operands could not be broadcast together with shapes %v %v", dst.shape, src.shape)
	}
	defer view.Release()
	if SharesMemory(dst, src) {
		c := view.Copy()
		defer c.Release()
		view = c
	}
	cfg := CurrentConfig().Parallel
	if dst.selfOverlapping() {
		cfg.Enabled = false
	}
	runBinary(op, compute.kind, dst, dst, view, cfg)
	return nil
}

func checkPower(op BinaryOp, compute DataType, exp *Array) error {
	if op != OpPower || compute.kind != KindInt {
		return nil
	}
	it := newIter(exp.shape, exp)
	for it.next() {
		if exp.load(it.offs[0]).Int64() < 0 {
			return newError("power", ErrInvalidArgument, "integers to negative integer powers are not allowed")
		}
	}
	return nil
}

// runBinary fills out[i] = x[i] op y[i] over the flat positions of out.
func runBinary(op BinaryOp, k Kind, out, x, y *Array, cfg parallel.Config) {
	parallel.ForRange(out.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			xv := x.load(x.flatOffset(i)).As(k)
			yv := y.load(y.flatOffset(i)).As(k)
			out.store(out.flatOffset(i), op.apply(k, xv, yv))
		}
	}, cfg)
}

// selfOverlapping reports whether distinct positions of a share bytes.
func (a *Array) selfOverlapping() bool {
	for d, n := range a.shape {
		if n > 1 && a.strides[d] == 0 {
			return true
		}
	}
	return false
}

// UnaryOp identifies an elementwise unary operation.
type UnaryOp uint8

// Unary operations.
const (
	OpNegative UnaryOp = iota
	OpAbsolute
	OpLogicalNot
	OpInvert
)

var unaryOpNames = [...]string{"negative", "absolute", "logical_not", "invert"}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "unknown"
}

func (op UnaryOp) outType(in DataType) (DataType, error) {
	switch op {
	case OpNegative:
		if in.kind == KindBool {
			return DataType{}, newError(op.String(), ErrDTypeMismatch,
				"the negative operator is not supported for booleans, use logical_not")
		}
	case OpAbsolute:
		if in.kind == KindComplex {
			return floatOfSize(in.size / 2), nil
		}
	case OpLogicalNot:
		return Bool, nil
	case OpInvert:
		if in.kind > KindInt {
			return DataType{}, newError(op.String(), ErrDTypeMismatch, "not supported for %s", in)
		}
	}
	return in.WithNativeOrder(), nil
}

func (op UnaryOp) apply(x Scalar) Scalar {
	switch op {
	case OpLogicalNot:
		return BoolScalar(!x.Bool())
	case OpNegative:
		switch x.Kind {
		case KindInt:
			return IntScalar(-x.I)
		case KindUint:
			return UintScalar(-x.U)
		case KindFloat:
			return FloatScalar(-x.F)
		case KindComplex:
			return ComplexScalar(-x.C)
		}
	case OpAbsolute:
		switch x.Kind {
		case KindInt:
			if x.I < 0 {
				return IntScalar(-x.I)
			}
		case KindFloat:
			return FloatScalar(math.Abs(x.F))
		case KindComplex:
			return FloatScalar(cmplx.Abs(x.C))
		}
	case OpInvert:
		switch x.Kind {
		case KindBool:
			return BoolScalar(!x.B)
		case KindInt:
			return IntScalar(^x.I)
		case KindUint:
			return UintScalar(^x.U)
		}
	}
	return x
}

// Unary applies op elementwise and returns a new array.
func Unary(op UnaryOp, a *Array) (*Array, error) {
	if err := requireNumeric(op.String(), a); err != nil {
		return nil, err
	}
	dt, err := op.outType(a.dtype)
	if err != nil {
		return nil, err
	}
	out := mustEmpty(a.shape, dt)
	parallel.ForRange(out.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.store(out.flatOffset(i), op.apply(a.load(a.flatOffset(i))))
		}
	}, CurrentConfig().Parallel)
	return out, nil
}

// Add returns a + b.
func Add(a, b *Array) (*Array, error) { return Binary(OpAdd, a, b) }

// Subtract returns a - b.
func Subtract(a, b *Array) (*Array, error) { return Binary(OpSubtract, a, b) }

// Multiply returns a * b.
func Multiply(a, b *Array) (*Array, error) { return Binary(OpMultiply, a, b) }

// Divide returns the true quotient a / b; integer inputs give float64.
func Divide(a, b *Array) (*Array, error) { return Binary(OpDivide, a, b) }

// FloorDivide returns floor(a / b). Integer division by zero yields 0.
func FloorDivide(a, b *Array) (*Array, error) { return Binary(OpFloorDivide, a, b) }

// Mod returns the remainder of a / b with the sign of b.
func Mod(a, b *Array) (*Array, error) { return Binary(OpMod, a, b) }

// Power returns a raised to b.
func Power(a, b *Array) (*Array, error) { return Binary(OpPower, a, b) }

// BitwiseAnd returns a & b for boolean and integer arrays.
func BitwiseAnd(a, b *Array) (*Array, error) { return Binary(OpBitwiseAnd, a, b) }

// BitwiseOr returns a | b for boolean and integer arrays.
func BitwiseOr(a, b *Array) (*Array, error) { return Binary(OpBitwiseOr, a, b) }

// BitwiseXor returns a ^ b for boolean and integer arrays.
func BitwiseXor(a, b *Array) (*Array, error) { return Binary(OpBitwiseXor, a, b) }

// Equal returns the boolean mask a == b.
func Equal(a, b *Array) (*Array, error) { return Binary(OpEqual, a, b) }

// NotEqual returns the boolean mask a != b.
func NotEqual(a, b *Array) (*Array, error) { return Binary(OpNotEqual, a, b) }

// Less returns the boolean mask a < b.
func Less(a, b *Array) (*Array, error) { return Binary(OpLess, a, b) }

// LessEqual returns the boolean mask a <= b.
func LessEqual(a, b *Array) (*Array, error) { return Binary(OpLessEqual, a, b) }

// Greater returns the boolean mask a > b.
func Greater(a, b *Array) (*Array, error) { return Binary(OpGreater, a, b) }

// GreaterEqual returns the boolean mask a >= b.
func GreaterEqual(a, b *Array) (*Array, error) { return Binary(OpGreaterEqual, a, b) }

// LogicalAnd returns the truth value of a AND b.
func LogicalAnd(a, b *Array) (*Array, error) { return Binary(OpLogicalAnd, a, b) }

// LogicalOr returns the truth value of a OR b.
func LogicalOr(a, b *Array) (*Array, error) { return Binary(OpLogicalOr, a, b) }

// LogicalNot returns the truth value of NOT a.
func LogicalNot(a *Array) (*Array, error) { return Unary(OpLogicalNot, a) }

// Negative returns -a.
func Negative(a *Array) (*Array, error) { return Unary(OpNegative, a) }

// Absolute returns |a|; complex input gives the float magnitude.
func Absolute(a *Array) (*Array, error) { return Unary(OpAbsolute, a) }

// Invert returns the bitwise NOT of a boolean or integer array.
func Invert(a *Array) (*Array, error) { return Unary(OpInvert, a) }
