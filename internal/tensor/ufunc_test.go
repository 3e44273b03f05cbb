package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(t *testing.T, vals ...int64) *Array {
	t.Helper()
	a, err := FromSlice(vals)
	require.NoError(t, err)
	return a
}

func floats(t *testing.T, vals ...float64) *Array {
	t.Helper()
	a, err := FromSlice(vals)
	require.NoError(t, err)
	return a
}

func TestBinary_Arithmetic(t *testing.T) {
	x := ints(t, -7, 7, 7, -7)
	y := ints(t, 2, -2, 0, 2)

	tests := []struct {
		op    BinaryOp
		dtype DataType
		want  []float64
	}{
		{OpAdd, Int64, []float64{-5, 5, 7, -5}},
		{OpSubtract, Int64, []float64{-9, 9, 7, -9}},
		{OpMultiply, Int64, []float64{-14, -14, 0, -14}},
		{OpFloorDivide, Int64, []float64{-4, -4, 0, -4}},
		{OpMod, Int64, []float64{1, -1, 0, 1}},
		{OpBitwiseAnd, Int64, []float64{0, 6, 0, 0}},
		{OpGreater, Bool, []float64{0, 1, 1, 0}},
		{OpEqual, Bool, []float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			out, err := Binary(tt.op, x, y)
			require.NoError(t, err)
			assert.True(t, tt.dtype.Equal(out.DType()), "dtype %s", out.DType())
			assert.Equal(t, tt.want, out.Float64s())
		})
	}
}

func TestBinary_Divide(t *testing.T) {
	out, err := Divide(ints(t, 1, 2, 3), ints(t, 2))
	require.NoError(t, err)
	assert.Equal(t, Float64, out.DType())
	assert.Equal(t, []float64{0.5, 1, 1.5}, out.Float64s())

	out, err = Divide(floats(t, 1, -1, 0), floats(t, 0))
	require.NoError(t, err)
	vals := out.Float64s()
	assert.True(t, math.IsInf(vals[0], 1))
	assert.True(t, math.IsInf(vals[1], -1))
	assert.True(t, math.IsNaN(vals[2]))
}

func TestBinary_FloatMod(t *testing.T) {
	out, err := Mod(floats(t, -7.5, 7.5), floats(t, 2, -2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.5}, out.Float64s())

	out, err = FloorDivide(floats(t, -7.5), floats(t, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{-4}, out.Float64s())
}

func TestBinary_Power(t *testing.T) {
	out, err := Power(ints(t, 2, 3, -2), ints(t, 3, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 9, -8}, out.Int64s())

	_, err = Power(ints(t, 2), ints(t, -1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	out, err = Power(floats(t, 2), ints(t, -1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, out.Float64s())
}

func TestBinary_TypeErrors(t *testing.T) {
	b, err := FromSlice([]bool{true, false})
	require.NoError(t, err)
	_, err = Subtract(b, b)
	assert.True(t, errors.Is(err, ErrDTypeMismatch))

	_, err = BitwiseOr(floats(t, 1), floats(t, 2))
	assert.True(t, errors.Is(err, ErrDTypeMismatch))

	c, err := FromSlice([]complex128{1 + 1i})
	require.NoError(t, err)
	_, err = Mod(c, c)
	assert.True(t, errors.Is(err, ErrDTypeMismatch))

	_, err = Add(ints(t, 1, 2, 3), ints(t, 1, 2))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestBinary_Promotion(t *testing.T) {
	i8, err := FromSlice([]int8{100, -100})
	require.NoError(t, err)

	// A 0-d operand of the same category does not widen the result.
	out, err := Add(i8, FromScalar(int64(1000)))
	require.NoError(t, err)
	assert.Equal(t, Int8, out.DType())
	assert.Equal(t, []int64{76, -124}, out.Int64s())

	out, err = Add(i8, FromScalar(1.5))
	require.NoError(t, err)
	assert.Equal(t, Float64, out.DType())

	u8, err := FromSlice([]uint8{1})
	require.NoError(t, err)
	out, err = Subtract(u8, FromScalar(uint8(2)))
	require.NoError(t, err)
	assert.Equal(t, []float64{255}, out.Float64s())

	u64, err := FromSlice([]uint64{1})
	require.NoError(t, err)
	out, err = Add(u64, ints(t, 1))
	require.NoError(t, err)
	assert.Equal(t, Float64, out.DType())

	f16, err := FromSlice([]float32{1.5})
	require.NoError(t, err)
	half, err := f16.AsType(Float16)
	require.NoError(t, err)
	out, err = Add(half, half)
	require.NoError(t, err)
	assert.Equal(t, Float16, out.DType())
	assert.Equal(t, []float64{3}, out.Float64s())
}

func TestBinary_Broadcast(t *testing.T) {
	col, err := FromSlice([]int64{0, 10, 20}, 3, 1)
	require.NoError(t, err)
	out, err := Add(col, ints(t, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, out.Shape())
	assert.Equal(t, []int64{1, 2, 3, 4, 11, 12, 13, 14, 21, 22, 23, 24}, out.Int64s())
}

func TestBinary_Complex(t *testing.T) {
	x, err := FromSlice([]complex128{1 + 2i, 3 - 1i})
	require.NoError(t, err)
	y, err := FromSlice([]complex128{1 + 2i, 3 + 1i})
	require.NoError(t, err)

	out, err := Multiply(x, y)
	require.NoError(t, err)
	assert.Equal(t, []complex128{-3 + 4i, 10}, out.Complex128s())

	lt, err := Less(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, lt.Bools())
}

func TestBinaryInPlace(t *testing.T) {
	x := grid(t, 8)
	y, err := x.Get(Range(0, 4))
	require.NoError(t, err)

	require.NoError(t, BinaryInPlace(OpMultiply, y, FromScalar(99)))
	assert.Equal(t, []int64{0, 99, 198, 297, 4, 5, 6, 7}, x.Int64s())

	err = BinaryInPlace(OpDivide, y, FromScalar(2))
	assert.True(t, errors.Is(err, ErrDTypeMismatch))
	err = BinaryInPlace(OpAdd, y, floats(t, 0.5))
	assert.True(t, errors.Is(err, ErrDTypeMismatch))

	err = BinaryInPlace(OpAdd, y, ints(t, 1, 2))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestBinaryInPlace_Overlap(t *testing.T) {
	x := grid(t, 5)
	hi := mustGet(t, x, From(1))
	lo := mustGet(t, x, To(-1))

	require.NoError(t, BinaryInPlace(OpAdd, hi, lo))
	assert.Equal(t, []int64{0, 1, 3, 5, 7}, x.Int64s())
}

func TestBinary_Parallel(t *testing.T) {
	prev := CurrentConfig()
	defer SetConfig(prev)

	n := 10000
	x, err := Arange(0, n, 1)
	require.NoError(t, err)
	seq, err := Multiply(x, x)
	require.NoError(t, err)

	cfg := prev
	cfg.Parallel.Enabled = true
	cfg.Parallel.NumWorkers = 4
	cfg.Parallel.MinChunkSize = 64
	SetConfig(cfg)

	par, err := Multiply(x, x)
	require.NoError(t, err)
	assert.True(t, ArrayEqual(seq, par))

	sum, err := Sum(par, NoAxis)
	require.NoError(t, err)
	s, err := sum.Item()
	require.NoError(t, err)
	assert.Equal(t, int64((n-1)*n*(2*n-1)/6), s.Int64())
}

func TestUnary(t *testing.T) {
	out, err := Negative(ints(t, 1, -2))
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 2}, out.Int64s())

	b, err := FromSlice([]bool{true, false})
	require.NoError(t, err)
	_, err = Negative(b)
	assert.True(t, errors.Is(err, ErrDTypeMismatch))

	not, err := LogicalNot(ints(t, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, not.Bools())

	c, err := FromSlice([]complex64{3 + 4i})
	require.NoError(t, err)
	abs, err := Absolute(c)
	require.NoError(t, err)
	assert.Equal(t, Float32, abs.DType())
	assert.Equal(t, []float64{5}, abs.Float64s())

	i8, err := FromSlice([]int8{0, 5})
	require.NoError(t, err)
	inv, err := Invert(i8)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, -6}, inv.Int64s())

	_, err = Invert(floats(t, 1))
	assert.True(t, errors.Is(err, ErrDTypeMismatch))
}
