package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nested(t *testing.T, v any) *Array {
	t.Helper()
	a, err := FromNested(v)
	require.NoError(t, err)
	return a
}

func TestConcatenate(t *testing.T) {
	a := nested(t, [][]int{{1, 2}, {3, 4}})
	b := nested(t, [][]int{{5, 6}})

	c, err := Concatenate([]*Array{a, b}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, c.Shape())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, c.Int64s())

	_, err = Concatenate([]*Array{a, b}, 1)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	bt := b.T()
	c, err = Concatenate([]*Array{a, bt}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5, 3, 4, 6}, c.Int64s())

	// Concatenating without an axis equals concatenating the ravelled operands.
	flat, err := Concatenate([]*Array{a.T(), b}, NoAxis)
	require.NoError(t, err)
	want, err := Concatenate([]*Array{a.T().Ravel(), b.Ravel()}, 0)
	require.NoError(t, err)
	assert.True(t, ArrayEqual(want, flat))
	assert.Equal(t, []int64{1, 3, 2, 4, 5, 6}, flat.Int64s())

	mixed, err := Concatenate([]*Array{ints(t, 1), floats(t, 0.5)}, 0)
	require.NoError(t, err)
	assert.Equal(t, Float64, mixed.DType())

	_, err = Concatenate([]*Array{FromScalar(1), FromScalar(2)}, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Concatenate([]*Array{a, ints(t, 1)}, 0)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Concatenate(nil, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAppendAndColumnStack(t *testing.T) {
	out, err := Append(ints(t, 1, 2, 3), nested(t, [][]int{{4, 5, 6}, {7, 8, 9}}), NoAxis)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, out.Int64s())

	cs, err := ColumnStack([]*Array{ints(t, 1, 2, 3), ints(t, 2, 3, 4)})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, cs.Shape())
	assert.Equal(t, []int64{1, 2, 2, 3, 3, 4}, cs.Int64s())
}

func TestInsert(t *testing.T) {
	a := nested(t, [][]int{{1, 1}, {2, 2}, {3, 3}})
	five := FromScalar(int64(5))

	tests := []struct {
		name   string
		src    *Array
		where  Index
		values *Array
		axis   int
		shape  Shape
		want   []int64
	}{
		{"scalar flattened", a, Int(1), five, NoAxis, Shape{7}, []int64{1, 5, 1, 2, 2, 3, 3}},
		{"scalar along axis", a, Int(1), five, 1, Shape{3, 3}, []int64{1, 5, 1, 2, 5, 2, 3, 5, 3}},
		{"column along axis", a, Ints(1), nested(t, [][]int{{1}, {2}, {3}}), 1, Shape{3, 3}, []int64{1, 1, 1, 2, 2, 2, 3, 3, 3}},
		{"repeated positions", a.Ravel(), Ints(2, 2), ints(t, 5, 6), NoAxis, Shape{8}, []int64{1, 1, 5, 6, 2, 2, 3, 3}},
		{"slice positions", a.Ravel(), Range(2, 4), ints(t, 5, 6), 0, Shape{8}, []int64{1, 1, 5, 2, 6, 2, 3, 3}},
		{"interleave", a.Ravel(), All(), ints(t, 90, 91, 92, 92, 93, 93), NoAxis, Shape{12},
			[]int64{90, 1, 91, 1, 92, 2, 92, 2, 93, 3, 93, 3}},
		{"at end", a.Ravel(), Int(6), five, 0, Shape{7}, []int64{1, 1, 2, 2, 3, 3, 5}},
		{"single position list", ints(t, 1, 2, 3), Ints(1), ints(t, 10, 20), NoAxis, Shape{5}, []int64{1, 10, 20, 2, 3}},
		{"single position slice", ints(t, 1, 2, 3), Range(1, 2), ints(t, 10, 20), 0, Shape{5}, []int64{1, 10, 20, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Insert(tt.src, tt.where, tt.values, tt.axis)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, out.Shape())
			assert.Equal(t, tt.want, out.Int64s())
		})
	}

	_, err := Insert(a, Int(10), five, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = Insert(a, Int(0), five, 2)
	assert.True(t, errors.Is(err, ErrAxisOutOfRange))
}

func TestDelete(t *testing.T) {
	arr := nested(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})

	out, err := Delete(arr, Int(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 9, 10, 11, 12}, out.Int64s())

	out, err = Delete(arr, Step(2), 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, out.Shape())
	assert.Equal(t, []int64{2, 4, 6, 8, 10, 12}, out.Int64s())

	out, err = Delete(arr, Ints(1, 3, 5), NoAxis)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5, 7, 8, 9, 10, 11, 12}, out.Int64s())

	out, err = Delete(arr, Bools(true, false, true), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7, 8}, out.Int64s())

	_, err = Delete(arr, Int(3), 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestTake(t *testing.T) {
	a := ints(t, 4, 3, 5, 7, 6, 8)

	out, err := Take(a, ints(t, 0, 1, 4), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 6}, out.Int64s())

	idx, err := FromSlice([]int64{0, 1, 2, 3}, 2, 2)
	require.NoError(t, err)
	out, err = Take(a, idx, NoAxis)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, out.Shape())
	assert.Equal(t, []int64{4, 3, 5, 7}, out.Int64s())

	m := grid(t, 2, 3)
	out, err = Take(m, ints(t, 2, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 0, 5, 3}, out.Int64s())

	_, err = Take(a, floats(t, 1), 0)
	assert.True(t, errors.Is(err, ErrDTypeMismatch))
}

func TestSplit(t *testing.T) {
	a := grid(t, 9)
	parts, err := Split(a, 3, 0)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, []int64{3, 4, 5}, parts[1].Int64s())
	assert.True(t, SharesMemory(a, parts[2]))

	_, err = Split(a, 4, 0)
	assert.True(t, errors.Is(err, ErrSizeMismatch))

	parts, err = SplitAt(grid(t, 8), []int{3, 5, 6, 10}, 0)
	require.NoError(t, err)
	require.Len(t, parts, 5)
	assert.Equal(t, []int64{0, 1, 2}, parts[0].Int64s())
	assert.Equal(t, []int64{3, 4}, parts[1].Int64s())
	assert.Equal(t, []int64{5}, parts[2].Int64s())
	assert.Equal(t, []int64{6, 7}, parts[3].Int64s())
	assert.Equal(t, 0, parts[4].Size())

	halves, err := HSplit(grid(t, 4, 4), 2)
	require.NoError(t, err)
	require.Len(t, halves, 2)
	assert.Equal(t, Shape{4, 2}, halves[0].Shape())
	assert.Equal(t, []int64{2, 3, 6, 7, 10, 11, 14, 15}, halves[1].Int64s())
}

func TestDiff(t *testing.T) {
	x := ints(t, 1, 2, 4, 7, 0)

	d, err := Diff(x, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, -7}, d.Int64s())

	d, err = Diff(x, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, -10}, d.Int64s())

	m := nested(t, [][]int{{1, 3, 6, 10}, {0, 5, 6, 8}})
	d, err = Diff(m, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5, 1, 2}, d.Int64s())
	d, err = Diff(m, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 2, 0, -2}, d.Int64s())

	b, err := FromSlice([]bool{true, false, false, true})
	require.NoError(t, err)
	d, err = Diff(b, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Bool, d.DType())
	assert.Equal(t, []bool{true, false, true}, d.Bools())

	_, err = Diff(x, -1, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestPackBits(t *testing.T) {
	a := nested(t, [][][]int{{{1, 0, 1}, {0, 1, 0}}, {{1, 1, 0}, {0, 0, 1}}})
	p, err := PackBits(a, -1)
	require.NoError(t, err)
	assert.Equal(t, Uint8, p.DType())
	assert.Equal(t, Shape{2, 2, 1}, p.Shape())
	assert.Equal(t, []int64{160, 64, 192, 32}, p.Int64s())

	flat, err := PackBits(a, NoAxis)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, flat.Shape())
	assert.Equal(t, []int64{0b10101011, 0b00010000}, flat.Int64s())

	_, err = PackBits(floats(t, 1), 0)
	assert.True(t, errors.Is(err, ErrDTypeMismatch))
}

func TestUnpackBits(t *testing.T) {
	a, err := FromSlice([]uint8{2, 7, 23}, 3, 1)
	require.NoError(t, err)
	u, err := UnpackBits(a, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 8}, u.Shape())
	assert.Equal(t, []int64{
		0, 0, 0, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 1, 1, 1,
		0, 0, 0, 1, 0, 1, 1, 1,
	}, u.Int64s())

	// Unpacking a packed array restores the bits, zero padded.
	bits, err := FromSlice([]bool{true, false, true})
	require.NoError(t, err)
	packed, err := PackBits(bits, 0)
	require.NoError(t, err)
	back, err := UnpackBits(packed, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 1, 0, 0, 0, 0, 0}, back.Int64s())

	_, err = UnpackBits(ints(t, 1), 0)
	assert.True(t, errors.Is(err, ErrDTypeMismatch))
}
