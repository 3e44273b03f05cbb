package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatAt(t *testing.T) {
	a := grid(t, 2, 3)
	tr := a.T()

	s, err := tr.FlatAt(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Int64())

	s, err = tr.FlatAt(-1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.Int64())

	_, err = tr.FlatAt(6)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestFlatGet(t *testing.T) {
	a := grid(t, 2, 3)

	sel, err := a.FlatGet(Range(1, 5))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, sel.Int64s())

	idx, err := FromSlice([]int64{0, 5, 3, 1}, 2, 2)
	require.NoError(t, err)
	sel, err = a.FlatGet(Idx(idx))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, sel.Shape())
	assert.Equal(t, []int64{0, 5, 3, 1}, sel.Int64s())

	one, err := a.FlatGet(Int(4))
	require.NoError(t, err)
	assert.Equal(t, 0, one.NDim())
}

func TestFlatSet(t *testing.T) {
	a, err := Zeros(Shape{2, 3}, Int64)
	require.NoError(t, err)

	require.NoError(t, a.FlatSet(1, Ints(1, 4)))
	assert.Equal(t, []int64{0, 1, 0, 0, 1, 0}, a.Int64s())

	// Fewer values than positions repeat cyclically.
	require.NoError(t, a.FlatSet(ints(t, 7, 8), All()))
	assert.Equal(t, []int64{7, 8, 7, 8, 7, 8}, a.Int64s())

	// Writes through a transposed view land in its row-major order.
	tr := a.T()
	require.NoError(t, tr.FlatSet(ints(t, 0, 1, 2, 3, 4, 5), All()))
	assert.Equal(t, []int64{0, 2, 4, 1, 3, 5}, a.Int64s())

	empty, err := FromSlice([]int64{})
	require.NoError(t, err)
	err = a.FlatSet(empty, Int(0))
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}
