package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhere_Positions(t *testing.T) {
	cond, err := FromNested([][]bool{{false, false, true}, {false, true, false}})
	require.NoError(t, err)

	pos := Where(cond)
	require.Len(t, pos, 2)
	assert.Equal(t, Int64, pos[0].DType())
	assert.Equal(t, []int64{0, 1}, pos[0].Int64s())
	assert.Equal(t, []int64{2, 1}, pos[1].Int64s())

	// The coordinates select exactly the true elements.
	sel, err := cond.Get(Idx(pos[0]), Idx(pos[1]))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, sel.Bools())
}

func TestNonzero_Scalar(t *testing.T) {
	pos := Nonzero(FromScalar(3))
	require.Len(t, pos, 1)
	assert.Equal(t, []int64{0}, pos[0].Int64s())

	pos = Nonzero(FromScalar(0))
	assert.Equal(t, Shape{0}, pos[0].Shape())
}

func TestArgWhere(t *testing.T) {
	a, err := FromNested([][]int{{0, 5}, {7, 0}})
	require.NoError(t, err)
	aw := ArgWhere(a)
	assert.Equal(t, Shape{2, 2}, aw.Shape())
	assert.Equal(t, []int64{0, 1, 1, 0}, aw.Int64s())
	assert.Equal(t, 2, CountNonzero(a))
}

func TestWhereSelect(t *testing.T) {
	cond, err := FromSlice([]bool{true, false, true})
	require.NoError(t, err)
	x := ints(t, 1, 2, 3)

	out, err := WhereSelect(cond, x, FromScalar(-1))
	require.NoError(t, err)
	assert.Equal(t, Int64, out.DType())
	assert.Equal(t, []int64{1, -1, 3}, out.Int64s())

	out, err = WhereSelect(cond, x, floats(t, 0.5))
	require.NoError(t, err)
	assert.Equal(t, Float64, out.DType())
	assert.Equal(t, []float64{1, 0.5, 3}, out.Float64s())

	_, err = WhereSelect(cond, x, ints(t, 1, 2))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}
