package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOperations(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b *Array) (*Array, error)
		a, b []int64
		want []int64
	}{
		{"intersect1d", Intersect1D, []int64{1, 3, 4, 3}, []int64{3, 1, 2, 1}, []int64{1, 3}},
		{"union1d", Union1D, []int64{-1, 0, 1}, []int64{-2, 0, 2}, []int64{-2, -1, 0, 1, 2}},
		{"setxor1d", SetXor1D, []int64{1, 2, 3, 2, 4}, []int64{2, 3, 5, 7, 5}, []int64{1, 4, 5, 7}},
		{"setdiff1d", SetDiff1D, []int64{1, 2, 3, 2, 4, 1}, []int64{3, 4, 5, 6}, []int64{1, 2}},
		{"disjoint", Intersect1D, []int64{1, 2}, []int64{3}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn(ints(t, tt.a...), ints(t, tt.b...))
			require.NoError(t, err)
			assert.Equal(t, 1, out.NDim())
			assert.Equal(t, tt.want, out.Int64s())
		})
	}
}

func TestSetOperations_Promotion(t *testing.T) {
	out, err := Union1D(ints(t, 2, 1), floats(t, 1.5))
	require.NoError(t, err)
	assert.Equal(t, Float64, out.DType())
	assert.Equal(t, []float64{1, 1.5, 2}, out.Float64s())
}

func TestIn1D(t *testing.T) {
	test := ints(t, 0, 1, 2, 5, 0)
	states := ints(t, 0, 2)

	mask, err := In1D(test, states, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false, true}, mask.Bools())

	mask, err = In1D(test, states, true)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true, false}, mask.Bools())

	sel, err := test.Get(Idx(mask))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5}, sel.Int64s())
}

func TestIsIn(t *testing.T) {
	element := nested(t, [][]int{{0, 2}, {4, 6}})
	mask, err := IsIn(element, ints(t, 1, 2, 4, 8), false)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, mask.Shape())
	assert.Equal(t, []bool{false, true, true, false}, mask.Bools())

	flat, err := In1D(element, ints(t, 1, 2, 4, 8), false)
	require.NoError(t, err)
	assert.Equal(t, Shape{4}, flat.Shape())

	scalar, err := IsIn(FromScalar(2), ints(t, 2), false)
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.NDim())
	assert.Equal(t, []bool{true}, scalar.Bools())
}
