package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape(t *testing.T) {
	a := grid(t, 12)

	b, err := a.Reshape(3, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, b.Shape())
	assert.True(t, SharesMemory(a, b))

	_, err = a.Reshape(-1, -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.Reshape(5, -1)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	_, err = a.Reshape(2, 5)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

func TestReshape_StridedView(t *testing.T) {
	a := grid(t, 12)
	even, err := a.Get(Step(2))
	require.NoError(t, err)

	r, err := even.Reshape(2, 3)
	require.NoError(t, err)
	assert.True(t, SharesMemory(a, r))
	assert.Equal(t, []int{48, 16}, r.Strides())
	assert.Equal(t, []int64{0, 2, 4, 6, 8, 10}, r.Int64s())
}

func TestReshape_NeedsCopy(t *testing.T) {
	a := grid(t, 3, 4)
	r, err := a.T().Reshape(12)
	require.NoError(t, err)
	assert.False(t, SharesMemory(a, r))
	assert.Equal(t, []int64{0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7, 11}, r.Int64s())
}

func TestTranspose(t *testing.T) {
	a := grid(t, 2, 3, 4)

	tr, err := a.Transpose(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2, 3}, tr.Shape())
	assert.Equal(t, []int{8, 96, 32}, tr.Strides())

	s, err := tr.At(3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(23), s.Int64())

	_, err = a.Transpose(0, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.Transpose(0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	assert.Equal(t, Shape{4, 3, 2}, a.T().Shape())
}

func TestSwapAndMoveAxis(t *testing.T) {
	a := grid(t, 2, 3, 4)

	sw, err := a.SwapAxes(0, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3, 2}, sw.Shape())

	mv, err := a.MoveAxis(0, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4, 2}, mv.Shape())

	back, err := mv.MoveAxis(-1, 0)
	require.NoError(t, err)
	assert.True(t, ArrayEqual(a, back))

	_, err = a.MoveAxis(3, 0)
	assert.True(t, errors.Is(err, ErrAxisOutOfRange))
}

func TestSqueezeExpandDims(t *testing.T) {
	a := grid(t, 1, 3, 1)

	s, err := a.Squeeze()
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, s.Shape())

	s, err = a.Squeeze(-1)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3}, s.Shape())

	_, err = a.Squeeze(1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	e, err := s.ExpandDims(-1)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3, 1}, e.Shape())
	assert.True(t, SharesMemory(a, e))
}

func TestRavelAndFlatten(t *testing.T) {
	a := grid(t, 2, 3)

	r := a.Ravel()
	assert.True(t, SharesMemory(a, r))
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, r.Int64s())

	rt := a.T().Ravel()
	assert.False(t, SharesMemory(a, rt))
	assert.Equal(t, []int64{0, 3, 1, 4, 2, 5}, rt.Int64s())

	tests := []struct {
		name  string
		src   *Array
		order Order
		want  []int64
	}{
		{"C", a, OrderC, []int64{0, 1, 2, 3, 4, 5}},
		{"F", a, OrderF, []int64{0, 3, 1, 4, 2, 5}},
		{"K of transpose", a.T(), OrderK, []int64{0, 1, 2, 3, 4, 5}},
		{"K keeps reversed axes", mustGet(t, a, Step(-1)), OrderK, []int64{3, 4, 5, 0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.src.Flatten(tt.order)
			assert.False(t, SharesMemory(tt.src, f))
			assert.Equal(t, tt.want, f.Int64s())
		})
	}
}

func mustGet(t *testing.T, a *Array, terms ...Index) *Array {
	t.Helper()
	v, err := a.Get(terms...)
	require.NoError(t, err)
	return v
}
