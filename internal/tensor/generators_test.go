package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArange(t *testing.T) {
	a, err := Arange(2, 11, 1, WithDType(Int8))
	require.NoError(t, err)
	assert.Equal(t, Int8, a.DType())
	assert.Equal(t, []int64{2, 3, 4, 5, 6, 7, 8, 9, 10}, a.Int64s())

	f, err := Arange(2.5, 11.5, 2.0)
	require.NoError(t, err)
	assert.Equal(t, Float64, f.DType())
	assert.Equal(t, []float64{2.5, 4.5, 6.5, 8.5, 10.5}, f.Float64s())

	down, err := Arange(10, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 7, 4, 1}, down.Int64s())

	empty, err := Arange(0, 5, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{0}, empty.Shape())

	_, err = Arange(0, 5, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	u, err := Arange(uint8(0), uint8(3), uint8(1))
	require.NoError(t, err)
	assert.Equal(t, Uint8, u.DType())
}

func TestLinspace(t *testing.T) {
	a, err := Linspace(2.0, 3.0, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2.25, 2.5, 2.75, 3}, a.Float64s())

	open, err := Linspace(2.0, 3.0, 5, WithEndpoint(false))
	require.NoError(t, err)
	ok, err := AllClose(open, floats(t, 2, 2.2, 2.4, 2.6, 2.8), 1e-12, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, step, err := LinspaceStep(2.0, 3.0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.25, step.Float64())

	one, step, err := LinspaceStep(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, one.Float64s())
	assert.True(t, step.IsNaN())

	floored, err := Linspace(0, 10, 4, WithDType(Int64))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 6, 10}, floored.Int64s())

	c, err := Linspace(0i, 2+2i, 3)
	require.NoError(t, err)
	assert.Equal(t, Complex128, c.DType())
	assert.Equal(t, []complex128{0, 1 + 1i, 2 + 2i}, c.Complex128s())

	_, err = Linspace(0, 1, -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestLogspace(t *testing.T) {
	a, err := Logspace(2, 3, 4)
	require.NoError(t, err)
	ok, err := AllClose(a, floats(t, 100, 215.443469, 464.15888336, 1000), 1e-8, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	b, err := Logspace(0, 3, 4, WithBase(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4, 8}, b.Float64s())
}

func TestGeomspace(t *testing.T) {
	a, err := Geomspace(1, 1000, 4)
	require.NoError(t, err)
	vals := a.Float64s()
	assert.Equal(t, 1.0, vals[0])
	assert.Equal(t, 1000.0, vals[3])
	ok, err := AllClose(a, floats(t, 1, 10, 100, 1000), 1e-12, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	neg, err := Geomspace(-1000, -1, 4)
	require.NoError(t, err)
	ok, err = AllClose(neg, floats(t, -1000, -100, -10, -1), 1e-12, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	open, err := Geomspace(1, 1000, 3, WithEndpoint(false))
	require.NoError(t, err)
	ok, err = AllClose(open, floats(t, 1, 10, 100), 1e-12, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Geomspace(0, 10, 3)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Geomspace(-1, 10, 3)
	assert.True(t, errors.Is(err, ErrSignMismatch))
}

func TestMeshgrid(t *testing.T) {
	x := ints(t, 1, 2, 3)
	y := ints(t, 4, 5)

	g, err := Meshgrid([]*Array{x, y})
	require.NoError(t, err)
	require.Len(t, g, 2)
	assert.Equal(t, Shape{2, 3}, g[0].Shape())
	assert.Equal(t, []int64{1, 2, 3, 1, 2, 3}, g[0].Int64s())
	assert.Equal(t, []int64{4, 4, 4, 5, 5, 5}, g[1].Int64s())
	assert.False(t, SharesMemory(x, g[0]))

	ij, err := Meshgrid([]*Array{x, y}, WithIndexing(IndexingIJ))
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, ij[0].Shape())
	assert.Equal(t, []int64{1, 1, 2, 2, 3, 3}, ij[0].Int64s())

	sparse, err := Meshgrid([]*Array{x, y}, WithSparse(true))
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3}, sparse[0].Shape())
	assert.Equal(t, Shape{2, 1}, sparse[1].Shape())

	views, err := Meshgrid([]*Array{x, y}, WithCopy(false))
	require.NoError(t, err)
	assert.True(t, SharesMemory(x, views[0]))
	assert.Equal(t, []int{0, 8}, views[0].Strides())

	three, err := Meshgrid([]*Array{x, y, ints(t, 7, 8, 9, 10)})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, three[2].Shape())
}
