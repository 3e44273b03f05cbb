package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name   string
		shapes []Shape
		want   Shape
		err    bool
	}{
		{"same", []Shape{{2, 3}, {2, 3}}, Shape{2, 3}, false},
		{"stretch", []Shape{{3, 1}, {3, 5}}, Shape{3, 5}, false},
		{"prepend", []Shape{{5}, {4, 1, 1}}, Shape{4, 1, 5}, false},
		{"scalar", []Shape{{}, {2, 2}}, Shape{2, 2}, false},
		{"three", []Shape{{8, 1, 6, 1}, {7, 1, 5}, {1}}, Shape{8, 7, 6, 5}, false},
		{"zero extent", []Shape{{0}, {1}}, Shape{0}, false},
		{"mismatch", []Shape{{3, 4}, {3, 5}}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.shapes...)
			if tt.err {
				assert.True(t, errors.Is(err, ErrShapeMismatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadcastTo(t *testing.T) {
	a, err := FromSlice([]int32{1, 2, 3})
	require.NoError(t, err)

	b, err := BroadcastTo(a, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, b.Strides())
	assert.True(t, SharesMemory(a, b))
	assert.Equal(t, []int64{1, 2, 3, 1, 2, 3}, b.Int64s())

	_, err = BroadcastTo(a, Shape{4})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = BroadcastTo(b, Shape{3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestBroadcastArrays(t *testing.T) {
	col, err := FromSlice([]int64{1, 2}, 2, 1)
	require.NoError(t, err)
	row, err := FromSlice([]int64{10, 20, 30})
	require.NoError(t, err)

	out, err := BroadcastArrays(col, row)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Shape{2, 3}, out[0].Shape())
	assert.Equal(t, []int64{1, 1, 1, 2, 2, 2}, out[0].Int64s())
	assert.Equal(t, []int64{10, 20, 30, 10, 20, 30}, out[1].Int64s())
}
