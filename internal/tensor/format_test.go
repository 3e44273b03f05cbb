package tensor

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		a    func(t *testing.T) *Array
		want string
	}{
		{"ints", func(t *testing.T) *Array { return ints(t, 1, -20, 3) }, "[  1 -20   3]"},
		{"matrix", func(t *testing.T) *Array { return grid(t, 2, 2) }, "[[0 1]\n [2 3]]"},
		{"floats", func(t *testing.T) *Array { return floats(t, 2, 2.25, 2.5, 2.75, 3) }, "[2.   2.25 2.5  2.75 3.  ]"},
		{"bools", func(t *testing.T) *Array {
			b, err := FromSlice([]bool{true, false})
			require.NoError(t, err)
			return b
		}, "[ True False]"},
		{"special floats", func(t *testing.T) *Array { return floats(t, math.NaN(), 1, math.Inf(-1)) }, "[ nan   1. -inf]"},
		{"scientific", func(t *testing.T) *Array { return floats(t, 1e-5, 1) }, "[1.e-05 1.e+00]"},
		{"complex", func(t *testing.T) *Array {
			c, err := FromSlice([]complex128{1 + 2i, 3 - 0.5i})
			require.NoError(t, err)
			return c
		}, "[1.+2.j  3.-0.5j]"},
		{"scalar", func(t *testing.T) *Array { return FromScalar(2.0) }, "2.0"},
		{"empty", func(t *testing.T) *Array { return ints(t) }, "[]"},
		{"3d", func(t *testing.T) *Array { return grid(t, 2, 1, 2) }, "[[[0 1]]\n\n [[2 3]]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a(t).String())
		})
	}
}

func TestString_Summarized(t *testing.T) {
	a := grid(t, 2000)
	s := a.String()
	assert.Equal(t, "[   0    1    2 ... 1997 1998 1999]", s)
}

func TestString_Wraps(t *testing.T) {
	s := grid(t, 40).String()
	for _, line := range strings.Split(s, "\n") {
		assert.LessOrEqual(t, len(line), lineWidth)
	}
	assert.Contains(t, s, "\n ")
}

func TestString_Record(t *testing.T) {
	rec, err := Record([]string{"id", "w"}, []DataType{Int32, Float64})
	require.NoError(t, err)
	a, err := Zeros(Shape{2}, rec)
	require.NoError(t, err)
	w, err := GetField(a, "w")
	require.NoError(t, err)
	require.NoError(t, w.Fill(1.5))
	assert.Equal(t, "[(0, 1.5) (0, 1.5)]", a.String())
}

func TestDescribe(t *testing.T) {
	a := grid(t, 3)
	assert.Equal(t, "[0 1 2]\nshape: (3,), strides: (8,), dtype: int64", a.Describe())
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "True", BoolScalar(true).String())
	assert.Equal(t, "-3", IntScalar(-3).String())
	assert.Equal(t, "0.1", FloatScalar(0.1).String())
	assert.Equal(t, "(1.+2.j)", ComplexScalar(1+2i).String())
}
