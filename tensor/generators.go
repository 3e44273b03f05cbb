// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// GenOption configures a generator.
type GenOption = tensor.GenOption

// Indexing selects the output layout of Meshgrid.
type Indexing = tensor.Indexing

// Meshgrid indexing modes.
const (
	IndexingXY = tensor.IndexingXY
	IndexingIJ = tensor.IndexingIJ
)

// WithDType sets the dtype of the generated array.
func WithDType(dt DataType) GenOption { return tensor.WithDType(dt) }

// WithEndpoint controls whether stop is the last sample.
func WithEndpoint(endpoint bool) GenOption { return tensor.WithEndpoint(endpoint) }

// WithBase sets the base of Logspace.
func WithBase(base float64) GenOption { return tensor.WithBase(base) }

// WithIndexing sets the Meshgrid indexing mode.
func WithIndexing(ix Indexing) GenOption { return tensor.WithIndexing(ix) }

// WithSparse makes Meshgrid return broadcastable arrays.
func WithSparse(sparse bool) GenOption { return tensor.WithSparse(sparse) }

// WithCopy controls whether Meshgrid copies its outputs.
func WithCopy(copy bool) GenOption { return tensor.WithCopy(copy) }

// Arange returns evenly spaced values in [start, stop).
//
// Example:
//
//	a, _ := tensor.Arange(0, 12, 1) // int64, 12 elements
func Arange[T Number](start, stop, step T, opts ...GenOption) (*Array, error) {
	return tensor.Arange(start, stop, step, opts...)
}

// Linspace returns num evenly spaced samples over [start, stop].
func Linspace(start, stop any, num int, opts ...GenOption) (*Array, error) {
	return tensor.Linspace(start, stop, num, opts...)
}

// LinspaceStep is Linspace that also returns the spacing between samples.
func LinspaceStep(start, stop any, num int, opts ...GenOption) (*Array, Scalar, error) {
	return tensor.LinspaceStep(start, stop, num, opts...)
}

// Logspace returns num samples spaced evenly on a log scale.
func Logspace(start, stop float64, num int, opts ...GenOption) (*Array, error) {
	return tensor.Logspace(start, stop, num, opts...)
}

// Geomspace returns a geometric progression from start to stop.
func Geomspace(start, stop float64, num int, opts ...GenOption) (*Array, error) {
	return tensor.Geomspace(start, stop, num, opts...)
}

// Meshgrid returns coordinate arrays for the grid spanned by the inputs.
func Meshgrid(arrays []*Array, opts ...GenOption) ([]*Array, error) {
	return tensor.Meshgrid(arrays, opts...)
}
