// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided N-dimensional arrays with NumPy semantics.
//
// # Overview
//
// An Array is a view of a reference-counted byte Buffer described by a
// DataType, a shape, per-dimension byte strides and a byte offset. The
// package provides:
//   - Basic indexing (integers, slices, ellipsis, new axes) returning views
//   - Advanced indexing (boolean masks, integer arrays) returning copies
//   - NumPy-style broadcasting for elementwise operations
//   - Zero-copy reinterpretation (dtype views, byte order, real/imag parts)
//   - Manipulation routines (concatenate, insert, delete, unique, where, ...)
//   - Generators (arange, linspace, logspace, geomspace, meshgrid)
//
// # Basic Usage
//
//	a, _ := tensor.Arange(0, 12, 1)
//	m, _ := a.Reshape(3, 4)
//
//	row, _ := m.Get(tensor.Int(1))                  // view: [4 5 6 7]
//	col, _ := m.Get(tensor.All(), tensor.Int(-1))   // view: [ 3  7 11]
//	pick, _ := m.Get(tensor.Ints(0, 2))             // copy: rows 0 and 2
//
//	_ = row.SetScalar(99, tensor.Range(0, 2)) // visible through m and a
//
// Index expressions can also be parsed from text:
//
//	terms, _ := tensor.ParseIndex("1:, ::-1")
//	v, _ := m.Get(terms...)
//
// # Supported Data Types
//
//   - Bool
//   - Int8, Int16, Int32, Int64 and Uint8, Uint16, Uint32, Uint64
//   - Float16, Float32, Float64
//   - Complex64, Complex128
//   - Records of the above built with Record
//
// Every type can be stored in either byte order; NewByteOrder and ByteSwap
// convert between them.
//
// # Broadcasting
//
// Elementwise operations follow NumPy broadcasting rules:
//
//	a, _ := tensor.Zeros(tensor.Shape{3, 1}, tensor.Float64) // (3, 1)
//	b, _ := tensor.Ones(tensor.Shape{4}, tensor.Float64)     // (4,)
//	c, _ := tensor.Add(a, b)                                 // (3, 4)
//
// # Memory Management
//
// Views share the Buffer of their source and never allocate element
// storage. Release drops an array's reference; the bytes are dropped when
// the last reference goes away.
//
// # Errors
//
// Operations return *Error values wrapping one of ErrShapeMismatch,
// ErrIndexOutOfRange, ErrAxisOutOfRange, ErrSizeMismatch, ErrDTypeMismatch,
// ErrSignMismatch or ErrInvalidArgument. Use errors.Is to test for them.
package tensor
