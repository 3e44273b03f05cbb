// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// BinaryOp identifies an elementwise binary operation.
type BinaryOp = tensor.BinaryOp

// UnaryOp identifies an elementwise unary operation.
type UnaryOp = tensor.UnaryOp

// Binary operations.
const (
	OpAdd          = tensor.OpAdd
	OpSubtract     = tensor.OpSubtract
	OpMultiply     = tensor.OpMultiply
	OpDivide       = tensor.OpDivide
	OpFloorDivide  = tensor.OpFloorDivide
	OpMod          = tensor.OpMod
	OpPower        = tensor.OpPower
	OpBitwiseAnd   = tensor.OpBitwiseAnd
	OpBitwiseOr    = tensor.OpBitwiseOr
	OpBitwiseXor   = tensor.OpBitwiseXor
	OpEqual        = tensor.OpEqual
	OpNotEqual     = tensor.OpNotEqual
	OpLess         = tensor.OpLess
	OpLessEqual    = tensor.OpLessEqual
	OpGreater      = tensor.OpGreater
	OpGreaterEqual = tensor.OpGreaterEqual
	OpLogicalAnd   = tensor.OpLogicalAnd
	OpLogicalOr    = tensor.OpLogicalOr
)

// Unary operations.
const (
	OpNegative   = tensor.OpNegative
	OpAbsolute   = tensor.OpAbsolute
	OpLogicalNot = tensor.OpLogicalNot
	OpInvert     = tensor.OpInvert
)

// Broadcasting

// BroadcastShapes returns the common shape of the given shapes.
//
// Example:
//
//	s, _ := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{4}) // (3, 4)
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapes(shapes...)
}

// BroadcastTo returns a stride-0 view of a with the given shape.
func BroadcastTo(a *Array, shape Shape) (*Array, error) {
	return tensor.BroadcastTo(a, shape)
}

// BroadcastArrays broadcasts every operand to their common shape.
func BroadcastArrays(arrays ...*Array) ([]*Array, error) {
	return tensor.BroadcastArrays(arrays...)
}

// Elementwise operations

// Binary applies op elementwise to a and b after broadcasting.
func Binary(op BinaryOp, a, b *Array) (*Array, error) { return tensor.Binary(op, a, b) }

// BinaryInPlace computes dst = dst op src through dst's buffer.
func BinaryInPlace(op BinaryOp, dst, src *Array) error { return tensor.BinaryInPlace(op, dst, src) }

// Unary applies op elementwise.
func Unary(op UnaryOp, a *Array) (*Array, error) { return tensor.Unary(op, a) }

// Add returns a + b.
func Add(a, b *Array) (*Array, error) { return tensor.Add(a, b) }

// Subtract returns a - b.
func Subtract(a, b *Array) (*Array, error) { return tensor.Subtract(a, b) }

// Multiply returns a * b.
func Multiply(a, b *Array) (*Array, error) { return tensor.Multiply(a, b) }

// Divide returns the true quotient a / b.
func Divide(a, b *Array) (*Array, error) { return tensor.Divide(a, b) }

// FloorDivide returns floor(a / b).
func FloorDivide(a, b *Array) (*Array, error) { return tensor.FloorDivide(a, b) }

// Mod returns the remainder of a / b with the sign of b.
func Mod(a, b *Array) (*Array, error) { return tensor.Mod(a, b) }

// Power returns a raised to b.
func Power(a, b *Array) (*Array, error) { return tensor.Power(a, b) }

// BitwiseAnd returns a & b.
func BitwiseAnd(a, b *Array) (*Array, error) { return tensor.BitwiseAnd(a, b) }

// BitwiseOr returns a | b.
func BitwiseOr(a, b *Array) (*Array, error) { return tensor.BitwiseOr(a, b) }

// BitwiseXor returns a ^ b.
func BitwiseXor(a, b *Array) (*Array, error) { return tensor.BitwiseXor(a, b) }

// Equal returns the boolean mask a == b.
func Equal(a, b *Array) (*Array, error) { return tensor.Equal(a, b) }

// NotEqual returns the boolean mask a != b.
func NotEqual(a, b *Array) (*Array, error) { return tensor.NotEqual(a, b) }

// Less returns the boolean mask a < b.
func Less(a, b *Array) (*Array, error) { return tensor.Less(a, b) }

// LessEqual returns the boolean mask a <= b.
func LessEqual(a, b *Array) (*Array, error) { return tensor.LessEqual(a, b) }

// Greater returns the boolean mask a > b.
func Greater(a, b *Array) (*Array, error) { return tensor.Greater(a, b) }

// GreaterEqual returns the boolean mask a >= b.
func GreaterEqual(a, b *Array) (*Array, error) { return tensor.GreaterEqual(a, b) }

// LogicalAnd returns a AND b.
func LogicalAnd(a, b *Array) (*Array, error) { return tensor.LogicalAnd(a, b) }

// LogicalOr returns a OR b.
func LogicalOr(a, b *Array) (*Array, error) { return tensor.LogicalOr(a, b) }

// LogicalNot returns NOT a.
func LogicalNot(a *Array) (*Array, error) { return tensor.LogicalNot(a) }

// Negative returns -a.
func Negative(a *Array) (*Array, error) { return tensor.Negative(a) }

// Absolute returns |a|.
func Absolute(a *Array) (*Array, error) { return tensor.Absolute(a) }

// Invert returns the bitwise NOT of a.
func Invert(a *Array) (*Array, error) { return tensor.Invert(a) }

// Reinterpretation

// View reinterprets a's bytes as dtype without copying.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int16{1, 2, 3, 4})
//	b, _ := tensor.View(a, tensor.Int8) // 8 elements sharing a's buffer
func View(a *Array, dtype DataType) (*Array, error) {
	return tensor.View(a, dtype)
}

// ByteSwap reverses the bytes of every element, in place or into a copy.
func ByteSwap(a *Array, inPlace bool) *Array {
	return tensor.ByteSwap(a, inPlace)
}

// NewByteOrder returns a view whose dtype has the opposite byte order.
func NewByteOrder(a *Array) *Array {
	return tensor.NewByteOrder(a)
}

// Real returns a view of the real parts of a.
func Real(a *Array) (*Array, error) {
	return tensor.Real(a)
}

// Imag returns a view of the imaginary parts of a.
func Imag(a *Array) (*Array, error) {
	return tensor.Imag(a)
}

// GetField returns a view of the named field of a record array.
func GetField(a *Array, name string) (*Array, error) {
	return tensor.GetField(a, name)
}

// Comparison

// ArrayEqual reports whether a and b have equal shapes and elements.
func ArrayEqual(a, b *Array) bool {
	return tensor.ArrayEqual(a, b)
}

// AllClose reports whether a and b are elementwise equal within tolerance.
func AllClose(a, b *Array, rtol, atol float64) (bool, error) {
	return tensor.AllClose(a, b, rtol, atol)
}

// IsClose reports whether two scalars are equal within tolerance.
func IsClose(x, y Scalar, rtol, atol float64) bool {
	return tensor.IsClose(x, y, rtol, atol)
}
