// Package tensor implements a strided N-dimensional array engine.
//
// An Array is a view of a reference-counted Buffer described by a DataType,
// a shape, per-dimension byte strides and a byte offset. Basic indexing,
// broadcasting and reinterpretation produce views over the same Buffer;
// boolean and integer-array indexing and the manipulation routines produce
// copies.
package tensor

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/sys/cpu"
)

// Kind is the category of a DataType. Kinds are ordered for type promotion.
type Kind uint8

// Supported kinds.
const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindFloat
	KindComplex
	KindRecord
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// ByteOrder is the order in which an element's bytes are stored.
type ByteOrder uint8

// Byte orders.
const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// NativeOrder is the byte order of the host CPU.
var NativeOrder = hostOrder()

func hostOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// Swap returns the opposite byte order.
func (o ByteOrder) Swap() ByteOrder {
	if o == LittleEndian {
		return BigEndian
	}
	return LittleEndian
}

// String returns "<" for little-endian and ">" for big-endian.
func (o ByteOrder) String() string {
	if o == BigEndian {
		return ">"
	}
	return "<"
}

func (o ByteOrder) codec() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Field is a named member of a record DataType.
type Field struct {
	Name   string
	Type   DataType
	Offset int
}

// DataType describes how the bytes of one element map to a value.
// DataType values are immutable.
type DataType struct {
	kind   Kind
	size   int
	order  ByteOrder
	fields []Field
}

// Predefined data types, stored in native byte order.
var (
	Bool       = DataType{kind: KindBool, size: 1, order: NativeOrder}
	Int8       = DataType{kind: KindInt, size: 1, order: NativeOrder}
	Int16      = DataType{kind: KindInt, size: 2, order: NativeOrder}
	Int32      = DataType{kind: KindInt, size: 4, order: NativeOrder}
	Int64      = DataType{kind: KindInt, size: 8, order: NativeOrder}
	Uint8      = DataType{kind: KindUint, size: 1, order: NativeOrder}
	Uint16     = DataType{kind: KindUint, size: 2, order: NativeOrder}
	Uint32     = DataType{kind: KindUint, size: 4, order: NativeOrder}
	Uint64     = DataType{kind: KindUint, size: 8, order: NativeOrder}
	Float16    = DataType{kind: KindFloat, size: 2, order: NativeOrder}
	Float32    = DataType{kind: KindFloat, size: 4, order: NativeOrder}
	Float64    = DataType{kind: KindFloat, size: 8, order: NativeOrder}
	Complex64  = DataType{kind: KindComplex, size: 8, order: NativeOrder}
	Complex128 = DataType{kind: KindComplex, size: 16, order: NativeOrder}
)

// Record builds a packed record type from field names and types.
// Fields are laid out back to back in the given order.
func Record(names []string, types []DataType) (DataType, error) {
	if len(names) != len(types) || len(names) == 0 {
		return DataType{}, newError("record", ErrInvalidArgument,
			"%d names for %d types", len(names), len(types))
	}
	seen := make(map[string]bool, len(names))
	fields := make([]Field, len(names))
	offset := 0
	for i, name := range names {
		if name == "" || seen[name] {
			return DataType{}, newError("record", ErrInvalidArgument, "invalid or duplicate field name %q", name)
		}
		if types[i].kind == KindRecord {
			return DataType{}, newError("record", ErrInvalidArgument, "nested record field %q", name)
		}
		seen[name] = true
		fields[i] = Field{Name: name, Type: types[i], Offset: offset}
		offset += types[i].size
	}
	return DataType{kind: KindRecord, size: offset, order: NativeOrder, fields: fields}, nil
}

// Kind returns the type category.
func (dt DataType) Kind() Kind { return dt.kind }

// Size returns the byte size of one element.
func (dt DataType) Size() int { return dt.size }

// Order returns the byte order of the element encoding.
func (dt DataType) Order() ByteOrder { return dt.order }

// Fields returns a copy of the record fields (nil for scalar types).
func (dt DataType) Fields() []Field {
	if dt.fields == nil {
		return nil
	}
	return append([]Field(nil), dt.fields...)
}

// Field looks up a record field by name.
func (dt DataType) Field(name string) (Field, bool) {
	for _, f := range dt.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsInteger reports whether the type is a signed or unsigned integer.
func (dt DataType) IsInteger() bool { return dt.kind == KindInt || dt.kind == KindUint }

// IsNumeric reports whether elements can take part in arithmetic.
func (dt DataType) IsNumeric() bool { return dt.kind != KindRecord }

// IsNative reports whether the type is stored in host byte order.
func (dt DataType) IsNative() bool { return dt.order == NativeOrder || dt.size == 1 }

// NewByteOrder returns the same type with the opposite byte order.
func (dt DataType) NewByteOrder() DataType {
	out := dt
	out.order = dt.order.Swap()
	if dt.fields != nil {
		out.fields = make([]Field, len(dt.fields))
		for i, f := range dt.fields {
			f.Type = f.Type.NewByteOrder()
			out.fields[i] = f
		}
	}
	return out
}

// WithNativeOrder returns the same type stored in host byte order.
func (dt DataType) WithNativeOrder() DataType {
	if dt.IsNative() {
		return dt
	}
	return dt.NewByteOrder()
}

// Equal reports whether two data types describe the same encoding.
func (dt DataType) Equal(other DataType) bool {
	if dt.kind != other.kind || dt.size != other.size || len(dt.fields) != len(other.fields) {
		return false
	}
	if dt.size > 1 && dt.kind != KindRecord && dt.order != other.order {
		return false
	}
	for i := range dt.fields {
		a, b := dt.fields[i], other.fields[i]
		if a.Name != b.Name || a.Offset != b.Offset || !a.Type.Equal(b.Type) {
			return false
		}
	}
	return true
}

// String returns a human-readable name, e.g. "int16", ">float64" or
// "{name: int32, weight: float64}".
func (dt DataType) String() string {
	if dt.kind == KindRecord {
		parts := make([]string, len(dt.fields))
		for i, f := range dt.fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	name := fmt.Sprintf("%s%d", dt.kind, dt.size*8)
	if dt.kind == KindBool {
		name = "bool"
	}
	if !dt.IsNative() {
		return dt.order.String() + name
	}
	return name
}

// Element is the set of Go types that map onto a DataType.
type Element interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Number is the set of real numeric Go types accepted by the range generators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// dataTypeOf infers the DataType for a Go element type.
func dataTypeOf[T Element]() DataType {
	var zero T
	dt, ok := dataTypeForKind(reflect.TypeOf(zero).Kind())
	if !ok {
		panic(fmt.Sprintf("unsupported element type %T", zero))
	}
	return dt
}

func dataTypeForKind(k reflect.Kind) (DataType, bool) {
	switch k {
	case reflect.Bool:
		return Bool, true
	case reflect.Int8:
		return Int8, true
	case reflect.Int16:
		return Int16, true
	case reflect.Int32:
		return Int32, true
	case reflect.Int, reflect.Int64:
		return Int64, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Uint16:
		return Uint16, true
	case reflect.Uint32:
		return Uint32, true
	case reflect.Uint, reflect.Uint64:
		return Uint64, true
	case reflect.Float32:
		return Float32, true
	case reflect.Float64:
		return Float64, true
	case reflect.Complex64:
		return Complex64, true
	case reflect.Complex128:
		return Complex128, true
	default:
		return DataType{}, false
	}
}

// PromoteTypes returns the smallest type both a and b can be safely cast to.
// Record types only promote with an equal record type.
func PromoteTypes(a, b DataType) (DataType, error) {
	if a.kind == KindRecord || b.kind == KindRecord {
		if a.Equal(b) {
			return a, nil
		}
		return DataType{}, newError("promote", ErrDTypeMismatch, "%s and %s", a, b)
	}
	a, b = a.WithNativeOrder(), b.WithNativeOrder()
	if a.kind == b.kind {
		if a.size >= b.size {
			return a, nil
		}
		return b, nil
	}
	if a.kind > b.kind {
		a, b = b, a
	}
	// a has the lower kind from here on.
	switch b.kind {
	case KindUint:
		return b, nil // bool + uint
	case KindInt:
		if a.kind == KindBool {
			return b, nil
		}
		// uint + int needs a signed type wider than the unsigned one.
		if a.size >= 8 {
			return Float64, nil
		}
		return intOfSize(max(b.size, 2*a.size)), nil
	case KindFloat:
		return floatOfSize(max(b.size, floatSizeFor(a))), nil
	case KindComplex:
		return complexOfSize(max(b.size, 2*floatSizeFor(a))), nil
	}
	return b, nil
}

// floatSizeFor returns the float size able to hold every value of dt.
func floatSizeFor(dt DataType) int {
	switch dt.kind {
	case KindBool:
		return 2
	case KindInt, KindUint:
		switch dt.size {
		case 1:
			return 2
		case 2:
			return 4
		default:
			return 8
		}
	case KindComplex:
		return dt.size / 2
	default:
		return dt.size
	}
}

func intOfSize(n int) DataType {
	switch n {
	case 1:
		return Int8
	case 2:
		return Int16
	case 4:
		return Int32
	default:
		return Int64
	}
}

func floatOfSize(n int) DataType {
	switch n {
	case 2:
		return Float16
	case 4:
		return Float32
	default:
		return Float64
	}
}

func complexOfSize(n int) DataType {
	if n <= 8 {
		return Complex64
	}
	return Complex128
}
