package tagwire

import (
	"fmt"
	"math"
)

// Value is one decoded record: a tag and a payload whose Go type always
// matches it (int32 for TypeInt32, float32 for TypeFloat, and so on).
// The zero Value has no tag and is never produced by the decoder.
type Value struct {
	typ  Type
	data any
}

// Constructors. Each one fixes the tag from the argument's static type.

func Bool(v bool) Value       { return Value{typ: TypeBool, data: v} }
func Int8(v int8) Value       { return Value{typ: TypeInt8, data: v} }
func Uint8(v uint8) Value     { return Value{typ: TypeUint8, data: v} }
func Int16(v int16) Value     { return Value{typ: TypeInt16, data: v} }
func Uint16(v uint16) Value   { return Value{typ: TypeUint16, data: v} }
func Int32(v int32) Value     { return Value{typ: TypeInt32, data: v} }
func Uint32(v uint32) Value   { return Value{typ: TypeUint32, data: v} }
func Int64(v int64) Value     { return Value{typ: TypeInt64, data: v} }
func Uint64(v uint64) Value   { return Value{typ: TypeUint64, data: v} }
func Float32(v float32) Value { return Value{typ: TypeFloat, data: v} }
func Float64(v float64) Value { return Value{typ: TypeDouble, data: v} }
func String(v string) Value   { return Value{typ: TypeString, data: v} }

// Type returns the record's tag.
func (v Value) Type() Type { return v.typ }

// Interface returns the payload as its exact Go type.
func (v Value) Interface() any { return v.data }

func (v Value) AsBool() (bool, bool)       { x, ok := v.data.(bool); return x, ok }
func (v Value) AsInt8() (int8, bool)       { x, ok := v.data.(int8); return x, ok }
func (v Value) AsUint8() (uint8, bool)     { x, ok := v.data.(uint8); return x, ok }
func (v Value) AsInt16() (int16, bool)     { x, ok := v.data.(int16); return x, ok }
func (v Value) AsUint16() (uint16, bool)   { x, ok := v.data.(uint16); return x, ok }
func (v Value) AsInt32() (int32, bool)     { x, ok := v.data.(int32); return x, ok }
func (v Value) AsUint32() (uint32, bool)   { x, ok := v.data.(uint32); return x, ok }
func (v Value) AsInt64() (int64, bool)     { x, ok := v.data.(int64); return x, ok }
func (v Value) AsUint64() (uint64, bool)   { x, ok := v.data.(uint64); return x, ok }
func (v Value) AsFloat32() (float32, bool) { x, ok := v.data.(float32); return x, ok }
func (v Value) AsFloat64() (float64, bool) { x, ok := v.data.(float64); return x, ok }
func (v Value) AsString() (string, bool)   { x, ok := v.data.(string); return x, ok }

// Equal reports whether both values carry the same tag and payload.
// Floats are compared by bit pattern, so NaN equals the same NaN and
// 0.0 differs from -0.0.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch a := v.data.(type) {
	case float32:
		b, ok := o.data.(float32)
		return ok && math.Float32bits(a) == math.Float32bits(b)
	case float64:
		b, ok := o.data.(float64)
		return ok && math.Float64bits(a) == math.Float64bits(b)
	default:
		return v.data == o.data
	}
}

func (v Value) String() string {
	if s, ok := v.data.(string); ok {
		return fmt.Sprintf("%s(%q)", v.typ, s)
	}
	return fmt.Sprintf("%s(%v)", v.typ, v.data)
}

// EqualValues reports whether two sequences are element-wise Equal.
func EqualValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
