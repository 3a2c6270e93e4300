package tagwire

import (
	"math"
	"reflect"
	"strings"

	"github.com/rawbytedev/tagwire/internal/common"
)

// Encoder accumulates records into one buffer.
//
// The buffer always starts with TypeStart and ends with TypeEnd, so Bytes
// is a complete encoding after every write. The zero value is ready to use.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with room for capacity payload bytes.
func NewEncoder(capacity int) *Encoder {
	e := &Encoder{buf: make([]byte, 0, capacity+2)}
	e.Reset()
	return e
}

// Reset discards all records, keeping the allocated buffer.
func (e *Encoder) Reset() {
	e.buf = append(e.buf[:0], byte(TypeStart), byte(TypeEnd))
}

// Bytes returns the encoded buffer. It aliases the Encoder's storage and is
// only valid until the next write or Reset.
func (e *Encoder) Bytes() []byte {
	if len(e.buf) == 0 {
		e.Reset()
	}
	return e.buf
}

// Len returns the size of the encoded buffer, markers included.
func (e *Encoder) Len() int {
	if len(e.buf) == 0 {
		return 2
	}
	return len(e.buf)
}

// open drops the trailing end marker and writes the tag of a new record.
func (e *Encoder) open(t Type) {
	if len(e.buf) == 0 {
		e.buf = append(e.buf, byte(TypeStart))
	} else {
		e.buf = e.buf[:len(e.buf)-1]
	}
	e.buf = append(e.buf, byte(t))
}

func (e *Encoder) close() {
	e.buf = append(e.buf, byte(TypeEnd))
}

// writeFixed writes an integer-shaped payload of t's width, big-endian.
func (e *Encoder) writeFixed(t Type, x uint64) {
	e.open(t)
	e.buf = common.AppendBigEndian(e.buf, x, t.Width())
	e.close()
}

func (e *Encoder) WriteBool(v bool) {
	var b uint64
	if v {
		b = 1
	}
	e.writeFixed(TypeBool, b)
}

func (e *Encoder) WriteInt8(v int8)     { e.writeFixed(TypeInt8, uint64(v)) }
func (e *Encoder) WriteUint8(v uint8)   { e.writeFixed(TypeUint8, uint64(v)) }
func (e *Encoder) WriteInt16(v int16)   { e.writeFixed(TypeInt16, uint64(v)) }
func (e *Encoder) WriteUint16(v uint16) { e.writeFixed(TypeUint16, uint64(v)) }
func (e *Encoder) WriteInt32(v int32)   { e.writeFixed(TypeInt32, uint64(v)) }
func (e *Encoder) WriteUint32(v uint32) { e.writeFixed(TypeUint32, uint64(v)) }
func (e *Encoder) WriteInt64(v int64)   { e.writeFixed(TypeInt64, uint64(v)) }
func (e *Encoder) WriteUint64(v uint64) { e.writeFixed(TypeUint64, v) }

// WriteFloat32 writes the IEEE-754 bits of v; NaN payloads and the sign of
// zero are kept.
func (e *Encoder) WriteFloat32(v float32) {
	e.writeFixed(TypeFloat, uint64(math.Float32bits(v)))
}

// WriteFloat64 writes the IEEE-754 bits of v; NaN payloads and the sign of
// zero are kept.
func (e *Encoder) WriteFloat64(v float64) {
	e.writeFixed(TypeDouble, math.Float64bits(v))
}

// WriteString writes v followed by a NUL terminator. A string holding a NUL
// byte is cut at that byte without error: "ab\x00cd" is written as "ab".
func (e *Encoder) WriteString(v string) {
	if i := strings.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	e.open(TypeString)
	e.buf = append(e.buf, v...)
	e.buf = append(e.buf, 0)
	e.close()
}

// WriteValue writes a pre-tagged value.
func (e *Encoder) WriteValue(v Value) error {
	switch x := v.data.(type) {
	case bool:
		e.WriteBool(x)
	case int8:
		e.WriteInt8(x)
	case uint8:
		e.WriteUint8(x)
	case int16:
		e.WriteInt16(x)
	case uint16:
		e.WriteUint16(x)
	case int32:
		e.WriteInt32(x)
	case uint32:
		e.WriteUint32(x)
	case int64:
		e.WriteInt64(x)
	case uint64:
		e.WriteUint64(x)
	case float32:
		e.WriteFloat32(x)
	case float64:
		e.WriteFloat64(x)
	case string:
		e.WriteString(x)
	default:
		return &UnsupportedTypeError{Index: -1, GoType: reflect.TypeOf(v.data)}
	}
	return nil
}

// Append writes each argument by its exact Go type: int32 is always 'D',
// uint64 always 'l'. Named types use their underlying kind. Platform-sized
// int, uint and uintptr are rejected, as is anything that is not a scalar.
// On error nothing from this call is kept.
func (e *Encoder) Append(args ...any) error {
	mark := len(e.buf)
	for i, arg := range args {
		if err := e.appendOne(i, arg); err != nil {
			if mark == 0 {
				e.buf = e.buf[:0]
			} else {
				// the byte at mark-1 was the end marker before this call
				e.buf = append(e.buf[:mark-1], byte(TypeEnd))
			}
			return err
		}
	}
	return nil
}

func (e *Encoder) appendOne(i int, arg any) error {
	switch v := arg.(type) {
	case bool:
		e.WriteBool(v)
	case int8:
		e.WriteInt8(v)
	case uint8:
		e.WriteUint8(v)
	case int16:
		e.WriteInt16(v)
	case uint16:
		e.WriteUint16(v)
	case int32:
		e.WriteInt32(v)
	case uint32:
		e.WriteUint32(v)
	case int64:
		e.WriteInt64(v)
	case uint64:
		e.WriteUint64(v)
	case float32:
		e.WriteFloat32(v)
	case float64:
		e.WriteFloat64(v)
	case string:
		e.WriteString(v)
	case Value:
		if err := e.WriteValue(v); err != nil {
			return &UnsupportedTypeError{Index: i, GoType: reflect.TypeOf(v.data)}
		}
	case int, uint, uintptr:
		return &UnsupportedTypeError{Index: i, GoType: reflect.TypeOf(arg)}
	default:
		return e.appendKind(i, arg)
	}
	return nil
}

// appendKind handles named scalar types through reflection.
func (e *Encoder) appendKind(i int, arg any) error {
	rv := reflect.ValueOf(arg)
	if !rv.IsValid() {
		return &UnsupportedTypeError{Index: i}
	}
	k := rv.Kind()
	if k == reflect.String {
		e.WriteString(rv.String())
		return nil
	}
	if !common.IsFixedKind(k) {
		return &UnsupportedTypeError{Index: i, GoType: rv.Type()}
	}
	switch k {
	case reflect.Bool:
		e.WriteBool(rv.Bool())
	case reflect.Int8:
		e.WriteInt8(int8(rv.Int()))
	case reflect.Uint8:
		e.WriteUint8(uint8(rv.Uint()))
	case reflect.Int16:
		e.WriteInt16(int16(rv.Int()))
	case reflect.Uint16:
		e.WriteUint16(uint16(rv.Uint()))
	case reflect.Int32:
		e.WriteInt32(int32(rv.Int()))
	case reflect.Uint32:
		e.WriteUint32(uint32(rv.Uint()))
	case reflect.Int64:
		e.WriteInt64(rv.Int())
	case reflect.Uint64:
		e.WriteUint64(rv.Uint())
	case reflect.Float32:
		e.WriteFloat32(float32(rv.Float()))
	case reflect.Float64:
		e.WriteFloat64(rv.Float())
	}
	return nil
}

// Encode returns a fresh buffer holding args in order. See Append for the
// type rules.
func Encode(args ...any) ([]byte, error) {
	e := NewEncoder(len(args) * 9)
	if err := e.Append(args...); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeValues returns a fresh buffer holding vals in order.
func EncodeValues(vals []Value) ([]byte, error) {
	e := NewEncoder(len(vals) * 9)
	for i, v := range vals {
		if err := e.WriteValue(v); err != nil {
			return nil, &UnsupportedTypeError{Index: i, GoType: reflect.TypeOf(v.data)}
		}
	}
	return e.Bytes(), nil
}
