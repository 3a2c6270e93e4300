package tagwire

import (
	"bytes"
	"math"

	"github.com/rawbytedev/tagwire/internal/common"
)

// Decoder parses buffers produced by an Encoder and remembers how much of
// the last input it consumed. A Decoder is not safe for concurrent use.
type Decoder struct {
	data []byte
	pos  int
	out  []Value
	used int
}

// Decode parses one buffer into its values in encounter order.
func Decode(data []byte) ([]Value, error) {
	var d Decoder
	return d.Decode(data)
}

// Offset returns the number of input bytes consumed by the last successful
// Decode, end marker included. Bytes after the end marker are never read.
func (d *Decoder) Offset() int {
	return d.used
}

// Decode parses data. It fails on the first malformed record and then
// returns no values.
func (d *Decoder) Decode(data []byte) ([]Value, error) {
	d.data = data
	d.pos = 0
	d.used = 0
	d.out = nil
	defer func() { d.data = nil }()

	if len(data) == 0 || Type(data[0]) != TypeStart {
		return nil, ErrMissingStart
	}
	d.pos = 1

	for {
		if d.pos >= len(d.data) {
			return nil, &TruncatedInputError{Type: TypeEnd, Offset: len(d.data)}
		}
		tagPos := d.pos
		t := Type(d.data[d.pos])
		d.pos++
		if t == TypeEnd {
			break
		}
		v, err := d.record(t, tagPos)
		if err != nil {
			return nil, err
		}
		d.out = append(d.out, v)
	}

	d.used = d.pos
	out := d.out
	if out == nil {
		out = []Value{}
	}
	return out, nil
}

func (d *Decoder) record(t Type, tagPos int) (Value, error) {
	switch t {
	case TypeString:
		s, err := d.cstring()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case TypeBool, TypeInt8, TypeUint8, TypeInt16, TypeUint16,
		TypeInt32, TypeUint32, TypeInt64, TypeUint64, TypeFloat, TypeDouble:
		x, err := d.fixed(t)
		if err != nil {
			return Value{}, err
		}
		return fixedValue(t, x), nil
	default:
		return Value{}, &UnknownTypeError{Tag: byte(t), Offset: tagPos}
	}
}

// fixed reads t's payload as a big-endian unsigned integer.
func (d *Decoder) fixed(t Type) (uint64, error) {
	w := t.Width()
	if rem := len(d.data) - d.pos; rem < w {
		return 0, &TruncatedInputError{Type: t, Offset: len(d.data), Need: w - rem}
	}
	x := common.BigEndian(d.data[d.pos : d.pos+w])
	d.pos += w
	return x, nil
}

// cstring reads up to and including the next NUL, returning a copy.
func (d *Decoder) cstring() (string, error) {
	rest := d.data[d.pos:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return "", &TruncatedInputError{Type: TypeString, Offset: len(d.data), Need: -1}
	}
	d.pos += i + 1
	return string(rest[:i]), nil
}

// fixedValue narrows x to the Go type t names.
func fixedValue(t Type, x uint64) Value {
	switch t {
	case TypeBool:
		return Bool(x != 0)
	case TypeInt8:
		return Int8(int8(x))
	case TypeUint8:
		return Uint8(uint8(x))
	case TypeInt16:
		return Int16(int16(x))
	case TypeUint16:
		return Uint16(uint16(x))
	case TypeInt32:
		return Int32(int32(x))
	case TypeUint32:
		return Uint32(uint32(x))
	case TypeInt64:
		return Int64(int64(x))
	case TypeUint64:
		return Uint64(x)
	case TypeFloat:
		return Float32(math.Float32frombits(uint32(x)))
	case TypeDouble:
		return Float64(math.Float64frombits(x))
	}
	panic("tagwire: not a fixed-width type")
}
