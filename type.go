package tagwire

// Type is the one-byte marker written in front of every record.
// Uppercase integer tags are signed, lowercase are unsigned.
type Type byte

const (
	TypeBool   Type = 'b'
	TypeInt8   Type = 'C'
	TypeUint8  Type = 'c'
	TypeInt16  Type = 'H'
	TypeUint16 Type = 'h'
	TypeInt32  Type = 'D'
	TypeUint32 Type = 'd'
	TypeInt64  Type = 'L'
	TypeUint64 Type = 'l'
	TypeDouble Type = 'F'
	TypeFloat  Type = 'f'
	TypeString Type = 's'

	// Frame markers. They carry no payload.
	TypeStart Type = '<'
	TypeEnd   Type = '>'
)

// scalarTypes lists every tag that carries a payload, in table order.
var scalarTypes = [...]Type{
	TypeBool,
	TypeInt8, TypeUint8,
	TypeInt16, TypeUint16,
	TypeInt32, TypeUint32,
	TypeInt64, TypeUint64,
	TypeDouble, TypeFloat,
	TypeString,
}

// ScalarTypes returns the payload-carrying tags.
func ScalarTypes() []Type {
	out := make([]Type, len(scalarTypes))
	copy(out, scalarTypes[:])
	return out
}

// ParseType maps a wire byte to a payload-carrying tag.
// Frame markers and unknown bytes report false.
func ParseType(b byte) (Type, bool) {
	t := Type(b)
	return t, t.Valid()
}

// Valid reports whether t is a payload-carrying tag.
func (t Type) Valid() bool {
	return t.Width() != 0
}

// Width returns the payload size in bytes: -1 for strings (NUL terminated),
// 0 for frame markers and unknown bytes.
func (t Type) Width() int {
	switch t {
	case TypeBool, TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat:
		return 4
	case TypeInt64, TypeUint64, TypeDouble:
		return 8
	case TypeString:
		return -1
	default:
		return 0
	}
}

// Signed reports whether t is a signed integer tag.
func (t Type) Signed() bool {
	switch t {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return true
	}
	return false
}

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeUint16:
		return "uint16"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeDouble:
		return "float64"
	case TypeFloat:
		return "float32"
	case TypeString:
		return "string"
	case TypeStart:
		return "start"
	case TypeEnd:
		return "end"
	default:
		return "unknown"
	}
}
