package tagwire

import (
	"errors"
	"fmt"
	"reflect"
)

// Decode errors
var (
	ErrMissingStart   = errors.New("tagwire: missing start marker")
	ErrUnknownType    = errors.New("tagwire: unknown type tag")
	ErrTruncatedInput = errors.New("tagwire: unexpected end of input")
)

// Encode errors
var (
	ErrUnsupportedType = errors.New("tagwire: unsupported type")
)

// UnknownTypeError reports a byte found where a tag was expected.
type UnknownTypeError struct {
	Tag    byte
	Offset int // position of Tag in the input
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("tagwire: unknown type tag %q (0x%02x) at offset %d", rune(e.Tag), e.Tag, e.Offset)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// TruncatedInputError reports input that ended inside a record, or before
// the end marker.
type TruncatedInputError struct {
	Type   Type // record being read, TypeEnd when a tag byte was expected
	Offset int  // length of the input
	Need   int  // bytes still missing, -1 when a string terminator is missing
}

func (e *TruncatedInputError) Error() string {
	if e.Type == TypeEnd {
		return fmt.Sprintf("tagwire: unexpected end of input at offset %d: missing end marker", e.Offset)
	}
	if e.Need < 0 {
		return fmt.Sprintf("tagwire: unexpected end of input at offset %d: unterminated %s", e.Offset, e.Type)
	}
	return fmt.Sprintf("tagwire: unexpected end of input at offset %d: %s needs %d more bytes", e.Offset, e.Type, e.Need)
}

func (e *TruncatedInputError) Is(target error) bool { return target == ErrTruncatedInput }

// UnsupportedTypeError reports an argument or struct field with no tag.
type UnsupportedTypeError struct {
	Index  int // argument position, or field index for Marshal
	GoType reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tagwire: unsupported type %v for argument %d", e.GoType, e.Index)
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }
