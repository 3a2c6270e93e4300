// Package transcode exports decoded tagwire values to other
// self-describing formats without losing width or signedness.
package transcode

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/rawbytedev/tagwire"
	"github.com/vmihailenco/msgpack/v5"
)

// Format names accepted by Convert.
const (
	FormatMsgpack = "msgpack"
	FormatCBOR    = "cbor"
)

var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.EncOptions{
		NaNConvert: cbor.NaNConvertNone,
		InfConvert: cbor.InfConvertNone,
	}.EncMode()
	if err != nil {
		panic("transcode: cbor encoder initialization failed: " + err.Error())
	}
}

// Convert dispatches to ToMsgpack or ToCBOR by format name.
func Convert(format string, vals []tagwire.Value) ([]byte, error) {
	switch format {
	case FormatMsgpack:
		return ToMsgpack(vals)
	case FormatCBOR:
		return ToCBOR(vals)
	default:
		return nil, fmt.Errorf("transcode: unknown format %q", format)
	}
}

// ToMsgpack writes vals as one MessagePack array. Integers use the
// fixed-width codes (int8 as 0xd0, uint32 as 0xce, ...) and floats keep
// their precision, so the tag of every element can be recovered from its
// code.
func ToMsgpack(vals []tagwire.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(len(vals)); err != nil {
		return nil, err
	}
	for i, v := range vals {
		if err := encodeMsgpack(enc, v); err != nil {
			return nil, fmt.Errorf("transcode: element %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func encodeMsgpack(enc *msgpack.Encoder, v tagwire.Value) error {
	switch x := v.Interface().(type) {
	case bool:
		return enc.EncodeBool(x)
	case int8:
		return enc.EncodeInt8(x)
	case uint8:
		return enc.EncodeUint8(x)
	case int16:
		return enc.EncodeInt16(x)
	case uint16:
		return enc.EncodeUint16(x)
	case int32:
		return enc.EncodeInt32(x)
	case uint32:
		return enc.EncodeUint32(x)
	case int64:
		return enc.EncodeInt64(x)
	case uint64:
		return enc.EncodeUint64(x)
	case float32:
		return enc.EncodeFloat32(x)
	case float64:
		return enc.EncodeFloat64(x)
	case string:
		return enc.EncodeString(x)
	default:
		return tagwire.ErrUnsupportedType
	}
}

// ToCBOR writes vals as a CBOR array of [tag, value] pairs. CBOR always
// picks the shortest integer form, so the tag travels alongside as a
// one-character text string. NaN and infinities are written unchanged.
func ToCBOR(vals []tagwire.Value) ([]byte, error) {
	pairs := make([][2]any, len(vals))
	for i, v := range vals {
		if !v.Type().Valid() {
			return nil, fmt.Errorf("transcode: element %d: %w", i, tagwire.ErrUnsupportedType)
		}
		pairs[i] = [2]any{string(rune(v.Type())), v.Interface()}
	}
	return cborMode.Marshal(pairs)
}
