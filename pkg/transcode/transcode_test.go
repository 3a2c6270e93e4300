package transcode

import (
	"bytes"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/rawbytedev/tagwire"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

func sample(t *testing.T) []tagwire.Value {
	t.Helper()
	data, err := tagwire.Encode(true, int8(-1), uint8(1), int16(-2), uint16(2), int32(-3),
		uint32(3), int64(-4), uint64(4), float32(1.5), 2.5, "text")
	require.NoError(t, err)
	vals, err := tagwire.Decode(data)
	require.NoError(t, err)
	return vals
}

func TestToMsgpackKeepsWidths(t *testing.T) {
	out, err := ToMsgpack(sample(t))
	require.NoError(t, err)

	dec := msgpack.NewDecoder(bytes.NewReader(out))
	n, err := dec.DecodeArrayLen()
	require.NoError(t, err)
	require.Equal(t, 12, n)

	wantCodes := []byte{
		msgpcode.True, msgpcode.Int8, msgpcode.Uint8, msgpcode.Int16, msgpcode.Uint16,
		msgpcode.Int32, msgpcode.Uint32, msgpcode.Int64, msgpcode.Uint64,
		msgpcode.Float, msgpcode.Double,
	}
	for i, want := range wantCodes {
		code, err := dec.PeekCode()
		require.NoError(t, err)
		require.Equal(t, want, code, "element %d", i)
		_, err = dec.DecodeInterface()
		require.NoError(t, err)
	}
	s, err := dec.DecodeString()
	require.NoError(t, err)
	require.Equal(t, "text", s)
}

func TestToMsgpackValues(t *testing.T) {
	data, err := tagwire.Encode(int32(-70000), uint64(math.MaxUint64), "x")
	require.NoError(t, err)
	vals, err := tagwire.Decode(data)
	require.NoError(t, err)

	out, err := Convert(FormatMsgpack, vals)
	require.NoError(t, err)
	dec := msgpack.NewDecoder(bytes.NewReader(out))
	_, err = dec.DecodeArrayLen()
	require.NoError(t, err)
	i32, err := dec.DecodeInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-70000), i32)
	u64, err := dec.DecodeUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)
}

func TestToCBORPairs(t *testing.T) {
	out, err := Convert(FormatCBOR, sample(t))
	require.NoError(t, err)

	var pairs [][]any
	require.NoError(t, cbor.Unmarshal(out, &pairs))
	require.Len(t, pairs, 12)

	tags := ""
	for _, p := range pairs {
		require.Len(t, p, 2)
		tag, ok := p[0].(string)
		require.True(t, ok)
		tags += tag
	}
	require.Equal(t, "bCcHhDdLlfFs", tags)
	require.Equal(t, true, pairs[0][1])
	require.Equal(t, int64(-3), pairs[5][1])
	require.Equal(t, "text", pairs[11][1])
}

func TestToCBORKeepsNaNBits(t *testing.T) {
	data, err := tagwire.Encode(math.Float32frombits(0x7fc00123))
	require.NoError(t, err)
	vals, err := tagwire.Decode(data)
	require.NoError(t, err)

	out, err := ToCBOR(vals)
	require.NoError(t, err)
	require.True(t, bytes.Contains(out, []byte{0xfa, 0x7f, 0xc0, 0x01, 0x23}), "% x", out)
}

func TestConvertErrors(t *testing.T) {
	_, err := Convert("xml", nil)
	require.Error(t, err)

	_, err = ToMsgpack([]tagwire.Value{{}})
	require.ErrorIs(t, err, tagwire.ErrUnsupportedType)
	_, err = ToCBOR([]tagwire.Value{{}})
	require.ErrorIs(t, err, tagwire.ErrUnsupportedType)
}
