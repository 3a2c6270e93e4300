package tagwire

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func benchArgs() []any {
	return []any{uint8(1), int8(2), uint16(16), int16(18), uint32(1586), int32(15262),
		uint64(1547544565), int64(15484565656), float32(12.13), 165.63, true, "azerty", "hello world"}
}

func BenchmarkEncoderZeroAllocs(b *testing.B) {
	e := NewEncoder(64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Reset()
		e.WriteInt8(1)
		e.WriteUint32(1586)
		e.WriteFloat64(165.63)
		e.WriteString("azerty")
	}
}

func BenchmarkEncode(b *testing.B) {
	args := benchArgs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(args...)
	}
}

func BenchmarkEncoderAppend(b *testing.B) {
	args := benchArgs()
	e := NewEncoder(128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Reset()
		_ = e.Append(args...)
	}
	b.SetBytes(int64(e.Len()))
}

func BenchmarkDecode(b *testing.B) {
	data, err := Encode(benchArgs()...)
	require.NoError(b, err)
	var d Decoder
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	var vals []Value
	for i := 0; i < b.N; i++ {
		vals, _ = d.Decode(data)
	}
	require.Len(b, vals, len(benchArgs()))
}

func BenchmarkRoundTrip(b *testing.B) {
	args := benchArgs()
	e := NewEncoder(128)
	var d Decoder
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Reset()
		_ = e.Append(args...)
		_, _ = d.Decode(e.Bytes())
	}
}

// Reference points for the same tuple in other self-describing formats.

func BenchmarkMarshalStruct(b *testing.B) {
	in := reading{ID: 15262, Seq: 1586, Temp: 12.13, Pressure: 165.63, Label: "azerty"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		data, err := Marshal(&in)
		require.NoError(b, err)
		var out reading
		require.NoError(b, Unmarshal(data, &out))
	}
}

func BenchmarkMsgpack(b *testing.B) {
	args := benchArgs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = msgpack.Marshal(args)
	}
}

func BenchmarkCBOR(b *testing.B) {
	args := benchArgs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = cbor.Marshal(args)
	}
}

func BenchmarkYaml(b *testing.B) {
	args := benchArgs()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(args)
	}
}
