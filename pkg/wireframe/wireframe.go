// Package wireframe carries tagwire buffers over byte streams.
//
// A tagwire buffer has no length prefix, so a stream holding several of
// them needs outer framing. Each frame is laid out as
//
//	magic "TW" (2B) | payload length (uvarint) | payload | CRC-32 IEEE of payload (4B LE)
//
// and the payload is exactly one tagwire buffer.
package wireframe

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/rawbytedev/tagwire"
	"github.com/rawbytedev/tagwire/internal/common"
)

const (
	// DefaultMaxFrameSize bounds payloads when no limit is given.
	DefaultMaxFrameSize = 1 << 20
	crcSize             = 4
)

var magic = [2]byte{'T', 'W'}

var (
	ErrBadMagic      = errors.New("wireframe: bad magic")
	ErrFrameTooLarge = errors.New("wireframe: frame too large")
	ErrChecksum      = errors.New("wireframe: crc mismatch")
	ErrNotTagwire    = errors.New("wireframe: payload is not a single tagwire buffer")
)

// AppendFrame appends one frame holding payload to dst.
func AppendFrame(dst, payload []byte) []byte {
	dst = append(dst, magic[:]...)
	dst = common.WriteVarUint(dst, uint64(len(payload)))
	dst = append(dst, payload...)
	return binary.LittleEndian.AppendUint32(dst, crc32.ChecksumIEEE(payload))
}

// SplitFrame parses the frame at the front of data. payload aliases data.
// It returns io.EOF for empty input and io.ErrUnexpectedEOF when data ends
// inside a frame.
func SplitFrame(data []byte, maxSize int) (payload, rest []byte, err error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFrameSize
	}
	if len(data) == 0 {
		return nil, nil, io.EOF
	}
	if len(data) < len(magic) {
		return nil, nil, io.ErrUnexpectedEOF
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, nil, ErrBadMagic
	}
	size, n := common.ReadVarUint(data[len(magic):])
	switch {
	case n == 0:
		return nil, nil, io.ErrUnexpectedEOF
	case n < 0, size > uint64(maxSize):
		return nil, nil, ErrFrameTooLarge
	}
	start := len(magic) + n
	end := start + int(size)
	if len(data) < end+crcSize {
		return nil, nil, io.ErrUnexpectedEOF
	}
	payload = data[start:end]
	if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(data[end:]) {
		return nil, nil, ErrChecksum
	}
	return payload, data[end+crcSize:], nil
}

// checkPayload verifies payload is exactly one well-formed tagwire buffer.
func checkPayload(d *tagwire.Decoder, payload []byte) ([]tagwire.Value, error) {
	vals, err := d.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotTagwire, err)
	}
	if d.Offset() != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrNotTagwire, len(payload)-d.Offset())
	}
	return vals, nil
}
