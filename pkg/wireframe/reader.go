package wireframe

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/rawbytedev/tagwire"
)

// Reader reads frames written by a Writer. It is not safe for concurrent
// use.
type Reader struct {
	r   *bufio.Reader
	max int
	buf []byte
	dec tagwire.Decoder
}

// NewReader wraps r. Frames larger than maxSize bytes are rejected; a
// non-positive maxSize selects DefaultMaxFrameSize.
func NewReader(r io.Reader, maxSize int) *Reader {
	if maxSize <= 0 {
		maxSize = DefaultMaxFrameSize
	}
	return &Reader{r: bufio.NewReader(r), max: maxSize}
}

// ReadFrame returns the next payload. The slice is reused by the next call.
// A clean end of stream between frames is reported as io.EOF.
func (r *Reader) ReadFrame() ([]byte, error) {
	var head [2]byte
	if _, err := io.ReadFull(r.r, head[:]); err != nil {
		return nil, err
	}
	if head != magic {
		return nil, ErrBadMagic
	}
	size, err := binary.ReadUvarint(r.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFrameTooLarge, err)
	}
	if size > uint64(r.max) {
		return nil, ErrFrameTooLarge
	}
	n := int(size)
	if cap(r.buf) < n+crcSize {
		r.buf = make([]byte, n+crcSize)
	}
	r.buf = r.buf[:n+crcSize]
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	payload := r.buf[:n]
	if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(r.buf[n:]) {
		return nil, ErrChecksum
	}
	return payload, nil
}

// ReadValues reads the next frame and decodes its payload.
func (r *Reader) ReadValues() ([]tagwire.Value, error) {
	payload, err := r.ReadFrame()
	if err != nil {
		return nil, err
	}
	return checkPayload(&r.dec, payload)
}
