package wireframe

import (
	"io"
	"sync"

	"github.com/rawbytedev/tagwire"
)

// Writer writes frames to an underlying stream. It is safe for concurrent
// use; each frame is written with a single Write call.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
	enc tagwire.Encoder
	dec tagwire.Decoder
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame frames and writes payload, which must be one complete tagwire
// buffer.
func (w *Writer) WriteFrame(payload []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := checkPayload(&w.dec, payload); err != nil {
		return err
	}
	return w.flush(payload)
}

// WriteValues encodes args (see tagwire.Encoder.Append) into one frame.
func (w *Writer) WriteValues(args ...any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.enc.Reset()
	if err := w.enc.Append(args...); err != nil {
		return err
	}
	return w.flush(w.enc.Bytes())
}

func (w *Writer) flush(payload []byte) error {
	w.buf = AppendFrame(w.buf[:0], payload)
	_, err := w.w.Write(w.buf)
	return err
}
