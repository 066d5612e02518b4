package uart

import "io"

// Stream adapts an io.Reader into a Port. It is used for tests and
// simulated receivers where the frame stream comes from a pipe, file
// or in-memory buffer.
type Stream struct {
	r io.Reader
}

// NewStream wraps an io.Reader.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: r}
}

// ReadFrame implements Port.
func (s *Stream) ReadFrame(buf []byte) error {
	_, err := io.ReadFull(s.r, buf)
	return err
}

type buffered interface{ Buffered() int }
type sized interface{ Len() int }

// ResetRx implements Port. It discards bytes already buffered in the
// underlying reader when that can be determined (bufio.Reader,
// bytes.Buffer); otherwise it is a no-op, as a plain reader exposes no
// receive buffer.
func (s *Stream) ResetRx() error {
	var n int
	switch r := s.r.(type) {
	case buffered:
		n = r.Buffered()
	case sized:
		n = r.Len()
	}
	if n > 0 {
		_, err := io.CopyN(io.Discard, s.r, int64(n))
		return err
	}
	return nil
}

// Close implements io.Closer.
func (s *Stream) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
