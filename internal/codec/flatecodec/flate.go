// Package flatecodec provides the raw DEFLATE codec: a bare compressed
// payload with no header, trailer, or checksum.
package flatecodec

import (
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/flatecat/flatecat/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements the headerless raw DEFLATE format.
type Codec struct {
	level int
}

// New returns a raw DEFLATE codec compressing at the given level.
// The level only affects the writer side.
func New(level int) *Codec {
	return &Codec{level: level}
}

// Reader wraps r to decompress one raw DEFLATE stream. Malformed input
// surfaces as a read error, since there is no header to validate up
// front.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

// Writer wraps w to compress data into one raw DEFLATE stream.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, c.level)
}

// Extension returns "deflate".
func (c *Codec) Extension() string {
	return "deflate"
}
