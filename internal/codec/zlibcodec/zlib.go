// Package zlibcodec provides the zlib container codec: a two-byte
// header and an Adler-32 trailer around the DEFLATE payload.
package zlibcodec

import (
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/flatecat/flatecat/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements the zlib container format.
type Codec struct {
	level int
}

// New returns a zlib codec compressing at the given level.
// The level only affects the writer side.
func New(level int) *Codec {
	return &Codec{level: level}
}

// Reader wraps r to decompress one zlib member.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

// Writer wraps w to compress data into one zlib member.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriterLevel(w, c.level)
}

// Extension returns "zz".
func (c *Codec) Extension() string {
	return "zz"
}
