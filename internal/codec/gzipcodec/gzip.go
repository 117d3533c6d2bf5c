// Package gzipcodec provides the gzip container codec: a self-describing
// header with name and mtime slots, and a CRC-32 trailer.
package gzipcodec

import (
	"io"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/flatecat/flatecat/internal/codec"
)

// Compile-time checks that Codec implements the codec interfaces.
var _ codec.Codec = (*Codec)(nil)
var _ codec.HeaderWriter = (*Codec)(nil)

// Codec implements the gzip container format.
type Codec struct {
	level int
}

// New returns a gzip codec compressing at the given level.
// The level only affects the writer side.
func New(level int) *Codec {
	return &Codec{level: level}
}

// Reader wraps r to decompress gzip data. Multiple concatenated members
// are decoded back to back, matching gzip's multistream behavior.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Writer wraps w to compress data into one gzip member with an empty
// header.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, c.level)
}

// WriterWithHeader is Writer with the member header's name and mtime
// slots filled in.
func (c *Codec) WriterWithHeader(w io.Writer, name string, modTime time.Time) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, c.level)
	if err != nil {
		return nil, err
	}
	zw.Name = name
	zw.ModTime = modTime
	return zw, nil
}

// Extension returns "gz".
func (c *Codec) Extension() string {
	return "gz"
}
