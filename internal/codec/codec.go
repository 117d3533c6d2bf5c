// Package codec provides member-level compression and decompression for
// the DEFLATE container formats.
package codec

import (
	"io"
	"time"
)

// Codec frames one member of a container format.
type Codec interface {
	// Reader wraps r to decompress one member read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it into one member.
	// Closing the returned writer finalizes the member's framing.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the conventional file extension without dot
	// (e.g., "gz", "zz").
	Extension() string
}

// HeaderWriter is implemented by codecs whose container header carries a
// source name and modification time.
type HeaderWriter interface {
	// WriterWithHeader is Writer with the member header's name and
	// mtime slots filled in. Zero values leave the slots empty.
	WriterWithHeader(w io.Writer, name string, modTime time.Time) (io.WriteCloser, error)
}
