package flatecat

import (
	"errors"
	"fmt"

	"github.com/flatecat/flatecat/internal/codec"
	"github.com/flatecat/flatecat/internal/codec/flatecodec"
	"github.com/flatecat/flatecat/internal/codec/gzipcodec"
	"github.com/flatecat/flatecat/internal/codec/zlibcodec"
)

// Format identifies the container framing around the DEFLATE payload.
// All formats support both directions.
type Format int

const (
	// FormatZlib is the zlib container: a two-byte header and an
	// Adler-32 trailer.
	FormatZlib Format = iota

	// FormatDeflate is a bare DEFLATE stream with no framing.
	FormatDeflate

	// FormatGzip is the gzip container: a self-describing header with
	// name and mtime slots, and a CRC-32 trailer.
	FormatGzip
)

// ErrUnknownFormat indicates a format name or value outside the three
// supported containers.
var ErrUnknownFormat = errors.New("flatecat: unknown format")

// ParseFormat maps a format name to its Format value. Accepted aliases
// are "z" for zlib, "d" for deflate, and "g" or "gz" for gzip.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "zlib", "z":
		return FormatZlib, nil
	case "deflate", "d":
		return FormatDeflate, nil
	case "gzip", "gz", "g":
		return FormatGzip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatZlib:
		return "zlib"
	case FormatDeflate:
		return "deflate"
	case FormatGzip:
		return "gzip"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the conventional file extension for the format,
// without dot.
func (f Format) Extension() string {
	c, err := newCodec(f, DefaultLevel)
	if err != nil {
		return ""
	}
	return c.Extension()
}

// newCodec maps a format and compression level to its member codec.
// The level only affects the writer side; readers ignore it.
func newCodec(f Format, level int) (codec.Codec, error) {
	switch f {
	case FormatZlib:
		return zlibcodec.New(level), nil
	case FormatDeflate:
		return flatecodec.New(level), nil
	case FormatGzip:
		return gzipcodec.New(level), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}
