// Package source defines the byte-source interface the transcoder reads
// its named inputs through.
package source

import (
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when a named source does not exist.
var ErrNotFound = errors.New("source: not found")

// File is one named byte source.
type File interface {
	io.ReadCloser

	// Name returns the base name of the source, for container formats
	// that record it.
	Name() string

	// ModTime returns the source's modification time, or the zero
	// time when unknown.
	ModTime() time.Time
}

// Opener opens named byte sources.
// Implementations handle path resolution and storage details internally.
type Opener interface {
	Open(path string) (File, error)
}
