// Package filesource implements a local filesystem source opener.
package filesource

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flatecat/flatecat/internal/source"
)

// Compile-time checks that the filesystem types implement the source
// interfaces.
var _ source.Opener = (*Opener)(nil)
var _ source.File = (*file)(nil)

// Opener opens local files for reading.
type Opener struct{}

// New returns a new filesystem opener.
func New() *Opener {
	return &Opener{}
}

// Open opens the file at path for reading.
func (o *Opener) Open(path string) (source.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, path)
		}
		return nil, err
	}

	// The mtime feeds the gzip header; a failed stat leaves it zero
	// rather than failing the open.
	var modTime time.Time
	if info, err := f.Stat(); err == nil {
		modTime = info.ModTime()
	}

	return &file{File: f, name: filepath.Base(path), modTime: modTime}, nil
}

// file is an open local file with its header metadata captured at open
// time.
type file struct {
	*os.File
	name    string
	modTime time.Time
}

// Name returns the file's base name.
func (f *file) Name() string { return f.name }

// ModTime returns the file's modification time at open.
func (f *file) ModTime() time.Time { return f.modTime }
