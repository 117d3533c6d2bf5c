// Package memsource provides an in-memory source opener for testing.
package memsource

import (
	"bytes"
	"sync"
	"time"

	"github.com/flatecat/flatecat/internal/source"
)

// Compile-time checks that the in-memory types implement the source
// interfaces.
var _ source.Opener = (*Opener)(nil)
var _ source.File = (*file)(nil)

// Opener is an in-memory opener for testing.
type Opener struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates an empty in-memory opener.
func New() *Opener {
	return &Opener{files: make(map[string][]byte)}
}

// SetFile sets the content for path (for test setup). The data is
// copied to prevent caller mutations from affecting the opener.
func (o *Opener) SetFile(path string, data []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	o.files[path] = copied
}

// Open returns a reader over the content registered for path.
func (o *Opener) Open(path string) (source.File, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	data, ok := o.files[path]
	if !ok {
		return nil, source.ErrNotFound
	}
	return &file{Reader: bytes.NewReader(data), name: path}, nil
}

type file struct {
	*bytes.Reader
	name string
}

func (f *file) Close() error { return nil }

func (f *file) Name() string { return f.name }

func (f *file) ModTime() time.Time { return time.Time{} }
