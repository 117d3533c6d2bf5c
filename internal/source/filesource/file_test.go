package filesource

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/flatecat/flatecat/internal/source"
)

func TestOpener_Open(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("payload"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	o := New()
	f, err := o.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	// The name is the base name, not the full path.
	if got := f.Name(); got != "input.txt" {
		t.Errorf("Name() = %q, want %q", got, "input.txt")
	}
	if f.ModTime().IsZero() {
		t.Error("ModTime() is zero, want the file's mtime")
	}

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("content = %q, want %q", data, "payload")
	}
}

func TestOpener_OpenNotFound(t *testing.T) {
	o := New()

	_, err := o.Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, source.ErrNotFound) {
		t.Errorf("Open() error = %v, want source.ErrNotFound", err)
	}
}
