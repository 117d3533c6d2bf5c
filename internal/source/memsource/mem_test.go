package memsource

import (
	"errors"
	"io"
	"testing"

	"github.com/flatecat/flatecat/internal/source"
)

func TestOpener_Open(t *testing.T) {
	o := New()
	o.SetFile("input.txt", []byte("payload"))

	f, err := o.Open("input.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	if got := f.Name(); got != "input.txt" {
		t.Errorf("Name() = %q, want %q", got, "input.txt")
	}
	if !f.ModTime().IsZero() {
		t.Errorf("ModTime() = %v, want zero time", f.ModTime())
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

	_, err := o.Open("missing")
	if !errors.Is(err, source.ErrNotFound) {
		t.Errorf("Open() error = %v, want source.ErrNotFound", err)
	}
}

func TestOpener_SetFileCopiesData(t *testing.T) {
	o := New()
	data := []byte("original")
	o.SetFile("f", data)

	// Mutating the caller's slice must not affect stored content.
	data[0] = 'X'

	f, err := o.Open("f")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "original" {
		t.Errorf("content = %q, want %q", got, "original")
	}
}
