package flatecat

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"zlib", FormatZlib},
		{"z", FormatZlib},
		{"deflate", FormatDeflate},
		{"d", FormatDeflate},
		{"gzip", FormatGzip},
		{"gz", FormatGzip},
		{"g", FormatGzip},
	}

	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("bzip2")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", "bzip2", err)
	}
}

func TestFormat_String(t *testing.T) {
	cases := []struct {
		format Format
		want   string
	}{
		{FormatZlib, "zlib"},
		{FormatDeflate, "deflate"},
		{FormatGzip, "gzip"},
	}

	for _, c := range cases {
		if got := c.format.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	cases := []struct {
		format Format
		want   string
	}{
		{FormatZlib, "zz"},
		{FormatDeflate, "deflate"},
		{FormatGzip, "gz"},
	}

	for _, c := range cases {
		if got := c.format.Extension(); got != c.want {
			t.Errorf("%v.Extension() = %q, want %q", c.format, got, c.want)
		}
	}
}
