// Package flatecat transcodes byte streams between raw data and the
// three DEFLATE container formats: zlib, raw deflate, and gzip.
//
// Example usage:
//
//	t, err := flatecat.New(
//	    flatecat.WithFormat(flatecat.FormatGzip),
//	    flatecat.WithLevel(9),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := t.Run(os.Stdout, []string{"a.txt", "b.txt"}); err != nil {
//	    log.Fatal(err)
//	}
//
// Each input becomes one independently framed member; running several
// inputs produces a single multi-member output stream.
package flatecat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/flatecat/flatecat/internal/codec"
	"github.com/flatecat/flatecat/internal/source"
	"github.com/flatecat/flatecat/internal/stats"
)

// DefaultLevel is the compression effort used when no level is
// selected.
const DefaultLevel = 6

// defaultBufferSize is the chunk size for buffered source and sink I/O.
const defaultBufferSize = 64 * 1024

// ErrInvalidLevel indicates a compression level outside [1, 9].
var ErrInvalidLevel = errors.New("flatecat: compression level must be between 1 and 9")

// Transcoder compresses or decompresses byte streams in one container
// format. It holds no state between runs and may be reused.
type Transcoder struct {
	format     Format
	level      int
	codec      codec.Codec
	decompress bool
	opener     source.Opener
	stdin      io.Reader
	bufferSize int
	stats      stats.Collector
	logger     *zap.Logger
}

// New creates a new Transcoder with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Transcoder, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.level < 1 || cfg.level > 9 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, cfg.level)
	}

	c, err := newCodec(cfg.format, cfg.level)
	if err != nil {
		return nil, err
	}

	t := &Transcoder{
		format:     cfg.format,
		level:      cfg.level,
		codec:      c,
		decompress: cfg.decompress,
		opener:     cfg.opener,
		stdin:      cfg.stdin,
		bufferSize: cfg.bufferSize,
		stats:      cfg.stats,
		logger:     cfg.logger,
	}

	t.logger.Debug("transcoder initialized",
		zap.Stringer("format", t.format),
		zap.Int("level", t.level),
		zap.Bool("decompress", t.decompress),
	)

	return t, nil
}

// Format returns the container format this transcoder operates on.
func (t *Transcoder) Format() Format {
	return t.format
}

// Level returns the effective compression effort level.
func (t *Transcoder) Level() int {
	return t.level
}

// Run transcodes every path in order into dst and returns the total
// bytes written. With no paths it reads the implicit input instead.
//
// The output is one physical stream of independently framed members,
// not a single member over the concatenated inputs. Any open or
// transcode error aborts the remaining inputs; bytes already written
// for earlier inputs stay in dst.
func (t *Transcoder) Run(dst io.Writer, paths []string) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriterSize(dst, t.bufferSize)}

	runErr := t.run(cw, paths)

	// Flush even on failure so that members produced for earlier
	// inputs reach the sink.
	if err := cw.flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("flushing output: %w", err)
	}

	return cw.n, runErr
}

// Transcode runs a single member from src into dst and returns the
// bytes written. It is the programmatic equivalent of a run with one
// unnamed input.
func (t *Transcoder) Transcode(dst io.Writer, src io.Reader) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriterSize(dst, t.bufferSize)}

	err := t.transcodeMember(cw, src, "", time.Time{})
	if ferr := cw.flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flushing output: %w", ferr)
	}

	return cw.n, err
}

func (t *Transcoder) run(dst *countingWriter, paths []string) error {
	if len(paths) == 0 {
		return t.transcodeMember(dst, t.stdin, "", time.Time{})
	}

	for _, path := range paths {
		if err := t.transcodeFile(dst, path); err != nil {
			return err
		}
	}
	return nil
}

// transcodeFile opens one named input, appends its member to dst, and
// closes the source before the next input is touched.
func (t *Transcoder) transcodeFile(dst *countingWriter, path string) error {
	f, err := t.opener.Open(path)
	if err != nil {
		return fmt.Errorf("opening input file %q: %w", path, err)
	}
	defer f.Close()

	if err := t.transcodeMember(dst, f, f.Name(), f.ModTime()); err != nil {
		return fmt.Errorf("transcoding %q: %w", path, err)
	}
	return nil
}

// transcodeMember reads src to exhaustion and appends exactly one
// framed member (or its decoded payload) to dst.
func (t *Transcoder) transcodeMember(dst *countingWriter, src io.Reader, name string, modTime time.Time) error {
	start := time.Now()
	before := dst.n

	br := bufio.NewReaderSize(src, t.bufferSize)

	var read int64
	var err error
	if t.decompress {
		read, err = t.decode(dst, br)
	} else {
		read, err = t.encode(dst, br, name, modTime)
	}
	if err != nil {
		return err
	}

	written := dst.n - before
	t.stats.IncCounter(stats.MetricMembers, 1)
	t.stats.IncCounter(stats.MetricBytesRead, read)
	t.stats.IncCounter(stats.MetricBytesWritten, written)
	t.stats.ObserveHistogram(stats.MetricMemberSeconds, time.Since(start).Seconds())

	t.logger.Debug("member complete",
		zap.String("name", name),
		zap.Int64("bytesIn", read),
		zap.Int64("bytesOut", written),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// encode compresses src into one framed member, returning the bytes
// read from src.
func (t *Transcoder) encode(dst io.Writer, src io.Reader, name string, modTime time.Time) (int64, error) {
	w, err := t.memberWriter(dst, name, modTime)
	if err != nil {
		return 0, fmt.Errorf("creating compressor: %w", err)
	}

	n, err := io.Copy(w, src)
	if err != nil {
		w.Close()
		return n, err
	}

	// Close finalizes the member's trailer.
	if err := w.Close(); err != nil {
		return n, err
	}
	return n, nil
}

// memberWriter builds the compressing writer, filling the header's name
// and mtime slots when the format records them.
func (t *Transcoder) memberWriter(dst io.Writer, name string, modTime time.Time) (io.WriteCloser, error) {
	if hw, ok := t.codec.(codec.HeaderWriter); ok {
		return hw.WriterWithHeader(dst, name, modTime)
	}
	return t.codec.Writer(dst)
}

// decode decompresses one member from src, returning the compressed
// bytes consumed.
func (t *Transcoder) decode(dst io.Writer, src io.Reader) (int64, error) {
	cr := &countingReader{r: src}

	r, err := t.codec.Reader(cr)
	if err != nil {
		return cr.n, fmt.Errorf("creating decompressor: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		r.Close()
		return cr.n, err
	}
	if err := r.Close(); err != nil {
		return cr.n, err
	}
	return cr.n, nil
}

// countingWriter tracks total bytes written through the buffered sink.
type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countingWriter) flush() error { return c.w.Flush() }

// countingReader tracks total bytes read from a source.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
