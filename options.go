package flatecat

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/flatecat/flatecat/internal/source"
	"github.com/flatecat/flatecat/internal/source/filesource"
	"github.com/flatecat/flatecat/internal/stats"
)

// Option configures a Transcoder.
type Option interface {
	apply(*options)
}

// options holds the transcoder configuration.
type options struct {
	format     Format
	level      int
	decompress bool
	opener     source.Opener
	stdin      io.Reader
	bufferSize int
	stats      stats.Collector
	logger     *zap.Logger
}

// defaultOptions returns the default configuration: zlib compression at
// the default level, reading named inputs from the local filesystem.
func defaultOptions() options {
	return options{
		format:     FormatZlib,
		level:      DefaultLevel,
		opener:     filesource.New(),
		stdin:      os.Stdin,
		bufferSize: defaultBufferSize,
		stats:      stats.NewNoop(),
		logger:     zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithFormat sets the container format.
// If not set, zlib is used.
func WithFormat(f Format) Option {
	return optionFunc(func(o *options) {
		o.format = f
	})
}

// WithLevel sets the compression effort level, from 1 (fastest) to 9
// (best). Default is DefaultLevel. The level is ignored when
// decompressing.
func WithLevel(level int) Option {
	return optionFunc(func(o *options) {
		o.level = level
	})
}

// WithDecompress switches the transcoder to decompression.
func WithDecompress() Option {
	return optionFunc(func(o *options) {
		o.decompress = true
	})
}

// WithOpener sets the opener used for named inputs.
// If not set, the local filesystem is used.
func WithOpener(op source.Opener) Option {
	return optionFunc(func(o *options) {
		o.opener = op
	})
}

// WithStdin sets the reader used when no named inputs are given.
// If not set, the process's standard input is used.
func WithStdin(r io.Reader) Option {
	return optionFunc(func(o *options) {
		o.stdin = r
	})
}

// WithBufferSize sets the chunk size for buffered source and sink I/O.
// It affects throughput only, never the produced bytes.
func WithBufferSize(n int) Option {
	return optionFunc(func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
