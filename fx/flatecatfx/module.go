// Package flatecatfx provides an fx module for a configured transcoder.
package flatecatfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/flatecat/flatecat"
	"github.com/flatecat/flatecat/internal/stats"
	"github.com/flatecat/flatecat/internal/stats/logger"
)

// Config holds configuration for the transcoder.
type Config struct {
	// Format is the container format name; short aliases are accepted
	// ("z", "d", "g", "gz").
	Format string

	// Level is the compression effort level, 1 to 9.
	// Zero means the default level.
	Level int

	// Decompress switches the transcoder to decompression.
	Decompress bool
}

// Module provides a *flatecat.Transcoder.
// Requires a Config and a *zap.Logger to be provided.
var Module = fx.Module("flatecat",
	fx.Provide(
		newStatsCollector,
		newTranscoder,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("flatecat.stats"))
}

// Params holds dependencies for creating the transcoder.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided transcoder.
type Result struct {
	fx.Out

	Transcoder *flatecat.Transcoder
}

func newTranscoder(p Params) (Result, error) {
	format, err := flatecat.ParseFormat(p.Config.Format)
	if err != nil {
		return Result{}, err
	}

	level := p.Config.Level
	if level == 0 {
		level = flatecat.DefaultLevel
	}

	opts := []flatecat.Option{
		flatecat.WithFormat(format),
		flatecat.WithLevel(level),
		flatecat.WithStats(p.Collector),
		flatecat.WithLogger(p.Logger.Named("flatecat")),
	}
	if p.Config.Decompress {
		opts = append(opts, flatecat.WithDecompress())
	}

	t, err := flatecat.New(opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{Transcoder: t}, nil
}
