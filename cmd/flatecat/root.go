package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flatecat/flatecat"
)

var rootCmd = newRootCmd()

// rootFlags holds the parsed command-line configuration.
type rootFlags struct {
	decompress bool
	mode       string
	level      int
	levelSet   [10]bool // index 1..9 mirrors -1..-9
	output     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "flatecat [flags] [FILE...]",
		Short: "Compress or decompress zlib, gzip, or raw DEFLATE data streams",
		Long: `Flatecat reads each FILE in order (or standard input when no FILE is
given) and writes one concatenated stream of compressed or decompressed
data to the output.

Every input becomes its own independently framed member, so compressing
two files produces two members back to back in a single output stream.
Decoders that stop at the first member will only recover the first
input's payload; that is a property of the formats, not of this tool.

Examples:
  # Compress a file to gzip at the best level
  flatecat --mode gzip -9 -o notes.gz notes.txt

  # Decompress zlib data from stdin to stdout
  flatecat -d < data.zz

  # Concatenate two files into one multi-member gzip stream
  flatecat -m gz -o both.gz a.txt b.txt`,
		Version:      "1.0.0",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&f.decompress, "decompress", "d", false, "decompress instead of compress")
	flags.StringVarP(&f.mode, "mode", "m", "zlib", "container format: zlib (z), deflate (d), or gzip (g, gz)")
	flags.IntVarP(&f.level, "compression-level", "l", flatecat.DefaultLevel, "compression level: from 1 (fastest) to 9 (best)")
	for i := 1; i <= 9; i++ {
		name := strconv.Itoa(i)
		flags.BoolVarP(&f.levelSet[i], name, name, false, "set compression level "+name)
	}
	flags.StringVarP(&f.output, "output", "o", "", "output file; when omitted, write to standard output")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose output")

	// Exactly one source of truth for the effort level, and none at
	// all when decompressing.
	exclusive := []string{"decompress", "compression-level"}
	for i := 1; i <= 9; i++ {
		exclusive = append(exclusive, strconv.Itoa(i))
	}
	cmd.MarkFlagsMutuallyExclusive(exclusive...)

	return cmd
}

// resolveLevel returns the effective compression level. Mutual exclusion
// of the level-selecting flags is enforced by cobra before this runs, so
// at most one of them is set here.
func (f *rootFlags) resolveLevel(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("compression-level") {
		if f.level < 1 || f.level > 9 {
			return 0, fmt.Errorf("invalid compression level %d: must be between 1 and 9", f.level)
		}
		return f.level, nil
	}
	for i := 1; i <= 9; i++ {
		if f.levelSet[i] {
			return i, nil
		}
	}
	return flatecat.DefaultLevel, nil
}

func (f *rootFlags) run(cmd *cobra.Command, args []string) error {
	format, err := flatecat.ParseFormat(f.mode)
	if err != nil {
		return err
	}

	level, err := f.resolveLevel(cmd)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if f.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	opts := []flatecat.Option{
		flatecat.WithFormat(format),
		flatecat.WithLevel(level),
		flatecat.WithStdin(cmd.InOrStdin()),
		flatecat.WithLogger(logger),
	}
	if f.decompress {
		opts = append(opts, flatecat.WithDecompress())
	}

	t, err := flatecat.New(opts...)
	if err != nil {
		return err
	}

	// Open the sink exactly once; every input's member lands in it.
	var out io.Writer = cmd.OutOrStdout()
	var outFile *os.File
	if f.output != "" {
		outFile, err = os.Create(f.output)
		if err != nil {
			return fmt.Errorf("opening output file %q: %w", f.output, err)
		}
		out = outFile
	}

	_, runErr := t.Run(out, args)

	if outFile != nil {
		if err := outFile.Close(); err != nil && runErr == nil {
			runErr = fmt.Errorf("closing output file %q: %w", f.output, err)
		}
	}

	return runErr
}
