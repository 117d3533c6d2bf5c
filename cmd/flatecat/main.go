// Package main provides the flatecat CLI, a stream transcoder for the
// zlib, raw deflate, and gzip container formats.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
