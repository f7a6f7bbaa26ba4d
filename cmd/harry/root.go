package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the harry CLI: a root command carrying the
// --verbose persistent flag (log level) and the compute subcommand.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "harry",
		Short: "Compute pairwise string-similarity/distance matrices",
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")

	root.AddCommand(newComputeCmd(&verbose))

	return root
}

// newLogger returns a zerolog.Logger writing to stderr, at debug level
// when verbose is set and info level otherwise.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger().
		Level(level)
}
