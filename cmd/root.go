package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all subcommands; set by Execute.
var logger *zap.Logger

// debug enables development-style logging output. The value is read
// from the raw arguments in main, before cobra parses flags, so the
// logger exists for the whole command lifetime.
var debug bool

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "rsbundle",
	Short: "rsbundle bundles a Rust contest library into one file",
	Long: `rsbundle concatenates the source files of a Rust competitive-programming
library into a single self-contained file suitable for judge submission,
stripping use/mod/doc-comment lines and everything under #[cfg(test)].`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
