package main

import (
	"log"
	"os"
	"slices"
	"strings"

	"rsbundle/cmd"
	"rsbundle/pkg/logging"
	"rsbundle/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// The logger must exist before cobra parses flags, so --debug is
	// detected from the raw arguments.
	debug := slices.Contains(os.Args[1:], "--debug")

	logger, err := logging.Setup(debug, "rsbundle", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		logger.Error("rsbundle execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger, ignoring the spurious sync errors
// that stderr reports when it is neither a terminal nor a regular file.
func syncLogger(logger interface{ Sync() error }) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
