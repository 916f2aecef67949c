package bundle

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Execute is the entry point for the bundle package. It loads the
// optional config file from the working directory and runs the bundler
// once with the given arguments.
func Execute(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := LoadConfig(ConfigFile)
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := Run(cfg, args, logger); err != nil {
		logger.Error("Failed to execute bundle process", zap.Error(err))
		return fmt.Errorf("bundle execution failed: %w", err)
	}
	return nil
}

// Run performs one bundling pass: scan the root, append the entry
// point if any, and write the prelude followed by each contributing
// file's surviving lines to the output. Files are processed strictly
// in order, one at a time; the first error aborts the run and may
// leave the output partially written.
func Run(cfg Config, args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting bundle process",
		zap.String("scanRoot", cfg.ScanRoot),
		zap.String("output", cfg.Output))

	files, err := ContributingSet(cfg, args, logger)
	if err != nil {
		return err
	}

	matcher := NewSegmentMatcher(cfg.SkipSegments, logger)

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", cfg.Output), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.Output), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(RenderPrelude(cfg.Prelude)); err != nil {
		logger.Error("Failed to write prelude", zap.String("file", cfg.Output), zap.Error(err))
		return fmt.Errorf("failed to write prelude: %w", err)
	}

	bundled := 0
	for _, file := range files {
		if matcher.MatchesPath(file) {
			logger.Debug("Skipping excluded path", zap.String("filePath", file))
			continue
		}

		content, err := ProcessSingleFile(file, cfg, logger)
		if err != nil {
			return err
		}

		if _, err := writer.WriteString(content.Content); err != nil {
			logger.Error("Failed to write content to output file",
				zap.String("file", cfg.Output),
				zap.String("contentPath", content.Path),
				zap.Error(err))
			return fmt.Errorf("failed to write content: %w", err)
		}
		bundled++
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", cfg.Output), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Info("Successfully bundled files",
		zap.String("outputFile", cfg.Output),
		zap.Int("totalFiles", bundled),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// ContributingSet returns the candidate file set for a run: the files
// under the scan root in walk order, with the entry point, if any,
// appended last. The entry point must exist. Skip rules are applied
// later, per file, not here.
func ContributingSet(cfg Config, args Arguments, logger *zap.Logger) ([]string, error) {
	files, err := CollectFiles(cfg.ScanRoot, logger)
	if err != nil {
		return nil, err
	}

	if args.Entry != "" {
		if _, err := os.Stat(args.Entry); err != nil {
			logger.Error("Entry point is not accessible", zap.String("entry", args.Entry), zap.Error(err))
			return nil, fmt.Errorf("entry point %s: %w", args.Entry, err)
		}
		files = append(files, args.Entry)
		logger.Debug("Appended entry point", zap.String("entry", args.Entry))
	}

	return files, nil
}
