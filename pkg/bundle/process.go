package bundle

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ProcessSingleFile reads one file and returns its surviving content:
// everything before the first test-marker line, minus every line
// containing a blacklisted substring. Original line terminators are
// preserved. The file must be valid UTF-8.
func ProcessSingleFile(path string, cfg Config, logger *zap.Logger) (FileContent, error) {
	logger.Debug("Processing file", zap.String("filePath", path))

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return FileContent{}, fmt.Errorf("error reading file %s: %w", path, err)
	}

	if !utf8.Valid(fileBytes) {
		logger.Error("File is not valid UTF-8", zap.String("filePath", path))
		return FileContent{}, fmt.Errorf("file %s is not valid UTF-8", path)
	}

	lines := SplitLines(string(fileBytes))
	lines = TruncateAtMarker(lines, cfg.TestMarker)
	lines = FilterLines(lines, cfg.Blacklist)

	logger.Debug("Processed file",
		zap.String("filePath", path),
		zap.Int("survivingLines", len(lines)))

	return FileContent{
		Path:    path,
		Content: strings.Join(lines, ""),
	}, nil
}
