package bundle

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectFiles walks root recursively and returns every regular file,
// in walk order. Any traversal error, including a missing root, aborts
// the collection.
func CollectFiles(root string, logger *zap.Logger) ([]string, error) {
	logger.Debug("Starting file collection", zap.String("root", root))

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			logger.Debug("Skipping non-regular file", zap.String("path", path))
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		logger.Error("File collection failed", zap.String("root", root), zap.Error(err))
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	logger.Debug("Completed file collection", zap.String("root", root), zap.Int("fileCount", len(files)))
	return files, nil
}
