package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// GenerateTree renders the files under the scan root that would
// contribute to a bundle, as a connector-style tree. Paths excluded by
// the skip rules are omitted. The entry point, when present, is listed
// after the tree.
func GenerateTree(cfg Config, args Arguments, logger *zap.Logger) (string, error) {
	matcher := NewSegmentMatcher(cfg.SkipSegments, logger)

	var treeBuilder strings.Builder
	treeBuilder.WriteString(cfg.ScanRoot + "/\n")

	subtree, err := generateTreeRecursively(cfg.ScanRoot, matcher, "", logger)
	if err != nil {
		return "", err
	}
	if subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}

	if args.Entry != "" && !matcher.MatchesPath(args.Entry) {
		treeBuilder.WriteString(filepath.ToSlash(args.Entry) + "\n")
	}

	return treeBuilder.String(), nil
}

// generateTreeRecursively builds the tree structure for one directory.
func generateTreeRecursively(directory string, matcher SkipMatcher, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Error("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return "", fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	// Directories first, then files, alphabetically.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		entryPath := filepath.Join(directory, entry.Name())
		if entry.IsDir() {
			if matcher.MatchesPath(entryPath + "/") {
				logger.Debug("Skipping excluded directory in tree", zap.String("directory", entryPath))
				continue
			}
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree, err := generateTreeRecursively(entryPath, matcher, prefix+extension, logger)
			if err != nil {
				return "", err
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else if !matcher.MatchesPath(entryPath) {
			output = append(output, fmt.Sprintf("%s%s%s", prefix, connector, entry.Name()))
		}
	}

	return strings.Join(output, "\n"), nil
}
