package bundle

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// SkipMatcher decides whether a path is excluded from the bundle.
type SkipMatcher interface {
	MatchesPath(path string) bool
}

// SegmentMatcher excludes any path containing one of a set of literal
// segments, e.g. "/bin/". Matching is purely textual against the
// slash-normalized path.
type SegmentMatcher struct {
	segments []string
	logger   *zap.Logger
}

// NewSegmentMatcher builds a SegmentMatcher over the given segments.
func NewSegmentMatcher(segments []string, logger *zap.Logger) *SegmentMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SegmentMatcher{segments: segments, logger: logger}
}

// MatchesPath reports whether path contains any excluded segment.
func (m *SegmentMatcher) MatchesPath(path string) bool {
	normalized := filepath.ToSlash(path)
	for _, seg := range m.segments {
		if strings.Contains(normalized, seg) {
			m.logger.Debug("Path matches skip segment",
				zap.String("path", normalized),
				zap.String("segment", seg))
			return true
		}
	}
	return false
}
