package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "src", cfg.ScanRoot)
	assert.Equal(t, "integrated.rs", cfg.Output)
	assert.Equal(t, []string{
		"std::io::*",
		"std::collections::*",
		"std::cmp::*",
		"std::ops::*",
	}, cfg.Prelude)
	assert.Equal(t, []string{"use ", "mod ", "///"}, cfg.Blacklist)
	assert.Equal(t, "#[cfg(test)]", cfg.TestMarker)
	assert.Equal(t, []string{"/bin/"}, cfg.SkipSegments)
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsbundle.yaml")
	content := `
scanRoot: lib
output: bundle.rs
blacklist:
  - "extern "
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.ScanRoot)
	assert.Equal(t, "bundle.rs", cfg.Output)
	assert.Equal(t, []string{"extern "}, cfg.Blacklist)

	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().Prelude, cfg.Prelude)
	assert.Equal(t, DefaultConfig().TestMarker, cfg.TestMarker)
	assert.Equal(t, DefaultConfig().SkipSegments, cfg.SkipSegments)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsbundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scanRoot: [not: closed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
