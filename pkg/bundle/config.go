package bundle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional override file looked up in the working
// directory. The command surface never exposes these settings.
const ConfigFile = "rsbundle.yaml"

// Config holds the settings for one bundling run.
type Config struct {
	ScanRoot     string   `yaml:"scanRoot"`     // Directory scanned recursively for source files
	Output       string   `yaml:"output"`       // Path of the bundled output file
	Prelude      []string `yaml:"prelude"`      // Import paths emitted as `use <item>;` before any content
	Blacklist    []string `yaml:"blacklist"`    // Lines containing any of these substrings are dropped
	TestMarker   string   `yaml:"testMarker"`   // Full-line sentinel; the line and everything after it is discarded
	SkipSegments []string `yaml:"skipSegments"` // Paths containing any of these segments contribute nothing
}

// Arguments holds the per-invocation inputs that come from the command
// line rather than the config file.
type Arguments struct {
	Entry string // Optional entry-point file appended after the scan
}

// DefaultConfig returns the built-in settings, matching the layout of a
// Rust contest library: sources under src/, solutions under examples/.
func DefaultConfig() Config {
	return Config{
		ScanRoot: "src",
		Output:   "integrated.rs",
		Prelude: []string{
			"std::io::*",
			"std::collections::*",
			"std::cmp::*",
			"std::ops::*",
		},
		Blacklist:    []string{"use ", "mod ", "///"},
		TestMarker:   "#[cfg(test)]",
		SkipSegments: []string{"/bin/"},
	}
}

// LoadConfig returns the defaults overlaid with any settings found in
// the YAML file at path. A missing file yields pure defaults; a file
// that exists but cannot be read or parsed is an error. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if overrides.ScanRoot != "" {
		cfg.ScanRoot = overrides.ScanRoot
	}
	if overrides.Output != "" {
		cfg.Output = overrides.Output
	}
	if len(overrides.Prelude) > 0 {
		cfg.Prelude = overrides.Prelude
	}
	if len(overrides.Blacklist) > 0 {
		cfg.Blacklist = overrides.Blacklist
	}
	if overrides.TestMarker != "" {
		cfg.TestMarker = overrides.TestMarker
	}
	if len(overrides.SkipSegments) > 0 {
		cfg.SkipSegments = overrides.SkipSegments
	}

	return cfg, nil
}

// FileContent holds the surviving content of one processed file.
type FileContent struct {
	Path    string // The file path the content came from
	Content string // The truncated, filtered content, terminators preserved
}
