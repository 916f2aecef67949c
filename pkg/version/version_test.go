package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()

	if v.Version == "" {
		t.Error("Version should not be empty")
	}
	if v.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
	if !strings.Contains(v.Platform, "/") {
		t.Errorf("Platform should be os/arch, got %q", v.Platform)
	}
}

func TestString(t *testing.T) {
	s := Get().String()

	if !strings.HasPrefix(s, "rsbundle version ") {
		t.Errorf("unexpected version string: %q", s)
	}
	if !strings.Contains(s, "commit:") {
		t.Errorf("version string missing commit: %q", s)
	}
}
