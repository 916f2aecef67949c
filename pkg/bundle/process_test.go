package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gcd.rs")
	content := "use super::*;\n" +
		"/// Get GCD of a and b.\n" +
		"pub fn gcd(a: u64, b: u64) -> u64 {\n" +
		"    if b == 0 { a } else { gcd(b, a % b) }\n" +
		"}\n" +
		"#[cfg(test)]\n" +
		"mod tests {\n" +
		"    fn it_works() {}\n" +
		"}\n"
	writeFile(t, path, content)

	fc, err := ProcessSingleFile(path, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, path, fc.Path)
	assert.Equal(t,
		"pub fn gcd(a: u64, b: u64) -> u64 {\n"+
			"    if b == 0 { a } else { gcd(b, a % b) }\n"+
			"}\n",
		fc.Content)
}

func TestProcessSingleFileTruncatesBeforeFiltering(t *testing.T) {
	// The marker line itself contains no blacklisted substring, so only
	// truncation can remove it and what follows.
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	writeFile(t, path, "fn a() {}\n#[cfg(test)]\nfn hidden() {}\n")

	fc, err := ProcessSingleFile(path, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "fn a() {}\n", fc.Content)
}

func TestProcessSingleFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.rs")
	writeFile(t, path, "")

	fc, err := ProcessSingleFile(path, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "", fc.Content)
}

func TestProcessSingleFileMissing(t *testing.T) {
	_, err := ProcessSingleFile(filepath.Join(t.TempDir(), "absent.rs"), DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestProcessSingleFileInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.rs")
	require.NoError(t, os.WriteFile(path, []byte{'f', 'n', 0xff, 0xc0}, 0644))

	_, err := ProcessSingleFile(path, DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}
