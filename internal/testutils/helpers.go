package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates name inside a fresh temporary directory with the given
// content and returns its absolute path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}

// WriteLines is WriteFile for newline-terminated lines.
func WriteLines(t *testing.T, name string, lines ...string) string {
	t.Helper()
	if len(lines) == 0 {
		return WriteFile(t, name, "")
	}
	return WriteFile(t, name, strings.Join(lines, "\n")+"\n")
}

// ReadFile returns the content at path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
