package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteAuthorCSV writes a one-column CSV with the given header and author ids
// into dir and returns its path.
func WriteAuthorCSV(t testing.TB, dir, header string, ids ...string) string {
	t.Helper()

	lines := append([]string{header}, ids...)
	return WriteFile(t, filepath.Join(dir, "authors.csv"), strings.Join(lines, "\n")+"\n")
}
