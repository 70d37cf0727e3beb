package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

// makeTree creates files (and their parent directories) under root.
// Entries ending in "/" create empty directories.
func makeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("failed to create directory: %v", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(full, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
}

// lockDir removes all permissions from dir and restores them on cleanup.
// The test is skipped when permissions are not enforced (e.g. running as root).
func lockDir(t *testing.T, dir string) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks are not enforced for root")
	}
	if err := os.Chmod(dir, 0); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })
}
