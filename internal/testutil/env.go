// Package testutil provides utilities for testing dlx in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points dlx at throwaway directories for the duration of a
// test so tests never touch the user's real cache or configuration.
// Cleanup is handled by t.TempDir(). Returns the isolated cache root.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	cacheDir := filepath.Join(tmpDir, "cache")

	t.Setenv("DLX_CACHE_DIR", cacheDir)
	t.Setenv("DLX_LOG_LEVEL", "debug")
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	for _, dir := range []string{cacheDir, filepath.Join(tmpDir, "home")} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return cacheDir
}
