// Package testutil provides utilities for testing maaget in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points maaget's directories and endpoint overrides at a
// per-test temp location so tests never touch a real installation or the
// public endpoints.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	t.Setenv("MAAGET_CONFIG_DIR", filepath.Join(tmpDir, "config"))
	t.Setenv("MAAGET_DATA_DIR", filepath.Join(tmpDir, "data"))

	// Point endpoint overrides at an unroutable host so an accidental
	// network call fails fast instead of hitting production.
	t.Setenv("MAA_API_URL", "http://127.0.0.1:0/api/")
	t.Setenv("MAA_CLI_API", "http://127.0.0.1:0/cli/")
	t.Setenv("MAA_CLI_DOWNLOAD", "http://127.0.0.1:0/download/")

	dirs := []string{
		filepath.Join(tmpDir, "config"),
		filepath.Join(tmpDir, "data"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return tmpDir
}
