package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("defaults to executable directory", func(t *testing.T) {
		t.Setenv(HomeEnv, "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		exe, err := os.Executable()
		if err != nil {
			t.Fatalf("os.Executable failed: %v", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}

		if paths.Root != filepath.Dir(exe) {
			t.Errorf("Root = %s, want %s", paths.Root, filepath.Dir(exe))
		}
		if paths.Store != filepath.Join(paths.Root, "p.json") {
			t.Errorf("Store path incorrect: got %s", paths.Store)
		}
	})

	t.Run("respects P_HOME environment variable", func(t *testing.T) {
		customRoot := filepath.Join(t.TempDir(), "custom")
		t.Setenv(HomeEnv, customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Store != filepath.Join(customRoot, StoreFile) {
			t.Errorf("Store should be under custom root, got: %s", paths.Store)
		}
		if paths.Settings != filepath.Join(customRoot, SettingsFile) {
			t.Errorf("Settings should be under custom root, got: %s", paths.Settings)
		}
		if paths.Log != filepath.Join(customRoot, LogFile) {
			t.Errorf("Log should be under custom root, got: %s", paths.Log)
		}
	})
}
