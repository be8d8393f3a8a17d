// Package config resolves where p keeps its data and loads user settings.
//
// By default the data directory is the directory containing the p
// executable, so the alias file travels with the binary. The P_HOME
// environment variable overrides it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names inside the data directory.
const (
	StoreFile    = "p.json"
	SettingsFile = "p.toml"
	LogFile      = "p.log"
)

// HomeEnv overrides the data directory.
const HomeEnv = "P_HOME"

// Paths contains all the filesystem paths used by p.
type Paths struct {
	// Root is the data directory.
	Root string

	// Store is the alias backing file.
	Store string

	// Settings is the optional TOML settings file.
	Settings string

	// Log is the rotating debug log.
	Log string
}

// NewPaths returns the paths rooted at root.
func NewPaths(root string) *Paths {
	return &Paths{
		Root:     root,
		Store:    filepath.Join(root, StoreFile),
		Settings: filepath.Join(root, SettingsFile),
		Log:      filepath.Join(root, LogFile),
	}
}

// DefaultPaths returns the paths for this process: P_HOME if set, else the
// directory of the running executable with symlinks resolved.
func DefaultPaths() (*Paths, error) {
	if root := os.Getenv(HomeEnv); root != "" {
		return NewPaths(root), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return NewPaths(filepath.Dir(exe)), nil
}
