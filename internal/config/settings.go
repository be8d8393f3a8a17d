package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/danieljhkim/p/internal/logger"
)

// PathToken is replaced by the alias path in launcher command templates.
const PathToken = "{path}"

// DefaultNameWidth is the minimum width of the alias column in listings.
const DefaultNameWidth = 20

// Settings holds user preferences read from p.toml.
type Settings struct {
	// NameWidth is the minimum width of the alias column.
	NameWidth int `toml:"name_width"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// FileManager, Editor and Terminal are argv templates. PathToken is
	// substituted with the alias path; without it the path is appended.
	FileManager []string `toml:"file_manager"`
	Editor      []string `toml:"editor"`
	Terminal    []string `toml:"terminal"`
}

// DefaultSettings returns the settings for the current platform.
func DefaultSettings() *Settings {
	return DefaultSettingsFor(runtime.GOOS)
}

// DefaultSettingsFor returns the settings for the given GOOS value.
func DefaultSettingsFor(goos string) *Settings {
	s := &Settings{
		NameWidth: DefaultNameWidth,
		LogLevel:  "warn",
		Editor:    []string{"code", PathToken},
	}

	switch goos {
	case "windows":
		s.FileManager = []string{"explorer", PathToken}
		s.Terminal = []string{"cmd", "/C", "start", "cmd", "/K", `cd /d "` + PathToken + `"`}
	case "darwin":
		s.FileManager = []string{"open", PathToken}
		s.Terminal = []string{"open", "-a", "Terminal", PathToken}
	default:
		s.FileManager = []string{"xdg-open", PathToken}
		s.Terminal = []string{"x-terminal-emulator"}
	}

	return s
}

// LoadSettings reads settings from path. A missing file yields the
// defaults with no error. Fields left unset in the file keep their
// defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("validate settings: %w", err)
	}

	s.fillDefaults()
	return s, nil
}

// Validate checks that settings values are usable.
func (s *Settings) Validate() error {
	if s.LogLevel != "" {
		if _, ok := logger.ParseLevel(s.LogLevel); !ok {
			return fmt.Errorf("invalid log_level %q: must be trace, debug, info, warn, or error", s.LogLevel)
		}
	}
	if s.NameWidth < 0 {
		return fmt.Errorf("invalid name_width %d: must not be negative", s.NameWidth)
	}
	return nil
}

// fillDefaults restores defaults for fields explicitly set to empty values.
func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.NameWidth < 1 {
		s.NameWidth = def.NameWidth
	}
	if s.LogLevel == "" {
		s.LogLevel = def.LogLevel
	}
	if len(s.FileManager) == 0 {
		s.FileManager = def.FileManager
	}
	if len(s.Editor) == 0 {
		s.Editor = def.Editor
	}
	if len(s.Terminal) == 0 {
		s.Terminal = def.Terminal
	}
}
