package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file written
		wantErr bool
		check   func(t *testing.T, s *Settings)
	}{
		{
			name: "missing file yields defaults",
			check: func(t *testing.T, s *Settings) {
				t.Helper()
				if !reflect.DeepEqual(s, DefaultSettings()) {
					t.Errorf("settings = %+v, want defaults", s)
				}
			},
		},
		{
			name: "overrides applied",
			content: `
name_width = 12
log_level = "debug"
editor = ["nvim-qt", "{path}"]
terminal = ["alacritty", "--working-directory", "{path}"]
`,
			check: func(t *testing.T, s *Settings) {
				t.Helper()
				if s.NameWidth != 12 {
					t.Errorf("NameWidth = %d, want 12", s.NameWidth)
				}
				if s.LogLevel != "debug" {
					t.Errorf("LogLevel = %q, want debug", s.LogLevel)
				}
				if !reflect.DeepEqual(s.Editor, []string{"nvim-qt", "{path}"}) {
					t.Errorf("Editor = %v", s.Editor)
				}
				if !reflect.DeepEqual(s.Terminal, []string{"alacritty", "--working-directory", "{path}"}) {
					t.Errorf("Terminal = %v", s.Terminal)
				}
				if !reflect.DeepEqual(s.FileManager, DefaultSettings().FileManager) {
					t.Errorf("FileManager = %v, want default", s.FileManager)
				}
			},
		},
		{
			name:    "empty arrays and zero width fall back to defaults",
			content: "name_width = 0\neditor = []\n",
			check: func(t *testing.T, s *Settings) {
				t.Helper()
				if s.NameWidth != DefaultNameWidth {
					t.Errorf("NameWidth = %d, want %d", s.NameWidth, DefaultNameWidth)
				}
				if !reflect.DeepEqual(s.Editor, DefaultSettings().Editor) {
					t.Errorf("Editor = %v, want default", s.Editor)
				}
			},
		},
		{
			name:    "malformed toml",
			content: "name_width = [",
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: `name_width = "wide"`,
			wantErr: true,
		},
		{
			name:    "invalid log level",
			content: `log_level = "loud"`,
			wantErr: true,
		},
		{
			name:    "negative width",
			content: `name_width = -3`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), SettingsFile)
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed to write settings: %v", err)
				}
			}

			s, err := LoadSettings(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !reflect.DeepEqual(s, DefaultSettings()) {
					t.Errorf("settings on error = %+v, want defaults", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSettings() error = %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestDefaultSettingsFor(t *testing.T) {
	tests := []struct {
		goos        string
		fileManager string
		terminal    string
	}{
		{"windows", "explorer", "cmd"},
		{"darwin", "open", "open"},
		{"linux", "xdg-open", "x-terminal-emulator"},
		{"freebsd", "xdg-open", "x-terminal-emulator"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			s := DefaultSettingsFor(tt.goos)
			if s.FileManager[0] != tt.fileManager {
				t.Errorf("FileManager[0] = %q, want %q", s.FileManager[0], tt.fileManager)
			}
			if s.Terminal[0] != tt.terminal {
				t.Errorf("Terminal[0] = %q, want %q", s.Terminal[0], tt.terminal)
			}
			if s.Editor[0] != "code" {
				t.Errorf("Editor[0] = %q, want code", s.Editor[0])
			}
			if s.NameWidth != DefaultNameWidth {
				t.Errorf("NameWidth = %d, want %d", s.NameWidth, DefaultNameWidth)
			}
		})
	}
}
