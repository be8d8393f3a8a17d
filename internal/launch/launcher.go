// Package launch starts the external programs that open an alias path: a
// file manager, an editor, or a terminal.
//
// Launches are fire-and-forget. The child process is started and released;
// p never waits for it, never captures its output and never looks at its
// exit status.
package launch

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/danieljhkim/p/internal/config"
	"github.com/danieljhkim/p/internal/logger"
)

// Launcher opens a path in an external program.
type Launcher interface {
	OpenFileManager(path string) error
	OpenEditor(path string) error
	OpenTerminal(path string) error
}

// OSLauncher implements Launcher by starting OS processes built from the
// command templates in config.Settings.
type OSLauncher struct {
	settings *config.Settings
	logger   *slog.Logger

	// start is swapped out in tests.
	start func(cmd *exec.Cmd) error
}

// NewOSLauncher creates an OSLauncher. A nil settings uses platform defaults.
func NewOSLauncher(settings *config.Settings, log *slog.Logger) *OSLauncher {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OSLauncher{settings: settings, logger: log, start: startDetached}
}

// OpenFileManager opens path in the platform file manager.
func (l *OSLauncher) OpenFileManager(path string) error {
	return l.launch("file manager", Command(l.settings.FileManager, path, true), "")
}

// OpenEditor opens path in the configured editor.
func (l *OSLauncher) OpenEditor(path string) error {
	return l.launch("editor", Command(l.settings.Editor, path, true), "")
}

// OpenTerminal opens a new terminal whose working directory is path. The
// path is only passed as an argument if the template asks for it.
func (l *OSLauncher) OpenTerminal(path string) error {
	return l.launch("terminal", Command(l.settings.Terminal, path, false), path)
}

func (l *OSLauncher) launch(what string, argv []string, dir string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no %s command configured", what)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir

	l.logger.Debug("launching", "kind", what, "argv", strings.Join(argv, " "), "dir", dir)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s %q: %w", what, argv[0], err)
	}
	return nil
}

// Command expands a command template for path. Every occurrence of
// config.PathToken inside an argument is replaced. If no argument contains
// the token and appendPath is set, path is appended as the last argument.
func Command(template []string, path string, appendPath bool) []string {
	if len(template) == 0 {
		return nil
	}

	argv := make([]string, 0, len(template)+1)
	substituted := false
	for _, arg := range template {
		if strings.Contains(arg, config.PathToken) {
			arg = strings.ReplaceAll(arg, config.PathToken, path)
			substituted = true
		}
		argv = append(argv, arg)
	}
	if !substituted && appendPath {
		argv = append(argv, path)
	}
	return argv
}

// startDetached starts cmd and releases it so it outlives p.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
