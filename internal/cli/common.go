package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/danieljhkim/p/internal/aliases"
	"github.com/danieljhkim/p/internal/config"
	"github.com/danieljhkim/p/internal/engine"
	"github.com/danieljhkim/p/internal/envx"
	"github.com/danieljhkim/p/internal/fsops"
	"github.com/danieljhkim/p/internal/launch"
	"github.com/danieljhkim/p/internal/logger"
)

// LogLevelEnv overrides the log level from the settings file.
const LogLevelEnv = "P_LOG_LEVEL"

// runtimeEnv is everything a command needs for one invocation.
type runtimeEnv struct {
	engine   *engine.Engine
	settings *config.Settings
	closer   io.Closer
}

// Close flushes the log file.
func (r *runtimeEnv) Close() {
	if r.closer != nil {
		_ = r.closer.Close()
	}
}

// newRuntime builds the runtime for a command. Tests replace it.
var newRuntime = defaultRuntime

// defaultRuntime wires the real store, launcher and logger.
func defaultRuntime() (*runtimeEnv, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}

	settings, settingsErr := config.LoadSettings(paths.Settings)

	log, closer := logger.New(paths.Log, logLevel(settings))
	if settingsErr != nil {
		log.Warn("ignoring settings file", "path", paths.Settings, "error", settingsErr)
	}

	store := aliases.NewFileStore(fsops.NewRealFS(), paths.Store, log)
	launcher := launch.NewOSLauncher(settings, log)

	return &runtimeEnv{
		engine:   engine.New(store, launcher, envx.Host(), log),
		settings: settings,
		closer:   closer,
	}, nil
}

// logLevel picks P_LOG_LEVEL when valid, else the settings level.
func logLevel(settings *config.Settings) slog.Level {
	if lvl, ok := logger.ParseLevel(os.Getenv(LogLevelEnv)); ok {
		return lvl
	}
	lvl, _ := logger.ParseLevel(settings.LogLevel)
	return lvl
}
