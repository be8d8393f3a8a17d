// Package engine provides the core operations of p.
//
// The engine sits between the CLI and the lower-level packages. Each
// operation loads the alias mapping fresh from the store, performs at most
// one mutation and one save, and returns a typed result. The engine never
// prints; rendering is the CLI's job.
//
// Key components:
//   - Engine: main orchestrator
//   - Action: closed set of things to do with a resolved alias
//   - List/Add/Resolve: the three operations behind the command line
package engine

import (
	"log/slog"

	"github.com/danieljhkim/p/internal/aliases"
	"github.com/danieljhkim/p/internal/envx"
	"github.com/danieljhkim/p/internal/launch"
	"github.com/danieljhkim/p/internal/logger"
)

// Engine orchestrates all p operations.
type Engine struct {
	store    aliases.Store
	launcher launch.Launcher
	expander envx.Expander
	logger   *slog.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	store aliases.Store,
	launcher launch.Launcher,
	expander envx.Expander,
	log *slog.Logger,
) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		store:    store,
		launcher: launcher,
		expander: expander,
		logger:   log,
	}
}

// StorePath returns the location of the backing file.
func (e *Engine) StorePath() string {
	return e.store.Path()
}
