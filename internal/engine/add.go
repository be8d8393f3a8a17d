package engine

import (
	"fmt"
	"strings"
)

// Add expands and stores an alias, replacing any previous value.
// Values are stored as given; callers trim prompted input themselves. An
// alias or path that is blank is rejected with ErrValidation and nothing is
// written.
func (e *Engine) Add(req AddRequest) (*AddResult, error) {
	alias := req.Alias
	if strings.TrimSpace(alias) == "" || strings.TrimSpace(req.Path) == "" {
		return nil, fmt.Errorf("%w: alias and path cannot be empty", ErrValidation)
	}

	path := e.expander.Expand(req.Path)

	m := e.store.Load()
	m.Set(alias, path)
	if err := e.store.Save(m); err != nil {
		return nil, fmt.Errorf("failed to save alias %q: %w", alias, err)
	}

	e.logger.Debug("alias saved", "alias", alias, "path", path)
	return &AddResult{Alias: alias, Path: path}, nil
}
