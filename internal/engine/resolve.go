package engine

import (
	"fmt"

	"github.com/danieljhkim/p/internal/aliases"
)

// Resolve looks up req.Query as an exact alias and applies req.Action.
//
// When the alias does not exist and no action was given, the query is used
// as a case-insensitive substring search instead. With an action, a missing
// alias is ErrNotFound.
func (e *Engine) Resolve(req ResolveRequest) (*ResolveResult, error) {
	m := e.store.Load()

	stored, ok := m.Lookup(req.Query)
	if !ok {
		if req.Action.Kind == ActionNone {
			matches := m.Search(req.Query)
			e.logger.Debug("fuzzy search", "query", req.Query, "matches", len(matches))
			return &ResolveResult{Kind: ResolvedMatches, Alias: req.Query, Action: req.Action, Matches: matches}, nil
		}
		return nil, fmt.Errorf("alias %q: %w", req.Query, ErrNotFound)
	}

	path := e.expander.Expand(stored)
	res := &ResolveResult{Alias: req.Query, Path: path, Action: req.Action}

	switch req.Action.Kind {
	case ActionNone, ActionPrintPath:
		res.Kind = ResolvedPath
		return res, nil

	case ActionOpenFileManager:
		return e.launched(res, e.launcher.OpenFileManager)

	case ActionOpenEditor:
		return e.launched(res, e.launcher.OpenEditor)

	case ActionOpenTerminal:
		return e.launched(res, e.launcher.OpenTerminal)

	case ActionDelete:
		if err := e.delete(m, req.Query); err != nil {
			return nil, err
		}
		res.Kind = ResolvedDeleted
		return res, nil

	case ActionUnknown:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, req.Action.Raw)

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownAction, req.Action.Kind)
	}
}

func (e *Engine) launched(res *ResolveResult, open func(string) error) (*ResolveResult, error) {
	if err := open(res.Path); err != nil {
		return nil, err
	}
	e.logger.Debug("launched", "alias", res.Alias, "action", res.Action.String(), "path", res.Path)
	res.Kind = ResolvedLaunched
	return res, nil
}

// delete removes alias from the mapping loaded for the lookup and persists
// the result. A key that is already gone is reported as not found.
func (e *Engine) delete(m aliases.Mapping, alias string) error {
	if !m.Delete(alias) {
		return fmt.Errorf("alias %q: %w", alias, ErrNotFound)
	}
	if err := e.store.Save(m); err != nil {
		return fmt.Errorf("failed to delete alias %q: %w", alias, err)
	}
	e.logger.Debug("alias deleted", "alias", alias)
	return nil
}
