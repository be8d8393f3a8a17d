package engine

import "github.com/danieljhkim/p/internal/aliases"

// List returns every stored alias ordered by case-insensitive name.
func (e *Engine) List() []aliases.Entry {
	return e.store.Load().Sorted()
}
