package engine

// AddRequest represents a request to store an alias.
type AddRequest struct {
	// Alias is the alias name; surrounding whitespace is ignored.
	Alias string

	// Path is the target path; environment references are expanded
	// before it is stored.
	Path string
}

// ResolveRequest represents a request to act on an alias or search for one.
type ResolveRequest struct {
	// Query is matched as an exact alias first, then as a fuzzy search
	// term when Action is ActionNone.
	Query string

	// Action selects what to do with the resolved path.
	Action Action
}
