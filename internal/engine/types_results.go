package engine

import "github.com/danieljhkim/p/internal/aliases"

// AddResult represents the result of storing an alias.
type AddResult struct {
	Alias string

	// Path is the path as stored, after expansion.
	Path string
}

// ResolveKind tells the caller which fields of ResolveResult are set.
type ResolveKind int

const (
	// ResolvedPath: Path holds the expanded path to print.
	ResolvedPath ResolveKind = iota
	// ResolvedMatches: no exact alias; Matches holds the fuzzy results,
	// possibly empty.
	ResolvedMatches
	// ResolvedLaunched: an external program was started for Path.
	ResolvedLaunched
	// ResolvedDeleted: Alias was removed.
	ResolvedDeleted
)

// ResolveResult represents the outcome of a ResolveRequest.
type ResolveResult struct {
	Kind    ResolveKind
	Alias   string
	Path    string
	Action  Action
	Matches []aliases.Entry
}
