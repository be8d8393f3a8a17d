package engine

import "strings"

// ActionKind enumerates what to do with a resolved alias.
type ActionKind int

const (
	// ActionNone means no flag was given: print the path, or fuzzy search
	// when the alias does not exist.
	ActionNone ActionKind = iota
	ActionPrintPath
	ActionOpenFileManager
	ActionOpenEditor
	ActionOpenTerminal
	ActionDelete
	ActionUnknown
)

// Action is a parsed action flag. Raw holds the normalised flag text and is
// only meaningful for ActionUnknown.
type Action struct {
	Kind ActionKind
	Raw  string
}

// Action flags accepted on the command line.
const (
	FlagFileManager = "-e"
	FlagEditor      = "-code"
	FlagTerminal    = "-t"
	FlagDelete      = "-delete"
	FlagPrintPath   = "--print-path"
)

// KnownFlags lists the recognised action flags in help order.
var KnownFlags = []string{FlagFileManager, FlagEditor, FlagTerminal, FlagDelete, FlagPrintPath}

// NoAction is the action used when no flag was given.
var NoAction = Action{Kind: ActionNone}

// ParseAction maps a flag to an Action, ignoring case.
func ParseAction(flag string) Action {
	f := strings.ToLower(flag)
	switch f {
	case FlagFileManager:
		return Action{Kind: ActionOpenFileManager}
	case FlagEditor:
		return Action{Kind: ActionOpenEditor}
	case FlagTerminal:
		return Action{Kind: ActionOpenTerminal}
	case FlagDelete:
		return Action{Kind: ActionDelete}
	case FlagPrintPath:
		return Action{Kind: ActionPrintPath}
	default:
		return Action{Kind: ActionUnknown, Raw: f}
	}
}

// String returns the flag for the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionNone:
		return ""
	case ActionPrintPath:
		return FlagPrintPath
	case ActionOpenFileManager:
		return FlagFileManager
	case ActionOpenEditor:
		return FlagEditor
	case ActionOpenTerminal:
		return FlagTerminal
	case ActionDelete:
		return FlagDelete
	default:
		return a.Raw
	}
}
