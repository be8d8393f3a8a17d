package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/p/internal/engine"
)

// Rule widths under section headers. The matches rule does not follow the
// query length.
const (
	listRule    = 14
	matchesRule = 21
)

// runList prints every alias.
func runList(cmd *cobra.Command) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	pr := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	entries := rt.engine.List()
	if len(entries) == 0 {
		pr.EmptyState("No aliases stored.")
		return nil
	}

	pr.Section("Stored Aliases", listRule)
	pr.Entries(entries, rt.settings.NameWidth)
	return nil
}

// runResolve handles `p <alias-or-query> [action]`.
func runResolve(cmd *cobra.Command, query string, action engine.Action) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	pr := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	res, err := rt.engine.Resolve(engine.ResolveRequest{Query: query, Action: action})
	switch {
	case errors.Is(err, engine.ErrNotFound):
		pr.Error(notFound(query))
		return nil
	case errors.Is(err, engine.ErrUnknownAction):
		pr.Error(fmt.Sprintf("Unknown action: %s", action.Raw))
		pr.Hint("Try: " + strings.Join(engine.KnownFlags, ", "))
		return nil
	case err != nil:
		return err
	}

	switch res.Kind {
	case engine.ResolvedPath:
		pr.Path(res.Path)
	case engine.ResolvedMatches:
		if len(res.Matches) == 0 {
			pr.Error(notFound(query))
			return nil
		}
		pr.Section(fmt.Sprintf(`Matches for "%s":`, query), matchesRule)
		pr.Entries(res.Matches, rt.settings.NameWidth)
	case engine.ResolvedDeleted:
		pr.Success(fmt.Sprintf(`Deleted alias "%s".`, res.Alias))
	case engine.ResolvedLaunched:
		// the launched program is the output
	}
	return nil
}

func notFound(alias string) string {
	return fmt.Sprintf(`Alias "%s" not found.`, alias)
}
