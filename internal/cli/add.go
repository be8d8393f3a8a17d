package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/p/internal/engine"
)

var addCmd = &cobra.Command{
	Use:   "add [alias] [path...]",
	Short: "Save an alias",
	Long: `Save an alias for a path. Remaining arguments after the alias are joined
with single spaces to form the path. With fewer than two arguments the alias
and path are prompted for.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pr := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

		var alias, path string
		if len(args) >= 2 {
			alias = args[0]
			path = strings.Join(args[1:], " ")
		} else {
			in := bufio.NewReader(cmd.InOrStdin())
			alias = prompt(pr, in, "Enter alias name: ")
			path = prompt(pr, in, "Enter full path: ")
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.engine.Add(engine.AddRequest{Alias: alias, Path: path})
		if errors.Is(err, engine.ErrValidation) {
			pr.Error("Alias and path cannot be empty.")
			return nil
		}
		if err != nil {
			return err
		}

		pr.Success(fmt.Sprintf(`Saved alias "%s" -> "%s"`, res.Alias, res.Path))
		return nil
	},
}

// prompt asks for one line of input and returns it trimmed. End of input
// yields whatever was read so far.
func prompt(pr *Printer, in *bufio.Reader, msg string) string {
	pr.Prompt(msg)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(line)
}
