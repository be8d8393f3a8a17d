package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/p/internal/config"
)

var sectionTitleColor = color.New(color.FgBlue, color.Bold)

var usageLines = [][2]string{
	{"p add", "interactive"},
	{"p add <alias> <path>", "non-interactive"},
	{"", ""},
	{"p <alias>", "print mapped path"},
	{"p <alias> -e", "open in file manager"},
	{"p <alias> -code", "open in editor"},
	{"p <alias> -t", "open a terminal there"},
	{"p <alias> -delete", "delete alias"},
	{"p <alias> --print-path", "print path only (for wrapper scripts)"},
	{"", ""},
	{"p -list", "list all aliases"},
	{"p <text>", "fuzzy search: list aliases containing <text>"},
}

var exampleLines = [][2]string{
	{"p add nvim-conf $HOME/.config/nvim", ""},
	{"p nvim-conf -e", ""},
	{"p vim", "fuzzy search (matches nvim-conf, etc.)"},
}

// helpFunc prints the usage text for any command.
func helpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	help.WriteString("\n")
	title := fmt.Sprintf("P - PATH ALIAS TOOL (%s)", cmd.Root().Version)
	help.WriteString(sectionTitleColor.Sprint(title))
	help.WriteString("\n")
	help.WriteString(strings.Repeat("-", len(title)))
	help.WriteString("\n\n")

	help.WriteString(cmd.Root().Long)
	help.WriteString("\n\n")

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	writeColumns(&help, usageLines)
	help.WriteString("\n")

	help.WriteString(sectionTitleColor.Sprint("Examples:"))
	help.WriteString("\n")
	writeColumns(&help, exampleLines)
	help.WriteString("\n")

	help.WriteString(sectionTitleColor.Sprint("Environment:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %-28s %s\n", config.HomeEnv, "data directory (default: next to the executable)")
	fmt.Fprintf(&help, "  %-28s %s\n", LogLevelEnv, "trace, debug, info, warn or error")
	help.WriteString("\n")

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func writeColumns(b *strings.Builder, lines [][2]string) {
	for _, l := range lines {
		switch {
		case l[0] == "":
			b.WriteString("\n")
		case l[1] == "":
			fmt.Fprintf(b, "  %s\n", l[0])
		default:
			fmt.Fprintf(b, "  %-28s # %s\n", l[0], l[1])
		}
	}
}
