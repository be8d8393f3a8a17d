// Package cli implements the p command line.
//
// Flag parsing is disabled on every command: tokens such as -list, -e or /?
// are positional words, dispatched by hand in the order the tool has always
// used.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/p/internal/engine"
)

// rootCmd is the root command for p.
var rootCmd = &cobra.Command{
	Use:     "p [alias-or-query] [action]",
	Version: "dev",
	Short:   "Path alias manager",
	Long: `p maps short names to filesystem paths and prints, opens or deletes them.

When no alias matches exactly, the argument is used as a case-insensitive
search over alias names.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runRoot,
}

// SetVersion sets the version shown in the help header. Every other first
// argument, --version included, is an alias or query.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
}

func init() {
	rootCmd.SetHelpFunc(helpFunc)

	helpCmd := &cobra.Command{
		Use:                "help",
		Short:              "Show usage",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.AddCommand(addCmd)
}

// isHelpToken reports whether arg asks for usage.
func isHelpToken(arg string) bool {
	switch arg {
	case "help", "-help", "--help", "/?":
		return true
	}
	return false
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || isHelpToken(args[0]) {
		return cmd.Help()
	}

	if strings.ToLower(args[0]) == "-list" {
		return runList(cmd)
	}

	action := engine.NoAction
	if len(args) > 1 {
		action = engine.ParseAction(args[1])
	}
	return runResolve(cmd, args[0], action)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
