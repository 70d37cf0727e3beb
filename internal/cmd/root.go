package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for filechecker
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&Options{})
}

// NewRootCommandWithOptions builds the command tree with injected
// collaborators (prompt input, editor launcher, home directory).
func NewRootCommandWithOptions(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filechecker",
		Short: "Find, inspect, edit and delete files by exact name",
		Long: `filechecker searches a project tree for files or folders by exact name,
then lets you highlight keywords, view the file, edit it line by line or
delete it.

The search root is the current working directory unless --root is given.
Unreadable directories are skipped and reported as warnings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("log-level", "info", "Log verbosity (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("root", "", "Directory to search (default: current directory)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}
