package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the 'filechecker history' command
func NewHistoryCommand(opts *Options) *cobra.Command {
	var limit int
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear recorded searches, edits and deletes",
		Long: `Show the most recent operations recorded in the history database.

Examples:
  filechecker history
  filechecker history --limit 50
  filechecker history --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			if !cmd.Flags().Changed("limit") {
				limit = app.Config.History.Limit
			}
			return app.finish(runHistory(cmd, app, limit, clearAll))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 = all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all recorded history")

	return cmd
}

func runHistory(cmd *cobra.Command, app *App, limit int, clearAll bool) error {
	if limit < 0 {
		return fmt.Errorf("--limit must be >= 0, got %d", limit)
	}
	if app.Store == nil {
		softColor.Fprintln(app.Out, "History is disabled.")
		return nil
	}

	ctx := cmd.Context()

	if clearAll {
		fmt.Fprintf(app.Out, "WARNING: This will delete ALL history from %s.\n", app.Store.Path())
		ok, err := app.Prompt.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(app.Out, "Operation cancelled.")
			return nil
		}
		n, err := app.Store.Clear(ctx)
		if err != nil {
			return err
		}
		successColor.Fprintf(app.Out, "Deleted %d history entries.\n", n)
		return nil
	}

	entries, err := app.Store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(app.Out, "No history recorded yet.")
		return nil
	}

	fmt.Fprintf(app.Out, "%-19s  %-7s  %-13s  %-5s  %-20s  %s\n", "TIME", "COMMAND", "ACTION", "HITS", "TARGET", "PATH")
	for _, e := range entries {
		fmt.Fprintf(app.Out, "%-19s  %-7s  %-13s  %-5d  %-20s  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Command, e.Action, e.MatchCount, truncate(e.Target, 20), e.Path)
	}

	total, err := app.Store.Count(ctx)
	if err != nil {
		return err
	}
	if total > len(entries) {
		softColor.Fprintf(app.Out, "Showing %d of %d entries.\n", len(entries), total)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
