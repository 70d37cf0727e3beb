package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/filechecker/internal/display"
	"github.com/harrison/filechecker/internal/fileops"
	"github.com/harrison/filechecker/internal/history"
	"github.com/harrison/filechecker/internal/models"
	"github.com/spf13/cobra"
)

const (
	checkKeyword = "🔍 Search keyword"
	checkView    = "📄 View full file"
	checkEdit    = "✏️  Edit a line"
	checkOutline = "📑 Show outline"
	checkExit    = "❌ Exit"
)

// NewCheckCommand creates the 'filechecker check' command
func NewCheckCommand(opts *Options) *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find a file by name and inspect it",
		Long: `Search the project tree for files named exactly <name>, pick one, then
search it for a keyword, view it, edit a line or (for Markdown) list its headings.

Examples:
  filechecker check
  filechecker check --file config.yaml
  filechecker check -f README.md --root ./docs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.finish(runCheck(app, fileName))
		},
	}

	cmd.Flags().StringVarP(&fileName, "file", "f", "", "File name to check")

	return cmd
}

// runCheck searches for fileName (prompting when empty) and runs the
// inspection menu on the selected match.
func runCheck(app *App, fileName string) error {
	fileName, err := app.resolveName(fileName, "Enter file name to search for:", "file name")
	if err != nil {
		return err
	}

	matches, err := app.search("check", fileName, models.SearchFiles)
	if err != nil || matches == nil {
		return err
	}

	selected, err := app.selectMatch("Select a file to read its content:", matches)
	if err != nil {
		return err
	}

	return inspectFile(app, selected)
}

// inspectFile loops over the post-selection menu until the user exits.
func inspectFile(app *App, path string) error {
	content, err := fileops.ReadText(path)
	if err != nil {
		return err
	}

	choices := []string{checkKeyword, checkView, checkEdit}
	if display.IsMarkdown(path) {
		choices = append(choices, checkOutline)
	}
	choices = append(choices, checkExit)

	for {
		idx, err := app.Prompt.Select("What do you want to do?", choices)
		if err != nil {
			return err
		}

		switch choices[idx] {
		case checkExit:
			return nil

		case checkView:
			display.RenderFile(app.Out, content)
			app.record(&history.Entry{Command: "check", Action: "view", Path: path})

		case checkKeyword:
			if err := searchKeyword(app, path, content); err != nil {
				return err
			}

		case checkEdit:
			err := editInline(app, path)
			if errors.Is(err, models.ErrCancelled) {
				continue
			}
			if err != nil {
				return err
			}
			if content, err = fileops.ReadText(path); err != nil {
				return err
			}

		case checkOutline:
			headings := display.Outline([]byte(content))
			display.PrintOutline(app.Out, headings)
			app.record(&history.Entry{
				Command:    "check",
				Action:     "outline",
				Path:       path,
				MatchCount: len(headings),
			})
		}
	}
}

// searchKeyword highlights every case-insensitive occurrence of a keyword.
// A blank keyword only prints a warning.
func searchKeyword(app *App, path, content string) error {
	keyword, err := app.Prompt.Input("Enter keyword to search:")
	if err != nil {
		return err
	}
	if strings.TrimSpace(keyword) == "" {
		softColor.Fprintln(app.Out, "⚠️ No keyword entered.")
		return nil
	}

	highlighted, count := display.Highlight(content, keyword, nil)
	app.record(&history.Entry{
		Command:    "check",
		Action:     "keyword",
		Path:       path,
		Target:     keyword,
		MatchCount: count,
	})

	if count == 0 {
		softColor.Fprintf(app.Out, "⚠️ No matches for %q.\n", keyword)
		return nil
	}

	infoColor.Fprintf(app.Out, "\n🔍 Keyword Matches Highlighted Below (%d):\n\n", count)
	fmt.Fprintln(app.Out, highlighted)
	display.Rule(app.Out)
	return nil
}
