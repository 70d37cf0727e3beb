package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/harrison/filechecker/internal/display"
	"github.com/harrison/filechecker/internal/history"
	"github.com/harrison/filechecker/internal/models"
	"github.com/harrison/filechecker/internal/textedit"
	"github.com/spf13/cobra"
)

const (
	editInlineChoice   = "✏️  Inline edit (single line)"
	editRangeChoice    = "📝 Multi-line edit (line range)"
	editAddRemove      = "➕ Add or remove a line"
	editExternalChoice = "🖊  Open in external editor"
	editCancel         = "❌ Cancel"

	lineAdd    = "➕ Add a line"
	lineRemove = "➖ Remove a line"
)

// NewEditCommand creates the 'filechecker edit' command
func NewEditCommand(opts *Options) *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Find a file by name and edit it line by line",
		Long: `Search the project tree for files named exactly <name>, pick one, then
replace a single line, replace a range of lines, add or remove a line, or open
the file in an external editor.

Line numbers are 1-based. Files are re-read from disk before every edit and
saved with LF line endings.

Examples:
  filechecker edit
  filechecker edit --file main.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.finish(runEdit(cmd.Context(), app, fileName))
		},
	}

	cmd.Flags().StringVarP(&fileName, "file", "f", "", "File name to edit")

	return cmd
}

// runEdit searches for the file, lets the user select it and dispatches to
// the chosen edit mode.
func runEdit(ctx context.Context, app *App, fileName string) error {
	fileName, err := app.resolveName(fileName, "Enter file name to edit:", "file name")
	if err != nil {
		return err
	}

	matches, err := app.search("edit", fileName, models.SearchFiles)
	if err != nil || matches == nil {
		return err
	}

	path, err := app.selectMatch("Select a file to edit:", matches)
	if err != nil {
		return err
	}

	choices := []string{editInlineChoice, editRangeChoice, editAddRemove, editExternalChoice, editCancel}
	idx, err := app.Prompt.Select("How do you want to edit the file?", choices)
	if err != nil {
		return err
	}

	switch choices[idx] {
	case editInlineChoice:
		return editInline(app, path)
	case editRangeChoice:
		return editRange(app, path)
	case editAddRemove:
		return editAddOrRemove(app, path)
	case editExternalChoice:
		return editExternal(ctx, app, path)
	default:
		return models.ErrCancelled
	}
}

// loadForEdit reads path fresh from disk and shows it with line numbers.
func loadForEdit(app *App, path string) (*textedit.Document, error) {
	doc, err := textedit.Load(path)
	if err != nil {
		return nil, err
	}
	if doc.HadCRLF() {
		display.WarnLineEndings(path).Display(app.Out)
	}
	display.Rule(app.Out)
	display.NumberedLines(app.Out, doc.Lines())
	display.Rule(app.Out)
	return doc, nil
}

func saveEdit(app *App, doc *textedit.Document, path, action, detail string) error {
	if err := doc.Save(path, app.Writer()); err != nil {
		return err
	}
	app.Log.LogInfo(fmt.Sprintf("%s: %s (%s)", action, path, detail))
	app.record(&history.Entry{Command: "edit", Action: action, Path: path, Detail: detail})
	successColor.Fprintf(app.Out, "✅ %s\n", detail)
	return nil
}

// editInline replaces one line with new content.
func editInline(app *App, path string) error {
	doc, err := loadForEdit(app, path)
	if err != nil {
		return err
	}

	n, err := promptLineNumber(app.Prompt, app.Out,
		fmt.Sprintf("Line number to replace (1-%d):", doc.LineCount()), doc.CheckLine)
	if err != nil {
		return err
	}

	current, _ := doc.Line(n)
	fmt.Fprintf(app.Out, "Current: %s\n", current)

	content, err := app.Prompt.Input(fmt.Sprintf("New content for line %d:", n))
	if err != nil {
		return err
	}
	if err := doc.ReplaceLine(n, content); err != nil {
		return err
	}

	return saveEdit(app, doc, path, "replace-line", fmt.Sprintf("Line %d updated.", n))
}

// editRange replaces an inclusive span of lines with lines collected from
// the user, which may be more or fewer than the span.
func editRange(app *App, path string) error {
	doc, err := loadForEdit(app, path)
	if err != nil {
		return err
	}

	start, err := promptLineNumber(app.Prompt, app.Out,
		fmt.Sprintf("Start line (1-%d):", doc.LineCount()), doc.CheckLine)
	if err != nil {
		return err
	}
	end, err := promptLineNumber(app.Prompt, app.Out,
		fmt.Sprintf("End line (%d-%d):", start, doc.LineCount()),
		func(v int) error { return doc.CheckRange(start, v) })
	if err != nil {
		return err
	}

	current := doc.Lines()[start-1 : end]
	newLines, err := app.Prompt.MultiLine(fmt.Sprintf("Replacement for lines %d-%d:", start, end), current)
	if err != nil {
		if errors.Is(err, models.ErrCancelled) {
			return err
		}
		app.Log.LogError(err.Error())
		failColor.Fprintf(app.Out, "❌ Editor failed: %v\n", err)
		return nil
	}
	if err := doc.ReplaceRange(start, end, newLines); err != nil {
		return err
	}

	return saveEdit(app, doc, path, "replace-range",
		fmt.Sprintf("Replaced lines %d-%d with %d line(s).", start, end, len(newLines)))
}

// editAddOrRemove inserts a line after a given line (0 inserts at the top)
// or removes one line.
func editAddOrRemove(app *App, path string) error {
	doc, err := loadForEdit(app, path)
	if err != nil {
		return err
	}

	choices := []string{lineAdd, lineRemove, editCancel}
	idx, err := app.Prompt.Select("Add or remove a line?", choices)
	if err != nil {
		return err
	}

	switch choices[idx] {
	case lineAdd:
		index, err := promptLineNumber(app.Prompt, app.Out,
			fmt.Sprintf("Insert after line (0 = top, %d = end):", doc.LineCount()), doc.CheckInsert)
		if err != nil {
			return err
		}
		content, err := app.Prompt.Input("Content of the new line:")
		if err != nil {
			return err
		}
		if err := doc.InsertLine(index, content); err != nil {
			return err
		}
		return saveEdit(app, doc, path, "insert-line", fmt.Sprintf("Line inserted at %d.", index+1))

	case lineRemove:
		n, err := promptLineNumber(app.Prompt, app.Out,
			fmt.Sprintf("Line number to remove (1-%d):", doc.LineCount()), doc.CheckLine)
		if err != nil {
			return err
		}
		if err := doc.RemoveLine(n); err != nil {
			return err
		}
		return saveEdit(app, doc, path, "remove-line", fmt.Sprintf("Line %d removed.", n))

	default:
		return models.ErrCancelled
	}
}

// editExternal hands the file to the external editor and waits for it.
func editExternal(ctx context.Context, app *App, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app.Log.LogDebug(fmt.Sprintf("opening %s in external editor", path))
	if err := app.Launcher.Run(ctx, path); err != nil {
		app.Log.LogError(err.Error())
		failColor.Fprintf(app.Out, "❌ Editor failed: %v\n", err)
		return nil
	}
	app.record(&history.Entry{Command: "edit", Action: "external", Path: path})
	successColor.Fprintln(app.Out, "✅ Editor closed.")
	return nil
}
