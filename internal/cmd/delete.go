package cmd

import (
	"fmt"

	"github.com/harrison/filechecker/internal/display"
	"github.com/harrison/filechecker/internal/fileops"
	"github.com/harrison/filechecker/internal/history"
	"github.com/harrison/filechecker/internal/models"
	"github.com/spf13/cobra"
)

const (
	deleteFileChoice   = "📄 File"
	deleteFolderChoice = "📁 Folder"
	deleteCancelChoice = "❌ Cancel"
)

// NewDeleteCommand creates the 'filechecker delete' command
func NewDeleteCommand(opts *Options) *cobra.Command {
	var fileName string
	var folderName string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Find a file or folder by name and delete it",
		Long: `Search the project tree for a file or folder named exactly <name>, pick
one and delete it after confirmation. Folders are removed with everything
inside them.

Examples:
  filechecker delete
  filechecker delete --file old.log
  filechecker delete --folder build`,
		Args: func(cmd *cobra.Command, args []string) error {
			if fileName != "" && folderName != "" {
				return fmt.Errorf("cannot use --file and --folder together")
			}
			return cobra.NoArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			switch {
			case fileName != "":
				return app.finish(runDelete(app, models.SearchFiles, fileName))
			case folderName != "":
				return app.finish(runDelete(app, models.SearchFolders, folderName))
			}

			mode, err := promptDeleteKind(app)
			if err != nil {
				return app.finish(err)
			}
			return app.finish(runDelete(app, mode, ""))
		},
	}

	cmd.Flags().StringVarP(&fileName, "file", "f", "", "File name to delete")
	cmd.Flags().StringVarP(&folderName, "folder", "d", "", "Folder name to delete")

	return cmd
}

func promptDeleteKind(app *App) (models.SearchMode, error) {
	choices := []string{deleteFileChoice, deleteFolderChoice, deleteCancelChoice}
	idx, err := app.Prompt.Select("What do you want to delete?", choices)
	if err != nil {
		return 0, err
	}
	switch choices[idx] {
	case deleteFileChoice:
		return models.SearchFiles, nil
	case deleteFolderChoice:
		return models.SearchFolders, nil
	default:
		return 0, models.ErrCancelled
	}
}

// runDelete searches for name in the given mode, asks for confirmation and
// removes the selected match.
func runDelete(app *App, mode models.SearchMode, name string) error {
	kind := mode.String()
	name, err := app.resolveName(name, fmt.Sprintf("Enter %s name to delete:", kind), kind+" name")
	if err != nil {
		return err
	}

	matches, err := app.search("delete", name, mode)
	if err != nil || matches == nil {
		return err
	}

	path, err := app.selectMatch(fmt.Sprintf("Select the %s to delete:", kind), matches)
	if err != nil {
		return err
	}

	display.WarnDelete(kind, path).Display(app.Out)
	ok, err := app.Prompt.Confirm("Are you sure?")
	if err != nil {
		return err
	}
	if !ok {
		softColor.Fprintln(app.Out, "Deletion cancelled.")
		return nil
	}

	if mode == models.SearchFolders {
		err = fileops.DeleteTree(path)
	} else {
		err = fileops.DeleteFile(path)
	}
	if err != nil {
		return err
	}

	app.Log.LogInfo(fmt.Sprintf("deleted %s %s", kind, path))
	app.record(&history.Entry{Command: "delete", Action: kind, Path: path, Target: name})
	successColor.Fprintf(app.Out, "🗑️  Deleted %s\n", path)
	return nil
}
