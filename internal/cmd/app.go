package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harrison/filechecker/internal/config"
	"github.com/harrison/filechecker/internal/display"
	"github.com/harrison/filechecker/internal/editor"
	"github.com/harrison/filechecker/internal/fileops"
	"github.com/harrison/filechecker/internal/fileutil"
	"github.com/harrison/filechecker/internal/history"
	"github.com/harrison/filechecker/internal/logger"
	"github.com/harrison/filechecker/internal/models"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	softColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgBlue)
)

// Options carries injectable collaborators. Zero values select the real
// terminal, editor and home directory.
type Options struct {
	// Reader supplies prompt answers; defaults to stdin
	Reader MenuReader
	// Launcher opens files in an external editor; defaults to the configured editor
	Launcher editor.Launcher
	// Home overrides the filechecker home directory
	Home string
}

// App holds the per-invocation state shared by all subcommands.
type App struct {
	Out       io.Writer
	Root      string
	Home      string
	Config    *config.Config
	Log       logger.Logger
	Prompt    Prompter
	Launcher  editor.Launcher
	Recorder  history.Recorder
	Store     *history.Store
	SessionID string

	closers []func() error
}

// newApp resolves the search root, loads configuration and wires the logger,
// history store and prompter for one command invocation.
func newApp(cmd *cobra.Command, opts *Options) (*App, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	home := opts.Home
	if home == "" {
		home, err = config.GetHome()
		if err != nil {
			return nil, err
		}
	}

	cfg, source, err := config.LoadConfigFromDir(root, home)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var logLevel *string
	var noColor *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		noColor = &v
	}
	cfg.MergeWithFlags(logLevel, noColor)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.ResolvePaths(home)

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	app := &App{
		Out:       cmd.OutOrStdout(),
		Root:      root,
		Home:      home,
		Config:    cfg,
		SessionID: uuid.NewString(),
		Recorder:  history.NopRecorder{},
	}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	app.Log = console
	if cfg.LogToFile {
		fileLog, err := logger.NewFileLoggerWithLevel(cfg.LogDir, console.Level())
		if err != nil {
			console.LogWarn(fmt.Sprintf("session log disabled: %v", err))
		} else {
			app.Log = logger.Fanout{console, fileLog}
			app.closers = append(app.closers, fileLog.Close)
		}
	}
	if source != "" {
		app.Log.LogDebug(fmt.Sprintf("loaded config from %s", source))
	}

	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History.DBPath)
		if err != nil {
			app.Log.LogWarn(fmt.Sprintf("history disabled: %v", err))
		} else {
			app.Store = store
			app.Recorder = store
			app.closers = append(app.closers, store.Close)
		}
	}

	reader := opts.Reader
	if reader == nil {
		reader = &DefaultMenuReader{reader: bufio.NewReader(cmd.InOrStdin())}
	}
	prompter := &ConsolePrompter{Out: app.Out, Reader: reader}
	app.Prompt = prompter

	// Without a usable editor, multi-line input falls back to reading lines
	// up to a lone ".".
	app.Launcher = opts.Launcher
	canCapture := app.Launcher != nil
	if app.Launcher == nil {
		program := editor.ResolveProgram(cfg.Editor)
		app.Launcher = editor.New(program)
		canCapture = editor.Available(program)
		if !canCapture {
			app.Log.LogDebug(fmt.Sprintf("editor %q not found, reading multi-line input from the terminal", program))
		}
	}
	if canCapture {
		prompter.Capture = func(initial string) (string, error) {
			return editor.Capture(cmd.Context(), app.Launcher, initial)
		}
	}

	return app, nil
}

// Close releases the history store and session log.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Writer returns the file writer configured by write.atomic and write.lock.
func (a *App) Writer() fileops.Writer {
	return fileops.Writer{Atomic: a.Config.Write.Atomic, Lock: a.Config.Write.Lock}
}

// search runs a name search under the root, logs traversal diagnostics and
// prints the match summary. It returns nil when nothing matched.
func (a *App) search(command, target string, mode models.SearchMode) (models.MatchSet, error) {
	start := time.Now()
	result, err := fileutil.Search(a.Root, target, mode, fileutil.SearchOptions{
		OnError: func(accessErr *models.AccessError) {
			a.Log.LogWarn(accessErr.Error())
		},
	})
	if err != nil {
		return nil, err
	}

	a.Log.LogDebug(fmt.Sprintf("searched %d entries under %s in %s (%d unreadable)",
		result.Visited, a.Root, logger.FormatDuration(time.Since(start)), len(result.Errors)))
	a.record(&history.Entry{
		Command:    command,
		Action:     "search",
		Target:     target,
		MatchCount: result.Matches.Len(),
	})

	if result.Matches.IsEmpty() {
		display.PrintNotFound(a.Out, target)
		return nil, nil
	}
	display.PrintMatches(a.Out, mode.String(), result.Matches)
	return result.Matches, nil
}

// selectMatch asks the user to pick one of matches.
func (a *App) selectMatch(message string, matches models.MatchSet) (string, error) {
	idx, err := a.Prompt.Select(message, display.MatchChoices(matches))
	if err != nil {
		return "", err
	}
	return matches[idx], nil
}

// promptName asks for a required name, printing the soft failure for blank input.
func (a *App) promptName(message, field string) (string, error) {
	name, err := a.Prompt.Input(message)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", a.emptyInput(field)
	}
	return name, nil
}

// resolveName returns the trimmed flag value, prompting with message when the
// flag was not given. A blank flag value fails the same way blank input does.
func (a *App) resolveName(flagValue, message, field string) (string, error) {
	if flagValue == "" {
		return a.promptName(message, field)
	}
	name := strings.TrimSpace(flagValue)
	if name == "" {
		return "", a.emptyInput(field)
	}
	return name, nil
}

func (a *App) emptyInput(field string) error {
	failColor.Fprintf(a.Out, "❌ No %s provided!\n", field)
	return &models.EmptyInputError{Field: field}
}

// record stores entry in history. Failures are logged, never returned.
func (a *App) record(entry *history.Entry) {
	entry.SessionID = a.SessionID
	if entry.Root == "" {
		entry.Root = a.Root
	}
	if err := a.Recorder.Record(context.Background(), entry); err != nil {
		a.Log.LogWarn(fmt.Sprintf("failed to record history: %v", err))
	}
}

// reportIOError prints a failed read, write or delete as a command-level
// message. The command then returns without further action.
func (a *App) reportIOError(err error) {
	a.Log.LogError(err.Error())
	failColor.Fprintf(a.Out, "❌ %v\n", err)
}

// finish maps the error a flow returned to the command result: cancellations
// and soft failures end the command normally, anything else is fatal.
func (a *App) finish(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrCancelled):
		softColor.Fprintln(a.Out, "Operation cancelled.")
		return nil
	case models.IsEmptyInput(err):
		return nil
	case models.IsIOError(err):
		a.reportIOError(err)
		return nil
	default:
		return err
	}
}
