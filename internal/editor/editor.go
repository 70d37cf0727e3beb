// Package editor launches an external text editor, either on an existing
// file or on a temp file whose contents are read back afterwards.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultProgram is used when neither config nor $EDITOR names an editor.
const DefaultProgram = "vi"

// Launcher opens path in an editor and blocks until the editor exits.
type Launcher interface {
	Run(ctx context.Context, path string) error
}

// Editor runs Program attached to the given terminal streams.
type Editor struct {
	// Program is the command line, e.g. "vim" or "code --wait".
	Program string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns an Editor for program bound to the process's standard streams.
func New(program string) *Editor {
	return &Editor{
		Program: program,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// ResolveProgram picks the editor command: configured, then $EDITOR, then vi.
func ResolveProgram(configured string) string {
	if p := strings.TrimSpace(configured); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("EDITOR")); p != "" {
		return p
	}
	return DefaultProgram
}

// Available reports whether the first word of program resolves to an
// executable.
func Available(program string) bool {
	fields := strings.Fields(program)
	if len(fields) == 0 {
		return false
	}
	_, err := exec.LookPath(fields[0])
	return err == nil
}

// Run opens path in the editor and waits for it to exit.
func (e *Editor) Run(ctx context.Context, path string) error {
	fields := strings.Fields(e.Program)
	if len(fields) == 0 {
		return errors.New("no editor configured")
	}

	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor %q exited with code %d", fields[0], exitErr.ExitCode())
		}
		return fmt.Errorf("run editor %q: %w", fields[0], err)
	}
	return nil
}

// Capture writes initial to a temp file, opens it with l and returns the
// edited contents. The temp file is removed afterwards.
func Capture(ctx context.Context, l Launcher, initial string) (string, error) {
	tmpFile, err := os.CreateTemp("", "filechecker-edit-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(initial); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := l.Run(ctx, tmpPath); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return string(data), nil
}
