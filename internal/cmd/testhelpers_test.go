package cmd

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// fakeLauncher stands in for the external editor. When contents is set it
// overwrites the file it is given.
type fakeLauncher struct {
	contents string
	err      error
	opened   []string
}

func (f *fakeLauncher) Run(ctx context.Context, path string) error {
	f.opened = append(f.opened, path)
	if f.err != nil {
		return f.err
	}
	if f.contents != "" {
		return os.WriteFile(path, []byte(f.contents), 0644)
	}
	return nil
}

// harness runs commands against a temp project root and home directory.
// A nil launcher leaves editor resolution to the configured program.
type harness struct {
	t        *testing.T
	root     string
	home     string
	launcher *fakeLauncher
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	return &harness{
		t:        t,
		root:     t.TempDir(),
		home:     t.TempDir(),
		launcher: &fakeLauncher{},
	}
}

// write creates a file under the project root, making parent directories.
func (h *harness) write(rel, content string) string {
	h.t.Helper()
	path := filepath.Join(h.root, rel)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (h *harness) mkdir(rel string) string {
	h.t.Helper()
	path := filepath.Join(h.root, rel)
	require.NoError(h.t, os.MkdirAll(path, 0755))
	return path
}

func (h *harness) read(path string) string {
	h.t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(h.t, err)
	return string(data)
}

// run executes the root command with args, feeding answers (one per line)
// to the prompter. It returns stdout and the log output separately.
func (h *harness) run(answers []string, args ...string) (string, string, error) {
	h.t.Helper()

	input := ""
	if len(answers) > 0 {
		input = strings.Join(answers, "\n") + "\n"
	}

	opts := &Options{
		Reader: bufio.NewReader(strings.NewReader(input)),
		Home:   h.home,
	}
	if h.launcher != nil {
		opts.Launcher = h.launcher
	}
	root := NewRootCommandWithOptions(opts)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(append(args, "--root", h.root))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

// skipUnlessPermissionsEnforced skips tests that rely on permission bits.
func skipUnlessPermissionsEnforced(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
}
