package logger

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linePattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[(TRACE|DEBUG|INFO|WARN|ERROR)\] .*$`)

func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	cl := NewConsoleLogger(buf, "trace")

	cl.LogTrace("t")
	cl.LogDebug("d")
	cl.LogInfo("i")
	cl.LogWarn("cannot read: /root/secret")
	cl.LogError("e")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Regexp(t, linePattern, line)
	}
	assert.Contains(t, lines[3], "[WARN] cannot read: /root/secret")
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "trace")
	assert.NotPanics(t, func() { cl.LogError("nowhere") })
}

func TestConsoleLoggerLevel(t *testing.T) {
	assert.Equal(t, "info", NewConsoleLogger(nil, "bogus").Level())
	assert.Equal(t, "debug", NewConsoleLogger(nil, "DEBUG").Level())
}

func TestConsoleLoggerNoColorForBuffers(t *testing.T) {
	buf := &bytes.Buffer{}
	cl := NewConsoleLogger(buf, "info")
	cl.LogWarn("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestIsTerminalRespectsNoColor(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	color.NoColor = true
	assert.False(t, isTerminal(os.Stderr))

	color.NoColor = false
	assert.True(t, isTerminal(os.Stderr))
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(nil))
}

func TestFormatWithColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	cl := &ConsoleLogger{logLevel: "info", colorOutput: true}
	out := cl.formatWithColor("12:00:00", "ERROR", "boom")

	assert.True(t, strings.HasPrefix(out, "[12:00:00] ["))
	assert.Contains(t, out, "\x1b[31m")
	assert.True(t, strings.HasSuffix(out, "] boom\n"))
}

func TestConsoleLoggerConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	cl := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cl.LogInfo("concurrent")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "concurrent\n"))
}
