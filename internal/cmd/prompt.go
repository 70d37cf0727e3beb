package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/filechecker/internal/models"
	"github.com/harrison/filechecker/internal/textedit"
)

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultMenuReader wraps bufio.Reader
type DefaultMenuReader struct {
	reader *bufio.Reader
}

func (d *DefaultMenuReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

// Prompter asks the user for input. Every method returns models.ErrCancelled
// when the user backs out or input ends.
type Prompter interface {
	Input(message string) (string, error)
	// Select returns the 0-based index of the chosen item
	Select(message string, choices []string) (int, error)
	Confirm(message string) (bool, error)
	// MultiLine collects replacement lines, pre-filled with initial where the
	// input method supports it
	MultiLine(message string, initial []string) ([]string, error)
}

// ConsolePrompter renders prompts to Out and reads answers line by line.
type ConsolePrompter struct {
	Out    io.Writer
	Reader MenuReader
	// Capture, when set, collects multi-line input through an external editor
	Capture func(initial string) (string, error)
}

var (
	questionColor = color.New(color.FgCyan, color.Bold)
	choiceColor   = color.New(color.FgYellow)
)

// readLine returns one line without its terminator. End of input with
// nothing read is a cancellation.
func (p *ConsolePrompter) readLine() (string, error) {
	line, err := p.Reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", models.ErrCancelled
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Input prints message and returns the raw answer. Leading whitespace is kept
// so indented replacement lines survive.
func (p *ConsolePrompter) Input(message string) (string, error) {
	questionColor.Fprintf(p.Out, "? %s ", message)
	return p.readLine()
}

// Select prints a numbered menu and re-asks until a valid number or 'q'.
func (p *ConsolePrompter) Select(message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, models.ErrCancelled
	}

	questionColor.Fprintf(p.Out, "? %s\n", message)
	for i, choice := range choices {
		fmt.Fprintf(p.Out, "  %s %s\n", choiceColor.Sprintf("[%d]", i+1), choice)
	}

	for {
		fmt.Fprintf(p.Out, "Select (1-%d) or 'q' to cancel: ", len(choices))
		input, err := p.readLine()
		if err != nil {
			return 0, err
		}

		input = strings.TrimSpace(strings.ToLower(input))
		if input == "q" {
			return 0, models.ErrCancelled
		}

		selection, scanErr := strconv.Atoi(input)
		if scanErr == nil && selection >= 1 && selection <= len(choices) {
			return selection - 1, nil
		}

		failColor.Fprintf(p.Out, "Invalid selection: must be between 1 and %d.\n", len(choices))
	}
}

// Confirm asks a yes/no question; anything but y/yes is a no.
func (p *ConsolePrompter) Confirm(message string) (bool, error) {
	questionColor.Fprintf(p.Out, "? %s [y/N]: ", message)
	input, err := p.readLine()
	if err != nil {
		return false, err
	}
	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// MultiLine collects lines through Capture when set. Otherwise it reads
// lines until a lone "." (or end of input after at least one line).
func (p *ConsolePrompter) MultiLine(message string, initial []string) ([]string, error) {
	if p.Capture != nil {
		questionColor.Fprintf(p.Out, "? %s (opening editor)\n", message)
		seed := ""
		if len(initial) > 0 {
			seed = strings.Join(initial, textedit.Separator) + textedit.Separator
		}
		text, err := p.Capture(seed)
		if err != nil {
			return nil, err
		}
		lines := textedit.SplitLines(text)
		// the editor's final newline terminates the last line rather than adding one
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}
		return lines, nil
	}

	questionColor.Fprintf(p.Out, "? %s (finish with a line containing only '.')\n", message)
	var lines []string
	for {
		line, err := p.readLine()
		if errors.Is(err, models.ErrCancelled) && len(lines) > 0 {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if line == "." {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// promptLineNumber asks for a number until check accepts it. Non-numeric
// input and range errors are reported and the question is repeated.
func promptLineNumber(p Prompter, out io.Writer, message string, check func(int) error) (int, error) {
	for {
		input, err := p.Input(message)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(input))
		if convErr != nil {
			failColor.Fprintf(out, "❌ %q is not a number.\n", strings.TrimSpace(input))
			continue
		}
		if err := check(n); err != nil {
			if models.IsRangeError(err) {
				failColor.Fprintf(out, "❌ %v\n", err)
				continue
			}
			return 0, err
		}
		return n, nil
	}
}
