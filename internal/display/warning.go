package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var warnColor = color.New(color.FgYellow)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Singular/plural header for the affected paths
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	warnColor.Fprint(out, b.String())
}

// WarnDelete creates the confirmation warning shown before a deletion.
func WarnDelete(kind, path string) Warning {
	w := Warning{
		Title: fmt.Sprintf("This will permanently delete the %s", kind),
		Files: []string{path},
	}
	if kind == "folder" {
		w.Message = "The folder and everything inside it will be removed."
	}
	return w
}

// WarnLineEndings creates the notice shown when an edit will rewrite CRLF
// line endings as LF.
func WarnLineEndings(path string) Warning {
	return Warning{
		Title:   "Line endings will be normalized",
		Message: "This file uses CRLF line breaks; saving writes every line break as LF.",
		Files:   []string{path},
	}
}
