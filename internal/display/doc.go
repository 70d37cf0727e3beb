// Package display formats file-checker output for the terminal.
//
// # Match Lists
//
//	display.PrintMatches(os.Stdout, "file", result.Matches)
//
// # File Views
//
// RenderFile prints a file body between rule lines. NumberedLines prints the
// body with a 1-based line gutter so users can pick line numbers to edit.
//
// # Keyword Highlighting
//
//	out, n := display.Highlight(content, "todo", nil)
//
// Matching is a case-insensitive literal substring search; the keyword is
// never interpreted as a regular expression.
//
// # Markdown Outline
//
// Outline parses Markdown with goldmark and returns its headings together
// with the line each one starts on.
//
// # Warnings
//
//	display.Warning{
//	    Title: "This will permanently delete",
//	    Files: []string{path},
//	}.Display(os.Stdout)
//
// All colors go through fatih/color, so they are dropped automatically when
// color.NoColor is set (non-TTY output, NO_COLOR, or --no-color).
// Every function takes an io.Writer for testability.
package display
