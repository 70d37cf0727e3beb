package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	foundColor  = color.New(color.FgCyan, color.Bold)
	indexColor  = color.New(color.FgYellow)
	noticeColor = color.New(color.FgYellow)
)

// PrintMatches prints the number of matches followed by a numbered list.
// Nothing but the notice is printed for an empty list.
func PrintMatches(w io.Writer, kind string, matches []string) {
	if len(matches) == 0 {
		return
	}
	foundColor.Fprintf(w, "✅ %d %s(s) found:\n\n", len(matches), kind)
	for i, path := range matches {
		fmt.Fprintf(w, "  %s %s\n", indexColor.Sprintf("%d.", i+1), path)
	}
	fmt.Fprintln(w)
}

// PrintNotFound prints the soft "not found" notice for a search.
func PrintNotFound(w io.Writer, target string) {
	noticeColor.Fprintf(w, "❌ %s not found in project.\n", target)
}

// MatchChoices turns matches into "N. path" labels for a selection prompt.
func MatchChoices(matches []string) []string {
	choices := make([]string, len(matches))
	for i, path := range matches {
		choices[i] = fmt.Sprintf("%d. %s", i+1, path)
	}
	return choices
}
