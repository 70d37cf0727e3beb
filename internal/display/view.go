package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 35

var (
	ruleColor   = color.New(color.FgBlue)
	bodyColor   = color.New(color.FgHiGreen)
	gutterColor = color.New(color.FgHiBlack)
)

// Rule prints a horizontal separator line.
func Rule(w io.Writer) {
	ruleColor.Fprintf(w, "\n%s\n\n", strings.Repeat("-", ruleWidth))
}

// RenderFile prints content between two rule lines.
func RenderFile(w io.Writer, content string) {
	Rule(w)
	bodyColor.Fprintln(w, content)
	Rule(w)
}

// NumberedLines prints lines with a right-aligned 1-based line gutter.
func NumberedLines(w io.Writer, lines []string) {
	width := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		gutter := gutterColor.Sprintf("%*d │", width, i+1)
		fmt.Fprintf(w, "%s %s\n", gutter, line)
	}
}
