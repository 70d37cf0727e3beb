package display

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a Markdown heading and the 1-based line it starts on.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// Outline returns the headings of a Markdown document in document order.
func Outline(source []byte) []Heading {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  headingText(h, source),
			Line:  headingLine(h, source),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// headingText concatenates the literal text below a heading node.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := child.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.CodeSpan:
			for gc := c.FirstChild(); gc != nil; gc = gc.NextSibling() {
				if t, ok := gc.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// headingLine maps a heading's first content segment back to a line number.
// Setext headings report the line of their text, not the underline.
func headingLine(h *ast.Heading, source []byte) int {
	lines := h.Lines()
	if lines.Len() == 0 {
		return 0
	}
	offset := lines.At(0).Start
	return bytes.Count(source[:offset], []byte("\n")) + 1
}

// PrintOutline prints headings indented by level with their line numbers.
func PrintOutline(w io.Writer, headings []Heading) {
	if len(headings) == 0 {
		noticeColor.Fprintln(w, "No headings found.")
		return
	}
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(w, "%s%s %s\n", indent, gutterColor.Sprintf("L%d", h.Line), h.Text)
	}
}
