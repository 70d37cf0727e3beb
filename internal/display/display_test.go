package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		name      string
		content   string
		keyword   string
		want      string
		wantCount int
	}{
		{"case insensitive", "Todo: fix TODO later", "todo", "[Todo]: fix [TODO] later", 2},
		{"no match", "nothing here", "xyz", "nothing here", 0},
		{"regex metacharacters are literal", "a.b axb a.b", "a.b", "[a.b] axb [a.b]", 2},
		{"parentheses", "call(x) call(y)", "call(", "[call(]x) [call(]y)", 2},
		{"multi line", "one\nONE\n", "one", "[one]\n[ONE]\n", 2},
		{"empty keyword", "abc", "", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Highlight(tt.content, tt.keyword, mark)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, n)
		})
	}
}

func TestHighlightDefaultMarkKeepsText(t *testing.T) {
	disableColor(t)
	got, n := Highlight("Hello hello", "HELLO", nil)
	assert.Equal(t, "Hello hello", got)
	assert.Equal(t, 2, n)
}

func TestRenderFile(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	RenderFile(&buf, "body text")

	out := buf.String()
	assert.Contains(t, out, "body text")
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("-", ruleWidth)))
}

func TestNumberedLines(t *testing.T) {
	disableColor(t)
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	var buf bytes.Buffer
	NumberedLines(&buf, lines)

	out := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, out, 10)
	assert.Equal(t, " 1 │ line", out[0])
	assert.Equal(t, "10 │ line", out[9])
}

func TestPrintMatches(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	PrintMatches(&buf, "file", []string{"/p/a.txt", "/p/sub/a.txt"})

	out := buf.String()
	assert.Contains(t, out, "2 file(s) found")
	assert.Contains(t, out, "1. /p/a.txt")
	assert.Contains(t, out, "2. /p/sub/a.txt")

	buf.Reset()
	PrintMatches(&buf, "file", nil)
	assert.Empty(t, buf.String())
}

func TestPrintNotFound(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	PrintNotFound(&buf, "a.txt")
	assert.Equal(t, "❌ a.txt not found in project.\n", buf.String())
}

func TestMatchChoices(t *testing.T) {
	assert.Equal(t, []string{"1. /a", "2. /b"}, MatchChoices([]string{"/a", "/b"}))
}

func TestOutline(t *testing.T) {
	source := []byte("# Title\n\nintro\n\n## Install `go`\n\ntext\n\nSetext Heading\n--------------\n\n### Deep *emph*\n")

	headings := Outline(source)
	assert.Equal(t, []Heading{
		{Level: 1, Text: "Title", Line: 1},
		{Level: 2, Text: "Install go", Line: 5},
		{Level: 2, Text: "Setext Heading", Line: 9},
		{Level: 3, Text: "Deep emph", Line: 12},
	}, headings)
}

func TestOutlineIgnoresCodeBlocks(t *testing.T) {
	source := []byte("# Real\n\n```\n# not a heading\n```\n")
	headings := Outline(source)
	assert.Len(t, headings, 1)
	assert.Equal(t, "Real", headings[0].Text)
}

func TestPrintOutline(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	PrintOutline(&buf, []Heading{{Level: 1, Text: "Top", Line: 1}, {Level: 2, Text: "Sub", Line: 4}})
	assert.Equal(t, "L1 Top\n  L4 Sub\n", buf.String())

	buf.Reset()
	PrintOutline(&buf, nil)
	assert.Contains(t, buf.String(), "No headings")
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("/a/README.md"))
	assert.True(t, IsMarkdown("notes.MARKDOWN"))
	assert.False(t, IsMarkdown("main.go"))
}
