package textedit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/filechecker/internal/fileops"
	"github.com/harrison/filechecker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromLines builds a Document from already split lines.
func fromLines(lines []string) *Document {
	return &Document{lines: append([]string(nil), lines...)}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"trailing break keeps empty line", "a\nb\n", []string{"a", "b", ""}},
		{"empty text", "", []string{""}},
		{"lone carriage return is content", "a\rb", []string{"a\rb"}},
		{"blank lines", "\n\n", []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestParseLineCount(t *testing.T) {
	doc := Parse("one\ntwo\nthree")
	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, len(doc.Lines()), doc.LineCount())
	assert.False(t, doc.HadCRLF())

	assert.True(t, Parse("x\r\ny").HadCRLF())
}

func TestSerializeNormalizesLineEndings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"lf round trips", "a\nb\n", "a\nb\n"},
		{"crlf becomes lf", "a\r\nb\r\n", "a\nb\n"},
		{"mixed becomes lf", "a\r\nb\nc", "a\nb\nc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.text).Serialize()
			assert.Equal(t, tt.want, out)
			assert.NotContains(t, out, "\r\n")
			// Normalized output is a fixed point.
			assert.Equal(t, out, Parse(out).Serialize())
		})
	}
}

func TestReplaceLine(t *testing.T) {
	doc := fromLines([]string{"one", "two", "three"})

	require.NoError(t, doc.ReplaceLine(2, "TWO"))
	assert.Equal(t, []string{"one", "TWO", "three"}, doc.Lines())
	assert.Equal(t, 3, doc.LineCount())

	require.NoError(t, doc.ReplaceLine(3, ""))
	assert.Equal(t, []string{"one", "TWO", ""}, doc.Lines())
}

func TestReplaceLineBounds(t *testing.T) {
	doc := fromLines([]string{"one", "two", "three"})

	for _, n := range []int{0, -1, doc.LineCount() + 1} {
		err := doc.ReplaceLine(n, "x")
		require.Error(t, err, "line %d", n)

		var rangeErr *models.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, n, rangeErr.Value)
		assert.Equal(t, 1, rangeErr.Min)
		assert.Equal(t, 3, rangeErr.Max)
	}
	assert.Equal(t, []string{"one", "two", "three"}, doc.Lines(), "failed edits leave the document alone")
}

func TestReplaceRange(t *testing.T) {
	base := []string{"L1", "L2", "L3", "L4", "L5"}

	tests := []struct {
		name       string
		start, end int
		newLines   []string
		want       []string
	}{
		{"shrink", 2, 4, []string{"A", "B"}, []string{"L1", "A", "B", "L5"}},
		{"grow", 2, 2, []string{"A", "B", "C"}, []string{"L1", "A", "B", "C", "L3", "L4", "L5"}},
		{"same size", 1, 2, []string{"A", "B"}, []string{"A", "B", "L3", "L4", "L5"}},
		{"delete span", 3, 5, nil, []string{"L1", "L2"}},
		{"whole document", 1, 5, []string{"only"}, []string{"only"}},
		{"last line", 5, 5, []string{"end"}, []string{"L1", "L2", "L3", "L4", "end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fromLines(base)
			require.NoError(t, doc.ReplaceRange(tt.start, tt.end, tt.newLines))
			assert.Equal(t, tt.want, doc.Lines())
			assert.Equal(t, len(tt.want), doc.LineCount())
		})
	}
}

func TestReplaceRangeDoesNotAliasInput(t *testing.T) {
	doc := fromLines([]string{"a", "b", "c"})
	repl := []string{"X"}
	require.NoError(t, doc.ReplaceRange(1, 1, repl))
	repl[0] = "mutated"
	assert.Equal(t, []string{"X", "b", "c"}, doc.Lines())
}

func TestReplaceRangeBounds(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"start zero", 0, 2},
		{"end past last", 2, 6},
		{"both past last", 6, 7},
		{"start after end", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fromLines([]string{"L1", "L2", "L3", "L4", "L5"})
			err := doc.ReplaceRange(tt.start, tt.end, []string{"x"})
			require.Error(t, err)
			assert.True(t, models.IsRangeError(err))
			assert.Equal(t, 5, doc.LineCount())
		})
	}
}

func TestInsertLine(t *testing.T) {
	t.Run("at top", func(t *testing.T) {
		doc := fromLines([]string{"a", "b"})
		require.NoError(t, doc.InsertLine(0, "top"))
		assert.Equal(t, []string{"top", "a", "b"}, doc.Lines())
	})

	t.Run("in the middle", func(t *testing.T) {
		doc := fromLines([]string{"a", "b"})
		require.NoError(t, doc.InsertLine(1, "mid"))
		assert.Equal(t, []string{"a", "mid", "b"}, doc.Lines())
	})

	t.Run("at line count appends", func(t *testing.T) {
		doc := fromLines([]string{"a", "b"})
		require.NoError(t, doc.InsertLine(doc.LineCount(), "end"))
		assert.Equal(t, []string{"a", "b", "end"}, doc.Lines())
		assert.Equal(t, 3, doc.LineCount())
	})

	t.Run("into emptied document", func(t *testing.T) {
		doc := fromLines([]string{"a"})
		require.NoError(t, doc.ReplaceRange(1, 1, nil))
		require.Equal(t, 0, doc.LineCount())
		require.NoError(t, doc.InsertLine(0, "fresh"))
		assert.Equal(t, []string{"fresh"}, doc.Lines())
	})

	t.Run("out of bounds", func(t *testing.T) {
		doc := fromLines([]string{"a", "b"})
		for _, idx := range []int{-1, 3} {
			err := doc.InsertLine(idx, "x")
			var rangeErr *models.RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, 0, rangeErr.Min)
			assert.Equal(t, 2, rangeErr.Max)
		}
		assert.Equal(t, 2, doc.LineCount())
	})
}

func TestRemoveLine(t *testing.T) {
	doc := fromLines([]string{"one", "two", "three"})

	require.NoError(t, doc.RemoveLine(2))
	assert.Equal(t, []string{"one", "three"}, doc.Lines())
	assert.Equal(t, 2, doc.LineCount())

	require.NoError(t, doc.RemoveLine(2))
	require.NoError(t, doc.RemoveLine(1))
	assert.Equal(t, 0, doc.LineCount())
	assert.Equal(t, "", doc.Serialize())

	err := doc.RemoveLine(1)
	assert.True(t, models.IsRangeError(err))
}

func TestLine(t *testing.T) {
	doc := fromLines([]string{"one", "two"})

	got, err := doc.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	_, err = doc.Line(3)
	assert.True(t, models.IsRangeError(err))
}

func TestLinesReturnsCopy(t *testing.T) {
	doc := fromLines([]string{"a"})
	lines := doc.Lines()
	lines[0] = "changed"
	got, _ := doc.Line(1)
	assert.Equal(t, "a", got)
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\r\nbeta\r\ngamma\r\n"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma", ""}, doc.Lines())
	assert.True(t, doc.HadCRLF())

	require.NoError(t, doc.ReplaceLine(2, "BETA"))
	require.NoError(t, doc.Save(path, fileops.Writer{}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nBETA\ngamma\n", string(got))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, models.IsIOError(err))
}
