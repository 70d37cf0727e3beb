// Package textedit holds a file's text as an ordered list of lines and
// applies line-oriented edits to it.
//
// Line numbers given to ReplaceLine, ReplaceRange and RemoveLine are 1-based,
// matching what users see. InsertLine takes a 0-based insertion index, where
// index == LineCount() appends.
//
// Parsing accepts both "\n" and "\r\n" line breaks. Serialize always joins
// with "\n", so a CRLF file is normalized to LF when it is written back. This
// is deliberate and lossy: Serialize(Parse(x)) == x only holds for LF text.
package textedit

import (
	"regexp"
	"strings"

	"github.com/harrison/filechecker/internal/fileops"
	"github.com/harrison/filechecker/internal/models"
)

// Separator is the line separator used by Serialize.
const Separator = "\n"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Document is an in-memory list of lines loaded from a file.
type Document struct {
	lines []string
	crlf  bool
}

// SplitLines splits text on "\n" or "\r\n". A trailing line break produces a
// trailing empty line, and empty text produces a single empty line.
func SplitLines(text string) []string {
	return lineBreak.Split(text, -1)
}

// Parse builds a Document from raw file text.
func Parse(text string) *Document {
	return &Document{
		lines: SplitLines(text),
		crlf:  strings.Contains(text, "\r\n"),
	}
}

// Load reads the file at path and parses it. Read failures are IOErrors.
func Load(path string) (*Document, error) {
	text, err := fileops.ReadText(path)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// HadCRLF reports whether the parsed text contained any "\r\n" breaks, which
// Serialize will turn into "\n".
func (d *Document) HadCRLF() bool {
	return d.crlf
}

// Line returns the content of the 1-based line n.
func (d *Document) Line(n int) (string, error) {
	if err := d.CheckLine(n); err != nil {
		return "", err
	}
	return d.lines[n-1], nil
}

// CheckLine validates a 1-based line number against [1, LineCount()].
func (d *Document) CheckLine(n int) error {
	if n < 1 || n > len(d.lines) {
		return &models.RangeError{Value: n, Min: 1, Max: len(d.lines)}
	}
	return nil
}

// CheckInsert validates a 0-based insertion index against [0, LineCount()].
func (d *Document) CheckInsert(index int) error {
	if index < 0 || index > len(d.lines) {
		return &models.RangeError{Value: index, Min: 0, Max: len(d.lines)}
	}
	return nil
}

// CheckRange validates an inclusive 1-based range. Both bounds must be in
// [1, LineCount()] and start must not be after end.
func (d *Document) CheckRange(start, end int) error {
	if err := d.CheckLine(start); err != nil {
		return err
	}
	if err := d.CheckLine(end); err != nil {
		return err
	}
	if start > end {
		return &models.RangeError{Value: end, Min: start, Max: len(d.lines)}
	}
	return nil
}

// ReplaceLine sets the content of the 1-based line n.
func (d *Document) ReplaceLine(n int, content string) error {
	if err := d.CheckLine(n); err != nil {
		return err
	}
	d.lines[n-1] = content
	return nil
}

// ReplaceRange removes lines start..end (1-based, inclusive) and splices
// newLines in their place. The replacement may be shorter or longer than the
// removed span, including empty.
func (d *Document) ReplaceRange(start, end int, newLines []string) error {
	if err := d.CheckRange(start, end); err != nil {
		return err
	}

	lo, hi := start-1, end // lines[lo:hi] is the inclusive 1-based span
	out := make([]string, 0, len(d.lines)-(hi-lo)+len(newLines))
	out = append(out, d.lines[:lo]...)
	out = append(out, newLines...)
	out = append(out, d.lines[hi:]...)
	d.lines = out
	return nil
}

// InsertLine inserts content so that it becomes the line at 0-based index.
// index == LineCount() appends.
func (d *Document) InsertLine(index int, content string) error {
	if err := d.CheckInsert(index); err != nil {
		return err
	}
	d.lines = append(d.lines, "")
	copy(d.lines[index+1:], d.lines[index:])
	d.lines[index] = content
	return nil
}

// RemoveLine deletes the 1-based line n.
func (d *Document) RemoveLine(n int) error {
	if err := d.CheckLine(n); err != nil {
		return err
	}
	d.lines = append(d.lines[:n-1], d.lines[n:]...)
	return nil
}

// Serialize joins the lines with Separator.
func (d *Document) Serialize() string {
	return strings.Join(d.lines, Separator)
}

// Save serializes the document and hands it to w.
func (d *Document) Save(path string, w fileops.Writer) error {
	return w.Write(path, d.Serialize())
}
