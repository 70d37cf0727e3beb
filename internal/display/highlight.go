package display

import (
	"regexp"

	"github.com/fatih/color"
)

var highlightColor = color.New(color.BgYellow, color.FgBlack)

// Highlight wraps every case-insensitive occurrence of keyword in content
// with mark and returns the result plus the number of occurrences. A nil mark
// uses a yellow background. The keyword is matched literally.
func Highlight(content, keyword string, mark func(string) string) (string, int) {
	if keyword == "" {
		return content, 0
	}
	if mark == nil {
		mark = func(s string) string { return highlightColor.Sprint(s) }
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	count := 0
	out := re.ReplaceAllStringFunc(content, func(match string) string {
		count++
		return mark(match)
	})
	return out, count
}
