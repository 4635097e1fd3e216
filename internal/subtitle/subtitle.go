package subtitle

import (
	"regexp"
	"strings"
)

// single time-coded subtitle segment; times are in milliseconds
type Segment struct {
	Index int
	Start int
	End   int
	Text  string
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText collapses all internal whitespace (including line breaks)
// to single spaces and trims the result.
func NormalizeText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// OneLine joins a possibly multi-line segment text into a single line.
func OneLine(text string) string {
	return NormalizeText(text)
}
