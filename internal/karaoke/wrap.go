package karaoke

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var tagRe = regexp.MustCompile(`\{[^}]*\}`)

// visibleLen counts renderable characters, ignoring override tag blocks.
func visibleLen(s string) int {
	return utf8.RuneCountInString(tagRe.ReplaceAllString(s, ""))
}

// WrapLine breaks karaoke markup into at most maxLines lines of maxChars
// visible characters each. Tokens are space separated and atomic: a tag
// block travels with the word it decorates. Once the line budget is
// reached, overflow folds into the last line so no word is ever dropped.
func WrapLine(text string, maxChars, maxLines int) string {
	if maxChars <= 0 || maxLines <= 0 {
		return text
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	var lines []string
	cur := ""
	curLen := 0
	for _, tok := range tokens {
		tokLen := visibleLen(tok)
		switch {
		case cur == "":
			cur = tok
			curLen = tokLen
		case curLen+1+tokLen <= maxChars || len(lines) == maxLines-1:
			cur += " " + tok
			curLen += 1 + tokLen
		default:
			lines = append(lines, cur)
			cur = tok
			curLen = tokLen
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}

	return strings.Join(lines, `\N`)
}
