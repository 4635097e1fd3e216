package subtitle

import (
	"strings"
	"unicode/utf8"
)

// WrapText wraps text into at most maxLines lines of at most maxChars
// characters each. Words are greedily packed; when that overflows the line
// budget the words are redistributed evenly across exactly maxLines lines
// and each line is re-packed. A single word longer than maxChars is kept
// intact. Lines beyond maxLines are dropped.
func WrapText(text string, maxChars, maxLines int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	lines := packGreedy(words, maxChars)

	if len(lines) > maxLines {
		total := len(words)
		chunk := total / maxLines
		if chunk < 1 {
			chunk = 1
		}
		lines = lines[:0]
		i := 0
		for n := 0; n < maxLines-1; n++ {
			if i >= total {
				break
			}
			hi := i + chunk
			if hi > total {
				hi = total
			}
			lines = append(lines, strings.Join(words[i:hi], " "))
			i = hi
		}
		lines = append(lines, strings.Join(words[i:], " "))
	}

	var final []string
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= maxChars {
			final = append(final, line)
		} else {
			final = append(final, packGreedy(strings.Fields(line), maxChars)...)
		}
	}

	if len(final) > maxLines {
		final = final[:maxLines]
	}
	return strings.Join(final, "\n")
}

func packGreedy(words []string, maxChars int) []string {
	var lines []string
	cur := ""
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(w) <= maxChars:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
