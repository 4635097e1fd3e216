package karaoke

import "unicode/utf8"

// SplitOptions controls word/timing-aware segment splitting.
type SplitOptions struct {
	MaxWordsPerLine    int // preferred words before a pause break is taken
	MaxWordsTotal      int // hard word budget per subsegment
	MinPause           int // ms of silence that qualifies as a break point
	MaxCharsPerSegment int // hard visible character budget per subsegment
}

func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		MaxWordsPerLine:    9,
		MaxWordsTotal:      14,
		MinPause:           250,
		MaxCharsPerSegment: 84,
	}
}

// ShouldSplit reports whether a word run is too dense for a single
// subtitle: more visible characters than maxChars or a longer span than
// maxDur milliseconds.
func ShouldSplit(words []Word, maxChars, maxDur int) bool {
	if len(words) < 2 {
		return false
	}
	if visibleChars(words) > maxChars {
		return true
	}
	return words[len(words)-1].End-words[0].Start > maxDur
}

// SplitWords cuts a word run into subsegments that each respect the word
// and character budgets. A cut is forced when adding the next word would
// exceed MaxWordsTotal or MaxCharsPerSegment; once a subsegment reaches
// MaxWordsPerLine words, a natural pause of at least MinPause also cuts,
// keeping breaks on speech boundaries where possible.
func SplitWords(words []Word, opts SplitOptions) [][]Word {
	if len(words) == 0 {
		return nil
	}
	if opts.MaxWordsTotal < 1 {
		opts.MaxWordsTotal = 1
	}

	var out [][]Word
	var cur []Word

	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
	}

	for _, w := range words {
		if len(cur) > 0 {
			wordBudgetHit := len(cur) >= opts.MaxWordsTotal
			charBudgetHit := opts.MaxCharsPerSegment > 0 &&
				visibleChars(cur)+1+utf8.RuneCountInString(w.Text) > opts.MaxCharsPerSegment
			pauseBreak := opts.MaxWordsPerLine > 0 &&
				len(cur) >= opts.MaxWordsPerLine &&
				w.Start-cur[len(cur)-1].End >= opts.MinPause

			if wordBudgetHit || charBudgetHit || pauseBreak {
				flush()
			}
		}
		cur = append(cur, w)
	}
	flush()

	return out
}

// SplitDense rebuilds a segment sequence with over-dense segments cut into
// pause-aligned subsegments. A segment splits when its word run exceeds the
// character budget or spans longer than maxDur milliseconds; each subsegment
// takes its span from its own word times and keeps the speaker label.
func SplitDense(segments []Segment, opts SplitOptions, maxDur int) []Segment {
	var out []Segment
	for _, seg := range segments {
		if !ShouldSplit(seg.Words, opts.MaxCharsPerSegment, maxDur) {
			out = append(out, seg)
			continue
		}
		for _, run := range SplitWords(seg.Words, opts) {
			out = append(out, Segment{
				Start:   run[0].Start,
				End:     run[len(run)-1].End,
				Words:   run,
				Speaker: seg.Speaker,
			})
		}
	}
	return out
}

// visibleChars counts the characters of a word run as rendered: word runes
// plus single separating spaces.
func visibleChars(words []Word) int {
	if len(words) == 0 {
		return 0
	}
	n := len(words) - 1
	for _, w := range words {
		n += utf8.RuneCountInString(w.Text)
	}
	return n
}
