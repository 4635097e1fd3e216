package karaoke

import (
	"math"
	"strings"

	"github.com/karalab/karasub/internal/subtitle"
)

// DefaultMinWordDur is the minimum word duration in milliseconds for the
// approximate distributor.
const DefaultMinWordDur = 60

// Distribute synthesizes word timings for a segment by distributing its
// duration proportionally to each word's character count: longer words take
// longer to say than an even split would suggest. The last word is forced
// to end exactly at the segment end, so the word spans always cover the
// segment span regardless of rounding in earlier words. Returns false when
// the segment has no words.
func Distribute(seg subtitle.Segment, minWordMs int) (Segment, bool) {
	if minWordMs <= 0 {
		minWordMs = DefaultMinWordDur
	}

	start := seg.Start
	end := seg.End
	if end <= start {
		end = start + 1
	}
	dur := end - start

	words := strings.Fields(subtitle.OneLine(seg.Text))
	if len(words) == 0 {
		return Segment{}, false
	}

	weights := make([]int, len(words))
	total := 0
	for i, w := range words {
		weight := len(w)
		if weight < 1 {
			weight = 1
		}
		weights[i] = weight
		total += weight
	}

	out := Segment{Start: start, End: end, Words: make([]Word, 0, len(words))}
	cur := start
	for i, w := range words {
		var wordEnd int
		if i == len(words)-1 {
			wordEnd = end
		} else {
			wordDur := int(math.Round(float64(dur) * float64(weights[i]) / float64(total)))
			if wordDur < minWordMs {
				wordDur = minWordMs
			}
			wordEnd = cur + wordDur
			if wordEnd > end {
				wordEnd = end
			}
		}
		out.Words = append(out.Words, Word{Start: cur, End: wordEnd, Text: w})
		cur = wordEnd
	}

	return out, true
}

// FromSegments runs Distribute over a polished segment sequence.
func FromSegments(segments []subtitle.Segment, minWordMs int) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if ks, ok := Distribute(seg, minWordMs); ok {
			out = append(out, ks)
		}
	}
	return out
}
