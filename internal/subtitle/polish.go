package subtitle

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Polisher normalizes a coarse segment sequence into well-formed subtitle
// segments: adjacent segments separated by small gaps are merged, durations
// are clamped, over-long segments are split on word boundaries, reading
// speed is capped and text is wrapped.
type Polisher struct {
	MaxCharsPerLine int
	MaxLines        int
	MaxCPS          float64
	MinDur          int // ms
	MaxDur          int // ms
	MergeGap        int // ms
}

func DefaultPolisher() Polisher {
	return Polisher{
		MaxCharsPerLine: 42,
		MaxLines:        2,
		MaxCPS:          17.0,
		MinDur:          700,
		MaxDur:          7000,
		MergeGap:        200,
	}
}

type span struct {
	start int
	end   int
	text  string
}

// Polish applies the full pipeline and returns a new, renumbered sequence.
// Input segments are not mutated.
func (p Polisher) Polish(segments []Segment) []Segment {
	if len(segments) == 0 {
		return nil
	}

	var items []span
	for _, s := range segments {
		start := s.Start
		end := s.End
		if end < start {
			end = start
		}
		text := NormalizeText(s.Text)
		if text != "" {
			items = append(items, span{start: start, end: end, text: text})
		}
	}

	merged := p.merge(items)
	adjusted := p.adjust(merged)

	out := make([]Segment, 0, len(adjusted))
	for i, sp := range adjusted {
		out = append(out, Segment{
			Index: i + 1,
			Start: sp.start,
			End:   sp.end,
			Text:  WrapText(sp.text, p.MaxCharsPerLine, p.MaxLines),
		})
	}
	return out
}

// single forward pass: a gap within [0, MergeGap] joins the current segment
// onto the previous one
func (p Polisher) merge(items []span) []span {
	var merged []span
	for _, it := range items {
		if len(merged) == 0 {
			merged = append(merged, it)
			continue
		}
		prev := &merged[len(merged)-1]
		gap := it.start - prev.end
		if gap >= 0 && gap <= p.MergeGap {
			prev.text = strings.TrimSpace(prev.text + " " + it.text)
			prev.end = it.end
		} else {
			merged = append(merged, it)
		}
	}
	return merged
}

func (p Polisher) adjust(merged []span) []span {
	var adjusted []span
	for i, sp := range merged {
		start, end, text := sp.start, sp.end, sp.text
		dur := end - start
		if dur < 1 {
			dur = 1
		}
		words := strings.Fields(text)

		if dur < p.MinDur {
			end = start + p.MinDur
			// never extend into the next segment
			if i+1 < len(merged) {
				limit := merged[i+1].start - 1
				if limit < start+1 {
					limit = start + 1
				}
				if end > limit {
					end = limit
				}
			}
			dur = end - start
		}

		// aggressive word-based split of over-long segments; chunks bypass
		// the reading-speed cap below
		if dur > p.MaxDur && len(words) >= 4 {
			adjusted = append(adjusted, p.splitLong(start, end, words)...)
			continue
		}

		chars := utf8.RuneCountInString(text)
		cps := float64(chars) / (float64(dur) / 1000.0)
		if cps > p.MaxCPS {
			target := int(float64(chars) / p.MaxCPS * 1000)
			if target < p.MinDur {
				target = p.MinDur
			}
			if target > p.MaxDur {
				target = p.MaxDur
			}
			if i+1 < len(merged) {
				nextStart := merged[i+1].start
				limit := nextStart - 1
				if limit < start+1 {
					limit = start + 1
				}
				end = start + target
				if end > limit {
					end = limit
				}
			} else {
				end = start + target
			}
		}

		adjusted = append(adjusted, span{start: start, end: end, text: text})
	}
	return adjusted
}

// splitLong cuts a segment into word chunks with durations proportional to
// chunk word counts. The cursor advances by the duration actually assigned
// so rounding error does not accumulate, and the final chunk is forced to
// end exactly at the original segment end.
func (p Polisher) splitLong(start, end int, words []string) []span {
	dur := end - start
	parts := int(math.Ceil(float64(dur) / float64(p.MaxDur)))
	if parts < 2 {
		parts = 2
	}
	chunkSize := len(words) / parts
	if chunkSize < 1 {
		chunkSize = 1
	}

	var out []span
	cur := start
	total := len(words)
	for idx := 0; idx < total; idx += chunkSize {
		hi := idx + chunkSize
		if hi > total {
			hi = total
		}
		chunk := words[idx:hi]

		remaining := total - idx
		remainingTime := end - cur
		est := int(math.Round(float64(remainingTime) * float64(len(chunk)) / float64(remaining)))
		if est < p.MinDur {
			est = p.MinDur
		}
		if est > p.MaxDur {
			est = p.MaxDur
		}
		chunkEnd := cur + est
		if idx+chunkSize >= total {
			chunkEnd = end
		}
		out = append(out, span{start: cur, end: chunkEnd, text: strings.Join(chunk, " ")})
		cur = chunkEnd
	}
	return out
}
