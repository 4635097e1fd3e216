package karaoke

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/karalab/karasub/internal/style"
)

// Builder compiles timed words into ASS karaoke text for one style.
type Builder struct {
	Style style.Config

	// MinRevealCS floors the reveal value of every word after the first,
	// guaranteeing forward progress. Zero means the default of 1.
	MinRevealCS int
}

// Text compiles the words of one segment into karaoke markup. The \k value
// of each word is the time since the previous word's own reveal (cumulative
// sum semantics): the first word carries its offset from the segment start
// and may be zero, every later word is floored at MinRevealCS.
func (b Builder) Text(words []Word, segStart int) string {
	if len(words) == 0 {
		return ""
	}

	minCS := b.MinRevealCS
	if minCS <= 0 {
		minCS = 1
	}

	var parts []string
	for i, w := range words {
		var delayMs int
		if i == 0 {
			delayMs = w.Start - segStart
		} else {
			delayMs = w.Start - words[i-1].Start
		}
		if delayMs < 0 {
			delayMs = 0
		}
		cs := int(math.Round(float64(delayMs) / 10.0))
		if i > 0 && cs < minCS {
			cs = minCS
		}

		wordDurMs := w.Duration()
		if wordDurMs < 100 {
			wordDurMs = 100
		}

		text := strings.NewReplacer("{", "", "}", "").Replace(w.Text)
		if b.Style.AllCaps {
			text = strings.ToUpper(text)
		}

		var tags []string
		if b.Style.LetterSpacing != 0 {
			tags = append(tags, fmt.Sprintf(`\fsp%d`, b.Style.LetterSpacing))
		}
		tags = append(tags, fmt.Sprintf(`\k%d`, cs))

		lead, trail := animate(b.Style.Animation, wordDurMs, b.Style.AnimationIntensity)
		tags = append(lead, append(tags, trail...)...)

		parts = append(parts, "{"+strings.Join(tags, "")+"}"+text+" ")
	}

	return strings.TrimRight(strings.Join(parts, ""), " ")
}

// animate returns the transform tags for one word: lead tags set the
// initial state before the reveal tag, trail tags carry the timed
// transforms. Kinds without a transform (none, color_switch, anything
// unrecognized) return nothing.
func animate(kind style.Animation, durMs int, intensity float64) (lead, trail []string) {
	switch kind {
	case style.AnimationPop:
		scale := int(100 + 10*intensity)
		d := minInt(150, durMs/2)
		trail = []string{
			fmt.Sprintf(`\t(0,%d,\fscx%d\fscy%d)`, d, scale, scale),
			fmt.Sprintf(`\t(%d,%d,\fscx100\fscy100)`, d, d*2),
		}
	case style.AnimationBounce:
		scale := int(100 + 20*intensity)
		d := minInt(200, durMs/2)
		trail = []string{
			fmt.Sprintf(`\t(0,%d,\fscx%d\fscy%d)`, d, scale, scale),
			fmt.Sprintf(`\t(%d,%d,\fscx100\fscy100)`, d, d*2),
		}
	case style.AnimationScaleIn:
		from := int(100 - 80*intensity)
		if from < 0 {
			from = 0
		}
		d := minInt(300, durMs)
		lead = []string{fmt.Sprintf(`\fscx%d\fscy%d`, from, from)}
		trail = []string{fmt.Sprintf(`\t(0,%d,\fscx100\fscy100)`, d)}
	case style.AnimationShake:
		shear := 0.1 * intensity
		d := minInt(100, durMs/3)
		trail = []string{
			fmt.Sprintf(`\t(0,%d,\fax%s)`, d, formatFloat(shear)),
			fmt.Sprintf(`\t(%d,%d,\fax%s)`, d, d*2, formatFloat(-shear)),
			fmt.Sprintf(`\t(%d,%d,\fax0)`, d*2, d*3),
		}
	case style.AnimationGlow:
		blur := 2.0 * intensity
		d := minInt(250, durMs)
		trail = []string{
			fmt.Sprintf(`\t(0,%d,\blur%s)`, d, formatFloat(blur)),
			fmt.Sprintf(`\t(%d,%d,\blur0)`, d, durMs),
		}
	}
	return lead, trail
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
