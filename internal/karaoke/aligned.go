package karaoke

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/karalab/karasub/internal/subtitle"
)

// JSON contract for word-level alignment output (WhisperX style):
// segments[].words[] with float-second timestamps and an optional speaker
// label per segment.
type alignedWord struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
	Text  string  `json:"text"`
}

type alignedSegment struct {
	Start   float64       `json:"start"`
	End     float64       `json:"end"`
	Speaker string        `json:"speaker"`
	Words   []alignedWord `json:"words"`
}

type alignedDocument struct {
	Segments []alignedSegment `json:"segments"`
	Result   struct {
		Segments []alignedSegment `json:"segments"`
	} `json:"result"`
}

// LoadAligned reads an alignment JSON document and returns validated
// karaoke segments: empty words are dropped, zero or negative word
// durations are repaired to 10ms, and each segment span is widened to
// cover its words. Segments without words are skipped.
func LoadAligned(r io.Reader) ([]Segment, error) {
	var doc alignedDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode alignment JSON: %w", err)
	}

	raw := doc.Segments
	if len(raw) == 0 {
		raw = doc.Result.Segments
	}

	var segments []Segment
	for _, s := range raw {
		start := msFromSeconds(s.Start)
		end := msFromSeconds(s.End)
		if end < start {
			end = start
		}

		var words []Word
		for _, w := range s.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" {
				text = strings.TrimSpace(w.Text)
			}
			if text == "" {
				continue
			}
			wordStart := msFromSeconds(w.Start)
			if w.Start == 0 && w.End == 0 {
				wordStart = start
			}
			wordEnd := msFromSeconds(w.End)
			if wordEnd <= wordStart {
				wordEnd = wordStart + 10
			}
			words = append(words, Word{Start: wordStart, End: wordEnd, Text: text})
		}
		if len(words) == 0 {
			continue
		}

		segStart := start
		segEnd := end
		for _, w := range words {
			if w.Start < segStart {
				segStart = w.Start
			}
			if w.End > segEnd {
				segEnd = w.End
			}
		}

		segments = append(segments, Segment{
			Start:   segStart,
			End:     segEnd,
			Words:   words,
			Speaker: s.Speaker,
		})
	}

	return segments, nil
}

// LoadAlignedFile is LoadAligned over a file on disk.
func LoadAlignedFile(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alignment file: %w", err)
	}
	defer file.Close()

	return LoadAligned(file)
}

// ToSegments collapses karaoke segments into plain subtitle segments,
// optionally prefixing the speaker label.
func ToSegments(segments []Segment, speakerPrefix bool) []subtitle.Segment {
	var out []subtitle.Segment
	for _, ks := range segments {
		var words []string
		for _, w := range ks.Words {
			if text := strings.TrimSpace(w.Text); text != "" {
				words = append(words, text)
			}
		}
		if len(words) == 0 {
			continue
		}

		start := ks.Start
		end := ks.End
		if end <= start {
			end = start + 1
		}
		text := strings.Join(words, " ")
		if speakerPrefix && ks.Speaker != "" {
			text = fmt.Sprintf("[%s] %s", ks.Speaker, text)
		}

		out = append(out, subtitle.Segment{
			Index: len(out) + 1,
			Start: start,
			End:   end,
			Text:  text,
		})
	}
	return out
}

func msFromSeconds(seconds float64) int {
	if seconds < 0 {
		return 0
	}
	return int(math.Round(seconds * 1000))
}
