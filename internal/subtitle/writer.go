package subtitle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/karalab/karasub/internal/timecode"
)

// RenderSRT serializes segments as a SubRip document: 1-based index line,
// "start --> end" line, text, blank separator, single trailing newline.
func RenderSRT(segments []Segment) string {
	var sb strings.Builder
	for i, s := range segments {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			i+1,
			timecode.FormatSRT(s.Start),
			timecode.FormatSRT(s.End),
			strings.TrimSpace(s.Text))
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// RenderVTT serializes segments as a WebVTT document: header token, blank
// line, then per segment a time line and text with a blank separator.
func RenderVTT(segments []Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, s := range segments {
		fmt.Fprintf(&sb, "%s --> %s\n%s\n\n",
			timecode.FormatVTT(s.Start),
			timecode.FormatVTT(s.End),
			strings.TrimSpace(s.Text))
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// PlainText renders one whitespace-joined line per segment.
func PlainText(segments []Segment) string {
	var lines []string
	for _, s := range segments {
		if text := OneLine(s.Text); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// TimestampedText renders "start --> end | text" per segment.
func TimestampedText(segments []Segment) string {
	var lines []string
	for _, s := range segments {
		lines = append(lines, fmt.Sprintf("%s --> %s | %s",
			timecode.FormatSRT(s.Start),
			timecode.FormatSRT(s.End),
			OneLine(s.Text)))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// structured record for downstream tooling
type Record struct {
	Index int    `json:"idx"`
	Start string `json:"start"`
	End   string `json:"end"`
	Text  string `json:"text"`
}

func Records(segments []Segment) []Record {
	records := make([]Record, 0, len(segments))
	for i, s := range segments {
		records = append(records, Record{
			Index: i + 1,
			Start: timecode.FormatSRT(s.Start),
			End:   timecode.FormatSRT(s.End),
			Text:  s.Text,
		})
	}
	return records
}

func WriteRecords(w io.Writer, segments []Segment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Records(segments)); err != nil {
		return fmt.Errorf("failed to encode segment records: %w", err)
	}
	return nil
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
