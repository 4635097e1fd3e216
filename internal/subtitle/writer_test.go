package subtitle

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleSegments() []Segment {
	return []Segment{
		{Index: 1, Start: 0, End: 2000, Text: "First line."},
		{Index: 2, Start: 2500, End: 5000, Text: "Second line,\nwrapped."},
	}
}

func TestRenderSRT(t *testing.T) {
	want := `1
00:00:00,000 --> 00:00:02,000
First line.

2
00:00:02,500 --> 00:00:05,000
Second line,
wrapped.
`
	if got := RenderSRT(sampleSegments()); got != want {
		t.Errorf("RenderSRT = %q, want %q", got, want)
	}
}

func TestRenderVTT(t *testing.T) {
	want := `WEBVTT

00:00:00.000 --> 00:00:02.000
First line.

00:00:02.500 --> 00:00:05.000
Second line,
wrapped.
`
	if got := RenderVTT(sampleSegments()); got != want {
		t.Errorf("RenderVTT = %q, want %q", got, want)
	}
}

func TestSRTRoundTrip(t *testing.T) {
	rendered := RenderSRT(sampleSegments())
	parsed, err := ParseSRT(strings.NewReader(rendered))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if RenderSRT(parsed) != rendered {
		t.Errorf("render/parse/render is not byte identical:\n%q\nvs\n%q",
			RenderSRT(parsed), rendered)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(sampleSegments())
	want := "First line.\nSecond line, wrapped.\n"
	if got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
	if PlainText(nil) != "" {
		t.Errorf("PlainText(nil) should be empty")
	}
}

func TestTimestampedText(t *testing.T) {
	got := TimestampedText(sampleSegments()[:1])
	want := "00:00:00,000 --> 00:00:02,000 | First line.\n"
	if got != want {
		t.Errorf("TimestampedText = %q, want %q", got, want)
	}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleSegments()); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	var records []Record
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Index != 1 || records[0].Start != "00:00:00,000" ||
		records[0].End != "00:00:02,000" || records[0].Text != "First line." {
		t.Errorf("record 0 = %+v", records[0])
	}
}
