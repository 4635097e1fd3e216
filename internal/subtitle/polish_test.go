package subtitle

import (
	"strings"
	"testing"
)

func testPolisher() Polisher {
	return Polisher{
		MaxCharsPerLine: 42,
		MaxLines:        2,
		MaxCPS:          17.0,
		MinDur:          700,
		MaxDur:          7000,
		MergeGap:        200,
	}
}

func TestPolishMergesSmallGaps(t *testing.T) {
	p := testPolisher()
	out := p.Polish([]Segment{
		{Start: 0, End: 1000, Text: "Hello"},
		{Start: 1100, End: 2000, Text: "world"},
		{Start: 3000, End: 4000, Text: "again"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 segments after merge, got %d", len(out))
	}
	if out[0].Text != "Hello world" || out[0].Start != 0 || out[0].End != 2000 {
		t.Errorf("merged segment = %+v", out[0])
	}
	if out[1].Text != "again" {
		t.Errorf("third segment should not merge, got %q", out[1].Text)
	}
}

func TestPolishEnforcesMinDuration(t *testing.T) {
	p := testPolisher()
	out := p.Polish([]Segment{{Start: 1000, End: 1200, Text: "Hi"}})
	if len(out) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(out))
	}
	if out[0].End != 1700 {
		t.Errorf("end = %d, want 1700 (start + min duration)", out[0].End)
	}
}

func TestPolishSplitsLongSegments(t *testing.T) {
	p := testPolisher()
	out := p.Polish([]Segment{{
		Start: 0,
		End:   21000,
		Text:  "one two three four five six",
	}})
	if len(out) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(out))
	}
	for i, seg := range out {
		if seg.Duration() != 7000 {
			t.Errorf("chunk %d duration = %d, want 7000", i, seg.Duration())
		}
	}
	if out[2].End != 21000 {
		t.Errorf("final chunk end = %d, want exactly 21000", out[2].End)
	}
	var words []string
	for _, seg := range out {
		words = append(words, strings.Fields(seg.Text)...)
	}
	if strings.Join(words, " ") != "one two three four five six" {
		t.Errorf("split lost or reordered words: %v", words)
	}
}

func TestPolishCapsReadingSpeed(t *testing.T) {
	p := testPolisher()
	text := strings.Repeat("a", 40) // 40 chars in 1s = 40 cps
	out := p.Polish([]Segment{{Start: 0, End: 1000, Text: text}})
	if len(out) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(out))
	}
	// target = 40 / 17 * 1000 = 2352ms
	if out[0].End != 2352 {
		t.Errorf("end = %d, want 2352", out[0].End)
	}
}

func TestPolishCapNeverOverlapsNext(t *testing.T) {
	p := testPolisher()
	text := strings.Repeat("a", 40)
	out := p.Polish([]Segment{
		{Start: 0, End: 1000, Text: text},
		{Start: 1500, End: 3000, Text: "next segment here"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(out))
	}
	if out[0].End != 1499 {
		t.Errorf("capped end = %d, want 1499 (next start - 1)", out[0].End)
	}
	if out[0].End >= out[1].Start {
		t.Errorf("segments overlap: %d >= %d", out[0].End, out[1].Start)
	}
}

func TestPolishDropsEmptySegments(t *testing.T) {
	p := testPolisher()
	out := p.Polish([]Segment{
		{Start: 0, End: 1000, Text: "   "},
		{Start: 2000, End: 3000, Text: "kept"},
	})
	if len(out) != 1 || out[0].Text != "kept" {
		t.Fatalf("expected only the non-empty segment, got %+v", out)
	}
	if out[0].Index != 1 {
		t.Errorf("renumbering should start at 1, got %d", out[0].Index)
	}
}

func TestPolishNoOverlappingSpans(t *testing.T) {
	p := testPolisher()
	segments := []Segment{
		{Start: 0, End: 400, Text: strings.Repeat("x", 30)},
		{Start: 900, End: 1100, Text: "short"},
		{Start: 1400, End: 30000, Text: "a very long segment with plenty of words to split into chunks"},
		{Start: 31000, End: 32000, Text: "tail"},
	}
	out := p.Polish(segments)
	for i := 1; i < len(out); i++ {
		if out[i-1].End > out[i].Start {
			t.Errorf("segments %d and %d overlap: end %d > start %d",
				i-1, i, out[i-1].End, out[i].Start)
		}
	}
	for i, seg := range out {
		if seg.Index != i+1 {
			t.Errorf("segment %d has index %d", i, seg.Index)
		}
	}
}
