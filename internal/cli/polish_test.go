package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestLoadPolishInputSRT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.srt")
	content := "1\n00:00:00,000 --> 00:00:01,000\nhello there\n"
	os.WriteFile(path, []byte(content), 0644)

	segments, err := loadPolishInput(path, false, 7000)
	if err != nil {
		t.Fatalf("loadPolishInput: %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "hello there" {
		t.Fatalf("segments = %+v", segments)
	}
}

func TestLoadPolishInputAlignedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aligned.json")
	doc := `{
		"segments": [
			{
				"start": 0.0,
				"end": 2.0,
				"speaker": "SPEAKER_00",
				"words": [
					{"start": 0.0, "end": 0.9, "word": "hello"},
					{"start": 0.9, "end": 2.0, "word": "there"}
				]
			}
		]
	}`
	os.WriteFile(path, []byte(doc), 0644)

	segments, err := loadPolishInput(path, true, 7000)
	if err != nil {
		t.Fatalf("loadPolishInput: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(segments))
	}
	if segments[0].Text != "[SPEAKER_00] hello there" {
		t.Errorf("text = %q", segments[0].Text)
	}
	if segments[0].Start != 0 || segments[0].End != 2000 {
		t.Errorf("span = [%d,%d], want [0,2000]", segments[0].Start, segments[0].End)
	}

	plain, err := loadPolishInput(path, false, 7000)
	if err != nil {
		t.Fatalf("loadPolishInput: %v", err)
	}
	if plain[0].Text != "hello there" {
		t.Errorf("text = %q, want no speaker prefix", plain[0].Text)
	}
}

func TestLoadPolishInputAlignedSplitsDenseSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dense.json")
	var words []string
	cur := 0.0
	for i := 0; i < 20; i++ {
		words = append(words, `{"start": `+formatSeconds(cur)+`, "end": `+formatSeconds(cur+1.0)+`, "word": "abcdef"}`)
		cur += 1.08
	}
	doc := `{"segments": [{"start": 0.0, "end": ` + formatSeconds(cur) + `, "words": [` + strings.Join(words, ",") + `]}]}`
	os.WriteFile(path, []byte(doc), 0644)

	segments, err := loadPolishInput(path, false, 7000)
	if err != nil {
		t.Fatalf("loadPolishInput: %v", err)
	}
	if len(segments) < 2 {
		t.Fatalf("segments = %d, want the dense segment cut up", len(segments))
	}
	for i, seg := range segments {
		if n := len(strings.Fields(seg.Text)); n > 14 {
			t.Errorf("segment %d has %d words", i, n)
		}
	}
}

func TestLoadPolishInputMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadPolishInput(filepath.Join(dir, "absent.srt"), false, 7000); err == nil {
		t.Fatal("expected error for missing SRT")
	}
	if _, err := loadPolishInput(filepath.Join(dir, "absent.json"), false, 7000); err == nil {
		t.Fatal("expected error for missing JSON")
	}
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 2, 64)
}
