package subtitle

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapTextSingleLine(t *testing.T) {
	if got := WrapText("hello world", 42, 2); got != "hello world" {
		t.Errorf("WrapText = %q, want unchanged text", got)
	}
}

func TestWrapTextGreedyPack(t *testing.T) {
	got := WrapText("aaa bbb ccc", 7, 3)
	want := "aaa bbb\nccc"
	if got != want {
		t.Errorf("WrapText = %q, want %q", got, want)
	}
}

func TestWrapTextRebalance(t *testing.T) {
	// greedy packing needs 3 lines; rebalancing redistributes by word count
	// and the overflow beyond maxLines is truncated
	got := WrapText("aaaa bbbb cccc dddd eeee", 10, 2)
	want := "aaaa bbbb\ncccc dddd"
	if got != want {
		t.Errorf("WrapText = %q, want %q", got, want)
	}
}

func TestWrapTextOverlongWordKept(t *testing.T) {
	got := WrapText("supercalifragilistic", 5, 2)
	if got != "supercalifragilistic" {
		t.Errorf("overlong single word should be kept intact, got %q", got)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if got := WrapText("   ", 42, 2); got != "" {
		t.Errorf("WrapText of blank text = %q, want empty", got)
	}
}

func TestWrapTextLineLimitProperty(t *testing.T) {
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"um dois três quatro cinco seis sete oito nove dez",
		"word " + strings.Repeat("a", 30) + " tail end of it",
	}
	for _, in := range inputs {
		out := WrapText(in, 16, 2)
		lines := strings.Split(out, "\n")
		if len(lines) > 2 {
			t.Errorf("WrapText(%q) produced %d lines", in, len(lines))
		}
		for _, line := range lines {
			if utf8.RuneCountInString(line) > 16 && strings.Contains(line, " ") {
				t.Errorf("multi-word line exceeds limit: %q", line)
			}
		}
	}
}
