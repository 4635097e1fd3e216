package karaoke

import (
	"strings"
	"testing"

	"github.com/karalab/karasub/internal/style"
)

func TestColorBGR(t *testing.T) {
	tests := []struct {
		rgb  string
		want string
	}{
		{"FF0000", "&H000000FF"},
		{"00FF00", "&H0000FF00"},
		{"0000FF", "&H00FF0000"},
		{"#FFE600", "&H0000E6FF"},
		{"nonsense", "&H00FFFFFF"},
	}
	for _, tt := range tests {
		if got := ColorBGR(tt.rgb); got != tt.want {
			t.Errorf("ColorBGR(%q) = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}

func renderDoc(t *testing.T, d Document, segs []Segment) string {
	t.Helper()
	var b strings.Builder
	if err := d.Render(&b, segs); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func TestRenderHeader(t *testing.T) {
	d := Document{Width: 1080, Height: 1920, Style: plainStyle()}
	out := renderDoc(t, d, nil)

	for _, want := range []string{
		"ScriptType: v4.00+",
		"PlayResX: 1080",
		"PlayResY: 1920",
		"ScaledBorderAndShadow: yes",
		"WrapStyle: 2",
		"[V4+ Styles]",
		"[Events]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in header:\n%s", want, out)
		}
	}
}

func TestRenderStyleLine(t *testing.T) {
	s := plainStyle()
	s.FontName = "Anton"
	s.FontSize = 58
	s.Bold = true
	s.PrimaryColor = "FFFFFF"
	s.OutlineColor = "000000"
	s.OutlineSize = 4
	s.ShadowDepth = 2
	s.Alignment = 2
	s.MarginV = 60

	out := renderDoc(t, Document{Width: 1920, Height: 1080, Style: s}, nil)
	want := "Style: Default,Anton,58,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,-1,0,0,0,100,100,0,0,1,4,2,2,60,60,60,1"
	if !strings.Contains(out, want) {
		t.Errorf("style line missing, want %q in:\n%s", want, out)
	}
}

func TestRenderBackgroundAlpha(t *testing.T) {
	s := plainStyle()
	s.BackgroundStyle = style.BackgroundBox
	s.BackgroundColor = "000000"
	s.BackgroundAlpha = 180

	out := renderDoc(t, Document{Width: 1920, Height: 1080, Style: s}, nil)
	if !strings.Contains(out, "&HB4000000") {
		t.Errorf("back colour with 0xB4 alpha missing in:\n%s", out)
	}
}

func TestRenderDialogue(t *testing.T) {
	s := plainStyle()
	s.MaxCharsPerLine = 0
	seg := Segment{
		Start: 0,
		End:   2000,
		Words: []Word{
			{Start: 0, End: 900, Text: "hello"},
			{Start: 900, End: 2000, Text: "world"},
		},
	}
	out := renderDoc(t, Document{Width: 1920, Height: 1080, Style: s}, []Segment{seg})
	want := `Dialogue: 0,0:00:00.00,0:00:02.00,Default,,0,0,0,,{\k0}hello {\k90}world`
	if !strings.Contains(out, want) {
		t.Errorf("dialogue line missing, want %q in:\n%s", want, out)
	}
}

func TestRenderSpeakerPrefix(t *testing.T) {
	s := plainStyle()
	s.MaxCharsPerLine = 0
	seg := Segment{
		Start:   0,
		End:     1000,
		Speaker: "SPEAKER_00",
		Words:   []Word{{Start: 0, End: 1000, Text: "hi"}},
	}
	out := renderDoc(t, Document{Width: 1920, Height: 1080, Style: s, SpeakerPrefix: true}, []Segment{seg})
	if !strings.Contains(out, `[SPEAKER_00] {\k0}hi`) {
		t.Errorf("speaker prefix missing in:\n%s", out)
	}
}

func TestRenderSpeakerPrefixCountsTowardLineBudget(t *testing.T) {
	s := plainStyle()
	s.MaxCharsPerLine = 12
	s.MaxLines = 2
	seg := Segment{
		Start:   0,
		End:     1200,
		Speaker: "SPEAKER_00",
		Words: []Word{
			{Start: 0, End: 400, Text: "one"},
			{Start: 400, End: 800, Text: "two"},
			{Start: 800, End: 1200, Text: "three"},
		},
	}
	out := renderDoc(t, Document{Width: 1080, Height: 1920, Style: s, SpeakerPrefix: true}, []Segment{seg})

	want := `[SPEAKER_00]\N{\k0}one {\k40}two {\k40}three`
	if !strings.Contains(out, want) {
		t.Fatalf("dialogue text missing, want %q in:\n%s", want, out)
	}
	// the twelve-character label fills the first line by itself
	first := strings.Split(want, `\N`)[0]
	if visibleLen(first) > s.MaxCharsPerLine {
		t.Errorf("first line visible length %d exceeds %d", visibleLen(first), s.MaxCharsPerLine)
	}
}

func TestRenderSkipsEmptySegments(t *testing.T) {
	out := renderDoc(t, Document{Width: 1920, Height: 1080, Style: plainStyle()},
		[]Segment{{Start: 0, End: 1000}})
	if strings.Contains(out, "Dialogue:") {
		t.Errorf("unexpected dialogue for wordless segment:\n%s", out)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out/karaoke.ass"
	d := Document{Width: 1920, Height: 1080, Style: plainStyle()}
	seg := Segment{Start: 0, End: 1000, Words: []Word{{Start: 0, End: 1000, Text: "hi"}}}
	if err := d.WriteFile(path, []Segment{seg}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
