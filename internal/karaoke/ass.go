package karaoke

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/karalab/karasub/internal/style"
	"github.com/karalab/karasub/internal/timecode"
)

// Document renders karaoke segments as an ASS subtitle script.
type Document struct {
	Width         int
	Height        int
	Style         style.Config
	SpeakerPrefix bool
}

// ColorBGR converts a 6-hex RGB string to the ASS &H00BBGGRR form. Invalid
// colors normalize to white rather than failing the render.
func ColorBGR(rgb string) string {
	rgb = style.NormalizeColor(rgb)
	return "&H00" + rgb[4:6] + rgb[2:4] + rgb[0:2]
}

// Render writes the full script: header, the single Default style line and
// one Dialogue event per segment with karaoke reveal markup.
func (d Document) Render(w io.Writer, segments []Segment) error {
	s := d.Style

	bold := 0
	if s.Bold {
		bold = -1
	}

	back := "&H00000000"
	if s.BackgroundStyle != style.BackgroundNone {
		back = ColorBGR(s.BackgroundColor)
		back = fmt.Sprintf("&H%02X%s", s.BackgroundAlpha, back[4:])
	}

	var b strings.Builder
	b.WriteString("[Script Info]\n")
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", d.Width)
	fmt.Fprintf(&b, "PlayResY: %d\n", d.Height)
	b.WriteString("ScaledBorderAndShadow: yes\n")
	b.WriteString("WrapStyle: 2\n")
	b.WriteString("\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(&b, "Style: Default,%s,%d,%s,%s,%s,%s,%d,0,0,0,100,100,%d,0,1,%d,%d,%d,60,60,%d,1\n",
		s.FontName, s.FontSize,
		ColorBGR(s.PrimaryColor), ColorBGR(s.SecondaryColor),
		ColorBGR(s.OutlineColor), back,
		bold, s.LetterSpacing, s.OutlineSize, s.ShadowDepth,
		s.Alignment, s.MarginV)
	b.WriteString("\n")

	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	builder := Builder{Style: s}
	for _, seg := range segments {
		text := builder.Text(seg.Words, seg.Start)
		if text == "" {
			continue
		}
		// prefix before wrapping so the label counts toward the line budget
		if d.SpeakerPrefix && seg.Speaker != "" {
			text = fmt.Sprintf("[%s] %s", seg.Speaker, text)
		}
		if s.MaxCharsPerLine > 0 && s.MaxLines > 0 {
			text = WrapLine(text, s.MaxCharsPerLine, s.MaxLines)
		}
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			timecode.FormatASS(float64(seg.Start)/1000.0),
			timecode.FormatASS(float64(seg.End)/1000.0),
			text)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders the document to disk, creating parent directories.
func (d Document) WriteFile(path string, segments []Segment) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ASS file: %w", err)
	}
	defer file.Close()

	if err := d.Render(file, segments); err != nil {
		return fmt.Errorf("failed to write ASS file: %w", err)
	}
	return nil
}
