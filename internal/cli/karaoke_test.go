package cli

import (
	"testing"

	"github.com/karalab/karasub/internal/config"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in            string
		width, height int
		wantErr       bool
	}{
		{"1920x1080", 1920, 1080, false},
		{"1080X1920", 1080, 1920, false},
		{"720x720", 720, 720, false},
		{"1920", 0, 0, true},
		{"x1080", 0, 0, true},
		{"1920x", 0, 0, true},
		{"0x1080", 0, 0, true},
		{"-1x100", 0, 0, true},
		{"widexhigh", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseResolution(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseResolution(%q) = %d,%d, want error", tt.in, w, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResolution(%q): %v", tt.in, err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("parseResolution(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.width, tt.height)
			}
		})
	}
}

func TestPolisherFromConfig(t *testing.T) {
	p := polisherFromConfig(config.Default().Polish)
	if p.MaxCPS != 17.0 || p.MaxCharsPerLine != 42 {
		t.Errorf("defaults = %+v", p)
	}

	p = polisherFromConfig(config.PolishConfig{MaxCPS: 20, MergeGapMs: 0})
	if p.MaxCPS != 20 {
		t.Errorf("MaxCPS = %v, want 20", p.MaxCPS)
	}
	if p.MergeGap != 0 {
		t.Errorf("MergeGap = %d, want explicit 0", p.MergeGap)
	}
	// unset fields keep the built-in defaults
	if p.MaxLines != 2 || p.MinDur != 700 {
		t.Errorf("partial config = %+v", p)
	}
}
