package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries file-level defaults for the CLI. Flags always win over
// file values; the file wins over built-in defaults.
type Config struct {
	Polish PolishConfig `yaml:"polish"`
	Style  StyleConfig  `yaml:"style"`
	Render RenderConfig `yaml:"render"`
}

type PolishConfig struct {
	MaxCPS          float64 `yaml:"max_cps"`
	MaxCharsPerLine int     `yaml:"max_chars_per_line"`
	MaxLines        int     `yaml:"max_lines"`
	MinDurMs        int     `yaml:"min_dur_ms"`
	MaxDurMs        int     `yaml:"max_dur_ms"`
	MergeGapMs      int     `yaml:"merge_gap_ms"`
}

type StyleConfig struct {
	Preset    string `yaml:"preset"`
	FontSize  int    `yaml:"font_size"`
	Uppercase string `yaml:"uppercase"`
}

type RenderConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	CRF             int    `yaml:"crf"`
	Preset          string `yaml:"preset"`
	AudioBackground string `yaml:"audio_background"`
	AudioFPS        int    `yaml:"audio_fps"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Polish: PolishConfig{
			MaxCPS:          17.0,
			MaxCharsPerLine: 42,
			MaxLines:        2,
			MinDurMs:        700,
			MaxDurMs:        7000,
			MergeGapMs:      200,
		},
		Style: StyleConfig{
			Preset:    "viral_karaoke",
			Uppercase: "auto",
		},
		Render: RenderConfig{
			Width:           1920,
			Height:          1080,
			CRF:             18,
			Preset:          "medium",
			AudioBackground: "000000",
			AudioFPS:        30,
		},
	}
}

// Load overlays a YAML file onto the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
