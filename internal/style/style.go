package style

import (
	"math"
	"regexp"
	"strings"
)

// word reveal animation kinds
type Animation string

const (
	AnimationNone        Animation = "none"
	AnimationPop         Animation = "pop"
	AnimationBounce      Animation = "bounce"
	AnimationScaleIn     Animation = "scale_in"
	AnimationShake       Animation = "shake"
	AnimationGlow        Animation = "glow"
	AnimationColorSwitch Animation = "color_switch"
)

// background box styles behind the text
type Background string

const (
	BackgroundNone      Background = "none"
	BackgroundBox       Background = "box"
	BackgroundRounded   Background = "rounded"
	BackgroundGlass     Background = "glass"
	BackgroundHighlight Background = "highlight"
)

// Config is an immutable karaoke style value. Overrides return copies;
// a Config is never mutated after construction.
type Config struct {
	FontName      string
	FontSize      int
	Bold          bool
	AllCaps       bool
	LetterSpacing int

	// 6-hex-digit RGB strings
	PrimaryColor   string
	SecondaryColor string
	OutlineColor   string
	ShadowColor    string

	OutlineSize  int
	ShadowDepth  int
	BlurStrength float64

	BackgroundStyle   Background
	BackgroundColor   string
	BackgroundAlpha   int
	BackgroundPadding int

	Animation          Animation
	AnimationIntensity float64

	HighlightColor string
	UseGradient    bool
	GradientColor  string

	MarginV         int
	Alignment       int
	MaxCharsPerLine int
	MaxLines        int
}

// Default returns the baseline configuration used when no preset applies.
func Default() Config {
	return Config{
		FontName:           "Montserrat",
		FontSize:           52,
		Bold:               true,
		AllCaps:            true,
		PrimaryColor:       "FFFFFF",
		SecondaryColor:     "FFFFFF",
		OutlineColor:       "000000",
		ShadowColor:        "000000",
		OutlineSize:        3,
		ShadowDepth:        2,
		BackgroundStyle:    BackgroundNone,
		BackgroundColor:    "000000",
		BackgroundAlpha:    180,
		BackgroundPadding:  20,
		Animation:          AnimationColorSwitch,
		AnimationIntensity: 1.0,
		HighlightColor:     "FFFF00",
		GradientColor:      "FF00FF",
		MarginV:            50,
		Alignment:          2,
		MaxCharsPerLine:    28,
		MaxLines:           2,
	}
}

// forced-case override values
type CaseMode string

const (
	CaseAuto CaseMode = "auto"
	CaseOn   CaseMode = "on"
	CaseOff  CaseMode = "off"
)

// WithCase returns a copy with the casing forced on or off; CaseAuto keeps
// the preset's choice.
func (c Config) WithCase(mode CaseMode) Config {
	out := c
	switch mode {
	case CaseOn:
		out.AllCaps = true
	case CaseOff:
		out.AllCaps = false
	}
	return out
}

// Resized returns a copy adjusted for the target canvas width and an
// optional font size override (0 keeps the preset size). The line length
// limit is rescaled from the preset's reference values (1920px canvas,
// preset font size) and floored at 10.
func (c Config) Resized(width, fontSize int) Config {
	out := c
	baseSize := c.FontSize
	if fontSize > 0 {
		out.FontSize = fontSize
	}
	if c.MaxCharsPerLine > 0 && width > 0 {
		scaleWidth := math.Max(0.5, float64(width)/1920.0)
		scaleFont := 1.0
		if out.FontSize > 0 {
			scaleFont = float64(baseSize) / float64(out.FontSize)
		}
		limit := int(math.Round(float64(c.MaxCharsPerLine) * scaleWidth * scaleFont))
		if limit < 10 {
			limit = 10
		}
		out.MaxCharsPerLine = limit
	}
	return out
}

var rgbRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// NormalizeColor validates a 6-hex-digit RGB string, falling back to opaque
// white. The fallback is silent: a bad color only affects presentation.
func NormalizeColor(rgb string) string {
	rgb = strings.TrimPrefix(strings.TrimSpace(rgb), "#")
	if !rgbRe.MatchString(rgb) {
		return "FFFFFF"
	}
	return strings.ToUpper(rgb)
}

// ParseAnimation maps a name to an animation kind; unrecognized names are
// treated as none, never an error.
func ParseAnimation(name string) Animation {
	switch Animation(strings.ToLower(strings.TrimSpace(name))) {
	case AnimationPop:
		return AnimationPop
	case AnimationBounce:
		return AnimationBounce
	case AnimationScaleIn:
		return AnimationScaleIn
	case AnimationShake:
		return AnimationShake
	case AnimationGlow:
		return AnimationGlow
	case AnimationColorSwitch:
		return AnimationColorSwitch
	default:
		return AnimationNone
	}
}
