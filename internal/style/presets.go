package style

import (
	"fmt"
	"sort"
)

// the viral karaoke highlight, the most common Reels/TikTok/Shorts look
func viralKaraoke() Config {
	c := Default()
	c.FontName = "Montserrat"
	c.FontSize = 46
	c.Bold = true
	c.AllCaps = true
	c.LetterSpacing = 1
	c.PrimaryColor = "FFE600"
	c.SecondaryColor = "F5F5F5"
	c.OutlineColor = "0B0B0B"
	c.OutlineSize = 3
	c.ShadowDepth = 1
	c.BlurStrength = 0.6
	c.BackgroundStyle = BackgroundRounded
	c.BackgroundColor = "000000"
	c.BackgroundAlpha = 160
	c.BackgroundPadding = 18
	c.Animation = AnimationPop
	c.AnimationIntensity = 0.9
	c.HighlightColor = "00FFC2"
	c.MarginV = 80
	c.MaxCharsPerLine = 34
	c.MaxLines = 2
	return c
}

// same base as the viral look, no animation, flat yellow highlight
func viralFlat() Config {
	c := viralKaraoke()
	c.BlurStrength = 0.4
	c.Animation = AnimationNone
	c.AnimationIntensity = 0.0
	c.HighlightColor = "FFE600"
	return c
}

// minimalist professional look for podcasts and interviews
func cleanPremium() Config {
	c := Default()
	c.FontName = "Inter"
	c.FontSize = 40
	c.Bold = false
	c.AllCaps = false
	c.PrimaryColor = "FFFFFF"
	c.SecondaryColor = "B5C0CB"
	c.OutlineColor = "000000"
	c.OutlineSize = 0
	c.ShadowDepth = 0
	c.BackgroundStyle = BackgroundRounded
	c.BackgroundColor = "000000"
	c.BackgroundAlpha = 190
	c.BackgroundPadding = 22
	c.Animation = AnimationColorSwitch
	c.AnimationIntensity = 0.6
	c.MarginV = 90
	c.MaxCharsPerLine = 36
	c.MaxLines = 2
	return c
}

// condensed tech look with a cyan highlight
func tutorialTech() Config {
	c := Default()
	c.FontName = "Oswald"
	c.FontSize = 44
	c.Bold = true
	c.AllCaps = true
	c.LetterSpacing = 1
	c.PrimaryColor = "00E0FF"
	c.SecondaryColor = "EFF7FF"
	c.OutlineColor = "000000"
	c.OutlineSize = 2
	c.ShadowDepth = 1
	c.Animation = AnimationScaleIn
	c.AnimationIntensity = 1.2
	c.MarginV = 78
	c.MaxCharsPerLine = 36
	c.MaxLines = 2
	return c
}

// rounded bold storytelling caption with a shake accent
func storytimeFofoca() Config {
	c := Default()
	c.FontName = "Poppins"
	c.FontSize = 44
	c.Bold = true
	c.AllCaps = false
	c.PrimaryColor = "111111"
	c.SecondaryColor = "2E2E2E"
	c.OutlineColor = "FFFFFF"
	c.OutlineSize = 3
	c.BackgroundStyle = BackgroundBox
	c.BackgroundColor = "FFFFFF"
	c.BackgroundAlpha = 230
	c.BackgroundPadding = 18
	c.Animation = AnimationShake
	c.AnimationIntensity = 0.6
	c.MarginV = 76
	c.MaxCharsPerLine = 32
	c.MaxLines = 2
	return c
}

// warm golden glow for motivational captions
func motivacional() Config {
	c := Default()
	c.FontName = "Montserrat"
	c.FontSize = 48
	c.Bold = true
	c.AllCaps = true
	c.LetterSpacing = 2
	c.PrimaryColor = "FFD166"
	c.SecondaryColor = "FFFFFF"
	c.OutlineColor = "000000"
	c.OutlineSize = 2
	c.ShadowDepth = 2
	c.BlurStrength = 0.6
	c.Animation = AnimationGlow
	c.AnimationIntensity = 1.1
	c.UseGradient = true
	c.GradientColor = "FFA500"
	c.MarginV = 82
	c.MaxCharsPerLine = 36
	c.MaxLines = 2
	return c
}

// condensed dark-red glitch look for true crime captions
func terrorTrueCrime() Config {
	c := Default()
	c.FontName = "Oswald"
	c.FontSize = 44
	c.Bold = true
	c.AllCaps = true
	c.LetterSpacing = 3
	c.PrimaryColor = "E60000"
	c.SecondaryColor = "FFFFFF"
	c.OutlineColor = "000000"
	c.OutlineSize = 2
	c.BackgroundStyle = BackgroundBox
	c.BackgroundColor = "000000"
	c.BackgroundAlpha = 200
	c.Animation = AnimationShake
	c.AnimationIntensity = 1.3
	c.MarginV = 72
	c.MaxCharsPerLine = 32
	c.MaxLines = 2
	return c
}

var presets = map[string]func() Config{
	"viral_karaoke":     viralKaraoke,
	"viral_flat":        viralFlat,
	"clean_premium":     cleanPremium,
	"tutorial_tech":     tutorialTech,
	"storytime_fofoca":  storytimeFofoca,
	"motivacional":      motivacional,
	"terror_true_crime": terrorTrueCrime,
}

var descriptions = map[string]string{
	"viral_karaoke":     "High-contrast karaoke highlight with pop animation",
	"viral_flat":        "Viral base without animation, flat yellow highlight",
	"clean_premium":     "Minimal boxed caption for podcasts and interviews",
	"tutorial_tech":     "Condensed font with cyan scale-in highlight",
	"storytime_fofoca":  "Boxed storytelling caption with shake accent",
	"motivacional":      "Glowing golden motivational caption",
	"terror_true_crime": "Aggressive dark-red glitch caption",
}

// Preset returns the named style preset. Unknown names are an error: a
// caller asking for a preset that does not exist is a contract violation,
// not something to silently normalize.
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown style preset %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the preset catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the one-line summary for a preset name.
func Description(name string) string {
	return descriptions[name]
}
