package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/karalab/karasub/internal/config"
	"github.com/karalab/karasub/internal/karaoke"
	"github.com/karalab/karasub/internal/state"
	"github.com/karalab/karasub/internal/style"
	"github.com/karalab/karasub/internal/subtitle"
	"github.com/spf13/cobra"
)

var karaokeCmd = &cobra.Command{
	Use:   "karaoke [srt_or_alignment_file]",
	Short: "Build a styled ASS karaoke file",
	Long: `Compile word-level karaoke markup into a styled ASS subtitle file.

The input can be an SRT file, in which case word timings are estimated
from each word's length, or a word-level alignment JSON file (WhisperX
style) with exact per-word timestamps.

Examples:
  karasub karaoke clean.srt
  karasub karaoke aligned.json --style terror_true_crime
  karasub karaoke clean.srt --style viral_flat --res 1080x1920
  karasub karaoke aligned.json --speaker-prefix --uppercase off`,
	Args: cobra.ExactArgs(1),
	RunE: runKaraoke,
}

func init() {
	rootCmd.AddCommand(karaokeCmd)

	karaokeCmd.Flags().
		StringP("style", "s", "", "Style preset name (see 'karasub styles')")
	karaokeCmd.Flags().
		Int("font-size", 0, "Override the preset font size")
	karaokeCmd.Flags().
		String("uppercase", "auto", "Force uppercase text: auto, on, off")
	karaokeCmd.Flags().
		String("res", "", "Target canvas as WIDTHxHEIGHT (default 1920x1080)")
	karaokeCmd.Flags().
		Bool("speaker-prefix", false, "Prefix dialogue with the speaker label")
	karaokeCmd.Flags().
		Int("min-word-ms", karaoke.DefaultMinWordDur, "Minimum estimated word duration in milliseconds")
	karaokeCmd.Flags().
		String("state-file", "", "State file for skipping unchanged outputs")
	karaokeCmd.Flags().
		Bool("force", false, "Rebuild even when the state file says nothing changed")
}

func runKaraoke(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	styleName, _ := cmd.Flags().GetString("style")
	if styleName == "" {
		styleName = cfg.Style.Preset
	}
	fontSize, _ := cmd.Flags().GetInt("font-size")
	if fontSize == 0 {
		fontSize = cfg.Style.FontSize
	}
	uppercase, _ := cmd.Flags().GetString("uppercase")
	if !cmd.Flags().Changed("uppercase") && cfg.Style.Uppercase != "" {
		uppercase = cfg.Style.Uppercase
	}
	resStr, _ := cmd.Flags().GetString("res")
	speakerPrefix, _ := cmd.Flags().GetBool("speaker-prefix")
	minWordMs, _ := cmd.Flags().GetInt("min-word-ms")
	statePath, _ := cmd.Flags().GetString("state-file")
	force, _ := cmd.Flags().GetBool("force")
	outputPath, _ := cmd.Flags().GetString("output")

	width, height := cfg.Render.Width, cfg.Render.Height
	if resStr != "" {
		width, height, err = parseResolution(resStr)
		if err != nil {
			return err
		}
	}

	styleCfg, err := style.Preset(styleName)
	if err != nil {
		return err
	}
	styleCfg = styleCfg.WithCase(style.CaseMode(uppercase)).Resized(width, fontSize)

	if limit := style.CalcMaxChars(width, height, styleCfg.FontSize, styleCfg.AllCaps); limit < styleCfg.MaxCharsPerLine {
		styleCfg.MaxCharsPerLine = limit
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + ".ass"
	}

	logger.Infow("Building karaoke markup",
		"input", inputPath,
		"output", outputPath,
		"style", styleName,
		"canvas", fmt.Sprintf("%dx%d", width, height),
		"max_chars_per_line", styleCfg.MaxCharsPerLine,
	)

	fingerprint, err := state.Fingerprint(struct {
		Style         style.Config `json:"style"`
		Width         int          `json:"width"`
		Height        int          `json:"height"`
		SpeakerPrefix bool         `json:"speaker_prefix"`
		MinWordMs     int          `json:"min_word_ms"`
	}{styleCfg, width, height, speakerPrefix, minWordMs})
	if err != nil {
		return err
	}

	var store *state.Store
	if statePath != "" {
		store = state.Load(statePath)
		if !force && store.ShouldSkip(outputPath, fingerprint, inputPath) {
			logger.Infow("Output up to date, skipping", "output", outputPath)
			fmt.Printf("Up to date: %s\n", outputPath)
			return nil
		}
	}

	var segments []karaoke.Segment
	if strings.EqualFold(filepath.Ext(inputPath), ".json") {
		segments, err = karaoke.LoadAlignedFile(inputPath)
		if err != nil {
			return err
		}
		// over-dense aligned segments are cut on natural pauses before markup
		segments = karaoke.SplitDense(segments, karaoke.DefaultSplitOptions(), cfg.Polish.MaxDurMs)
	} else {
		srtSegments, err := subtitle.ParseSRTFile(inputPath)
		if err != nil {
			return err
		}
		segments = karaoke.FromSegments(srtSegments, minWordMs)
	}
	if len(segments) == 0 {
		return fmt.Errorf("no usable segments in %s", inputPath)
	}

	doc := karaoke.Document{
		Width:         width,
		Height:        height,
		Style:         styleCfg,
		SpeakerPrefix: speakerPrefix,
	}
	if err := doc.WriteFile(outputPath, segments); err != nil {
		return err
	}

	if store != nil {
		store.Mark(outputPath, fingerprint, inputPath)
		if err := store.Save(); err != nil {
			return err
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Karaoke subtitles written: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	fmt.Printf("  Style: %s\n", styleName)

	return nil
}

func parseResolution(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid resolution %q: expected WIDTHxHEIGHT", s)
	}
	var width, height int
	if _, err := fmt.Sscanf(w, "%d", &width); err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution width %q", w)
	}
	if _, err := fmt.Sscanf(h, "%d", &height); err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution height %q", h)
	}
	return width, height, nil
}
