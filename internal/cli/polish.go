package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karalab/karasub/internal/config"
	"github.com/karalab/karasub/internal/glossary"
	"github.com/karalab/karasub/internal/karaoke"
	"github.com/karalab/karasub/internal/subtitle"
	"github.com/spf13/cobra"
)

var polishCmd = &cobra.Command{
	Use:   "polish [srt_or_alignment_file]",
	Short: "Clean up subtitle timing and line breaks",
	Long: `Polish raw subtitles for readability: merge near-adjacent fragments,
enforce minimum and maximum durations, cap the reading speed, and
rewrap text to a line grid.

The input can be an SRT file or a word-level alignment JSON file
(WhisperX style); alignment input is first cut on natural pauses and
collapsed into plain segments.

Examples:
  karasub polish raw.srt
  karasub polish raw.srt --vtt -o clean.vtt
  karasub polish aligned.json --speaker-prefix
  karasub polish raw.srt --max-cps 20 --max-chars-per-line 36
  karasub polish raw.srt --glossary terms.json --redact-pii`,
	Args: cobra.ExactArgs(1),
	RunE: runPolish,
}

func init() {
	rootCmd.AddCommand(polishCmd)

	polishCmd.Flags().
		Float64("max-cps", 0, "Maximum characters per second (0 = config default)")
	polishCmd.Flags().
		Int("max-chars-per-line", 0, "Maximum characters per wrapped line (0 = config default)")
	polishCmd.Flags().
		Int("max-lines", 0, "Maximum lines per subtitle (0 = config default)")
	polishCmd.Flags().
		Int("min-dur-ms", 0, "Minimum subtitle duration in milliseconds (0 = config default)")
	polishCmd.Flags().
		Int("max-dur-ms", 0, "Maximum subtitle duration in milliseconds (0 = config default)")
	polishCmd.Flags().
		Int("merge-gap-ms", -1, "Merge segments separated by at most this gap (-1 = config default)")
	polishCmd.Flags().
		Bool("vtt", false, "Write WebVTT instead of SRT")
	polishCmd.Flags().
		Bool("timestamps", false, "Also write a timestamped transcript next to the output")
	polishCmd.Flags().
		Bool("records", false, "Also write segment records as JSON next to the output")
	polishCmd.Flags().
		String("glossary", "", "Glossary file of term corrections to apply")
	polishCmd.Flags().
		Bool("redact-pii", false, "Mask emails, phone numbers and document IDs")
	polishCmd.Flags().
		Bool("speaker-prefix", false, "Prefix alignment-input text with the speaker label")
}

func runPolish(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	polisher := polisherFromConfig(cfg.Polish)
	if v, _ := cmd.Flags().GetFloat64("max-cps"); v > 0 {
		polisher.MaxCPS = v
	}
	if v, _ := cmd.Flags().GetInt("max-chars-per-line"); v > 0 {
		polisher.MaxCharsPerLine = v
	}
	if v, _ := cmd.Flags().GetInt("max-lines"); v > 0 {
		polisher.MaxLines = v
	}
	if v, _ := cmd.Flags().GetInt("min-dur-ms"); v > 0 {
		polisher.MinDur = v
	}
	if v, _ := cmd.Flags().GetInt("max-dur-ms"); v > 0 {
		polisher.MaxDur = v
	}
	if v, _ := cmd.Flags().GetInt("merge-gap-ms"); v >= 0 {
		polisher.MergeGap = v
	}

	useVTT, _ := cmd.Flags().GetBool("vtt")
	writeTimestamps, _ := cmd.Flags().GetBool("timestamps")
	writeRecords, _ := cmd.Flags().GetBool("records")
	glossaryPath, _ := cmd.Flags().GetString("glossary")
	redactPII, _ := cmd.Flags().GetBool("redact-pii")
	speakerPrefix, _ := cmd.Flags().GetBool("speaker-prefix")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		ext := ".srt"
		if useVTT {
			ext = ".vtt"
		}
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + ".polished" + ext
	}

	segments, err := loadPolishInput(inputPath, speakerPrefix, polisher.MaxDur)
	if err != nil {
		return err
	}

	logger.Infow("Polishing subtitles",
		"input", inputPath,
		"output", outputPath,
		"segments", len(segments),
		"max_cps", polisher.MaxCPS,
	)

	if glossaryPath != "" {
		table, err := glossary.Load(glossaryPath)
		if err != nil {
			return err
		}
		for i := range segments {
			segments[i].Text = table.Apply(segments[i].Text)
		}
		logger.Infow("Applied glossary", "terms", len(table))
	}
	if redactPII {
		for i := range segments {
			segments[i].Text = glossary.Redact(segments[i].Text)
		}
	}

	polished := polisher.Polish(segments)

	render := subtitle.RenderSRT
	if useVTT {
		render = subtitle.RenderVTT
	}
	if err := subtitle.WriteFile(outputPath, render(polished)); err != nil {
		return err
	}

	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	if writeTimestamps {
		if err := subtitle.WriteFile(base+".txt", subtitle.TimestampedText(polished)); err != nil {
			return err
		}
	}
	if writeRecords {
		file, err := os.Create(base + ".json")
		if err != nil {
			return fmt.Errorf("failed to create records file: %w", err)
		}
		err = subtitle.WriteRecords(file, polished)
		file.Close()
		if err != nil {
			return err
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles polished successfully: %s\n", absOutput)
	fmt.Printf("  Segments: %d -> %d\n", len(segments), len(polished))

	return nil
}

// loadPolishInput reads either an SRT file or a word-level alignment JSON
// file. Alignment segments are cut on natural pauses when over-dense, then
// collapsed into plain segments.
func loadPolishInput(path string, speakerPrefix bool, maxDurMs int) ([]subtitle.Segment, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		ksegs, err := karaoke.LoadAlignedFile(path)
		if err != nil {
			return nil, err
		}
		ksegs = karaoke.SplitDense(ksegs, karaoke.DefaultSplitOptions(), maxDurMs)
		return karaoke.ToSegments(ksegs, speakerPrefix), nil
	}
	return subtitle.ParseSRTFile(path)
}

func polisherFromConfig(pc config.PolishConfig) subtitle.Polisher {
	p := subtitle.DefaultPolisher()
	if pc.MaxCPS > 0 {
		p.MaxCPS = pc.MaxCPS
	}
	if pc.MaxCharsPerLine > 0 {
		p.MaxCharsPerLine = pc.MaxCharsPerLine
	}
	if pc.MaxLines > 0 {
		p.MaxLines = pc.MaxLines
	}
	if pc.MinDurMs > 0 {
		p.MinDur = pc.MinDurMs
	}
	if pc.MaxDurMs > 0 {
		p.MaxDur = pc.MaxDurMs
	}
	if pc.MergeGapMs >= 0 {
		p.MergeGap = pc.MergeGapMs
	}
	return p
}
