package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karalab/karasub/internal/config"
	"github.com/karalab/karasub/internal/media"
	"github.com/karalab/karasub/internal/style"
	"github.com/spf13/cobra"
)

var burnCmd = &cobra.Command{
	Use:   "burn [media_file] [ass_file]",
	Short: "Burn an ASS subtitle file into a video",
	Long: `Render karaoke subtitles into the video frames.

Audio-only inputs are turned into a video over a solid color canvas so
the karaoke can still be watched.

Examples:
  karasub burn video.mp4 karaoke.ass
  karasub burn video.mp4 karaoke.ass --crf 23 --preset fast
  karasub burn podcast.mp3 karaoke.ass --res 1080x1920 --audio-bg 101010`,
	Args: cobra.ExactArgs(2),
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)

	burnCmd.Flags().
		Int("crf", 0, "x264 quality, lower is better (0 = config default)")
	burnCmd.Flags().
		String("preset", "", "x264 speed preset (empty = config default)")
	burnCmd.Flags().
		String("res", "", "Canvas for audio-only inputs as WIDTHxHEIGHT")
	burnCmd.Flags().
		String("audio-bg", "", "Canvas color for audio-only inputs, 6-hex RGB")
	burnCmd.Flags().
		Int("audio-fps", 0, "Canvas frame rate for audio-only inputs (0 = config default)")
}

func runBurn(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	assPath := args[1]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(mediaPath))
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts := media.DefaultBurnOptions()
	opts.CRF = cfg.Render.CRF
	opts.Preset = cfg.Render.Preset
	opts.Width = cfg.Render.Width
	opts.Height = cfg.Render.Height
	opts.AudioBackground = cfg.Render.AudioBackground
	opts.AudioFPS = cfg.Render.AudioFPS

	if v, _ := cmd.Flags().GetInt("crf"); v > 0 {
		opts.CRF = v
	}
	if v, _ := cmd.Flags().GetString("preset"); v != "" {
		opts.Preset = v
	}
	if v, _ := cmd.Flags().GetString("res"); v != "" {
		opts.Width, opts.Height, err = parseResolution(v)
		if err != nil {
			return err
		}
	}
	if v, _ := cmd.Flags().GetString("audio-bg"); v != "" {
		opts.AudioBackground = style.NormalizeColor(v)
	}
	if v, _ := cmd.Flags().GetInt("audio-fps"); v > 0 {
		opts.AudioFPS = v
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + ".karaoke.mp4"
	}

	logger.Infow("Burning subtitles",
		"input", mediaPath,
		"subtitles", assPath,
		"output", outputPath,
		"crf", opts.CRF,
		"preset", opts.Preset,
	)

	if err := media.BurnSubtitles(ctx, mediaPath, assPath, outputPath, opts); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitled video written: %s\n", absOutput)

	return nil
}
