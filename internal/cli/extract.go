package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karalab/karasub/internal/media"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract a speech-recognition-ready WAV from a media file",
	Long: `Extract a mono 16kHz PCM wav from an audio or video file, the input
format speech recognition tooling expects.

With --best-stream the longest audio track is selected, which helps on
files where a commentary track comes first.

Examples:
  karasub extract video.mp4
  karasub extract video.mkv --best-stream -o speech.wav
  karasub extract noisy.mp4 --filter "highpass=f=80,lowpass=f=8000"`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		Int("sample-rate", 16000, "Output sample rate in Hz")
	extractCmd.Flags().
		Bool("best-stream", false, "Pick the longest audio stream instead of the default")
	extractCmd.Flags().
		String("filter", "", "Optional ffmpeg audio filter chain")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(mediaPath))
	}

	sampleRate, _ := cmd.Flags().GetInt("sample-rate")
	bestStream, _ := cmd.Flags().GetBool("best-stream")
	filter, _ := cmd.Flags().GetString("filter")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + ".wav"
	}

	opts := media.DefaultExtractOptions()
	opts.SampleRate = sampleRate
	opts.Filter = filter

	if bestStream {
		index, err := media.BestAudioStream(mediaPath)
		if err != nil {
			return err
		}
		if index < 0 {
			return fmt.Errorf("no audio stream in %s", mediaPath)
		}
		opts.StreamIndex = index
		logger.Infow("Selected audio stream", "index", index)
	}

	logger.Infow("Extracting audio",
		"input", mediaPath,
		"output", outputPath,
		"sample_rate", sampleRate,
	)

	if err := media.ExtractWAV(ctx, mediaPath, outputPath, opts); err != nil {
		return err
	}

	duration, err := media.GetDuration(outputPath)
	if err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Audio extracted successfully: %s\n", absOutput)
	fmt.Printf("  Duration: %s\n", duration.String())

	return nil
}
