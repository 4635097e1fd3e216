package cli

import (
	"github.com/karalab/karasub/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "karasub",
	Short: "Subtitle timing and karaoke markup engine",
	Long: `Karasub polishes raw subtitle timing and compiles word-level
karaoke markup in CapCut-style presets.

It reads SRT files or word-level alignment JSON, cleans up segment
timing for readability, and writes SRT, VTT, or styled ASS output
that can be burned into video.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		String("config", "", "Path to a karasub YAML config file")
}
