package cli

import (
	"fmt"

	"github.com/karalab/karasub/internal/style"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available karaoke style presets",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, args []string) error {
	fmt.Println("Available style presets:")
	for _, name := range style.Names() {
		cfg, err := style.Preset(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-20s %s\n", name, style.Description(name))
		fmt.Printf("  %-20s font %s %d, animation %s\n", "", cfg.FontName, cfg.FontSize, cfg.Animation)
	}
	return nil
}
