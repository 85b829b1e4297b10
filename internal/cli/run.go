package cli

import (
	"os"

	"SketchBoard/internal/ui"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the drawing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Fyne fails to parse the locale when LANG=C
			if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
				os.Setenv("LANG", "en_US.UTF-8")
			}
			return ui.RunApp(cfg, loggerFromContext(cmd.Context()))
		},
	}
}
