package cli

import (
	"context"
	"os"

	"SketchBoard/internal/config"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// Execute runs the sketchboard CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "sketchboard",
		Short:        "SketchBoard is a freehand drawing board",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().String("config", "", "path to config.toml (default "+config.DefaultPath()+")")

	root.AddCommand(newRunCmd())
	root.AddCommand(newRenderCmd())
	return root
}

// loadConfig reads the file named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	loggerFromContext(cmd.Context()).Debug("config loaded", "path", path)
	return cfg, nil
}
