package cli

import (
	"errors"
	"fmt"
	"time"

	"SketchBoard/internal/config"
	"SketchBoard/internal/export"
	"SketchBoard/internal/script"
	"SketchBoard/internal/surface"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [script.json]",
		Short: "Replay an input script and write the trimmed drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return render(loggerFromContext(cmd.Context()), cfg, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", export.DefaultPNGName, "output file (.png or .pdf)")
	return cmd
}

func render(logger *log.Logger, cfg config.Config, scriptPath, output string) error {
	start := time.Now()
	if _, err := export.FormatFromPath(output); err != nil {
		return err
	}
	sc, err := script.Load(scriptPath)
	if err != nil {
		return err
	}

	opts, err := cfg.SurfaceOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger
	s := surface.New(opts)
	if err := script.Run(s, sc.Steps); err != nil {
		return fmt.Errorf("%s: %w", scriptPath, err)
	}

	img, err := s.ExportImage()
	if errors.Is(err, surface.ErrNothingToExport) {
		return fmt.Errorf("%s draws nothing: %w", scriptPath, err)
	}
	if err != nil {
		return err
	}
	if err := export.WriteFile(output, img); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Infof("Wrote %s (%dx%d, %s)", output, img.Bounds().Dx(), img.Bounds().Dy(), time.Since(start).Round(time.Millisecond))
	return nil
}
