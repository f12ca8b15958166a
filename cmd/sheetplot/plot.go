package main

import (
	"github.com/spf13/cobra"

	"github.com/leengari/sheetplot/internal/figure"
	"github.com/leengari/sheetplot/internal/pipeline"
)

func newPlotCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the sepal width violin plot",
		Long: `Read the iris[#All] table, plot sepal_width by species as violins
and write the figure to --output ("-" for stdout).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.openSource()
			if err != nil {
				return err
			}
			defer src.Close()

			var display figure.Display = figure.FileDisplay{Path: a.cfg.Output}
			if a.cfg.Output == "-" {
				display = figure.WriterDisplay{W: cmd.OutOrStdout(), Format: format}
			}

			p := pipeline.New(src, display, a.logger)
			p.AddObserver(pipeline.NewLoggingObserver(a.logger))
			if err := p.Run(cmd.Context()); err != nil {
				return err
			}

			if a.cfg.Output != "-" {
				a.logger.Info("figure written", "output", a.cfg.Output)
			}
			return nil
		},
	}

	cmd.Flags().String("output", "violin.png", `Output file; the extension picks the format, "-" writes to stdout`)
	cmd.Flags().StringVar(&format, "format", figure.DefaultFormat, "Image format when writing to stdout")
	return cmd
}
