package main

import (
	"github.com/spf13/cobra"

	"github.com/leengari/sheetplot/internal/pipeline"
	"github.com/leengari/sheetplot/internal/summary"
)

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print sepal width statistics per species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.openSource()
			if err != nil {
				return err
			}
			defer src.Close()

			groups, err := pipeline.New(src, nil, a.logger).Groups(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := summary.Describe(groups)
			if err != nil {
				return err
			}
			summary.Render(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}
