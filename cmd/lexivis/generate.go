package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexivis/pkg/lexivis"
	"github.com/cognicore/lexivis/pkg/lexivis/config"
	"github.com/cognicore/lexivis/pkg/lexivis/output"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "generate <chapter files...>",
		Short: "Compute word statistics for each chapter and write visualizer JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.cfg
			start := time.Now()

			comps, err := (&config.Loader{Config: cfg, Logger: ctx.logger}).Load()
			if err != nil {
				return err
			}

			engine := lexivis.New(lexivis.Options{
				Sanitizer: comps.Sanitizer,
				Reader:    comps.Reader,
				Selection: comps.Selection,
				Range:     &comps.Range,
				Workers:   cfg.Workers,
				Logger:    ctx.logger,
			})

			res, err := engine.GenerateFiles(cmd.Context(), args, cfg.WordCount)
			if err != nil {
				return err
			}
			if err := output.WriteJSON(cfg.Outfile, res.Chapters); err != nil {
				return err
			}

			ctx.logger.Info("visualization data written",
				"run_id", res.RunID,
				"chapters", len(res.Chapters),
				"words", res.Words(),
				"outfile", cfg.Outfile,
				"elapsed", time.Since(start).Round(time.Millisecond))

			if summary {
				fmt.Fprintln(cmd.OutOrStdout(), output.SummaryTable(res.Chapters, args, cfg.SummaryLength))
			}
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringP("outfile", "o", defaults.Outfile, "Output JSON path")
	cmd.Flags().IntP("words", "n", defaults.WordCount, "Words reported per chapter")
	cmd.Flags().String("selection", defaults.Selection, "Word selection: encounter or frequency")
	cmd.Flags().Int("workers", defaults.Workers, "Chapters analyzed in parallel")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a table of the top words per chapter")

	return cmd
}
