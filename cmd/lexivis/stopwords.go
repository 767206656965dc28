package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexivis/pkg/lexivis/config"
)

func newStopwordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stopwords",
		Short: "Print the effective stoplist, one term per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := (&config.Loader{Config: ctx.cfg, Logger: ctx.logger}).Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range comps.Stoplist.All() {
				src, _ := comps.Stoplist.SourceOf(w)
				fmt.Fprintf(out, "%s\t%s\n", strconv.Quote(w), src)
			}
			if comps.Stoplist.UsesSnowball() {
				fmt.Fprintln(out, "# plus the snowball English stopword list")
			}
			return nil
		},
	}
}
