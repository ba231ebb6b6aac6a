package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/stats"
	"github.com/heartmarshall/rbn-lexicon/internal/store"
)

func (c *cli) statsCmd() *cobra.Command {
	var (
		storePath  string
		attributes []string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print polysemy and attribute distributions of a store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lex, err := store.Load(storePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "senses: %d, synsets: %d\n\n", len(lex.Entries), len(lex.Synsets))
			stats.RenderPolysemy(out, stats.PolysemyDistribution(stats.Polysemy(lex)))

			if len(attributes) == 0 {
				return nil
			}
			st, err := stats.AttributeFrequencies(lex, attributes)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			stats.RenderFrequencies(out, st)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&storePath, "store", "", "store file written by convert")
	f.StringSliceVar(&attributes, "attributes", nil, "attributes whose joint distribution to print, e.g. pos,lu_type")
	_ = cmd.MarkFlagRequired("store")
	return cmd
}
