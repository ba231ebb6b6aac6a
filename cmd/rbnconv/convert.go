package main

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/rbn-lexicon/internal/app/converter"
	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/pkg/ctxutil"
)

func (c *cli) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Extract, filter and link the XML lexicon and write the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conv, lem := &c.cfg.Convert, &c.cfg.Lemon
			overrideString(cmd, "input", &conv.InputPath)
			overrideString(cmd, "format", &conv.Format)
			overrideString(cmd, "synsets", &conv.SynsetsPath)
			overrideString(cmd, "link", &conv.LinkPath)
			overrideString(cmd, "output", &conv.OutputPath)
			overrideString(cmd, "allowed-prefixes", &conv.AllowedPrefixesRaw)
			overrideBool(cmd, "exclude-sub-numbered", &conv.ExcludeSubNumbered)
			overrideString(cmd, "lemon-output", &lem.OutputPath)
			overrideString(cmd, "namespace", &lem.Namespace)
			overrideString(cmd, "short-namespace", &lem.ShortNamespace)
			if err := c.revalidate(); err != nil {
				return err
			}

			ctx, runID := ctxutil.NewRun(cmd.Context())
			c.log.Info("conversion started",
				slog.String("run_id", runID.String()),
				slog.String("input", conv.InputPath),
				slog.String("format", conv.Format),
				slog.Any("allowed_prefixes", conv.AllowedPrefixes),
			)

			p := converter.NewPipeline(c.log, converter.FromConfig(c.cfg))
			if err := p.Run(ctx); err != nil {
				return err
			}

			byReason := make(map[domain.Rejection]int)
			for _, reason := range p.Rejected() {
				byReason[reason]++
			}
			for _, reason := range slices.Sorted(maps.Keys(byReason)) {
				c.log.Info("rejections", slog.String("reason", string(reason)), slog.Int("count", byReason[reason]))
			}
			if lemonOut := lem.OutputPath; lemonOut != "" {
				c.log.Info("lemon export written", slog.String("path", lemonOut))
			}
			c.log.Info("store written", slog.String("path", conv.OutputPath))
			return nil
		},
	}

	f := cmd.Flags()
	f.String("input", "", "ORBN XML file")
	f.String("format", "cdb", "source schema: cdb or lmf")
	f.String("synsets", "", "ODWN XML file with the synsets to link to")
	f.String("link", "", "LMF XML file with sense → synset references")
	f.String("output", "", "store file to write")
	f.String("allowed-prefixes", "r+c", `"+"-separated sense id prefixes to keep (r, c, o, t)`)
	f.Bool("exclude-sub-numbered", true, `reject sense ids containing "_sub_"`)
	f.String("lemon-output", "", "also export the store as Lemon turtle to this file")
	f.String("namespace", "", "Lemon resource namespace")
	f.String("short-namespace", "", "turtle prefix bound to the Lemon namespace")
	return cmd
}
