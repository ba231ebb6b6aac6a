package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/rbn-lexicon/internal/app/converter"
	"github.com/heartmarshall/rbn-lexicon/internal/export/lemon"
	"github.com/heartmarshall/rbn-lexicon/internal/lexicon/framenet"
	"github.com/heartmarshall/rbn-lexicon/internal/mapping"
	"github.com/heartmarshall/rbn-lexicon/internal/store"
)

func (c *cli) lemonCmd() *cobra.Command {
	var storePath string
	cmd := &cobra.Command{
		Use:   "lemon",
		Short: "Export a store as a Lemon RDF graph in turtle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lem := &c.cfg.Lemon
			overrideString(cmd, "output", &lem.OutputPath)
			overrideString(cmd, "namespace", &lem.Namespace)
			overrideString(cmd, "short-namespace", &lem.ShortNamespace)
			overrideInt(cmd, "major", &lem.MajorVersion)
			overrideInt(cmd, "minor", &lem.MinorVersion)
			if err := c.revalidate(); err != nil {
				return err
			}
			if lem.OutputPath == "" {
				return errors.New("lemon: --output is required")
			}

			lex, err := store.Load(storePath)
			if err != nil {
				return err
			}
			stats, err := lemon.WriteFile(lem.OutputPath, lex, converter.LemonOptions(*lem))
			if err != nil {
				return err
			}
			c.log.Info("lemon export written",
				slog.String("path", lem.OutputPath),
				slog.Int("entries", stats.Entries),
				slog.Int("definitions", stats.Definitions),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&storePath, "store", "", "store file written by convert")
	f.String("output", "", "turtle file to write")
	f.String("namespace", "", "resource namespace")
	f.String("short-namespace", "", "turtle prefix bound to the namespace")
	f.Int("major", 1, "major version of the lexicon resource")
	f.Int("minor", 0, "minor version of the lexicon resource")
	_ = cmd.MarkFlagRequired("store")
	return cmd
}

func (c *cli) mappingCmd() *cobra.Command {
	var excelPath, outputPath string
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Convert the feature-set → FrameNet spreadsheet to JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, stats, err := mapping.ReadExcel(excelPath)
			if err != nil {
				return err
			}
			if err := mapping.WriteFile(outputPath, m); err != nil {
				return err
			}
			c.log.Info("mapping written",
				slog.String("path", outputPath),
				slog.Int("rows", stats.Rows),
				slog.Int("feature_sets", stats.FeatureSets),
				slog.Int("frames", stats.Frames),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&excelPath, "excel", "", "spreadsheet with the "+mapping.SheetName+" sheet")
	f.StringVar(&outputPath, "output", "", "JSON file to write")
	_ = cmd.MarkFlagRequired("excel")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (c *cli) lexemesCmd() *cobra.Command {
	var storePath, mappingPath, outputPath string
	cmd := &cobra.Command{
		Use:   "lexemes",
		Short: "Propose FrameNet lexical units for verbs with a mapped feature set",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			lex, err := store.Load(storePath)
			if err != nil {
				return err
			}
			m, err := mapping.ReadFile(mappingPath)
			if err != nil {
				return err
			}
			candidates := framenet.Candidates(lex, m)

			var w io.Writer = c.stdout
			if outputPath != "-" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outputPath, err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close %s: %w", outputPath, cerr)
					}
				}()
				w = f
			}
			if err := framenet.WriteJSON(w, candidates); err != nil {
				return err
			}
			c.log.Info("lexical unit candidates written",
				slog.String("path", outputPath),
				slog.Int("candidates", len(candidates)),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&storePath, "store", "", "store file written by convert")
	f.StringVar(&mappingPath, "mapping", "", "JSON mapping written by the mapping command")
	f.StringVar(&outputPath, "output", "-", `JSON file to write, "-" for stdout`)
	_ = cmd.MarkFlagRequired("store")
	_ = cmd.MarkFlagRequired("mapping")
	return cmd
}
