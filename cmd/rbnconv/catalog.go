package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/rbn-lexicon/internal/app/publisher"
	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/internal/store"
	"github.com/heartmarshall/rbn-lexicon/pkg/ctxutil"
)

// Compile-time interface assertion.
var _ publisher.CatalogRepo = (*catalog.Repo)(nil)

// connect validates the database config, opens the pool and applies
// pending migrations.
func (c *cli) connect(ctx context.Context) (*pgxpool.Pool, error) {
	if err := c.cfg.Database.RequireDSN(); err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, c.cfg.Database.DSN, c.log); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	return postgres.NewPool(ctx, c.cfg.Database)
}

func (c *cli) publishCmd() *cobra.Command {
	var storePath string
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Insert a store into the PostgreSQL catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrideInt(cmd, "batch-size", &c.cfg.Publish.BatchSize)
			if err := c.revalidate(); err != nil {
				return err
			}

			lex, err := store.Load(storePath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), c.cfg.Publish.Timeout)
			defer cancel()
			ctx, _ = ctxutil.NewRun(ctx)

			pool, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			p := publisher.New(c.log, catalog.New(pool), postgres.NewTxManager(pool), c.cfg.Publish.BatchSize)
			_, err = p.Publish(ctx, lex)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&storePath, "store", "", "store file written by convert")
	f.Int("batch-size", 500, "rows per insert batch")
	_ = cmd.MarkFlagRequired("store")
	return cmd
}

func (c *cli) lookupCmd() *cobra.Command {
	var lemma, pos, synsetID string
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up senses in the PostgreSQL catalog by lemma or synset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			partOfSpeech := domain.PartOfSpeech(strings.ToLower(pos))
			if pos != "" && !partOfSpeech.IsValid() {
				return domain.NewValidationError("pos", fmt.Sprintf("invalid value %q", pos))
			}

			ctx := cmd.Context()
			pool, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			repo := catalog.New(pool)

			var senses []domain.CatalogSense
			if synsetID != "" {
				synset, err := repo.GetSynset(ctx, synsetID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "synset %s ili=%s %s\n", synset.SynsetID, synset.InterlingualIndex, synset.Definition)
				if senses, err = repo.SensesBySynset(ctx, synsetID); err != nil {
					return err
				}
			} else if senses, err = repo.SensesByLemma(ctx, lemma, partOfSpeech); err != nil {
				return err
			}

			ids := make([]string, len(senses))
			for i, s := range senses {
				ids[i] = s.SenseID
			}
			examples, err := repo.ExamplesBySenseIDs(ctx, ids)
			if err != nil {
				return err
			}

			renderSenses(cmd, senses, examples)
			c.log.Debug("lookup completed", slog.Int("senses", len(senses)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&lemma, "lemma", "", "lemma to look up")
	f.StringVar(&pos, "pos", "", "restrict a lemma lookup to one part of speech")
	f.StringVar(&synsetID, "synset", "", "synset id to look up")
	cmd.MarkFlagsOneRequired("lemma", "synset")
	cmd.MarkFlagsMutuallyExclusive("lemma", "synset")
	cmd.MarkFlagsMutuallyExclusive("pos", "synset")
	return cmd
}

func renderSenses(cmd *cobra.Command, senses []domain.CatalogSense, examples map[string][]domain.CatalogExample) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"sense", "lemma", "pos", "rank", "synset", "definition", "examples"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, s := range senses {
		synset := ""
		if s.SynsetID != nil {
			synset = *s.SynsetID
		}
		texts := make([]string, len(examples[s.SenseID]))
		for i, ex := range examples[s.SenseID] {
			texts[i] = ex.Text
		}
		table.Append([]string{
			s.SenseID, s.Lemma, string(s.PartOfSpeech), strconv.Itoa(s.SenseRank),
			synset, s.Definition, strings.Join(texts, "; "),
		})
	}
	table.Render()
}
