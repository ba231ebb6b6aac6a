// Package publisher writes a converted lexicon into the PostgreSQL catalog.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/rbn-lexicon/internal/domain"
	"github.com/heartmarshall/rbn-lexicon/pkg/ctxutil"
)

// CatalogRepo defines the bulk operations the publisher needs.
type CatalogRepo interface {
	BulkInsertSynsets(ctx context.Context, synsets []domain.CatalogSynset) (int, error)
	BulkInsertSenses(ctx context.Context, senses []domain.CatalogSense) (int, error)
	BulkInsertExamples(ctx context.Context, examples []domain.CatalogExample) (int, error)
}

// TxManager runs fn inside one database transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds per-table insert counts. Skipped rows already existed.
type Result struct {
	SynsetsInserted  int
	SensesInserted   int
	ExamplesInserted int
	Skipped          int
	Duration         time.Duration
}

// Publisher inserts catalog rows in batches within one transaction.
type Publisher struct {
	log       *slog.Logger
	repo      CatalogRepo
	tx        TxManager
	batchSize int
}

// New creates a new Publisher. A non-positive batchSize uses the default of 500.
func New(log *slog.Logger, repo CatalogRepo, tx TxManager, batchSize int) *Publisher {
	return &Publisher{log: log, repo: repo, tx: tx, batchSize: batchSize}
}

// Publish inserts every synset, sense and example of lex. Either all batches
// commit or none do.
func (p *Publisher) Publish(ctx context.Context, lex *domain.Lexicon) (Result, error) {
	log := ctxutil.Logger(ctx, p.log)
	start := time.Now()
	rows := BuildRows(lex)

	log.Info("publishing catalog",
		slog.Int("synsets", len(rows.Synsets)),
		slog.Int("senses", len(rows.Senses)),
		slog.Int("examples", len(rows.Examples)),
	)

	var res Result
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		res.SynsetsInserted, err = batchProcess(rows.Synsets, p.batchSize, func(batch []domain.CatalogSynset) (int, error) {
			return p.repo.BulkInsertSynsets(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert synsets: %w", err)
		}

		res.SensesInserted, err = batchProcess(rows.Senses, p.batchSize, func(batch []domain.CatalogSense) (int, error) {
			return p.repo.BulkInsertSenses(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert senses: %w", err)
		}

		res.ExamplesInserted, err = batchProcess(rows.Examples, p.batchSize, func(batch []domain.CatalogExample) (int, error) {
			return p.repo.BulkInsertExamples(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert examples: %w", err)
		}
		return nil
	})
	res.Duration = time.Since(start)
	if err != nil {
		log.Error("publish failed", slog.String("error", err.Error()), slog.Duration("duration", res.Duration))
		return Result{Duration: res.Duration}, err
	}

	total := len(rows.Synsets) + len(rows.Senses) + len(rows.Examples)
	res.Skipped = total - res.SynsetsInserted - res.SensesInserted - res.ExamplesInserted

	log.Info("publish completed",
		slog.Int("synsets_inserted", res.SynsetsInserted),
		slog.Int("senses_inserted", res.SensesInserted),
		slog.Int("examples_inserted", res.ExamplesInserted),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// batchProcess splits items into batches and calls fn for each batch.
// Returns total count from all fn calls. Stops at the first error.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
