// Package catalog publishes a converted lexicon to PostgreSQL and serves
// lookups over it. Rows are immutable once inserted: republishing the same
// lexicon inserts nothing.
package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var senseColumns = []string{
	"id", "sense_id", "lemma", "lemma_normalized", "part_of_speech", "is_multiword", "definition", "sense_rank",
	"semantic_type", "feature_set", "separable",
	"lu_type", "morpho_type", "article", "synset_id", "provenance",
}

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Batch insert methods (pgx.Batch API)
// ---------------------------------------------------------------------------

// BulkInsertSynsets inserts lexicon_synsets. Existing synsets (by synset_id)
// are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsertSynsets(ctx context.Context, synsets []domain.CatalogSynset) (int, error) {
	if len(synsets) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, s := range synsets {
		batch.Queue(
			`INSERT INTO lexicon_synsets (id, synset_id, interlingual_index, definition)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (synset_id) DO NOTHING`,
			s.ID, s.SynsetID, nullString(s.InterlingualIndex), nullString(s.Definition),
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkInsertSenses inserts lexicon_senses. Existing senses (by sense_id)
// are skipped via ON CONFLICT DO NOTHING. Synsets must be inserted first.
func (r *Repo) BulkInsertSenses(ctx context.Context, senses []domain.CatalogSense) (int, error) {
	if len(senses) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, s := range senses {
		provenance := s.Provenance
		if provenance == nil {
			provenance = []string{}
		}
		batch.Queue(
			`INSERT INTO lexicon_senses (id, sense_id, lemma, lemma_normalized, part_of_speech, is_multiword, definition, sense_rank,
			                             semantic_type, feature_set, separable,
			                             lu_type, morpho_type, article, synset_id, provenance)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			 ON CONFLICT (sense_id) DO NOTHING`,
			s.ID, s.SenseID, s.Lemma, s.LemmaNormalized, string(s.PartOfSpeech), s.IsMultiword, nullString(s.Definition), s.SenseRank,
			s.SemanticType, s.FeatureSet, s.Separable,
			string(s.LUType), nullString(s.MorphoType), nullString(s.Article), s.SynsetID, provenance,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkInsertExamples inserts lexicon_examples. Existing examples (by
// sense_id, example_id) are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertExamples(ctx context.Context, examples []domain.CatalogExample) (int, error) {
	if len(examples) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, ex := range examples {
		batch.Queue(
			`INSERT INTO lexicon_examples (id, sense_id, example_id, text)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT ON CONSTRAINT uq_lexicon_examples DO NOTHING`,
			ex.ID, ex.SenseID, ex.ExampleID, ex.Text,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// SensesByLemma returns the senses of lemma ordered by part of speech and
// rank. Lemmas are compared after domain.NormalizeText, so "Bank " finds
// "bank". An empty pos matches every part of speech.
func (r *Repo) SensesByLemma(ctx context.Context, lemma string, pos domain.PartOfSpeech) ([]domain.CatalogSense, error) {
	query := psql.Select(senseColumns...).
		From("lexicon_senses").
		Where(squirrel.Eq{"lemma_normalized": domain.NormalizeText(lemma)}).
		OrderBy("part_of_speech", "sense_rank", "sense_id")
	if pos != "" {
		query = query.Where(squirrel.Eq{"part_of_speech": string(pos)})
	}

	senses, err := r.selectSenses(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "lemma", lemma)
	}
	return senses, nil
}

// SensesBySynset returns the senses linked to synsetID ordered by sense id.
func (r *Repo) SensesBySynset(ctx context.Context, synsetID string) ([]domain.CatalogSense, error) {
	query := psql.Select(senseColumns...).
		From("lexicon_senses").
		Where(squirrel.Eq{"synset_id": synsetID}).
		OrderBy("sense_id")

	senses, err := r.selectSenses(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "synset", synsetID)
	}
	return senses, nil
}

// GetSynset returns one synset. Returns domain.ErrNotFound if absent.
func (r *Repo) GetSynset(ctx context.Context, synsetID string) (*domain.CatalogSynset, error) {
	sql, args, err := psql.Select("id", "synset_id", "interlingual_index", "definition").
		From("lexicon_synsets").
		Where(squirrel.Eq{"synset_id": synsetID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build synset query: %w", err)
	}

	var (
		s          domain.CatalogSynset
		ili, gloss *string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).
		Scan(&s.ID, &s.SynsetID, &ili, &gloss)
	if err != nil {
		return nil, postgres.MapError(err, "synset", synsetID)
	}
	s.InterlingualIndex = derefString(ili)
	s.Definition = derefString(gloss)
	return &s, nil
}

// ExamplesBySenseIDs returns the examples of the given senses grouped by
// sense id, each group ordered by example id.
func (r *Repo) ExamplesBySenseIDs(ctx context.Context, senseIDs []string) (map[string][]domain.CatalogExample, error) {
	out := make(map[string][]domain.CatalogExample)
	if len(senseIDs) == 0 {
		return out, nil
	}

	sql, args, err := psql.Select("id", "sense_id", "example_id", "text").
		From("lexicon_examples").
		Where(squirrel.Eq{"sense_id": senseIDs}).
		OrderBy("sense_id", "example_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build examples query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query examples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex domain.CatalogExample
		if err := rows.Scan(&ex.ID, &ex.SenseID, &ex.ExampleID, &ex.Text); err != nil {
			return nil, fmt.Errorf("scan example: %w", err)
		}
		out[ex.SenseID] = append(out[ex.SenseID], ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate examples: %w", err)
	}
	return out, nil
}

func (r *Repo) selectSenses(ctx context.Context, query squirrel.SelectBuilder) ([]domain.CatalogSense, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build senses query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query senses: %w", err)
	}
	defer rows.Close()

	var senses []domain.CatalogSense
	for rows.Next() {
		s, err := scanSense(rows)
		if err != nil {
			return nil, err
		}
		senses = append(senses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate senses: %w", err)
	}
	return senses, nil
}

func scanSense(row pgx.Row) (domain.CatalogSense, error) {
	var (
		s                               domain.CatalogSense
		pos, luType                     string
		definition, morphoType, article *string
	)
	err := row.Scan(
		&s.ID, &s.SenseID, &s.Lemma, &s.LemmaNormalized, &pos, &s.IsMultiword, &definition, &s.SenseRank,
		&s.SemanticType, &s.FeatureSet, &s.Separable,
		&luType, &morphoType, &article, &s.SynsetID, &s.Provenance,
	)
	if err != nil {
		return domain.CatalogSense{}, fmt.Errorf("scan sense: %w", err)
	}
	s.PartOfSpeech = domain.PartOfSpeech(pos)
	s.LUType = domain.LUType(luType)
	s.Definition = derefString(definition)
	s.MorphoType = derefString(morphoType)
	s.Article = derefString(article)
	return s, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
