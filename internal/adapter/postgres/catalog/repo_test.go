//go:build integration

package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/rbn-lexicon/internal/domain"
)

func newRepo(t *testing.T) (*catalog.Repo, *postgres.TxManager) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return catalog.New(pool), postgres.NewTxManager(pool)
}

// fixture returns rows keyed by a random suffix so parallel tests do not collide.
func fixture() (domain.CatalogSynset, []domain.CatalogSense, []domain.CatalogExample) {
	suffix := uuid.NewString()[:8]
	synsetID := "s-" + suffix
	lemma := "aanbieden-" + suffix

	semType, featureSet, separable := "action", "np_v", true
	synset := domain.CatalogSynset{ID: uuid.New(), SynsetID: synsetID, InterlingualIndex: "i100"}
	senses := []domain.CatalogSense{
		{
			ID: uuid.New(), SenseID: "r_v-" + suffix, Lemma: lemma, LemmaNormalized: lemma, PartOfSpeech: domain.PartOfSpeechVerb,
			SenseRank: 1, SemanticType: &semType, FeatureSet: &featureSet, Separable: &separable,
			LUType: domain.LUTypePhrasal, MorphoType: "phrasal", SynsetID: &synsetID,
			Provenance: []string{"manual", "auto"},
		},
		{
			ID: uuid.New(), SenseID: "r_n-" + suffix, Lemma: lemma, LemmaNormalized: lemma, PartOfSpeech: domain.PartOfSpeechNoun,
			SenseRank: 1, LUType: domain.LUTypeSingleton, Article: "het",
		},
	}
	examples := []domain.CatalogExample{
		{ID: uuid.New(), SenseID: senses[0].SenseID, ExampleID: "11", Text: "hulp aanbieden"},
	}
	return synset, senses, examples
}

func TestRepo_BulkInsert_Idempotent(t *testing.T) {
	t.Parallel()
	repo, txm := newRepo(t)
	ctx := context.Background()
	synset, senses, examples := fixture()

	insertAll := func() (int, error) {
		total := 0
		err := txm.RunInTx(ctx, func(ctx context.Context) error {
			for _, step := range []func() (int, error){
				func() (int, error) { return repo.BulkInsertSynsets(ctx, []domain.CatalogSynset{synset}) },
				func() (int, error) { return repo.BulkInsertSenses(ctx, senses) },
				func() (int, error) { return repo.BulkInsertExamples(ctx, examples) },
			} {
				n, err := step()
				if err != nil {
					return err
				}
				total += n
			}
			return nil
		})
		return total, err
	}

	first, err := insertAll()
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if first != 4 {
		t.Errorf("first: expected 4 inserted, got %d", first)
	}

	second, err := insertAll()
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if second != 0 {
		t.Errorf("second: expected 0 inserted, got %d", second)
	}
}

func TestRepo_Lookups(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	synset, senses, examples := fixture()

	if _, err := repo.BulkInsertSynsets(ctx, []domain.CatalogSynset{synset}); err != nil {
		t.Fatalf("BulkInsertSynsets: %v", err)
	}
	if _, err := repo.BulkInsertSenses(ctx, senses); err != nil {
		t.Fatalf("BulkInsertSenses: %v", err)
	}
	if _, err := repo.BulkInsertExamples(ctx, examples); err != nil {
		t.Fatalf("BulkInsertExamples: %v", err)
	}

	all, err := repo.SensesByLemma(ctx, "  "+strings.ToUpper(senses[0].Lemma), "")
	if err != nil {
		t.Fatalf("SensesByLemma: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 senses, got %d", len(all))
	}

	verbs, err := repo.SensesByLemma(ctx, senses[0].Lemma, domain.PartOfSpeechVerb)
	if err != nil {
		t.Fatalf("SensesByLemma(verb): %v", err)
	}
	if len(verbs) != 1 {
		t.Fatalf("expected 1 verb sense, got %d", len(verbs))
	}
	v := verbs[0]
	if v.Separable == nil || !*v.Separable || v.FeatureSet == nil || *v.FeatureSet != "np_v" {
		t.Errorf("verb columns not round-tripped: %+v", v)
	}
	if len(v.Provenance) != 2 || v.Provenance[0] != "manual" {
		t.Errorf("provenance = %v, want [manual auto]", v.Provenance)
	}

	linked, err := repo.SensesBySynset(ctx, synset.SynsetID)
	if err != nil {
		t.Fatalf("SensesBySynset: %v", err)
	}
	if len(linked) != 1 || linked[0].SenseID != senses[0].SenseID {
		t.Errorf("unexpected synset senses: %+v", linked)
	}

	got, err := repo.GetSynset(ctx, synset.SynsetID)
	if err != nil {
		t.Fatalf("GetSynset: %v", err)
	}
	if got.InterlingualIndex != "i100" || got.Definition != "" {
		t.Errorf("unexpected synset: %+v", got)
	}

	byID, err := repo.ExamplesBySenseIDs(ctx, []string{senses[0].SenseID, senses[1].SenseID})
	if err != nil {
		t.Fatalf("ExamplesBySenseIDs: %v", err)
	}
	if len(byID[senses[0].SenseID]) != 1 || len(byID[senses[1].SenseID]) != 0 {
		t.Errorf("unexpected examples: %+v", byID)
	}
}

func TestRepo_GetSynset_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetSynset(context.Background(), "s-missing-"+uuid.NewString()[:8])
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_BulkInsertSenses_UnknownSynset(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	_, senses, _ := fixture()

	_, err := repo.BulkInsertSenses(context.Background(), senses[:1])
	if err == nil {
		t.Fatal("expected foreign key violation for a sense linked to an unpublished synset")
	}
}
