//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres"
	"github.com/heartmarshall/rbn-lexicon/internal/adapter/postgres/testhelper"
)

// synsetExists checks whether a synset row with the given synset id exists.
func synsetExists(t *testing.T, pool *pgxpool.Pool, synsetID string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM lexicon_synsets WHERE synset_id = $1)`,
		synsetID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("synsetExists query: %v", err)
	}
	return exists
}

func insertSynset(ctx context.Context, q postgres.Querier, synsetID string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO lexicon_synsets (id, synset_id) VALUES ($1, $2)`,
		uuid.New(), synsetID,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	synsetID := "tx-commit-" + uuid.NewString()[:8]

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertSynset(ctx, postgres.QuerierFromCtx(ctx, pool), synsetID)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if !synsetExists(t, pool, synsetID) {
		t.Fatal("expected synset to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	synsetID := "tx-rollback-" + uuid.NewString()[:8]
	sentinel := errors.New("publish failed")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertSynset(ctx, postgres.QuerierFromCtx(ctx, pool), synsetID); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if synsetExists(t, pool, synsetID) {
		t.Fatal("expected synset NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	synsetID := "tx-panic-" + uuid.NewString()[:8]

	defer func() {
		if r := recover(); r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if synsetExists(t, pool, synsetID) {
			t.Fatal("expected synset NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertSynset(ctx, postgres.QuerierFromCtx(ctx, pool), synsetID); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	synsetID := "tx-ctx-" + uuid.NewString()[:8]

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertSynset(ctx, q, synsetID); err != nil {
			return err
		}
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM lexicon_synsets WHERE synset_id = $1)`, synsetID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected synset to be visible within the transaction")
		}
		if synsetExists(t, pool, synsetID) {
			t.Fatal("expected synset NOT to be visible outside the transaction before commit")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
}

func TestRunInTx_NestedIsRejected(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	synsetID := "tx-nested-" + uuid.NewString()[:8]

	var nestedErr error
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertSynset(ctx, postgres.QuerierFromCtx(ctx, pool), synsetID); err != nil {
			return err
		}
		nestedErr = tm.RunInTx(ctx, func(context.Context) error {
			t.Fatal("nested callback must not run")
			return nil
		})
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if !errors.Is(nestedErr, postgres.ErrNestedTx) {
		t.Fatalf("expected ErrNestedTx, got: %v", nestedErr)
	}
	if !synsetExists(t, pool, synsetID) {
		t.Fatal("expected outer transaction to commit")
	}
}

func TestNewPool_ApplicationName(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	var name string
	if err := pool.QueryRow(context.Background(), `SHOW application_name`).Scan(&name); err != nil {
		t.Fatalf("show application_name: %v", err)
	}
	if name != postgres.ApplicationName {
		t.Errorf("application_name = %q, want %q", name, postgres.ApplicationName)
	}
}
