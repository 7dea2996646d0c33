package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyquest-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

const insertTaskSQL = `INSERT INTO tasks (id, user_id, title, created_at, updated_at)
 VALUES ($1, $2, $3, now(), now())`

// taskExists checks whether a task row with the given ID exists in the database.
func taskExists(t *testing.T, pool *pgxpool.Pool, taskID uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)`,
		taskID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("taskExists query: %v", err)
	}
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	taskID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx, insertTaskSQL, taskID, uuid.New(), "commit test")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !taskExists(t, pool, taskID) {
		t.Fatal("expected task to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	taskID := uuid.New()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, execErr := q.Exec(ctx, insertTaskSQL, taskID, uuid.New(), "rollback test"); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if taskExists(t, pool, taskID) {
		t.Fatal("expected task NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	taskID := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		if taskExists(t, pool, taskID) {
			t.Fatal("expected task NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertTaskSQL, taskID, uuid.New(), "panic test"); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	taskID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertTaskSQL, taskID, uuid.New(), "ctx test"); err != nil {
			return err
		}

		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)`, taskID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected task to be visible within the transaction")
		}

		// Not visible from outside until commit.
		if taskExists(t, pool, taskID) {
			t.Fatal("uncommitted task leaked outside the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !taskExists(t, pool, taskID) {
		t.Fatal("expected task to exist after committed transaction")
	}
}

func TestRunInTx_NestedJoinsOuter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	outerID, innerID := uuid.New(), uuid.New()
	sentinel := errors.New("outer failure")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertTaskSQL, outerID, uuid.New(), "outer"); err != nil {
			return err
		}

		innerErr := tm.RunInTx(ctx, func(ctx context.Context) error {
			_, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertTaskSQL, innerID, uuid.New(), "inner")
			return err
		})
		if innerErr != nil {
			t.Fatalf("inner RunInTx: %v", innerErr)
		}

		// The inner call must not have committed on its own.
		if taskExists(t, pool, innerID) {
			t.Fatal("inner insert committed independently of the outer transaction")
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if taskExists(t, pool, outerID) || taskExists(t, pool, innerID) {
		t.Fatal("expected both inserts to be rolled back together")
	}
}

func TestRunInTx_RetriesDeadlock(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	taskID := uuid.New()
	attempts := 0

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		attempts++
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertTaskSQL, taskID, uuid.New(), "retry test"); err != nil {
			return err
		}
		if attempts == 1 {
			return fmt.Errorf("lock profile: %w", &pgconn.PgError{Code: "40P01"})
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
	if !taskExists(t, pool, taskID) {
		t.Fatal("expected task from the replayed attempt to be committed")
	}
}

func TestRunInTx_GivesUpAsConflict(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	attempts := 0
	err := tm.RunInTx(context.Background(), func(context.Context) error {
		attempts++
		return &pgconn.PgError{Code: "40001"}
	})

	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected domain.ErrConflict, got: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
