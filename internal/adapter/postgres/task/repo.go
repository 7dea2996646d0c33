// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const taskColumns = `id, user_id, workspace_id, title, difficulty, completed, completed_at, created_at, updated_at`

const createSQL = `
INSERT INTO tasks (` + taskColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + taskColumns

const getByIDSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1 AND user_id = $2`

const listAllByUserSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = $1
ORDER BY created_at, id`

// A task completes exactly once; the guard turns a concurrent second
// completion into no rows.
const markCompletedSQL = `
UPDATE tasks
SET completed = TRUE, completed_at = $3, updated_at = $3
WHERE id = $1 AND user_id = $2 AND NOT completed
RETURNING ` + taskColumns

const deleteSQL = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, getByIDSQL, taskID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return &t, nil
}

// List returns one page of the user's tasks (newest first) and the total count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.Completed != nil {
		where = append(where, squirrel.Eq{"completed": *filter.Completed})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("tasks").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := postgres.Builder().
		Select(taskColumns).From("tasks").Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	tasks, err := collectTasks(rows)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// ListAllByUser returns every task of the user in creation order.
func (r *Repo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return collectTasks(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a task and returns the stored row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		t.ID, t.UserID, t.WorkspaceID, t.Title, string(t.Difficulty),
		t.Completed, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return &created, nil
}

// MarkCompleted completes an open task at the given instant.
// Returns domain.ErrNotFound if the task is missing or already completed.
func (r *Repo) MarkCompleted(ctx context.Context, userID, taskID uuid.UUID, at time.Time) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, markCompletedSQL, taskID, userID, at))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return &t, nil
}

// Delete removes a task. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, taskID, userID)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t          domain.Task
		difficulty string
	)

	err := row.Scan(&t.ID, &t.UserID, &t.WorkspaceID, &t.Title, &difficulty,
		&t.Completed, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}

	t.Difficulty = domain.Difficulty(difficulty)
	return t, nil
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}
