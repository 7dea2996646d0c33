// Package session implements the StudySession repository using PostgreSQL.
// The card queue is stored inline as a UUID[] so a session can be resumed
// without rebuilding it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, mode, card_ids, position, phase, reviewed, correct, started_at, finished_at`

const createSQL = `
INSERT INTO study_sessions (` + sessionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getActiveSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1 AND phase NOT IN ('COMPLETE', 'ABANDONED')`

// Compare-and-set on (position, phase). Terminal sessions are immutable.
const updateSQL = `
UPDATE study_sessions
SET position = $5, phase = $6, reviewed = $7, correct = $8, finished_at = $9
WHERE id = $1 AND user_id = $2 AND position = $3 AND phase = $4
  AND phase NOT IN ('COMPLETE', 'ABANDONED')
RETURNING ` + sessionColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return session, nil
}

// GetByIDForUpdate is GetByID with the row locked until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDForUpdateSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return session, nil
}

// GetActive returns the unfinished session of a user.
// Returns domain.ErrNotFound if no such session exists.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getActiveSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}
	return session, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new session. A second unfinished session for the same
// user fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	cardIDs := s.CardIDs
	if cardIDs == nil {
		cardIDs = []uuid.UUID{}
	}

	row := querier.QueryRow(ctx, createSQL,
		s.ID, s.UserID, string(s.Mode), cardIDs, s.Position, string(s.Phase),
		s.Reviewed, s.Correct, s.StartedAt, s.FinishedAt,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return created, nil
}

// Update moves an unfinished session from one state to the next.
// Returns domain.ErrConflict if the stored position or phase no longer match
// from, or if the session is missing or already terminal.
func (r *Repo) Update(ctx context.Context, from, to *domain.StudySession) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		from.ID, from.UserID, from.Position, string(from.Phase),
		to.Position, string(to.Phase), to.Reviewed, to.Correct, to.FinishedAt,
	)

	updated, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("session %s changed concurrently: %w", from.ID, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "session", from.ID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.StudySession, error) {
	var (
		s          domain.StudySession
		mode       string
		phase      string
		finishedAt *time.Time
	)

	err := row.Scan(&s.ID, &s.UserID, &mode, &s.CardIDs, &s.Position, &phase,
		&s.Reviewed, &s.Correct, &s.StartedAt, &finishedAt)
	if err != nil {
		return nil, err
	}

	s.Mode = domain.StudyMode(mode)
	s.Phase = domain.SessionPhase(phase)
	s.FinishedAt = finishedAt
	return &s, nil
}
