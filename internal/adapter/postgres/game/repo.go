// Package game implements persistence of game profiles, achievement progress
// and the event feed using PostgreSQL.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Repo provides gamification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new game repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const profileColumns = `user_id, combo_count, combo_multiplier, combo_active, last_completion_at, total_points, level, updated_at`

var profileInsertColumns = []string{
	"user_id", "combo_count", "combo_multiplier", "combo_active",
	"last_completion_at", "total_points", "level", "updated_at",
}

const getProfileSQL = `
SELECT ` + profileColumns + `
FROM game_profiles
WHERE user_id = $1`

const ensureProfileSQL = `
INSERT INTO game_profiles (user_id, updated_at)
VALUES ($1, $2)
ON CONFLICT (user_id) DO NOTHING`

const lockProfileSQL = getProfileSQL + `
FOR UPDATE`

const upsertProfileSuffix = `ON CONFLICT (user_id) DO UPDATE SET
    combo_count = EXCLUDED.combo_count,
    combo_multiplier = EXCLUDED.combo_multiplier,
    combo_active = EXCLUDED.combo_active,
    last_completion_at = EXCLUDED.last_completion_at,
    total_points = EXCLUDED.total_points,
    level = EXCLUDED.level,
    updated_at = EXCLUDED.updated_at`

// A combo is only reset when its last completion is still the one the
// caller judged stale; a completion that lands first keeps it alive.
const expireComboSQL = `
UPDATE game_profiles
SET combo_active = FALSE, combo_count = 0, combo_multiplier = 1, updated_at = now()
WHERE user_id = $1 AND combo_active AND last_completion_at < $2`

const expireCombosSQL = `
UPDATE game_profiles
SET combo_active = FALSE, combo_count = 0, combo_multiplier = 1, updated_at = now()
WHERE combo_active AND last_completion_at < $1`

const listAchievementsSQL = `
SELECT achievement_id, progress, target, completed, completed_at
FROM user_achievements
WHERE user_id = $1
ORDER BY achievement_id`

// Completion never reverts once stored.
const upsertAchievementsSuffix = `ON CONFLICT (user_id, achievement_id) DO UPDATE SET
    progress = EXCLUDED.progress,
    target = EXCLUDED.target,
    completed = user_achievements.completed OR EXCLUDED.completed,
    completed_at = coalesce(user_achievements.completed_at, EXCLUDED.completed_at),
    updated_at = EXCLUDED.updated_at`

const insertEventSQL = `
INSERT INTO game_events (id, user_id, type, title, description, points, special, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listRecentEventsSQL = `
SELECT id, user_id, type, title, description, points, special, occurred_at
FROM game_events
WHERE user_id = $1
ORDER BY occurred_at DESC, seq DESC
LIMIT $2`

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

// GetProfile returns the stored profile of a user.
// Returns domain.ErrNotFound if the user never scored.
func (r *Repo) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.GameProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(querier.QueryRow(ctx, getProfileSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "game profile", userID)
	}
	return p, nil
}

// GetProfileForUpdate creates the profile if missing and locks its row until
// the surrounding transaction ends. Must be called inside RunInTx.
func (r *Repo) GetProfileForUpdate(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.GameProfile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, ensureProfileSQL, userID, now); err != nil {
		return nil, postgres.MapError(err, "game profile", userID)
	}

	p, err := scanProfile(querier.QueryRow(ctx, lockProfileSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "game profile", userID)
	}
	return p, nil
}

// UpsertProfile stores the full profile state.
func (r *Repo) UpsertProfile(ctx context.Context, p *domain.GameProfile) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("game_profiles").
		Columns(profileInsertColumns...).
		Values(p.UserID, p.Combo.Count, p.Combo.Multiplier, p.Combo.IsActive,
			p.Combo.LastCompletionAt, p.TotalPoints, p.Level, p.UpdatedAt).
		Suffix(upsertProfileSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert profile: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "game profile", p.UserID)
	}
	return nil
}

// ExpireCombo resets the combo of one user if it is active and its last
// completion is strictly before lastBefore. Reports whether a row changed.
func (r *Repo) ExpireCombo(ctx context.Context, userID uuid.UUID, lastBefore time.Time) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, expireComboSQL, userID, lastBefore)
	if err != nil {
		return false, postgres.MapError(err, "game profile", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// ExpireCombos resets every stale active combo and returns how many were reset.
func (r *Repo) ExpireCombos(ctx context.Context, lastBefore time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, expireCombosSQL, lastBefore)
	if err != nil {
		return 0, fmt.Errorf("expire combos: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Achievements
// ---------------------------------------------------------------------------

// ListAchievements returns the stored progress rows of a user. Only the
// progress fields are set; catalog metadata is merged by the caller.
func (r *Repo) ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAchievementsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var out []domain.AchievementProgress
	for rows.Next() {
		var a domain.AchievementProgress
		if err := rows.Scan(&a.ID, &a.Progress, &a.Target, &a.Completed, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return out, nil
}

// UpsertAchievements stores the progress of every given achievement in one
// statement.
func (r *Repo) UpsertAchievements(ctx context.Context, userID uuid.UUID, items []domain.AchievementProgress, now time.Time) error {
	if len(items) == 0 {
		return nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert("user_achievements").
		Columns("user_id", "achievement_id", "progress", "target", "completed", "completed_at", "updated_at")
	for _, a := range items {
		insert = insert.Values(userID, a.ID, min(a.Progress, a.Target), a.Target, a.Completed, a.CompletedAt, now)
	}

	sql, args, err := insert.Suffix(upsertAchievementsSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("build upsert achievements: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "achievements of", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// InsertEvents appends events to the feed, preserving their order.
func (r *Repo) InsertEvents(ctx context.Context, events []domain.GameEvent) error {
	if len(events) == 0 {
		return nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(insertEventSQL,
			e.ID, e.UserID, string(e.Type), e.Title, e.Description, e.Points, e.Special, e.Timestamp)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for _, e := range events {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "game event", e.ID)
		}
	}
	return nil
}

// ListRecentEvents returns the newest events of a user, newest first.
func (r *Repo) ListRecentEvents(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GameEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listRecentEventsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	defer rows.Close()

	var out []domain.GameEvent
	for rows.Next() {
		var (
			e   domain.GameEvent
			typ string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &typ, &e.Title, &e.Description, &e.Points, &e.Special, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan game event: %w", err)
		}
		e.Type = domain.EventType(typ)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game events: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.GameProfile, error) {
	var p domain.GameProfile

	err := row.Scan(&p.UserID, &p.Combo.Count, &p.Combo.Multiplier, &p.Combo.IsActive,
		&p.Combo.LastCompletionAt, &p.TotalPoints, &p.Level, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
