// Package flashcard implements the Flashcard repository using PostgreSQL.
// Fixed-shape queries are raw SQL; filtered listings are built with squirrel.
package flashcard

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

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const table = "flashcards"

var columns = []string{
	"id", "user_id", "front", "back", "notes", "subject", "difficulty", "tags",
	"review_count", "correct_count", "incorrect_count", "mastery_level",
	"last_reviewed", "next_review_date", "is_starred",
	"ease_factor", "interval_days", "repetitions",
	"created_at", "updated_at",
}

const cardColumns = `id, user_id, front, back, notes, subject, difficulty, tags,
       review_count, correct_count, incorrect_count, mastery_level,
       last_reviewed, next_review_date, is_starred,
       ease_factor, interval_days, repetitions,
       created_at, updated_at`

const createSQL = `
INSERT INTO flashcards (` + cardColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING ` + cardColumns

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM flashcards
WHERE id = $1 AND user_id = $2`

const getByIDsSQL = `
SELECT ` + cardColumns + `
FROM flashcards
WHERE user_id = $1 AND id = ANY($2)`

const listAllSQL = `
SELECT ` + cardColumns + `
FROM flashcards
WHERE user_id = $1
ORDER BY created_at, id`

const updateLearningStateSQL = `
UPDATE flashcards
SET review_count = $3, correct_count = $4, incorrect_count = $5, mastery_level = $6,
    last_reviewed = $7, next_review_date = $8,
    ease_factor = $9, interval_days = $10, repetitions = $11,
    updated_at = $12
WHERE id = $1 AND user_id = $2
RETURNING ` + cardColumns

const setStarredSQL = `
UPDATE flashcards
SET is_starred = $3, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + cardColumns

const deleteSQL = `DELETE FROM flashcards WHERE id = $1 AND user_id = $2`

const countMasteredSQL = `
SELECT count(*) FROM flashcards WHERE user_id = $1 AND mastery_level >= $2`

const countReviewedSQL = `
SELECT coalesce(sum(review_count), 0) FROM flashcards WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key filtered by user_id.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	card, err := scanCard(querier.QueryRow(ctx, getByIDSQL, cardID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}
	return &card, nil
}

// GetByIDs returns the user's cards among ids in no particular order.
// Unknown IDs and cards of other users are silently absent.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	if len(ids) == 0 {
		return []domain.Flashcard{}, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get flashcards by ids: %w", err)
	}
	return collectCards(rows)
}

// ListAll returns every card of the user in creation order.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return collectCards(rows)
}

// List returns one page of the user's cards matching filter, plus the total
// number of matching cards.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.Subject != nil {
		where = append(where, squirrel.Eq{"subject": *filter.Subject})
	}
	if filter.Difficulty != nil {
		where = append(where, squirrel.Eq{"difficulty": string(*filter.Difficulty)})
	}
	if filter.Starred != nil {
		where = append(where, squirrel.Eq{"is_starred": *filter.Starred})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count flashcards: %w", err)
	}

	query := postgres.Builder().
		Select(columns...).From(table).Where(where).
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
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}
	cards, err := collectCards(rows)
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

// CountMastered returns how many of the user's cards reached threshold mastery.
func (r *Repo) CountMastered(ctx context.Context, userID uuid.UUID, threshold int) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countMasteredSQL, userID, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count mastered flashcards: %w", err)
	}
	return n, nil
}

// CountReviewed returns the total number of reviews across the user's cards.
func (r *Repo) CountReviewed(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countReviewedSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviewed flashcards: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card and returns the stored row.
func (r *Repo) Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCard(querier.QueryRow(ctx, createSQL, values(card)...))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", card.ID)
	}
	return &created, nil
}

// CreateBatch inserts many cards using the COPY protocol and returns the
// number of rows written.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := querier.CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromSlice(len(cards), func(i int) ([]any, error) {
			return values(&cards[i]), nil
		}),
	)
	if err != nil {
		return 0, postgres.MapError(err, "flashcard batch", uuid.Nil)
	}
	return int(n), nil
}

// UpdateLearningState persists the review counters and scheduling fields of
// a card. Content fields are left untouched.
func (r *Repo) UpdateLearningState(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateLearningStateSQL,
		card.ID, card.UserID,
		card.ReviewCount, card.CorrectCount, card.IncorrectCount, card.MasteryLevel,
		card.LastReviewed, card.NextReviewDate,
		card.EaseFactor, card.IntervalDays, card.Repetitions,
		card.UpdatedAt,
	)

	updated, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", card.ID)
	}
	return &updated, nil
}

// SetStarred flags or unflags a card.
func (r *Repo) SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCard(querier.QueryRow(ctx, setStarredSQL, cardID, userID, starred))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}
	return &updated, nil
}

// Delete removes a card. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, cardID, userID)
	if err != nil {
		return postgres.MapError(err, "flashcard", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

// values returns the column values of card in the order of columns.
func values(c *domain.Flashcard) []any {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return []any{
		c.ID, c.UserID, c.Front, c.Back, c.Notes, c.Subject, string(c.Difficulty), tags,
		c.ReviewCount, c.CorrectCount, c.IncorrectCount, c.MasteryLevel,
		c.LastReviewed, c.NextReviewDate, c.IsStarred,
		c.EaseFactor, c.IntervalDays, c.Repetitions,
		c.CreatedAt, c.UpdatedAt,
	}
}

func scanCard(row rowScanner) (domain.Flashcard, error) {
	var (
		c            domain.Flashcard
		difficulty   string
		lastReviewed *time.Time
	)

	err := row.Scan(
		&c.ID, &c.UserID, &c.Front, &c.Back, &c.Notes, &c.Subject, &difficulty, &c.Tags,
		&c.ReviewCount, &c.CorrectCount, &c.IncorrectCount, &c.MasteryLevel,
		&lastReviewed, &c.NextReviewDate, &c.IsStarred,
		&c.EaseFactor, &c.IntervalDays, &c.Repetitions,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Flashcard{}, err
	}

	c.Difficulty = domain.Difficulty(difficulty)
	c.LastReviewed = lastReviewed
	return c, nil
}

func collectCards(rows pgx.Rows) ([]domain.Flashcard, error) {
	defer rows.Close()

	var cards []domain.Flashcard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}
	return cards, nil
}
