package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedFlashcard inserts a never-reviewed card for userID in the given subject.
// Returns a filled domain.Flashcard.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, subject string) domain.Flashcard {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := uniqueSuffix()
	card := domain.NewFlashcard(userID, "front "+suffix, "back "+suffix, now)
	card.Subject = subject
	card.Difficulty = domain.DifficultyMedium
	card.Tags = []string{"seed"}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, user_id, front, back, notes, subject, difficulty, tags,
		                         next_review_date, ease_factor, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		card.ID, card.UserID, card.Front, card.Back, card.Notes, card.Subject, string(card.Difficulty), card.Tags,
		card.NextReviewDate, card.EaseFactor, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard insert: %v", err)
	}

	return card
}

// SeedTask inserts an open task for userID. Returns a filled domain.Task.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, difficulty domain.Difficulty) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      "task " + uniqueSuffix(),
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, user_id, title, difficulty, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.UserID, task.Title, string(task.Difficulty), task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}

	return task
}

// SeedCompletedTask inserts a task completed at the given instant.
func SeedCompletedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, completedAt time.Time) domain.Task {
	t.Helper()

	task := SeedTask(t, pool, userID, domain.DifficultyMedium)
	at := completedAt.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`UPDATE tasks SET completed = TRUE, completed_at = $2, updated_at = $2 WHERE id = $1`,
		task.ID, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedTask update: %v", err)
	}

	task.Completed = true
	task.CompletedAt = &at
	return task
}
