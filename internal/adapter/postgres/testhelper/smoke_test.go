package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	card := SeedFlashcard(t, pool, uuid.New(), "biology")

	// Verify card exists in DB via SELECT.
	var front string
	err := pool.QueryRow(
		context.Background(),
		`SELECT front FROM flashcards WHERE id = $1`,
		card.ID,
	).Scan(&front)
	if err != nil {
		t.Fatalf("expected card in DB, got error: %v", err)
	}

	if front != card.Front {
		t.Fatalf("expected front %q, got %q", card.Front, front)
	}
}
