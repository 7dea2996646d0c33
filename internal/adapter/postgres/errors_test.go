package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil, "flashcard", uuid.New()))
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	got := MapError(fmt.Errorf("scan: %w", pgx.ErrNoRows), "flashcard", id)

	assert.ErrorIs(t, got, domain.ErrNotFound)
	assert.EqualError(t, got, fmt.Sprintf("flashcard %s: not found", id))
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique violation", codeUniqueViolation, domain.ErrAlreadyExists},
		{"foreign key violation", codeForeignKeyViolation, domain.ErrNotFound},
		{"check violation", codeCheckViolation, domain.ErrValidation},
		{"not null violation", codeNotNullViolation, domain.ErrValidation},
		{"invalid text", codeInvalidText, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pgErr := &pgconn.PgError{Code: tt.code, Message: "detail that must not leak"}

			got := MapError(fmt.Errorf("insert: %w", pgErr), "study_session", uuid.New())

			assert.ErrorIs(t, got, tt.want)
			assert.NotContains(t, got.Error(), "detail that must not leak")
		})
	}
}

func TestMapError_PassThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"deadline", context.DeadlineExceeded},
		{"canceled", context.Canceled},
		{"unknown", errors.New("something unexpected")},
		{"undefined table", &pgconn.PgError{Code: "42P01"}},
		{"deadlock", &pgconn.PgError{Code: codeDeadlockDetected}},
		{"serialization failure", &pgconn.PgError{Code: codeSerializationFailure}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := uuid.New()

			got := MapError(tt.err, "game_profile", id)

			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "game_profile "+id.String()+": ")
			for _, sentinel := range []error{domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation, domain.ErrConflict} {
				assert.NotErrorIs(t, got, sentinel)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, isRetryable(fmt.Errorf("commit: %w", &pgconn.PgError{Code: codeDeadlockDetected})))
	assert.True(t, isRetryable(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.False(t, isRetryable(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isRetryable(errors.New("boom")))
	assert.False(t, isRetryable(nil))
}
