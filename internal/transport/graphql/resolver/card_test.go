package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/model"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

func ptr[T any](v T) *T { return &v }

func authCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), uuid.New())
}

func TestCreateCard_Success(t *testing.T) {
	t.Parallel()

	cardID := uuid.New()
	mock := &studyServiceMock{
		CreateCardFunc: func(_ context.Context, input study.CreateCardInput) (*domain.Flashcard, error) {
			return &domain.Flashcard{
				ID:         cardID,
				Front:      input.Front,
				Back:       input.Back,
				Subject:    input.Subject,
				Difficulty: domain.DifficultyHard,
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{study: mock}}
	result, err := resolver.CreateCard(authCtx(), model.CreateCardInput{
		Front:      "hola",
		Back:       "hello",
		Subject:    ptr("spanish"),
		Difficulty: ptr(model.DifficultyHard),
	})

	require.NoError(t, err)
	assert.Equal(t, cardID, result.ID)
	assert.Equal(t, model.DifficultyHard, result.Difficulty)
	assert.Equal(t, []string{}, result.Tags, "nil tags are exposed as an empty list")

	calls := mock.CreateCardCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "spanish", calls[0].Input.Subject)
	assert.Equal(t, "", calls[0].Input.Notes)
	assert.Equal(t, domain.DifficultyHard, calls[0].Input.Difficulty)
}

func TestCreateCard_OmittedDifficultyLeftToService(t *testing.T) {
	t.Parallel()

	mock := &studyServiceMock{
		CreateCardFunc: func(_ context.Context, _ study.CreateCardInput) (*domain.Flashcard, error) {
			return &domain.Flashcard{ID: uuid.New(), Difficulty: domain.DifficultyMedium}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{study: mock}}
	_, err := resolver.CreateCard(authCtx(), model.CreateCardInput{Front: "a", Back: "b"})

	require.NoError(t, err)
	assert.Equal(t, domain.Difficulty(""), mock.CreateCardCalls()[0].Input.Difficulty)
}

func TestCreateCard_Unauthorized(t *testing.T) {
	t.Parallel()

	mock := &studyServiceMock{}
	resolver := &mutationResolver{&Resolver{study: mock}}

	result, err := resolver.CreateCard(context.Background(), model.CreateCardInput{Front: "a", Back: "b"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Nil(t, result)
	require.Empty(t, mock.CreateCardCalls())
}

func TestCards_FilterAndPaging(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock := &studyServiceMock{
		ListCardsFunc: func(_ context.Context, _ study.ListCardsInput) ([]domain.Flashcard, int, error) {
			return []domain.Flashcard{
				{ID: uuid.New(), Front: "a", Difficulty: domain.DifficultyEasy, NextReviewDate: now},
				{ID: uuid.New(), Front: "b", Difficulty: domain.DifficultyEasy, NextReviewDate: now},
			}, 7, nil
		},
	}

	resolver := &queryResolver{&Resolver{study: mock}}
	result, err := resolver.Cards(authCtx(), &model.CardFilter{
		Subject:    ptr("math"),
		Difficulty: ptr(model.DifficultyEasy),
		Starred:    ptr(true),
	}, ptr(2), ptr(4))

	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "a", result.Items[0].Front)

	input := mock.ListCardsCalls()[0].Input
	assert.Equal(t, 2, input.Limit)
	assert.Equal(t, 4, input.Offset)
	require.NotNil(t, input.Difficulty)
	assert.Equal(t, domain.DifficultyEasy, *input.Difficulty)
	assert.Equal(t, "math", *input.Subject)
	assert.True(t, *input.Starred)
}

func TestCards_NoFilter(t *testing.T) {
	t.Parallel()

	mock := &studyServiceMock{
		ListCardsFunc: func(_ context.Context, _ study.ListCardsInput) ([]domain.Flashcard, int, error) {
			return nil, 0, nil
		},
	}

	resolver := &queryResolver{&Resolver{study: mock}}
	result, err := resolver.Cards(authCtx(), nil, nil, nil)

	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)

	input := mock.ListCardsCalls()[0].Input
	assert.Nil(t, input.Subject)
	assert.Nil(t, input.Difficulty)
	assert.Zero(t, input.Limit)
}

func TestToggleStar_PassesServiceError(t *testing.T) {
	t.Parallel()

	mock := &studyServiceMock{
		ToggleStarFunc: func(_ context.Context, _ study.CardIDInput) (*domain.Flashcard, error) {
			return nil, domain.ErrNotFound
		},
	}

	resolver := &mutationResolver{&Resolver{study: mock}}
	result, err := resolver.ToggleStar(authCtx(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, result)
}

func TestDeleteCard(t *testing.T) {
	t.Parallel()

	cardID := uuid.New()
	mock := &studyServiceMock{
		DeleteCardFunc: func(_ context.Context, input study.CardIDInput) error {
			if input.CardID != cardID {
				return domain.ErrNotFound
			}
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{study: mock}}

	ok, err := resolver.DeleteCard(authCtx(), cardID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = resolver.DeleteCard(authCtx(), uuid.New())
	require.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, ok)
}
