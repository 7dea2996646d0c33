package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/model"
)

func TestGameProfile(t *testing.T) {
	t.Parallel()

	mock := &gameServiceMock{
		GetProfileFunc: func(_ context.Context) (*domain.GameProfile, error) {
			return &domain.GameProfile{TotalPoints: 120, Level: 2, Combo: domain.ComboTracker{Multiplier: 1}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{game: mock}}
	result, err := resolver.GameProfile(authCtx())

	require.NoError(t, err)
	assert.Equal(t, 120, result.TotalPoints)
	assert.Equal(t, 2, result.Level)
	require.NotNil(t, result.Combo)
	assert.False(t, result.Combo.IsActive)
}

func TestAchievements_EmptyIsNotNull(t *testing.T) {
	t.Parallel()

	mock := &gameServiceMock{
		ListAchievementsFunc: func(_ context.Context) ([]domain.AchievementProgress, error) {
			return nil, nil
		},
	}

	resolver := &queryResolver{&Resolver{game: mock}}
	result, err := resolver.Achievements(authCtx())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestRecentEvents(t *testing.T) {
	t.Parallel()

	mock := &gameServiceMock{
		ListRecentEventsFunc: func(_ context.Context) ([]domain.GameEvent, error) {
			return []domain.GameEvent{{ID: uuid.New(), Type: domain.EventLevelUp, Special: true}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{game: mock}}
	result, err := resolver.RecentEvents(authCtx())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, model.EventTypeLevelUp, result[0].Type)
	assert.True(t, result[0].Special)
}

func TestRecentEvents_ServiceError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	mock := &gameServiceMock{
		ListRecentEventsFunc: func(_ context.Context) ([]domain.GameEvent, error) {
			return nil, dbErr
		},
	}

	resolver := &queryResolver{&Resolver{game: mock}}
	_, err := resolver.RecentEvents(authCtx())

	require.ErrorIs(t, err, dbErr)
}
