package game

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// memRepo is an in-memory gameRepo for service tests.
type memRepo struct {
	mu           sync.Mutex
	profiles     map[uuid.UUID]domain.GameProfile
	achievements map[uuid.UUID][]domain.AchievementProgress
	events       []domain.GameEvent

	achievementsAt time.Time
}

var _ gameRepo = &memRepo{}

func newMemRepo() *memRepo {
	return &memRepo{
		profiles:     make(map[uuid.UUID]domain.GameProfile),
		achievements: make(map[uuid.UUID][]domain.AchievementProgress),
	}
}

func (m *memRepo) GetProfile(_ context.Context, userID uuid.UUID) (*domain.GameProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *memRepo) UpsertProfile(_ context.Context, profile *domain.GameProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.UserID] = *profile
	return nil
}

func (m *memRepo) GetProfileForUpdate(_ context.Context, userID uuid.UUID, now time.Time) (*domain.GameProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		p = newProfile(userID, now)
		m.profiles[userID] = p
	}
	return &p, nil
}

func (m *memRepo) ExpireCombo(_ context.Context, userID uuid.UUID, lastBefore time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expireLocked(userID, lastBefore), nil
}

func (m *memRepo) ExpireCombos(_ context.Context, lastBefore time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id := range m.profiles {
		if m.expireLocked(id, lastBefore) {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) expireLocked(userID uuid.UUID, lastBefore time.Time) bool {
	p, ok := m.profiles[userID]
	if !ok || !p.Combo.IsActive || p.Combo.LastCompletionAt == nil || !p.Combo.LastCompletionAt.Before(lastBefore) {
		return false
	}
	p.Combo.IsActive = false
	p.Combo.Count = 0
	p.Combo.Multiplier = 1
	m.profiles[userID] = p
	return true
}

func (m *memRepo) ListAchievements(_ context.Context, userID uuid.UUID) ([]domain.AchievementProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.achievements[userID]), nil
}

func (m *memRepo) UpsertAchievements(_ context.Context, userID uuid.UUID, items []domain.AchievementProgress, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.achievements[userID] = slices.Clone(items)
	m.achievementsAt = now
	return nil
}

func (m *memRepo) InsertEvents(_ context.Context, events []domain.GameEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *memRepo) ListRecentEvents(_ context.Context, userID uuid.UUID, limit int) ([]domain.GameEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.GameEvent
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		if m.events[i].UserID == userID {
			out = append(out, m.events[i])
		}
	}
	return out, nil
}

func (m *memRepo) profile(userID uuid.UUID) domain.GameProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[userID]
}

func (m *memRepo) eventsOf(typ domain.EventType) []domain.GameEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.GameEvent
	for _, e := range m.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type taskListerMock struct {
	ListAllByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
}

func (m *taskListerMock) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	if m.ListAllByUserFunc == nil {
		panic("taskListerMock.ListAllByUserFunc: method is nil but taskLister.ListAllByUser was just called")
	}
	return m.ListAllByUserFunc(ctx, userID)
}

type cardStatsMock struct {
	Mastered int
	Reviewed int
	Err      error
}

func (m *cardStatsMock) CountMastered(context.Context, uuid.UUID, int) (int, error) {
	return m.Mastered, m.Err
}

func (m *cardStatsMock) CountReviewed(context.Context, uuid.UUID) (int, error) {
	return m.Reviewed, m.Err
}

type txManagerMock struct {
	mu    sync.Mutex
	calls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}
