package game

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type fixture struct {
	svc    *Service
	repo   *memRepo
	clock  *clockwork.FakeClock
	userID uuid.UUID
	ctx    context.Context

	mu    sync.Mutex
	tasks []domain.Task
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:   newMemRepo(),
		clock:  clockwork.NewFakeClockAt(t0),
		userID: uuid.New(),
	}
	f.ctx = ctxutil.WithUserID(context.Background(), f.userID)

	tasks := &taskListerMock{
		ListAllByUserFunc: func(context.Context, uuid.UUID) ([]domain.Task, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return append([]domain.Task(nil), f.tasks...), nil
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	f.svc = NewService(logger, f.repo, tasks, &cardStatsMock{}, &txManagerMock{},
		Config{Rules: DefaultRules(), Location: time.UTC},
		WithClock(f.clock),
	)
	t.Cleanup(f.svc.Shutdown)
	return f
}

// complete stores a completed task at the fake clock's time and scores it.
func (f *fixture) complete(t *testing.T, d domain.Difficulty) *CompletionResult {
	t.Helper()

	at := f.clock.Now()
	task := domain.Task{
		ID:          uuid.New(),
		UserID:      f.userID,
		Title:       "task",
		Difficulty:  d,
		Completed:   true,
		CompletedAt: &at,
	}
	f.mu.Lock()
	f.tasks = append(f.tasks, task)
	f.mu.Unlock()

	res, err := f.svc.RecordCompletion(f.ctx, task)
	require.NoError(t, err)
	return res
}

func (f *fixture) addPastCompletion(at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, domain.Task{ID: uuid.New(), UserID: f.userID, Completed: true, CompletedAt: &at})
}

func eventTypes(events []domain.GameEvent) []domain.EventType {
	out := make([]domain.EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

// ---------------------------------------------------------------------------
// RecordCompletion
// ---------------------------------------------------------------------------

func TestService_RecordCompletion_ComboSequence(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	first := f.complete(t, domain.DifficultyMedium)
	assert.Equal(t, 20, first.Points)
	assert.Equal(t, 1, first.Profile.Combo.Count)

	f.clock.Advance(10 * time.Minute)
	second := f.complete(t, domain.DifficultyMedium)
	assert.Equal(t, 24, second.Points)
	assert.Equal(t, 2, second.Profile.Combo.Count)
	assert.Equal(t, 1.2, second.Profile.Combo.Multiplier)
	assert.Contains(t, eventTypes(second.Events), domain.EventComboBonus)

	f.clock.Advance(35 * time.Minute)
	third := f.complete(t, domain.DifficultyMedium)
	assert.Equal(t, 20, third.Points)
	assert.Equal(t, 1, third.Profile.Combo.Count)
	assert.Equal(t, 1.0, third.Profile.Combo.Multiplier)

	stored := f.repo.profile(f.userID)
	assert.Equal(t, 64, stored.TotalPoints)
	assert.Equal(t, 1, stored.Level)
	for _, e := range f.repo.eventsOf(domain.EventTaskCompleted) {
		assert.Equal(t, f.userID, e.UserID)
	}
}

func TestService_RecordCompletion_ExactlyAtWindowExtends(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.complete(t, domain.DifficultyMedium)
	blockUntil(t, f.clock, 1)

	// The expiry timer must not beat a completion landing on the boundary.
	f.clock.Advance(30 * time.Minute)
	time.Sleep(20 * time.Millisecond)
	second := f.complete(t, domain.DifficultyMedium)
	assert.Equal(t, 2, second.Profile.Combo.Count)
	assert.Equal(t, 1.2, second.Profile.Combo.Multiplier)
}

func TestService_RecordCompletion_StampsAchievementsWithClock(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.clock.Advance(3 * time.Hour)
	f.complete(t, domain.DifficultyEasy)

	f.repo.mu.Lock()
	at := f.repo.achievementsAt
	f.repo.mu.Unlock()
	assert.Equal(t, t0.Add(3*time.Hour), at)
}

func TestService_RecordCompletion_RecentFeedNewestFirst(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	var res *CompletionResult
	for range 8 {
		res = f.complete(t, domain.DifficultyEasy)
		f.clock.Advance(time.Minute)
	}

	require.Len(t, res.Recent, 10)
	assert.Equal(t, res.Events[len(res.Events)-1].ID, res.Recent[0].ID)
	for i := 1; i < len(res.Recent); i++ {
		assert.False(t, res.Recent[i].Timestamp.After(res.Recent[i-1].Timestamp))
	}

	recent, err := f.svc.ListRecentEvents(f.ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 10)
}

func TestService_RecordCompletion_LevelUp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	// Hard tasks spaced outside the window: 30 points each, no bonus.
	var leveled *CompletionResult
	for i := range 4 {
		res := f.complete(t, domain.DifficultyHard)
		if i == 3 {
			leveled = res
		} else {
			assert.NotContains(t, eventTypes(res.Events), domain.EventLevelUp)
		}
		f.clock.Advance(time.Hour)
	}

	assert.Equal(t, 120, leveled.Profile.TotalPoints)
	assert.Equal(t, 2, leveled.Profile.Level)
	assert.Contains(t, eventTypes(leveled.Events), domain.EventLevelUp)
}

func TestService_RecordCompletion_StreakMilestone(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.addPastCompletion(t0.AddDate(0, 0, -2))
	f.addPastCompletion(t0.AddDate(0, 0, -1))

	res := f.complete(t, domain.DifficultyEasy)
	assert.Contains(t, eventTypes(res.Events), domain.EventStreakAchieved)

	// A second completion on the same day does not repeat the milestone.
	f.clock.Advance(time.Hour)
	res = f.complete(t, domain.DifficultyEasy)
	assert.NotContains(t, eventTypes(res.Events), domain.EventStreakAchieved)
	assert.Len(t, f.repo.eventsOf(domain.EventStreakAchieved), 1)
}

func TestService_RecordCompletion_UnlocksOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	res := f.complete(t, domain.DifficultyEasy)
	assert.Contains(t, eventTypes(res.Events), domain.EventAchievementUnlocked)

	f.clock.Advance(time.Minute)
	res = f.complete(t, domain.DifficultyEasy)
	assert.NotContains(t, eventTypes(res.Events), domain.EventAchievementUnlocked)

	unlocked := f.repo.eventsOf(domain.EventAchievementUnlocked)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "First Step", unlocked[0].Title)

	list, err := f.svc.ListAchievements(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, DefaultCatalog().Len())
	for _, p := range list {
		if p.ID == "first_task" {
			assert.True(t, p.Completed)
		}
		if p.ID == "task_apprentice" {
			assert.Equal(t, 2, p.Progress)
			assert.False(t, p.Completed)
		}
	}
}

func TestService_RecordCompletion_Rejects(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	at := t0
	task := domain.Task{ID: uuid.New(), UserID: f.userID, Completed: true, CompletedAt: &at}

	_, err := f.svc.RecordCompletion(context.Background(), task)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other := task
	other.UserID = uuid.New()
	_, err = f.svc.RecordCompletion(f.ctx, other)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	open := task
	open.Completed = false
	_, err = f.svc.RecordCompletion(f.ctx, open)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Combo expiry
// ---------------------------------------------------------------------------

func comboActive(f *fixture) func() bool {
	return func() bool { return f.repo.profile(f.userID).Combo.IsActive }
}

func TestService_ComboTimerExpires(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.complete(t, domain.DifficultyMedium)
	assert.Equal(t, 1, f.svc.armedTimers())
	blockUntil(t, f.clock, 1)

	// A completion at exactly the window would still extend the combo.
	f.clock.Advance(30 * time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, comboActive(f)())

	f.clock.Advance(time.Nanosecond)
	assert.Eventually(t, func() bool { return !comboActive(f)() }, 2*time.Second, 5*time.Millisecond)
	p := f.repo.profile(f.userID)
	assert.Equal(t, 0, p.Combo.Count)
	assert.Equal(t, 1.0, p.Combo.Multiplier)
	assert.Equal(t, 20, p.TotalPoints)
}

func TestService_ComboTimerRearmedByCompletion(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.complete(t, domain.DifficultyMedium)
	blockUntil(t, f.clock, 1)
	f.clock.Advance(20 * time.Minute)

	f.complete(t, domain.DifficultyMedium)
	blockUntil(t, f.clock, 1)

	// Past the first deadline: the combo must survive.
	f.clock.Advance(15 * time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, comboActive(f)())
	assert.Equal(t, 2, f.repo.profile(f.userID).Combo.Count)

	f.clock.Advance(15*time.Minute + time.Nanosecond)
	assert.Eventually(t, func() bool { return !comboActive(f)() }, 2*time.Second, 5*time.Millisecond)
}

func TestService_ExpireCombos_Sweep(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.complete(t, domain.DifficultyEasy)
	// Simulate a restart: timers are gone, the stored combo is still active.
	f.svc.Shutdown()

	n, err := f.svc.ExpireCombos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	f.clock.Advance(31 * time.Minute)
	n, err = f.svc.ExpireCombos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, comboActive(f)())

	n, err = f.svc.ExpireCombos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestService_Shutdown_StopsTimers(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.complete(t, domain.DifficultyEasy)
	require.Equal(t, 1, f.svc.armedTimers())

	f.svc.Shutdown()
	assert.Equal(t, 0, f.svc.armedTimers())

	f.clock.Advance(time.Hour)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, comboActive(f)())

	// Completions after shutdown still score but arm nothing.
	f.complete(t, domain.DifficultyEasy)
	assert.Equal(t, 0, f.svc.armedTimers())
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestService_GetProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	p, err := f.svc.GetProfile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Level)
	assert.False(t, p.Combo.IsActive)
	assert.Equal(t, 1.0, p.Combo.Multiplier)

	f.complete(t, domain.DifficultyHard)
	f.svc.Shutdown()

	p, err = f.svc.GetProfile(f.ctx)
	require.NoError(t, err)
	assert.True(t, p.Combo.IsActive)
	assert.Equal(t, 30, p.TotalPoints)

	// The window passed without the expiry running.
	f.clock.Advance(45 * time.Minute)
	p, err = f.svc.GetProfile(f.ctx)
	require.NoError(t, err)
	assert.False(t, p.Combo.IsActive)
	assert.True(t, comboActive(f)())
}

func TestService_QueriesRequireUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetProfile(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.svc.ListAchievements(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.svc.ListRecentEvents(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
