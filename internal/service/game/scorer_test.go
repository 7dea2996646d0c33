package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

var t0 = time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

func medium() domain.Task {
	return domain.Task{ID: uuid.New(), UserID: uuid.New(), Title: "write report", Difficulty: domain.DifficultyMedium}
}

func TestOnTaskCompleted_ThreeCompletions(t *testing.T) {
	t.Parallel()

	task := medium()
	tracker := domain.InactiveCombo()

	tracker, points, events := OnTaskCompleted(task, tracker, t0)
	assert.Equal(t, 1, tracker.Count)
	assert.Equal(t, 1.0, tracker.Multiplier)
	assert.True(t, tracker.IsActive)
	assert.Equal(t, 20, points)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTaskCompleted, events[0].Type)
	assert.Equal(t, 20, events[0].Points)

	tracker, points, events = OnTaskCompleted(task, tracker, t0.Add(10*time.Minute))
	assert.Equal(t, 2, tracker.Count)
	assert.Equal(t, 1.2, tracker.Multiplier)
	assert.Equal(t, 24, points)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTaskCompleted, events[0].Type)
	assert.Equal(t, 24, events[0].Points)
	assert.Equal(t, domain.EventComboBonus, events[1].Type)
	assert.Equal(t, 4, events[1].Points)

	// 45 minutes after the start is 35 minutes after the second completion.
	tracker, points, events = OnTaskCompleted(task, tracker, t0.Add(45*time.Minute))
	assert.Equal(t, 1, tracker.Count)
	assert.Equal(t, 1.0, tracker.Multiplier)
	assert.Equal(t, 20, points)
	assert.Len(t, events, 1)
}

func TestOnTaskCompleted_MultiplierSaturates(t *testing.T) {
	t.Parallel()

	task := domain.Task{UserID: uuid.New(), Difficulty: domain.DifficultyHard}
	tracker := domain.InactiveCombo()
	now := t0

	want := []float64{1, 1.2, 1.5, 2, 2.5, 3, 3, 3, 3, 3, 3, 3}
	for i, m := range want {
		var points int
		tracker, points, _ = OnTaskCompleted(task, tracker, now)
		assert.Equal(t, i+1, tracker.Count)
		assert.Equal(t, m, tracker.Multiplier, "completion %d", i+1)
		assert.LessOrEqual(t, tracker.Multiplier, 3.0)
		assert.LessOrEqual(t, points, 90)
		now = now.Add(29 * time.Minute)
	}
}

func TestOnTaskCompleted_BonusFloors(t *testing.T) {
	t.Parallel()

	easy := domain.Task{Difficulty: domain.DifficultyEasy}
	last := t0
	tracker := domain.ComboTracker{Count: 1, Multiplier: 1, LastCompletionAt: &last, IsActive: true}

	// 10 * 0.2 = 2 exactly; 10 * 0.5 = 5.
	tracker, points, _ := OnTaskCompleted(easy, tracker, t0.Add(time.Minute))
	assert.Equal(t, 12, points)
	_, points, _ = OnTaskCompleted(easy, tracker, t0.Add(2*time.Minute))
	assert.Equal(t, 15, points)
}

func TestOnTaskCompleted_WindowBoundaries(t *testing.T) {
	t.Parallel()

	last := t0
	active := domain.ComboTracker{Count: 3, Multiplier: 1.5, LastCompletionAt: &last, IsActive: true}

	tests := []struct {
		name      string
		tracker   domain.ComboTracker
		at        time.Time
		wantCount int
	}{
		{"exactly at window", active, t0.Add(30 * time.Minute), 4},
		{"just past window", active, t0.Add(30*time.Minute + time.Nanosecond), 1},
		{"clock skew", active, t0.Add(-time.Minute), 1},
		{"same instant", active, t0, 4},
		{"inactive tracker", domain.ComboTracker{Count: 3, Multiplier: 1.5, LastCompletionAt: &last}, t0.Add(time.Minute), 1},
		{"never completed", domain.InactiveCombo(), t0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _, _ := OnTaskCompleted(medium(), tt.tracker, tt.at)
			assert.Equal(t, tt.wantCount, got.Count)
			require.NotNil(t, got.LastCompletionAt)
			assert.Equal(t, tt.at, *got.LastCompletionAt)
		})
	}
}

func TestOnTaskCompleted_DoesNotMutateTracker(t *testing.T) {
	t.Parallel()

	last := t0
	tracker := domain.ComboTracker{Count: 2, Multiplier: 1.2, LastCompletionAt: &last, IsActive: true}

	got, _, _ := OnTaskCompleted(medium(), tracker, t0.Add(time.Minute))

	assert.Equal(t, 2, tracker.Count)
	assert.Equal(t, t0, *tracker.LastCompletionAt)
	assert.NotSame(t, tracker.LastCompletionAt, got.LastCompletionAt)
}

func TestExpireCombo(t *testing.T) {
	t.Parallel()

	last := t0
	active := domain.ComboTracker{Count: 4, Multiplier: 2, LastCompletionAt: &last, IsActive: true}

	still := ExpireCombo(active, t0.Add(29*time.Minute))
	assert.Equal(t, active, still)

	// Exactly at the window a completion would still extend, so no expiry.
	atBoundary := ExpireCombo(active, t0.Add(30*time.Minute))
	assert.Equal(t, active, atBoundary)

	expired := ExpireCombo(active, t0.Add(30*time.Minute+time.Nanosecond))
	assert.False(t, expired.IsActive)
	assert.Equal(t, 0, expired.Count)
	assert.Equal(t, 1.0, expired.Multiplier)
	assert.Equal(t, 4, active.Count)

	// The next completion after expiry starts over.
	next, _, _ := OnTaskCompleted(medium(), expired, t0.Add(31*time.Minute))
	assert.Equal(t, 1, next.Count)

	inactive := domain.InactiveCombo()
	assert.Equal(t, inactive, ExpireCombo(inactive, t0))
}

func TestRules_ExpiresAt(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	last := t0
	at, ok := rules.ExpiresAt(domain.ComboTracker{IsActive: true, LastCompletionAt: &last})
	require.True(t, ok)
	assert.Equal(t, t0.Add(30*time.Minute+time.Nanosecond), at)

	// Expiry and extension agree on the boundary.
	tracker := domain.ComboTracker{Count: 2, Multiplier: 1.2, IsActive: true, LastCompletionAt: &last}
	assert.True(t, rules.ExpireCombo(tracker, at.Add(-time.Nanosecond)).IsActive)
	assert.False(t, rules.ExpireCombo(tracker, at).IsActive)

	_, ok = rules.ExpiresAt(domain.InactiveCombo())
	assert.False(t, ok)
}

func TestRules_Level(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	assert.Equal(t, 1, rules.Level(0))
	assert.Equal(t, 1, rules.Level(99))
	assert.Equal(t, 2, rules.Level(100))
	assert.Equal(t, 11, rules.Level(1050))
	assert.Equal(t, 1, Rules{}.Level(500))
}

func TestPushRecent(t *testing.T) {
	t.Parallel()

	ev := func(points int) domain.GameEvent { return domain.GameEvent{Points: points} }
	pointsOf := func(events []domain.GameEvent) []int {
		out := make([]int, len(events))
		for i, e := range events {
			out[i] = e.Points
		}
		return out
	}

	var recent []domain.GameEvent
	for i := 1; i <= 9; i++ {
		recent = PushRecent(recent, 10, ev(i))
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, pointsOf(recent))

	pushed := PushRecent(recent, 10, ev(10), ev(11))
	assert.Equal(t, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, pointsOf(pushed))
	assert.Len(t, recent, 9)

	assert.Empty(t, PushRecent(recent, 0, ev(1)))
	assert.Len(t, PushRecent(nil, 3, ev(1), ev(2), ev(3), ev(4), ev(5)), 3)
}
