package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

func doneAt(at time.Time) domain.Task {
	return domain.Task{ID: uuid.New(), Completed: true, CompletedAt: &at, Difficulty: domain.DifficultyEasy}
}

func byID(items []domain.AchievementProgress) map[string]domain.AchievementProgress {
	out := make(map[string]domain.AchievementProgress, len(items))
	for _, p := range items {
		out[p.ID] = p
	}
	return out
}

func countTasks(s Snapshot) int { return len(s.Tasks) }

func TestNewCatalog_Validation(t *testing.T) {
	t.Parallel()

	ok := Achievement{ID: "a", Category: domain.AchievementCategoryProductivity, Target: 1, Progress: countTasks}

	tests := []struct {
		name  string
		items []Achievement
	}{
		{"missing rule", []Achievement{{ID: "a", Category: domain.AchievementCategoryProductivity, Target: 1}}},
		{"zero target", []Achievement{{ID: "a", Category: domain.AchievementCategoryProductivity, Progress: countTasks}}},
		{"unknown category", []Achievement{{ID: "a", Category: "fun", Target: 1, Progress: countTasks}}},
		{"empty id", []Achievement{{Category: domain.AchievementCategoryProductivity, Target: 1, Progress: countTasks}}},
		{"duplicate id", []Achievement{ok, ok}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewCatalog(tt.items...)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}

	c, err := NewCatalog(ok)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	got, found := c.Lookup("a")
	assert.True(t, found)
	assert.Equal(t, 1, got.Target)
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	categories := map[domain.AchievementCategory]bool{}
	for _, a := range c.Items() {
		assert.NotNil(t, a.Progress, a.ID)
		categories[a.Category] = true
	}
	assert.Len(t, categories, 4)
}

func TestRecomputeAchievements_ClampAndUnlockOnce(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(Achievement{
		ID: "ten", Name: "Ten", Category: domain.AchievementCategoryProductivity, Target: 10, Progress: completedCount,
	})
	require.NoError(t, err)

	var tasks []domain.Task
	for i := range 15 {
		tasks = append(tasks, doneAt(t0.Add(time.Duration(i)*time.Hour)))
	}

	first, events := RecomputeAchievements(tasks[:9], domain.StatsSnapshot{}, catalog, nil, t0)
	require.Len(t, first, 1)
	assert.Equal(t, 9, first[0].Progress)
	assert.False(t, first[0].Completed)
	assert.Empty(t, events)

	second, events := RecomputeAchievements(tasks, domain.StatsSnapshot{}, catalog, first, t0.Add(time.Hour))
	assert.Equal(t, 10, second[0].Progress)
	assert.True(t, second[0].Completed)
	require.NotNil(t, second[0].CompletedAt)
	assert.Equal(t, t0.Add(time.Hour), *second[0].CompletedAt)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventAchievementUnlocked, events[0].Type)
	assert.Equal(t, "Ten", events[0].Title)

	third, events := RecomputeAchievements(tasks, domain.StatsSnapshot{}, catalog, second, t0.Add(2*time.Hour))
	assert.True(t, third[0].Completed)
	assert.Equal(t, t0.Add(time.Hour), *third[0].CompletedAt)
	assert.Empty(t, events)
}

func TestRecomputeAchievements_CompletionIsMonotonic(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(Achievement{
		ID: "streak", Category: domain.AchievementCategoryConsistency, Target: 3, Progress: currentStreak,
	})
	require.NoError(t, err)

	var prev []domain.AchievementProgress
	unlocks := 0
	completedOnce := false
	for i, streak := range []int{1, 2, 3, 0, 1, 5, 0} {
		var events []domain.GameEvent
		prev, events = RecomputeAchievements(nil, domain.StatsSnapshot{CurrentStreak: streak}, catalog, prev, t0)
		unlocks += len(events)
		if completedOnce {
			assert.True(t, prev[0].Completed, "step %d", i)
		}
		completedOnce = completedOnce || prev[0].Completed
		assert.LessOrEqual(t, prev[0].Progress, 3)
	}
	assert.Equal(t, 1, unlocks)
	assert.Equal(t, 0, prev[0].Progress)
}

func TestRecomputeAchievements_DoesNotMutatePrevious(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(Achievement{
		ID: "one", Category: domain.AchievementCategoryProductivity, Target: 1, Progress: completedCount,
	})
	require.NoError(t, err)

	prev := []domain.AchievementProgress{{ID: "one", Progress: 0}}
	_, _ = RecomputeAchievements([]domain.Task{doneAt(t0)}, domain.StatsSnapshot{}, catalog, prev, t0)

	assert.False(t, prev[0].Completed)
	assert.Equal(t, 0, prev[0].Progress)
}

func TestDefaultCatalog_Rules(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 23, 0, 0, 0, time.UTC)
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	workspace := uuid.New()

	var tasks []domain.Task
	// Five completions inside the trailing 30 minutes.
	for i := range 5 {
		tasks = append(tasks, doneAt(now.Add(-time.Duration(i)*5*time.Minute)))
	}
	// Hours 0, 5, 6 and 7.
	for _, h := range []int{0, 5, 6, 7} {
		tasks = append(tasks, doneAt(day.Add(time.Duration(h)*time.Hour)))
	}
	shared := doneAt(day.Add(12 * time.Hour))
	shared.WorkspaceID = &workspace
	tasks = append(tasks, shared)
	tasks = append(tasks, domain.Task{ID: uuid.New(), Title: "open"})

	stats := domain.StatsSnapshot{CurrentStreak: 4, CardsMastered: 12, CardsReviewed: 40, Level: 2}
	got, events := RecomputeAchievements(tasks, stats, DefaultCatalog(), nil, now)
	p := byID(got)

	assert.Equal(t, 1, p["first_task"].Progress)
	assert.True(t, p["first_task"].Completed)
	assert.Equal(t, 10, p["task_apprentice"].Progress)
	assert.True(t, p["task_apprentice"].Completed)
	assert.Equal(t, 10, p["task_centurion"].Progress)
	assert.Equal(t, 5, p["speed_demon"].Progress)
	assert.True(t, p["speed_demon"].Completed)
	assert.Equal(t, 3, p["streak_3"].Progress)
	assert.Equal(t, 4, p["streak_7"].Progress)
	// 22:40 to 23:00 plus 00:00, 05:00 and 06:00.
	assert.Equal(t, 8, p["night_owl"].Progress)
	assert.Equal(t, 3, p["early_bird"].Progress)
	assert.Equal(t, 10, p["card_master"].Progress)
	assert.True(t, p["card_master"].Completed)
	assert.Equal(t, 40, p["diligent_reviewer"].Progress)
	assert.Equal(t, 2, p["rising_star"].Progress)
	assert.Equal(t, 1, p["team_player"].Progress)

	unlocked := map[string]bool{}
	for _, e := range events {
		unlocked[e.Title] = true
	}
	assert.Len(t, events, 5)
	assert.True(t, unlocked["First Step"])
	assert.True(t, unlocked["On a Roll"])
}

func TestCompletedInHours_UsesLocation(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	// 21:30 UTC is 06:30 in Tokyo.
	tasks := []domain.Task{doneAt(time.Date(2026, 6, 1, 21, 30, 0, 0, time.UTC))}

	utc := completedInHours(earlyBirdHour)(Snapshot{Tasks: tasks})
	jst := completedInHours(earlyBirdHour)(Snapshot{Tasks: tasks, Stats: domain.StatsSnapshot{Location: tokyo}})

	assert.Equal(t, 0, utc)
	assert.Equal(t, 1, jst)
}
