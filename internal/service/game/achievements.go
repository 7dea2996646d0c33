package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Snapshot is everything a progress rule may look at.
type Snapshot struct {
	Tasks []domain.Task
	Stats domain.StatsSnapshot
	Now   time.Time
}

// ProgressFunc extracts the raw progress of one achievement from a snapshot.
type ProgressFunc func(Snapshot) int

// Achievement defines one catalog entry together with its progress rule.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    domain.AchievementCategory
	Target      int
	Progress    ProgressFunc
}

// Catalog is a validated, ordered set of achievements.
type Catalog struct {
	items []Achievement
	index map[string]int
}

// NewCatalog checks every definition and builds a catalog. Each entry must
// carry a progress rule, a unique id, a positive target and a known category.
func NewCatalog(items ...Achievement) (*Catalog, error) {
	c := &Catalog{
		items: make([]Achievement, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	var errs []error
	for i, a := range items {
		switch {
		case a.ID == "":
			errs = append(errs, fmt.Errorf("achievement #%d: empty id", i))
			continue
		case a.Progress == nil:
			errs = append(errs, fmt.Errorf("achievement %q: no progress rule", a.ID))
		case a.Target <= 0:
			errs = append(errs, fmt.Errorf("achievement %q: target must be positive", a.ID))
		case !a.Category.IsValid():
			errs = append(errs, fmt.Errorf("achievement %q: unknown category %q", a.ID, a.Category))
		}
		if _, dup := c.index[a.ID]; dup {
			errs = append(errs, fmt.Errorf("achievement %q: duplicate id", a.ID))
			continue
		}
		c.index[a.ID] = len(c.items)
		c.items = append(c.items, a)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Items returns the definitions in catalog order.
func (c *Catalog) Items() []Achievement {
	out := make([]Achievement, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds a definition by id.
func (c *Catalog) Lookup(id string) (Achievement, bool) {
	i, ok := c.index[id]
	if !ok {
		return Achievement{}, false
	}
	return c.items[i], true
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.items) }

// RecomputeAchievements rescans the full snapshot and returns the new
// progress of every catalog entry, in catalog order, plus one
// achievement_unlocked event per entry that became completed now.
// Progress is clamped to the target; completion never reverts.
// previous is matched by id and is not modified.
func RecomputeAchievements(
	tasks []domain.Task,
	stats domain.StatsSnapshot,
	catalog *Catalog,
	previous []domain.AchievementProgress,
	now time.Time,
) ([]domain.AchievementProgress, []domain.GameEvent) {
	prev := make(map[string]domain.AchievementProgress, len(previous))
	for _, p := range previous {
		prev[p.ID] = p
	}

	snap := Snapshot{Tasks: tasks, Stats: stats, Now: now}
	out := make([]domain.AchievementProgress, 0, catalog.Len())
	var events []domain.GameEvent

	for _, a := range catalog.items {
		progress := min(max(a.Progress(snap), 0), a.Target)
		p := domain.AchievementProgress{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    a.Category,
			Progress:    progress,
			Target:      a.Target,
		}

		old, seen := prev[a.ID]
		switch {
		case seen && old.Completed:
			p.Completed = true
			if old.CompletedAt != nil {
				t := *old.CompletedAt
				p.CompletedAt = &t
			}
		case progress >= a.Target:
			p.Completed = true
			at := now
			p.CompletedAt = &at
			events = append(events, domain.GameEvent{
				ID:          uuid.New(),
				Type:        domain.EventAchievementUnlocked,
				Title:       a.Name,
				Description: a.Description,
				Timestamp:   now,
				Special:     true,
			})
		}

		out = append(out, p)
	}

	return out, events
}

// ---------------------------------------------------------------------------
// Built-in rules
// ---------------------------------------------------------------------------

// DefaultCatalog returns the built-in achievements.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Achievement{ID: "first_task", Name: "First Step", Description: "Complete your first task", Icon: "🎯",
			Category: domain.AchievementCategoryProductivity, Target: 1, Progress: completedCount},
		Achievement{ID: "task_apprentice", Name: "Apprentice", Description: "Complete 10 tasks", Icon: "🛠️",
			Category: domain.AchievementCategoryProductivity, Target: 10, Progress: completedCount},
		Achievement{ID: "task_centurion", Name: "Centurion", Description: "Complete 100 tasks", Icon: "🏛️",
			Category: domain.AchievementCategoryProductivity, Target: 100, Progress: completedCount},
		Achievement{ID: "speed_demon", Name: "Speed Demon", Description: "Complete 5 tasks within 30 minutes", Icon: "⚡",
			Category: domain.AchievementCategoryProductivity, Target: 5, Progress: completedWithin(30 * time.Minute)},
		Achievement{ID: "streak_3", Name: "On a Roll", Description: "Keep a 3 day streak", Icon: "🔥",
			Category: domain.AchievementCategoryConsistency, Target: 3, Progress: currentStreak},
		Achievement{ID: "streak_7", Name: "Week Warrior", Description: "Keep a 7 day streak", Icon: "📅",
			Category: domain.AchievementCategoryConsistency, Target: 7, Progress: currentStreak},
		Achievement{ID: "night_owl", Name: "Night Owl", Description: "Complete 10 tasks between 22:00 and 06:00", Icon: "🦉",
			Category: domain.AchievementCategoryConsistency, Target: 10, Progress: completedInHours(nightOwlHour)},
		Achievement{ID: "early_bird", Name: "Early Bird", Description: "Complete 10 tasks between 05:00 and 07:00", Icon: "🐦",
			Category: domain.AchievementCategoryConsistency, Target: 10, Progress: completedInHours(earlyBirdHour)},
		Achievement{ID: "card_master", Name: "Card Master", Description: "Master 10 flashcards", Icon: "🧠",
			Category: domain.AchievementCategoryMastery, Target: 10, Progress: func(s Snapshot) int { return s.Stats.CardsMastered }},
		Achievement{ID: "diligent_reviewer", Name: "Diligent Reviewer", Description: "Review flashcards 100 times", Icon: "📚",
			Category: domain.AchievementCategoryMastery, Target: 100, Progress: func(s Snapshot) int { return s.Stats.CardsReviewed }},
		Achievement{ID: "rising_star", Name: "Rising Star", Description: "Reach level 5", Icon: "⭐",
			Category: domain.AchievementCategoryProductivity, Target: 5, Progress: func(s Snapshot) int { return s.Stats.Level }},
		Achievement{ID: "team_player", Name: "Team Player", Description: "Complete 5 shared workspace tasks", Icon: "🤝",
			Category: domain.AchievementCategorySocial, Target: 5, Progress: sharedCompleted},
	)
	if err != nil {
		panic(fmt.Sprintf("game: invalid built-in catalog: %v", err))
	}
	return c
}

func completedCount(s Snapshot) int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func currentStreak(s Snapshot) int { return s.Stats.CurrentStreak }

func sharedCompleted(s Snapshot) int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed && t.IsShared() {
			n++
		}
	}
	return n
}

// completedWithin counts completions in the trailing window ending at Now.
func completedWithin(window time.Duration) ProgressFunc {
	return func(s Snapshot) int {
		from := s.Now.Add(-window)
		n := 0
		for _, t := range s.Tasks {
			if !t.Completed || t.CompletedAt == nil {
				continue
			}
			if !t.CompletedAt.Before(from) && !t.CompletedAt.After(s.Now) {
				n++
			}
		}
		return n
	}
}

// completedInHours counts completions whose local hour satisfies match.
func completedInHours(match func(hour int) bool) ProgressFunc {
	return func(s Snapshot) int {
		loc := s.Stats.Location
		if loc == nil {
			loc = time.UTC
		}
		n := 0
		for _, t := range s.Tasks {
			if t.Completed && t.CompletedAt != nil && match(t.CompletedAt.In(loc).Hour()) {
				n++
			}
		}
		return n
	}
}

func nightOwlHour(h int) bool  { return h >= 22 || h <= 6 }
func earlyBirdHour(h int) bool { return h >= 5 && h <= 7 }
