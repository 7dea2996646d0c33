package domain

import (
	"time"

	"github.com/google/uuid"
)

// ComboTracker is the rolling streak of closely spaced task completions.
// IsActive is true only while LastCompletionAt is inside the inactivity window.
type ComboTracker struct {
	Count            int
	Multiplier       float64
	LastCompletionAt *time.Time
	IsActive         bool
}

// InactiveCombo is the tracker a session starts with.
func InactiveCombo() ComboTracker {
	return ComboTracker{Multiplier: 1}
}

// AchievementProgress is the per-user state of one catalog achievement.
// Completed is monotonic: once true it never reverts.
type AchievementProgress struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    AchievementCategory
	Progress    int
	Target      int
	Completed   bool
	CompletedAt *time.Time
}

// GameEvent is a transient notification produced by the scorer.
type GameEvent struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        EventType
	Title       string
	Description string
	Points      int
	Timestamp   time.Time
	Special     bool
}

// GameProfile is the persisted gamification state of a user.
type GameProfile struct {
	UserID      uuid.UUID
	Combo       ComboTracker
	TotalPoints int
	Level       int
	UpdatedAt   time.Time
}

// StatsSnapshot holds the aggregate numbers achievement rules read
// besides the task list itself.
type StatsSnapshot struct {
	CurrentStreak int
	TotalPoints   int
	Level         int
	CardsMastered int
	CardsReviewed int
	Location      *time.Location
}
