package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a to-do item. Completing it feeds the gamification scorer.
// WorkspaceID is set for tasks shared through a workspace.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID *uuid.UUID
	Title       string
	Difficulty  Difficulty
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsShared reports whether the task belongs to a workspace.
func (t Task) IsShared() bool { return t.WorkspaceID != nil }

// TaskFilter narrows task listings.
type TaskFilter struct {
	Completed *bool
	Limit     int
	Offset    int
}
