package task

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

const maxTitleLen = 500

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title       string
	Difficulty  domain.Difficulty
	WorkspaceID *uuid.UUID
}

// Validate checks all fields and collects all errors.
// Empty Difficulty defaults to medium.
func (i *CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	i.Title = strings.TrimSpace(i.Title)
	if i.Difficulty == "" {
		i.Difficulty = domain.DifficultyMedium
	}

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium, or hard"})
	}
	if i.WorkspaceID != nil && *i.WorkspaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListTasksInput holds the parameters for listing tasks.
type ListTasksInput struct {
	Completed *bool
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i *ListTasksInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TaskIDInput identifies a single task.
type TaskIDInput struct {
	TaskID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *TaskIDInput) Validate() error {
	if i.TaskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}
	return nil
}
