package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/game"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// Completion is a completed task together with what it scored.
type Completion struct {
	Task *domain.Task
	Game *game.CompletionResult
}

// CreateTask creates an open task.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	t := &domain.Task{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: input.WorkspaceID,
		Title:       input.Title,
		Difficulty:  input.Difficulty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", created.ID.String()),
	)

	return created, nil
}

// ListTasks returns a page of the user's tasks and the total count.
func (s *Service) ListTasks(ctx context.Context, input ListTasksInput) ([]domain.Task, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	tasks, total, err := s.tasks.List(ctx, userID, domain.TaskFilter{
		Completed: input.Completed,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

// DeleteTask removes a task. Points already awarded for it are kept.
func (s *Service) DeleteTask(ctx context.Context, input TaskIDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, userID, input.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", input.TaskID.String()),
	)
	return nil
}

// CompleteTask marks a task completed and scores it in the same
// transaction. Completing a task twice is a conflict.
func (s *Service) CompleteTask(ctx context.Context, input TaskIDInput) (*Completion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	out := &Completion{}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.tasks.GetByID(txCtx, userID, input.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if current.Completed {
			return fmt.Errorf("task %s already completed: %w", current.ID, domain.ErrConflict)
		}

		completed, err := s.tasks.MarkCompleted(txCtx, userID, current.ID, s.clock.Now())
		if err != nil {
			return fmt.Errorf("complete task: %w", err)
		}

		scored, err := s.scorer.RecordCompletion(txCtx, *completed)
		if err != nil {
			return fmt.Errorf("score task: %w", err)
		}

		out.Task = completed
		out.Game = scored
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task completed",
		slog.String("user_id", userID.String()),
		slog.String("task_id", out.Task.ID.String()),
		slog.Int("points", out.Game.Points),
	)

	return out, nil
}
