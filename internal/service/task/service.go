package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/game"
)

type taskRepo interface {
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, int, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	MarkCompleted(ctx context.Context, userID, taskID uuid.UUID, at time.Time) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

type completionRecorder interface {
	RecordCompletion(ctx context.Context, task domain.Task) (*game.CompletionResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages tasks and forwards completions to the scorer.
type Service struct {
	tasks  taskRepo
	scorer completionRecorder
	tx     txManager
	log    *slog.Logger
	clock  clockwork.Clock
}

// NewService creates a new task service.
func NewService(log *slog.Logger, tasks taskRepo, scorer completionRecorder, tx txManager, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		tasks:  tasks,
		scorer: scorer,
		tx:     tx,
		log:    log.With("service", "task"),
		clock:  clock,
	}
}
