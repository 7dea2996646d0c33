package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
	"github.com/heartmarshall/studyquest-backend/internal/service/task"
)

// studyService defines what resolver needs from Study service.
type studyService interface {
	CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Flashcard, error)
	ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.Flashcard, int, error)
	ToggleStar(ctx context.Context, input study.CardIDInput) (*domain.Flashcard, error)
	DeleteCard(ctx context.Context, input study.CardIDInput) error
	GetStudyQueue(ctx context.Context, input study.QueueInput) ([]domain.Flashcard, error)
	StartSession(ctx context.Context, input study.QueueInput) (*domain.StudySession, error)
	GetSession(ctx context.Context, input study.SessionIDInput) (*domain.StudySession, error)
	GetActiveSession(ctx context.Context) (*domain.StudySession, error)
	RevealCard(ctx context.Context, input study.SessionIDInput) (*domain.StudySession, error)
	AnswerCard(ctx context.Context, input study.AnswerInput) (*study.AnswerResult, error)
	AbandonSession(ctx context.Context) error
}

// taskService defines what resolver needs from Task service.
type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, input task.ListTasksInput) ([]domain.Task, int, error)
	CompleteTask(ctx context.Context, input task.TaskIDInput) (*task.Completion, error)
	DeleteTask(ctx context.Context, input task.TaskIDInput) error
}

// gameService defines what resolver needs from Game service.
type gameService interface {
	GetProfile(ctx context.Context) (*domain.GameProfile, error)
	ListAchievements(ctx context.Context) ([]domain.AchievementProgress, error)
	ListRecentEvents(ctx context.Context) ([]domain.GameEvent, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	study studyService
	tasks taskService
	game  gameService
	log   *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	study studyService,
	tasks taskService,
	game gameService,
) *Resolver {
	return &Resolver{
		study: study,
		tasks: tasks,
		game:  game,
		log:   log.With("component", "graphql"),
	}
}
