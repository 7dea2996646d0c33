package study

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Flashcard, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
	Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
	CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error)
	UpdateLearningState(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
	SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Flashcard, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error)
	// Update replaces from with to. It fails with domain.ErrConflict when the
	// stored session no longer matches from.
	Update(ctx context.Context, from, to *domain.StudySession) (*domain.StudySession, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements flashcard management and study sessions.
type Service struct {
	cards    cardRepo
	sessions sessionRepo
	tx       txManager
	log      *slog.Logger
	clock    clockwork.Clock
	limits   QueueLimits
	shuffle  Shuffler
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces the wall clock (tests use a fake clock).
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithShuffler replaces the random permutation used for queues.
func WithShuffler(fn Shuffler) Option {
	return func(s *Service) { s.shuffle = fn }
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	sessions sessionRepo,
	tx txManager,
	limits QueueLimits,
	opts ...Option,
) *Service {
	s := &Service{
		cards:    cards,
		sessions: sessions,
		tx:       tx,
		log:      log.With("service", "study"),
		clock:    clockwork.NewRealClock(),
		limits:   limits,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
