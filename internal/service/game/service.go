package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type gameRepo interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.GameProfile, error)
	GetProfileForUpdate(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.GameProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.GameProfile) error
	ExpireCombo(ctx context.Context, userID uuid.UUID, lastBefore time.Time) (bool, error)
	ExpireCombos(ctx context.Context, lastBefore time.Time) (int, error)
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementProgress, error)
	UpsertAchievements(ctx context.Context, userID uuid.UUID, items []domain.AchievementProgress, now time.Time) error
	InsertEvents(ctx context.Context, events []domain.GameEvent) error
	ListRecentEvents(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GameEvent, error)
}

type taskLister interface {
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
}

type cardStats interface {
	CountMastered(ctx context.Context, userID uuid.UUID, threshold int) (int, error)
	CountReviewed(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the tunables of the game service.
type Config struct {
	Rules            Rules
	Location         *time.Location
	MasteryThreshold int
	ExpiryTimeout    time.Duration
}

// Service scores task completions and owns per-user combo timers.
type Service struct {
	repo    gameRepo
	tasks   taskLister
	cards   cardStats
	tx      txManager
	log     *slog.Logger
	clock   clockwork.Clock
	catalog *Catalog
	cfg     Config

	mu     sync.Mutex
	timers map[uuid.UUID]*ComboTimer
	closed bool
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithCatalog replaces the built-in achievement catalog.
func WithCatalog(c *Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

// NewService creates a new game service.
func NewService(
	log *slog.Logger,
	repo gameRepo,
	tasks taskLister,
	cards cardStats,
	tx txManager,
	cfg Config,
	opts ...Option,
) *Service {
	if cfg.Rules.ComboWindow <= 0 || len(cfg.Rules.Multipliers) == 0 {
		cfg.Rules = DefaultRules()
	}
	if cfg.MasteryThreshold <= 0 {
		cfg.MasteryThreshold = 80
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ExpiryTimeout <= 0 {
		cfg.ExpiryTimeout = 5 * time.Second
	}
	s := &Service{
		repo:    repo,
		tasks:   tasks,
		cards:   cards,
		tx:      tx,
		log:     log.With("service", "game"),
		clock:   clockwork.NewRealClock(),
		catalog: DefaultCatalog(),
		cfg:     cfg,
		timers:  make(map[uuid.UUID]*ComboTimer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shutdown cancels every armed combo timer. Later completions no longer arm
// timers; the periodic sweep still expires their combos.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Cancel()
		delete(s.timers, id)
	}
	s.closed = true
}

// armTimer (re)schedules the combo expiry of a user.
func (s *Service) armTimer(userID uuid.UUID, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	t, ok := s.timers[userID]
	if !ok {
		t = NewComboTimer(s.clock)
		s.timers[userID] = t
	}
	t.Arm(d, func() { s.onTimer(userID) })
}

func (s *Service) onTimer(userID uuid.UUID) {
	s.mu.Lock()
	if t, ok := s.timers[userID]; ok && !t.Armed() {
		delete(s.timers, userID)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ExpiryTimeout)
	defer cancel()

	if _, err := s.expireUser(ctx, userID); err != nil {
		s.log.ErrorContext(ctx, "combo expiry failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// armedTimers reports how many users have a pending expiry.
func (s *Service) armedTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
