package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres/flashcard"
	gamerepo "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres/game"
	sessionrepo "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres/session"
	taskrepo "github.com/heartmarshall/studyquest-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/studyquest-backend/internal/config"
	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/game"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
	"github.com/heartmarshall/studyquest-backend/internal/service/task"
)

// Services holds the application services built on one database pool.
// Cards is exposed for the GraphQL dataloaders, which read it directly.
type Services struct {
	Study *study.Service
	Tasks *task.Service
	Game  *game.Service
	Cards *flashcardrepo.Repo
}

// NewServices wires repositories and services. The server and questctl
// share it so both run the same configuration.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *Services {
	txm := postgres.NewTxManager(pool)

	cards := flashcardrepo.New(pool)
	sessions := sessionrepo.New(pool)
	tasks := taskrepo.New(pool)
	games := gamerepo.New(pool)

	gameSvc := game.NewService(logger, games, tasks, cards, txm, GameConfig(cfg.Game), game.WithClock(clock))

	return &Services{
		Study: study.NewService(logger, cards, sessions, txm, StudyLimits(cfg.Study), study.WithClock(clock)),
		Tasks: task.NewService(logger, tasks, gameSvc, txm, clock),
		Game:  gameSvc,
		Cards: cards,
	}
}

// StudyLimits converts study settings into queue limits.
func StudyLimits(cfg config.StudyConfig) study.QueueLimits {
	return study.QueueLimits{
		ReviewPractice:       cfg.ReviewPracticeCap,
		LearnNew:             cfg.LearnNewCap,
		LearnDue:             cfg.LearnDueCap,
		Test:                 cfg.TestCap,
		PracticeMasteryBelow: cfg.PracticeMasteryBelow,
		TestMasteryAtLeast:   cfg.TestMasteryAtLeast,
	}
}

// GameConfig converts validated game settings into scorer configuration.
// It expects Validate to have filled the parsed fields.
func GameConfig(cfg config.GameConfig) game.Config {
	return game.Config{
		Rules: game.Rules{
			ComboWindow: cfg.ComboWindow,
			Multipliers: cfg.Multipliers,
			BasePoints: map[domain.Difficulty]int{
				domain.DifficultyEasy:   cfg.EasyPoints,
				domain.DifficultyMedium: cfg.MediumPoints,
				domain.DifficultyHard:   cfg.HardPoints,
			},
			RecentEventsCap:  cfg.RecentEventsCap,
			LevelStep:        cfg.LevelStep,
			StreakMilestones: cfg.Milestones,
		},
		Location:         cfg.Location,
		MasteryThreshold: cfg.MasteryThreshold,
		ExpiryTimeout:    cfg.ExpiryTimeout,
	}
}
