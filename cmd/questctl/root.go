package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyquest-backend/internal/app"
	"github.com/heartmarshall/studyquest-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "questctl",
		Short:         "Operate a StudyQuest backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newImportCardsCmd(),
		newSweepCombosCmd(),
		newTokenCmd(),
	)
	return root
}

// env is what most commands need: configuration, a logger and services.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	svcs   *app.Services
}

func (e *env) Close() {
	if e.svcs != nil {
		e.svcs.Game.Shutdown()
	}
	if e.pool != nil {
		e.pool.Close()
	}
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func connect(ctx context.Context) (*env, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		svcs:   app.NewServices(pool, cfg, logger, clockwork.NewRealClock()),
	}, nil
}
