package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyquest-backend/internal/auth"
	"github.com/heartmarshall/studyquest-backend/internal/config"
	"github.com/heartmarshall/studyquest-backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, connects to
// the database, starts background jobs and serves HTTP until ctx is done,
// then shuts everything down within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		results, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	svcs := NewServices(pool, cfg, logger, clock)
	defer svcs.Game.Shutdown()

	jobs, err := NewJobs(cfg.Jobs, svcs.Game, logger)
	if err != nil {
		return err
	}
	jobs.Start()
	defer jobs.Stop()

	limiter := middleware.NewRateLimiter(clock, time.Minute)
	defer limiter.Stop()

	verifier := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	srv := newHTTPServer(cfg.Server, NewHandler(cfg, pool, svcs, verifier, limiter, clock, logger))

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-srvErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
