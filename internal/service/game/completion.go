package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// CompletionResult is what a single task completion earned.
type CompletionResult struct {
	Profile      domain.GameProfile
	Points       int
	Events       []domain.GameEvent
	Recent       []domain.GameEvent
	Achievements []domain.AchievementProgress
}

// RecordCompletion scores a completed task for the user in ctx. Profile,
// achievement progress and events are written in one transaction; afterwards
// the user's combo timer is re-armed. The task must already be stored as
// completed so the achievement rescan sees it.
func (s *Service) RecordCompletion(ctx context.Context, task domain.Task) (*CompletionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if task.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if !task.Completed {
		return nil, domain.NewValidationError("task", "not completed")
	}

	now := s.clock.Now()
	rules := s.cfg.Rules
	result := &CompletionResult{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.repo.GetProfileForUpdate(txCtx, userID, now)
		if err != nil {
			return fmt.Errorf("lock profile: %w", err)
		}
		profile := *locked

		combo, points, events := rules.OnTaskCompleted(task, profile.Combo, now)
		oldLevel := rules.Level(profile.TotalPoints)
		profile.Combo = combo
		profile.TotalPoints += points
		profile.Level = rules.Level(profile.TotalPoints)
		profile.UpdatedAt = now

		if profile.Level > oldLevel {
			events = append(events, domain.GameEvent{
				ID:          uuid.New(),
				Type:        domain.EventLevelUp,
				Title:       fmt.Sprintf("Level %d", profile.Level),
				Description: fmt.Sprintf("You reached level %d", profile.Level),
				Timestamp:   now,
				Special:     true,
			})
		}

		tasks, err := s.tasks.ListAllByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}

		streak := CurrentStreak(tasks, now, s.cfg.Location)
		before := CurrentStreak(withoutTask(tasks, task.ID), now, s.cfg.Location)
		if streak > before && rules.isStreakMilestone(streak) {
			events = append(events, domain.GameEvent{
				ID:          uuid.New(),
				Type:        domain.EventStreakAchieved,
				Title:       fmt.Sprintf("%d day streak", streak),
				Description: fmt.Sprintf("Tasks completed %d days in a row", streak),
				Timestamp:   now,
				Special:     true,
			})
		}

		stats, err := s.snapshot(txCtx, userID, profile, streak)
		if err != nil {
			return err
		}

		previous, err := s.repo.ListAchievements(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list achievements: %w", err)
		}
		progress, unlocked := RecomputeAchievements(tasks, stats, s.catalog, previous, now)
		events = append(events, unlocked...)
		stampUser(events, userID)

		recent, err := s.repo.ListRecentEvents(txCtx, userID, rules.RecentEventsCap)
		if err != nil {
			return fmt.Errorf("list recent events: %w", err)
		}

		if err := s.repo.UpsertProfile(txCtx, &profile); err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		if err := s.repo.UpsertAchievements(txCtx, userID, progress, now); err != nil {
			return fmt.Errorf("upsert achievements: %w", err)
		}
		if err := s.repo.InsertEvents(txCtx, events); err != nil {
			return fmt.Errorf("insert events: %w", err)
		}

		result.Profile = profile
		result.Points = points
		result.Events = events
		result.Recent = PushRecent(recent, rules.RecentEventsCap, events...)
		result.Achievements = progress
		return nil
	})
	if err != nil {
		return nil, err
	}

	if expiresAt, ok := rules.ExpiresAt(result.Profile.Combo); ok {
		s.armTimer(userID, expiresAt.Sub(now))
	}

	s.log.InfoContext(ctx, "task scored",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.Int("points", result.Points),
		slog.Int("combo", result.Profile.Combo.Count),
		slog.Int("total_points", result.Profile.TotalPoints),
		slog.Int("events", len(result.Events)),
	)

	return result, nil
}

// ExpireCombos deactivates every stored combo whose window has passed and
// returns how many were expired. It backs up the in-process timers, which do
// not survive a restart.
func (s *Service) ExpireCombos(ctx context.Context) (int, error) {
	n, err := s.repo.ExpireCombos(ctx, s.clock.Now().Add(-s.cfg.Rules.ComboWindow))
	if err != nil {
		return 0, fmt.Errorf("expire combos: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "combos expired", slog.Int("count", n))
	}
	return n, nil
}

// expireUser deactivates one combo unless a newer completion moved its
// window forward.
func (s *Service) expireUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	changed, err := s.repo.ExpireCombo(ctx, userID, s.clock.Now().Add(-s.cfg.Rules.ComboWindow))
	if err != nil {
		return false, fmt.Errorf("expire combo: %w", err)
	}
	if changed {
		s.log.DebugContext(ctx, "combo expired", slog.String("user_id", userID.String()))
	}
	return changed, nil
}

func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID, now time.Time) (domain.GameProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return newProfile(userID, now), nil
		}
		return domain.GameProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return *profile, nil
}

func (s *Service) snapshot(ctx context.Context, userID uuid.UUID, profile domain.GameProfile, streak int) (domain.StatsSnapshot, error) {
	mastered, err := s.cards.CountMastered(ctx, userID, s.cfg.MasteryThreshold)
	if err != nil {
		return domain.StatsSnapshot{}, fmt.Errorf("count mastered cards: %w", err)
	}
	reviewed, err := s.cards.CountReviewed(ctx, userID)
	if err != nil {
		return domain.StatsSnapshot{}, fmt.Errorf("count reviewed cards: %w", err)
	}
	return domain.StatsSnapshot{
		CurrentStreak: streak,
		TotalPoints:   profile.TotalPoints,
		Level:         profile.Level,
		CardsMastered: mastered,
		CardsReviewed: reviewed,
		Location:      s.cfg.Location,
	}, nil
}

func newProfile(userID uuid.UUID, now time.Time) domain.GameProfile {
	return domain.GameProfile{
		UserID:    userID,
		Combo:     domain.InactiveCombo(),
		Level:     1,
		UpdatedAt: now,
	}
}

func withoutTask(tasks []domain.Task, id uuid.UUID) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func stampUser(events []domain.GameEvent, userID uuid.UUID) {
	for i := range events {
		events[i].UserID = userID
	}
}
