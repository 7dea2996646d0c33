package game

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// GetProfile returns the user's game profile. A combo whose window has
// already passed is reported inactive even if its expiry has not run yet.
func (s *Service) GetProfile(ctx context.Context) (*domain.GameProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	profile, err := s.loadProfile(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	profile.Combo = s.cfg.Rules.ExpireCombo(profile.Combo, now)
	profile.Level = s.cfg.Rules.Level(profile.TotalPoints)
	return &profile, nil
}

// ListAchievements returns progress for every catalog entry, including those
// the user has not started.
func (s *Service) ListAchievements(ctx context.Context) ([]domain.AchievementProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stored, err := s.repo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	byID := make(map[string]domain.AchievementProgress, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	out := make([]domain.AchievementProgress, 0, s.catalog.Len())
	for _, a := range s.catalog.Items() {
		p := domain.AchievementProgress{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    a.Category,
			Target:      a.Target,
		}
		if st, ok := byID[a.ID]; ok {
			p.Progress = min(st.Progress, a.Target)
			p.Completed = st.Completed
			p.CompletedAt = st.CompletedAt
		}
		out = append(out, p)
	}
	return out, nil
}

// ListRecentEvents returns the newest events first, capped by the rules.
func (s *Service) ListRecentEvents(ctx context.Context) ([]domain.GameEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.repo.ListRecentEvents(ctx, userID, s.cfg.Rules.RecentEventsCap)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return events, nil
}
