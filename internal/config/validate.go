package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // timezone names resolve in minimal containers
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if c.GraphQL.ComplexityLimit < 0 {
		return fmt.Errorf("graphql.complexity_limit must be >= 0 (got %d)", c.GraphQL.ComplexityLimit)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	if c.Jobs.ComboSweepEnabled && c.Jobs.ComboSweepInterval <= 0 {
		return fmt.Errorf("jobs: combo_sweep_interval must be > 0 (got %s)", c.Jobs.ComboSweepInterval)
	}

	return nil
}

func (s *StudyConfig) validate() error {
	caps := map[string]int{
		"review_practice_cap": s.ReviewPracticeCap,
		"learn_new_cap":       s.LearnNewCap,
		"learn_due_cap":       s.LearnDueCap,
		"test_cap":            s.TestCap,
	}
	for name, v := range caps {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}
	if s.PracticeMasteryBelow < 0 || s.PracticeMasteryBelow > 100 {
		return fmt.Errorf("practice_mastery_below must be in [0,100] (got %d)", s.PracticeMasteryBelow)
	}
	if s.TestMasteryAtLeast < 0 || s.TestMasteryAtLeast > 100 {
		return fmt.Errorf("test_mastery_at_least must be in [0,100] (got %d)", s.TestMasteryAtLeast)
	}
	return nil
}

func (g *GameConfig) validate() error {
	if g.ComboWindow <= 0 {
		return fmt.Errorf("combo_window must be > 0 (got %s)", g.ComboWindow)
	}

	multipliers, err := ParseMultipliers(g.MultipliersRaw)
	if err != nil {
		return fmt.Errorf("multipliers: %w", err)
	}
	g.Multipliers = multipliers

	milestones, err := ParseMilestones(g.StreakMilestones)
	if err != nil {
		return fmt.Errorf("streak_milestones: %w", err)
	}
	g.Milestones = milestones

	if g.EasyPoints <= 0 || g.MediumPoints <= 0 || g.HardPoints <= 0 {
		return fmt.Errorf("base points must be > 0 (got %d/%d/%d)", g.EasyPoints, g.MediumPoints, g.HardPoints)
	}
	if g.RecentEventsCap <= 0 {
		return fmt.Errorf("recent_events_cap must be > 0 (got %d)", g.RecentEventsCap)
	}
	if g.LevelStep <= 0 {
		return fmt.Errorf("level_step must be > 0 (got %d)", g.LevelStep)
	}
	if g.MasteryThreshold < 0 || g.MasteryThreshold > 100 {
		return fmt.Errorf("mastery_threshold must be in [0,100] (got %d)", g.MasteryThreshold)
	}

	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	g.Location = loc

	return nil
}

// ParseMultipliers parses a comma-separated, non-decreasing list of combo
// multipliers (e.g. "1,1.2,1.5"). The first entry must be at least 1.
func ParseMultipliers(raw string) ([]float64, error) {
	parts := splitList(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one multiplier is required")
	}

	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid multiplier %q: %w", p, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("multiplier %v must be >= 1", v)
		}
		if n := len(out); n > 0 && v < out[n-1] {
			return nil, fmt.Errorf("multipliers must be non-decreasing (%v after %v)", v, out[n-1])
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseMilestones parses a comma-separated list of positive day counts.
// The result is sorted and deduplicated. An empty string returns nil.
func ParseMilestones(raw string) ([]int, error) {
	var out []int
	for _, p := range splitList(raw) {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid milestone %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("milestone %d must be > 0", v)
		}
		out = append(out, v)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
