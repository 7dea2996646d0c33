package game

import (
	"time"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Rules holds the scoring constants of the gamification engine.
type Rules struct {
	ComboWindow      time.Duration
	Multipliers      []float64
	BasePoints       map[domain.Difficulty]int
	RecentEventsCap  int
	LevelStep        int
	StreakMilestones []int
}

// DefaultRules returns the standard scoring table.
func DefaultRules() Rules {
	return Rules{
		ComboWindow: 30 * time.Minute,
		Multipliers: []float64{1, 1.2, 1.5, 2, 2.5, 3},
		BasePoints: map[domain.Difficulty]int{
			domain.DifficultyEasy:   10,
			domain.DifficultyMedium: 20,
			domain.DifficultyHard:   30,
		},
		RecentEventsCap:  10,
		LevelStep:        100,
		StreakMilestones: []int{3, 7, 14, 30, 60, 100},
	}
}

// multiplier returns the table entry for the count-th consecutive completion.
// The table saturates at its last entry.
func (r Rules) multiplier(count int) float64 {
	if len(r.Multipliers) == 0 || count < 1 {
		return 1
	}
	return r.Multipliers[min(count-1, len(r.Multipliers)-1)]
}

func (r Rules) basePoints(d domain.Difficulty) int {
	if p, ok := r.BasePoints[d]; ok {
		return p
	}
	return r.BasePoints[domain.DifficultyMedium]
}

// Level maps total points to a level starting at 1.
func (r Rules) Level(points int) int {
	if r.LevelStep <= 0 || points <= 0 {
		return 1
	}
	return 1 + points/r.LevelStep
}

func (r Rules) isStreakMilestone(days int) bool {
	for _, m := range r.StreakMilestones {
		if m == days {
			return true
		}
	}
	return false
}
