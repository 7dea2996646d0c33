package study

import (
	"math"
	"time"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

const (
	firstIntervalDays  = 1
	secondIntervalDays = 6

	masteryGainCorrect = 10
	masteryLossWrong   = 5
)

// RecordAnswer applies a graded recall to card using simplified SM-2 and
// returns the updated card. It is a pure function: the input card is not
// modified and the result shares no memory with it.
//
// Quality outside 0..3 is rejected with a validation error.
func RecordAnswer(card domain.Flashcard, quality domain.Quality, now time.Time) (domain.Flashcard, error) {
	if !quality.IsValid() {
		return card, domain.NewValidationError("quality", "must be between 0 and 3")
	}

	out := card.Clone()
	ease := currentEase(card.EaseFactor)
	correct := quality.IsCorrect()

	var interval int
	if correct {
		interval = nextInterval(card.Repetitions, card.IntervalDays, ease)
		out.Repetitions = card.Repetitions + 1
	} else {
		// Lapse: restart the interval progression, keep the history counters.
		interval = firstIntervalDays
		out.Repetitions = 0
	}

	out.EaseFactor = adjustEase(ease, quality)
	out.IntervalDays = interval
	out.NextReviewDate = now.Add(time.Duration(interval) * 24 * time.Hour)

	reviewed := now
	out.LastReviewed = &reviewed
	out.ReviewCount = card.ReviewCount + 1
	if correct {
		out.CorrectCount = card.CorrectCount + 1
		out.MasteryLevel = domain.ClampMastery(card.MasteryLevel + masteryGainCorrect)
	} else {
		out.IncorrectCount = card.IncorrectCount + 1
		out.MasteryLevel = domain.ClampMastery(card.MasteryLevel - masteryLossWrong)
	}
	out.UpdatedAt = now

	return out, nil
}

// nextInterval returns the interval in days after a successful recall.
// The product uses the ease the card had before this answer.
func nextInterval(repetitions, prevInterval int, ease float64) int {
	switch repetitions {
	case 0:
		return firstIntervalDays
	case 1:
		return secondIntervalDays
	}
	return max(1, int(math.Round(float64(prevInterval)*ease)))
}

// adjustEase applies the SM-2 ease update: EF += 0.1 - (5-q)(0.08 + (5-q)*0.02).
func adjustEase(ease float64, quality domain.Quality) float64 {
	d := 5 - float64(quality)
	return math.Max(domain.MinEaseFactor, ease+0.1-d*(0.08+d*0.02))
}

// currentEase normalises a stored ease: an unset ease starts at the default,
// anything below the floor is raised to it.
func currentEase(ease float64) float64 {
	if ease == 0 {
		return domain.DefaultEaseFactor
	}
	return math.Max(domain.MinEaseFactor, ease)
}
