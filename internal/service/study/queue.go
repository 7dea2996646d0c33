package study

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// QueueLimits holds the caps and mastery thresholds of queue selection.
type QueueLimits struct {
	ReviewPractice       int // practice cards added to review mode
	LearnNew             int // new cards in learn mode
	LearnDue             int // due cards in learn mode
	Test                 int // cards in test mode
	PracticeMasteryBelow int // practice = reviewed cards below this mastery
	TestMasteryAtLeast   int // test = cards at or above this mastery
}

// DefaultQueueLimits returns the standard queue policy.
func DefaultQueueLimits() QueueLimits {
	return QueueLimits{
		ReviewPractice:       10,
		LearnNew:             20,
		LearnDue:             10,
		Test:                 30,
		PracticeMasteryBelow: 70,
		TestMasteryAtLeast:   50,
	}
}

// Shuffler permutes n elements through swap; rand.Shuffle satisfies it.
type Shuffler func(n int, swap func(i, j int))

// BuildStudyQueue selects cards for the given mode, applies the subject and
// difficulty filters and returns them in random order.
//
//   - review: due ∪ first ReviewPractice of practice
//   - learn:  first LearnNew of new ∪ first LearnDue of due
//   - test:   cards with mastery >= TestMasteryAtLeast, capped at Test
//
// "First" follows the order of cards. Unions are deduplicated by id.
// The result holds copies; cards is not modified.
func BuildStudyQueue(cards []domain.Flashcard, params domain.QueueParams, now time.Time, limits QueueLimits, shuffle Shuffler) []domain.Flashcard {
	var due, fresh, practice, testable []domain.Flashcard
	for _, c := range cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
		if c.IsNew() {
			fresh = append(fresh, c)
		}
		if c.ReviewCount > 0 && c.MasteryLevel < limits.PracticeMasteryBelow {
			practice = append(practice, c)
		}
		if c.MasteryLevel >= limits.TestMasteryAtLeast {
			testable = append(testable, c)
		}
	}

	var candidates []domain.Flashcard
	switch params.Mode {
	case domain.StudyModeReview:
		candidates = union(due, firstN(practice, limits.ReviewPractice))
	case domain.StudyModeLearn:
		candidates = union(firstN(fresh, limits.LearnNew), firstN(due, limits.LearnDue))
	case domain.StudyModeTest:
		candidates = firstN(testable, limits.Test)
	}

	queue := make([]domain.Flashcard, 0, len(candidates))
	for _, c := range candidates {
		if matchesFilters(c, params) {
			queue = append(queue, c.Clone())
		}
	}

	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })

	return queue
}

func matchesFilters(c domain.Flashcard, params domain.QueueParams) bool {
	if len(params.Subjects) > 0 && !slices.Contains(params.Subjects, c.Subject) {
		return false
	}
	if len(params.Difficulties) > 0 && !slices.Contains(params.Difficulties, c.Difficulty) {
		return false
	}
	return true
}

func firstN(cards []domain.Flashcard, n int) []domain.Flashcard {
	if n < 0 {
		n = 0
	}
	if len(cards) > n {
		return cards[:n]
	}
	return cards
}

// union concatenates a and b, dropping cards whose id was already seen.
func union(a, b []domain.Flashcard) []domain.Flashcard {
	seen := make(map[uuid.UUID]struct{}, len(a)+len(b))
	out := make([]domain.Flashcard, 0, len(a)+len(b))
	for _, list := range [][]domain.Flashcard{a, b} {
		for _, c := range list {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func cardIDs(cards []domain.Flashcard) []uuid.UUID {
	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
