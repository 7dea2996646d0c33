package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MasteryMin and MasteryMax bound Flashcard.MasteryLevel.
	MasteryMin = 0
	MasteryMax = 100

	// DefaultEaseFactor is the SM-2 starting ease of a new card.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the SM-2 ease floor.
	MinEaseFactor = 1.3
)

// Flashcard is a study card together with its learning state.
// It is treated as a value: scheduler operations return a new Flashcard.
type Flashcard struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Front      string
	Back       string
	Notes      string
	Subject    string
	Difficulty Difficulty
	Tags       []string

	ReviewCount    int
	CorrectCount   int
	IncorrectCount int
	MasteryLevel   int
	LastReviewed   *time.Time
	NextReviewDate time.Time
	IsStarred      bool

	// SM-2 state. Repetitions is reset on a lapse, ReviewCount never is.
	EaseFactor   float64
	IntervalDays int
	Repetitions  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFlashcard returns a card in its initial learning state, due at now.
func NewFlashcard(userID uuid.UUID, front, back string, now time.Time) Flashcard {
	return Flashcard{
		ID:             uuid.New(),
		UserID:         userID,
		Front:          front,
		Back:           back,
		Difficulty:     DifficultyMedium,
		NextReviewDate: now,
		EaseFactor:     DefaultEaseFactor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsNew reports whether the card has never been reviewed.
func (c Flashcard) IsNew() bool { return c.ReviewCount == 0 }

// IsDue reports whether the card should be reviewed at now.
// Never-reviewed cards are always due.
func (c Flashcard) IsDue(now time.Time) bool {
	return c.ReviewCount == 0 || !c.NextReviewDate.After(now)
}

// Clone returns a deep copy so callers can never alias the Tags slice
// or the LastReviewed pointer of another value.
func (c Flashcard) Clone() Flashcard {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.LastReviewed != nil {
		t := *c.LastReviewed
		out.LastReviewed = &t
	}
	return out
}

// ClampMastery bounds v to [MasteryMin, MasteryMax].
func ClampMastery(v int) int {
	return min(max(v, MasteryMin), MasteryMax)
}

// FlashcardFilter narrows card listings.
type FlashcardFilter struct {
	Subject    *string
	Difficulty *Difficulty
	Starred    *bool
	Limit      int
	Offset     int
}
