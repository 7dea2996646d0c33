package study

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

const (
	maxFrontLen   = 2000
	maxBackLen    = 2000
	maxNotesLen   = 5000
	maxSubjectLen = 100
	maxTags       = 20
	maxTagLen     = 50
	maxImportSize = 1000
)

// QueueInput selects the study mode and optional filters.
type QueueInput struct {
	Mode         domain.StudyMode
	Subjects     []string
	Difficulties []domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i *QueueInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be review, learn, or test"})
	}
	for _, d := range i.Difficulties {
		if !d.IsValid() {
			errs = append(errs, domain.FieldError{Field: "difficulties", Message: "must be easy, medium, or hard"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *QueueInput) params() domain.QueueParams {
	return domain.QueueParams{
		Mode:         i.Mode,
		Subjects:     i.Subjects,
		Difficulties: i.Difficulties,
	}
}

// CreateCardInput holds the parameters for creating a flashcard.
type CreateCardInput struct {
	Front      string
	Back       string
	Notes      string
	Subject    string
	Difficulty domain.Difficulty
	Tags       []string
}

// Validate checks all fields and collects all errors.
// Empty Difficulty defaults to medium.
func (i *CreateCardInput) Validate() error {
	var errs []domain.FieldError

	i.Front = strings.TrimSpace(i.Front)
	i.Back = strings.TrimSpace(i.Back)
	i.Subject = strings.TrimSpace(i.Subject)
	if i.Difficulty == "" {
		i.Difficulty = domain.DifficultyMedium
	}

	if i.Front == "" {
		errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
	} else if len(i.Front) > maxFrontLen {
		errs = append(errs, domain.FieldError{Field: "front", Message: "too long"})
	}
	if i.Back == "" {
		errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
	} else if len(i.Back) > maxBackLen {
		errs = append(errs, domain.FieldError{Field: "back", Message: "too long"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}
	if len(i.Subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium, or hard"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 20)"})
	}
	for _, tag := range i.Tags {
		if strings.TrimSpace(tag) == "" || len(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "each tag must be 1-50 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCardsInput holds the parameters for listing flashcards.
type ListCardsInput struct {
	Subject    *string
	Difficulty *domain.Difficulty
	Starred    *bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium, or hard"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CardIDInput identifies a single flashcard.
type CardIDInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CardIDInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}

// ImportCardsInput holds a batch of cards to create.
type ImportCardsInput struct {
	Cards []CreateCardInput
}

// Validate checks all fields and collects all errors.
// Field names are prefixed with the row index, e.g. "cards[3].front".
func (i *ImportCardsInput) Validate() error {
	if len(i.Cards) == 0 {
		return domain.NewValidationError("cards", "required (at least 1)")
	}
	if len(i.Cards) > maxImportSize {
		return domain.NewValidationError("cards", "too many (max 1000)")
	}

	var errs []domain.FieldError
	for idx := range i.Cards {
		for _, fe := range domain.FieldErrors(i.Cards[idx].Validate()) {
			errs = append(errs, domain.FieldError{
				Field:   "cards[" + strconv.Itoa(idx) + "]." + fe.Field,
				Message: fe.Message,
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SessionIDInput identifies a study session.
type SessionIDInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *SessionIDInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}

// AnswerInput grades the current card of a session.
type AnswerInput struct {
	SessionID uuid.UUID
	Quality   domain.Quality
}

// Validate checks all fields and collects all errors.
func (i *AnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Quality.IsValid() {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 3"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
