package study

import "github.com/heartmarshall/studyquest-backend/internal/domain"

// AnswerResult is the outcome of grading a card within a session.
// Card is nil when the card was deleted after the session was built; the
// session then moves past it without grading.
type AnswerResult struct {
	Card    *domain.Flashcard
	Session *domain.StudySession
}
