package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// QueueParams selects and filters the cards of a study queue.
// Empty Subjects or Difficulties mean "no filter".
type QueueParams struct {
	Mode         StudyMode
	Subjects     []string
	Difficulties []Difficulty
}

// StudySession walks a previously built queue one card at a time.
//
//	NotStarted -> ShowingFront <-> ShowingBack -> (graded) -> ShowingFront ... -> Complete
//
// Transitions return a new value; the receiver is never modified.
type StudySession struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Mode       StudyMode
	CardIDs    []uuid.UUID
	Position   int
	Phase      SessionPhase
	Reviewed   int
	Correct    int
	StartedAt  time.Time
	FinishedAt *time.Time
}

// NewStudySession creates a session over the given queue in NotStarted phase.
func NewStudySession(userID uuid.UUID, mode StudyMode, cardIDs []uuid.UUID, now time.Time) StudySession {
	return StudySession{
		ID:        uuid.New(),
		UserID:    userID,
		Mode:      mode,
		CardIDs:   slices.Clone(cardIDs),
		Phase:     SessionPhaseNotStarted,
		StartedAt: now,
	}
}

// CurrentCardID returns the card at the current position.
func (s StudySession) CurrentCardID() (uuid.UUID, bool) {
	if s.Phase.IsTerminal() || s.Position >= len(s.CardIDs) {
		return uuid.Nil, false
	}
	return s.CardIDs[s.Position], true
}

// Remaining returns how many cards are left including the current one.
func (s StudySession) Remaining() int {
	if s.Phase.IsTerminal() {
		return 0
	}
	return max(0, len(s.CardIDs)-s.Position)
}

// Start moves a NotStarted session to its first card, or straight to
// Complete when the queue is empty.
func (s StudySession) Start(now time.Time) (StudySession, error) {
	if s.Phase != SessionPhaseNotStarted {
		return s, transitionError("start", s.Phase)
	}
	out := s.clone()
	out.Position = 0
	if len(out.CardIDs) == 0 {
		return out.complete(now), nil
	}
	out.Phase = SessionPhaseShowingFront
	return out, nil
}

// Reveal shows the back of the current card.
func (s StudySession) Reveal() (StudySession, error) {
	if s.Phase != SessionPhaseShowingFront {
		return s, transitionError("reveal", s.Phase)
	}
	out := s.clone()
	out.Phase = SessionPhaseShowingBack
	return out, nil
}

// Grade records the answer for the current card and advances the session.
func (s StudySession) Grade(correct bool, now time.Time) (StudySession, error) {
	if s.Phase != SessionPhaseShowingBack {
		return s, transitionError("grade", s.Phase)
	}
	out := s.clone()
	out.Reviewed++
	if correct {
		out.Correct++
	}
	next, done := Advance(len(out.CardIDs), out.Position)
	if done {
		return out.complete(now), nil
	}
	out.Position = next
	out.Phase = SessionPhaseShowingFront
	return out, nil
}

// Skip moves past the current card without grading it. It is used when the
// card no longer exists; the reviewed and correct counters are unchanged.
func (s StudySession) Skip(now time.Time) (StudySession, error) {
	if s.Phase != SessionPhaseShowingFront && s.Phase != SessionPhaseShowingBack {
		return s, transitionError("skip", s.Phase)
	}
	out := s.clone()
	next, done := Advance(len(out.CardIDs), out.Position)
	if done {
		return out.complete(now), nil
	}
	out.Position = next
	out.Phase = SessionPhaseShowingFront
	return out, nil
}

// Abandon ends an unfinished session.
func (s StudySession) Abandon(now time.Time) (StudySession, error) {
	if s.Phase.IsTerminal() {
		return s, transitionError("abandon", s.Phase)
	}
	out := s.clone()
	out.Phase = SessionPhaseAbandoned
	out.FinishedAt = &now
	return out, nil
}

// Advance walks a queue of queueLen cards linearly. When currentIndex is the
// last position the session is complete and no next index exists.
func Advance(queueLen, currentIndex int) (next int, complete bool) {
	if currentIndex+1 >= queueLen {
		return currentIndex, true
	}
	return currentIndex + 1, false
}

func (s StudySession) complete(now time.Time) StudySession {
	s.Phase = SessionPhaseComplete
	s.FinishedAt = &now
	return s
}

func (s StudySession) clone() StudySession {
	out := s
	out.CardIDs = slices.Clone(s.CardIDs)
	if s.FinishedAt != nil {
		t := *s.FinishedAt
		out.FinishedAt = &t
	}
	return out
}

func transitionError(action string, phase SessionPhase) error {
	return fmt.Errorf("cannot %s session in phase %s: %w", action, phase, ErrConflict)
}
