package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// StartSession builds a new queue and starts a session over it. Any session
// still active for the user is abandoned: rebuilding the queue discards the
// previous queue and its reveal state. An empty queue yields a session that
// is already complete.
func (s *Service) StartSession(ctx context.Context, input QueueInput) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	all, err := s.cards.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	now := s.clock.Now()
	queue := BuildStudyQueue(all, input.params(), now, s.limits, s.shuffle)

	session, err := domain.NewStudySession(userID, input.Mode, cardIDs(queue), now).Start(now)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	var created *domain.StudySession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if abandonErr := s.abandonActive(txCtx, userID); abandonErr != nil {
			return abandonErr
		}
		var createErr error
		created, createErr = s.sessions.Create(txCtx, &session)
		if createErr != nil {
			return fmt.Errorf("create session: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("mode", input.Mode.String()),
		slog.Int("queue_len", len(created.CardIDs)),
	)

	return created, nil
}

// GetSession returns a session owned by the user.
func (s *Service) GetSession(ctx context.Context, input SessionIDInput) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// GetActiveSession returns the user's unfinished session, or nil if none.
func (s *Service) GetActiveSession(ctx context.Context) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return session, nil
}

// RevealCard shows the back of the current card.
func (s *Service) RevealCard(ctx context.Context, input SessionIDInput) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.StudySession
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		revealed, err := session.Reveal()
		if err != nil {
			return err
		}

		updated, err = s.sessions.Update(txCtx, session, &revealed)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AnswerCard grades the current card of a session. The session row is locked
// for the whole transaction, so a card is graded at most once per position.
// A card deleted since the queue was built is skipped without grading.
func (s *Service) AnswerCard(ctx context.Context, input AnswerInput) (*AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &AnswerResult{}
	var cardID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		now := s.clock.Now()

		next, err := session.Grade(input.Quality.IsCorrect(), now)
		if err != nil {
			return err
		}

		var found bool
		cardID, found = session.CurrentCardID()
		if !found {
			return fmt.Errorf("session %s has no current card: %w", session.ID, domain.ErrConflict)
		}

		card, err := s.cards.GetByID(txCtx, userID, cardID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			card = nil
			if next, err = session.Skip(now); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("get card: %w", err)
		}

		result.Session, err = s.sessions.Update(txCtx, session, &next)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		if card == nil {
			return nil
		}

		answered, err := RecordAnswer(*card, input.Quality, now)
		if err != nil {
			return err
		}
		result.Card, err = s.cards.UpdateLearningState(txCtx, &answered)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Card == nil {
		s.log.WarnContext(ctx, "card missing, skipped",
			slog.String("user_id", userID.String()),
			slog.String("session_id", result.Session.ID.String()),
			slog.String("card_id", cardID.String()),
		)
		return result, nil
	}

	s.log.InfoContext(ctx, "card answered",
		slog.String("user_id", userID.String()),
		slog.String("session_id", result.Session.ID.String()),
		slog.String("card_id", cardID.String()),
		slog.String("quality", input.Quality.String()),
		slog.Int("mastery", result.Card.MasteryLevel),
		slog.Int("interval_days", result.Card.IntervalDays),
		slog.String("phase", result.Session.Phase.String()),
	)

	return result, nil
}

// AbandonSession ends the user's active session (noop if there is none).
func (s *Service) AbandonSession(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.abandonActive(ctx, userID)
}

func (s *Service) abandonActive(ctx context.Context, userID uuid.UUID) error {
	active, err := s.sessions.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get active session: %w", err)
	}

	abandoned, err := active.Abandon(s.clock.Now())
	if err != nil {
		return err
	}

	if _, err := s.sessions.Update(ctx, active, &abandoned); err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}

	s.log.InfoContext(ctx, "session abandoned",
		slog.String("user_id", userID.String()),
		slog.String("session_id", active.ID.String()),
	)
	return nil
}
