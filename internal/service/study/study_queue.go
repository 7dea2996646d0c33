package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// GetStudyQueue builds a fresh, shuffled queue from all of the user's cards.
// It has no side effects; an empty queue is a normal result.
func (s *Service) GetStudyQueue(ctx context.Context, input QueueInput) ([]domain.Flashcard, error) {
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

	queue := BuildStudyQueue(all, input.params(), s.clock.Now(), s.limits, s.shuffle)

	s.log.InfoContext(ctx, "study queue generated",
		slog.String("user_id", userID.String()),
		slog.String("mode", input.Mode.String()),
		slog.Int("cards_total", len(all)),
		slog.Int("queue_len", len(queue)),
	)

	return queue, nil
}
