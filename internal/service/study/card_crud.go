package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// CreateCard creates a flashcard in its initial learning state.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card := newCardFromInput(userID, input, s.clock.Now())

	created, err := s.cards.Create(ctx, &card)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", created.ID.String()),
	)

	return created, nil
}

// ImportCards creates many flashcards at once. Either every row is valid and
// all cards are created, or nothing is.
func (s *Service) ImportCards(ctx context.Context, input ImportCardsInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	now := s.clock.Now()
	cards := make([]domain.Flashcard, len(input.Cards))
	for i, in := range input.Cards {
		cards[i] = newCardFromInput(userID, in, now)
	}

	var created int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var batchErr error
		created, batchErr = s.cards.CreateBatch(txCtx, cards)
		return batchErr
	})
	if err != nil {
		return 0, fmt.Errorf("import cards: %w", err)
	}

	s.log.InfoContext(ctx, "cards imported",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(cards)),
		slog.Int("created", created),
	)

	return created, nil
}

// ListCards returns a page of the user's cards and the total count.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Flashcard, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	cards, total, err := s.cards.List(ctx, userID, domain.FlashcardFilter{
		Subject:    input.Subject,
		Difficulty: input.Difficulty,
		Starred:    input.Starred,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list cards: %w", err)
	}

	return cards, total, nil
}

// ToggleStar flips the starred flag of a card.
func (s *Service) ToggleStar(ctx context.Context, input CardIDInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	updated, err := s.cards.SetStarred(ctx, userID, card.ID, !card.IsStarred)
	if err != nil {
		return nil, fmt.Errorf("set starred: %w", err)
	}

	return updated, nil
}

// DeleteCard removes a card.
func (s *Service) DeleteCard(ctx context.Context, input CardIDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, userID, input.CardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}

func newCardFromInput(userID uuid.UUID, in CreateCardInput, now time.Time) domain.Flashcard {
	card := domain.NewFlashcard(userID, in.Front, in.Back, now)
	card.Notes = in.Notes
	card.Subject = in.Subject
	card.Difficulty = in.Difficulty
	card.Tags = normalizeTags(in.Tags)
	return card
}

// normalizeTags normalizes and deduplicates tags keeping first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = domain.NormalizeText(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
