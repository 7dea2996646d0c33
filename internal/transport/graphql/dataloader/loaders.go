package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

// newCardBatchFn loads cards of the user in ctx. A deleted or foreign card
// resolves to nil rather than an error.
func newCardBatchFn(repo flashcardRepo) dataloader.BatchFunc[uuid.UUID, *domain.Flashcard] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Flashcard] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Flashcard](len(keys), domain.ErrUnauthorized)
		}

		cards, err := repo.GetByIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.Flashcard](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Flashcard, len(cards))
		for i := range cards {
			c := cards[i]
			byID[c.ID] = &c
		}

		results := make([]*dataloader.Result[*domain.Flashcard], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Flashcard]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
