package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"

	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/model"
)

// CurrentCard is the resolver for the currentCard field.
func (r *studySessionResolver) CurrentCard(ctx context.Context, obj *model.StudySession) (*model.Flashcard, error) {
	if obj.CurrentCardID == nil {
		return nil, nil
	}

	card, err := dataloader.FromContext(ctx).CardByID.Load(ctx, *obj.CurrentCardID)()
	if err != nil {
		return nil, err
	}
	return toFlashcard(card), nil
}

// Cards is the resolver for the cards field.
func (r *studySessionResolver) Cards(ctx context.Context, obj *model.StudySession) ([]*model.Flashcard, error) {
	cards, errs := dataloader.FromContext(ctx).CardByID.LoadMany(ctx, obj.CardIDs)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Cards deleted since the queue was built are left out.
	out := make([]*model.Flashcard, 0, len(cards))
	for _, c := range cards {
		if c != nil {
			out = append(out, toFlashcard(c))
		}
	}
	return out, nil
}

// StudySession returns generated.StudySessionResolver implementation.
func (r *Resolver) StudySession() generated.StudySessionResolver { return &studySessionResolver{r} }

type studySessionResolver struct{ *Resolver }
