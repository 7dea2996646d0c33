package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/service/study"
	"github.com/heartmarshall/studyquest-backend/internal/service/task"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/model"
)

// CreateCard is the resolver for the createCard field.
func (r *mutationResolver) CreateCard(ctx context.Context, input model.CreateCardInput) (*model.Flashcard, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	card, err := r.study.CreateCard(ctx, study.CreateCardInput{
		Front:      input.Front,
		Back:       input.Back,
		Notes:      derefString(input.Notes),
		Subject:    derefString(input.Subject),
		Difficulty: optionalDifficulty(input.Difficulty),
		Tags:       input.Tags,
	})
	if err != nil {
		return nil, err
	}
	return toFlashcard(card), nil
}

// ToggleStar is the resolver for the toggleStar field.
func (r *mutationResolver) ToggleStar(ctx context.Context, id uuid.UUID) (*model.Flashcard, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	card, err := r.study.ToggleStar(ctx, study.CardIDInput{CardID: id})
	if err != nil {
		return nil, err
	}
	return toFlashcard(card), nil
}

// DeleteCard is the resolver for the deleteCard field.
func (r *mutationResolver) DeleteCard(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := requireUser(ctx); err != nil {
		return false, err
	}

	if err := r.study.DeleteCard(ctx, study.CardIDInput{CardID: id}); err != nil {
		return false, err
	}
	return true, nil
}

// StartSession is the resolver for the startSession field.
func (r *mutationResolver) StartSession(ctx context.Context, input model.QueueInput) (*model.StudySession, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	session, err := r.study.StartSession(ctx, toQueueInput(input))
	if err != nil {
		return nil, err
	}
	return toStudySession(session), nil
}

// RevealCard is the resolver for the revealCard field.
func (r *mutationResolver) RevealCard(ctx context.Context, sessionID uuid.UUID) (*model.StudySession, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	session, err := r.study.RevealCard(ctx, study.SessionIDInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return toStudySession(session), nil
}

// AnswerCard is the resolver for the answerCard field.
func (r *mutationResolver) AnswerCard(ctx context.Context, sessionID uuid.UUID, quality model.Quality) (*model.AnswerResult, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	res, err := r.study.AnswerCard(ctx, study.AnswerInput{
		SessionID: sessionID,
		Quality:   quality.Domain(),
	})
	if err != nil {
		return nil, err
	}

	return &model.AnswerResult{
		Card:    toFlashcard(res.Card),
		Session: toStudySession(res.Session),
		Skipped: res.Card == nil,
	}, nil
}

// AbandonSession is the resolver for the abandonSession field.
func (r *mutationResolver) AbandonSession(ctx context.Context) (bool, error) {
	if err := requireUser(ctx); err != nil {
		return false, err
	}

	if err := r.study.AbandonSession(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CreateTask is the resolver for the createTask field.
func (r *mutationResolver) CreateTask(ctx context.Context, input model.CreateTaskInput) (*model.Task, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	created, err := r.tasks.CreateTask(ctx, task.CreateTaskInput{
		Title:       input.Title,
		Difficulty:  optionalDifficulty(input.Difficulty),
		WorkspaceID: input.WorkspaceID,
	})
	if err != nil {
		return nil, err
	}
	return toTask(created), nil
}

// CompleteTask is the resolver for the completeTask field.
func (r *mutationResolver) CompleteTask(ctx context.Context, id uuid.UUID) (*model.TaskCompletion, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	completion, err := r.tasks.CompleteTask(ctx, task.TaskIDInput{TaskID: id})
	if err != nil {
		return nil, err
	}
	if completion.Game == nil {
		return nil, errors.New("task completion has no scoring result")
	}

	g := completion.Game
	return &model.TaskCompletion{
		Task:         toTask(completion.Task),
		Points:       g.Points,
		Profile:      toGameProfile(&g.Profile),
		Events:       toGameEvents(g.Events),
		RecentEvents: toGameEvents(g.Recent),
		Achievements: toAchievements(g.Achievements),
	}, nil
}

// DeleteTask is the resolver for the deleteTask field.
func (r *mutationResolver) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := requireUser(ctx); err != nil {
		return false, err
	}

	if err := r.tasks.DeleteTask(ctx, task.TaskIDInput{TaskID: id}); err != nil {
		return false, err
	}
	return true, nil
}

// Cards is the resolver for the cards field.
func (r *queryResolver) Cards(ctx context.Context, filter *model.CardFilter, limit *int, offset *int) (*model.FlashcardList, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	input := study.ListCardsInput{Limit: derefInt(limit), Offset: derefInt(offset)}
	if filter != nil {
		input.Subject = filter.Subject
		input.Starred = filter.Starred
		if filter.Difficulty != nil {
			d := filter.Difficulty.Domain()
			input.Difficulty = &d
		}
	}

	cards, total, err := r.study.ListCards(ctx, input)
	if err != nil {
		return nil, err
	}
	return &model.FlashcardList{Items: toFlashcards(cards), Total: total}, nil
}

// StudyQueue is the resolver for the studyQueue field.
func (r *queryResolver) StudyQueue(ctx context.Context, input model.QueueInput) ([]*model.Flashcard, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	cards, err := r.study.GetStudyQueue(ctx, toQueueInput(input))
	if err != nil {
		return nil, err
	}
	return toFlashcards(cards), nil
}

// Session is the resolver for the session field.
func (r *queryResolver) Session(ctx context.Context, id uuid.UUID) (*model.StudySession, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	session, err := r.study.GetSession(ctx, study.SessionIDInput{SessionID: id})
	if err != nil {
		return nil, err
	}
	return toStudySession(session), nil
}

// ActiveSession is the resolver for the activeSession field.
func (r *queryResolver) ActiveSession(ctx context.Context) (*model.StudySession, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	session, err := r.study.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return toStudySession(session), nil
}

// Tasks is the resolver for the tasks field.
func (r *queryResolver) Tasks(ctx context.Context, completed *bool, limit *int, offset *int) (*model.TaskList, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	tasks, total, err := r.tasks.ListTasks(ctx, task.ListTasksInput{
		Completed: completed,
		Limit:     derefInt(limit),
		Offset:    derefInt(offset),
	})
	if err != nil {
		return nil, err
	}

	items := make([]*model.Task, len(tasks))
	for i := range tasks {
		items[i] = toTask(&tasks[i])
	}
	return &model.TaskList{Items: items, Total: total}, nil
}

// GameProfile is the resolver for the gameProfile field.
func (r *queryResolver) GameProfile(ctx context.Context) (*model.GameProfile, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	profile, err := r.game.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return toGameProfile(profile), nil
}

// Achievements is the resolver for the achievements field.
func (r *queryResolver) Achievements(ctx context.Context) ([]*model.Achievement, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	items, err := r.game.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	return toAchievements(items), nil
}

// RecentEvents is the resolver for the recentEvents field.
func (r *queryResolver) RecentEvents(ctx context.Context) ([]*model.GameEvent, error) {
	if err := requireUser(ctx); err != nil {
		return nil, err
	}

	events, err := r.game.ListRecentEvents(ctx)
	if err != nil {
		return nil, err
	}
	return toGameEvents(events), nil
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
