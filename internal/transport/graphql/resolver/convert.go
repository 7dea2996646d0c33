package resolver

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
	"github.com/heartmarshall/studyquest-backend/internal/transport/graphql/model"
)

func toFlashcard(c *domain.Flashcard) *model.Flashcard {
	if c == nil {
		return nil
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Flashcard{
		ID:             c.ID,
		Front:          c.Front,
		Back:           c.Back,
		Notes:          c.Notes,
		Subject:        c.Subject,
		Difficulty:     model.DifficultyFromDomain(c.Difficulty),
		Tags:           tags,
		ReviewCount:    c.ReviewCount,
		CorrectCount:   c.CorrectCount,
		IncorrectCount: c.IncorrectCount,
		MasteryLevel:   c.MasteryLevel,
		LastReviewed:   c.LastReviewed,
		NextReviewDate: c.NextReviewDate,
		IsStarred:      c.IsStarred,
		EaseFactor:     c.EaseFactor,
		IntervalDays:   c.IntervalDays,
		Repetitions:    c.Repetitions,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toFlashcards(cards []domain.Flashcard) []*model.Flashcard {
	out := make([]*model.Flashcard, len(cards))
	for i := range cards {
		out[i] = toFlashcard(&cards[i])
	}
	return out
}

func toStudySession(s *domain.StudySession) *model.StudySession {
	out := &model.StudySession{
		ID:         s.ID,
		Mode:       model.StudyModeFromDomain(s.Mode),
		Phase:      model.SessionPhaseFromDomain(s.Phase),
		CardIDs:    s.CardIDs,
		Position:   s.Position,
		Remaining:  s.Remaining(),
		Reviewed:   s.Reviewed,
		Correct:    s.Correct,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
	if out.CardIDs == nil {
		out.CardIDs = []uuid.UUID{}
	}
	if id, ok := s.CurrentCardID(); ok {
		out.CurrentCardID = &id
	}
	return out
}

func toTask(t *domain.Task) *model.Task {
	return &model.Task{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		Title:       t.Title,
		Difficulty:  model.DifficultyFromDomain(t.Difficulty),
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toGameProfile(p *domain.GameProfile) *model.GameProfile {
	return &model.GameProfile{
		TotalPoints: p.TotalPoints,
		Level:       p.Level,
		Combo: &model.ComboTracker{
			Count:            p.Combo.Count,
			Multiplier:       p.Combo.Multiplier,
			IsActive:         p.Combo.IsActive,
			LastCompletionAt: p.Combo.LastCompletionAt,
		},
		UpdatedAt: p.UpdatedAt,
	}
}

func toAchievements(items []domain.AchievementProgress) []*model.Achievement {
	out := make([]*model.Achievement, len(items))
	for i, a := range items {
		out[i] = &model.Achievement{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    string(a.Category),
			Progress:    a.Progress,
			Target:      a.Target,
			Completed:   a.Completed,
			CompletedAt: a.CompletedAt,
		}
	}
	return out
}

func toGameEvents(events []domain.GameEvent) []*model.GameEvent {
	out := make([]*model.GameEvent, len(events))
	for i, e := range events {
		out[i] = &model.GameEvent{
			ID:          e.ID,
			Type:        model.EventTypeFromDomain(e.Type),
			Title:       e.Title,
			Description: e.Description,
			Points:      e.Points,
			Timestamp:   e.Timestamp,
			Special:     e.Special,
		}
	}
	return out
}

func toQueueInput(in model.QueueInput) study.QueueInput {
	out := study.QueueInput{Mode: in.Mode.Domain(), Subjects: in.Subjects}
	for _, d := range in.Difficulties {
		out.Difficulties = append(out.Difficulties, d.Domain())
	}
	return out
}

// optionalDifficulty maps an omitted difficulty to the empty value, which
// the services default to medium.
func optionalDifficulty(d *model.Difficulty) domain.Difficulty {
	if d == nil {
		return ""
	}
	return d.Domain()
}
