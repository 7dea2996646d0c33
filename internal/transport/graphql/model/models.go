// Package model holds the Go types bound to the GraphQL schema. gqlgen
// autobinds schema types to these structs by name.
package model

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	ID             uuid.UUID
	Front          string
	Back           string
	Notes          string
	Subject        string
	Difficulty     Difficulty
	Tags           []string
	ReviewCount    int
	CorrectCount   int
	IncorrectCount int
	MasteryLevel   int
	LastReviewed   *time.Time
	NextReviewDate time.Time
	IsStarred      bool
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type FlashcardList struct {
	Items []*Flashcard
	Total int
}

// StudySession leaves currentCard and cards to field resolvers so the cards
// are loaded only when selected.
type StudySession struct {
	ID            uuid.UUID
	Mode          StudyMode
	Phase         SessionPhase
	CardIDs       []uuid.UUID
	Position      int
	Remaining     int
	CurrentCardID *uuid.UUID
	Reviewed      int
	Correct       int
	StartedAt     time.Time
	FinishedAt    *time.Time
}

type AnswerResult struct {
	Card    *Flashcard
	Session *StudySession
	Skipped bool
}

type Task struct {
	ID          uuid.UUID
	WorkspaceID *uuid.UUID
	Title       string
	Difficulty  Difficulty
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskList struct {
	Items []*Task
	Total int
}

type TaskCompletion struct {
	Task         *Task
	Points       int
	Profile      *GameProfile
	Events       []*GameEvent
	RecentEvents []*GameEvent
	Achievements []*Achievement
}

type ComboTracker struct {
	Count            int
	Multiplier       float64
	IsActive         bool
	LastCompletionAt *time.Time
}

type GameProfile struct {
	TotalPoints int
	Level       int
	Combo       *ComboTracker
	UpdatedAt   time.Time
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Progress    int
	Target      int
	Completed   bool
	CompletedAt *time.Time
}

type GameEvent struct {
	ID          uuid.UUID
	Type        EventType
	Title       string
	Description string
	Points      int
	Timestamp   time.Time
	Special     bool
}

// ---------------------------------------------------------------------------
// Inputs
// ---------------------------------------------------------------------------

type CardFilter struct {
	Subject    *string
	Difficulty *Difficulty
	Starred    *bool
}

type CreateCardInput struct {
	Front      string
	Back       string
	Notes      *string
	Subject    *string
	Difficulty *Difficulty
	Tags       []string
}

type QueueInput struct {
	Mode         StudyMode
	Subjects     []string
	Difficulties []Difficulty
}

type CreateTaskInput struct {
	Title       string
	Difficulty  *Difficulty
	WorkspaceID *uuid.UUID
}
