package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Enum values on the wire are upper-case; domain values are stored the way
// the database keeps them. The conversions below are the only bridge.

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func DifficultyFromDomain(d domain.Difficulty) Difficulty {
	return Difficulty(strings.ToUpper(string(d)))
}

func (e Difficulty) Domain() domain.Difficulty {
	return domain.Difficulty(strings.ToLower(string(e)))
}

func (e Difficulty) IsValid() bool {
	switch e {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (e Difficulty) String() string { return string(e) }

func (e *Difficulty) UnmarshalGQL(v any) error {
	return unmarshalEnum(v, e, "Difficulty")
}

func (e Difficulty) MarshalGQL(w io.Writer) { marshalEnum(w, e) }

type StudyMode string

const (
	StudyModeReview StudyMode = "REVIEW"
	StudyModeLearn  StudyMode = "LEARN"
	StudyModeTest   StudyMode = "TEST"
)

func StudyModeFromDomain(m domain.StudyMode) StudyMode {
	return StudyMode(strings.ToUpper(string(m)))
}

func (e StudyMode) Domain() domain.StudyMode {
	return domain.StudyMode(strings.ToLower(string(e)))
}

func (e StudyMode) IsValid() bool {
	switch e {
	case StudyModeReview, StudyModeLearn, StudyModeTest:
		return true
	}
	return false
}

func (e StudyMode) String() string { return string(e) }

func (e *StudyMode) UnmarshalGQL(v any) error {
	return unmarshalEnum(v, e, "StudyMode")
}

func (e StudyMode) MarshalGQL(w io.Writer) { marshalEnum(w, e) }

// Quality is the self-assessed recall grade, WRONG (0) to EASY (3).
type Quality string

const (
	QualityWrong Quality = "WRONG"
	QualityHard  Quality = "HARD"
	QualityGood  Quality = "GOOD"
	QualityEasy  Quality = "EASY"
)

var qualityToDomain = map[Quality]domain.Quality{
	QualityWrong: domain.QualityWrong,
	QualityHard:  domain.QualityHard,
	QualityGood:  domain.QualityGood,
	QualityEasy:  domain.QualityEasy,
}

// Domain returns the numeric grade. An invalid value maps to -1 so that the
// service rejects it.
func (e Quality) Domain() domain.Quality {
	if q, ok := qualityToDomain[e]; ok {
		return q
	}
	return -1
}

func (e Quality) IsValid() bool {
	_, ok := qualityToDomain[e]
	return ok
}

func (e Quality) String() string { return string(e) }

func (e *Quality) UnmarshalGQL(v any) error {
	return unmarshalEnum(v, e, "Quality")
}

func (e Quality) MarshalGQL(w io.Writer) { marshalEnum(w, e) }

type SessionPhase string

const (
	SessionPhaseNotStarted   SessionPhase = "NOT_STARTED"
	SessionPhaseShowingFront SessionPhase = "SHOWING_FRONT"
	SessionPhaseShowingBack  SessionPhase = "SHOWING_BACK"
	SessionPhaseComplete     SessionPhase = "COMPLETE"
	SessionPhaseAbandoned    SessionPhase = "ABANDONED"
)

func SessionPhaseFromDomain(p domain.SessionPhase) SessionPhase {
	return SessionPhase(p)
}

func (e SessionPhase) IsValid() bool {
	return domain.SessionPhase(e).IsValid()
}

func (e SessionPhase) String() string { return string(e) }

func (e *SessionPhase) UnmarshalGQL(v any) error {
	return unmarshalEnum(v, e, "SessionPhase")
}

func (e SessionPhase) MarshalGQL(w io.Writer) { marshalEnum(w, e) }

type EventType string

const (
	EventTypeTaskCompleted       EventType = "TASK_COMPLETED"
	EventTypeComboBonus          EventType = "COMBO_BONUS"
	EventTypeAchievementUnlocked EventType = "ACHIEVEMENT_UNLOCKED"
	EventTypeStreakAchieved      EventType = "STREAK_ACHIEVED"
	EventTypeLevelUp             EventType = "LEVEL_UP"
)

func EventTypeFromDomain(t domain.EventType) EventType {
	return EventType(strings.ToUpper(string(t)))
}

func (e EventType) IsValid() bool {
	return domain.EventType(strings.ToLower(string(e))).IsValid()
}

func (e EventType) String() string { return string(e) }

func (e *EventType) UnmarshalGQL(v any) error {
	return unmarshalEnum(v, e, "EventType")
}

func (e EventType) MarshalGQL(w io.Writer) { marshalEnum(w, e) }

type enum interface {
	~string
	IsValid() bool
}

func unmarshalEnum[E enum](v any, dst *E, name string) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}
	*dst = E(str)
	if !(*dst).IsValid() {
		return fmt.Errorf("%s is not a valid %s", str, name)
	}
	return nil
}

func marshalEnum[E enum](w io.Writer, e E) {
	fmt.Fprint(w, strconv.Quote(string(e)))
}
