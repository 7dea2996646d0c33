package domain

// Difficulty classifies both flashcards and tasks.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// StudyMode selects which cards enter a study queue.
type StudyMode string

const (
	StudyModeReview StudyMode = "review"
	StudyModeLearn  StudyMode = "learn"
	StudyModeTest   StudyMode = "test"
)

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeReview, StudyModeLearn, StudyModeTest:
		return true
	}
	return false
}

// Quality is the user's self-assessed recall of a card.
type Quality int

const (
	QualityWrong Quality = 0
	QualityHard  Quality = 1
	QualityGood  Quality = 2
	QualityEasy  Quality = 3
)

func (q Quality) IsValid() bool {
	return q >= QualityWrong && q <= QualityEasy
}

// IsCorrect reports whether the answer counts as a successful recall.
func (q Quality) IsCorrect() bool { return q >= QualityGood }

func (q Quality) String() string {
	switch q {
	case QualityWrong:
		return "wrong"
	case QualityHard:
		return "hard"
	case QualityGood:
		return "good"
	case QualityEasy:
		return "easy"
	}
	return "invalid"
}

// SessionPhase is the state of a study session.
type SessionPhase string

const (
	SessionPhaseNotStarted   SessionPhase = "NOT_STARTED"
	SessionPhaseShowingFront SessionPhase = "SHOWING_FRONT"
	SessionPhaseShowingBack  SessionPhase = "SHOWING_BACK"
	SessionPhaseComplete     SessionPhase = "COMPLETE"
	SessionPhaseAbandoned    SessionPhase = "ABANDONED"
)

func (p SessionPhase) String() string { return string(p) }

func (p SessionPhase) IsValid() bool {
	switch p {
	case SessionPhaseNotStarted, SessionPhaseShowingFront, SessionPhaseShowingBack,
		SessionPhaseComplete, SessionPhaseAbandoned:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (p SessionPhase) IsTerminal() bool {
	return p == SessionPhaseComplete || p == SessionPhaseAbandoned
}

// EventType identifies a transient game event shown to the user.
type EventType string

const (
	EventTaskCompleted       EventType = "task_completed"
	EventComboBonus          EventType = "combo_bonus"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventStreakAchieved      EventType = "streak_achieved"
	EventLevelUp             EventType = "level_up"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventTaskCompleted, EventComboBonus, EventAchievementUnlocked, EventStreakAchieved, EventLevelUp:
		return true
	}
	return false
}

// AchievementCategory groups achievements in the catalog.
type AchievementCategory string

const (
	AchievementCategoryProductivity AchievementCategory = "productivity"
	AchievementCategoryConsistency  AchievementCategory = "consistency"
	AchievementCategoryMastery      AchievementCategory = "mastery"
	AchievementCategorySocial       AchievementCategory = "social"
)

func (c AchievementCategory) String() string { return string(c) }

func (c AchievementCategory) IsValid() bool {
	switch c {
	case AchievementCategoryProductivity, AchievementCategoryConsistency,
		AchievementCategoryMastery, AchievementCategorySocial:
		return true
	}
	return false
}
