package game

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// OnTaskCompleted scores a completion with the default rules.
func OnTaskCompleted(task domain.Task, tracker domain.ComboTracker, now time.Time) (domain.ComboTracker, int, []domain.GameEvent) {
	return DefaultRules().OnTaskCompleted(task, tracker, now)
}

// OnTaskCompleted extends or restarts the combo and awards points for task.
// It emits a task_completed event and, while a combo is running, a
// combo_bonus event carrying the bonus alone. tracker is not modified.
func (r Rules) OnTaskCompleted(task domain.Task, tracker domain.ComboTracker, now time.Time) (domain.ComboTracker, int, []domain.GameEvent) {
	next := domain.ComboTracker{Count: 1, Multiplier: 1, IsActive: true}
	if r.inWindow(tracker, now) {
		next.Count = tracker.Count + 1
		next.Multiplier = r.multiplier(next.Count)
	}
	at := now
	next.LastCompletionAt = &at

	base := r.basePoints(task.Difficulty)
	// 1.2-1 is slightly below 0.2 in binary; the epsilon keeps 20*0.2 at 4.
	bonus := int(math.Floor(float64(base)*(next.Multiplier-1) + 1e-9))
	points := base + bonus

	events := []domain.GameEvent{{
		ID:          uuid.New(),
		UserID:      task.UserID,
		Type:        domain.EventTaskCompleted,
		Title:       "Task completed",
		Description: task.Title,
		Points:      points,
		Timestamp:   now,
	}}
	if next.Count > 1 {
		events = append(events, domain.GameEvent{
			ID:          uuid.New(),
			UserID:      task.UserID,
			Type:        domain.EventComboBonus,
			Title:       fmt.Sprintf("%dx combo", next.Count),
			Description: fmt.Sprintf("Multiplier x%.1f", next.Multiplier),
			Points:      bonus,
			Timestamp:   now,
			Special:     next.Multiplier >= r.multiplier(len(r.Multipliers)),
		})
	}

	return next, points, events
}

// ExpireCombo deactivates tracker once more than the window has passed since
// its last completion, the same boundary OnTaskCompleted uses. Otherwise
// tracker is returned unchanged.
func (r Rules) ExpireCombo(tracker domain.ComboTracker, now time.Time) domain.ComboTracker {
	if !tracker.IsActive || r.inWindow(tracker, now) {
		return tracker
	}
	out := domain.InactiveCombo()
	if tracker.LastCompletionAt != nil {
		t := *tracker.LastCompletionAt
		out.LastCompletionAt = &t
	}
	return out
}

// ExpireCombo applies the default window.
func ExpireCombo(tracker domain.ComboTracker, now time.Time) domain.ComboTracker {
	return DefaultRules().ExpireCombo(tracker, now)
}

// inWindow reports whether a completion at now continues the combo. The
// window is closed: a completion exactly at last+window still extends it.
// A negative elapsed time (clock skew) counts as expired.
func (r Rules) inWindow(tracker domain.ComboTracker, now time.Time) bool {
	if !tracker.IsActive || tracker.LastCompletionAt == nil {
		return false
	}
	elapsed := now.Sub(*tracker.LastCompletionAt)
	return elapsed >= 0 && elapsed <= r.ComboWindow
}

// ExpiresAt returns the first instant at which an active tracker has lapsed,
// one nanosecond past the closed window.
func (r Rules) ExpiresAt(tracker domain.ComboTracker) (time.Time, bool) {
	if !tracker.IsActive || tracker.LastCompletionAt == nil {
		return time.Time{}, false
	}
	return tracker.LastCompletionAt.Add(r.ComboWindow + time.Nanosecond), true
}

// PushRecent prepends events to recent, newest first, keeping at most limit
// entries. The last of events is treated as the newest.
func PushRecent(recent []domain.GameEvent, limit int, events ...domain.GameEvent) []domain.GameEvent {
	if limit <= 0 {
		return []domain.GameEvent{}
	}
	out := make([]domain.GameEvent, 0, min(limit, len(recent)+len(events)))
	for i := len(events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, events[i])
	}
	for _, e := range recent {
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out
}
