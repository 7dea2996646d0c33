package game

import (
	"slices"
	"time"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// DayStart returns the start of the day containing now in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses a timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CurrentStreak counts consecutive days, ending today or yesterday in loc,
// on which at least one task was completed.
func CurrentStreak(tasks []domain.Task, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}

	today := DayStart(now, loc)

	var days []time.Time
	for _, t := range tasks {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		d := DayStart(*t.CompletedAt, loc)
		if d.After(today) {
			continue
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}

	// Newest first, one entry per day.
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	days = slices.Compact(days)

	expected := today
	if !days[0].Equal(expected) {
		expected = previousDay(expected, loc)
	}

	streak := 0
	for _, d := range days {
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = previousDay(expected, loc)
	}
	return streak
}

// previousDay steps back one calendar day; AddDate keeps DST days correct.
func previousDay(dayStart time.Time, loc *time.Location) time.Time {
	prev := dayStart.In(loc).AddDate(0, 0, -1)
	return time.Date(prev.Year(), prev.Month(), prev.Day(), 0, 0, 0, 0, loc).UTC()
}
