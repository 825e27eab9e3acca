package health

import (
	"time"
)

// CheckIn records a check-in for the calendar day of now, in now's location.
// It returns false without touching the habit when the habit was already
// checked in on that day.
func (h *Habit) CheckIn(now time.Time) bool {
	today := calendarDay(now)

	var last time.Time
	checked := false
	if h.LastChecked != nil {
		if t, ok := ParseTimestamp(*h.LastChecked); ok {
			last = calendarDay(t.In(now.Location()))
			checked = true
		}
	}

	if checked && last.Equal(today) {
		return false
	}

	if checked && last.Equal(today.AddDate(0, 0, -1)) {
		h.Streak++
	} else {
		h.Streak = 1
	}

	ts := FormatTimestamp(now)
	h.LastChecked = &ts
	return true
}

// CheckedOn reports whether the habit was checked in on the calendar day of t.
func (h Habit) CheckedOn(t time.Time) bool {
	if h.LastChecked == nil {
		return false
	}
	last, ok := ParseTimestamp(*h.LastChecked)
	if !ok {
		return false
	}
	return calendarDay(last.In(t.Location())).Equal(calendarDay(t))
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
