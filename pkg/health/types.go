package health

import (
	"time"
)

// Mood is the overall mood recorded for an entry.
type Mood string

const (
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
)

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodGood, MoodNeutral, MoodBad:
		return true
	}
	return false
}

// Energy is the energy level recorded for an entry.
type Energy string

const (
	EnergyHigh   Energy = "high"
	EnergyMedium Energy = "medium"
	EnergyLow    Energy = "low"
)

// Valid reports whether e is one of the known energy levels.
func (e Energy) Valid() bool {
	switch e {
	case EnergyHigh, EnergyMedium, EnergyLow:
		return true
	}
	return false
}

// Metrics holds the health signals derived from a single journal entry.
type Metrics struct {
	Sleep    float64  `json:"sleep"`    // hours
	Exercise float64  `json:"exercise"` // minutes
	Mood     Mood     `json:"mood"`
	Energy   Energy   `json:"energy"`
	Symptoms []string `json:"symptoms"`
}

// DefaultMetrics returns the zero-information metrics used whenever a
// field is missing.
func DefaultMetrics() Metrics {
	return Metrics{
		Mood:     MoodNeutral,
		Energy:   EnergyMedium,
		Symptoms: []string{},
	}
}

// Normalize fills in defaults for missing fields.
func (m Metrics) Normalize() Metrics {
	if m.Sleep < 0 {
		m.Sleep = 0
	}
	if m.Exercise < 0 {
		m.Exercise = 0
	}
	if !m.Mood.Valid() {
		m.Mood = MoodNeutral
	}
	if !m.Energy.Valid() {
		m.Energy = EnergyMedium
	}
	if m.Symptoms == nil {
		m.Symptoms = []string{}
	}
	return m
}

// JournalEntry is one free-text journal submission.
type JournalEntry struct {
	ID      int64    `json:"id"`
	Date    string   `json:"date"`
	Content string   `json:"content"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

// Time parses the entry date. The boolean is false for unparsable dates.
func (e JournalEntry) Time() (time.Time, bool) {
	return ParseTimestamp(e.Date)
}

// MetricsOrDefault returns the entry metrics, or the defaults when the entry
// has none.
func (e JournalEntry) MetricsOrDefault() Metrics {
	if e.Metrics == nil {
		return DefaultMetrics()
	}
	return *e.Metrics
}

// Goal is a health goal that can be toggled complete.
type Goal struct {
	ID         int64   `json:"id"`
	Content    string  `json:"content"`
	Category   string  `json:"category"`
	Completed  bool    `json:"completed"`
	CreatedAt  string  `json:"createdAt"`
	TargetDate *string `json:"targetDate"`
}

// Toggle flips the completion flag.
func (g *Goal) Toggle() {
	g.Completed = !g.Completed
}

// Habit is a daily habit with a check-in streak.
type Habit struct {
	ID          int64   `json:"id"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	Streak      int     `json:"streak"`
	LastChecked *string `json:"lastChecked"`
	CreatedAt   string  `json:"createdAt"`
}

// MealType is the slot a meal was eaten in.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the meal slots in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Valid reports whether t is one of the known meal slots.
func (t MealType) Valid() bool {
	for _, mt := range MealTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// Meal is a logged meal.
type Meal struct {
	ID          int64    `json:"id"`
	Type        MealType `json:"type"`
	Description string   `json:"description"`
	Calories    float64  `json:"calories"`
	Date        string   `json:"date"` // YYYY-MM-DD
	CreatedAt   string   `json:"createdAt"`
}

// Categories is the advisory vocabulary for goal and habit categories.
var Categories = []string{"health", "fitness", "nutrition", "sleep", "mindfulness"}

const (
	// DateLayout is the calendar date layout used by meals.
	DateLayout = "2006-01-02"
)

// NewID returns an identifier derived from the creation time, in unix
// milliseconds.
func NewID(now time.Time) int64 {
	return now.UnixMilli()
}

// FormatTimestamp renders t the way timestamps are persisted.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp accepts RFC3339 timestamps (with or without fractional
// seconds) and bare calendar dates, which are read as UTC midnight.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
