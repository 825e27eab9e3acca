// Package report aggregates journal entries, goals, habits and meals over a
// trailing window into a health report. Everything here is a pure function
// of its inputs.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

// Input is everything a report is computed from.
type Input struct {
	Entries []health.JournalEntry
	Goals   []health.Goal
	Habits  []health.Habit
	Meals   []health.Meal
}

// Point is one value of a per-day series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type SleepAnalysis struct {
	Data        []Point  `json:"data"`
	Average     float64  `json:"average"`
	Consistency int      `json:"consistency"`
	Insights    []string `json:"insights"`
}

type ExerciseAnalysis struct {
	Data          []Point  `json:"data"`
	WeeklyAverage int      `json:"weeklyAverage"`
	MostActiveDay string   `json:"mostActiveDay"`
	Consistency   int      `json:"consistency"`
	Insights      []string `json:"insights"`
}

type Overview struct {
	TotalEntries   int `json:"totalEntries"`
	CompletedGoals int `json:"completedGoals"`
	ActiveHabits   int `json:"activeHabits"`
	AvgCalories    int `json:"avgCalories"`
}

// Report is the aggregated view of one window.
type Report struct {
	Period           Period           `json:"period"`
	Start            time.Time        `json:"start"`
	End              time.Time        `json:"end"`
	Overview         Overview         `json:"overview"`
	HealthScore      int              `json:"healthScore"`
	SleepAnalysis    SleepAnalysis    `json:"sleepAnalysis"`
	ExerciseAnalysis ExerciseAnalysis `json:"exerciseAnalysis"`
}

// Generate builds the report for the period ending at now. Goals and habits
// are counted globally; entries and meals only within the window.
func Generate(in Input, period Period, now time.Time) Report {
	if _, ok := periodDays[period]; !ok {
		period = DefaultPeriod
	}
	start, end := period.Window(now)
	entries := WindowEntries(in.Entries, start, end)

	return Report{
		Period: period,
		Start:  start,
		End:    end,
		Overview: Overview{
			TotalEntries:   len(entries),
			CompletedGoals: completedGoals(in.Goals),
			ActiveHabits:   activeHabits(in.Habits),
			AvgCalories:    AverageCalories(in.Meals, start, end),
		},
		HealthScore:      HealthScore(entries, in.Habits),
		SleepAnalysis:    AnalyzeSleep(entries, now.Location()),
		ExerciseAnalysis: AnalyzeExercise(entries, now.Location()),
	}
}

// WindowEntries returns the entries dated within [start, end], oldest first.
// Entries with unparsable dates are dropped.
func WindowEntries(entries []health.JournalEntry, start, end time.Time) []health.JournalEntry {
	type dated struct {
		entry health.JournalEntry
		at    time.Time
	}
	var in []dated
	for _, e := range entries {
		t, ok := e.Time()
		if !ok || !inWindow(t, start, end) {
			continue
		}
		in = append(in, dated{e, t})
	}
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].at.Before(in[j].at)
	})

	out := make([]health.JournalEntry, len(in))
	for i, d := range in {
		out[i] = d.entry
	}
	return out
}

func series(entries []health.JournalEntry, loc *time.Location, value func(health.Metrics) float64) []Point {
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		date := e.Date
		if t, ok := e.Time(); ok {
			date = t.In(loc).Format(health.DateLayout)
		}
		points = append(points, Point{Date: date, Value: value(e.MetricsOrDefault())})
	}
	return points
}

func values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// AnalyzeSleep summarizes sleep over chronologically ordered entries.
func AnalyzeSleep(entries []health.JournalEntry, loc *time.Location) SleepAnalysis {
	if len(entries) == 0 {
		return SleepAnalysis{Data: []Point{}, Insights: []string{}}
	}

	data := series(entries, loc, func(m health.Metrics) float64 { return m.Sleep })
	avg := mean(values(data))
	consistency := Consistency(values(data))

	insights := make([]string, 0, 2)
	switch {
	case avg < 7:
		insights = append(insights, "You're getting less than recommended sleep (7-9 hours)")
	case avg > 9:
		insights = append(insights, "You might be oversleeping, consider adjusting your sleep schedule")
	default:
		insights = append(insights, "Your sleep duration is within the recommended range")
	}
	switch {
	case consistency >= 90:
		insights = append(insights, "Excellent sleep schedule consistency")
	case consistency >= 70:
		insights = append(insights, "Good sleep consistency with minor variations")
	default:
		insights = append(insights, "Consider maintaining a more consistent sleep schedule")
	}

	return SleepAnalysis{
		Data:        data,
		Average:     math.Round(avg*10) / 10,
		Consistency: consistency,
		Insights:    insights,
	}
}

// AnalyzeExercise summarizes exercise over chronologically ordered entries.
func AnalyzeExercise(entries []health.JournalEntry, loc *time.Location) ExerciseAnalysis {
	if len(entries) == 0 {
		return ExerciseAnalysis{Data: []Point{}, MostActiveDay: "N/A", Insights: []string{}}
	}

	data := series(entries, loc, func(m health.Metrics) float64 { return m.Exercise })
	weekly := int(math.Round(mean(values(data)) * 7))
	consistency := Consistency(values(data))

	mostActive := data[0]
	for _, p := range data[1:] {
		if p.Value > mostActive.Value {
			mostActive = p
		}
	}

	insights := make([]string, 0, 2)
	if weekly < 150 {
		insights = append(insights, "Aim for at least 150 minutes of exercise per week")
	} else {
		insights = append(insights, "Meeting weekly exercise recommendations")
	}
	if consistency >= 80 {
		insights = append(insights, "Maintaining a consistent exercise routine")
	} else {
		insights = append(insights, "Try to establish a more regular exercise schedule")
	}

	return ExerciseAnalysis{
		Data:          data,
		WeeklyAverage: weekly,
		MostActiveDay: mostActive.Date,
		Consistency:   consistency,
		Insights:      insights,
	}
}

// AverageCalories is the rounded mean calories of meals dated within
// [start, end], or 0 without such meals. Meal dates are read as UTC
// midnight.
func AverageCalories(meals []health.Meal, start, end time.Time) int {
	var total float64
	n := 0
	for _, m := range meals {
		t, ok := health.ParseTimestamp(m.Date)
		if !ok || !inWindow(t, start, end) {
			continue
		}
		total += m.Calories
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(total / float64(n)))
}

func completedGoals(goals []health.Goal) int {
	n := 0
	for _, g := range goals {
		if g.Completed {
			n++
		}
	}
	return n
}

func activeHabits(habits []health.Habit) int {
	n := 0
	for _, h := range habits {
		if h.Streak > 0 {
			n++
		}
	}
	return n
}
