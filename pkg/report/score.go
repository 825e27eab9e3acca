package report

import (
	"math"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

const (
	sleepWeight    = 0.3
	exerciseWeight = 0.3
	moodWeight     = 0.2
	habitWeight    = 0.2

	noHabitScore = 50
)

var moodScores = map[health.Mood]float64{
	health.MoodGood:    100,
	health.MoodNeutral: 50,
	health.MoodBad:     0,
}

// HealthScore combines sleep, exercise, mood and habit streaks into a single
// score in [0, 100]. It is 0 when there are no entries.
func HealthScore(entries []health.JournalEntry, habits []health.Habit) int {
	if len(entries) == 0 {
		return 0
	}

	var sleep, exercise, mood float64
	for _, e := range entries {
		m := e.MetricsOrDefault()
		sleep += m.Sleep
		exercise += m.Exercise
		if s, ok := moodScores[m.Mood]; ok {
			mood += s
		} else {
			mood += moodScores[health.MoodNeutral]
		}
	}
	n := float64(len(entries))

	score := sleepScore(sleep/n)*sleepWeight +
		exerciseScore(exercise/n)*exerciseWeight +
		(mood/n)*moodWeight +
		habitScore(habits)*habitWeight

	return int(math.Round(clamp(score, 0, 100)))
}

// sleepScore is 0 when no sleep was recorded at all, so a window of
// entries without any metrics scores 20 overall rather than 26.
func sleepScore(mean float64) float64 {
	switch {
	case mean <= 0:
		return 0
	case mean >= 7 && mean <= 9:
		return 100
	default:
		return math.Max(0, 100-10*math.Abs(mean-8))
	}
}

func exerciseScore(mean float64) float64 {
	return math.Min(100, mean/30*100)
}

func habitScore(habits []health.Habit) float64 {
	if len(habits) == 0 {
		return noHabitScore
	}
	var streaks float64
	for _, h := range habits {
		streaks += float64(h.Streak)
	}
	return streaks / float64(len(habits)) * 10
}

// Consistency scores how little a series moves from one point to the next:
// 100 minus ten times the mean absolute step, clamped to [0, 100]. Series
// with fewer than two points score 0.
func Consistency(values []float64) int {
	if len(values) < 2 {
		return 0
	}
	var diffs float64
	for i := 1; i < len(values); i++ {
		diffs += math.Abs(values[i] - values[i-1])
	}
	mean := diffs / float64(len(values)-1)
	return int(math.Round(clamp(100-10*mean, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
