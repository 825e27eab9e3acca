package extract

import (
	"fmt"
	"strconv"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

const (
	recommendedSleepHours      = 7
	recommendedExerciseMinutes = 30
)

// Insights returns three observations about m, used when no model-written
// insights are available.
func Insights(m health.Metrics) []string {
	sleep := "which is below"
	if m.Sleep >= recommendedSleepHours {
		sleep = "which meets"
	}
	exercise := "falling short of recommended activity"
	if m.Exercise >= recommendedExerciseMinutes {
		exercise = "meeting daily activity goals"
	}
	concerns := ""
	if len(m.Symptoms) > 0 {
		concerns = ", with some health concerns noted"
	}

	return []string{
		fmt.Sprintf("You slept for %s hours, %s recommended sleep duration", formatNumber(m.Sleep), sleep),
		fmt.Sprintf("Your exercise duration was %s minutes %s", formatNumber(m.Exercise), exercise),
		fmt.Sprintf("Your energy levels were %s, and mood was %s%s", m.Energy, m.Mood, concerns),
	}
}

// Suggestions returns two recommendations derived from m.
func Suggestions(m health.Metrics) []string {
	out := make([]string, 0, 2)
	if m.Sleep < recommendedSleepHours {
		out = append(out, "Try to increase sleep duration to at least 7 hours")
	} else {
		out = append(out, "Maintain your consistent sleep schedule")
	}
	if m.Exercise < recommendedExerciseMinutes {
		out = append(out, "Aim to increase daily exercise to at least 30 minutes")
	} else {
		out = append(out, "Keep up with your current exercise routine")
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
