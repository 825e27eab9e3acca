// Package extract derives health metrics from free-text journal entries with
// a fixed rule table. It is the offline counterpart of the remote analyzer.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

var (
	sleepPattern         = regexp.MustCompile(`(?i)slept\s+(\d+)\s*hours?`)
	sleepFallbackPattern = regexp.MustCompile(`(?i)(\d+)\s*hours?`)

	exercisePattern         = regexp.MustCompile(`(?i)(\d+)[\s-]*min(?:ute)?s?\s*(?:workout|exercise|run)`)
	exerciseFallbackPattern = regexp.MustCompile(`(?i)(\d+)-minute`)
)

// Symptoms is the symptom vocabulary, in reporting order.
var Symptoms = []string{
	"headache",
	"fever",
	"cough",
	"fatigue",
	"pain",
	"nausea",
	"dizziness",
	"anxiety",
	"stress",
}

// Extract maps an entry text to metrics. It never fails: anything it cannot
// find keeps its default.
func Extract(text string) health.Metrics {
	lower := strings.ToLower(text)

	m := health.DefaultMetrics()
	m.Sleep = firstNumber(text, sleepPattern, sleepFallbackPattern)
	m.Exercise = firstNumber(text, exercisePattern, exerciseFallbackPattern)
	m.Symptoms = symptoms(lower)
	m.Mood = mood(lower)
	m.Energy = energy(lower)
	return m
}

func firstNumber(text string, patterns ...*regexp.Regexp) float64 {
	for _, p := range patterns {
		match := p.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		n, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return n
	}
	return 0
}

func symptoms(lower string) []string {
	found := []string{}
	for _, s := range Symptoms {
		if strings.Contains(lower, s) {
			found = append(found, s)
		}
	}
	return found
}

// "bad" outranks "good" when both appear.
func mood(lower string) health.Mood {
	switch {
	case strings.Contains(lower, "bad"):
		return health.MoodBad
	case strings.Contains(lower, "good"):
		return health.MoodGood
	default:
		return health.MoodNeutral
	}
}

// Energy keywords only count when the entry talks about energy. Each
// keyword present overwrites the previous one: low, then high, then medium.
func energy(lower string) health.Energy {
	e := health.EnergyMedium
	if !strings.Contains(lower, "energy") {
		return e
	}
	if strings.Contains(lower, "low") {
		e = health.EnergyLow
	}
	if strings.Contains(lower, "high") {
		e = health.EnergyHigh
	}
	if strings.Contains(lower, "medium") {
		e = health.EnergyMedium
	}
	return e
}
