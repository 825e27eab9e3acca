package analyzer

import (
	"math"
	"sort"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

const (
	PatternNotEnoughData = "Not enough data"
	PatternImproving     = "Improving"
	PatternDeclining     = "Declining"
	PatternStable        = "Stable"
)

// SleepPoint is one night of a batch sleep series.
type SleepPoint struct {
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
}

// MoodPoint is one day of a batch mood series.
type MoodPoint struct {
	Date   string        `json:"date"`
	Mood   health.Mood   `json:"mood"`
	Energy health.Energy `json:"energy"`
}

// SymptomCount is how many analyzed entries mentioned a symptom.
type SymptomCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SleepSummary struct {
	Data         []SleepPoint `json:"data"`
	AverageHours float64      `json:"averageHours"`
	BestSleep    float64      `json:"bestSleep"`
	Pattern      string       `json:"pattern"`
}

type MoodSummary struct {
	Data         []MoodPoint           `json:"data"`
	Counts       map[health.Mood]int   `json:"counts"`
	Predominant  health.Mood           `json:"predominant"`
	EnergyLevels map[health.Energy]int `json:"energyLevels"`
}

type SymptomSummary struct {
	Data []SymptomCount `json:"data"`
}

// Summary aggregates the successful results of a batch.
type Summary struct {
	Analyzed int            `json:"analyzed"`
	Failed   int            `json:"failed"`
	Sleep    SleepSummary   `json:"sleep"`
	Mood     MoodSummary    `json:"mood"`
	Symptoms SymptomSummary `json:"symptoms"`
}

var energyQuality = map[health.Energy]int{
	health.EnergyHigh:   100,
	health.EnergyMedium: 75,
	health.EnergyLow:    50,
}

// Summarize builds trend data from batch results. Results are expected
// newest first, as entries are stored; series come out oldest first.
// Failed results are counted and otherwise ignored.
func Summarize(results []Result) (Summary, error) {
	ok := Succeeded(results)
	if len(ok) == 0 {
		return Summary{}, ErrNoResults
	}

	s := Summary{
		Analyzed: len(ok),
		Failed:   len(results) - len(ok),
		Mood: MoodSummary{
			Counts:       map[health.Mood]int{},
			EnergyLevels: map[health.Energy]int{},
		},
	}

	symptoms := map[string]int{}
	var total float64
	for i := len(ok) - 1; i >= 0; i-- {
		r := ok[i]
		m := r.Analysis.Metrics.Normalize()
		date := displayDate(r.Entry)

		s.Sleep.Data = append(s.Sleep.Data, SleepPoint{Date: date, Hours: m.Sleep, Quality: energyQuality[m.Energy]})
		s.Mood.Data = append(s.Mood.Data, MoodPoint{Date: date, Mood: m.Mood, Energy: m.Energy})
		s.Mood.Counts[m.Mood]++
		s.Mood.EnergyLevels[m.Energy]++
		for _, name := range m.Symptoms {
			symptoms[name]++
		}

		total += m.Sleep
		if m.Sleep > s.Sleep.BestSleep {
			s.Sleep.BestSleep = m.Sleep
		}
	}

	s.Sleep.AverageHours = math.Round(total/float64(len(ok))*10) / 10
	s.Sleep.Pattern = pattern(s.Sleep.Data)
	s.Mood.Predominant = predominant(s.Mood.Counts)

	s.Symptoms.Data = make([]SymptomCount, 0, len(symptoms))
	for name, count := range symptoms {
		s.Symptoms.Data = append(s.Symptoms.Data, SymptomCount{Name: name, Count: count})
	}
	sort.Slice(s.Symptoms.Data, func(i, j int) bool {
		a, b := s.Symptoms.Data[i], s.Symptoms.Data[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	return s, nil
}

func displayDate(e health.JournalEntry) string {
	t, ok := e.Time()
	if !ok {
		return e.Date
	}
	return t.Format("Jan 2")
}

func pattern(data []SleepPoint) string {
	if len(data) < 2 {
		return PatternNotEnoughData
	}
	trend := data[len(data)-1].Hours - data[0].Hours
	switch {
	case trend > 0:
		return PatternImproving
	case trend < 0:
		return PatternDeclining
	default:
		return PatternStable
	}
}

// predominant picks the most frequent mood; ties go to the better mood.
func predominant(counts map[health.Mood]int) health.Mood {
	best, bestCount := health.MoodNeutral, 0
	for _, m := range []health.Mood{health.MoodGood, health.MoodNeutral, health.MoodBad} {
		if counts[m] > bestCount {
			best, bestCount = m, counts[m]
		}
	}
	return best
}
