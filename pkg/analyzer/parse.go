package analyzer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

// ParseAnalysis validates and coerces a raw model reply. The reply may wrap
// the JSON object in prose or a code fence. ok is false when the reply was
// unusable and Fallback was returned instead.
func ParseAnalysis(raw string) (analysis Analysis, ok bool) {
	var top map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &top); err != nil || top == nil {
		return Fallback(), false
	}
	if !truthy(top["metrics"]) || !truthy(top["insights"]) || !truthy(top["suggestions"]) {
		return Fallback(), false
	}

	metrics, _ := top["metrics"].(map[string]any)

	analysis = Analysis{
		Metrics: health.Metrics{
			Sleep:    toNumber(metrics["sleep"]),
			Exercise: toNumber(metrics["exercise"]),
			Mood:     health.Mood(toString(metrics["mood"])),
			Energy:   health.Energy(toString(metrics["energy"])),
			Symptoms: uniqueStrings(metrics["symptoms"]),
		}.Normalize(),
		Insights:    truncate(stringItems(top["insights"]), maxInsights),
		Suggestions: truncate(stringItems(top["suggestions"]), maxSuggestions),
	}
	return analysis, true
}

func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// toNumber follows JavaScript Number() conversion, with NaN, infinities and
// negatives mapped to 0.
func toNumber(v any) float64 {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case bool:
		if x {
			n = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func stringItems(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func uniqueStrings(v any) []string {
	all := stringItems(v)
	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, s := range all {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
