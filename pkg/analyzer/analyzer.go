package analyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

const (
	maxInsights    = 3
	maxSuggestions = 2
)

const systemPrompt = `You are a health analysis expert. Analyze journal entries to extract health metrics and provide insights.
Always return data in the exact format specified. If a metric isn't mentioned, use contextual clues or return default values.`

const userPromptTemplate = `Analyze this journal entry and extract health metrics:
"%s"

Return a JSON object with EXACTLY this structure:
{
  "metrics": {
    "sleep": [extract hours as number, default 0],
    "exercise": [extract minutes as number, default 0],
    "mood": ["good", "neutral", or "bad"],
    "energy": ["high", "medium", or "low"],
    "symptoms": [array of symptoms mentioned]
  },
  "insights": [
    "specific insight about sleep pattern",
    "specific insight about exercise habits",
    "specific insight about overall wellbeing"
  ],
  "suggestions": [
    "actionable recommendation based on sleep/exercise",
    "actionable recommendation based on symptoms/mood"
  ]
}`

// Analysis is the structured result of analyzing one entry.
type Analysis struct {
	Metrics     health.Metrics `json:"metrics"`
	Insights    []string       `json:"insights"`
	Suggestions []string       `json:"suggestions"`
}

// Fallback is the analysis returned when the model reply cannot be used.
func Fallback() Analysis {
	return Analysis{
		Metrics:     health.DefaultMetrics(),
		Insights:    []string{"Unable to analyze entry"},
		Suggestions: []string{"Please try again"},
	}
}

// Prompts returns the system and user prompts for text.
func Prompts(text string) (system, user string) {
	return systemPrompt, fmt.Sprintf(userPromptTemplate, text)
}

// Analyzer analyzes entries through a Provider.
type Analyzer struct {
	provider Provider
}

// New returns an Analyzer backed by provider. A nil provider makes every
// call fail with ErrMissingCredential.
func New(provider Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze asks the provider about text. Missing credentials and provider
// failures are returned as errors; an unusable reply is not an error and
// yields Fallback.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Analysis, error) {
	if a == nil || a.provider == nil {
		return Analysis{}, ErrMissingCredential
	}

	system, user := Prompts(text)
	raw, err := a.provider.Complete(ctx, system, user)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			return Analysis{}, err
		}
		return Analysis{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	analysis, ok := ParseAnalysis(raw)
	if !ok {
		logger.Warn("unusable analysis response, returning fallback", "length", len(raw))
	}
	return analysis, nil
}
