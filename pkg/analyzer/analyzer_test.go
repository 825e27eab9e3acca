package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

func staticProvider(reply string) Provider {
	return ProviderFunc(func(ctx context.Context, system, user string) (string, error) {
		return reply, nil
	})
}

func TestAnalyzeMissingCredential(t *testing.T) {
	_, err := New(nil).Analyze(context.Background(), "slept 8 hours")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}

	keyless := NewOpenAIProvider(testOpenAIConfig("http://127.0.0.1:0", ""))
	_, err = New(keyless).Analyze(context.Background(), "slept 8 hours")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential from keyless provider, got %v", err)
	}
	if errors.Is(err, ErrProvider) {
		t.Errorf("expected missing credential not to be reported as provider failure")
	}
}

func TestAnalyzeProviderFailure(t *testing.T) {
	boom := errors.New("connection reset")
	a := New(ProviderFunc(func(ctx context.Context, system, user string) (string, error) {
		return "", boom
	}))

	_, err := a.Analyze(context.Background(), "text")
	if !errors.Is(err, ErrProvider) {
		t.Errorf("expected ErrProvider, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected the provider error to be wrapped, got %v", err)
	}
}

func TestAnalyzeEmbedsTextInPrompt(t *testing.T) {
	var gotSystem, gotUser string
	a := New(ProviderFunc(func(ctx context.Context, system, user string) (string, error) {
		gotSystem, gotUser = system, user
		return `{"metrics":{"sleep":8},"insights":["a"],"suggestions":["b"]}`, nil
	}))

	if _, err := a.Analyze(context.Background(), `I said "hi" and slept 8 hours`); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.HasPrefix(gotSystem, "You are a health analysis expert.") {
		t.Errorf("unexpected system prompt: %q", gotSystem)
	}
	if !strings.Contains(gotUser, `"I said "hi" and slept 8 hours"`) {
		t.Errorf("expected entry text verbatim in user prompt, got %q", gotUser)
	}
	if !strings.Contains(gotUser, `"metrics"`) {
		t.Errorf("expected JSON shape in user prompt")
	}
}

func TestAnalyzeMalformedReplyReturnsExactFallback(t *testing.T) {
	for _, reply := range []string{
		"I cannot help with that",
		"[1, 2, 3]",
		`{"metrics": {"sleep": 8}}`,
		`{"metrics": {}, "insights": [], "suggestions": ""}`,
		`{"metrics": null, "insights": ["x"], "suggestions": ["y"]}`,
		`{"metrics": {"sleep": 8}, "insights": 0, "suggestions": ["y"]}`,
	} {
		got, err := New(staticProvider(reply)).Analyze(context.Background(), "text")
		if err != nil {
			t.Fatalf("reply %q: unexpected error %v", reply, err)
		}

		raw, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"metrics":{"sleep":0,"exercise":0,"mood":"neutral","energy":"medium","symptoms":[]},"insights":["Unable to analyze entry"],"suggestions":["Please try again"]}`
		if string(raw) != want {
			t.Errorf("reply %q:\nexpected %s\ngot      %s", reply, want, raw)
		}
	}
}

func TestParseAnalysisCoercion(t *testing.T) {
	reply := "Here you go:\n```json\n" + `{
		"metrics": {
			"sleep": "7.5",
			"exercise": -20,
			"mood": "ecstatic",
			"energy": "high",
			"symptoms": ["headache", 3, "headache", "cough"]
		},
		"insights": ["one", "two", "three", "four"],
		"suggestions": ["a", null, "b", "c"]
	}` + "\n```"

	got, ok := ParseAnalysis(reply)
	if !ok {
		t.Fatalf("expected reply to be usable")
	}

	want := Analysis{
		Metrics: health.Metrics{
			Sleep:    7.5,
			Exercise: 0,
			Mood:     health.MoodNeutral,
			Energy:   health.EnergyHigh,
			Symptoms: []string{"headache", "cough"},
		},
		Insights:    []string{"one", "two", "three"},
		Suggestions: []string{"a", "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseAnalysisNonArrays(t *testing.T) {
	got, ok := ParseAnalysis(`{"metrics":{"sleep":true,"exercise":"abc","symptoms":"none"},"insights":"great","suggestions":{"x":1}}`)
	if !ok {
		t.Fatalf("expected reply to be usable")
	}
	if got.Metrics.Sleep != 1 {
		t.Errorf("expected sleep true to coerce to 1, got %v", got.Metrics.Sleep)
	}
	if got.Metrics.Exercise != 0 {
		t.Errorf("expected non-numeric exercise to coerce to 0, got %v", got.Metrics.Exercise)
	}
	if got.Metrics.Symptoms == nil || len(got.Metrics.Symptoms) != 0 {
		t.Errorf("expected empty symptoms, got %#v", got.Metrics.Symptoms)
	}
	if got.Insights == nil || len(got.Insights) != 0 {
		t.Errorf("expected empty insights, got %#v", got.Insights)
	}
	if got.Suggestions == nil || len(got.Suggestions) != 0 {
		t.Errorf("expected empty suggestions, got %#v", got.Suggestions)
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{float64(8), 8},
		{"6", 6},
		{" 6.5 ", 6.5},
		{"", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{true, 1},
		{false, 0},
		{nil, 0},
		{[]any{}, 0},
		{float64(-3), 0},
	}
	for _, tt := range tests {
		if got := toNumber(tt.in); got != tt.want {
			t.Errorf("toNumber(%#v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
