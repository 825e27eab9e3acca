package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"
	"github.com/gupta19esha/HealthScribeGPT/pkg/store"

	tea "github.com/charmbracelet/bubbletea"
)

func setupTestModel(t *testing.T) model {
	t.Helper()

	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	svc := journal.NewService(store.New(store.NewMemoryBackend()), journal.WithClock(clock))
	m := initModel(svc, Options{DBFile: "test.db"})
	m.width, m.height = 120, 40
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// apply feeds msg to the model and runs the returned command once, feeding
// its message back in as well.
func apply(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(model)
	if cmd == nil {
		return m
	}
	if out := cmd(); out != nil {
		if _, isBatch := out.(tea.BatchMsg); !isBatch {
			next, _ = m.Update(out)
			m = next.(model)
		}
	}
	return m
}

func TestCreateEntryFromForm(t *testing.T) {
	m := setupTestModel(t)

	m = apply(t, m, keyRunes("n"))
	if !m.creating {
		t.Fatalf("expected 'n' to open the entry form")
	}

	m.contentInput.SetValue("Slept 6 hours and did a 30 minute run. Had a headache.")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if cmd == nil {
		t.Fatalf("expected enter to return a create command")
	}
	m = apply(t, m, cmd())
	if m.creating {
		t.Errorf("expected form to close after the entry was saved")
	}

	m = apply(t, m, loadEntries(m.svc)())
	if len(m.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m.entries))
	}
	got := m.entries[0].MetricsOrDefault()
	if got.Sleep != 6 || got.Exercise != 30 {
		t.Errorf("expected sleep 6 and exercise 30, got %v and %v", got.Sleep, got.Exercise)
	}

	view := m.View()
	if !strings.Contains(view, "headache") {
		t.Errorf("expected detail view to list the symptom")
	}
}

func TestCreateEntryEmptyShowsFormError(t *testing.T) {
	m := setupTestModel(t)
	m = apply(t, m, keyRunes("n"))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if cmd != nil {
		t.Errorf("expected no command for an empty entry")
	}
	if m.creatingError == "" {
		t.Errorf("expected an inline error for an empty entry")
	}

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.creating {
		t.Errorf("expected esc to close the form")
	}
}

func TestWaterKeys(t *testing.T) {
	m := setupTestModel(t)

	m = apply(t, m, keyRunes("+"))
	m = apply(t, m, keyRunes("+"))
	if m.water != 2*journal.WaterStep {
		t.Errorf("expected %d ml, got %d", 2*journal.WaterStep, m.water)
	}

	for i := 0; i < 3; i++ {
		m = apply(t, m, keyRunes("-"))
	}
	if m.water != 0 {
		t.Errorf("expected water clamped at 0, got %d", m.water)
	}
}

func TestPeriodCycles(t *testing.T) {
	m := setupTestModel(t)
	if m.period != report.PeriodMonth {
		t.Fatalf("expected default period month, got %s", m.period)
	}

	want := []report.Period{report.PeriodQuarter, report.PeriodWeek, report.PeriodMonth}
	for _, p := range want {
		m = apply(t, m, keyRunes("p"))
		if m.period != p {
			t.Errorf("expected period %s, got %s", p, m.period)
		}
		if m.report.Period != p {
			t.Errorf("expected report for %s, got %s", p, m.report.Period)
		}
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	m := setupTestModel(t)
	for _, content := range []string{"first", "second"} {
		if _, err := m.svc.CreateEntry(context.Background(), content, false); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}
	m = apply(t, m, loadEntries(m.svc)())

	m = apply(t, m, keyRunes("j"))
	m = apply(t, m, keyRunes("j"))
	if m.entryCursor != 1 {
		t.Errorf("expected cursor to stop at 1, got %d", m.entryCursor)
	}
	m = apply(t, m, keyRunes("k"))
	m = apply(t, m, keyRunes("k"))
	if m.entryCursor != 0 {
		t.Errorf("expected cursor to stop at 0, got %d", m.entryCursor)
	}

	m = apply(t, m, keyRunes("l"))
	m = apply(t, m, keyRunes("l"))
	if m.columnFocus != focusDetails {
		t.Errorf("expected focus on details, got %d", m.columnFocus)
	}
	for i := 0; i < 3; i++ {
		m = apply(t, m, keyRunes("h"))
	}
	if m.columnFocus != focusOverview {
		t.Errorf("expected focus on overview, got %d", m.columnFocus)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"a longer line", 8, "a long.."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
