package journal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"
	"github.com/gupta19esha/HealthScribeGPT/pkg/store"
)

// testClock hands out increasing timestamps so generated ids stay unique.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func (c *testClock) AdvanceDays(n int) {
	c.now = c.now.AddDate(0, 0, n)
}

func setupTestService(t *testing.T, opts ...Option) (*Service, *store.MemoryBackend, *testClock) {
	t.Helper()

	backend := store.NewMemoryBackend()
	clock := &testClock{now: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewService(store.New(backend), opts...), backend, clock
}

func replyProvider(reply string) analyzer.Provider {
	return analyzer.ProviderFunc(func(ctx context.Context, system, user string) (string, error) {
		return reply, nil
	})
}

func TestCreateEntryExtractsMetrics(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	first, err := svc.CreateEntry(ctx, "  Slept 6 hours, bad headache  ", false)
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if first.Content != "Slept 6 hours, bad headache" {
		t.Errorf("expected trimmed content, got %q", first.Content)
	}
	if first.Metrics == nil || first.Metrics.Sleep != 6 || first.Metrics.Mood != health.MoodBad {
		t.Errorf("unexpected metrics %+v", first.Metrics)
	}

	second, err := svc.CreateEntry(ctx, "Did a 30-minute workout", false)
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	entries := svc.ListEntries(ctx)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("expected newest entry first")
	}
	if got := svc.RecentEntries(ctx, 1); len(got) != 1 || got[0].ID != second.ID {
		t.Errorf("expected RecentEntries(1) to return the newest entry")
	}
}

func TestCreateEntryEmptyContent(t *testing.T) {
	svc, _, _ := setupTestService(t)

	if _, err := svc.CreateEntry(context.Background(), "   \n", false); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestCreateEntryUsesAnalyzer(t *testing.T) {
	reply := `{"metrics":{"sleep":9,"exercise":0,"mood":"good","energy":"high","symptoms":["cough"]},"insights":["a"],"suggestions":["b"]}`
	svc, _, _ := setupTestService(t, WithAnalyzer(analyzer.New(replyProvider(reply))))

	entry, err := svc.CreateEntry(context.Background(), "Slept 6 hours", true)
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.Metrics.Sleep != 9 || len(entry.Metrics.Symptoms) != 1 {
		t.Errorf("expected analyzer metrics, got %+v", entry.Metrics)
	}
}

func TestCreateEntryFallsBackToExtractor(t *testing.T) {
	svc, _, _ := setupTestService(t)

	entry, err := svc.CreateEntry(context.Background(), "Slept 6 hours", true)
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.Metrics.Sleep != 6 {
		t.Errorf("expected extracted sleep 6 without credentials, got %v", entry.Metrics.Sleep)
	}
}

func TestCreateEntryWriteFailure(t *testing.T) {
	svc, backend, _ := setupTestService(t)
	ctx := context.Background()

	backend.FailWrites(true)
	if _, err := svc.CreateEntry(ctx, "hello", false); !errors.Is(err, store.ErrQuota) {
		t.Fatalf("expected ErrQuota, got %v", err)
	}
	backend.FailWrites(false)

	if got := svc.ListEntries(ctx); len(got) != 0 {
		t.Errorf("expected nothing stored, got %d entries", len(got))
	}
}

func TestGoals(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	first, err := svc.AddGoal(ctx, "Walk 10k steps", "", nil)
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if first.Category != "health" || first.Completed || first.TargetDate != nil {
		t.Errorf("unexpected goal %+v", first)
	}
	target := "2024-06-01"
	second, err := svc.AddGoal(ctx, "Sleep by 11pm", "Sleep", &target)
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	goals := svc.ListGoals(ctx)
	if len(goals) != 2 || goals[0].ID != first.ID || goals[1].ID != second.ID {
		t.Fatalf("expected goals in creation order, got %+v", goals)
	}

	toggled, err := svc.ToggleGoal(ctx, second.ID)
	if err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	if !toggled.Completed {
		t.Errorf("expected goal completed")
	}
	if got := svc.ListGoals(ctx)[1]; !got.Completed || got.Category != "sleep" {
		t.Errorf("expected toggle to persist, got %+v", got)
	}

	if _, err := svc.ToggleGoal(ctx, 42); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
	if _, err := svc.AddGoal(ctx, "", "health", nil); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
	bad := "someday"
	if _, err := svc.AddGoal(ctx, "x", "health", &bad); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCheckHabitStreak(t *testing.T) {
	svc, _, clock := setupTestService(t)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, "Meditate", "mindfulness")
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if habit.Streak != 0 || habit.LastChecked != nil {
		t.Errorf("expected fresh habit, got %+v", habit)
	}

	want := []int{1, 2, 1}
	advance := []int{0, 1, 2}
	for i := range want {
		clock.AdvanceDays(advance[i])
		got, checked, err := svc.CheckHabit(ctx, habit.ID)
		if err != nil {
			t.Fatalf("CheckHabit: %v", err)
		}
		if !checked {
			t.Fatalf("step %d: expected check-in to be recorded", i)
		}
		if got.Streak != want[i] {
			t.Errorf("step %d: expected streak %d, got %d", i, want[i], got.Streak)
		}
	}

	got, checked, err := svc.CheckHabit(ctx, habit.ID)
	if err != nil {
		t.Fatalf("CheckHabit: %v", err)
	}
	if checked || got.Streak != 1 {
		t.Errorf("expected same-day check to be a no-op, got checked=%v streak=%d", checked, got.Streak)
	}
	if stored := svc.ListHabits(ctx)[0]; stored.Streak != 1 {
		t.Errorf("expected stored streak 1, got %d", stored.Streak)
	}

	if _, _, err := svc.CheckHabit(ctx, 7); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestMeals(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.AddMeal(ctx, NewMeal{Type: "brunch", Description: "eggs"}); !errors.Is(err, ErrInvalidMealType) {
		t.Errorf("expected ErrInvalidMealType, got %v", err)
	}
	if _, err := svc.AddMeal(ctx, NewMeal{Type: health.MealLunch, Description: " "}); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
	if _, err := svc.AddMeal(ctx, NewMeal{Type: health.MealLunch, Description: "soup", Date: "10/03/2024"}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	today, err := svc.AddMeal(ctx, NewMeal{Type: "Dinner", Description: "Pasta", Calories: 650})
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if today.Date != "2024-03-10" || today.Type != health.MealDinner {
		t.Errorf("unexpected meal %+v", today)
	}
	if _, err := svc.AddMeal(ctx, NewMeal{Description: "Oats", Calories: 300.5, Date: "2024-03-10"}); err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if _, err := svc.AddMeal(ctx, NewMeal{Type: health.MealSnack, Description: "Apple", Calories: -5, Date: "2024-03-09"}); err != nil {
		t.Fatalf("AddMeal: %v", err)
	}

	meals, total := svc.MealsForDate(ctx, "2024-03-10")
	if len(meals) != 2 || total != 950.5 {
		t.Errorf("expected 2 meals totalling 950.5, got %d totalling %v", len(meals), total)
	}
	if meals[1].Type != health.MealBreakfast {
		t.Errorf("expected default meal type breakfast, got %q", meals[1].Type)
	}
	snacks, total := svc.MealsForDate(ctx, "2024-03-09")
	if len(snacks) != 1 || total != 0 {
		t.Errorf("expected negative calories clamped to 0, got %v", total)
	}
	if none, total := svc.MealsForDate(ctx, "2020-01-01"); none == nil || len(none) != 0 || total != 0 {
		t.Errorf("expected empty result for a day without meals")
	}
}

func TestAdjustWaterClampsAtZero(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	steps := []struct {
		delta int
		want  int
	}{
		{WaterStep, 250},
		{WaterStep, 500},
		{-WaterStep, 250},
		{-1000, 0},
		{100, 100},
	}
	for _, step := range steps {
		got, err := svc.AdjustWater(ctx, step.delta)
		if err != nil {
			t.Fatalf("AdjustWater(%d): %v", step.delta, err)
		}
		if got != step.want {
			t.Errorf("AdjustWater(%d): expected %d, got %d", step.delta, step.want, got)
		}
	}
	if got := svc.WaterIntake(ctx); got != 100 {
		t.Errorf("expected stored intake 100, got %d", got)
	}
}

func TestReport(t *testing.T) {
	svc, _, clock := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateEntry(ctx, "slept 8 hours, 30-minute workout, good day", false); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if _, err := svc.AddHabit(ctx, "Stretch", "fitness"); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	clock.AdvanceDays(1)

	rep := svc.Report(ctx, report.PeriodWeek)
	if rep.Overview.TotalEntries != 1 {
		t.Errorf("expected 1 entry in window, got %d", rep.Overview.TotalEntries)
	}
	// sleep 100, exercise 100, mood 100, habit streak 0
	if rep.HealthScore != 80 {
		t.Errorf("expected health score 80, got %d", rep.HealthScore)
	}

	clock.AdvanceDays(10)
	if rep := svc.Report(ctx, report.PeriodWeek); rep.Overview.TotalEntries != 0 || rep.HealthScore != 0 {
		t.Errorf("expected entry to fall out of the week window, got %+v", rep.Overview)
	}
}

func TestAnalytics(t *testing.T) {
	reply := `{"metrics":{"sleep":7,"mood":"good","energy":"medium","symptoms":[]},"insights":["a"],"suggestions":["b"]}`
	svc, _, _ := setupTestService(t, WithAnalyzer(analyzer.New(replyProvider(reply))))
	ctx := context.Background()

	for _, c := range []string{"one", "two", "three"} {
		if _, err := svc.CreateEntry(ctx, c, false); err != nil {
			t.Fatalf("CreateEntry: %v", err)
		}
	}

	summary, err := svc.Analytics(ctx, 2)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if summary.Analyzed != 2 {
		t.Errorf("expected 2 analyzed entries, got %d", summary.Analyzed)
	}
	if summary.Sleep.AverageHours != 7 || summary.Sleep.Pattern != analyzer.PatternStable {
		t.Errorf("unexpected sleep summary %+v", summary.Sleep)
	}
}

func TestAnalyticsNoResults(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateEntry(ctx, "entry", false); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if _, err := svc.Analytics(ctx, 0); !errors.Is(err, analyzer.ErrNoResults) {
		t.Errorf("expected ErrNoResults without credentials, got %v", err)
	}
}

func TestLocalAnalysis(t *testing.T) {
	a := LocalAnalysis("Slept 8 hours and went for a 40 min run")
	if a.Metrics.Sleep != 8 || a.Metrics.Exercise != 40 {
		t.Errorf("unexpected metrics %+v", a.Metrics)
	}
	if len(a.Insights) != 3 || len(a.Suggestions) != 2 {
		t.Fatalf("expected 3 insights and 2 suggestions, got %d and %d", len(a.Insights), len(a.Suggestions))
	}
	if !strings.Contains(a.Insights[1], "meeting daily activity goals") {
		t.Errorf("unexpected exercise insight %q", a.Insights[1])
	}
}
