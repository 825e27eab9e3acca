package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gupta19esha/HealthScribeGPT/pkg/db"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/store"
)

func setupTestService(t *testing.T) *journal.Service {
	t.Helper()

	testDB, err := db.Open(db.MemoryDSN, db.Options{WAL: true, Sync: "NORMAL"})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { testDB.Close() })

	if err := db.MigrateLatest(testDB, db.MemoryDSN); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}

	tick := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}
	return journal.NewService(store.New(store.NewSQLBackend(testDB)), journal.WithClock(clock))
}

func callTool(t *testing.T, h server.ToolHandlerFunc, args map[string]interface{}) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("tool returned protocol error: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestPingTool(t *testing.T) {
	out, isErr := callTool(t, pingHandler, nil)
	if isErr || out != "pong_healthscribe" {
		t.Errorf("unexpected ping result %q (error=%v)", out, isErr)
	}
}

func TestEntryTools(t *testing.T) {
	svc := setupTestService(t)

	if out, isErr := callTool(t, addEntryHandler(svc), map[string]interface{}{}); !isErr || !strings.Contains(out, "content") {
		t.Errorf("expected missing content error, got %q", out)
	}

	out, isErr := callTool(t, addEntryHandler(svc), map[string]interface{}{"content": "Slept 8 hours, feeling good"})
	if isErr {
		t.Fatalf("add_entry failed: %s", out)
	}
	var entry health.JournalEntry
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.Metrics == nil || entry.Metrics.Sleep != 8 || entry.Metrics.Mood != health.MoodGood {
		t.Errorf("unexpected entry metrics %+v", entry.Metrics)
	}

	callTool(t, addEntryHandler(svc), map[string]interface{}{"content": "second"})

	out, _ = callTool(t, listEntriesHandler(svc), map[string]interface{}{"limit": float64(1)})
	var entries []health.JournalEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "second" {
		t.Errorf("expected only the newest entry, got %+v", entries)
	}
}

func TestAnalyzeEntryTool(t *testing.T) {
	svc := setupTestService(t)

	out, isErr := callTool(t, analyzeEntryHandler(svc), map[string]interface{}{"content": "slept 5 hours"})
	if !isErr || !strings.Contains(out, "API key") {
		t.Errorf("expected missing credential tool error, got %q", out)
	}

	out, isErr = callTool(t, analyzeEntryHandler(svc), map[string]interface{}{"content": "slept 5 hours", "local": true})
	if isErr {
		t.Fatalf("local analysis failed: %s", out)
	}
	if !strings.Contains(out, "Try to increase sleep duration to at least 7 hours") {
		t.Errorf("expected local suggestion, got %s", out)
	}
}

func TestGoalAndHabitTools(t *testing.T) {
	svc := setupTestService(t)

	out, isErr := callTool(t, addGoalHandler(svc), map[string]interface{}{"content": "Sleep 8 hours", "category": "sleep", "target_date": "2024-04-01"})
	if isErr {
		t.Fatalf("add_goal failed: %s", out)
	}
	var goal health.Goal
	json.Unmarshal([]byte(out), &goal)
	if goal.TargetDate == nil || *goal.TargetDate != "2024-04-01" {
		t.Errorf("expected target date, got %+v", goal)
	}

	out, isErr = callTool(t, toggleGoalHandler(svc), map[string]interface{}{"id": float64(goal.ID)})
	if isErr || !strings.Contains(out, `"completed":true`) {
		t.Errorf("expected completed goal, got %s", out)
	}
	if out, isErr := callTool(t, toggleGoalHandler(svc), map[string]interface{}{"id": "12"}); !isErr || !strings.Contains(out, "not found") {
		t.Errorf("expected not found error, got %q", out)
	}
	if _, isErr := callTool(t, toggleGoalHandler(svc), map[string]interface{}{}); !isErr {
		t.Errorf("expected error for missing id")
	}

	out, _ = callTool(t, addHabitHandler(svc), map[string]interface{}{"content": "Stretch"})
	var habit health.Habit
	json.Unmarshal([]byte(out), &habit)

	out, isErr = callTool(t, checkHabitHandler(svc), map[string]interface{}{"id": float64(habit.ID)})
	if isErr || !strings.Contains(out, `"checked":true`) || !strings.Contains(out, `"streak":1`) {
		t.Errorf("unexpected check_habit result %s", out)
	}
	out, _ = callTool(t, checkHabitHandler(svc), map[string]interface{}{"id": float64(habit.ID)})
	if !strings.Contains(out, `"checked":false`) {
		t.Errorf("expected second check to be a no-op, got %s", out)
	}
}

func TestNutritionTools(t *testing.T) {
	svc := setupTestService(t)

	if out, isErr := callTool(t, addMealHandler(svc), map[string]interface{}{"description": "Cake", "type": "dessert"}); !isErr || !strings.Contains(out, "invalid meal type") {
		t.Errorf("expected invalid meal type error, got %q", out)
	}
	callTool(t, addMealHandler(svc), map[string]interface{}{"description": "Toast", "calories": float64(250)})
	callTool(t, addMealHandler(svc), map[string]interface{}{"description": "Soup", "type": "lunch", "calories": "300"})

	out, _ := callTool(t, listMealsHandler(svc), map[string]interface{}{})
	var meals struct {
		Date          string        `json:"date"`
		Meals         []health.Meal `json:"meals"`
		TotalCalories float64       `json:"totalCalories"`
	}
	if err := json.Unmarshal([]byte(out), &meals); err != nil {
		t.Fatalf("decode meals: %v", err)
	}
	if meals.Date != "2024-03-10" || len(meals.Meals) != 2 || meals.TotalCalories != 550 {
		t.Errorf("unexpected meals %+v", meals)
	}

	out, _ = callTool(t, updateWaterHandler(svc), map[string]interface{}{"delta": float64(-250)})
	if out != `{"waterIntake":0}` {
		t.Errorf("expected water clamped to 0, got %s", out)
	}
	out, _ = callTool(t, updateWaterHandler(svc), map[string]interface{}{"delta": float64(500)})
	if out != `{"waterIntake":500}` {
		t.Errorf("expected 500ml, got %s", out)
	}
	if _, isErr := callTool(t, updateWaterHandler(svc), map[string]interface{}{}); !isErr {
		t.Errorf("expected error for missing delta")
	}
}

func TestReportTools(t *testing.T) {
	svc := setupTestService(t)
	callTool(t, addEntryHandler(svc), map[string]interface{}{"content": "slept 8 hours, 30-minute workout"})

	out, isErr := callTool(t, getReportHandler(svc), map[string]interface{}{"period": "week"})
	if isErr {
		t.Fatalf("get_report failed: %s", out)
	}
	if !strings.Contains(out, `"totalEntries":1`) {
		t.Errorf("expected one entry in report, got %s", out)
	}
	if _, isErr := callTool(t, getReportHandler(svc), map[string]interface{}{"period": "century"}); !isErr {
		t.Errorf("expected error for invalid period")
	}

	if out, isErr := callTool(t, getAnalyticsHandler(svc), map[string]interface{}{}); !isErr || !strings.Contains(out, "no valid analysis results") {
		t.Errorf("expected no results error without credentials, got %q", out)
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	srv := NewHealthScribeMCPServer(setupTestService(t))
	if srv.MCPRawServer() == nil {
		t.Fatalf("expected raw server")
	}
	if len(ToolNames) != 15 {
		t.Errorf("expected 15 tools, got %d", len(ToolNames))
	}
}
