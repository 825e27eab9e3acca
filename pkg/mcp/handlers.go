package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"
)

// ToolNames lists every registered tool, in registration order.
var ToolNames = []string{
	"ping",
	"add_entry", "list_entries", "analyze_entry",
	"add_goal", "list_goals", "toggle_goal",
	"add_habit", "list_habits", "check_habit",
	"add_meal", "list_meals",
	"update_water",
	"get_report", "get_analytics",
}

// RegisterAllTools registers every journal tool on s.
func RegisterAllTools(s *server.MCPServer, svc *journal.Service) {
	RegisterPingTool(s)
	RegisterEntryTools(s, svc)
	RegisterGoalTools(s, svc)
	RegisterHabitTools(s, svc)
	RegisterNutritionTools(s, svc)
	RegisterReportTools(s, svc)
}

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the HealthScribe MCP server is alive."),
	)
	s.AddTool(pingTool, pingHandler)
}

func pingHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong_healthscribe"), nil
}

// RegisterEntryTools registers add_entry, list_entries and analyze_entry.
func RegisterEntryTools(s *server.MCPServer, svc *journal.Service) {
	s.AddTool(mcp.NewTool("add_entry",
		mcp.WithDescription("Adds a journal entry. Sleep, exercise, mood, energy and symptoms are extracted from the text."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Free-text journal entry.")),
		mcp.WithBoolean("analyze", mcp.Description("Use the language model to extract metrics instead of the built-in rules.")),
	), addEntryHandler(svc))

	s.AddTool(mcp.NewTool("list_entries",
		mcp.WithDescription("Lists journal entries, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of entries to return. Omit for all.")),
	), listEntriesHandler(svc))

	s.AddTool(mcp.NewTool("analyze_entry",
		mcp.WithDescription("Analyzes a piece of journal text without storing it and returns metrics, insights and suggestions."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text to analyze.")),
		mcp.WithBoolean("local", mcp.Description("Use the built-in rules instead of the language model.")),
	), analyzeEntryHandler(svc))
}

func addEntryHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		content := stringArg(args, "content")
		if content == "" {
			return mcp.NewToolResultError("'content' parameter is required and must be a non-empty string."), nil
		}

		entry, err := svc.CreateEntry(ctx, content, boolArg(args, "analyze"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add entry: %v", err)), nil
		}
		return jsonResult(entry)
	}
}

func listEntriesHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := -1
		if n, ok := numberArg(request.Params.Arguments, "limit"); ok && n >= 0 {
			limit = int(n)
		}
		return jsonResult(svc.RecentEntries(ctx, limit))
	}
}

func analyzeEntryHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		content := stringArg(args, "content")
		if content == "" {
			return mcp.NewToolResultError("'content' parameter is required and must be a non-empty string."), nil
		}

		if boolArg(args, "local") {
			return jsonResult(journal.LocalAnalysis(content))
		}
		analysis, err := svc.AnalyzeText(ctx, content)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze entry: %v", err)), nil
		}
		return jsonResult(analysis)
	}
}

// RegisterGoalTools registers add_goal, list_goals and toggle_goal.
func RegisterGoalTools(s *server.MCPServer, svc *journal.Service) {
	s.AddTool(mcp.NewTool("add_goal",
		mcp.WithDescription("Adds a health goal."),
		mcp.WithString("content", mcp.Required(), mcp.Description("What the goal is.")),
		mcp.WithString("category", mcp.Description("One of health, fitness, nutrition, sleep, mindfulness. Defaults to health.")),
		mcp.WithString("target_date", mcp.Description("Optional target date (YYYY-MM-DD).")),
	), addGoalHandler(svc))

	s.AddTool(mcp.NewTool("list_goals",
		mcp.WithDescription("Lists all health goals."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.ListGoals(ctx))
	})

	s.AddTool(mcp.NewTool("toggle_goal",
		mcp.WithDescription("Marks a goal completed, or incomplete again."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Goal id.")),
	), toggleGoalHandler(svc))
}

func addGoalHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		content := stringArg(args, "content")
		if content == "" {
			return mcp.NewToolResultError("'content' parameter is required and must be a non-empty string."), nil
		}

		var target *string
		if t := stringArg(args, "target_date"); t != "" {
			target = &t
		}
		goal, err := svc.AddGoal(ctx, content, stringArg(args, "category"), target)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add goal: %v", err)), nil
		}
		return jsonResult(goal)
	}
}

func toggleGoalHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := idArg(request.Params.Arguments, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		goal, err := svc.ToggleGoal(ctx, id)
		if errors.Is(err, journal.ErrGoalNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Goal with id %d not found.", id)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to toggle goal: %v", err)), nil
		}
		return jsonResult(goal)
	}
}

// RegisterHabitTools registers add_habit, list_habits and check_habit.
func RegisterHabitTools(s *server.MCPServer, svc *journal.Service) {
	s.AddTool(mcp.NewTool("add_habit",
		mcp.WithDescription("Adds a daily habit to track."),
		mcp.WithString("content", mcp.Required(), mcp.Description("The habit.")),
		mcp.WithString("category", mcp.Description("One of health, fitness, nutrition, sleep, mindfulness. Defaults to health.")),
	), addHabitHandler(svc))

	s.AddTool(mcp.NewTool("list_habits",
		mcp.WithDescription("Lists all habits with their streaks."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.ListHabits(ctx))
	})

	s.AddTool(mcp.NewTool("check_habit",
		mcp.WithDescription("Checks in a habit for today. Checking in twice on the same day has no effect."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Habit id.")),
	), checkHabitHandler(svc))
}

func addHabitHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		content := stringArg(args, "content")
		if content == "" {
			return mcp.NewToolResultError("'content' parameter is required and must be a non-empty string."), nil
		}

		habit, err := svc.AddHabit(ctx, content, stringArg(args, "category"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add habit: %v", err)), nil
		}
		return jsonResult(habit)
	}
}

func checkHabitHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := idArg(request.Params.Arguments, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		habit, checked, err := svc.CheckHabit(ctx, id)
		if errors.Is(err, journal.ErrHabitNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Habit with id %d not found.", id)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to check habit: %v", err)), nil
		}
		return jsonResult(map[string]interface{}{"habit": habit, "checked": checked})
	}
}

// RegisterNutritionTools registers add_meal, list_meals and update_water.
func RegisterNutritionTools(s *server.MCPServer, svc *journal.Service) {
	s.AddTool(mcp.NewTool("add_meal",
		mcp.WithDescription("Logs a meal."),
		mcp.WithString("description", mcp.Required(), mcp.Description("What was eaten.")),
		mcp.WithString("type", mcp.Description("breakfast, lunch, dinner or snack. Defaults to breakfast.")),
		mcp.WithNumber("calories", mcp.Description("Calories, if known.")),
		mcp.WithString("date", mcp.Description("Date eaten (YYYY-MM-DD). Defaults to today.")),
	), addMealHandler(svc))

	s.AddTool(mcp.NewTool("list_meals",
		mcp.WithDescription("Lists the meals of one day with their total calories."),
		mcp.WithString("date", mcp.Description("Day to list (YYYY-MM-DD). Defaults to today.")),
	), listMealsHandler(svc))

	s.AddTool(mcp.NewTool("update_water",
		mcp.WithDescription("Adds (or with a negative delta removes) water intake in milliliters. The total never drops below zero."),
		mcp.WithNumber("delta", mcp.Required(), mcp.Description("Milliliters to add, e.g. 250 or -250.")),
	), updateWaterHandler(svc))
}

func addMealHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		calories, _ := numberArg(args, "calories")

		meal, err := svc.AddMeal(ctx, journal.NewMeal{
			Type:        health.MealType(stringArg(args, "type")),
			Description: stringArg(args, "description"),
			Calories:    calories,
			Date:        stringArg(args, "date"),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add meal: %v", err)), nil
		}
		return jsonResult(meal)
	}
}

func listMealsHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := stringArg(request.Params.Arguments, "date")
		if date == "" {
			date = journal.Today(svc.Now())
		}
		meals, total := svc.MealsForDate(ctx, date)
		return jsonResult(map[string]interface{}{"date": date, "meals": meals, "totalCalories": total})
	}
}

func updateWaterHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		delta, ok := numberArg(request.Params.Arguments, "delta")
		if !ok {
			return mcp.NewToolResultError("'delta' parameter is required and must be a number."), nil
		}

		ml, err := svc.AdjustWater(ctx, int(delta))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update water intake: %v", err)), nil
		}
		return jsonResult(map[string]int{"waterIntake": ml})
	}
}

// RegisterReportTools registers get_report and get_analytics.
func RegisterReportTools(s *server.MCPServer, svc *journal.Service) {
	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Returns the health report (health score, sleep and exercise analysis, overview) for a trailing period."),
		mcp.WithString("period", mcp.Description("week, month or quarter. Defaults to month.")),
	), getReportHandler(svc))

	s.AddTool(mcp.NewTool("get_analytics",
		mcp.WithDescription("Analyzes the most recent entries with the language model and returns sleep, mood and symptom trends."),
		mcp.WithNumber("count", mcp.Description("How many recent entries to analyze. Defaults to 7.")),
	), getAnalyticsHandler(svc))
}

func getReportHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		period, err := report.ParsePeriod(stringArg(request.Params.Arguments, "period"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(svc.Report(ctx, period))
	}
}

func getAnalyticsHandler(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		count, _ := numberArg(request.Params.Arguments, "count")
		summary, err := svc.Analytics(ctx, int(count))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze entries: %v", err)), nil
		}
		return jsonResult(summary)
	}
}
