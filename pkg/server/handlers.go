package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"
)

type analyzeRequest struct {
	Content string `json:"content"`
}

type entryRequest struct {
	Content string `json:"content"`
	Analyze bool   `json:"analyze"`
}

type goalRequest struct {
	Content    string  `json:"content"`
	Category   string  `json:"category"`
	TargetDate *string `json:"targetDate"`
}

type habitRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

type mealRequest struct {
	Type        health.MealType `json:"type"`
	Description string          `json:"description"`
	Calories    float64         `json:"calories"`
	Date        string          `json:"date"`
}

type waterRequest struct {
	Delta int `json:"delta"`
}

type analyticsRequest struct {
	Count int `json:"count"`
}

type mealsResponse struct {
	Date          string        `json:"date"`
	Meals         []health.Meal `json:"meals"`
	TotalCalories float64       `json:"totalCalories"`
}

type waterResponse struct {
	WaterIntake int `json:"waterIntake"`
}

type habitCheckResponse struct {
	Habit   health.Habit `json:"habit"`
	Checked bool         `json:"checked"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, journal.ErrGoalNotFound), errors.Is(err, journal.ErrHabitNotFound):
		return http.StatusNotFound
	case errors.Is(err, journal.ErrEmptyContent),
		errors.Is(err, journal.ErrInvalidMealType),
		errors.Is(err, journal.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, analyzer.ErrNoResults):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, errors.New("invalid id"))
		return 0, false
	}
	return id, true
}

// bindOptionalJSON binds the body into v, accepting an empty body.
func bindOptionalJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return false
	}
	return true
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	analysis, err := s.journal.AnalyzeText(c.Request.Context(), req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) listEntries(c *gin.Context) {
	c.JSON(http.StatusOK, s.journal.ListEntries(c.Request.Context()))
}

func (s *Server) createEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, err := s.journal.CreateEntry(c.Request.Context(), req.Content, req.Analyze)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) listGoals(c *gin.Context) {
	c.JSON(http.StatusOK, s.journal.ListGoals(c.Request.Context()))
}

func (s *Server) addGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := s.journal.AddGoal(c.Request.Context(), req.Content, req.Category, req.TargetDate)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (s *Server) toggleGoal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	goal, err := s.journal.ToggleGoal(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (s *Server) listHabits(c *gin.Context) {
	c.JSON(http.StatusOK, s.journal.ListHabits(c.Request.Context()))
}

func (s *Server) addHabit(c *gin.Context) {
	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := s.journal.AddHabit(c.Request.Context(), req.Content, req.Category)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func (s *Server) checkHabit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	habit, checked, err := s.journal.CheckHabit(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, habitCheckResponse{Habit: habit, Checked: checked})
}

func (s *Server) listMeals(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = journal.Today(s.journal.Now())
	}

	meals, total := s.journal.MealsForDate(c.Request.Context(), date)
	c.JSON(http.StatusOK, mealsResponse{Date: date, Meals: meals, TotalCalories: total})
}

func (s *Server) addMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := s.journal.AddMeal(c.Request.Context(), journal.NewMeal{
		Type:        req.Type,
		Description: req.Description,
		Calories:    req.Calories,
		Date:        req.Date,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (s *Server) getWater(c *gin.Context) {
	c.JSON(http.StatusOK, waterResponse{WaterIntake: s.journal.WaterIntake(c.Request.Context())})
}

func (s *Server) updateWater(c *gin.Context) {
	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ml, err := s.journal.AdjustWater(c.Request.Context(), req.Delta)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, waterResponse{WaterIntake: ml})
}

func (s *Server) getReport(c *gin.Context) {
	period, err := report.ParsePeriod(c.Query("period"))
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, s.journal.Report(c.Request.Context(), period))
}

func (s *Server) analytics(c *gin.Context) {
	var req analyticsRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	summary, err := s.journal.Analytics(c.Request.Context(), req.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
