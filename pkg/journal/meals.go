package journal

import (
	"context"
	"strings"
	"time"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

// NewMeal describes a meal to log. An empty Date means today (UTC).
type NewMeal struct {
	Type        health.MealType
	Description string
	Calories    float64
	Date        string
}

// AddMeal appends a meal.
func (s *Service) AddMeal(ctx context.Context, in NewMeal) (health.Meal, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return health.Meal{}, ErrEmptyContent
	}
	mealType := health.MealType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	if mealType == "" {
		mealType = health.MealBreakfast
	}
	if !mealType.Valid() {
		return health.Meal{}, ErrInvalidMealType
	}

	now := s.now()
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = Today(now)
	} else if _, err := time.Parse(health.DateLayout, date); err != nil {
		return health.Meal{}, ErrInvalidDate
	}

	calories := in.Calories
	if calories < 0 {
		calories = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meal := health.Meal{
		ID:          s.newID(now),
		Type:        mealType,
		Description: description,
		Calories:    calories,
		Date:        date,
		CreatedAt:   health.FormatTimestamp(now),
	}
	if _, err := s.store.Meals.Append(ctx, meal); err != nil {
		return health.Meal{}, err
	}
	return meal, nil
}

// ListMeals returns all meals in logging order.
func (s *Service) ListMeals(ctx context.Context) []health.Meal {
	return s.store.Meals.Get(ctx)
}

// MealsForDate returns the meals logged for date (YYYY-MM-DD) and their
// total calories.
func (s *Service) MealsForDate(ctx context.Context, date string) ([]health.Meal, float64) {
	var out []health.Meal
	for _, m := range s.store.Meals.Get(ctx) {
		if m.Date == date {
			out = append(out, m)
		}
	}
	if out == nil {
		out = []health.Meal{}
	}
	return out, TotalCalories(out)
}

// TotalCalories sums the calories of meals.
func TotalCalories(meals []health.Meal) float64 {
	var total float64
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// Today formats the UTC calendar date of now.
func Today(now time.Time) string {
	return now.UTC().Format(health.DateLayout)
}
