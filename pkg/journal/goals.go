package journal

import (
	"context"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
)

const defaultCategory = "health"

// AddGoal appends a new, incomplete goal.
func (s *Service) AddGoal(ctx context.Context, content, category string, targetDate *string) (health.Goal, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return health.Goal{}, ErrEmptyContent
	}
	if targetDate != nil {
		if _, ok := health.ParseTimestamp(*targetDate); !ok {
			return health.Goal{}, ErrInvalidDate
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	goal := health.Goal{
		ID:         s.newID(now),
		Content:    content,
		Category:   categoryOrDefault(category),
		CreatedAt:  health.FormatTimestamp(now),
		TargetDate: targetDate,
	}
	if _, err := s.store.Goals.Append(ctx, goal); err != nil {
		return health.Goal{}, err
	}
	return goal, nil
}

// ListGoals returns all goals in creation order.
func (s *Service) ListGoals(ctx context.Context) []health.Goal {
	return s.store.Goals.Get(ctx)
}

// ToggleGoal flips the completion flag of the goal with id.
func (s *Service) ToggleGoal(ctx context.Context, id int64) (health.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.store.Goals.Get(ctx)
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].Toggle()
		if err := s.store.Goals.Save(ctx, goals); err != nil {
			return health.Goal{}, err
		}
		return goals[i], nil
	}
	return health.Goal{}, ErrGoalNotFound
}

func categoryOrDefault(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return defaultCategory
	}
	return category
}
