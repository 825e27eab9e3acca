package journal

import (
	"context"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

// AddHabit appends a new habit with no streak.
func (s *Service) AddHabit(ctx context.Context, content, category string) (health.Habit, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return health.Habit{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	habit := health.Habit{
		ID:        s.newID(now),
		Content:   content,
		Category:  categoryOrDefault(category),
		CreatedAt: health.FormatTimestamp(now),
	}
	if _, err := s.store.Habits.Append(ctx, habit); err != nil {
		return health.Habit{}, err
	}
	return habit, nil
}

// ListHabits returns all habits in creation order.
func (s *Service) ListHabits(ctx context.Context) []health.Habit {
	return s.store.Habits.Get(ctx)
}

// CheckHabit records today's check-in for the habit with id. checked is
// false when the habit had already been checked in today; nothing is
// written in that case.
func (s *Service) CheckHabit(ctx context.Context, id int64) (habit health.Habit, checked bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits := s.store.Habits.Get(ctx)
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		if !habits[i].CheckIn(s.now()) {
			return habits[i], false, nil
		}
		if err := s.store.Habits.Save(ctx, habits); err != nil {
			return health.Habit{}, false, err
		}
		logger.Debug("habit checked", "id", id, "streak", habits[i].Streak)
		return habits[i], true, nil
	}
	return health.Habit{}, false, ErrHabitNotFound
}
