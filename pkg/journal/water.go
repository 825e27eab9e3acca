package journal

import (
	"context"
)

// WaterStep is the amount one tap on the water tracker adds or removes.
const WaterStep = 250

// WaterIntake returns the recorded water intake in milliliters.
func (s *Service) WaterIntake(ctx context.Context) int {
	return s.store.WaterIntake(ctx)
}

// AdjustWater adds delta milliliters, never going below zero, and returns
// the new total.
func (s *Service) AdjustWater(ctx context.Context, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ml := s.store.WaterIntake(ctx) + delta
	if ml < 0 {
		ml = 0
	}
	if err := s.store.SetWaterIntake(ctx, ml); err != nil {
		return 0, err
	}
	return ml, nil
}
