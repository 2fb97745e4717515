package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// UpcomingGoals returns the user's active goals whose target date falls
// within the configured upcoming window, starting today.
func (s *Service) UpcomingGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	today := domain.DateOnly(s.now())
	windowEnd := today.AddDate(0, 0, s.cfg.UpcomingWindowDays)

	goals, err := s.goals.ListUpcoming(ctx, userID, today, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("list upcoming goals: %w", err)
	}

	return goals, nil
}
