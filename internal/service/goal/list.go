package goal

import (
	"context"
	"fmt"

	"github.com/goaly/goaly-backend/internal/domain"
)

// GoalPage is one page of a user's goals plus the unpaginated total.
type GoalPage struct {
	Goals []domain.Goal
	Total int
}

// ListGoals returns a filtered, paginated page of the user's goals.
func (s *Service) ListGoals(ctx context.Context, input ListGoalsInput) (*GoalPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	goals, total, err := s.goals.ListByUser(ctx, input.UserID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return &GoalPage{Goals: goals, Total: total}, nil
}
