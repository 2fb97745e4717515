package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// GetGoal returns a single goal by ID.
func (s *Service) GetGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	if goalID == uuid.Nil {
		return nil, domain.NewValidationError("goal_id", "required")
	}

	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}

	return g, nil
}
