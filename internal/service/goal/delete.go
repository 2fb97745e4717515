package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// DeleteGoal removes a goal permanently.
func (s *Service) DeleteGoal(ctx context.Context, goalID uuid.UUID) error {
	if goalID == uuid.Nil {
		return domain.NewValidationError("goal_id", "required")
	}

	if err := s.goals.Delete(ctx, goalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal deleted",
		slog.String("goal_id", goalID.String()),
	)

	return nil
}
