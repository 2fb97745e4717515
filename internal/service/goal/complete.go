package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// CompleteGoal marks a goal COMPLETED and stamps today's date as the
// completion date. Completing an already completed goal restamps the date,
// matching the update semantics.
func (s *Service) CompleteGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	if goalID == uuid.Nil {
		return nil, domain.NewValidationError("goal_id", "required")
	}

	status := domain.GoalStatusCompleted
	today := domain.DateOnly(s.now())
	ptr := &today

	completed, err := s.goals.Update(ctx, goalID, domain.GoalUpdateParams{
		Status:         &status,
		CompletionDate: &ptr,
	})
	if err != nil {
		return nil, fmt.Errorf("complete goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal completed",
		slog.String("goal_id", goalID.String()),
		slog.String("user_id", completed.UserID.String()),
	)

	return completed, nil
}
