package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goaly/goaly-backend/internal/domain"
)

// UpdateGoal applies a partial update. Moving the status to COMPLETED stamps
// the completion date with today's calendar date; moving it anywhere else
// clears it, keeping the "completion date only while completed" invariant.
func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.GoalUpdateParams{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
	}

	if input.TargetDate != nil {
		d := domain.DateOnly(*input.TargetDate)
		params.TargetDate = &d
	}

	if input.Status != nil {
		if *input.Status == domain.GoalStatusCompleted {
			today := domain.DateOnly(s.now())
			ptr := &today
			params.CompletionDate = &ptr
		} else {
			var cleared *time.Time
			params.CompletionDate = &cleared
		}
	}

	updated, err := s.goals.Update(ctx, input.GoalID, params)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal updated",
		slog.String("goal_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
