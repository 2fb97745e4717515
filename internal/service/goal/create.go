package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goaly/goaly-backend/internal/domain"
)

// CreateGoal creates a new goal for an existing user. New goals start
// ACTIVE with MEDIUM priority unless a priority is given. Creation is
// rejected once the user holds the configured maximum number of goals.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", input.UserID, domain.ErrNotFound)
	}

	count, err := s.goals.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("count goals: %w", err)
	}
	if count >= s.cfg.MaxGoalsPerUser {
		return nil, domain.NewValidationError("goals", fmt.Sprintf("limit of %d goals reached", s.cfg.MaxGoalsPerUser))
	}

	priority := domain.GoalPriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	var targetDate *time.Time
	if input.TargetDate != nil {
		d := domain.DateOnly(*input.TargetDate)
		targetDate = &d
	}

	created, err := s.goals.Create(ctx, &domain.Goal{
		UserID:      input.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Status:      domain.GoalStatusActive,
		Priority:    priority,
		TargetDate:  targetDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("user_id", input.UserID.String()),
		slog.String("goal_id", created.ID.String()),
	)

	return created, nil
}
