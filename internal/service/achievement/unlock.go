package achievement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// Unlock records an unlock for the user without evaluating criteria. It is
// an administrative override: the achievement and user must exist, and a
// second call for the same pair fails with domain.ErrAlreadyUnlocked.
func (s *Service) Unlock(ctx context.Context, userID, achievementID uuid.UUID) (*Unlocked, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if achievementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "achievement_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	a, err := s.achievements.GetByID(ctx, achievementID)
	if err != nil {
		return nil, fmt.Errorf("get achievement: %w", err)
	}

	record, err := s.unlocks.Create(ctx, userID, achievementID, s.now())
	if err != nil {
		// ErrAlreadyUnlocked passes through untouched so callers can treat
		// it as success-no-change.
		return nil, fmt.Errorf("create unlock record: %w", err)
	}

	s.log.InfoContext(ctx, "achievement unlocked manually",
		slog.String("user_id", userID.String()),
		slog.String("achievement_id", achievementID.String()),
	)

	return &Unlocked{Achievement: *a, UnlockedAt: record.UnlockedAt}, nil
}
