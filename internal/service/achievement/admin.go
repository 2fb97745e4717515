package achievement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

const defaultIcon = "🏆"

// CreateAchievement adds a new entry to the catalog. A criteria key without
// a registered rule is allowed but logged; such an entry never unlocks
// through evaluation.
func (s *Service) CreateAchievement(ctx context.Context, input CreateAchievementInput) (*domain.Achievement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.CriteriaKey)
	if !s.registry.Known(key) {
		s.log.WarnContext(ctx, "achievement created with unregistered criteria key",
			slog.String("criteria_key", key),
		)
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = defaultIcon
	}

	created, err := s.achievements.Create(ctx, &domain.Achievement{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CriteriaKey: key,
		Icon:        icon,
		Points:      input.Points,
		Category:    trimOrNil(input.Category),
		Hidden:      input.Hidden,
	})
	if err != nil {
		return nil, fmt.Errorf("create achievement: %w", err)
	}

	s.log.InfoContext(ctx, "achievement created",
		slog.String("achievement_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateAchievement applies a partial update to a catalog entry.
func (s *Service) UpdateAchievement(ctx context.Context, input UpdateAchievementInput) (*domain.Achievement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.achievements.Update(ctx, input.AchievementID, domain.AchievementUpdateParams{
		Name:        input.Name,
		Description: input.Description,
		CriteriaKey: input.CriteriaKey,
		Icon:        input.Icon,
		Points:      input.Points,
		Category:    input.Category,
		Hidden:      input.Hidden,
	})
	if err != nil {
		return nil, fmt.Errorf("update achievement: %w", err)
	}

	s.log.InfoContext(ctx, "achievement updated",
		slog.String("achievement_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteAchievement removes a catalog entry and, via the database's cascade,
// its unlock records.
func (s *Service) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("achievement_id", "required")
	}

	if err := s.achievements.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete achievement: %w", err)
	}

	s.log.InfoContext(ctx, "achievement deleted",
		slog.String("achievement_id", id.String()),
	)

	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
