package achievement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// ListCatalog returns the achievement catalog, optionally filtered by
// category. A blank category filter is treated as absent.
func (s *Service) ListCatalog(ctx context.Context, category *string) ([]domain.Achievement, error) {
	if category != nil && strings.TrimSpace(*category) == "" {
		category = nil
	}

	catalog, err := s.achievements.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return catalog, nil
}

// GetAchievement returns a single achievement by ID.
func (s *Service) GetAchievement(ctx context.Context, id uuid.UUID) (*domain.Achievement, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("achievement_id", "required")
	}

	a, err := s.achievements.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get achievement: %w", err)
	}
	return a, nil
}

// Categories returns the distinct achievement categories.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.achievements.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListUserAchievements returns the full catalog annotated with the user's
// progress. Locked hidden achievements are reported with status HIDDEN; the
// hidden flag never affects unlock eligibility.
func (s *Service) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]UserAchievement, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	catalog, err := s.achievements.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	records, err := s.unlocks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	unlockedAt := make(map[uuid.UUID]time.Time, len(records))
	for _, r := range records {
		unlockedAt[r.AchievementID] = r.UnlockedAt
	}

	result := make([]UserAchievement, 0, len(catalog))
	for _, a := range catalog {
		ua := UserAchievement{Achievement: a, Status: domain.AchievementStatusLocked}
		if at, ok := unlockedAt[a.ID]; ok {
			ua.Status = domain.AchievementStatusUnlocked
			t := at
			ua.UnlockedAt = &t
		} else if a.Hidden {
			ua.Status = domain.AchievementStatusHidden
		}
		result = append(result, ua)
	}

	return result, nil
}

// ListUserUnlocked returns only the achievements the user has unlocked,
// most recent first.
func (s *Service) ListUserUnlocked(ctx context.Context, userID uuid.UUID) ([]Unlocked, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	records, err := s.unlocks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}

	catalog, err := s.achievements.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	byID := make(map[uuid.UUID]domain.Achievement, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}

	result := make([]Unlocked, 0, len(records))
	for _, r := range records {
		a, ok := byID[r.AchievementID]
		if !ok {
			// Catalog row deleted after the unlock; skip rather than fail.
			continue
		}
		result = append(result, Unlocked{Achievement: a, UnlockedAt: r.UnlockedAt})
	}

	return result, nil
}

// UserStats aggregates a user's achievement progress: counts, points, and a
// per-category breakdown of unlocked achievements.
func (s *Service) UserStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	catalog, err := s.achievements.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	unlockedCount, err := s.unlocks.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unlocks: %w", err)
	}

	points, err := s.unlocks.TotalPointsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	records, err := s.unlocks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	unlocked := make(map[uuid.UUID]struct{}, len(records))
	for _, r := range records {
		unlocked[r.AchievementID] = struct{}{}
	}

	breakdown := make(map[string]int)
	for _, a := range catalog {
		if a.Category == nil {
			continue
		}
		if _, ok := unlocked[a.ID]; ok {
			breakdown[*a.Category]++
		}
	}

	stats := &Stats{
		TotalAchievements: len(catalog),
		UnlockedCount:     unlockedCount,
		LockedCount:       len(catalog) - unlockedCount,
		TotalPoints:       points,
		CategoryBreakdown: breakdown,
	}
	if len(catalog) > 0 {
		stats.CompletionPercentage = float64(unlockedCount) / float64(len(catalog)) * 100
	}

	return stats, nil
}
