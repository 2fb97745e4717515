package achievement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// CheckAndUnlock evaluates every not-yet-unlocked achievement against the
// user's current goal history and records each one that newly qualifies.
//
// The returned slice follows catalog order and is never nil. The
// existing-unlocks pre-check only avoids pointless inserts; the unique
// constraint behind unlockRepo.Create is the authoritative guard, and a
// concurrent duplicate insert is skipped as a benign outcome.
func (s *Service) CheckAndUnlock(ctx context.Context, userID uuid.UUID) ([]Unlocked, error) {
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

	goals, err := s.goals.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	unlockedIDs, err := s.unlocks.AchievementIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocked achievement ids: %w", err)
	}
	unlocked := make(map[uuid.UUID]struct{}, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = struct{}{}
	}

	now := s.now()
	newlyUnlocked := []Unlocked{}

	for _, a := range catalog {
		if _, ok := unlocked[a.ID]; ok {
			continue
		}
		if !s.registry.Evaluate(a.CriteriaKey, goals, now) {
			continue
		}

		record, err := s.unlocks.Create(ctx, userID, a.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyUnlocked) {
				// Lost a race with a concurrent unlock; the record exists,
				// so this is not "newly unlocked" for this call.
				s.log.DebugContext(ctx, "achievement unlocked concurrently",
					slog.String("user_id", userID.String()),
					slog.String("achievement_id", a.ID.String()),
				)
				continue
			}
			return nil, fmt.Errorf("unlock achievement %s: %w", a.ID, err)
		}

		newlyUnlocked = append(newlyUnlocked, Unlocked{
			Achievement: a,
			UnlockedAt:  record.UnlockedAt,
		})
	}

	if len(newlyUnlocked) > 0 {
		s.log.InfoContext(ctx, "achievements unlocked",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(newlyUnlocked)),
		)
	}

	return newlyUnlocked, nil
}
