package domain

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a catalog entry users can unlock.
//
// CriteriaKey is the stable machine key that binds the row to its unlock
// rule; Name is display text and may be renamed freely without affecting
// evaluation.
type Achievement struct {
	ID          uuid.UUID
	Name        string
	Description string
	CriteriaKey string
	Icon        string
	Points      int
	Category    *string
	Hidden      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AchievementUpdateParams holds partial-update fields for an achievement.
// Nil means "don't change".
type AchievementUpdateParams struct {
	Name        *string
	Description *string
	CriteriaKey *string
	Icon        *string
	Points      *int
	Category    *string
	Hidden      *bool
}

// UnlockedAchievement records that a user unlocked an achievement.
// At most one record exists per (user, achievement) pair; the database
// enforces this with a unique constraint.
type UnlockedAchievement struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AchievementID uuid.UUID
	UnlockedAt    time.Time
	CreatedAt     time.Time
}
