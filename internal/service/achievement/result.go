package achievement

import (
	"time"

	"github.com/goaly/goaly-backend/internal/domain"
)

// Unlocked pairs a newly unlocked achievement with its unlock timestamp.
type Unlocked struct {
	Achievement domain.Achievement
	UnlockedAt  time.Time
}

// UserAchievement is one catalog entry annotated with the user's progress.
type UserAchievement struct {
	Achievement domain.Achievement
	Status      domain.AchievementStatus
	UnlockedAt  *time.Time
}

// Stats aggregates a user's achievement progress.
type Stats struct {
	TotalAchievements    int
	UnlockedCount        int
	LockedCount          int
	TotalPoints          int
	CompletionPercentage float64
	CategoryBreakdown    map[string]int
}
