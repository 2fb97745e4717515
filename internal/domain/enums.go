package domain

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusPaused    GoalStatus = "PAUSED"
	GoalStatusCancelled GoalStatus = "CANCELLED"
)

func (s GoalStatus) String() string { return string(s) }

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	}
	return false
}

// GoalPriority represents how important a goal is to its owner.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "LOW"
	GoalPriorityMedium GoalPriority = "MEDIUM"
	GoalPriorityHigh   GoalPriority = "HIGH"
)

func (p GoalPriority) String() string { return string(p) }

func (p GoalPriority) IsValid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	}
	return false
}

// AchievementStatus is the per-user display state of a catalog achievement.
// Hidden achievements report as hidden until unlocked; the flag never
// affects unlock eligibility.
type AchievementStatus string

const (
	AchievementStatusUnlocked AchievementStatus = "unlocked"
	AchievementStatusLocked   AchievementStatus = "locked"
	AchievementStatusHidden   AchievementStatus = "hidden"
)

func (s AchievementStatus) String() string { return string(s) }

func (s AchievementStatus) IsValid() bool {
	switch s {
	case AchievementStatusUnlocked, AchievementStatusLocked, AchievementStatusHidden:
		return true
	}
	return false
}
