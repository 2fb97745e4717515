package domain

import "testing"

func TestGoalStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []GoalStatus{GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}

	invalid := []GoalStatus{"", "active", "DONE", "UNKNOWN"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestGoalPriority_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range []GoalPriority{GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh} {
		if !p.IsValid() {
			t.Errorf("%s should be valid", p)
		}
	}
	for _, p := range []GoalPriority{"", "high", "URGENT"} {
		if p.IsValid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestAchievementStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []AchievementStatus{AchievementStatusUnlocked, AchievementStatusLocked, AchievementStatusHidden} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if AchievementStatus("UNLOCKED").IsValid() {
		t.Error("status values are lowercase on the wire")
	}
}
