package achievement

import (
	"errors"
	"testing"
	"time"

	"github.com/goaly/goaly-backend/internal/domain"
)

func datePtr(t time.Time) *time.Time { return &t }

func activeGoal() domain.Goal {
	return domain.Goal{
		Status:    domain.GoalStatusActive,
		Priority:  domain.GoalPriorityMedium,
		CreatedAt: day(0),
	}
}

func completedGoal(completionOffset int) domain.Goal {
	return domain.Goal{
		Status:         domain.GoalStatusCompleted,
		Priority:       domain.GoalPriorityMedium,
		CreatedAt:      day(0),
		CompletionDate: datePtr(day(completionOffset)),
	}
}

func nCompleted(n int) []domain.Goal {
	goals := make([]domain.Goal, 0, n)
	for i := 0; i < n; i++ {
		goals = append(goals, completedGoal(i))
	}
	return goals
}

func TestRegistry_Evaluate_GoalCounts(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(365)

	if r.Evaluate(KeyFirstSteps, nil, now) {
		t.Error("first_steps should not unlock with zero goals")
	}
	if !r.Evaluate(KeyFirstSteps, []domain.Goal{activeGoal()}, now) {
		t.Error("first_steps should unlock with one goal of any status")
	}

	if r.Evaluate(KeyGoalCrusher, []domain.Goal{activeGoal()}, now) {
		t.Error("goal_crusher should ignore non-completed goals")
	}
	if !r.Evaluate(KeyGoalCrusher, nCompleted(1), now) {
		t.Error("goal_crusher should unlock with one completed goal")
	}

	if r.Evaluate(KeyOverachiever, nCompleted(9), now) {
		t.Error("overachiever should not unlock with nine completions")
	}
	if !r.Evaluate(KeyOverachiever, nCompleted(10), now) {
		t.Error("overachiever should unlock with ten completions")
	}

	if r.Evaluate(KeyCenturyClub, nCompleted(99), now) {
		t.Error("century_club should not unlock with 99 completions")
	}
	if !r.Evaluate(KeyCenturyClub, nCompleted(100), now) {
		t.Error("century_club should unlock with 100 completions")
	}
}

func TestRegistry_Evaluate_PlanningPro(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(365)

	goals := make([]domain.Goal, 0, 5)
	for i := 0; i < 4; i++ {
		g := activeGoal()
		g.TargetDate = datePtr(day(30 + i))
		goals = append(goals, g)
	}
	goals = append(goals, activeGoal())

	if r.Evaluate(KeyPlanningPro, goals, now) {
		t.Error("planning_pro should require five goals with target dates")
	}

	g := activeGoal()
	g.TargetDate = datePtr(day(60))
	goals = append(goals, g)

	if !r.Evaluate(KeyPlanningPro, goals, now) {
		t.Error("planning_pro should unlock with five dated goals")
	}
}

func TestRegistry_Evaluate_PriorityMaster(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(365)

	goals := nCompleted(5)
	if r.Evaluate(KeyPriorityMaster, goals, now) {
		t.Error("priority_master should ignore medium priority completions")
	}

	for i := range goals {
		goals[i].Priority = domain.GoalPriorityHigh
	}
	if !r.Evaluate(KeyPriorityMaster, goals, now) {
		t.Error("priority_master should unlock with five completed HIGH goals")
	}

	goals[4].Status = domain.GoalStatusActive
	if r.Evaluate(KeyPriorityMaster, goals, now) {
		t.Error("priority_master should count only completed goals")
	}
}

func TestRegistry_Evaluate_SpeedDemon(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(365)

	// Created mid-day, completed the same day: completion is recorded at
	// start of day, which is before creation but within the 24h window.
	sameDay := domain.Goal{
		Status:         domain.GoalStatusCompleted,
		CreatedAt:      day(0).Add(15 * time.Hour),
		CompletionDate: datePtr(day(0)),
	}
	if !r.Evaluate(KeySpeedDemon, []domain.Goal{sameDay}, now) {
		t.Error("speed_demon should unlock for same-day completion")
	}

	nextDay := domain.Goal{
		Status:         domain.GoalStatusCompleted,
		CreatedAt:      day(0).Add(15 * time.Hour),
		CompletionDate: datePtr(day(1)),
	}
	if !r.Evaluate(KeySpeedDemon, []domain.Goal{nextDay}, now) {
		t.Error("speed_demon should unlock when completion day starts within 24h of creation")
	}

	twoDaysLater := domain.Goal{
		Status:         domain.GoalStatusCompleted,
		CreatedAt:      day(0).Add(15 * time.Hour),
		CompletionDate: datePtr(day(3)),
	}
	if r.Evaluate(KeySpeedDemon, []domain.Goal{twoDaysLater}, now) {
		t.Error("speed_demon should not unlock for a slow completion")
	}
}

func TestRegistry_Evaluate_EarlyBird(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(365)

	early := completedGoal(5)
	early.TargetDate = datePtr(day(10))
	if !r.Evaluate(KeyEarlyBird, []domain.Goal{early}, now) {
		t.Error("early_bird should unlock for completion before target")
	}

	onTime := completedGoal(10)
	onTime.TargetDate = datePtr(day(10))
	if r.Evaluate(KeyEarlyBird, []domain.Goal{onTime}, now) {
		t.Error("early_bird requires completion strictly before target")
	}

	noTarget := completedGoal(5)
	if r.Evaluate(KeyEarlyBird, []domain.Goal{noTarget}, now) {
		t.Error("early_bird should ignore goals without a target date")
	}
}

func TestRegistry_Evaluate_StreakMaster(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(365)

	// Ten completions three days apart contain a streak of five.
	goals := make([]domain.Goal, 0, 10)
	for i := 0; i < 10; i++ {
		goals = append(goals, completedGoal(3*i))
	}
	if !r.Evaluate(KeyStreakMaster, goals, now) {
		t.Error("streak_master should unlock for regular completions")
	}

	// Four tight completions then a long break never reach five in a row.
	gapped := []domain.Goal{
		completedGoal(0), completedGoal(3), completedGoal(6), completedGoal(9),
		completedGoal(30),
	}
	if r.Evaluate(KeyStreakMaster, gapped, now) {
		t.Error("streak_master should not unlock across a long break")
	}

	// Completed goals without a completion date do not count.
	undated := nCompleted(5)
	undated[2].CompletionDate = nil
	if r.Evaluate(KeyStreakMaster, undated, now) {
		t.Error("streak_master should skip undated completions")
	}
}

func TestRegistry_Evaluate_ConsistencyKing(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := day(28).Add(12 * time.Hour)

	weekly := []domain.Goal{
		completedGoal(26), completedGoal(19), completedGoal(12), completedGoal(5),
	}
	if !r.Evaluate(KeyConsistencyKing, weekly, now) {
		t.Error("consistency_king should unlock with one completion in each of 4 weeks")
	}

	missingWeek := []domain.Goal{
		completedGoal(26), completedGoal(19), completedGoal(5),
	}
	if r.Evaluate(KeyConsistencyKing, missingWeek, now) {
		t.Error("consistency_king should not unlock with a skipped week")
	}
}

func TestRegistry_Evaluate_UnknownKey(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if r.Evaluate("does_not_exist", nCompleted(100), day(365)) {
		t.Error("unknown criteria keys must evaluate to false")
	}
	if r.Known("does_not_exist") {
		t.Error("unknown key reported as known")
	}
	if !r.Known(KeyFirstSteps) {
		t.Error("built-in key not reported as known")
	}
}

func TestNewRegistryWith_RejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria map[string]Criterion
	}{
		{
			name:     "unknown kind",
			criteria: map[string]Criterion{"bad": {Kind: "NO_SUCH_KIND", Threshold: 1}},
		},
		{
			name:     "zero threshold",
			criteria: map[string]Criterion{"bad": {Kind: KindCompletedCount, Threshold: 0}},
		},
		{
			name:     "negative threshold",
			criteria: map[string]Criterion{"bad": {Kind: KindGoalCount, Threshold: -3}},
		},
		{
			name:     "priority kind without priority",
			criteria: map[string]Criterion{"bad": {Kind: KindPriorityCompletedCount, Threshold: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRegistryWith(tt.criteria)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewRegistryWith_ThresholdIgnoredForExistenceKinds(t *testing.T) {
	t.Parallel()

	_, err := NewRegistryWith(map[string]Criterion{
		"fast": {Kind: KindCompletedWithinDay},
		"soon": {Kind: KindCompletedBeforeTarget},
	})
	if err != nil {
		t.Fatalf("existence kinds must not require a threshold: %v", err)
	}
}
