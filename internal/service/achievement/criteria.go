package achievement

import (
	"fmt"
	"time"

	"github.com/goaly/goaly-backend/internal/domain"
)

// CriterionKind identifies the rule variant a criterion evaluates.
type CriterionKind string

const (
	// KindGoalCount: user has at least Threshold goals of any status.
	KindGoalCount CriterionKind = "GOAL_COUNT"
	// KindCompletedCount: user has at least Threshold completed goals.
	KindCompletedCount CriterionKind = "COMPLETED_COUNT"
	// KindPlannedCount: user has at least Threshold goals with a target date.
	KindPlannedCount CriterionKind = "PLANNED_COUNT"
	// KindPriorityCompletedCount: user has at least Threshold completed
	// goals with the given priority.
	KindPriorityCompletedCount CriterionKind = "PRIORITY_COMPLETED_COUNT"
	// KindCompletedWithinDay: at least one goal was completed within 24
	// hours of its creation (completion date taken at start of day).
	KindCompletedWithinDay CriterionKind = "COMPLETED_WITHIN_DAY"
	// KindCompletedBeforeTarget: at least one goal was completed strictly
	// before its target date.
	KindCompletedBeforeTarget CriterionKind = "COMPLETED_BEFORE_TARGET"
	// KindCompletionStreak: completion dates contain a streak of Threshold
	// goals with at most seven days between consecutive completions.
	KindCompletionStreak CriterionKind = "COMPLETION_STREAK"
	// KindWeeklyConsistency: each of the last Threshold weeks contains at
	// least one completion.
	KindWeeklyConsistency CriterionKind = "WEEKLY_CONSISTENCY"
)

// Criterion is a data-driven unlock rule: a kind plus its parameters.
// Evaluation has no side effects; the same goal snapshot and now always
// produce the same answer.
type Criterion struct {
	Kind      CriterionKind
	Threshold int
	Priority  domain.GoalPriority
}

// usesThreshold reports whether the kind's Threshold parameter is meaningful.
func (c Criterion) usesThreshold() bool {
	switch c.Kind {
	case KindCompletedWithinDay, KindCompletedBeforeTarget:
		return false
	}
	return true
}

func (c Criterion) validate(key string) error {
	switch c.Kind {
	case KindGoalCount, KindCompletedCount, KindPlannedCount,
		KindPriorityCompletedCount, KindCompletedWithinDay,
		KindCompletedBeforeTarget, KindCompletionStreak, KindWeeklyConsistency:
	default:
		return fmt.Errorf("criterion %q: unknown kind %q: %w", key, c.Kind, domain.ErrValidation)
	}
	if c.usesThreshold() && c.Threshold < 1 {
		return fmt.Errorf("criterion %q: threshold must be positive (got %d): %w", key, c.Threshold, domain.ErrValidation)
	}
	if c.Kind == KindPriorityCompletedCount && !c.Priority.IsValid() {
		return fmt.Errorf("criterion %q: invalid priority %q: %w", key, c.Priority, domain.ErrValidation)
	}
	return nil
}

// met evaluates the criterion against a goal snapshot. Goals with missing
// optional fields simply fail the rules that depend on them.
func (c Criterion) met(goals []domain.Goal, now time.Time) bool {
	switch c.Kind {
	case KindGoalCount:
		return len(goals) >= c.Threshold

	case KindCompletedCount:
		return len(completedGoals(goals)) >= c.Threshold

	case KindPlannedCount:
		n := 0
		for _, g := range goals {
			if g.TargetDate != nil {
				n++
			}
		}
		return n >= c.Threshold

	case KindPriorityCompletedCount:
		n := 0
		for _, g := range completedGoals(goals) {
			if g.Priority == c.Priority {
				n++
			}
		}
		return n >= c.Threshold

	case KindCompletedWithinDay:
		for _, g := range completedGoals(goals) {
			if g.CompletionDate == nil {
				continue
			}
			// Completion dates carry no time component, so the comparison
			// uses the start of the completion day against the creation
			// timestamp, same-day completions included.
			if g.CompletionDate.Sub(g.CreatedAt) <= 24*time.Hour {
				return true
			}
		}
		return false

	case KindCompletedBeforeTarget:
		for _, g := range completedGoals(goals) {
			if g.CompletionDate != nil && g.TargetDate != nil && g.CompletionDate.Before(*g.TargetDate) {
				return true
			}
		}
		return false

	case KindCompletionStreak:
		return HasStreak(completionDates(goals), c.Threshold)

	case KindWeeklyConsistency:
		return HasWeeklyConsistency(completionDates(goals), c.Threshold, now)
	}

	return false
}

func completedGoals(goals []domain.Goal) []domain.Goal {
	var out []domain.Goal
	for _, g := range goals {
		if g.Status == domain.GoalStatusCompleted {
			out = append(out, g)
		}
	}
	return out
}

// completionDates returns the dated completions among completed goals,
// preserving input order.
func completionDates(goals []domain.Goal) []time.Time {
	var dates []time.Time
	for _, g := range goals {
		if g.Status == domain.GoalStatusCompleted && g.CompletionDate != nil {
			dates = append(dates, *g.CompletionDate)
		}
	}
	return dates
}

// Registry is an immutable mapping from criteria key to unlock rule.
// It is built once at startup and shared read-only; criteria are bound to
// achievements through the catalog's stable criteria_key column, never
// through display names.
type Registry struct {
	criteria map[string]Criterion
}

// Built-in criteria keys, matching the seeded achievement catalog.
const (
	KeyFirstSteps      = "first_steps"
	KeyGoalCrusher     = "goal_crusher"
	KeyOverachiever    = "overachiever"
	KeyCenturyClub     = "century_club"
	KeyPlanningPro     = "planning_pro"
	KeyPriorityMaster  = "priority_master"
	KeySpeedDemon      = "speed_demon"
	KeyEarlyBird       = "early_bird"
	KeyStreakMaster    = "streak_master"
	KeyConsistencyKing = "consistency_king"
)

func builtinCriteria() map[string]Criterion {
	return map[string]Criterion{
		KeyFirstSteps:      {Kind: KindGoalCount, Threshold: 1},
		KeyGoalCrusher:     {Kind: KindCompletedCount, Threshold: 1},
		KeyOverachiever:    {Kind: KindCompletedCount, Threshold: 10},
		KeyCenturyClub:     {Kind: KindCompletedCount, Threshold: 100},
		KeyPlanningPro:     {Kind: KindPlannedCount, Threshold: 5},
		KeyPriorityMaster:  {Kind: KindPriorityCompletedCount, Threshold: 5, Priority: domain.GoalPriorityHigh},
		KeySpeedDemon:      {Kind: KindCompletedWithinDay},
		KeyEarlyBird:       {Kind: KindCompletedBeforeTarget},
		KeyStreakMaster:    {Kind: KindCompletionStreak, Threshold: 5},
		KeyConsistencyKing: {Kind: KindWeeklyConsistency, Threshold: 4},
	}
}

// NewRegistry builds the registry with the built-in criteria set.
func NewRegistry() *Registry {
	r, err := NewRegistryWith(builtinCriteria())
	if err != nil {
		// The built-in table is fixed at compile time; failing to validate
		// it is a programming error.
		panic(err)
	}
	return r
}

// NewRegistryWith builds a registry from an explicit criteria table,
// rejecting malformed definitions before any evaluation can happen.
func NewRegistryWith(criteria map[string]Criterion) (*Registry, error) {
	m := make(map[string]Criterion, len(criteria))
	for key, c := range criteria {
		if err := c.validate(key); err != nil {
			return nil, err
		}
		m[key] = c
	}
	return &Registry{criteria: m}, nil
}

// Evaluate reports whether the goals satisfy the criterion registered under
// key. Unknown keys evaluate to false.
func (r *Registry) Evaluate(key string, goals []domain.Goal, now time.Time) bool {
	c, ok := r.criteria[key]
	if !ok {
		return false
	}
	return c.met(goals, now)
}

// Known reports whether a criterion is registered under key.
func (r *Registry) Known(key string) bool {
	_, ok := r.criteria[key]
	return ok
}
