package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a single user goal.
//
// TargetDate and CompletionDate are calendar dates (midnight UTC, no time
// component); CreatedAt and UpdatedAt carry full timestamp precision.
// CompletionDate is set only while Status is COMPLETED.
type Goal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Description    *string
	Status         GoalStatus
	Priority       GoalPriority
	TargetDate     *time.Time
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsCompleted reports whether the goal has been completed.
func (g *Goal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

// GoalUpdateParams holds partial-update fields for a goal.
// Nil means "don't change".
type GoalUpdateParams struct {
	Title       *string
	Description *string
	Status      *GoalStatus
	Priority    *GoalPriority
	TargetDate  *time.Time
	// CompletionDate is managed by the service: stamped when Status moves
	// to COMPLETED, cleared when it moves away.
	CompletionDate **time.Time
}

// GoalFilter contains filtering/pagination parameters for goal listings.
type GoalFilter struct {
	Status    *GoalStatus
	Priority  *GoalPriority
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
