package goal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
	maxListLimit         = 100
	defaultListLimit     = 20
)

// CreateGoalInput holds the parameters for creating a goal.
type CreateGoalInput struct {
	UserID      uuid.UUID
	Title       string
	Description *string
	Priority    *domain.GoalPriority
	TargetDate  *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGoalInput holds partial-update parameters for a goal.
// Nil means "don't change".
type UpdateGoalInput struct {
	GoalID      uuid.UUID
	Title       *string
	Description *string
	Status      *domain.GoalStatus
	Priority    *domain.GoalPriority
	TargetDate  *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Status == nil &&
		i.Priority == nil && i.TargetDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of ACTIVE, COMPLETED, PAUSED, CANCELLED"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListGoalsInput holds listing parameters for a user's goals.
type ListGoalsInput struct {
	UserID    uuid.UUID
	Status    *domain.GoalStatus
	Priority  *domain.GoalPriority
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListGoalsInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of ACTIVE, COMPLETED, PAUSED, CANCELLED"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	switch i.SortBy {
	case "", "created_at", "updated_at", "target_date", "title", "priority":
	default:
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "unsupported sort field"})
	}
	switch strings.ToLower(i.SortOrder) {
	case "", "asc", "desc":
	default:
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter converts the input to a repository filter, applying defaults.
func (i ListGoalsInput) filter() domain.GoalFilter {
	f := domain.GoalFilter{
		Status:    i.Status,
		Priority:  i.Priority,
		SortBy:    i.SortBy,
		SortOrder: strings.ToLower(i.SortOrder),
		Limit:     i.Limit,
		Offset:    i.Offset,
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
	if f.Limit == 0 {
		f.Limit = defaultListLimit
	}
	return f
}
