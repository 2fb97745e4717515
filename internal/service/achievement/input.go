package achievement

import (
	"strings"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// CreateAchievementInput holds the parameters for creating a catalog entry.
type CreateAchievementInput struct {
	Name        string
	Description string
	CriteriaKey string
	Icon        string
	Points      int
	Category    *string
	Hidden      bool
}

// Validate checks all fields and collects all errors.
func (i CreateAchievementInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if strings.TrimSpace(i.CriteriaKey) == "" {
		errs = append(errs, domain.FieldError{Field: "criteria_key", Message: "required"})
	}
	if i.Points < 0 {
		errs = append(errs, domain.FieldError{Field: "points", Message: "must be non-negative"})
	}
	if i.Category != nil && len(strings.TrimSpace(*i.Category)) > 50 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAchievementInput holds partial-update parameters for a catalog
// entry. Nil means "don't change".
type UpdateAchievementInput struct {
	AchievementID uuid.UUID
	Name          *string
	Description   *string
	CriteriaKey   *string
	Icon          *string
	Points        *int
	Category      *string
	Hidden        *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateAchievementInput) Validate() error {
	var errs []domain.FieldError

	if i.AchievementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "achievement_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.CriteriaKey == nil &&
		i.Icon == nil && i.Points == nil && i.Category == nil && i.Hidden == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.CriteriaKey != nil && strings.TrimSpace(*i.CriteriaKey) == "" {
		errs = append(errs, domain.FieldError{Field: "criteria_key", Message: "required"})
	}
	if i.Points != nil && *i.Points < 0 {
		errs = append(errs, domain.FieldError{Field: "points", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
