// Package achievement implements the achievement catalog repository using
// PostgreSQL.
package achievement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/goaly/goaly-backend/internal/adapter/postgres"
	"github.com/goaly/goaly-backend/internal/domain"
)

// Repo provides achievement catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new achievement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const achievementColumns = `id, name, description, criteria_key, icon, points, category, hidden, created_at, updated_at`

const listSQL = `
SELECT ` + achievementColumns + `
FROM achievements
ORDER BY created_at`

const listByCategorySQL = `
SELECT ` + achievementColumns + `
FROM achievements
WHERE category = $1
ORDER BY created_at`

const getByIDSQL = `
SELECT ` + achievementColumns + `
FROM achievements
WHERE id = $1`

const createSQL = `
INSERT INTO achievements (name, description, criteria_key, icon, points, category, hidden)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + achievementColumns

const updateSQL = `
UPDATE achievements
SET name = $2, description = $3, criteria_key = $4, icon = $5,
    points = $6, category = $7, hidden = $8, updated_at = now()
WHERE id = $1
RETURNING ` + achievementColumns

const deleteSQL = `DELETE FROM achievements WHERE id = $1`

const categoriesSQL = `
SELECT DISTINCT category
FROM achievements
WHERE category IS NOT NULL
ORDER BY category`

// List returns the achievement catalog in creation order, optionally
// filtered by category.
func (r *Repo) List(ctx context.Context, category *string) ([]domain.Achievement, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category != nil {
		rows, err = r.db.Query(ctx, listByCategorySQL, *category)
	} else {
		rows, err = r.db.Query(ctx, listSQL)
	}
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	return scanAchievements(rows)
}

// GetByID returns an achievement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Achievement, error) {
	a, err := scanAchievement(r.db.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "achievement", id)
	}
	return a, nil
}

// Create inserts a new achievement. A name collision surfaces as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	created, err := scanAchievement(r.db.QueryRow(ctx, createSQL,
		a.Name, a.Description, a.CriteriaKey, a.Icon, a.Points, a.Category, a.Hidden,
	))
	if err != nil {
		return nil, postgres.MapError(err, "achievement", a.ID)
	}
	return created, nil
}

// Update applies partial-update params over the current row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.AchievementUpdateParams) (*domain.Achievement, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}
	description := current.Description
	if params.Description != nil {
		description = *params.Description
	}
	criteriaKey := current.CriteriaKey
	if params.CriteriaKey != nil {
		criteriaKey = *params.CriteriaKey
	}
	icon := current.Icon
	if params.Icon != nil {
		icon = *params.Icon
	}
	points := current.Points
	if params.Points != nil {
		points = *params.Points
	}
	category := current.Category
	if params.Category != nil {
		category = params.Category
	}
	hidden := current.Hidden
	if params.Hidden != nil {
		hidden = *params.Hidden
	}

	updated, err := scanAchievement(r.db.QueryRow(ctx, updateSQL,
		id, name, description, criteriaKey, icon, points, category, hidden,
	))
	if err != nil {
		return nil, postgres.MapError(err, "achievement", id)
	}
	return updated, nil
}

// Delete removes an achievement and, via ON DELETE CASCADE, its unlock
// records. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "achievement", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("achievement %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Categories returns the distinct non-null categories in the catalog.
func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, categoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func scanAchievement(row pgx.Row) (*domain.Achievement, error) {
	var a domain.Achievement
	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &a.CriteriaKey, &a.Icon,
		&a.Points, &a.Category, &a.Hidden, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAchievements(rows pgx.Rows) ([]domain.Achievement, error) {
	achievements := []domain.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return achievements, nil
}
