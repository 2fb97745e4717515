// Package goal implements the Goal repository using PostgreSQL.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/goaly/goaly-backend/internal/adapter/postgres"
	"github.com/goaly/goaly-backend/internal/domain"
)

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const goalColumns = `id, user_id, title, description, status, priority, target_date, completion_date, created_at, updated_at`

const createSQL = `
INSERT INTO goals (user_id, title, description, status, priority, target_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + goalColumns

const getByIDSQL = `
SELECT ` + goalColumns + `
FROM goals
WHERE id = $1`

const updateSQL = `
UPDATE goals
SET title = $2, description = $3, status = $4, priority = $5,
    target_date = $6, completion_date = $7, updated_at = now()
WHERE id = $1
RETURNING ` + goalColumns

const deleteSQL = `DELETE FROM goals WHERE id = $1`

const listAllByUserSQL = `
SELECT ` + goalColumns + `
FROM goals
WHERE user_id = $1
ORDER BY created_at`

const listUpcomingSQL = `
SELECT ` + goalColumns + `
FROM goals
WHERE user_id = $1
  AND status = $2
  AND target_date IS NOT NULL
  AND target_date >= $3
  AND target_date <= $4
ORDER BY target_date`

const countByUserSQL = `SELECT COUNT(*) FROM goals WHERE user_id = $1`

// psql builds squirrel queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Create inserts a new goal and returns the persisted row.
// Returns domain.ErrNotFound if the referenced user does not exist.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	row := r.db.QueryRow(ctx, createSQL,
		g.UserID, g.Title, g.Description, string(g.Status), string(g.Priority), g.TargetDate,
	)

	created, err := scanGoal(row)
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.UserID)
	}
	return created, nil
}

// GetByID returns a goal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	g, err := scanGoal(r.db.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	return g, nil
}

// Update applies partial-update params. It reads the current row first and
// writes the merged result, returning domain.ErrNotFound if the goal is gone.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if params.Title != nil {
		title = *params.Title
	}
	description := current.Description
	if params.Description != nil {
		description = params.Description
	}
	status := current.Status
	if params.Status != nil {
		status = *params.Status
	}
	priority := current.Priority
	if params.Priority != nil {
		priority = *params.Priority
	}
	targetDate := current.TargetDate
	if params.TargetDate != nil {
		targetDate = params.TargetDate
	}
	completionDate := current.CompletionDate
	if params.CompletionDate != nil {
		completionDate = *params.CompletionDate
	}

	updated, err := scanGoal(r.db.QueryRow(ctx, updateSQL,
		id, title, description, string(status), string(priority), targetDate, completionDate,
	))
	if err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	return updated, nil
}

// Delete removes a goal. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "goal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListAllByUser returns every goal of a user in creation order. This is the
// snapshot the achievement engine evaluates; it is deliberately unfiltered.
// Returns an empty slice (not nil) when the user has no goals.
func (r *Repo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	rows, err := r.db.Query(ctx, listAllByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	return scanGoals(rows)
}

// ListByUser returns one page of a user's goals plus the unpaginated total.
// The filter query is built dynamically; sort column and order are
// whitelisted by the service layer.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.GoalFilter) ([]domain.Goal, int, error) {
	where := sq.Eq{"user_id": userID}
	if filter.Status != nil {
		where["status"] = string(*filter.Status)
	}
	if filter.Priority != nil {
		where["priority"] = string(*filter.Priority)
	}

	order := filter.SortBy
	if strings.EqualFold(filter.SortOrder, "desc") {
		order += " DESC"
	} else {
		order += " ASC"
	}

	query := psql.Select(strings.Split(goalColumns, ", ")...).
		From("goals").
		Where(where).
		OrderBy(order).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals, err := scanGoals(rows)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("goals").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count goals: %w", err)
	}

	return goals, total, nil
}

// ListUpcoming returns the user's active goals with a target date in
// [from, to], ordered by target date.
func (r *Repo) ListUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Goal, error) {
	rows, err := r.db.Query(ctx, listUpcomingSQL, userID, string(domain.GoalStatusActive), from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming goals: %w", err)
	}
	defer rows.Close()

	return scanGoals(rows)
}

// CountByUser returns how many goals the user holds, regardless of status.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count goals: %w", err)
	}
	return count, nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		g        domain.Goal
		status   string
		priority string
	)
	err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &status, &priority,
		&g.TargetDate, &g.CompletionDate, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Status = domain.GoalStatus(status)
	g.Priority = domain.GoalPriority(priority)
	return &g, nil
}

func scanGoals(rows pgx.Rows) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}
