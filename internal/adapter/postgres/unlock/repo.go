// Package unlock implements the user achievement unlock repository using
// PostgreSQL.
package unlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/adapter/postgres"
	"github.com/goaly/goaly-backend/internal/domain"
)

// Repo provides unlock record persistence backed by PostgreSQL. The
// UNIQUE(user_id, achievement_id) constraint on the table is the
// authoritative guard against duplicate unlocks.
type Repo struct {
	db postgres.Querier
}

// New creates a new unlock repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const unlockColumns = `id, user_id, achievement_id, unlocked_at, created_at`

const createSQL = `
INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
VALUES ($1, $2, $3)
RETURNING ` + unlockColumns

const listByUserSQL = `
SELECT ` + unlockColumns + `
FROM user_achievements
WHERE user_id = $1
ORDER BY unlocked_at DESC`

const achievementIDsByUserSQL = `
SELECT achievement_id
FROM user_achievements
WHERE user_id = $1`

const countByUserSQL = `
SELECT COUNT(*)
FROM user_achievements
WHERE user_id = $1`

const totalPointsByUserSQL = `
SELECT COALESCE(SUM(a.points), 0)
FROM user_achievements ua
JOIN achievements a ON a.id = ua.achievement_id
WHERE ua.user_id = $1`

// Create inserts an unlock record. A duplicate for the same user and
// achievement surfaces as domain.ErrAlreadyUnlocked, including when the
// duplicate was inserted by a concurrent request.
func (r *Repo) Create(ctx context.Context, userID, achievementID uuid.UUID, unlockedAt time.Time) (*domain.UnlockedAchievement, error) {
	var u domain.UnlockedAchievement
	err := r.db.QueryRow(ctx, createSQL, userID, achievementID, unlockedAt).Scan(
		&u.ID, &u.UserID, &u.AchievementID, &u.UnlockedAt, &u.CreatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("achievement %s for user %s: %w", achievementID, userID, domain.ErrAlreadyUnlocked)
		}
		return nil, postgres.MapError(err, "unlock", achievementID)
	}
	return &u, nil
}

// ListByUser returns the user's unlock records, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error) {
	rows, err := r.db.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	defer rows.Close()

	unlocks := []domain.UnlockedAchievement{}
	for rows.Next() {
		var u domain.UnlockedAchievement
		if err := rows.Scan(&u.ID, &u.UserID, &u.AchievementID, &u.UnlockedAt, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unlock: %w", err)
		}
		unlocks = append(unlocks, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unlocks: %w", err)
	}
	return unlocks, nil
}

// AchievementIDsByUser returns the achievement IDs the user has unlocked.
func (r *Repo) AchievementIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, achievementIDsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocked achievement ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan achievement id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievement ids: %w", err)
	}
	return ids, nil
}

// CountByUser returns how many achievements the user has unlocked.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unlocks: %w", err)
	}
	return count, nil
}

// TotalPointsByUser returns the sum of points over the user's unlocked
// achievements.
func (r *Repo) TotalPointsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var points int
	if err := r.db.QueryRow(ctx, totalPointsByUserSQL, userID).Scan(&points); err != nil {
		return 0, fmt.Errorf("sum unlock points: %w", err)
	}
	return points, nil
}
