package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goaly/goaly-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with generated name and email.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedGoal creates a goal with the given status and priority. CompletionDate
// is set to today for completed goals. Returns a filled domain.Goal.
func SeedGoal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.GoalStatus, priority domain.GoalPriority) domain.Goal {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	g := domain.Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Test Goal " + suffix,
		Status:    status,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == domain.GoalStatusCompleted {
		d := domain.DateOnly(now)
		g.CompletionDate = &d
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO goals (id, user_id, title, status, priority, completion_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.UserID, g.Title, string(g.Status), string(g.Priority), g.CompletionDate, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGoal insert goal: %v", err)
	}

	return g
}

// SeedAchievement creates an achievement with a unique name bound to the
// given criteria key. Returns a filled domain.Achievement.
func SeedAchievement(t *testing.T, pool *pgxpool.Pool, criteriaKey string) domain.Achievement {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Achievement{
		ID:          uuid.New(),
		Name:        "Test Achievement " + suffix,
		Description: "Seeded achievement " + suffix,
		CriteriaKey: criteriaKey,
		Icon:        "🏅",
		Points:      10,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO achievements (id, name, description, criteria_key, icon, points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Name, a.Description, a.CriteriaKey, a.Icon, a.Points, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAchievement insert achievement: %v", err)
	}

	return a
}
