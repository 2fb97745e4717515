package unlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/adapter/postgres/testhelper"
	"github.com/goaly/goaly-backend/internal/domain"
)

func TestRepo_Create_And_Duplicate(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	ach := testhelper.SeedAchievement(t, pool, "first_steps")

	unlockedAt := time.Now().UTC().Truncate(time.Microsecond)

	created, err := repo.Create(ctx, user.ID, ach.ID, unlockedAt)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if created.UserID != user.ID || created.AchievementID != ach.ID {
		t.Errorf("unexpected unlock record: %+v", created)
	}
	if !created.UnlockedAt.Equal(unlockedAt) {
		t.Errorf("expected unlocked_at %v, got %v", unlockedAt, created.UnlockedAt)
	}

	_, err = repo.Create(ctx, user.ID, ach.ID, unlockedAt)
	if !errors.Is(err, domain.ErrAlreadyUnlocked) {
		t.Fatalf("expected ErrAlreadyUnlocked on duplicate, got %v", err)
	}
}

func TestRepo_Create_UnknownUser(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	ach := testhelper.SeedAchievement(t, pool, "goal_crusher")

	_, err := repo.Create(ctx, uuid.New(), ach.ID, time.Now())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestRepo_ListByUser_NewestFirst(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	first := testhelper.SeedAchievement(t, pool, "first_steps")
	second := testhelper.SeedAchievement(t, pool, "goal_crusher")

	base := time.Now().UTC().Truncate(time.Microsecond)
	if _, err := repo.Create(ctx, user.ID, first.ID, base.Add(-time.Hour)); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := repo.Create(ctx, user.ID, second.ID, base); err != nil {
		t.Fatalf("create second: %v", err)
	}

	unlocks, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(unlocks) != 2 {
		t.Fatalf("expected 2 unlocks, got %d", len(unlocks))
	}
	if unlocks[0].AchievementID != second.ID {
		t.Errorf("expected newest unlock first, got %v", unlocks[0].AchievementID)
	}
}

func TestRepo_AchievementIDsByUser(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	ach := testhelper.SeedAchievement(t, pool, "overachiever")

	if _, err := repo.Create(ctx, user.ID, ach.ID, time.Now()); err != nil {
		t.Fatalf("create: %v", err)
	}

	ids, err := repo.AchievementIDsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list ids: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 unlocked achievement, got %d", len(ids))
	}
	if ids[0] != ach.ID {
		t.Errorf("expected achievement %v in unlocked set, got %v", ach.ID, ids[0])
	}
}

func TestRepo_CountAndPoints(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	count, err := repo.CountByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 unlocks, got %d", count)
	}

	points, err := repo.TotalPointsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	if points != 0 {
		t.Errorf("expected 0 points for user with no unlocks, got %d", points)
	}

	first := testhelper.SeedAchievement(t, pool, "first_steps")
	second := testhelper.SeedAchievement(t, pool, "goal_crusher")
	if _, err := repo.Create(ctx, user.ID, first.ID, time.Now()); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := repo.Create(ctx, user.ID, second.ID, time.Now()); err != nil {
		t.Fatalf("create second: %v", err)
	}

	count, err = repo.CountByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 unlocks, got %d", count)
	}

	points, err = repo.TotalPointsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	if points != first.Points+second.Points {
		t.Errorf("expected %d points, got %d", first.Points+second.Points, points)
	}
}
