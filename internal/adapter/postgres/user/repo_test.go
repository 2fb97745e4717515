package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/adapter/postgres/testhelper"
)

func TestRepo_Exists(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	exists, err := repo.Exists(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("expected seeded user to exist")
	}

	exists, err = repo.Exists(ctx, uuid.New())
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("expected random id to not exist")
	}
}
