// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/adapter/postgres"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const existsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

// Exists reports whether a user with the given ID exists. Users are managed
// outside this system; an existence read is the only access services need.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
