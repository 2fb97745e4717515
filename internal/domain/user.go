package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application user. Account management lives outside this
// service; only existence and identity are relevant here.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
