package goal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/config"
	"github.com/goaly/goaly-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type goalRepo interface {
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	Update(ctx context.Context, id uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.GoalFilter) ([]domain.Goal, int, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Goal, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements goal management.
type Service struct {
	goals goalRepo
	users userRepo
	cfg   config.GoalsConfig
	log   *slog.Logger

	now func() time.Time
}

// NewService creates a new Goal service.
func NewService(log *slog.Logger, goals goalRepo, users userRepo, cfg config.GoalsConfig) *Service {
	return &Service{
		goals: goals,
		users: users,
		cfg:   cfg,
		log:   log.With("service", "goal"),
		now:   time.Now,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
