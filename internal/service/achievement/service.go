package achievement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type achievementRepo interface {
	List(ctx context.Context, category *string) ([]domain.Achievement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Achievement, error)
	Create(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AchievementUpdateParams) (*domain.Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}

type unlockRepo interface {
	Create(ctx context.Context, userID, achievementID uuid.UUID, unlockedAt time.Time) (*domain.UnlockedAchievement, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error)
	AchievementIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	TotalPointsByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type goalRepo interface {
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the achievement catalog and the unlock engine.
// Evaluation is synchronous and single-pass; the only shared state is the
// immutable criteria registry, so concurrent calls for different users are
// independent.
type Service struct {
	achievements achievementRepo
	unlocks      unlockRepo
	goals        goalRepo
	users        userRepo
	registry     *Registry
	log          *slog.Logger

	// now is swapped in tests to pin the weekly-consistency window.
	now func() time.Time
}

// NewService creates a new Achievement service.
func NewService(
	log *slog.Logger,
	achievements achievementRepo,
	unlocks unlockRepo,
	goals goalRepo,
	users userRepo,
	registry *Registry,
) *Service {
	return &Service{
		achievements: achievements,
		unlocks:      unlocks,
		goals:        goals,
		users:        users,
		registry:     registry,
		log:          log.With("service", "achievement"),
		now:          time.Now,
	}
}
