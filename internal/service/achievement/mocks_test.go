package achievement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockAchievementRepo struct {
	ListFunc       func(ctx context.Context, category *string) ([]domain.Achievement, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Achievement, error)
	CreateFunc     func(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.AchievementUpdateParams) (*domain.Achievement, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	CategoriesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockAchievementRepo) List(ctx context.Context, category *string) ([]domain.Achievement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockAchievementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Achievement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockAchievementRepo) Create(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	created := *a
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockAchievementRepo) Update(ctx context.Context, id uuid.UUID, params domain.AchievementUpdateParams) (*domain.Achievement, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, domain.ErrNotFound
}

func (m *mockAchievementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAchievementRepo) Categories(ctx context.Context) ([]string, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return nil, nil
}

type mockUnlockRepo struct {
	CreateFunc               func(ctx context.Context, userID, achievementID uuid.UUID, unlockedAt time.Time) (*domain.UnlockedAchievement, error)
	ListByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error)
	AchievementIDsByUserFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountByUserFunc          func(ctx context.Context, userID uuid.UUID) (int, error)
	TotalPointsByUserFunc    func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (m *mockUnlockRepo) Create(ctx context.Context, userID, achievementID uuid.UUID, unlockedAt time.Time) (*domain.UnlockedAchievement, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, achievementID, unlockedAt)
	}
	return &domain.UnlockedAchievement{
		ID:            uuid.New(),
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    unlockedAt,
		CreatedAt:     unlockedAt,
	}, nil
}

func (m *mockUnlockRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUnlockRepo) AchievementIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.AchievementIDsByUserFunc != nil {
		return m.AchievementIDsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUnlockRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockUnlockRepo) TotalPointsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.TotalPointsByUserFunc != nil {
		return m.TotalPointsByUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockGoalRepo struct {
	ListAllByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
}

func (m *mockGoalRepo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	if m.ListAllByUserFunc != nil {
		return m.ListAllByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockUserRepo struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}
