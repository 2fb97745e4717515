package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
	"github.com/goaly/goaly-backend/internal/service/achievement"
)

// achievementService defines the minimal interface needed by
// AchievementHandler.
type achievementService interface {
	ListCatalog(ctx context.Context, category *string) ([]domain.Achievement, error)
	GetAchievement(ctx context.Context, id uuid.UUID) (*domain.Achievement, error)
	Categories(ctx context.Context) ([]string, error)
	CreateAchievement(ctx context.Context, input achievement.CreateAchievementInput) (*domain.Achievement, error)
	UpdateAchievement(ctx context.Context, input achievement.UpdateAchievementInput) (*domain.Achievement, error)
	DeleteAchievement(ctx context.Context, id uuid.UUID) error
	ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]achievement.UserAchievement, error)
	ListUserUnlocked(ctx context.Context, userID uuid.UUID) ([]achievement.Unlocked, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*achievement.Stats, error)
	CheckAndUnlock(ctx context.Context, userID uuid.UUID) ([]achievement.Unlocked, error)
	Unlock(ctx context.Context, userID, achievementID uuid.UUID) (*achievement.Unlocked, error)
}

// AchievementHandler serves achievement REST endpoints.
type AchievementHandler struct {
	svc achievementService
	log *slog.Logger
}

// NewAchievementHandler creates an AchievementHandler.
func NewAchievementHandler(svc achievementService, logger *slog.Logger) *AchievementHandler {
	return &AchievementHandler{svc: svc, log: logger.With("handler", "achievements")}
}

type createAchievementRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CriteriaKey string  `json:"criteriaKey"`
	Icon        string  `json:"icon"`
	Points      int     `json:"points"`
	Category    *string `json:"category,omitempty"`
	Hidden      bool    `json:"hidden"`
}

type updateAchievementRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CriteriaKey *string `json:"criteriaKey,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Points      *int    `json:"points,omitempty"`
	Category    *string `json:"category,omitempty"`
	Hidden      *bool   `json:"hidden,omitempty"`
}

type achievementResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CriteriaKey string  `json:"criteriaKey"`
	Icon        string  `json:"icon"`
	Points      int     `json:"points"`
	Category    *string `json:"category,omitempty"`
	Hidden      bool    `json:"hidden"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type userAchievementResponse struct {
	Achievement achievementResponse `json:"achievement"`
	Status      string              `json:"status"`
	UnlockedAt  *string             `json:"unlockedAt,omitempty"`
}

type unlockedResponse struct {
	Achievement achievementResponse `json:"achievement"`
	UnlockedAt  string              `json:"unlockedAt"`
}

type statsResponse struct {
	TotalAchievements    int            `json:"totalAchievements"`
	UnlockedCount        int            `json:"unlockedCount"`
	LockedCount          int            `json:"lockedCount"`
	TotalPoints          int            `json:"totalPoints"`
	CompletionPercentage float64        `json:"completionPercentage"`
	CategoryBreakdown    map[string]int `json:"categoryBreakdown"`
}

// ListCatalog handles GET /api/v1/achievements.
// Query params: category.
func (h *AchievementHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	var category *string
	if v := r.URL.Query().Get("category"); v != "" {
		category = &v
	}

	achievements, err := h.svc.ListCatalog(r.Context(), category)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]achievementResponse, 0, len(achievements))
	for i := range achievements {
		resp = append(resp, toAchievementResponse(&achievements[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/achievements/{achievementID}.
func (h *AchievementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "achievementID")
	if !ok {
		return
	}

	a, err := h.svc.GetAchievement(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAchievementResponse(a))
}

// Categories handles GET /api/v1/achievements/categories.
func (h *AchievementHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /api/v1/achievements.
func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateAchievement(r.Context(), achievement.CreateAchievementInput{
		Name:        req.Name,
		Description: req.Description,
		CriteriaKey: req.CriteriaKey,
		Icon:        req.Icon,
		Points:      req.Points,
		Category:    req.Category,
		Hidden:      req.Hidden,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAchievementResponse(created))
}

// Update handles PATCH /api/v1/achievements/{achievementID}.
func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "achievementID")
	if !ok {
		return
	}

	var req updateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateAchievement(r.Context(), achievement.UpdateAchievementInput{
		AchievementID: id,
		Name:          req.Name,
		Description:   req.Description,
		CriteriaKey:   req.CriteriaKey,
		Icon:          req.Icon,
		Points:        req.Points,
		Category:      req.Category,
		Hidden:        req.Hidden,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAchievementResponse(updated))
}

// Delete handles DELETE /api/v1/achievements/{achievementID}.
func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "achievementID")
	if !ok {
		return
	}

	if err := h.svc.DeleteAchievement(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListForUser handles GET /api/v1/users/{userID}/achievements.
func (h *AchievementHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	annotated, err := h.svc.ListUserAchievements(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]userAchievementResponse, 0, len(annotated))
	for _, ua := range annotated {
		item := userAchievementResponse{
			Achievement: toAchievementResponse(&ua.Achievement),
			Status:      ua.Status.String(),
		}
		if ua.UnlockedAt != nil {
			ts := ua.UnlockedAt.Format(time.RFC3339)
			item.UnlockedAt = &ts
		}
		resp = append(resp, item)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListUnlocked handles GET /api/v1/users/{userID}/achievements/unlocked.
func (h *AchievementHandler) ListUnlocked(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	unlocked, err := h.svc.ListUserUnlocked(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUnlockedResponses(unlocked))
}

// Stats handles GET /api/v1/users/{userID}/achievements/stats.
func (h *AchievementHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	stats, err := h.svc.UserStats(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalAchievements:    stats.TotalAchievements,
		UnlockedCount:        stats.UnlockedCount,
		LockedCount:          stats.LockedCount,
		TotalPoints:          stats.TotalPoints,
		CompletionPercentage: stats.CompletionPercentage,
		CategoryBreakdown:    stats.CategoryBreakdown,
	})
}

// Check handles POST /api/v1/users/{userID}/achievements/check.
// It evaluates all criteria against the user's goals and returns the
// achievements unlocked by this call.
func (h *AchievementHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	newlyUnlocked, err := h.svc.CheckAndUnlock(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUnlockedResponses(newlyUnlocked))
}

// Unlock handles POST /api/v1/users/{userID}/achievements/{achievementID}/unlock.
func (h *AchievementHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	achievementID, ok := pathUUID(w, r, "achievementID")
	if !ok {
		return
	}

	unlocked, err := h.svc.Unlock(r.Context(), userID, achievementID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, unlockedResponse{
		Achievement: toAchievementResponse(&unlocked.Achievement),
		UnlockedAt:  unlocked.UnlockedAt.Format(time.RFC3339),
	})
}

func toAchievementResponse(a *domain.Achievement) achievementResponse {
	return achievementResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		CriteriaKey: a.CriteriaKey,
		Icon:        a.Icon,
		Points:      a.Points,
		Category:    a.Category,
		Hidden:      a.Hidden,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func toUnlockedResponses(unlocked []achievement.Unlocked) []unlockedResponse {
	resp := make([]unlockedResponse, 0, len(unlocked))
	for _, u := range unlocked {
		resp = append(resp, unlockedResponse{
			Achievement: toAchievementResponse(&u.Achievement),
			UnlockedAt:  u.UnlockedAt.Format(time.RFC3339),
		})
	}
	return resp
}
