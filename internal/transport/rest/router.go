package rest

import (
	"net/http"
)

// Handlers bundles the handlers the router mounts.
type Handlers struct {
	Goals        *GoalHandler
	Achievements *AchievementHandler
	Health       *HealthHandler
}

// NewRouter builds the HTTP route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/users/{userID}/goals", h.Goals.Create)
	mux.HandleFunc("GET /api/v1/users/{userID}/goals", h.Goals.List)
	mux.HandleFunc("GET /api/v1/users/{userID}/goals/upcoming", h.Goals.Upcoming)
	mux.HandleFunc("GET /api/v1/goals/{goalID}", h.Goals.Get)
	mux.HandleFunc("PATCH /api/v1/goals/{goalID}", h.Goals.Update)
	mux.HandleFunc("POST /api/v1/goals/{goalID}/complete", h.Goals.Complete)
	mux.HandleFunc("DELETE /api/v1/goals/{goalID}", h.Goals.Delete)

	mux.HandleFunc("GET /api/v1/achievements", h.Achievements.ListCatalog)
	mux.HandleFunc("GET /api/v1/achievements/categories", h.Achievements.Categories)
	mux.HandleFunc("GET /api/v1/achievements/{achievementID}", h.Achievements.Get)
	mux.HandleFunc("POST /api/v1/achievements", h.Achievements.Create)
	mux.HandleFunc("PATCH /api/v1/achievements/{achievementID}", h.Achievements.Update)
	mux.HandleFunc("DELETE /api/v1/achievements/{achievementID}", h.Achievements.Delete)

	mux.HandleFunc("GET /api/v1/users/{userID}/achievements", h.Achievements.ListForUser)
	mux.HandleFunc("GET /api/v1/users/{userID}/achievements/unlocked", h.Achievements.ListUnlocked)
	mux.HandleFunc("GET /api/v1/users/{userID}/achievements/stats", h.Achievements.Stats)
	mux.HandleFunc("POST /api/v1/users/{userID}/achievements/check", h.Achievements.Check)
	mux.HandleFunc("POST /api/v1/users/{userID}/achievements/{achievementID}/unlock", h.Achievements.Unlock)

	return mux
}
