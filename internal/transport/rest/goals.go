package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/goaly/goaly-backend/internal/domain"
	"github.com/goaly/goaly-backend/internal/service/goal"
)

const dateLayout = "2006-01-02"

// goalService defines the minimal interface needed by GoalHandler.
type goalService interface {
	CreateGoal(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
	ListGoals(ctx context.Context, input goal.ListGoalsInput) (*goal.GoalPage, error)
	UpdateGoal(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error)
	CompleteGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID uuid.UUID) error
	UpcomingGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
}

// GoalHandler serves goal REST endpoints.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goals")}
}

type createGoalRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}

type updateGoalRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}

type goalResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	TargetDate     *string `json:"targetDate,omitempty"`
	CompletionDate *string `json:"completionDate,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type goalPageResponse struct {
	Goals []goalResponse `json:"goals"`
	Total int            `json:"total"`
}

// Create handles POST /api/v1/users/{userID}/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := goal.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Priority != nil {
		p := domain.GoalPriority(*req.Priority)
		input.Priority = &p
	}
	if req.TargetDate != nil {
		d, err := time.Parse(dateLayout, *req.TargetDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "targetDate must be YYYY-MM-DD")
			return
		}
		input.TargetDate = &d
	}

	created, err := h.svc.CreateGoal(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(created))
}

// List handles GET /api/v1/users/{userID}/goals.
// Query params: status, priority, sortBy, sortOrder, limit, offset.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	q := r.URL.Query()
	input := goal.ListGoalsInput{
		UserID:    userID,
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if v := q.Get("status"); v != "" {
		s := domain.GoalStatus(v)
		input.Status = &s
	}
	if v := q.Get("priority"); v != "" {
		p := domain.GoalPriority(v)
		input.Priority = &p
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		input.Offset = n
	}

	page, err := h.svc.ListGoals(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := goalPageResponse{
		Goals: make([]goalResponse, 0, len(page.Goals)),
		Total: page.Total,
	}
	for i := range page.Goals {
		resp.Goals = append(resp.Goals, toGoalResponse(&page.Goals[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Upcoming handles GET /api/v1/users/{userID}/goals/upcoming.
func (h *GoalHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	goals, err := h.svc.UpcomingGoals(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]goalResponse, 0, len(goals))
	for i := range goals {
		resp = append(resp, toGoalResponse(&goals[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/goals/{goalID}.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathUUID(w, r, "goalID")
	if !ok {
		return
	}

	g, err := h.svc.GetGoal(r.Context(), goalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Update handles PATCH /api/v1/goals/{goalID}.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathUUID(w, r, "goalID")
	if !ok {
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:      goalID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		s := domain.GoalStatus(*req.Status)
		input.Status = &s
	}
	if req.Priority != nil {
		p := domain.GoalPriority(*req.Priority)
		input.Priority = &p
	}
	if req.TargetDate != nil {
		d, err := time.Parse(dateLayout, *req.TargetDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "targetDate must be YYYY-MM-DD")
			return
		}
		input.TargetDate = &d
	}

	updated, err := h.svc.UpdateGoal(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(updated))
}

// Complete handles POST /api/v1/goals/{goalID}/complete.
func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathUUID(w, r, "goalID")
	if !ok {
		return
	}

	g, err := h.svc.CompleteGoal(r.Context(), goalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Delete handles DELETE /api/v1/goals/{goalID}.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathUUID(w, r, "goalID")
	if !ok {
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), goalID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toGoalResponse(g *domain.Goal) goalResponse {
	resp := goalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Title:       g.Title,
		Description: g.Description,
		Status:      g.Status.String(),
		Priority:    g.Priority.String(),
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.Format(time.RFC3339),
	}
	if g.TargetDate != nil {
		d := g.TargetDate.Format(dateLayout)
		resp.TargetDate = &d
	}
	if g.CompletionDate != nil {
		d := g.CompletionDate.Format(dateLayout)
		resp.CompletionDate = &d
	}
	return resp
}

// pathUUID parses a UUID path value, responding 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
