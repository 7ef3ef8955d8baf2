package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/validation"
)

type Handler struct {
	svc *goal.Service
}

func NewHandler(svc *goal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createGoalRequest struct {
	Title       string       `json:"title" validate:"required,max=255"`
	Description string       `json:"description"`
	TargetDate  *string      `json:"targetDate"`
	Progress    *int         `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Status      *goal.Status `json:"status" validate:"omitempty,oneof=active completed paused"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var req createGoalRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to create goal")
		return
	}

	targetDate, err := param.Date("targetDate", req.TargetDate)
	if err != nil {
		respond.Error(w, r, err, "Failed to create goal")
		return
	}

	g, err := h.svc.Create(r.Context(), userID, goal.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  targetDate,
		Progress:    req.Progress,
		Status:      req.Status,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to create goal")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(g))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch goals")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(goals))
}

type updateGoalRequest struct {
	Title       *string              `json:"title" validate:"omitempty,max=255"`
	Description *string              `json:"description"`
	TargetDate  param.NullableString `json:"targetDate"`
	Progress    *int                 `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Status      *goal.Status         `json:"status" validate:"omitempty,oneof=active completed paused"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to update goal")
		return
	}

	var req updateGoalRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to update goal")
		return
	}

	targetDate, err := param.Date("targetDate", req.TargetDate.Value)
	if err != nil {
		respond.Error(w, r, err, "Failed to update goal")
		return
	}

	g, err := h.svc.Update(r.Context(), userID, id, goal.Patch{
		Title:           req.Title,
		Description:     req.Description,
		TargetDate:      targetDate,
		ClearTargetDate: req.TargetDate.Cleared(),
		Progress:        req.Progress,
		Status:          req.Status,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to update goal")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(g))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to delete goal")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		respond.Error(w, r, err, "Failed to delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
