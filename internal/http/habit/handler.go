package habit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/validation"
)

type Handler struct {
	svc *habit.Service
}

func NewHandler(svc *habit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// CompletionRoutes serves /api/habit-completions.
func (h *Handler) CompletionRoutes(r chi.Router) {
	r.Get("/", h.listCompletions)
	r.Post("/", h.createCompletion)
	r.Delete("/{id}", h.deleteCompletion)
}

type createHabitRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Description  string  `json:"description"`
	TargetAmount *int    `json:"targetAmount" validate:"omitempty,gt=0"`
	Unit         *string `json:"unit" validate:"omitempty,max=50"`
	Icon         *string `json:"icon" validate:"omitempty,max=50"`
	Color        *string `json:"color" validate:"omitempty,max=50"`
	IsActive     *bool   `json:"isActive"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var req createHabitRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to create habit")
		return
	}

	hb, err := h.svc.Create(r.Context(), userID, habit.CreateParams{
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Unit:         req.Unit,
		Icon:         req.Icon,
		Color:        req.Color,
		IsActive:     req.IsActive,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to create habit")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(hb))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	habits, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch habits")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(habits))
}

type updateHabitRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	TargetAmount *int    `json:"targetAmount" validate:"omitempty,gt=0"`
	Unit         *string `json:"unit" validate:"omitempty,max=50"`
	Icon         *string `json:"icon" validate:"omitempty,max=50"`
	Color        *string `json:"color" validate:"omitempty,max=50"`
	IsActive     *bool   `json:"isActive"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to update habit")
		return
	}

	var req updateHabitRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to update habit")
		return
	}

	hb, err := h.svc.Update(r.Context(), userID, id, habit.Patch{
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Unit:         req.Unit,
		Icon:         req.Icon,
		Color:        req.Color,
		IsActive:     req.IsActive,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to update habit")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(hb))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to delete habit")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		respond.Error(w, r, err, "Failed to delete habit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createCompletionRequest struct {
	HabitID       uuid.UUID `json:"habitId" validate:"required"`
	CompletedDate string    `json:"completedDate" validate:"required"`
	Amount        *int      `json:"amount" validate:"omitempty,gt=0"`
	Notes         string    `json:"notes"`
}

func (h *Handler) createCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var req createCompletionRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to create habit completion")
		return
	}

	completedDate, err := param.ParseDate(req.CompletedDate)
	if err != nil {
		respond.Error(w, r, apperr.NewValidationError("completedDate", "must be a date in YYYY-MM-DD format"),
			"Failed to create habit completion")

		return
	}

	c, err := h.svc.CreateCompletion(r.Context(), userID, habit.CreateCompletionParams{
		HabitID:       req.HabitID,
		CompletedDate: completedDate,
		Amount:        req.Amount,
		Notes:         req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to create habit completion")
		return
	}

	respond.JSON(w, http.StatusCreated, toCompletionResponse(c))
}

func (h *Handler) listCompletions(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	filter, err := completionFilter(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch habit completions")
		return
	}

	completions, err := h.svc.ListCompletions(r.Context(), userID, filter)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch habit completions")
		return
	}

	respond.JSON(w, http.StatusOK, toCompletionResponseList(completions))
}

func completionFilter(r *http.Request) (habit.CompletionFilter, error) {
	var (
		filter habit.CompletionFilter
		err    error
	)

	if s := r.URL.Query().Get("habitId"); s != "" {
		id, parseErr := uuid.Parse(s)
		if parseErr != nil {
			return filter, apperr.NewValidationError("habitId", "must be a valid UUID")
		}

		filter.HabitID = &id
	}

	if filter.StartDate, err = param.QueryDate(r, "startDate"); err != nil {
		return filter, err
	}

	if filter.EndDate, err = param.QueryDate(r, "endDate"); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *Handler) deleteCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to delete habit completion")
		return
	}

	if err := h.svc.DeleteCompletion(r.Context(), userID, id); err != nil {
		respond.Error(w, r, err, "Failed to delete habit completion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
