package journal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
	"github.com/MrJamesThe3rd/ascend/internal/validation"
)

type Handler struct {
	svc *journal.Service
}

func NewHandler(svc *journal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createEntryRequest struct {
	Title     string   `json:"title" validate:"required,max=255"`
	Content   string   `json:"content" validate:"required"`
	Mood      *string  `json:"mood" validate:"omitempty,max=50"`
	Tags      []string `json:"tags" validate:"omitempty,dive,max=50"`
	ImageURL  *string  `json:"imageUrl" validate:"omitempty,url"`
	IsPrivate bool     `json:"isPrivate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var req createEntryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to create journal entry")
		return
	}

	e, err := h.svc.Create(r.Context(), userID, journal.CreateParams{
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		ImageURL:  req.ImageURL,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to create journal entry")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch journal entries")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(entries))
}

type updateEntryRequest struct {
	Title     *string   `json:"title" validate:"omitempty,max=255"`
	Content   *string   `json:"content"`
	Mood      *string   `json:"mood" validate:"omitempty,max=50"`
	Tags      *[]string `json:"tags" validate:"omitempty,dive,max=50"`
	ImageURL  *string   `json:"imageUrl" validate:"omitempty,url"`
	IsPrivate *bool     `json:"isPrivate"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to update journal entry")
		return
	}

	var req updateEntryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to update journal entry")
		return
	}

	e, err := h.svc.Update(r.Context(), userID, id, journal.Patch{
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		ImageURL:  req.ImageURL,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to update journal entry")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to delete journal entry")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		respond.Error(w, r, err, "Failed to delete journal entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
