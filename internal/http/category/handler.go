package category

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/category"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/validation"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.learn)
	r.Get("/suggest", h.suggest)
}

type ruleResponse struct {
	ID        uuid.UUID `json:"id"`
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(rule *category.Rule) ruleResponse {
	return ruleResponse{
		ID:        rule.ID,
		Pattern:   rule.Pattern,
		Category:  rule.Category,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

type suggestResponse struct {
	Category *string `json:"category"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Suggest(r.Context(), userID, r.URL.Query().Get("description"))
	if err != nil {
		respond.Error(w, r, err, "Failed to suggest category")
		return
	}

	resp := suggestResponse{}
	if c != "" {
		resp.Category = &c
	}

	respond.JSON(w, http.StatusOK, resp)
}

type learnRequest struct {
	Pattern  string `json:"pattern" validate:"required,max=255"`
	Category string `json:"category" validate:"required,max=100"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var req learnRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to save category rule")
		return
	}

	rule, err := h.svc.Learn(r.Context(), userID, req.Pattern, req.Category)
	if err != nil {
		respond.Error(w, r, err, "Failed to save category rule")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rule))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	rules, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch category rules")
		return
	}

	resp := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = toResponse(rule)
	}

	respond.JSON(w, http.StatusOK, resp)
}
