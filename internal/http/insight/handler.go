package insight

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/insight"
)

type Handler struct {
	svc *insight.Service
}

func NewHandler(svc *insight.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/latest", h.latest)
	r.Post("/daily-summary", h.dailySummary)
	r.Post("/goal-recommendations", h.goalRecommendations)
}

type insightResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"userId"`
	Type      insight.Type    `json:"type"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Data      json.RawMessage `json:"data"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toResponse(in *insight.Insight) insightResponse {
	data := in.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	return insightResponse{
		ID:        in.ID,
		UserID:    in.UserID,
		Type:      in.Type,
		Title:     in.Title,
		Content:   in.Content,
		Data:      data,
		Date:      param.FormatDate(in.Date),
		CreatedAt: in.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var typ *insight.Type
	if s := r.URL.Query().Get("type"); s != "" {
		typ = new(insight.Type(s))
	}

	insights, err := h.svc.List(r.Context(), userID, typ)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch AI insights")
		return
	}

	resp := make([]insightResponse, len(insights))
	for i, in := range insights {
		resp[i] = toResponse(in)
	}

	respond.JSON(w, http.StatusOK, resp)
}

// latest answers 404 when the user has no insight of the requested type yet.
func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	typ := insight.Type(r.URL.Query().Get("type"))
	if typ == "" {
		typ = insight.TypeDailySummary
	}

	in, err := h.svc.Latest(r.Context(), userID, typ)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch AI insight")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(in))
}

func (h *Handler) dailySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	in, err := h.svc.DailySummary(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to generate daily summary")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(in))
}

func (h *Handler) goalRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	in, err := h.svc.GoalRecommendations(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to generate goal recommendations")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(in))
}
