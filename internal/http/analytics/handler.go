package analytics

import (
	"net/http"

	"github.com/MrJamesThe3rd/ascend/internal/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

// Stats serves GET /api/dashboard/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Dashboard(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch dashboard stats")
		return
	}

	respond.JSON(w, http.StatusOK, toStatsResponse(s))
}

// Report serves GET /api/analytics.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	rep, err := h.svc.Report(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch analytics")
		return
	}

	respond.JSON(w, http.StatusOK, toReportResponse(rep))
}
