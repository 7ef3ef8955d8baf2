package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ascend/internal/export"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

type Handler struct {
	svc *export.Service
	now func() time.Time
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions", h.transactions)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var (
		filter transaction.ListFilter
		err    error
	)

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(transaction.Type(s))
	}

	if filter.StartDate, err = param.QueryDate(r, "startDate"); err != nil {
		respond.Error(w, r, err, "Failed to export transactions")
		return
	}

	if filter.EndDate, err = param.QueryDate(r, "endDate"); err != nil {
		respond.Error(w, r, err, "Failed to export transactions")
		return
	}

	txs, err := h.svc.Export(r.Context(), userID, filter)
	if err != nil {
		respond.Error(w, r, err, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(filter, h.now())))

	if err := export.WriteCSV(w, txs); err != nil {
		slog.ErrorContext(r.Context(), "failed to write export", "error", err, "user_id", userID)
	}
}
