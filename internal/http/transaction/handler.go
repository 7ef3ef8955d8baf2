package transaction

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/importer"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
	"github.com/MrJamesThe3rd/ascend/internal/validation"
)

const maxUploadSize = 10 << 20

type Handler struct {
	svc       *transaction.Service
	importSvc *importer.Service
}

func NewHandler(svc *transaction.Service, importSvc *importer.Service) *Handler {
	return &Handler{
		svc:       svc,
		importSvc: importSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.importFile)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Type        transaction.Type `json:"type" validate:"required,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Date        string           `json:"date" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	var req createTransactionRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to create transaction")
		return
	}

	date, err := param.Date("date", &req.Date)
	if err != nil {
		respond.Error(w, r, err, "Failed to create transaction")
		return
	}

	tx, err := h.svc.Create(r.Context(), userID, transaction.CreateParams{
		Type:        req.Type,
		Amount:      *req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        *date,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to create transaction")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	filter, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch transactions")
		return
	}

	txs, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		respond.Error(w, r, err, "Failed to fetch transactions")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func listFilter(r *http.Request) (transaction.ListFilter, error) {
	var (
		filter transaction.ListFilter
		err    error
	)

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(transaction.Type(s))
	}

	if filter.StartDate, err = param.QueryDate(r, "startDate"); err != nil {
		return filter, err
	}

	if filter.EndDate, err = param.QueryDate(r, "endDate"); err != nil {
		return filter, err
	}

	return filter, nil
}

type updateTransactionRequest struct {
	Type        *transaction.Type `json:"type" validate:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal  `json:"amount"`
	Description *string           `json:"description"`
	Category    *string           `json:"category" validate:"omitempty,max=100"`
	Date        *string           `json:"date"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to update transaction")
		return
	}

	var req updateTransactionRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, r, err, "Failed to update transaction")
		return
	}

	date, err := param.Date("date", req.Date)
	if err != nil {
		respond.Error(w, r, err, "Failed to update transaction")
		return
	}

	tx, err := h.svc.Update(r.Context(), userID, id, transaction.Patch{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	})
	if err != nil {
		respond.Error(w, r, err, "Failed to update transaction")
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := param.ID(r)
	if err != nil {
		respond.Error(w, r, err, "Failed to delete transaction")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		respond.Error(w, r, err, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.RequireUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.BadRequest(w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, apperr.NewValidationError("file", "is required"), "Failed to import transactions")
		return
	}
	defer file.Close()

	res, err := h.importSvc.Import(r.Context(), userID, file)
	if err != nil {
		var perr *importer.ParseError
		if errors.As(err, &perr) {
			err = apperr.NewValidationError("file", perr.Error())
		}

		respond.Error(w, r, err, "Failed to import transactions")

		return
	}

	respond.JSON(w, http.StatusCreated, toImportResponse(res))
}
