package transaction

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/http/param"
	"github.com/MrJamesThe3rd/ascend/internal/importer"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	UserID      string           `json:"userId"`
	Type        transaction.Type `json:"type"`
	Amount      json.Number      `json:"amount"`
	Description string           `json:"description"`
	Category    *string          `json:"category"`
	Date        string           `json:"date"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type duplicateResponse struct {
	Type        transaction.Type `json:"type"`
	Amount      json.Number      `json:"amount"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

type importResponse struct {
	Charset      string                `json:"charset"`
	Format       string                `json:"format"`
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
	Duplicates   []duplicateResponse   `json:"duplicates"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        tx.Type,
		Amount:      param.Money(tx.Amount),
		Description: tx.Description,
		Category:    tx.Category,
		Date:        param.FormatDate(tx.Date),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toImportResponse(res *importer.Result) importResponse {
	dups := make([]duplicateResponse, len(res.Duplicates))
	for i, p := range res.Duplicates {
		dups[i] = duplicateResponse{
			Type:        p.Type,
			Amount:      param.Money(p.Amount),
			Description: p.Description,
			Date:        param.FormatDate(p.Date),
		}
	}

	return importResponse{
		Charset:      string(res.Charset),
		Format:       res.Profile,
		Imported:     len(res.Imported),
		Transactions: toResponseList(res.Imported),
		Duplicates:   dups,
	}
}
