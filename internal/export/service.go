package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

// Header is the column layout written by WriteCSV. The importer detects it as its typed profile,
// so an export can be imported again without duplicates.
var Header = []string{"Date", "Type", "Amount", "Description", "Category"}

type TransactionLister interface {
	List(ctx context.Context, userID string, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// Service exports a user's transactions as CSV.
type Service struct {
	transactions TransactionLister
}

func NewService(transactions TransactionLister) *Service {
	return &Service{transactions: transactions}
}

// Export returns the transactions matching filter, oldest first.
func (s *Service) Export(ctx context.Context, userID string, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	txs, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	slices.Reverse(txs)

	return txs, nil
}

func WriteCSV(w io.Writer, txs []*transaction.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		category := ""
		if tx.Category != nil {
			category = *tx.Category
		}

		record := []string{
			tx.Date.Format(time.DateOnly),
			string(tx.Type),
			tx.Amount.StringFixed(2),
			tx.Description,
			category,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Filename names an export after its date range, falling back to today for open ranges.
func Filename(filter transaction.ListFilter, today time.Time) string {
	from, to := "start", today.Format("20060102")

	if filter.StartDate != nil {
		from = filter.StartDate.Format("20060102")
	}

	if filter.EndDate != nil {
		to = filter.EndDate.Format("20060102")
	}

	return fmt.Sprintf("transactions_%s_%s.csv", from, to)
}
