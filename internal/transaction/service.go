package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

// MaxAmount is the largest value a NUMERIC(10,2) column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, userID string, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error

	BeginImport(ctx context.Context, userID string) (ImportTx, error)
}

// ImportTx inserts a batch of transactions atomically for one user.
type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Type        Type
	Amount      decimal.Decimal
	Description string
	Category    *string
	Date        time.Time
}

type Patch struct {
	Type        *Type
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
}

// ListFilter narrows a listing. Date bounds are inclusive.
type ListFilter struct {
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Transaction, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	tx := newTransaction(userID, params)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]*Transaction, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, apperr.NewValidationError("type", "must be one of: income, expense")
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, apperr.NewValidationError("endDate", "must not be before startDate")
	}

	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Transaction, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, apperr.NewValidationError("type", "must be one of: income, expense")
	}

	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return nil, err
		}

		patch.Amount = new(patch.Amount.Round(2))
	}

	if patch.Date != nil && patch.Date.IsZero() {
		return nil, apperr.NewValidationError("date", "is required")
	}

	return s.repo.UpdateTransaction(ctx, userID, id, patch)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

type ImportResult struct {
	Imported   []*Transaction
	Duplicates []CreateParams
}

// Import stores params in a single database transaction. Rows matching an
// existing transaction on date, type, amount and description are skipped and
// reported as duplicates. Any invalid row rejects the whole batch.
func (s *Service) Import(ctx context.Context, userID string, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	for i, p := range params {
		if err := validateParams(p); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	itx, err := s.repo.BeginImport(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback(ctx)

	existing, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]struct{}, len(existing))
	for _, tx := range existing {
		lookup[keyOf(tx.Date, tx.Type, tx.Amount, tx.Description)] = struct{}{}
	}

	result := &ImportResult{}

	var txs []*Transaction

	for _, p := range params {
		if _, found := lookup[keyOf(p.Date, p.Type, p.Amount, p.Description)]; found {
			result.Duplicates = append(result.Duplicates, p)
			continue
		}

		txs = append(txs, newTransaction(userID, p))
	}

	if len(txs) > 0 {
		if err := itx.CreateTransactions(ctx, txs); err != nil {
			return nil, fmt.Errorf("create transactions: %w", err)
		}
	}

	if err := itx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	result.Imported = txs

	return result, nil
}

type dupKey struct {
	Date        string
	Type        Type
	Amount      string
	Description string
}

func keyOf(date time.Time, typ Type, amount decimal.Decimal, description string) dupKey {
	return dupKey{
		Date:        date.Format(time.DateOnly),
		Type:        typ,
		Amount:      amount.StringFixed(2),
		Description: strings.TrimSpace(description),
	}
}

func newTransaction(userID string, p CreateParams) *Transaction {
	return &Transaction{
		UserID:      userID,
		Type:        p.Type,
		Amount:      p.Amount.Round(2),
		Description: strings.TrimSpace(p.Description),
		Category:    p.Category,
		Date:        p.Date,
	}
}

func validateParams(p CreateParams) error {
	if !p.Type.Valid() {
		return apperr.NewValidationError("type", "must be one of: income, expense")
	}

	if err := validateAmount(p.Amount); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return apperr.NewValidationError("date", "is required")
	}

	if strings.TrimSpace(p.Description) == "" {
		return apperr.NewValidationError("description", "is required")
	}

	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.Round(2).IsPositive() {
		return apperr.NewValidationError("amount", "must be greater than 0")
	}

	if amount.GreaterThan(MaxAmount) {
		return apperr.NewValidationError("amount", "must be at most 99999999.99")
	}

	return nil
}
