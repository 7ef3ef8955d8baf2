package store

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

var columns = []string{
	"id", "user_id", "type", "amount", "description", "category", "date", "created_at", "updated_at",
}

const returningColumns = "RETURNING id, user_id, type, amount, description, category, date, created_at, updated_at"

func insertQuery(tx *transaction.Transaction) (string, []any, error) {
	return database.Builder.
		Insert("transactions").
		Columns("user_id", "type", "amount", "description", "category", "date").
		Values(tx.UserID, tx.Type, tx.Amount, tx.Description, tx.Category, tx.Date).
		Suffix(returningColumns).
		ToSql()
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query, args, err := insertQuery(tx)
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, tx, query, args...); err != nil {
		return database.MapError("creating transaction", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, userID string, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	where := sq.And{sq.Eq{"user_id": userID}}

	if filter.Type != nil {
		where = append(where, sq.Eq{"type": *filter.Type})
	}

	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"date": *filter.StartDate})
	}

	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"date": *filter.EndDate})
	}

	query, args, err := database.Builder.
		Select(columns...).
		From("transactions").
		Where(where).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var txs []*transaction.Transaction
	if err := pgxscan.Select(ctx, s.db, &txs, query, args...); err != nil {
		return nil, database.MapError("listing transactions", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, patch transaction.Patch) (*transaction.Transaction, error) {
	update := database.Builder.
		Update("transactions").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningColumns)

	if patch.Type != nil {
		update = update.Set("type", *patch.Type)
	}

	if patch.Amount != nil {
		update = update.Set("amount", *patch.Amount)
	}

	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}

	if patch.Category != nil {
		update = update.Set("category", *patch.Category)
	}

	if patch.Date != nil {
		update = update.Set("date", *patch.Date)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	var tx transaction.Transaction
	if err := pgxscan.Get(ctx, s.db, &tx, query, args...); err != nil {
		return nil, database.MapError("updating transaction", err)
	}

	return &tx, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error {
	query, args, err := database.Builder.
		Delete("transactions").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return database.MapError("deleting transaction", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting transaction %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}

// importLockKey serializes concurrent imports of the same user.
func importLockKey(userID string) int64 {
	h := fnv.New64a()
	h.Write([]byte("transactions-import:"))
	h.Write([]byte(userID))

	return int64(h.Sum64())
}

type importTx struct {
	tx     pgx.Tx
	userID string
}

func (s *Store) BeginImport(ctx context.Context, userID string) (transaction.ImportTx, error) {
	dbTx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(userID)); err != nil {
		_ = dbTx.Rollback(ctx)
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx, userID: userID}, nil
}

func (itx *importTx) Commit(ctx context.Context) error   { return itx.tx.Commit(ctx) }
func (itx *importTx) Rollback(ctx context.Context) error { return itx.tx.Rollback(ctx) }

func (itx *importTx) FindDuplicates(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	type lookupKey struct {
		Date        string
		Type        transaction.Type
		Amount      string
		Description string
	}

	minDate := params[0].Date
	maxDate := params[0].Date
	keySet := make(map[lookupKey]struct{}, len(params))

	for _, p := range params {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}

		keySet[lookupKey{
			Date:        p.Date.Format(time.DateOnly),
			Type:        p.Type,
			Amount:      p.Amount.StringFixed(2),
			Description: strings.TrimSpace(p.Description),
		}] = struct{}{}
	}

	query, args, err := database.Builder.
		Select(columns...).
		From("transactions").
		Where(sq.Eq{"user_id": itx.userID}).
		Where(sq.GtOrEq{"date": minDate}).
		Where(sq.LtOrEq{"date": maxDate}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var candidates []*transaction.Transaction
	if err := pgxscan.Select(ctx, itx.tx, &candidates, query, args...); err != nil {
		return nil, database.MapError("finding duplicates", err)
	}

	var duplicates []*transaction.Transaction

	for _, tx := range candidates {
		k := lookupKey{
			Date:        tx.Date.Format(time.DateOnly),
			Type:        tx.Type,
			Amount:      tx.Amount.StringFixed(2),
			Description: strings.TrimSpace(tx.Description),
		}

		if _, found := keySet[k]; found {
			duplicates = append(duplicates, tx)
		}
	}

	return duplicates, nil
}

func (itx *importTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	for _, tx := range txs {
		query, args, err := insertQuery(tx)
		if err != nil {
			return fmt.Errorf("building insert: %w", err)
		}

		if err := pgxscan.Get(ctx, itx.tx, tx, query, args...); err != nil {
			return database.MapError("creating transaction", err)
		}
	}

	return nil
}
