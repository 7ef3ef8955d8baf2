package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

// MapError wraps err with op and translates driver errors into apperr sentinels.
// Context cancellation passes through unmapped.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		field := pgErr.ColumnName
		if field == "" {
			field = pgErr.ConstraintName
		}

		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
		case "23503", "23514", "22P02": // foreign_key_violation, check_violation, invalid_text_representation
			return fmt.Errorf("%s: %w", op, apperr.NewValidationError(field, pgErr.Message))
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
