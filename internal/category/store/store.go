package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/MrJamesThe3rd/ascend/internal/category"
	"github.com/MrJamesThe3rd/ascend/internal/database"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, userID, description string) (string, error) {
	query, args, err := database.Builder.
		Select("category").
		From("category_rules").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("strpos(lower(?), lower(pattern)) > 0", description)).
		OrderBy("length(pattern) DESC", "updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("building select: %w", err)
	}

	var preferred string

	if err := s.db.QueryRow(ctx, query, args...).Scan(&preferred); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}

		return "", database.MapError("finding category match", err)
	}

	return preferred, nil
}

func (s *Store) UpsertRule(ctx context.Context, rule *category.Rule) error {
	query, args, err := database.Builder.
		Insert("category_rules").
		Columns("user_id", "pattern", "category").
		Values(rule.UserID, rule.Pattern, rule.Category).
		Suffix(`ON CONFLICT (user_id, pattern) DO UPDATE
			SET category = EXCLUDED.category, updated_at = NOW()
			RETURNING id, user_id, pattern, category, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("building upsert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, rule, query, args...); err != nil {
		return database.MapError("saving category rule", err)
	}

	return nil
}

func (s *Store) ListRules(ctx context.Context, userID string) ([]*category.Rule, error) {
	query, args, err := database.Builder.
		Select("id", "user_id", "pattern", "category", "created_at", "updated_at").
		From("category_rules").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("pattern ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var rules []*category.Rule
	if err := pgxscan.Select(ctx, s.db, &rules, query, args...); err != nil {
		return nil, database.MapError("listing category rules", err)
	}

	return rules, nil
}
