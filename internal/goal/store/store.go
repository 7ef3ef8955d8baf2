package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/goal"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

const returningColumns = "RETURNING id, user_id, title, description, target_date, progress, status, created_at, updated_at"

var columns = []string{
	"id", "user_id", "title", "description", "target_date", "progress", "status", "created_at", "updated_at",
}

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query, args, err := database.Builder.
		Insert("goals").
		Columns("user_id", "title", "description", "target_date", "progress", "status").
		Values(g.UserID, g.Title, g.Description, g.TargetDate, g.Progress, g.Status).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, g, query, args...); err != nil {
		return database.MapError("creating goal", err)
	}

	return nil
}

func (s *Store) ListGoals(ctx context.Context, userID string) ([]*goal.Goal, error) {
	query, args, err := database.Builder.
		Select(columns...).
		From("goals").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var goals []*goal.Goal
	if err := pgxscan.Select(ctx, s.db, &goals, query, args...); err != nil {
		return nil, database.MapError("listing goals", err)
	}

	return goals, nil
}

func (s *Store) UpdateGoal(ctx context.Context, userID string, id uuid.UUID, patch goal.Patch) (*goal.Goal, error) {
	update := database.Builder.
		Update("goals").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningColumns)

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}

	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}

	switch {
	case patch.ClearTargetDate:
		update = update.Set("target_date", nil)
	case patch.TargetDate != nil:
		update = update.Set("target_date", *patch.TargetDate)
	}

	if patch.Progress != nil {
		update = update.Set("progress", *patch.Progress)
	}

	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	var g goal.Goal
	if err := pgxscan.Get(ctx, s.db, &g, query, args...); err != nil {
		return nil, database.MapError("updating goal", err)
	}

	return &g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID string, id uuid.UUID) error {
	query, args, err := database.Builder.
		Delete("goals").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return database.MapError("deleting goal", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting goal %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}
