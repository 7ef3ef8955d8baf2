package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

var habitColumns = []string{
	"id", "user_id", "name", "description", "target_amount", "unit", "icon", "color", "is_active", "created_at", "updated_at",
}

var completionColumns = []string{
	"id", "habit_id", "user_id", "completed_date", "amount", "notes", "created_at",
}

const (
	returningHabit      = "RETURNING id, user_id, name, description, target_amount, unit, icon, color, is_active, created_at, updated_at"
	returningCompletion = "RETURNING id, habit_id, user_id, completed_date, amount, notes, created_at"
)

func (s *Store) CreateHabit(ctx context.Context, h *habit.Habit) error {
	query, args, err := database.Builder.
		Insert("habits").
		Columns("user_id", "name", "description", "target_amount", "unit", "icon", "color", "is_active").
		Values(h.UserID, h.Name, h.Description, h.TargetAmount, h.Unit, h.Icon, h.Color, h.IsActive).
		Suffix(returningHabit).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, h, query, args...); err != nil {
		return database.MapError("creating habit", err)
	}

	return nil
}

func (s *Store) GetHabit(ctx context.Context, userID string, id uuid.UUID) (*habit.Habit, error) {
	query, args, err := database.Builder.
		Select(habitColumns...).
		From("habits").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var h habit.Habit
	if err := pgxscan.Get(ctx, s.db, &h, query, args...); err != nil {
		return nil, database.MapError("getting habit", err)
	}

	return &h, nil
}

func (s *Store) ListHabits(ctx context.Context, userID string) ([]*habit.Habit, error) {
	query, args, err := database.Builder.
		Select(habitColumns...).
		From("habits").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var habits []*habit.Habit
	if err := pgxscan.Select(ctx, s.db, &habits, query, args...); err != nil {
		return nil, database.MapError("listing habits", err)
	}

	return habits, nil
}

func (s *Store) UpdateHabit(ctx context.Context, userID string, id uuid.UUID, patch habit.Patch) (*habit.Habit, error) {
	update := database.Builder.
		Update("habits").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningHabit)

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}

	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}

	if patch.TargetAmount != nil {
		update = update.Set("target_amount", *patch.TargetAmount)
	}

	if patch.Unit != nil {
		update = update.Set("unit", *patch.Unit)
	}

	if patch.Icon != nil {
		update = update.Set("icon", *patch.Icon)
	}

	if patch.Color != nil {
		update = update.Set("color", *patch.Color)
	}

	if patch.IsActive != nil {
		update = update.Set("is_active", *patch.IsActive)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	var h habit.Habit
	if err := pgxscan.Get(ctx, s.db, &h, query, args...); err != nil {
		return nil, database.MapError("updating habit", err)
	}

	return &h, nil
}

func (s *Store) DeleteHabit(ctx context.Context, userID string, id uuid.UUID) error {
	return s.deleteOwned(ctx, "habits", "habit", userID, id)
}

func (s *Store) CreateCompletion(ctx context.Context, c *habit.Completion) error {
	query, args, err := database.Builder.
		Insert("habit_completions").
		Columns("habit_id", "user_id", "completed_date", "amount", "notes").
		Values(c.HabitID, c.UserID, c.CompletedDate, c.Amount, c.Notes).
		Suffix(returningCompletion).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, c, query, args...); err != nil {
		return database.MapError("creating habit completion", err)
	}

	return nil
}

func (s *Store) ListCompletions(ctx context.Context, userID string, filter habit.CompletionFilter) ([]*habit.Completion, error) {
	where := sq.And{sq.Eq{"user_id": userID}}

	if filter.HabitID != nil {
		where = append(where, sq.Eq{"habit_id": *filter.HabitID})
	}

	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"completed_date": *filter.StartDate})
	}

	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"completed_date": *filter.EndDate})
	}

	query, args, err := database.Builder.
		Select(completionColumns...).
		From("habit_completions").
		Where(where).
		OrderBy("completed_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var completions []*habit.Completion
	if err := pgxscan.Select(ctx, s.db, &completions, query, args...); err != nil {
		return nil, database.MapError("listing habit completions", err)
	}

	return completions, nil
}

func (s *Store) DeleteCompletion(ctx context.Context, userID string, id uuid.UUID) error {
	return s.deleteOwned(ctx, "habit_completions", "habit completion", userID, id)
}

func (s *Store) deleteOwned(ctx context.Context, table, entity, userID string, id uuid.UUID) error {
	query, args, err := database.Builder.
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return database.MapError("deleting "+entity, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting %s %s: %w", entity, id, apperr.ErrNotFound)
	}

	return nil
}
