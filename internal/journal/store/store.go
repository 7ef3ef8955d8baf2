package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

var columns = []string{
	"id", "user_id", "title", "content", "mood", "tags", "image_url", "is_private", "created_at", "updated_at",
}

const returningColumns = "RETURNING id, user_id, title, content, mood, tags, image_url, is_private, created_at, updated_at"

func (s *Store) CreateEntry(ctx context.Context, e *journal.Entry) error {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := database.Builder.
		Insert("journal_entries").
		Columns("user_id", "title", "content", "mood", "tags", "image_url", "is_private").
		Values(e.UserID, e.Title, e.Content, e.Mood, tags, e.ImageURL, e.IsPrivate).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, e, query, args...); err != nil {
		return database.MapError("creating journal entry", err)
	}

	return nil
}

func (s *Store) ListEntries(ctx context.Context, userID string) ([]*journal.Entry, error) {
	query, args, err := database.Builder.
		Select(columns...).
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var entries []*journal.Entry
	if err := pgxscan.Select(ctx, s.db, &entries, query, args...); err != nil {
		return nil, database.MapError("listing journal entries", err)
	}

	return entries, nil
}

func (s *Store) UpdateEntry(ctx context.Context, userID string, id uuid.UUID, patch journal.Patch) (*journal.Entry, error) {
	update := database.Builder.
		Update("journal_entries").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningColumns)

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}

	if patch.Content != nil {
		update = update.Set("content", *patch.Content)
	}

	if patch.Mood != nil {
		update = update.Set("mood", *patch.Mood)
	}

	if patch.Tags != nil {
		update = update.Set("tags", *patch.Tags)
	}

	if patch.ImageURL != nil {
		update = update.Set("image_url", *patch.ImageURL)
	}

	if patch.IsPrivate != nil {
		update = update.Set("is_private", *patch.IsPrivate)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	var e journal.Entry
	if err := pgxscan.Get(ctx, s.db, &e, query, args...); err != nil {
		return nil, database.MapError("updating journal entry", err)
	}

	return &e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error {
	query, args, err := database.Builder.
		Delete("journal_entries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return database.MapError("deleting journal entry", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting journal entry %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}
