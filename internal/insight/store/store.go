package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/insight"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

var columns = []string{"id", "user_id", "type", "title", "content", "data", "date", "created_at"}

func (s *Store) CreateInsight(ctx context.Context, in *insight.Insight) error {
	data := string(in.Data)
	if data == "" {
		data = "{}"
	}

	query, args, err := database.Builder.
		Insert("ai_insights").
		Columns("user_id", "type", "title", "content", "data", "date").
		Values(in.UserID, in.Type, in.Title, in.Content, data, in.Date).
		Suffix("RETURNING id, user_id, type, title, content, data, date, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, in, query, args...); err != nil {
		return database.MapError("creating insight", err)
	}

	return nil
}

func (s *Store) ListInsights(ctx context.Context, userID string, typ *insight.Type) ([]*insight.Insight, error) {
	where := sq.Eq{"user_id": userID}
	if typ != nil {
		where["type"] = *typ
	}

	query, args, err := database.Builder.
		Select(columns...).
		From("ai_insights").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var out []*insight.Insight
	if err := pgxscan.Select(ctx, s.db, &out, query, args...); err != nil {
		return nil, database.MapError("listing insights", err)
	}

	return out, nil
}

func (s *Store) LatestInsight(ctx context.Context, userID string, typ insight.Type) (*insight.Insight, error) {
	query, args, err := database.Builder.
		Select(columns...).
		From("ai_insights").
		Where(sq.Eq{"user_id": userID, "type": typ}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var in insight.Insight
	if err := pgxscan.Get(ctx, s.db, &in, query, args...); err != nil {
		return nil, database.MapError("getting latest insight", err)
	}

	return &in, nil
}
