package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/user"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

var columns = []string{"id", "email", "first_name", "last_name", "profile_image_url", "created_at", "updated_at"}

func (s *Store) UpsertUser(ctx context.Context, u *user.User) error {
	query, args, err := database.Builder.
		Insert("users").
		Columns("id", "email", "first_name", "last_name", "profile_image_url").
		Values(u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
			RETURNING id, email, first_name, last_name, profile_image_url, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("building upsert: %w", err)
	}

	if err := pgxscan.Get(ctx, s.db, u, query, args...); err != nil {
		return database.MapError("upserting user", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*user.User, error) {
	query, args, err := database.Builder.
		Select(columns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var u user.User
	if err := pgxscan.Get(ctx, s.db, &u, query, args...); err != nil {
		return nil, database.MapError("getting user", err)
	}

	return &u, nil
}
