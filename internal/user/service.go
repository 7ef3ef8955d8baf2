package user

import (
	"context"
	"strings"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	UpsertUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert inserts the user or refreshes the identity fields of an existing row.
func (s *Service) Upsert(ctx context.Context, u *User) error {
	u.ID = strings.TrimSpace(u.ID)
	if u.ID == "" {
		return apperr.NewValidationError("id", "is required")
	}

	return s.repo.UpsertUser(ctx, u)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUser(ctx, id)
}
