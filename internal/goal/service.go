package goal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	ListGoals(ctx context.Context, userID string) ([]*Goal, error)
	UpdateGoal(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Goal, error)
	DeleteGoal(ctx context.Context, userID string, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title       string
	Description string
	TargetDate  *time.Time
	Progress    *int
	Status      *Status
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
// Patch holds the fields to change. Nil fields are left untouched;
// ClearTargetDate removes the target date and wins over TargetDate.
type Patch struct {
	Title           *string
	Description     *string
	TargetDate      *time.Time
	ClearTargetDate bool
	Progress        *int
	Status          *Status
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Goal, error) {
	g := &Goal{
		UserID:      userID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		TargetDate:  params.TargetDate,
		Progress:    0,
		Status:      StatusActive,
	}

	if params.Progress != nil {
		g.Progress = *params.Progress
	}

	if params.Status != nil {
		g.Status = *params.Status
	}

	if g.Title == "" {
		return nil, apperr.NewValidationError("title", "is required")
	}

	if err := validate(g.Progress, g.Status); err != nil {
		return nil, err
	}

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Goal, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperr.NewValidationError("title", "is required")
	}

	if patch.Progress != nil {
		if err := validate(*patch.Progress, StatusActive); err != nil {
			return nil, err
		}
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperr.NewValidationError("status", "must be one of: active, completed, paused")
	}

	if patch.ClearTargetDate {
		patch.TargetDate = nil
	}

	return s.repo.UpdateGoal(ctx, userID, id, patch)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}

func validate(progress int, status Status) error {
	if progress < 0 || progress > 100 {
		return apperr.NewValidationError("progress", "must be between 0 and 100")
	}

	if !status.Valid() {
		return apperr.NewValidationError("status", "must be one of: active, completed, paused")
	}

	return nil
}
