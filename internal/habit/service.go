package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=habit
type Repository interface {
	CreateHabit(ctx context.Context, h *Habit) error
	GetHabit(ctx context.Context, userID string, id uuid.UUID) (*Habit, error)
	ListHabits(ctx context.Context, userID string) ([]*Habit, error)
	UpdateHabit(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Habit, error)
	DeleteHabit(ctx context.Context, userID string, id uuid.UUID) error

	CreateCompletion(ctx context.Context, c *Completion) error
	ListCompletions(ctx context.Context, userID string, filter CompletionFilter) ([]*Completion, error)
	DeleteCompletion(ctx context.Context, userID string, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	Description  string
	TargetAmount *int
	Unit         *string
	Icon         *string
	Color        *string
	IsActive     *bool
}

type Patch struct {
	Name         *string
	Description  *string
	TargetAmount *int
	Unit         *string
	Icon         *string
	Color        *string
	IsActive     *bool
}

type CreateCompletionParams struct {
	HabitID       uuid.UUID
	CompletedDate time.Time
	Amount        *int
	Notes         string
}

// CompletionFilter narrows a completion listing. Date bounds are inclusive.
type CompletionFilter struct {
	HabitID   *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Habit, error) {
	h := &Habit{
		UserID:       userID,
		Name:         strings.TrimSpace(params.Name),
		Description:  params.Description,
		TargetAmount: DefaultTargetAmount,
		Unit:         DefaultUnit,
		Icon:         DefaultIcon,
		Color:        DefaultColor,
		IsActive:     true,
	}

	if params.TargetAmount != nil {
		h.TargetAmount = *params.TargetAmount
	}

	if params.Unit != nil && *params.Unit != "" {
		h.Unit = *params.Unit
	}

	if params.Icon != nil && *params.Icon != "" {
		h.Icon = *params.Icon
	}

	if params.Color != nil && *params.Color != "" {
		h.Color = *params.Color
	}

	if params.IsActive != nil {
		h.IsActive = *params.IsActive
	}

	if h.Name == "" {
		return nil, apperr.NewValidationError("name", "is required")
	}

	if h.TargetAmount <= 0 {
		return nil, apperr.NewValidationError("targetAmount", "must be greater than 0")
	}

	if err := s.repo.CreateHabit(ctx, h); err != nil {
		return nil, err
	}

	return h, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Habit, error) {
	return s.repo.ListHabits(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Habit, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.NewValidationError("name", "is required")
	}

	if patch.TargetAmount != nil && *patch.TargetAmount <= 0 {
		return nil, apperr.NewValidationError("targetAmount", "must be greater than 0")
	}

	return s.repo.UpdateHabit(ctx, userID, id, patch)
}

// Delete removes the habit only. Its completions stay behind.
func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.DeleteHabit(ctx, userID, id)
}

func (s *Service) CreateCompletion(ctx context.Context, userID string, params CreateCompletionParams) (*Completion, error) {
	if params.CompletedDate.IsZero() {
		return nil, apperr.NewValidationError("completedDate", "is required")
	}

	c := &Completion{
		HabitID:       params.HabitID,
		UserID:        userID,
		CompletedDate: params.CompletedDate,
		Amount:        1,
		Notes:         params.Notes,
	}

	if params.Amount != nil {
		c.Amount = *params.Amount
	}

	if c.Amount <= 0 {
		return nil, apperr.NewValidationError("amount", "must be greater than 0")
	}

	if _, err := s.repo.GetHabit(ctx, userID, params.HabitID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NewValidationError("habitId", "does not reference one of your habits")
		}

		return nil, fmt.Errorf("checking habit: %w", err)
	}

	if err := s.repo.CreateCompletion(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) ListCompletions(ctx context.Context, userID string, filter CompletionFilter) ([]*Completion, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, apperr.NewValidationError("endDate", "must not be before startDate")
	}

	return s.repo.ListCompletions(ctx, userID, filter)
}

func (s *Service) DeleteCompletion(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.DeleteCompletion(ctx, userID, id)
}
