package journal

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=journal
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, userID string) ([]*Entry, error)
	UpdateEntry(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Entry, error)
	DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title     string
	Content   string
	Mood      *string
	Tags      []string
	ImageURL  *string
	IsPrivate bool
}

type Patch struct {
	Title     *string
	Content   *string
	Mood      *string
	Tags      *[]string
	ImageURL  *string
	IsPrivate *bool
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Entry, error) {
	e := &Entry{
		UserID:    userID,
		Title:     strings.TrimSpace(params.Title),
		Content:   params.Content,
		Mood:      params.Mood,
		Tags:      normalizeTags(params.Tags),
		ImageURL:  params.ImageURL,
		IsPrivate: params.IsPrivate,
	}

	if e.Title == "" {
		return nil, apperr.NewValidationError("title", "is required")
	}

	if strings.TrimSpace(e.Content) == "" {
		return nil, apperr.NewValidationError("content", "is required")
	}

	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, patch Patch) (*Entry, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperr.NewValidationError("title", "is required")
	}

	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return nil, apperr.NewValidationError("content", "is required")
	}

	if patch.Tags != nil {
		patch.Tags = new(normalizeTags(*patch.Tags))
	}

	return s.repo.UpdateEntry(ctx, userID, id, patch)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, userID, id)
}

// normalizeTags trims tags and drops blanks and repeats, keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
