package category

import (
	"context"
	"sort"
	"strings"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	// FindMatch returns the category of the longest pattern contained in
	// description, or "" when no rule matches.
	FindMatch(ctx context.Context, userID, description string) (string, error)
	UpsertRule(ctx context.Context, rule *Rule) error
	ListRules(ctx context.Context, userID string) ([]*Rule, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category for description. Empty when nothing matches.
func (s *Service) Suggest(ctx context.Context, userID, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", apperr.NewValidationError("description", "is required")
	}

	return s.repo.FindMatch(ctx, userID, description)
}

// Learn stores pattern → category, replacing the category of an existing pattern.
func (s *Service) Learn(ctx context.Context, userID, pattern, category string) (*Rule, error) {
	rule := &Rule{
		UserID:   userID,
		Pattern:  strings.TrimSpace(pattern),
		Category: strings.TrimSpace(category),
	}

	if rule.Pattern == "" {
		return nil, apperr.NewValidationError("pattern", "is required")
	}

	if rule.Category == "" {
		return nil, apperr.NewValidationError("category", "is required")
	}

	if err := s.repo.UpsertRule(ctx, rule); err != nil {
		return nil, err
	}

	return rule, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Rule, error) {
	return s.repo.ListRules(ctx, userID)
}

// Matcher loads the user's rules once so a whole import can be categorised
// without a query per row.
func (s *Service) Matcher(ctx context.Context, userID string) (*Matcher, error) {
	rules, err := s.repo.ListRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	return NewMatcher(rules), nil
}

type Matcher struct {
	rules []*Rule
}

func NewMatcher(rules []*Rule) *Matcher {
	sorted := make([]*Rule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Pattern) > len(sorted[j].Pattern)
	})

	return &Matcher{rules: sorted}
}

// Match returns the category of the longest matching pattern, or "".
func (m *Matcher) Match(description string) string {
	desc := strings.ToLower(description)

	for _, r := range m.rules {
		if strings.Contains(desc, strings.ToLower(r.Pattern)) {
			return r.Category
		}
	}

	return ""
}
