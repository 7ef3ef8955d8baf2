package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/ascend/internal/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
)

const (
	titleDailySummary        = "Daily Summary"
	titleGoalRecommendations = "Goal Recommendations"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=insight
type Repository interface {
	CreateInsight(ctx context.Context, in *Insight) error
	ListInsights(ctx context.Context, userID string, typ *Type) ([]*Insight, error)
	LatestInsight(ctx context.Context, userID string, typ Type) (*Insight, error)
}

// RecordLoader is the analytics view of a user.
type RecordLoader interface {
	Load(ctx context.Context, userID string) (*analytics.Records, error)
	Stats(rec analytics.Records) analytics.Stats
}

type JournalReader interface {
	List(ctx context.Context, userID string) ([]*journal.Entry, error)
}

type Service struct {
	repo      Repository
	records   RecordLoader
	journal   JournalReader
	generator Generator
	loc       *time.Location
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, records RecordLoader, journal JournalReader, generator Generator, loc *time.Location, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		records:   records,
		journal:   journal,
		generator: generator,
		loc:       loc,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DailySummary asks the generator for a summary of the user's current state
// and stores the result. Generation problems never fail the call; only
// reading the user's records or storing the insight can.
func (s *Service) DailySummary(ctx context.Context, userID string) (*Insight, error) {
	rec, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	summary := s.generator.DailySummary(ctx, s.input(rec, entries, today))
	stats := s.records.Stats(*rec)

	data, err := json.Marshal(SummaryData{
		Productivity:        summary.Productivity,
		Wellbeing:           summary.Wellbeing,
		StreakCount:         stats.CurrentStreak,
		HabitCompletionRate: stats.HabitCompletionRate,
		GoalProgress:        stats.GoalProgress,
		Recommendations:     summary.Recommendations,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding summary data: %w", err)
	}

	return s.store(ctx, &Insight{
		UserID:  userID,
		Type:    TypeDailySummary,
		Title:   titleDailySummary,
		Content: summary.Summary,
		Data:    data,
		Date:    today,
	})
}

func (s *Service) GoalRecommendations(ctx context.Context, userID string) (*Insight, error) {
	rec, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	recs := s.generator.GoalRecommendations(ctx, s.input(rec, entries, today))

	data, err := json.Marshal(RecommendationsData{Recommendations: recs})
	if err != nil {
		return nil, fmt.Errorf("encoding recommendations: %w", err)
	}

	return s.store(ctx, &Insight{
		UserID:  userID,
		Type:    TypeGoalRecommendations,
		Title:   titleGoalRecommendations,
		Content: strings.Join(recs, "; "),
		Data:    data,
		Date:    today,
	})
}

func (s *Service) List(ctx context.Context, userID string, typ *Type) ([]*Insight, error) {
	if typ != nil && !typ.Valid() {
		return nil, invalidType()
	}

	return s.repo.ListInsights(ctx, userID, typ)
}

// Latest returns the newest insight of typ, or apperr.ErrNotFound.
func (s *Service) Latest(ctx context.Context, userID string, typ Type) (*Insight, error) {
	if !typ.Valid() {
		return nil, invalidType()
	}

	return s.repo.LatestInsight(ctx, userID, typ)
}

func invalidType() error {
	return apperr.NewValidationError("type", "must be one of: daily_summary, goal_recommendations")
}

func (s *Service) store(ctx context.Context, in *Insight) (*Insight, error) {
	if err := s.repo.CreateInsight(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

func (s *Service) load(ctx context.Context, userID string) (*analytics.Records, []*journal.Entry, error) {
	var (
		rec     *analytics.Records
		entries []*journal.Entry
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rec, err = s.records.Load(gctx, userID)

		return err
	})

	g.Go(func() error {
		var err error
		if entries, err = s.journal.List(gctx, userID); err != nil {
			return fmt.Errorf("loading journal entries: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return rec, entries, nil
}

func (s *Service) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) input(rec *analytics.Records, entries []*journal.Entry, today time.Time) Input {
	done := make(map[string]bool)

	for _, c := range rec.Completions {
		if c.CompletedDate.Equal(today) {
			done[c.HabitID.String()] = true
		}
	}

	return Input{
		Habits:         rec.Habits,
		CompletedToday: done,
		Goals:          rec.Goals,
		Journal:        entries,
		Transactions:   rec.Transactions,
	}
}
