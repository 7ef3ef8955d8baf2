package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=analytics
type HabitReader interface {
	List(ctx context.Context, userID string) ([]*habit.Habit, error)
	ListCompletions(ctx context.Context, userID string, filter habit.CompletionFilter) ([]*habit.Completion, error)
}

type GoalReader interface {
	List(ctx context.Context, userID string) ([]*goal.Goal, error)
}

type TransactionReader interface {
	List(ctx context.Context, userID string, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type Service struct {
	habits       HabitReader
	goals        GoalReader
	transactions TransactionReader
	loc          *time.Location
	now          func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(habits HabitReader, goals GoalReader, transactions TransactionReader, loc *time.Location, opts ...Option) *Service {
	s := &Service{
		habits:       habits,
		goals:        goals,
		transactions: transactions,
		loc:          loc,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load reads all of a user's habits, completions, goals and transactions
// concurrently. Any failed read fails the whole load.
func (s *Service) Load(ctx context.Context, userID string) (*Records, error) {
	var rec Records

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		habits, err := s.habits.List(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading habits: %w", err)
		}

		rec.Habits = habits

		return nil
	})

	g.Go(func() error {
		completions, err := s.habits.ListCompletions(ctx, userID, habit.CompletionFilter{})
		if err != nil {
			return fmt.Errorf("loading completions: %w", err)
		}

		rec.Completions = completions

		return nil
	})

	g.Go(func() error {
		goals, err := s.goals.List(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading goals: %w", err)
		}

		rec.Goals = goals

		return nil
	})

	g.Go(func() error {
		txs, err := s.transactions.List(ctx, userID, transaction.ListFilter{})
		if err != nil {
			return fmt.Errorf("loading transactions: %w", err)
		}

		rec.Transactions = txs

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Service) Dashboard(ctx context.Context, userID string) (Stats, error) {
	rec, err := s.Load(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	return s.Stats(*rec), nil
}

// Stats computes the dashboard snapshot for already loaded records.
func (s *Service) Stats(rec Records) Stats {
	return DashboardStats(rec, s.now(), s.loc)
}

type Report struct {
	Habits  []HabitPerformance
	Goals   GoalSummary
	Finance FinanceSummary
}

func (s *Service) Report(ctx context.Context, userID string) (*Report, error) {
	rec, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Report{
		Habits:  HabitsPerformance(rec.Habits, rec.Completions, s.now(), s.loc),
		Goals:   SummarizeGoals(rec.Goals),
		Finance: SummarizeFinances(rec.Transactions),
	}, nil
}
