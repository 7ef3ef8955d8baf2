package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ascend/internal/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

const userID = "user-1"

type mocks struct {
	habits *analytics.MockHabitReader
	goals  *analytics.MockGoalReader
	txs    *analytics.MockTransactionReader
}

func newService(t *testing.T) (*analytics.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		habits: analytics.NewMockHabitReader(ctrl),
		goals:  analytics.NewMockGoalReader(ctrl),
		txs:    analytics.NewMockTransactionReader(ctrl),
	}

	svc := analytics.NewService(m.habits, m.goals, m.txs, time.UTC, analytics.WithClock(func() time.Time { return now }))

	return svc, m
}

func TestService_Dashboard(t *testing.T) {
	svc, m := newService(t)

	a := &habit.Habit{ID: uuid.New(), IsActive: true}
	b := &habit.Habit{ID: uuid.New(), IsActive: false}

	m.habits.EXPECT().List(gomock.Any(), userID).Return([]*habit.Habit{a, b}, nil)
	m.habits.EXPECT().
		ListCompletions(gomock.Any(), userID, habit.CompletionFilter{}).
		Return([]*habit.Completion{{HabitID: a.ID, CompletedDate: daysAgo(0)}}, nil)
	m.goals.EXPECT().List(gomock.Any(), userID).Return([]*goal.Goal{
		{Status: goal.StatusActive, Progress: 40},
		{Status: goal.StatusActive, Progress: 60},
		{Status: goal.StatusCompleted, Progress: 100},
	}, nil)
	m.txs.EXPECT().List(gomock.Any(), userID, transaction.ListFilter{}).Return([]*transaction.Transaction{
		tx(transaction.TypeIncome, "500", daysAgo(1)),
		tx(transaction.TypeExpense, "200", daysAgo(2)),
	}, nil)

	stats, err := svc.Dashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 100, stats.HabitCompletionRate)
	assert.Equal(t, 1, stats.HabitsCompleted)
	assert.Equal(t, 1, stats.TotalHabits)
	assert.Equal(t, 50, stats.GoalProgress)
	assert.Equal(t, "300.00", stats.MonthlyIncome.StringFixed(2))
}

// A goal removed from the store is absent from the next load and so from the stats.
func TestService_Dashboard_DeletedGoalNotAggregated(t *testing.T) {
	svc, m := newService(t)

	m.habits.EXPECT().List(gomock.Any(), userID).Return(nil, nil).Times(2)
	m.habits.EXPECT().ListCompletions(gomock.Any(), userID, gomock.Any()).Return(nil, nil).Times(2)
	m.txs.EXPECT().List(gomock.Any(), userID, gomock.Any()).Return(nil, nil).Times(2)

	gomock.InOrder(
		m.goals.EXPECT().List(gomock.Any(), userID).Return([]*goal.Goal{
			{Status: goal.StatusActive, Progress: 20},
			{Status: goal.StatusActive, Progress: 80},
		}, nil),
		m.goals.EXPECT().List(gomock.Any(), userID).Return([]*goal.Goal{
			{Status: goal.StatusActive, Progress: 20},
		}, nil),
	)

	before, err := svc.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 50, before.GoalProgress)

	after, err := svc.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 20, after.GoalProgress)
}

func TestService_Dashboard_ReadFailure(t *testing.T) {
	svc, m := newService(t)

	m.habits.EXPECT().List(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	m.habits.EXPECT().ListCompletions(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
	m.goals.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("connection reset")).AnyTimes()
	m.txs.EXPECT().List(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.Dashboard(context.Background(), userID)
	assert.ErrorContains(t, err, "loading goals")
	assert.ErrorContains(t, err, "connection reset")
}

func TestService_Report(t *testing.T) {
	svc, m := newService(t)

	a := &habit.Habit{ID: uuid.New(), IsActive: true}

	m.habits.EXPECT().List(gomock.Any(), userID).Return([]*habit.Habit{a}, nil)
	m.habits.EXPECT().ListCompletions(gomock.Any(), userID, gomock.Any()).Return([]*habit.Completion{
		{HabitID: a.ID, CompletedDate: daysAgo(0)},
		{HabitID: a.ID, CompletedDate: daysAgo(3)},
	}, nil)
	m.goals.EXPECT().List(gomock.Any(), userID).Return([]*goal.Goal{{Status: goal.StatusPaused, Progress: 10}}, nil)
	m.txs.EXPECT().List(gomock.Any(), userID, gomock.Any()).Return([]*transaction.Transaction{
		tx(transaction.TypeExpense, "12.34", daysAgo(400)),
	}, nil)

	report, err := svc.Report(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, report.Habits, 1)
	assert.Equal(t, [7]bool{false, false, false, true, false, false, true}, report.Habits[0].Last7Days)
	assert.Equal(t, 1, report.Goals.Paused)
	assert.Equal(t, "-12.34", report.Finance.NetIncome.StringFixed(2))
}
