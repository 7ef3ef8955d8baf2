// Package analytics derives dashboard and report figures from a user's raw records.
package analytics

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

// Records is everything the aggregations read for one user.
type Records struct {
	Habits       []*habit.Habit
	Completions  []*habit.Completion
	Goals        []*goal.Goal
	Transactions []*transaction.Transaction
}

// Stats is the dashboard snapshot. MonthlyIncome is the net of TotalIncome
// and TotalExpenses, all three restricted to the current calendar month.
type Stats struct {
	CurrentStreak       int
	HabitCompletionRate int
	GoalProgress        int
	HabitsCompleted     int
	TotalHabits         int
	MonthlyIncome       decimal.Decimal
	TotalIncome         decimal.Decimal
	TotalExpenses       decimal.Decimal
}

// DashboardStats computes the dashboard snapshot as of now. Calendar days and
// months are taken in loc.
//
// Only active habits count. A habit is completed today when at least one of
// its completions is dated today, so duplicate rows never push the rate over
// 100 and completions of deleted or inactive habits are ignored. The streak is
// the number of consecutive days, ending today, with at least one such
// completion.
func DashboardStats(rec Records, now time.Time, loc *time.Location) Stats {
	today := civilDay(now, loc)
	active := activeHabitIDs(rec.Habits)
	days := completionDays(rec.Completions, active)

	completedToday := len(days[dayKey(today)])

	stats := Stats{
		CurrentStreak:       streak(today, func(day string) bool { return len(days[day]) > 0 }),
		HabitCompletionRate: percent(completedToday, len(active)),
		GoalProgress:        activeGoalProgress(rec.Goals),
		HabitsCompleted:     completedToday,
		TotalHabits:         len(active),
	}

	income, expenses := sumByType(rec.Transactions, func(tx *transaction.Transaction) bool {
		return tx.Date.Year() == today.Year() && tx.Date.Month() == today.Month()
	})

	stats.TotalIncome = income
	stats.TotalExpenses = expenses
	stats.MonthlyIncome = income.Sub(expenses)

	return stats
}

// HabitPerformance is one habit's trailing-week record.
type HabitPerformance struct {
	Habit *habit.Habit
	// Last7Days runs oldest to newest; the last element is today.
	Last7Days      [7]bool
	CompletionRate float64
	Streak         int
}

// HabitsPerformance reports every habit, active or not, over the seven days
// ending today.
func HabitsPerformance(habits []*habit.Habit, completions []*habit.Completion, now time.Time, loc *time.Location) []HabitPerformance {
	today := civilDay(now, loc)

	byHabit := make(map[uuid.UUID]map[string]struct{}, len(habits))
	for _, c := range completions {
		set, ok := byHabit[c.HabitID]
		if !ok {
			set = make(map[string]struct{})
			byHabit[c.HabitID] = set
		}

		set[dayKey(c.CompletedDate)] = struct{}{}
	}

	out := make([]HabitPerformance, 0, len(habits))

	for _, h := range habits {
		done := byHabit[h.ID]
		has := func(day string) bool {
			_, ok := done[day]
			return ok
		}

		p := HabitPerformance{Habit: h, Streak: streak(today, has)}

		completed := 0

		for i := range p.Last7Days {
			day := today.AddDate(0, 0, i-(len(p.Last7Days)-1))
			if has(dayKey(day)) {
				p.Last7Days[i] = true
				completed++
			}
		}

		p.CompletionRate = float64(completed) / float64(len(p.Last7Days)) * 100
		out = append(out, p)
	}

	return out
}

type GoalSummary struct {
	Total           int
	Completed       int
	Active          int
	Paused          int
	AverageProgress float64
}

// SummarizeGoals counts goals by status. AverageProgress spans all goals and
// is 0 when there are none.
func SummarizeGoals(goals []*goal.Goal) GoalSummary {
	s := GoalSummary{Total: len(goals)}

	sum := 0

	for _, g := range goals {
		sum += g.Progress

		switch g.Status {
		case goal.StatusCompleted:
			s.Completed++
		case goal.StatusActive:
			s.Active++
		case goal.StatusPaused:
			s.Paused++
		}
	}

	if s.Total > 0 {
		s.AverageProgress = float64(sum) / float64(s.Total)
	}

	return s
}

type FinanceSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int
}

// SummarizeFinances totals every transaction regardless of date.
func SummarizeFinances(txs []*transaction.Transaction) FinanceSummary {
	income, expenses := sumByType(txs, func(*transaction.Transaction) bool { return true })

	return FinanceSummary{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetIncome:        income.Sub(expenses),
		TransactionCount: len(txs),
	}
}

// civilDay is the calendar date of t in loc, expressed as midnight UTC so it
// compares directly with DATE columns and steps safely across DST changes.
func civilDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}

	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// streak counts consecutive days ending at today for which done holds.
func streak(today time.Time, done func(day string) bool) int {
	n := 0
	for day := today; done(dayKey(day)); day = day.AddDate(0, 0, -1) {
		n++
	}

	return n
}

func activeHabitIDs(habits []*habit.Habit) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(habits))

	for _, h := range habits {
		if h.IsActive {
			ids[h.ID] = struct{}{}
		}
	}

	return ids
}

// completionDays maps each day to the set of active habits completed on it.
func completionDays(completions []*habit.Completion, active map[uuid.UUID]struct{}) map[string]map[uuid.UUID]struct{} {
	days := make(map[string]map[uuid.UUID]struct{})

	for _, c := range completions {
		if _, ok := active[c.HabitID]; !ok {
			continue
		}

		key := dayKey(c.CompletedDate)
		if days[key] == nil {
			days[key] = make(map[uuid.UUID]struct{})
		}

		days[key][c.HabitID] = struct{}{}
	}

	return days
}

func activeGoalProgress(goals []*goal.Goal) int {
	sum, n := 0, 0

	for _, g := range goals {
		if g.Status == goal.StatusActive {
			sum += g.Progress
			n++
		}
	}

	if n == 0 {
		return 0
	}

	return int(math.Round(float64(sum) / float64(n)))
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}

	return int(math.Round(float64(part) / float64(whole) * 100))
}

func sumByType(txs []*transaction.Transaction, include func(*transaction.Transaction) bool) (income, expenses decimal.Decimal) {
	for _, tx := range txs {
		if !include(tx) {
			continue
		}

		switch tx.Type {
		case transaction.TypeIncome:
			income = income.Add(tx.Amount)
		case transaction.TypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	return income, expenses
}
