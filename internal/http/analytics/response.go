package analytics

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
)

type statsResponse struct {
	CurrentStreak       int         `json:"currentStreak"`
	HabitCompletionRate int         `json:"habitCompletionRate"`
	GoalProgress        int         `json:"goalProgress"`
	HabitsCompleted     int         `json:"habitsCompleted"`
	TotalHabits         int         `json:"totalHabits"`
	MonthlyIncome       json.Number `json:"monthlyIncome"`
	TotalIncome         json.Number `json:"totalIncome"`
	TotalExpenses       json.Number `json:"totalExpenses"`
}

type habitPerformanceResponse struct {
	HabitID        uuid.UUID `json:"habitId"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"isActive"`
	Last7Days      [7]bool   `json:"last7Days"`
	CompletionRate float64   `json:"completionRate"`
	Streak         int       `json:"streak"`
}

type goalSummaryResponse struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	Active          int     `json:"active"`
	Paused          int     `json:"paused"`
	AverageProgress float64 `json:"averageProgress"`
}

type financeSummaryResponse struct {
	TotalIncome      json.Number `json:"totalIncome"`
	TotalExpenses    json.Number `json:"totalExpenses"`
	NetIncome        json.Number `json:"netIncome"`
	TransactionCount int         `json:"transactionCount"`
}

type reportResponse struct {
	Habits  []habitPerformanceResponse `json:"habits"`
	Goals   goalSummaryResponse        `json:"goals"`
	Finance financeSummaryResponse     `json:"finance"`
}

func toStatsResponse(s analytics.Stats) statsResponse {
	return statsResponse{
		CurrentStreak:       s.CurrentStreak,
		HabitCompletionRate: s.HabitCompletionRate,
		GoalProgress:        s.GoalProgress,
		HabitsCompleted:     s.HabitsCompleted,
		TotalHabits:         s.TotalHabits,
		MonthlyIncome:       param.Money(s.MonthlyIncome),
		TotalIncome:         param.Money(s.TotalIncome),
		TotalExpenses:       param.Money(s.TotalExpenses),
	}
}

func toReportResponse(rep *analytics.Report) reportResponse {
	habits := make([]habitPerformanceResponse, len(rep.Habits))
	for i, p := range rep.Habits {
		habits[i] = habitPerformanceResponse{
			HabitID:        p.Habit.ID,
			Name:           p.Habit.Name,
			IsActive:       p.Habit.IsActive,
			Last7Days:      p.Last7Days,
			CompletionRate: round1(p.CompletionRate),
			Streak:         p.Streak,
		}
	}

	return reportResponse{
		Habits: habits,
		Goals: goalSummaryResponse{
			Total:           rep.Goals.Total,
			Completed:       rep.Goals.Completed,
			Active:          rep.Goals.Active,
			Paused:          rep.Goals.Paused,
			AverageProgress: round1(rep.Goals.AverageProgress),
		},
		Finance: financeSummaryResponse{
			TotalIncome:      param.Money(rep.Finance.TotalIncome),
			TotalExpenses:    param.Money(rep.Finance.TotalExpenses),
			NetIncome:        param.Money(rep.Finance.NetIncome),
			TransactionCount: rep.Finance.TransactionCount,
		},
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
