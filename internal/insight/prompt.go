package insight

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

const (
	summarySystemPrompt = "You are a personal growth coach AI that provides insightful, encouraging, and actionable " +
		"feedback based on user data. Always be supportive and focus on progress over perfection."

	goalsSystemPrompt = "You are a goal achievement coach. Provide practical, specific recommendations based on " +
		"the user's current progress and patterns."
)

const (
	recentJournalLimit     = 5
	recentTransactionLimit = 10
)

type habitView struct {
	Name           string `json:"name"`
	Target         string `json:"target"`
	CompletedToday bool   `json:"completedToday"`
}

type goalView struct {
	Title      string `json:"title"`
	Progress   int    `json:"progress"`
	Status     string `json:"status"`
	TargetDate string `json:"targetDate,omitempty"`
}

type journalView struct {
	Title   string   `json:"title"`
	Mood    string   `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Content string   `json:"content,omitempty"`
	Date    string   `json:"date"`
}

type transactionView struct {
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date"`
}

func habitViews(habits []*habit.Habit, completedToday map[string]bool) []habitView {
	out := make([]habitView, 0, len(habits))

	for _, h := range habits {
		if !h.IsActive {
			continue
		}

		out = append(out, habitView{
			Name:           h.Name,
			Target:         fmt.Sprintf("%d %s", h.TargetAmount, h.Unit),
			CompletedToday: completedToday[h.ID.String()],
		})
	}

	return out
}

func goalViews(goals []*goal.Goal, activeOnly bool) []goalView {
	out := make([]goalView, 0, len(goals))

	for _, g := range goals {
		if activeOnly && g.Status != goal.StatusActive {
			continue
		}

		v := goalView{Title: g.Title, Progress: g.Progress, Status: string(g.Status)}
		if g.TargetDate != nil {
			v.TargetDate = g.TargetDate.Format(time.DateOnly)
		}

		out = append(out, v)
	}

	return out
}

// journalViews keeps the newest entries. Private entries contribute their
// mood and tags but not their text.
func journalViews(entries []*journal.Entry) []journalView {
	if len(entries) > recentJournalLimit {
		entries = entries[:recentJournalLimit]
	}

	out := make([]journalView, 0, len(entries))

	for _, e := range entries {
		v := journalView{Title: e.Title, Tags: e.Tags, Date: e.CreatedAt.Format(time.DateOnly)}
		if e.Mood != nil {
			v.Mood = *e.Mood
		}

		if e.IsPrivate {
			v.Title = ""
		} else {
			v.Content = e.Content
		}

		out = append(out, v)
	}

	return out
}

func transactionViews(txs []*transaction.Transaction) []transactionView {
	if len(txs) > recentTransactionLimit {
		txs = txs[:recentTransactionLimit]
	}

	out := make([]transactionView, 0, len(txs))

	for _, tx := range txs {
		v := transactionView{Type: string(tx.Type), Amount: tx.Amount.StringFixed(2), Date: tx.Date.Format(time.DateOnly)}
		if tx.Category != nil {
			v.Category = *tx.Category
		}

		out = append(out, v)
	}

	return out
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}

	return string(b)
}

func summaryPrompt(in Input) string {
	return fmt.Sprintf(`Analyze the following personal growth data and provide a daily summary with insights and recommendations.

Active habits: %s
Active goals: %s
Recent journal entries: %s
Recent transactions: %s

Please provide:
1. An encouraging and personalized summary (2-3 sentences)
2. Productivity score (1-100)
3. Wellbeing assessment (Poor, Fair, Good, Excellent)
4. Specific recommendations for improvement

Respond with only a JSON object in this format:
{
  "summary": "Personalized summary text",
  "productivity": 85,
  "wellbeing": "Good",
  "recommendations": ["Specific actionable recommendation 1", "Specific actionable recommendation 2"]
}`,
		toJSON(habitViews(in.Habits, in.CompletedToday)),
		toJSON(goalViews(in.Goals, true)),
		toJSON(journalViews(in.Journal)),
		toJSON(transactionViews(in.Transactions)),
	)
}

func goalsPrompt(in Input) string {
	return fmt.Sprintf(`Based on the following user data, suggest 3-5 specific, actionable recommendations for improving goal achievement.

Current goals: %s
Current habits: %s
Recent journal entries: %s

Respond with only a JSON object in this format:
{
  "recommendations": ["Specific recommendation 1", "Specific recommendation 2", "Specific recommendation 3"]
}`,
		toJSON(goalViews(in.Goals, false)),
		toJSON(habitViews(in.Habits, in.CompletedToday)),
		toJSON(journalViews(in.Journal)),
	)
}
