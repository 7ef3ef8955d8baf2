package insight

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeDailySummary        Type = "daily_summary"
	TypeGoalRecommendations Type = "goal_recommendations"
)

func (t Type) Valid() bool {
	return t == TypeDailySummary || t == TypeGoalRecommendations
}

// Insight is an immutable snapshot of one generation run. Data is stored as
// given and never interpreted by the store.
type Insight struct {
	ID        uuid.UUID       `db:"id"`
	UserID    string          `db:"user_id"`
	Type      Type            `db:"type"`
	Title     string          `db:"title"`
	Content   string          `db:"content"`
	Data      json.RawMessage `db:"data"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
}

// SummaryData is the payload of a daily summary. The three habit and goal
// figures come from analytics, never from the model.
type SummaryData struct {
	Productivity        int      `json:"productivity"`
	Wellbeing           string   `json:"wellbeing"`
	StreakCount         int      `json:"streakCount"`
	HabitCompletionRate int      `json:"habitCompletionRate"`
	GoalProgress        int      `json:"goalProgress"`
	Recommendations     []string `json:"recommendations"`
}

type RecommendationsData struct {
	Recommendations []string `json:"recommendations"`
}
