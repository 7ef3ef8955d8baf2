package habit

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTargetAmount = 1
	DefaultUnit         = "times"
	DefaultIcon         = "check"
	DefaultColor        = "primary"
)

// Habit is a recurring activity. Inactive habits are kept but excluded from daily stats.
type Habit struct {
	ID           uuid.UUID `db:"id"`
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	TargetAmount int       `db:"target_amount"`
	Unit         string    `db:"unit"`
	Icon         string    `db:"icon"`
	Color        string    `db:"color"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Completion marks a habit as done on a calendar day. Several completions may share
// the same habit and day, and a completion survives the deletion of its habit.
type Completion struct {
	ID            uuid.UUID `db:"id"`
	HabitID       uuid.UUID `db:"habit_id"`
	UserID        string    `db:"user_id"`
	CompletedDate time.Time `db:"completed_date"`
	Amount        int       `db:"amount"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
}
