package goal

import (
	"time"

	"github.com/google/uuid"
)

// Status is where a goal stands. Progress and status are independent:
// a completed goal may still report progress below 100.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}

	return false
}

type Goal struct {
	ID          uuid.UUID  `db:"id"`
	UserID      string     `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	TargetDate  *time.Time `db:"target_date"`
	Progress    int        `db:"progress"`
	Status      Status     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
