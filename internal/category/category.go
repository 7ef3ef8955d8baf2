package category

import (
	"time"

	"github.com/google/uuid"
)

// Rule assigns Category to any transaction whose description contains Pattern,
// compared case-insensitively.
type Rule struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Pattern   string    `db:"pattern"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
