package journal

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Mood      *string   `db:"mood"`
	Tags      []string  `db:"tags"`
	ImageURL  *string   `db:"image_url"`
	IsPrivate bool      `db:"is_private"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
