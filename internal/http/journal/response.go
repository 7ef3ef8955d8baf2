package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/journal"
)

type entryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      *string   `json:"mood"`
	Tags      []string  `json:"tags"`
	ImageURL  *string   `json:"imageUrl"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(e *journal.Entry) entryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return entryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		Tags:      tags,
		ImageURL:  e.ImageURL,
		IsPrivate: e.IsPrivate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toResponseList(entries []*journal.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
