package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
)

type goalResponse struct {
	ID          uuid.UUID   `json:"id"`
	UserID      string      `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	TargetDate  *string     `json:"targetDate"`
	Progress    int         `json:"progress"`
	Status      goal.Status `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toResponse(g *goal.Goal) goalResponse {
	return goalResponse{
		ID:          g.ID,
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  param.FormatDatePtr(g.TargetDate),
		Progress:    g.Progress,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toResponseList(goals []*goal.Goal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	return resp
}
