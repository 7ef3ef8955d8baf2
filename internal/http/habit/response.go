package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/http/param"
)

type habitResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetAmount int       `json:"targetAmount"`
	Unit         string    `json:"unit"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type completionResponse struct {
	ID            uuid.UUID `json:"id"`
	HabitID       uuid.UUID `json:"habitId"`
	UserID        string    `json:"userId"`
	CompletedDate string    `json:"completedDate"`
	Amount        int       `json:"amount"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toResponse(h *habit.Habit) habitResponse {
	return habitResponse{
		ID:           h.ID,
		UserID:       h.UserID,
		Name:         h.Name,
		Description:  h.Description,
		TargetAmount: h.TargetAmount,
		Unit:         h.Unit,
		Icon:         h.Icon,
		Color:        h.Color,
		IsActive:     h.IsActive,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func toResponseList(habits []*habit.Habit) []habitResponse {
	resp := make([]habitResponse, len(habits))
	for i, h := range habits {
		resp[i] = toResponse(h)
	}

	return resp
}

func toCompletionResponse(c *habit.Completion) completionResponse {
	return completionResponse{
		ID:            c.ID,
		HabitID:       c.HabitID,
		UserID:        c.UserID,
		CompletedDate: param.FormatDate(c.CompletedDate),
		Amount:        c.Amount,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
	}
}

func toCompletionResponseList(completions []*habit.Completion) []completionResponse {
	resp := make([]completionResponse, len(completions))
	for i, c := range completions {
		resp[i] = toCompletionResponse(c)
	}

	return resp
}
