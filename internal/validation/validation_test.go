package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/validation"
)

type request struct {
	Title    string  `json:"title" validate:"required,max=10"`
	Progress *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Status   *string `json:"status" validate:"omitempty,oneof=active completed paused"`
	Date     string  `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     request
		field   string
		message string
	}{
		{
			name: "valid",
			req:  request{Title: "Run", Progress: new(40), Status: new("paused"), Date: "2025-03-01"},
		},
		{
			name:    "missing title",
			req:     request{},
			field:   "title",
			message: "is required",
		},
		{
			name:    "title too long",
			req:     request{Title: "a very long title"},
			field:   "title",
			message: "must be at most 10 characters",
		},
		{
			name:    "progress above range",
			req:     request{Title: "Run", Progress: new(101)},
			field:   "progress",
			message: "must be less than or equal to 100",
		},
		{
			name:    "unknown status",
			req:     request{Title: "Run", Status: new("archived")},
			field:   "status",
			message: "must be one of: active, completed, paused",
		},
		{
			name:    "malformed date",
			req:     request{Title: "Run", Date: "01/03/2025"},
			field:   "targetDate",
			message: "must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, apperr.ErrValidation)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Equal(t, tt.message, ve.Errors[0].Message)
		})
	}
}
