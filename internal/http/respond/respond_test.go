package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("row 3: %w", apperr.NewValidationError("amount", "must be greater than 0")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid request","errors":[{"field":"amount","message":"must be greater than 0"}]}`,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("deleting goal x: %w", apperr.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Not found"}`,
		},
		{
			name:       "internal",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Failed to fetch goals"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)

			respond.Error(rec, req, tt.err, "Failed to fetch goals")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestDecode(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	require.True(t, respond.Decode(rec, req, &dst))
	assert.Equal(t, "x", dst.Title)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.False(t, respond.Decode(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
