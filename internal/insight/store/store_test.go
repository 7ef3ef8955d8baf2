package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/insight"
	"github.com/MrJamesThe3rd/ascend/internal/insight/store"
)

var insightColumns = []string{"id", "user_id", "type", "title", "content", "data", "date", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func TestStore_CreateInsight(t *testing.T) {
	mock := newMock(t)

	id := uuid.New()
	now := time.Now()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	data := json.RawMessage(`{"productivity":80}`)

	mock.ExpectQuery("INSERT INTO ai_insights").
		WithArgs("user-1", insight.TypeDailySummary, "Daily Summary", "Nice work", `{"productivity":80}`, day).
		WillReturnRows(pgxmock.NewRows(insightColumns).
			AddRow(id, "user-1", insight.TypeDailySummary, "Daily Summary", "Nice work", data, day, now))

	in := &insight.Insight{
		UserID:  "user-1",
		Type:    insight.TypeDailySummary,
		Title:   "Daily Summary",
		Content: "Nice work",
		Data:    data,
		Date:    day,
	}
	require.NoError(t, store.New(mock).CreateInsight(context.Background(), in))

	assert.Equal(t, id, in.ID)
	assert.Equal(t, now, in.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateInsight_EmptyData(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO ai_insights").
		WithArgs("user-1", insight.TypeGoalRecommendations, "Goal Recommendations", "", "{}", now).
		WillReturnRows(pgxmock.NewRows(insightColumns).
			AddRow(uuid.New(), "user-1", insight.TypeGoalRecommendations, "Goal Recommendations", "", json.RawMessage("{}"), now, now))

	in := &insight.Insight{UserID: "user-1", Type: insight.TypeGoalRecommendations, Title: "Goal Recommendations", Date: now}
	require.NoError(t, store.New(mock).CreateInsight(context.Background(), in))
	assert.JSONEq(t, "{}", string(in.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListInsights(t *testing.T) {
	summary := insight.TypeDailySummary

	tests := []struct {
		name  string
		typ   *insight.Type
		query string
		args  []any
	}{
		{
			name:  "all types",
			query: `SELECT .* FROM ai_insights WHERE user_id = \$1 ORDER BY created_at DESC`,
			args:  []any{"user-1"},
		},
		{
			name:  "one type",
			typ:   &summary,
			query: `WHERE type = \$1 AND user_id = \$2 ORDER BY created_at DESC`,
			args:  []any{summary, "user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			now := time.Now()

			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(pgxmock.NewRows(insightColumns).
					AddRow(uuid.New(), "user-1", summary, "Daily Summary", "x", json.RawMessage("{}"), now, now))

			got, err := store.New(mock).ListInsights(context.Background(), "user-1", tt.typ)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_LatestInsight_None(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`FROM ai_insights WHERE type = \$1 AND user_id = \$2 ORDER BY created_at DESC LIMIT 1`).
		WithArgs(insight.TypeGoalRecommendations, "user-1").
		WillReturnRows(pgxmock.NewRows(insightColumns))

	_, err := store.New(mock).LatestInsight(context.Background(), "user-1", insight.TypeGoalRecommendations)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
