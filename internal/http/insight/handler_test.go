package insight_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ascend/internal/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	insighthttp "github.com/MrJamesThe3rd/ascend/internal/http/insight"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/insight"
)

const userID = "user-1"

var now = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *insight.MockRepository
	records *insight.MockRecordLoader
	journal *insight.MockJournalReader
	router  http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:    insight.NewMockRepository(ctrl),
		records: insight.NewMockRecordLoader(ctrl),
		journal: insight.NewMockJournalReader(ctrl),
	}

	svc := insight.NewService(f.repo, f.records, f.journal, insight.Fallback{}, time.UTC,
		insight.WithClock(func() time.Time { return now }))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(identity.WithUserID(req.Context(), userID)))
		})
	})
	r.Route("/api/ai-insights", insighthttp.NewHandler(svc).Routes)
	f.router = r

	return f
}

func (f *fixture) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

// Without a model the endpoint still succeeds and stores the fallback summary.
func TestHandler_DailySummary_Fallback(t *testing.T) {
	f := newFixture(t)

	f.records.EXPECT().Load(gomock.Any(), userID).Return(&analytics.Records{}, nil)
	f.records.EXPECT().Stats(gomock.Any()).Return(analytics.Stats{CurrentStreak: 3, HabitCompletionRate: 50, GoalProgress: 20})
	f.journal.EXPECT().List(gomock.Any(), userID).Return(nil, nil)
	f.repo.EXPECT().CreateInsight(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in *insight.Insight) error {
		in.ID = uuid.New()
		in.CreatedAt = now
		return nil
	})

	rec := f.do(http.MethodPost, "/api/ai-insights/daily-summary")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Type    string          `json:"type"`
		Title   string          `json:"title"`
		Content string          `json:"content"`
		Date    string          `json:"date"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "daily_summary", body.Type)
	assert.Equal(t, "Daily Summary", body.Title)
	assert.Equal(t, insight.FallbackSummary, body.Content)
	assert.Equal(t, "2025-06-02", body.Date)
	assert.JSONEq(t, `{
		"productivity": 75,
		"wellbeing": "Good",
		"streakCount": 3,
		"habitCompletionRate": 50,
		"goalProgress": 20,
		"recommendations": ["Continue building consistent habits", "Set specific, measurable goals"]
	}`, string(body.Data))
}

func TestHandler_GoalRecommendations(t *testing.T) {
	f := newFixture(t)

	f.records.EXPECT().Load(gomock.Any(), userID).Return(&analytics.Records{}, nil)
	f.journal.EXPECT().List(gomock.Any(), userID).Return(nil, nil)
	f.repo.EXPECT().CreateInsight(gomock.Any(), gomock.Any()).Return(nil)

	rec := f.do(http.MethodPost, "/api/ai-insights/goal-recommendations")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"goal_recommendations"`)
}

func TestHandler_Latest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *insight.MockRepository)
		wantStatus int
	}{
		{
			name: "defaults to daily summary",
			setupMock: func(m *insight.MockRepository) {
				m.EXPECT().LatestInsight(gomock.Any(), userID, insight.TypeDailySummary).
					Return(&insight.Insight{ID: uuid.New(), Type: insight.TypeDailySummary, Data: json.RawMessage(`{"productivity":90}`)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "none yet",
			query: "?type=goal_recommendations",
			setupMock: func(m *insight.MockRepository) {
				m.EXPECT().LatestInsight(gomock.Any(), userID, insight.TypeGoalRecommendations).Return(nil, apperr.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown type",
			query:      "?type=weekly",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setupMock != nil {
				tt.setupMock(f.repo)
			}

			rec := f.do(http.MethodGet, "/api/ai-insights/latest"+tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_List(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListInsights(gomock.Any(), userID, (*insight.Type)(nil)).
		Return([]*insight.Insight{{ID: uuid.New(), Type: insight.TypeDailySummary}}, nil)

	rec := f.do(http.MethodGet, "/api/ai-insights")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":{}`)
}
