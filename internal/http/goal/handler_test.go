package goal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/goal"
	goalhttp "github.com/MrJamesThe3rd/ascend/internal/http/goal"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
)

const userID = "user-1"

func newRouter(repo goal.Repository) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(identity.WithUserID(req.Context(), userID)))
		})
	})
	r.Route("/api/goals", goalhttp.NewHandler(goal.NewService(repo)).Routes)

	return r
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *goal.MockRepository)
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name: "created with defaults",
			body: `{"title":"Run a marathon","targetDate":"2025-10-12"}`,
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, g *goal.Goal) error {
					assert.Equal(t, userID, g.UserID)
					assert.Equal(t, goal.StatusActive, g.Status)
					assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), *g.TargetDate)
					g.ID = uuid.New()

					return nil
				})
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Run a marathon", body["title"])
				assert.Equal(t, "2025-10-12", body["targetDate"])
				assert.Equal(t, "active", body["status"])
				assert.EqualValues(t, 0, body["progress"])
			},
		},
		{
			name:       "progress out of range",
			body:       `{"title":"x","progress":140}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Invalid request", body["message"])
				assert.NotEmpty(t, body["errors"])
			},
		},
		{
			name:       "missing title",
			body:       `{"description":"no title"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date",
			body:       `{"title":"x","targetDate":"12/10/2025"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"title":"x","owner":"someone"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"title":"x"}`,
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Failed to create goal", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := goal.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.check != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	repo.EXPECT().ListGoals(gomock.Any(), userID).Return([]*goal.Goal{
		{ID: uuid.New(), Title: "b", Status: goal.StatusPaused, Progress: 10},
		{ID: uuid.New(), Title: "a", Status: goal.StatusActive},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "b", body[0]["title"])
	assert.Nil(t, body[0]["targetDate"])
}

func TestHandler_Update(t *testing.T) {
	id := uuid.New()

	t.Run("partial patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)

		repo.EXPECT().
			UpdateGoal(gomock.Any(), userID, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, patch goal.Patch) (*goal.Goal, error) {
				assert.Nil(t, patch.Title)
				assert.Nil(t, patch.TargetDate)
				assert.False(t, patch.ClearTargetDate)
				require.NotNil(t, patch.Progress)
				assert.Equal(t, 70, *patch.Progress)

				return &goal.Goal{ID: id, Title: "Run", Progress: 70, Status: goal.StatusActive}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/goals/"+id.String(), strings.NewReader(`{"progress":70}`))
		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"progress":70`)
	})

	t.Run("null target date clears it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)

		repo.EXPECT().
			UpdateGoal(gomock.Any(), userID, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, patch goal.Patch) (*goal.Goal, error) {
				assert.True(t, patch.ClearTargetDate)
				assert.Nil(t, patch.TargetDate)

				return &goal.Goal{ID: id, Title: "Run", Status: goal.StatusActive}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/goals/"+id.String(), strings.NewReader(`{"targetDate":null}`))
		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"targetDate":null`)
	})

	t.Run("new target date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)

		repo.EXPECT().
			UpdateGoal(gomock.Any(), userID, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, patch goal.Patch) (*goal.Goal, error) {
				assert.False(t, patch.ClearTargetDate)
				require.NotNil(t, patch.TargetDate)
				assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), *patch.TargetDate)

				return &goal.Goal{ID: id, Title: "Run", TargetDate: patch.TargetDate, Status: goal.StatusActive}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/goals/"+id.String(), strings.NewReader(`{"targetDate":"2026-01-31"}`))
		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"targetDate":"2026-01-31"`)
	})

	t.Run("someone else's goal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := goal.NewMockRepository(ctrl)

		repo.EXPECT().UpdateGoal(gomock.Any(), userID, id, gomock.Any()).Return(nil, apperr.ErrNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/goals/"+id.String(), strings.NewReader(`{"status":"completed"}`))
		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		req := httptest.NewRequest(http.MethodPatch, "/api/goals/42", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		newRouter(goal.NewMockRepository(ctrl)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().DeleteGoal(gomock.Any(), userID, id).Return(nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/goals/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_RequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := chi.NewRouter()
	r.Route("/api/goals", goalhttp.NewHandler(goal.NewService(goal.NewMockRepository(ctrl))).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
}
