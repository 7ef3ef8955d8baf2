package category_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ascend/internal/category"
	categoryhttp "github.com/MrJamesThe3rd/ascend/internal/http/category"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
)

const userID = "user-1"

func newRouter(repo category.Repository) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(identity.WithUserID(req.Context(), userID)))
		})
	})
	r.Route("/api/category-rules", categoryhttp.NewHandler(category.NewService(repo)).Routes)

	return r
}

func TestHandler_Suggest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *category.MockRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "match",
			query: "?description=PINGO+DOCE+LISBOA",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), userID, "PINGO DOCE LISBOA").Return("Groceries", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"category":"Groceries"}`,
		},
		{
			name:  "no match",
			query: "?description=unknown",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), userID, "unknown").Return("", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"category":null}`,
		},
		{
			name:       "missing description",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := category.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/category-rules/suggest"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)

	repo.EXPECT().UpsertRule(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rule *category.Rule) error {
		assert.Equal(t, userID, rule.UserID)
		assert.Equal(t, "netflix", rule.Pattern)
		rule.ID = uuid.New()

		return nil
	})

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/category-rules",
		strings.NewReader(`{"pattern":" netflix ","category":"Subscriptions"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"Subscriptions"`)

	rec = httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/category-rules",
		strings.NewReader(`{"pattern":"netflix"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)

	repo.EXPECT().ListRules(gomock.Any(), userID).Return([]*category.Rule{{Pattern: "uber", Category: "Transport"}}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/category-rules", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pattern":"uber"`)
}
