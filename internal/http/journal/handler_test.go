package journal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	journalhttp "github.com/MrJamesThe3rd/ascend/internal/http/journal"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
)

const userID = "user-1"

func newRouter(repo journal.Repository) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(identity.WithUserID(req.Context(), userID)))
		})
	})
	r.Route("/api/journal-entries", journalhttp.NewHandler(journal.NewService(repo)).Routes)

	return r
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *journal.MockRepository)
		wantStatus int
	}{
		{
			name: "private entry with tags",
			body: `{"title":"Evening","content":"Long walk","mood":"calm","tags":["walk"," walk ","outdoors"],"isPrivate":true}`,
			setupMock: func(m *journal.MockRepository) {
				m.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *journal.Entry) error {
					assert.Equal(t, []string{"walk", "outdoors"}, e.Tags)
					assert.True(t, e.IsPrivate)
					e.ID = uuid.New()

					return nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing content",
			body:       `{"title":"Evening"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad image url",
			body:       `{"title":"Evening","content":"x","imageUrl":"not a url"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := journal.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec,
				httptest.NewRequest(http.MethodPost, "/api/journal-entries", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := journal.NewMockRepository(ctrl)

	repo.EXPECT().ListEntries(gomock.Any(), userID).Return([]*journal.Entry{{ID: uuid.New(), Title: "a"}}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/journal-entries", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, []any{}, body[0]["tags"])
	assert.Nil(t, body[0]["mood"])
}

func TestHandler_Update(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := journal.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateEntry(gomock.Any(), userID, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, patch journal.Patch) (*journal.Entry, error) {
			require.NotNil(t, patch.Tags)
			assert.Equal(t, []string{}, *patch.Tags)
			assert.Nil(t, patch.Title)

			return &journal.Entry{ID: id, Title: "Evening"}, nil
		})

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPatch, "/api/journal-entries/"+id.String(), strings.NewReader(`{"tags":[]}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := journal.NewMockRepository(ctrl)
	repo.EXPECT().DeleteEntry(gomock.Any(), userID, id).Return(nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/journal-entries/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
