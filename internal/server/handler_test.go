package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
	mock_server "github.com/Korichi-ishak/traducteur-pro/internal/server/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandlerMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_server.MockServiceI)) http.Handler {
	service := mock_server.NewMockServiceI(ctrl)
	if setupMock != nil {
		setupMock(service)
	}

	return NewHandler(service, zap.NewNop()).Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Translate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     any
		f        func(*mock_server.MockServiceI)
		wantCode int
	}{
		{
			name: "word mode",
			body: map[string]string{"text": "Haus"},
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().TranslateWord(gomock.Any(), "Haus", models.LangGerman, models.LangFrench).
					Return(models.LookupResult{Word: "Haus", MainTranslation: "maison"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "sentence mode by token count",
			body: map[string]string{"text": "Das Haus ist sehr groß"},
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().TranslateSentence(gomock.Any(), "Das Haus ist sehr groß", models.LangGerman, models.LangFrench).
					Return(models.SentenceResult{Translation: "La maison est très grande"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "explicit sentence mode",
			body: map[string]string{"text": "Guten Morgen", "mode": "sentence"},
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().TranslateSentence(gomock.Any(), "Guten Morgen", models.LangGerman, models.LangFrench).
					Return(models.SentenceResult{Translation: "Bonjour"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "reversed pair",
			body: map[string]string{"text": "maison", "src": "fr", "tgt": "de"},
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().TranslateWord(gomock.Any(), "maison", models.LangFrench, models.LangGerman).
					Return(models.LookupResult{Word: "maison", MainTranslation: "Haus"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "invalid input maps to 400",
			body: map[string]string{"text": ""},
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().TranslateWord(gomock.Any(), "", models.LangGerman, models.LangFrench).
					Return(models.LookupResult{}, models.ErrInvalidInput)
			},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlerMock(t, ctrl, tt.f)

			rec := doRequest(t, handler, http.MethodPost, "/api/translate", "", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_QuickTranslate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newHandlerMock(t, ctrl, func(msi *mock_server.MockServiceI) {
		msi.EXPECT().QuickTranslate(gomock.Any(), "Hund", models.LangGerman, models.LangFrench).Return("chien", nil)
	})

	rec := doRequest(t, handler, http.MethodPost, "/api/quick-translate", "", map[string]string{"text": "Hund"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp quickTranslateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "chien", resp.Translation)
	assert.Equal(t, models.LangGerman, resp.Src)
}

func TestHandler_HistoryRequiresUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newHandlerMock(t, ctrl, nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/history/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_ListHistory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []models.VocabularyEntry{{ID: uuid.New(), UserID: "user-1", Word: "Haus"}}

	handler := newHandlerMock(t, ctrl, func(msi *mock_server.MockServiceI) {
		msi.EXPECT().List(gomock.Any(), "user-1").Return(entries, nil)
	})

	rec := doRequest(t, handler, http.MethodGet, "/api/history/", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.VocabularyEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Haus", got[0].Word)
}

func TestHandler_AddToHistory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	res := models.LookupResult{MainTranslation: "maison"}
	saved := models.VocabularyEntry{ID: uuid.New(), UserID: "user-1", Word: "Haus", MainTranslation: "maison"}

	handler := newHandlerMock(t, ctrl, func(msi *mock_server.MockServiceI) {
		msi.EXPECT().UpsertLookup(gomock.Any(), "user-1", "Haus", models.LangGerman, models.LangFrench, res).
			Return(saved, nil)
	})

	body := map[string]any{"word": "Haus", "result": res}
	rec := doRequest(t, handler, http.MethodPost, "/api/history/", "user-1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.VocabularyEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, saved.ID, got.ID)
}

func TestHandler_SearchHistory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newHandlerMock(t, ctrl, func(msi *mock_server.MockServiceI) {
		msi.EXPECT().Search(gomock.Any(), "user-1", "hau").Return([]models.VocabularyEntry{}, nil)
	})

	rec := doRequest(t, handler, http.MethodGet, "/api/history/search?q=hau", "user-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteEntry(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name     string
		path     string
		f        func(*mock_server.MockServiceI)
		wantCode int
	}{
		{
			name: "success",
			path: "/api/history/" + id.String(),
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().Delete(gomock.Any(), "user-1", id).Return(true, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/history/" + id.String(),
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().Delete(gomock.Any(), "user-1", id).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "malformed id",
			path:     "/api/history/not-a-uuid",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlerMock(t, ctrl, tt.f)

			rec := doRequest(t, handler, http.MethodDelete, tt.path, "user-1", nil)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_RevisionWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		f        func(*mock_server.MockServiceI)
		wantCode int
	}{
		{
			name: "default limit",
			path: "/api/history/revision/words",
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().SelectForRevision(gomock.Any(), "user-1", 0).Return([]models.VocabularyEntry{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "explicit limit",
			path: "/api/history/revision/words?limit=5",
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().SelectForRevision(gomock.Any(), "user-1", 5).Return([]models.VocabularyEntry{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed limit",
			path:     "/api/history/revision/words?limit=abc",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlerMock(t, ctrl, tt.f)

			rec := doRequest(t, handler, http.MethodGet, tt.path, "user-1", nil)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_RecordAnswer(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name     string
		f        func(*mock_server.MockServiceI)
		wantCode int
	}{
		{
			name: "success",
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().RecordAnswer(gomock.Any(), "user-1", id, true).
					Return(models.VocabularyEntry{ID: id, RevisionScore: 2}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown entry maps to 404",
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().RecordAnswer(gomock.Any(), "user-1", id, true).
					Return(models.VocabularyEntry{}, models.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "backend error maps to 500",
			f: func(msi *mock_server.MockServiceI) {
				msi.EXPECT().RecordAnswer(gomock.Any(), "user-1", id, true).
					Return(models.VocabularyEntry{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := newHandlerMock(t, ctrl, tt.f)

			body := map[string]any{"word_id": id, "correct": true}
			rec := doRequest(t, handler, http.MethodPost, "/api/history/revision", "user-1", body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newHandlerMock(t, ctrl, func(msi *mock_server.MockServiceI) {
		msi.EXPECT().UpdateSession(gomock.Any(), "user-1", 8, 6).
			Return(models.SessionStats{UserID: "user-1", TotalSessions: 1}, nil)
	})

	body := map[string]int{"words_reviewed": 8, "correct_count": 6}
	rec := doRequest(t, handler, http.MethodPost, "/api/history/revision/session", "user-1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.SessionStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.TotalSessions)
}

func TestHandler_Statistics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newHandlerMock(t, ctrl, func(msi *mock_server.MockServiceI) {
		msi.EXPECT().Statistics(gomock.Any(), "user-1").Return(models.Statistics{
			SessionStats: models.SessionStats{UserID: "user-1", StreakDays: 3},
			TotalWords:   6,
			SuccessRate:  75,
		}, nil)
	})

	rec := doRequest(t, handler, http.MethodGet, "/api/history/statistics", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 6, got.TotalWords)
	assert.Equal(t, 3, got.StreakDays)
}
