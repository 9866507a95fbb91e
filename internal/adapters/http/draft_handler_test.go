package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitiveflux/core/internal/adapters/repository"
	"github.com/cognitiveflux/core/internal/application/services"
	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
)

func newDraftHandler(t *testing.T) *DraftHandler {
	t.Helper()
	draftRepo, err := repository.NewDraftRepository(afero.NewMemMapFs(), "data", logger.NewNop())
	require.NoError(t, err)
	articleRepo := repository.NewArticleRepository()
	svc := services.NewDraftService(draftRepo, articleRepo, logger.NewNop())
	return NewDraftHandler(svc, logger.NewNop())
}

func TestDraftSaveRestoreClear(t *testing.T) {
	handler := newDraftHandler(t)
	e := newTestEcho()

	// Save a snapshot.
	body := `{"formState": {"title": "Work in progress", "content": "Half done"}, "editingId": null}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.SaveDraft(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Restore it.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, handler.GetDraft(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var draft entities.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, "Work in progress", draft.Form.Title)
	assert.Nil(t, draft.EditingID)

	// Clear it.
	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, handler.ClearDraft(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Restoring again reports no draft.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	err := handler.GetDraft(e.NewContext(req, rec))
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestSuggestTitleRequiresContent(t *testing.T) {
	svc := services.NewSuggestionService(failingSuggester{}, logger.NewNop())
	handler := NewSuggestionHandler(svc, logger.NewNop())
	e := newTestEcho()

	c, _ := postJSON(e, `{"content": ""}`)
	err := handler.SuggestTitle(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSuggestTitleUnavailable(t *testing.T) {
	svc := services.NewSuggestionService(failingSuggester{}, logger.NewNop())
	handler := NewSuggestionHandler(svc, logger.NewNop())
	e := newTestEcho()

	c, _ := postJSON(e, `{"content": "some draft text"}`)
	err := handler.SuggestTitle(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

type failingSuggester struct{}

func (failingSuggester) SuggestTitle(ctx context.Context, content string) (string, error) {
	return "", entities.ErrSuggestionUnavailable
}
