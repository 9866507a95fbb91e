package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cognitiveflux/core/internal/application/services"
	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

// DraftHandler handles autosave draft requests.
type DraftHandler struct {
	draftService *services.DraftService
	logger       *logger.Logger
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *services.DraftService, appLogger *logger.Logger) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		logger:       appLogger,
	}
}

// SaveDraft overwrites the stored draft with the submitted form snapshot.
func (h *DraftHandler) SaveDraft(c echo.Context) error {
	var draft entities.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.draftService.Save(c.Request().Context(), &draft); err != nil {
		h.logger.Error("Save draft failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save draft")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Draft saved"})
}

// GetDraft restores the stored draft, if any.
func (h *DraftHandler) GetDraft(c echo.Context) error {
	draft, err := h.draftService.Restore(c.Request().Context())
	if err != nil {
		if errors.Is(err, entities.ErrDraftNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No draft stored")
		}
		h.logger.Error("Restore draft failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to restore draft")
	}
	return c.JSON(http.StatusOK, draft)
}

// ClearDraft discards the stored draft.
func (h *DraftHandler) ClearDraft(c echo.Context) error {
	if err := h.draftService.Clear(c.Request().Context()); err != nil {
		h.logger.Error("Clear draft failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear draft")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Draft cleared"})
}

// SuggestionHandler fronts the title-suggestion collaborator.
type SuggestionHandler struct {
	suggestionService *services.SuggestionService
	logger            *logger.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService *services.SuggestionService, appLogger *logger.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		logger:            appLogger,
	}
}

// SuggestTitle proposes a title for the submitted draft content.
func (h *SuggestionHandler) SuggestTitle(c echo.Context) error {
	var req ports.SuggestTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please write some content first to suggest a title")
	}

	title, err := h.suggestionService.SuggestTitle(c.Request().Context(), req.Content)
	if err != nil {
		if errors.Is(err, entities.ErrSuggestionInFlight) {
			return echo.NewHTTPError(http.StatusConflict, "A title suggestion is already in progress")
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Could not suggest a title right now")
	}

	return c.JSON(http.StatusOK, ports.SuggestTitleResponse{Title: title})
}
