package services

import (
	"context"
	"sync/atomic"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

// SuggestionService fronts the external title-suggestion collaborator. At
// most one suggestion call is in flight at a time; a second request while
// one is pending is rejected instead of queued, mirroring the disabled
// trigger control in the editor.
type SuggestionService struct {
	suggester ports.TitleSuggester
	logger    *logger.Logger
	inFlight  atomic.Bool
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(suggester ports.TitleSuggester, appLogger *logger.Logger) *SuggestionService {
	return &SuggestionService{
		suggester: suggester,
		logger:    appLogger,
	}
}

// SuggestTitle asks the collaborator for a title for the given draft
// content. Failures never affect the article store.
func (s *SuggestionService) SuggestTitle(ctx context.Context, content string) (string, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return "", entities.ErrSuggestionInFlight
	}
	defer s.inFlight.Store(false)

	title, err := s.suggester.SuggestTitle(ctx, content)
	if err != nil {
		s.logger.Warn("Title suggestion failed", "error", err)
		return "", err
	}

	s.logger.Info("Title suggested", "title", title)
	return title, nil
}
