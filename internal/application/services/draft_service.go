package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

// DraftService guards against losing an in-progress edit: the form is
// autosaved on every change while the editor panel is open and restored
// once at the next start.
type DraftService struct {
	draftRepo   ports.DraftRepository
	articleRepo ports.ArticleRepository
	logger      *logger.Logger
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo ports.DraftRepository, articleRepo ports.ArticleRepository, appLogger *logger.Logger) *DraftService {
	return &DraftService{
		draftRepo:   draftRepo,
		articleRepo: articleRepo,
		logger:      appLogger,
	}
}

// Save snapshots the current form state, overwriting any previous draft.
func (s *DraftService) Save(ctx context.Context, draft *entities.Draft) error {
	if err := s.draftRepo.Save(ctx, draft); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Restore returns the stored draft, if any. A draft that references an
// article deleted since the autosave degrades to a create-new draft: its
// editing id is cleared rather than letting a later submit target an id
// that no longer exists.
func (s *DraftService) Restore(ctx context.Context) (*entities.Draft, error) {
	draft, err := s.draftRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if draft.EditingID != nil {
		if _, err := s.articleRepo.GetByID(ctx, *draft.EditingID); errors.Is(err, entities.ErrArticleNotFound) {
			s.logger.Info("Draft referenced a deleted article, degrading to create", "editing_id", *draft.EditingID)
			draft.EditingID = nil
			if err := s.draftRepo.Save(ctx, draft); err != nil {
				return nil, fmt.Errorf("failed to rewrite draft: %w", err)
			}
		} else if err != nil {
			return nil, err
		}
	}

	return draft, nil
}

// Clear discards the stored draft, used when the editor panel closes after
// a cancel or a successful submit.
func (s *DraftService) Clear(ctx context.Context) error {
	if err := s.draftRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
