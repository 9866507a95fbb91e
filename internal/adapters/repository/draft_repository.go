package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
)

// draftFilename is the single fixed key the draft store writes under.
const draftFilename = "draft.json"

// DraftRepository persists the in-progress edit form to a file so an
// interrupted editing session can be recovered after a restart. It is the
// only durable state in the system. The filesystem is abstracted behind
// afero so tests run against an in-memory fs.
type DraftRepository struct {
	mu     sync.Mutex
	fs     afero.Fs
	path   string
	logger *logger.Logger
}

// NewDraftRepository creates a draft store rooted at dataDir on fs.
func NewDraftRepository(fs afero.Fs, dataDir string, appLogger *logger.Logger) (*DraftRepository, error) {
	if err := fs.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &DraftRepository{
		fs:     fs,
		path:   filepath.Join(dataDir, draftFilename),
		logger: appLogger,
	}, nil
}

// Save overwrites the stored draft with the given snapshot.
func (r *DraftRepository) Save(ctx context.Context, draft *entities.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return afero.WriteFile(r.fs, r.path, data, 0o644)
}

// Load reads the stored draft. A missing file and an unreadable payload
// both report entities.ErrDraftNotFound; a corrupt draft is discarded so
// it cannot wedge startup recovery.
func (r *DraftRepository) Load(ctx context.Context) (*entities.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, entities.ErrDraftNotFound
		}
		return nil, err
	}

	var draft entities.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		r.logger.Debug("Discarding corrupt draft", "path", r.path, "error", err)
		if removeErr := r.fs.Remove(r.path); removeErr != nil {
			r.logger.Debug("Failed to remove corrupt draft", "error", removeErr)
		}
		return nil, entities.ErrDraftNotFound
	}
	return &draft, nil
}

// Clear deletes the stored draft. Clearing an already-empty store is not
// an error.
func (r *DraftRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fs.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
