package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/ports"
)

// ArticleRepository is the in-memory implementation of the article
// collection. The collection is ordered: creates insert at the front and a
// merge-import re-sorts by date descending. All reads work on deep copies
// so callers can never mutate stored state.
type ArticleRepository struct {
	mu       sync.RWMutex
	articles []*entities.Article
}

// NewArticleRepository creates an empty article repository.
func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{}
}

// NewSeededArticleRepository creates a repository pre-populated with the
// given articles in the given order.
func NewSeededArticleRepository(seed []*entities.Article) *ArticleRepository {
	repo := &ArticleRepository{articles: make([]*entities.Article, 0, len(seed))}
	for _, a := range seed {
		repo.articles = append(repo.articles, a.Clone())
	}
	return repo
}

// Insert adds the article at the front of the collection (most recent
// first).
func (r *ArticleRepository) Insert(ctx context.Context, article *entities.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(article.ID) >= 0 {
		return entities.ErrMalformedImport
	}

	r.articles = append([]*entities.Article{article.Clone()}, r.articles...)
	return nil
}

// GetByID returns a copy of the article with the given id.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*entities.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.articles[i].Clone(), nil
	}
	return nil, entities.ErrArticleNotFound
}

// Replace swaps the stored article with the same id, keeping its position.
func (r *ArticleRepository) Replace(ctx context.Context, article *entities.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(article.ID)
	if i < 0 {
		return entities.ErrArticleNotFound
	}
	r.articles[i] = article.Clone()
	return nil
}

// Delete removes the article with the given id.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.ErrArticleNotFound
	}
	r.articles = append(r.articles[:i], r.articles[i+1:]...)
	return nil
}

// List returns a filtered and sorted projection of the collection. The
// projection is computed on a snapshot, so filters and sort are pure
// functions of (collection, filter).
func (r *ArticleRepository) List(ctx context.Context, filter ports.ArticleFilter) ([]*entities.Article, error) {
	r.mu.RLock()
	snapshot := make([]*entities.Article, 0, len(r.articles))
	for _, a := range r.articles {
		snapshot = append(snapshot, a.Clone())
	}
	r.mu.RUnlock()

	filtered := snapshot[:0]
	for _, a := range snapshot {
		if !a.MatchesSearch(filter.Search) {
			continue
		}
		if filter.Category != "" && filter.Category != entities.CategoryAll && a.Category != filter.Category {
			continue
		}
		filtered = append(filtered, a)
	}

	sortArticles(filtered, filter.Sort)

	if filter.Offset > 0 {
		if filter.Offset >= len(filtered) {
			return []*entities.Article{}, nil
		}
		filtered = filtered[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(filtered) {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

// All returns the full collection in storage order.
func (r *ArticleRepository) All(ctx context.Context) ([]*entities.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a.Clone())
	}
	return out, nil
}

// Merge folds the incoming list into the collection keyed by id: matching
// ids overwrite in place (later entries win), new ids are appended. The
// whole collection is then re-sorted by date descending. Readers never
// observe a partial merge.
func (r *ArticleRepository) Merge(ctx context.Context, incoming []*entities.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merged := make([]*entities.Article, len(r.articles))
	copy(merged, r.articles)

	for _, in := range incoming {
		replaced := false
		for i, existing := range merged {
			if existing.ID == in.ID {
				merged[i] = in.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, in.Clone())
		}
	}

	sortArticles(merged, entities.SortDateDesc)
	r.articles = merged
	return nil
}

// Count returns the number of stored articles.
func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles), nil
}

// DistinctCategories returns the non-empty categories present in the
// collection, in first-seen order, with the "all" sentinel prepended.
func (r *ArticleRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := []string{entities.CategoryAll}
	seen := map[string]bool{}
	for _, a := range r.articles {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		categories = append(categories, a.Category)
	}
	return categories, nil
}

func (r *ArticleRepository) indexOf(id string) int {
	for i, a := range r.articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func sortArticles(list []*entities.Article, order entities.SortOrder) {
	switch order {
	case entities.SortDateAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.Compare(list[i].Date, list[j].Date) < 0
		})
	case entities.SortTitleAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.Compare(list[i].Title, list[j].Title) < 0
		})
	case entities.SortTitleDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.Compare(list[j].Title, list[i].Title) < 0
		})
	default: // dateDesc
		sort.SliceStable(list, func(i, j int) bool {
			return strings.Compare(list[j].Date, list[i].Date) < 0
		})
	}
}
