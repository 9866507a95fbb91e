package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

// ArticleService owns the article collection: creation, editing, deletion,
// merge-import, export and the read-only projections the dashboard shows.
type ArticleService struct {
	articleRepo ports.ArticleRepository
	logger      *logger.Logger
	now         func() time.Time
}

// NewArticleService creates a new article service
func NewArticleService(articleRepo ports.ArticleRepository, appLogger *logger.Logger) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		logger:      appLogger,
		now:         time.Now,
	}
}

// Create mints a new article from form fields and inserts it at the front
// of the collection.
func (s *ArticleService) Create(ctx context.Context, req ports.SaveArticleRequest) (*entities.Article, error) {
	article := entities.NewArticle(req.Fields(), s.now())

	if err := s.articleRepo.Insert(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	s.logger.Info("Article created", "article_id", article.ID, "title", article.Title)
	return article, nil
}

// Get returns the article with the given id.
func (s *ArticleService) Get(ctx context.Context, id string) (*entities.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// Update replaces every field of the article with the given id, preserving
// the id. A missing id is reported, not swallowed.
func (s *ArticleService) Update(ctx context.Context, id string, req ports.SaveArticleRequest) (*entities.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Apply(req.Fields(), s.now())
	if err := s.articleRepo.Replace(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("Article updated", "article_id", article.ID)
	return article, nil
}

// Delete removes the article with the given id.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Article deleted", "article_id", id)
	return nil
}

// List returns a filtered, sorted projection of the collection.
func (s *ArticleService) List(ctx context.Context, filter ports.ArticleFilter) ([]*entities.Article, error) {
	if filter.Sort != "" && !filter.Sort.IsValid() {
		return nil, fmt.Errorf("invalid sort order %q", filter.Sort)
	}
	return s.articleRepo.List(ctx, filter)
}

// Categories returns the distinct non-empty categories with the "all"
// sentinel prepended.
func (s *ArticleService) Categories(ctx context.Context) ([]string, error) {
	return s.articleRepo.DistinctCategories(ctx)
}

// Stats summarizes the collection: total count, articles dated today, and
// the number of distinct non-empty categories.
func (s *ArticleService) Stats(ctx context.Context) (*ports.Stats, error) {
	articles, err := s.articleRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(entities.DateLayout)
	stats := &ports.Stats{Total: len(articles)}
	seen := map[string]bool{}
	for _, a := range articles {
		if a.Date == today {
			stats.Today++
		}
		if a.Category != "" && !seen[a.Category] {
			seen[a.Category] = true
			stats.Categories++
		}
	}
	return stats, nil
}

// ImportJSON merges an exported JSON article list into the collection.
// Entries with known ids overwrite, new ids are added, and the collection
// is re-sorted by date descending. A payload that fails to parse or that
// is not a list of well-formed article records leaves the store untouched.
func (s *ArticleService) ImportJSON(ctx context.Context, data []byte) (int, error) {
	var incoming []*entities.Article
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", entities.ErrMalformedImport, err)
	}

	for _, a := range incoming {
		if a == nil {
			return 0, fmt.Errorf("%w: null entry", entities.ErrMalformedImport)
		}
		if err := a.Validate(); err != nil {
			return 0, err
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
	}

	if err := s.articleRepo.Merge(ctx, incoming); err != nil {
		return 0, fmt.Errorf("failed to merge import: %w", err)
	}

	s.logger.Info("Articles imported", "count", len(incoming))
	return len(incoming), nil
}

// ImportMarkdown imports a single front-matter markdown document, minting
// a fresh id for it.
func (s *ArticleService) ImportMarkdown(ctx context.Context, data []byte) (*entities.Article, error) {
	fields, err := parseMarkdownArticle(data)
	if err != nil {
		return nil, err
	}

	article := entities.NewArticle(fields, s.now())
	if err := article.Validate(); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Merge(ctx, []*entities.Article{article}); err != nil {
		return nil, fmt.Errorf("failed to merge import: %w", err)
	}

	s.logger.Info("Markdown article imported", "article_id", article.ID)
	return article, nil
}

// ExportAll serializes the full collection to a pretty-printed JSON
// document named after the export timestamp.
func (s *ArticleService) ExportAll(ctx context.Context) (*ports.ExportDocument, error) {
	articles, err := s.articleRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize articles: %w", err)
	}

	return &ports.ExportDocument{
		Filename:    fmt.Sprintf("articles-%d.json", s.now().UnixMilli()),
		ContentType: "application/json",
		Body:        body,
	}, nil
}

// ExportMarkdown serializes one article to a front-matter markdown
// document named after its slug.
func (s *ArticleService) ExportMarkdown(ctx context.Context, id string) (*ports.ExportDocument, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.ExportDocument{
		Filename:    article.Slug() + ".md",
		ContentType: "text/markdown",
		Body:        renderMarkdownArticle(article),
	}, nil
}
